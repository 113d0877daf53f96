package sqlstore

import (
	"context"

	"github.com/jmoiron/sqlx"

	"social-api/internal/domain"
	"social-api/internal/repository"
)

const accountColumns = `account_id, username, password`

type AccountRepository struct {
	db *sqlx.DB
}

func NewAccountRepository(db *sqlx.DB) repository.AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Init(ctx context.Context) error {
	return createTable(ctx, r.db, "account")
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	var id int64
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(`
INSERT INTO account (username, password)
VALUES (?, ?)
RETURNING account_id`),
		account.Username,
		account.Password,
	).Scan(&id)
	if err != nil {
		return nil, storeError("insert account", err)
	}

	return &domain.Account{
		ID:       id,
		Username: account.Username,
		Password: account.Password,
	}, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	var account domain.Account
	err := r.db.GetContext(ctx, &account, r.db.Rebind(`
SELECT `+accountColumns+`
FROM account
WHERE account_id = ?`),
		id,
	)
	return one(&account, err, "get account")
}

func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	var account domain.Account
	err := r.db.GetContext(ctx, &account, r.db.Rebind(`
SELECT `+accountColumns+`
FROM account
WHERE username = ?`),
		username,
	)
	return one(&account, err, "get account by username")
}

func (r *AccountRepository) GetByCredentials(ctx context.Context, username, password string) (*domain.Account, error) {
	var account domain.Account
	err := r.db.GetContext(ctx, &account, r.db.Rebind(`
SELECT `+accountColumns+`
FROM account
WHERE username = ? AND password = ?`),
		username,
		password,
	)
	return one(&account, err, "get account by credentials")
}

func (r *AccountRepository) List(ctx context.Context) ([]domain.Account, error) {
	accounts := []domain.Account{}
	if err := r.db.SelectContext(ctx, &accounts, `
SELECT `+accountColumns+`
FROM account
ORDER BY account_id`); err != nil {
		return nil, storeError("list accounts", err)
	}
	return accounts, nil
}
