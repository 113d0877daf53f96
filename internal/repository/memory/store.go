// Package memory keeps accounts and messages in process memory. It mirrors
// the constraints of the SQL schema so services behave the same against it.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"

	"social-api/internal/domain"
	"social-api/internal/repository"
)

// Store holds both tables behind one lock so the message author foreign key
// can be checked against accounts.
type Store struct {
	mu            sync.RWMutex
	accounts      map[int64]domain.Account
	messages      map[int64]domain.Message
	nextAccountID int64
	nextMessageID int64
}

func NewStore() *Store {
	return &Store{
		accounts: make(map[int64]domain.Account),
		messages: make(map[int64]domain.Message),
	}
}

func (s *Store) Accounts() repository.AccountRepository {
	return &accountRepository{store: s}
}

func (s *Store) Messages() repository.MessageRepository {
	return &messageRepository{store: s}
}

type accountRepository struct {
	store *Store
}

func (r *accountRepository) Init(ctx context.Context) error {
	return ctx.Err()
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, repository.Fail("insert account", err)
	}
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	_, taken := lo.FindKeyBy(s.accounts, func(_ int64, a domain.Account) bool {
		return a.Username == account.Username
	})
	if taken {
		return nil, repository.Conflict("insert account", fmt.Errorf("username %q already exists", account.Username))
	}

	s.nextAccountID++
	created := domain.Account{
		ID:       s.nextAccountID,
		Username: account.Username,
		Password: account.Password,
	}
	s.accounts[created.ID] = created
	return &created, nil
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, repository.Fail("get account", err)
	}
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &account, nil
}

func (r *accountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return r.find(ctx, "get account by username", func(a domain.Account) bool {
		return a.Username == username
	})
}

func (r *accountRepository) GetByCredentials(ctx context.Context, username, password string) (*domain.Account, error) {
	return r.find(ctx, "get account by credentials", func(a domain.Account) bool {
		return a.Username == username && a.Password == password
	})
}

func (r *accountRepository) List(ctx context.Context) ([]domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, repository.Fail("list accounts", err)
	}
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := lo.Values(s.accounts)
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

func (r *accountRepository) find(ctx context.Context, op string, match func(domain.Account) bool) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, repository.Fail(op, err)
	}
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := lo.Find(lo.Values(s.accounts), match)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &account, nil
}

type messageRepository struct {
	store *Store
}

func (r *messageRepository) Init(ctx context.Context) error {
	return ctx.Err()
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, repository.Fail("insert message", err)
	}
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[msg.PostedBy]; !ok {
		return nil, repository.Conflict("insert message", fmt.Errorf("account %d does not exist", msg.PostedBy))
	}

	s.nextMessageID++
	created := domain.Message{
		ID:              s.nextMessageID,
		PostedBy:        msg.PostedBy,
		Text:            msg.Text,
		TimePostedEpoch: msg.TimePostedEpoch,
	}
	s.messages[created.ID] = created
	return &created, nil
}

func (r *messageRepository) GetByID(ctx context.Context, id int64) (*domain.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, repository.Fail("get message", err)
	}
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	msg, ok := s.messages[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &msg, nil
}

func (r *messageRepository) List(ctx context.Context) ([]domain.Message, error) {
	return r.filter(ctx, "list messages", func(domain.Message) bool { return true })
}

func (r *messageRepository) ListByAccount(ctx context.Context, accountID int64) ([]domain.Message, error) {
	return r.filter(ctx, "list messages by account", func(m domain.Message) bool {
		return m.PostedBy == accountID
	})
}

func (r *messageRepository) Delete(ctx context.Context, id int64) (*domain.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, repository.Fail("delete message", err)
	}
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, ok := s.messages[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(s.messages, id)
	return &msg, nil
}

func (r *messageRepository) UpdateText(ctx context.Context, id int64, text string) (*domain.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, repository.Fail("update message text", err)
	}
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, ok := s.messages[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	msg.Text = text
	s.messages[id] = msg
	return &msg, nil
}

func (r *messageRepository) filter(ctx context.Context, op string, keep func(domain.Message) bool) ([]domain.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, repository.Fail(op, err)
	}
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := lo.Filter(lo.Values(s.messages), func(m domain.Message, _ int) bool {
		return keep(m)
	})
	sort.Slice(messages, func(i, j int) bool { return messages[i].ID < messages[j].ID })
	return messages, nil
}
