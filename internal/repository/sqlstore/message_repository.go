package sqlstore

import (
	"context"

	"github.com/jmoiron/sqlx"

	"social-api/internal/domain"
	"social-api/internal/repository"
)

const messageColumns = `message_id, posted_by, message_text, time_posted_epoch`

type MessageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) repository.MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Init(ctx context.Context) error {
	return createTable(ctx, r.db, "message")
}

func (r *MessageRepository) Create(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	var id int64
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(`
INSERT INTO message (posted_by, message_text, time_posted_epoch)
VALUES (?, ?, ?)
RETURNING message_id`),
		msg.PostedBy,
		msg.Text,
		msg.TimePostedEpoch,
	).Scan(&id)
	if err != nil {
		return nil, storeError("insert message", err)
	}

	return &domain.Message{
		ID:              id,
		PostedBy:        msg.PostedBy,
		Text:            msg.Text,
		TimePostedEpoch: msg.TimePostedEpoch,
	}, nil
}

func (r *MessageRepository) GetByID(ctx context.Context, id int64) (*domain.Message, error) {
	var msg domain.Message
	err := r.db.GetContext(ctx, &msg, r.db.Rebind(`
SELECT `+messageColumns+`
FROM message
WHERE message_id = ?`),
		id,
	)
	return one(&msg, err, "get message")
}

func (r *MessageRepository) List(ctx context.Context) ([]domain.Message, error) {
	messages := []domain.Message{}
	if err := r.db.SelectContext(ctx, &messages, `
SELECT `+messageColumns+`
FROM message
ORDER BY message_id`); err != nil {
		return nil, storeError("list messages", err)
	}
	return messages, nil
}

func (r *MessageRepository) ListByAccount(ctx context.Context, accountID int64) ([]domain.Message, error) {
	messages := []domain.Message{}
	if err := r.db.SelectContext(ctx, &messages, r.db.Rebind(`
SELECT `+messageColumns+`
FROM message
WHERE posted_by = ?
ORDER BY message_id`),
		accountID,
	); err != nil {
		return nil, storeError("list messages by account", err)
	}
	return messages, nil
}

func (r *MessageRepository) Delete(ctx context.Context, id int64) (*domain.Message, error) {
	var msg domain.Message
	err := r.db.GetContext(ctx, &msg, r.db.Rebind(`
DELETE FROM message
WHERE message_id = ?
RETURNING `+messageColumns),
		id,
	)
	return one(&msg, err, "delete message")
}

func (r *MessageRepository) UpdateText(ctx context.Context, id int64, text string) (*domain.Message, error) {
	var msg domain.Message
	err := r.db.GetContext(ctx, &msg, r.db.Rebind(`
UPDATE message
SET message_text = ?
WHERE message_id = ?
RETURNING `+messageColumns),
		text,
		id,
	)
	return one(&msg, err, "update message text")
}
