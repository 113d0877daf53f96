package repository

import (
	"context"

	"social-api/internal/domain"
)

// MessageRepository exposes persistence operations for Message entities.
type MessageRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, msg *domain.Message) (*domain.Message, error)
	GetByID(ctx context.Context, id int64) (*domain.Message, error)
	List(ctx context.Context) ([]domain.Message, error)
	ListByAccount(ctx context.Context, accountID int64) ([]domain.Message, error)
	// Delete removes the message and returns the row as it was before removal.
	Delete(ctx context.Context, id int64) (*domain.Message, error)
	// UpdateText replaces message_text only. No affected row yields ErrNotFound.
	UpdateText(ctx context.Context, id int64, text string) (*domain.Message, error)
}
