package repository

import (
	"context"

	"social-api/internal/domain"
)

// AccountRepository defines persistence operations for Account entities.
type AccountRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	GetByCredentials(ctx context.Context, username, password string) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
}
