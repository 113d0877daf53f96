package service

import (
	"context"
	"errors"
	"unicode/utf8"

	"social-api/internal/domain"
	"social-api/internal/repository"
)

// AccountService describes account registration and login.
type AccountService interface {
	Register(ctx context.Context, candidate domain.Account) (*domain.Account, error)
	Login(ctx context.Context, username, password string) (*domain.Account, error)
}

type accountService struct {
	accounts repository.AccountRepository
}

func NewAccountService(accounts repository.AccountRepository) AccountService {
	return &accountService{accounts: accounts}
}

func (s *accountService) Register(ctx context.Context, candidate domain.Account) (*domain.Account, error) {
	if candidate.Username == "" {
		return nil, ErrUsernameRequired
	}
	if utf8.RuneCountInString(candidate.Password) < domain.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	_, err := s.accounts.GetByUsername(ctx, candidate.Username)
	switch {
	case err == nil:
		return nil, ErrUsernameTaken
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	account, err := s.accounts.Create(ctx, &domain.Account{
		Username: candidate.Username,
		Password: candidate.Password,
	})
	if err != nil {
		// a concurrent registration won the unique constraint
		if errors.Is(err, repository.ErrConstraint) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) Login(ctx context.Context, username, password string) (*domain.Account, error) {
	account, err := s.accounts.GetByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return account, nil
}
