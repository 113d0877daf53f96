package service

import (
	"context"
	"errors"
	"unicode/utf8"

	"social-api/internal/domain"
	"social-api/internal/repository"
)

// MessageService coordinates message validation and persistence.
type MessageService interface {
	Post(ctx context.Context, candidate domain.Message) (*domain.Message, error)
	Get(ctx context.Context, id int64) (*domain.Message, error)
	Delete(ctx context.Context, id int64) (*domain.Message, error)
	Update(ctx context.Context, id int64, text string) (*domain.Message, error)
	List(ctx context.Context) ([]domain.Message, error)
	ListByAccount(ctx context.Context, accountID int64) ([]domain.Message, error)
}

type messageService struct {
	messages repository.MessageRepository
	accounts repository.AccountRepository
}

func NewMessageService(messages repository.MessageRepository, accounts repository.AccountRepository) MessageService {
	return &messageService{
		messages: messages,
		accounts: accounts,
	}
}

func (s *messageService) Post(ctx context.Context, candidate domain.Message) (*domain.Message, error) {
	if _, err := s.accounts.GetByID(ctx, candidate.PostedBy); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}
	if err := validateText(candidate.Text); err != nil {
		return nil, err
	}

	msg, err := s.messages.Create(ctx, &domain.Message{
		PostedBy:        candidate.PostedBy,
		Text:            candidate.Text,
		TimePostedEpoch: candidate.TimePostedEpoch,
	})
	if err != nil {
		if errors.Is(err, repository.ErrConstraint) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}
	return msg, nil
}

func (s *messageService) Get(ctx context.Context, id int64) (*domain.Message, error) {
	return notFound(s.messages.GetByID(ctx, id))
}

func (s *messageService) Delete(ctx context.Context, id int64) (*domain.Message, error) {
	return notFound(s.messages.Delete(ctx, id))
}

// Update replaces the text of an existing message. The author is checked on
// Post only; an update never looks the account up again.
func (s *messageService) Update(ctx context.Context, id int64, text string) (*domain.Message, error) {
	if _, err := notFound(s.messages.GetByID(ctx, id)); err != nil {
		return nil, err
	}
	if err := validateText(text); err != nil {
		return nil, err
	}
	return notFound(s.messages.UpdateText(ctx, id, text))
}

func (s *messageService) List(ctx context.Context) ([]domain.Message, error) {
	return s.messages.List(ctx)
}

func (s *messageService) ListByAccount(ctx context.Context, accountID int64) ([]domain.Message, error) {
	return s.messages.ListByAccount(ctx, accountID)
}

func validateText(text string) error {
	if text == "" {
		return ErrTextRequired
	}
	if utf8.RuneCountInString(text) > domain.MaxMessageLength {
		return ErrTextTooLong
	}
	return nil
}

func notFound(msg *domain.Message, err error) (*domain.Message, error) {
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return msg, err
}
