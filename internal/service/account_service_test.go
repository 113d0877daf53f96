package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"social-api/internal/domain"
	"social-api/internal/repository"
)

func TestAccountService_Register(t *testing.T) {
	ctx := context.Background()
	storeErr := repository.Fail("get account by username", errors.New("database is locked"))

	tcases := []struct {
		name      string
		candidate domain.Account
		setup     func(repo *repository.MockAccountRepository)
		want      *domain.Account
		wantErr   error
	}{
		{
			name:      "creates the account",
			candidate: domain.Account{Username: "bob", Password: "pass1"},
			setup: func(repo *repository.MockAccountRepository) {
				repo.On("GetByUsername", mock.Anything, "bob").Return(nil, repository.ErrNotFound).Once()
				repo.On("Create", mock.Anything, &domain.Account{Username: "bob", Password: "pass1"}).
					Return(&domain.Account{ID: 1, Username: "bob", Password: "pass1"}, nil).Once()
			},
			want: &domain.Account{ID: 1, Username: "bob", Password: "pass1"},
		},
		{
			name:      "ignores a caller supplied id",
			candidate: domain.Account{ID: 9, Username: "bob", Password: "pass1"},
			setup: func(repo *repository.MockAccountRepository) {
				repo.On("GetByUsername", mock.Anything, "bob").Return(nil, repository.ErrNotFound).Once()
				repo.On("Create", mock.Anything, &domain.Account{Username: "bob", Password: "pass1"}).
					Return(&domain.Account{ID: 1, Username: "bob", Password: "pass1"}, nil).Once()
			},
			want: &domain.Account{ID: 1, Username: "bob", Password: "pass1"},
		},
		{
			name:      "accepts a four character password",
			candidate: domain.Account{Username: "bob", Password: "abcd"},
			setup: func(repo *repository.MockAccountRepository) {
				repo.On("GetByUsername", mock.Anything, "bob").Return(nil, repository.ErrNotFound).Once()
				repo.On("Create", mock.Anything, mock.Anything).
					Return(&domain.Account{ID: 2, Username: "bob", Password: "abcd"}, nil).Once()
			},
			want: &domain.Account{ID: 2, Username: "bob", Password: "abcd"},
		},
		{
			name:      "rejects an empty username",
			candidate: domain.Account{Username: "", Password: "pass1"},
			wantErr:   ErrUsernameRequired,
		},
		{
			name:      "empty username is checked before the password",
			candidate: domain.Account{Username: "", Password: ""},
			wantErr:   ErrUsernameRequired,
		},
		{
			name:      "rejects a short password",
			candidate: domain.Account{Username: "bob", Password: "abc"},
			wantErr:   ErrPasswordTooShort,
		},
		{
			name:      "rejects a taken username regardless of password",
			candidate: domain.Account{Username: "bob", Password: "different"},
			setup: func(repo *repository.MockAccountRepository) {
				repo.On("GetByUsername", mock.Anything, "bob").
					Return(&domain.Account{ID: 1, Username: "bob", Password: "pass1"}, nil).Once()
			},
			wantErr: ErrUsernameTaken,
		},
		{
			name:      "maps a lost uniqueness race to a rejection",
			candidate: domain.Account{Username: "bob", Password: "pass1"},
			setup: func(repo *repository.MockAccountRepository) {
				repo.On("GetByUsername", mock.Anything, "bob").Return(nil, repository.ErrNotFound).Once()
				repo.On("Create", mock.Anything, mock.Anything).
					Return(nil, repository.Conflict("insert account", errors.New("UNIQUE constraint failed: account.username"))).Once()
			},
			wantErr: ErrUsernameTaken,
		},
		{
			name:      "propagates store failures",
			candidate: domain.Account{Username: "bob", Password: "pass1"},
			setup: func(repo *repository.MockAccountRepository) {
				repo.On("GetByUsername", mock.Anything, "bob").Return(nil, storeErr).Once()
			},
			wantErr: storeErr,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &repository.MockAccountRepository{}
			defer repo.AssertExpectations(t)
			if tc.setup != nil {
				tc.setup(repo)
			}

			got, err := NewAccountService(repo).Register(ctx, tc.candidate)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, got)
				if tc.setup == nil {
					repo.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
					repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAccountService_RegisterValidationErrorsAreRejections(t *testing.T) {
	for _, err := range []error{ErrUsernameRequired, ErrPasswordTooShort, ErrUsernameTaken} {
		assert.ErrorIs(t, err, ErrRejected)
	}
}

func TestAccountService_Login(t *testing.T) {
	ctx := context.Background()
	bob := &domain.Account{ID: 1, Username: "bob", Password: "pass1"}

	t.Run("returns the matching account", func(t *testing.T) {
		repo := &repository.MockAccountRepository{}
		defer repo.AssertExpectations(t)
		repo.On("GetByCredentials", mock.Anything, "bob", "pass1").Return(bob, nil).Once()

		got, err := NewAccountService(repo).Login(ctx, "bob", "pass1")
		require.NoError(t, err)
		assert.Equal(t, bob, got)
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		repo := &repository.MockAccountRepository{}
		defer repo.AssertExpectations(t)
		repo.On("GetByCredentials", mock.Anything, "bob", "wrong").Return(nil, repository.ErrNotFound).Once()
		repo.On("GetByCredentials", mock.Anything, "nobody", "pass1").Return(nil, repository.ErrNotFound).Once()
		svc := NewAccountService(repo)

		_, wrongPassword := svc.Login(ctx, "bob", "wrong")
		_, unknownUser := svc.Login(ctx, "nobody", "pass1")

		assert.ErrorIs(t, wrongPassword, ErrUnauthorized)
		assert.Equal(t, wrongPassword, unknownUser)
	})

	t.Run("propagates store failures", func(t *testing.T) {
		repo := &repository.MockAccountRepository{}
		defer repo.AssertExpectations(t)
		storeErr := repository.Fail("get account by credentials", errors.New("connection refused"))
		repo.On("GetByCredentials", mock.Anything, "bob", "pass1").Return(nil, storeErr).Once()

		_, err := NewAccountService(repo).Login(ctx, "bob", "pass1")
		assert.ErrorIs(t, err, storeErr)
		assert.NotErrorIs(t, err, ErrUnauthorized)
	})
}
