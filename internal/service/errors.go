package service

import (
	"errors"
	"fmt"
)

var (
	// ErrRejected is wrapped by every validation failure.
	ErrRejected = errors.New("rejected")
	// ErrNotFound indicates the requested message does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned for any login that does not match an account.
	ErrUnauthorized = errors.New("invalid credentials")

	ErrUsernameRequired = fmt.Errorf("%w: username is required", ErrRejected)
	ErrPasswordTooShort = fmt.Errorf("%w: password is too short", ErrRejected)
	ErrUsernameTaken    = fmt.Errorf("%w: username already exists", ErrRejected)
	ErrAuthorNotFound   = fmt.Errorf("%w: author account does not exist", ErrRejected)
	ErrTextRequired     = fmt.Errorf("%w: message text is required", ErrRejected)
	ErrTextTooLong      = fmt.Errorf("%w: message text is too long", ErrRejected)
)
