package accounts

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by lookups when no account matches.
var ErrNotFound = errors.New("account not found")

// DuplicateError is returned by Create when the store's uniqueness
// constraint on the named field is violated. The store is the single
// authority on uniqueness, so concurrent registrations surface here
// rather than through a pre-insert existence check.
type DuplicateError struct {
	Field string // "username" or "email"
	Value string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("an account with %s %q already exists", e.Field, e.Value)
}

// Repo is the persistence contract for Account records. Implementations
// must enforce uniqueness of both username and email.
type Repo interface {
	Create(ctx context.Context, account *Account) (*Account, error)
	GetByUsername(ctx context.Context, username string) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
}
