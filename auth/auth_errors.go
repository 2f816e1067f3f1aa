package auth

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned by Authenticate for both an unknown
// username and a wrong password. A single value and message for both
// cases stops the response from revealing which accounts exist.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ValidationError signals a structurally malformed submission. The
// message is safe to return to the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// DuplicateAccountError signals that registration conflicts with an
// existing account on the named field.
type DuplicateAccountError struct {
	Field string
	Value string
}

func (e *DuplicateAccountError) Error() string {
	return fmt.Sprintf("an account with %s %q already exists", e.Field, e.Value)
}

// PersistenceError wraps a store failure. Error() is deliberately
// opaque; the wrapped cause is for server-side logs only.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "account store failure"
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
