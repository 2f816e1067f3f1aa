package auth

import (
	"fmt"
	"net/mail"
	"strings"
)

// Field length policy. The password ceiling matches bcrypt's 72-byte
// input limit; anything longer would be silently truncated by the hash.
const (
	MinUsernameLength = 2
	MaxUsernameLength = 64
	MaxEmailLength    = 254
	MinPasswordLength = 8
	MaxPasswordLength = 72
)

// Validator enforces structural constraints on submissions before any
// storage or cryptographic work happens. The first violated rule wins;
// failures are reported as *ValidationError with a client-safe message.
type Validator struct{}

// NewValidator creates a new Validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRegistration checks a registration submission.
func (v *Validator) ValidateRegistration(r Registration) error {
	if err := validateUsername(r.Username); err != nil {
		return err
	}
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	return validatePassword(r.Password)
}

// ValidateLogin checks a login submission. Only presence and upper
// bounds are enforced - existing accounts may predate stricter rules.
func (v *Validator) ValidateLogin(l Login) error {
	if strings.TrimSpace(l.Username) == "" {
		return &ValidationError{Message: "username is required"}
	}
	if len(l.Username) > MaxUsernameLength {
		return &ValidationError{Message: fmt.Sprintf("username must be at most %d characters", MaxUsernameLength)}
	}
	if l.Password == "" {
		return &ValidationError{Message: "password is required"}
	}
	if len(l.Password) > MaxPasswordLength {
		return &ValidationError{Message: fmt.Sprintf("password must be at most %d characters", MaxPasswordLength)}
	}
	return nil
}

func validateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return &ValidationError{Message: "username is required"}
	}
	if len(username) < MinUsernameLength || len(username) > MaxUsernameLength {
		return &ValidationError{Message: fmt.Sprintf("username must be between %d and %d characters", MinUsernameLength, MaxUsernameLength)}
	}
	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return &ValidationError{Message: "email is required"}
	}
	if len(email) > MaxEmailLength {
		return &ValidationError{Message: fmt.Sprintf("email must be at most %d characters", MaxEmailLength)}
	}
	// ParseAddress accepts display names ("A <a@x.com>"); requiring the
	// parsed address to round-trip rejects those.
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return &ValidationError{Message: "email is not a valid email address"}
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return &ValidationError{Message: "password is required"}
	}
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return &ValidationError{Message: fmt.Sprintf("password must be between %d and %d characters", MinPasswordLength, MaxPasswordLength)}
	}
	return nil
}
