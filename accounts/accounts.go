package accounts

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Hashing cost bounds. DefaultHashCost is deliberately above the bcrypt
// library default so that each guess costs non-trivial CPU time.
const (
	MinHashCost     = bcrypt.MinCost
	MaxHashCost     = bcrypt.MaxCost
	DefaultHashCost = 12
)

type Account struct {
	ID           string    `json:"id,omitempty"`          // Unique identifier, assigned by the store on creation
	Username     string    `json:"username,omitempty"`    // Unique username
	Email        string    `json:"email,omitempty"`       // User's email address, unique per account
	PasswordHash string    `json:"-"`                     // Hashed version of the account's password - never serialize
	FirstName    string    `json:"first_name,omitempty"`  // First name of the account holder
	LastName     string    `json:"last_name,omitempty"`   // Last name of the account holder
	DateJoined   time.Time `json:"date_joined,omitempty"` // Date and time when the account was registered
}

// HashPassword derives a salted bcrypt hash of the password at the given cost.
// bcrypt generates a fresh random salt per call, so two hashes of the same
// password never match.
func HashPassword(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

// CheckPasswordHash compares a password against a bcrypt hash in
// constant-relative time.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
