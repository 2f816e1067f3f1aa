package config

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	tokenSecretEnvVar = "TOKEN_SECRET"
	tokenTTLEnvVar    = "TOKEN_TTL"
	hashCostEnvVar    = "HASH_COST"

	// MinTokenSecretLength is the minimum accepted signing secret size.
	// Anything shorter than the HMAC-SHA256 output weakens the signature.
	MinTokenSecretLength = 32

	defaultTokenTTL = 24 * time.Hour
	defaultHashCost = 12
)

type SecurityConfig interface {
	GetTokenSecret() string
	GetTokenTTL() time.Duration
	GetHashCost() int
}

type Security struct{}

var _ SecurityConfig = Security{}

// GetTokenSecret returns the symmetric token signing secret. The value
// is injected via environment and must never be logged.
func (Security) GetTokenSecret() string {
	return GetEnv(tokenSecretEnvVar, "")
}

func (Security) GetTokenTTL() time.Duration {
	ttl, err := time.ParseDuration(GetEnv(tokenTTLEnvVar, ""))
	if err != nil || ttl <= 0 {
		return defaultTokenTTL
	}
	return ttl
}

func (Security) GetHashCost() int {
	cost, err := strconv.Atoi(GetEnv(hashCostEnvVar, ""))
	if err != nil {
		return defaultHashCost
	}
	return cost
}

// Validate fails fast on startup misconfiguration rather than letting a
// missing secret or out-of-range cost surface on the first request.
func Validate(c Config) error {
	if len(c.GetTokenSecret()) < MinTokenSecretLength {
		return fmt.Errorf("%s must be set and at least %d bytes", tokenSecretEnvVar, MinTokenSecretLength)
	}
	if cost := c.GetHashCost(); cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return fmt.Errorf("%s %d out of range [%d,%d]", hashCostEnvVar, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}
