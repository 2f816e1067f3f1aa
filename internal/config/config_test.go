package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jrsteele09/go-credential-service/internal/config"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	validSecret := strings.Repeat("s", config.MinTokenSecretLength)

	t.Run("valid configuration", func(t *testing.T) {
		t.Setenv("TOKEN_SECRET", validSecret)
		require.NoError(t, config.Validate(config.New()))
	})

	t.Run("missing secret fails fast", func(t *testing.T) {
		t.Setenv("TOKEN_SECRET", "")
		err := config.Validate(config.New())
		require.Error(t, err)
		require.Contains(t, err.Error(), "TOKEN_SECRET")
	})

	t.Run("short secret rejected", func(t *testing.T) {
		t.Setenv("TOKEN_SECRET", "too-short")
		require.Error(t, config.Validate(config.New()))
	})

	t.Run("out of range hash cost rejected", func(t *testing.T) {
		t.Setenv("TOKEN_SECRET", validSecret)
		t.Setenv("HASH_COST", "99")
		err := config.Validate(config.New())
		require.Error(t, err)
		require.Contains(t, err.Error(), "HASH_COST")
	})
}

func TestSecurityDefaults(t *testing.T) {
	c := config.New()

	t.Run("token ttl default", func(t *testing.T) {
		t.Setenv("TOKEN_TTL", "")
		require.Equal(t, 24*time.Hour, c.GetTokenTTL())
	})

	t.Run("token ttl from environment", func(t *testing.T) {
		t.Setenv("TOKEN_TTL", "15m")
		require.Equal(t, 15*time.Minute, c.GetTokenTTL())
	})

	t.Run("unparseable ttl falls back to default", func(t *testing.T) {
		t.Setenv("TOKEN_TTL", "soon")
		require.Equal(t, 24*time.Hour, c.GetTokenTTL())
	})

	t.Run("hash cost default", func(t *testing.T) {
		t.Setenv("HASH_COST", "")
		require.Equal(t, 12, c.GetHashCost())
	})
}

func TestEnvVars(t *testing.T) {
	c := config.New()

	t.Run("port is prefixed with colon", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		require.Equal(t, ":9090", c.GetPort())
	})

	t.Run("port default", func(t *testing.T) {
		t.Setenv("PORT", "")
		require.Equal(t, ":8080", c.GetPort())
	})

	t.Run("env default", func(t *testing.T) {
		t.Setenv("ENV", "")
		require.Equal(t, "DEV", c.GetEnv())
	})
}
