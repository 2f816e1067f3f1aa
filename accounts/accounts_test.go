package accounts_test

import (
	"testing"

	"github.com/jrsteele09/go-credential-service/accounts"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	const password = "Secret123"

	t.Run("hash verifies against its password", func(t *testing.T) {
		hash, err := accounts.HashPassword(password, accounts.MinHashCost)
		require.NoError(t, err)
		require.NotEqual(t, password, hash)
		require.True(t, accounts.CheckPasswordHash(password, hash))
	})

	t.Run("same password produces different hashes", func(t *testing.T) {
		first, err := accounts.HashPassword(password, accounts.MinHashCost)
		require.NoError(t, err)
		second, err := accounts.HashPassword(password, accounts.MinHashCost)
		require.NoError(t, err)

		require.NotEqual(t, first, second) // fresh random salt per call
		require.True(t, accounts.CheckPasswordHash(password, first))
		require.True(t, accounts.CheckPasswordHash(password, second))
	})

	t.Run("wrong password does not verify", func(t *testing.T) {
		hash, err := accounts.HashPassword(password, accounts.MinHashCost)
		require.NoError(t, err)
		require.False(t, accounts.CheckPasswordHash("wrong", hash))
	})

	t.Run("out of range cost fails", func(t *testing.T) {
		_, err := accounts.HashPassword(password, accounts.MaxHashCost+1)
		require.Error(t, err)
	})
}
