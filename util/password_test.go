package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pass123")
	require.NoError(t, err)

	require.NotEqual(t, "pass123", hash)
	require.True(t, strings.HasPrefix(hash, "$2a$12$"), "expected bcrypt hash with cost 12, got %q", hash)

	// Salted: hashing the same input twice must not repeat.
	hash2, err := HashPassword("pass123")
	require.NoError(t, err)
	require.NotEqual(t, hash, hash2)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("pass123")
	require.NoError(t, err)

	require.True(t, CheckPassword("pass123", hash))
	require.False(t, CheckPassword("pass124", hash))
	require.False(t, CheckPassword("", hash))
	require.False(t, CheckPassword("pass123", "not-a-hash"))
}
