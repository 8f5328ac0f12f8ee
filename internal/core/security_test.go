// AngelaMos | 2026
// security_test.go

package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("pass123")
	require.NoError(t, err)
	require.NotEqual(t, "pass123", hash)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := VerifyPassword("pass123", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("pass123")
	require.NoError(t, err)
	second, err := HashPassword("pass123")
	require.NoError(t, err)

	// Same password, different salt, different hash.
	assert.NotEqual(t, first, second)
}

func TestVerifyPasswordTimingSafe_NilHash(t *testing.T) {
	// A nil hash stands in for an unknown user. The verify still runs
	// against a dummy hash and always rejects.
	ok, err := VerifyPasswordTimingSafe("pass123", nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPasswordTimingSafe_KnownHash(t *testing.T) {
	hash, err := HashPassword("pass123")
	require.NoError(t, err)

	ok, err := VerifyPasswordTimingSafe("pass123", &hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPasswordTimingSafe("wrong", &hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashToken_Deterministic(t *testing.T) {
	token, err := GenerateRefreshToken()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.Equal(t, HashToken(token), HashToken(token))
	assert.True(t, CompareTokenHash(token, HashToken(token)))
	assert.False(t, CompareTokenHash("other", HashToken(token)))
}
