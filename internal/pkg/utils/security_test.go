package utils

import (
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Run("Hash Verifies Against The Original Password", func(t *testing.T) {
		hash, err := HashPassword("Str0ng!Pass")
		require.NoError(t, err, "hashing should not fail")

		assert.NotEqual(t, "Str0ng!Pass", hash, "hash must not be the plain password")
		assert.True(t, CheckPasswordHash("Str0ng!Pass", hash), "original password should verify")
		assert.False(t, CheckPasswordHash("Wr0ng!Pass", hash), "different password should not verify")
	})

	t.Run("Same Password Hashes Differently", func(t *testing.T) {
		first, err := HashPassword("Str0ng!Pass")
		require.NoError(t, err)
		second, err := HashPassword("Str0ng!Pass")
		require.NoError(t, err)

		assert.NotEqual(t, first, second, "bcrypt salts must differ between calls")
	})
}

func TestGenerateAndParseJWT(t *testing.T) {
	t.Run("Round Trip Returns The Session ID", func(t *testing.T) {
		token, err := GenerateJWT("sess-123", "test-secret", time.Minute)
		require.NoError(t, err, "token generation should not fail")

		sessionID, err := ParseJWT(token, "test-secret")
		require.NoError(t, err, "a fresh token should parse")
		assert.Equal(t, "sess-123", sessionID)
	})

	t.Run("Expired Token Is Rejected", func(t *testing.T) {
		token, err := GenerateJWT("sess-123", "test-secret", -time.Minute)
		require.NoError(t, err)

		_, err = ParseJWT(token, "test-secret")
		require.Error(t, err, "an expired token must not parse")

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok, "parse failures should carry a status code")
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("Token Signed With Another Secret Is Rejected", func(t *testing.T) {
		token, err := GenerateJWT("sess-123", "other-secret", time.Minute)
		require.NoError(t, err)

		_, err = ParseJWT(token, "test-secret")
		assert.Error(t, err, "signature from another secret must not verify")
	})

	t.Run("Garbage Token Is Rejected", func(t *testing.T) {
		_, err := ParseJWT("not-a-token", "test-secret")
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})
}
