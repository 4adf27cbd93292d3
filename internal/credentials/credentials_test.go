package credentials

import (
	"strings"
	"testing"
	"time"

	"github.com/goconduit/conduit/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret",
			Algorithm:  "HS256",
			Expiration: time.Hour,
		},
	}
}

func TestHashAndVerifyRoundTrip(t *testing.T) {
	manager := NewManager(testConfig())

	hash, err := manager.HashPassword("password123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotContains(t, hash, "password123")

	match, err := manager.VerifyPassword("password123", hash)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestVerifyRejectsWrongPassword(t *testing.T) {
	manager := NewManager(testConfig())

	hash, err := manager.HashPassword("correct-password")
	require.NoError(t, err)

	match, err := manager.VerifyPassword("wrong-password", hash)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestHashIsSaltedPerCall(t *testing.T) {
	manager := NewManager(testConfig())

	first, err := manager.HashPassword("password123")
	require.NoError(t, err)
	second, err := manager.HashPassword("password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	for _, hash := range []string{first, second} {
		match, err := manager.VerifyPassword("password123", hash)
		require.NoError(t, err)
		assert.True(t, match)
	}
}

func TestVerifyMalformedHashFailsClosed(t *testing.T) {
	manager := NewManager(testConfig())

	for _, malformed := range []string{"", "not-a-bcrypt-hash", "$9z$garbage"} {
		match, err := manager.VerifyPassword("password123", malformed)
		require.NoError(t, err)
		assert.False(t, match, "malformed hash %q must not verify", malformed)
	}
}

func TestTokenParams(t *testing.T) {
	manager := NewManager(testConfig())

	params := manager.TokenParams()
	assert.Equal(t, []byte("test-secret"), params.Secret)
	assert.Equal(t, "HS256", params.Algorithm)
	assert.Equal(t, time.Hour, params.Expiration)
}

func TestHashPasswordTooLong(t *testing.T) {
	manager := NewManager(testConfig())

	// bcrypt refuses inputs over 72 bytes; that is a caller error, not a
	// retryable condition.
	_, err := manager.HashPassword(strings.Repeat("a", 100))
	assert.Error(t, err)
}
