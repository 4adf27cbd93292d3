package auth

import (
	"context"
	"testing"
	"time"

	"github.com/goconduit/conduit/internal/config"
	"github.com/goconduit/conduit/internal/credentials"
	"github.com/goconduit/conduit/models"
	"github.com/mdobak/go-xerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams(expiration time.Duration) credentials.TokenParams {
	return credentials.TokenParams{
		Secret:     []byte("test-secret"),
		Algorithm:  "HS256",
		Expiration: expiration,
	}
}

func testUser() *models.User {
	return &models.User{
		ID:       1,
		Username: "johndoe",
		Email:    "john@example.com",
	}
}

func TestIssueAndParseToken(t *testing.T) {
	params := testParams(time.Hour)

	token, err := IssueToken(testUser(), params)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token, params)
	require.NoError(t, err)
	assert.Equal(t, "johndoe", claims.Username)
	assert.Equal(t, "john@example.com", claims.Email)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := IssueToken(testUser(), testParams(time.Hour))
	require.NoError(t, err)

	otherParams := testParams(time.Hour)
	otherParams.Secret = []byte("another-secret")

	_, err = ParseToken(token, otherParams)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpiredToken(t *testing.T) {
	token, err := IssueToken(testUser(), testParams(-time.Minute))
	require.NoError(t, err)

	_, err = ParseToken(token, testParams(time.Hour))
	assert.Error(t, err)
}

type stubUserFinder struct {
	user *models.User
	err  error
}

func (s stubUserFinder) GetUserByEmail(_ context.Context, _ string) (*models.User, error) {
	return s.user, s.err
}

func TestLogin(t *testing.T) {
	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret",
			Algorithm:  "HS256",
			Expiration: time.Hour,
		},
	}
	creds := credentials.NewManager(cfg)

	hash, err := creds.HashPassword("password123")
	require.NoError(t, err)

	user := testUser()
	user.PasswordHash = hash

	t.Run("valid credentials", func(t *testing.T) {
		loggedIn, token, err := Login(context.Background(), stubUserFinder{user: user}, creds, user.Email, "password123")
		require.NoError(t, err)
		assert.Equal(t, user.Username, loggedIn.Username)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := Login(context.Background(), stubUserFinder{user: user}, creds, user.Email, "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user is indistinguishable from wrong password", func(t *testing.T) {
		_, _, err := Login(context.Background(), stubUserFinder{err: xerrors.New("no record found")}, creds, "nobody@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
