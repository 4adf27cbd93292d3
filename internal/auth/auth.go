package auth

import (
	"context"
	"time"

	"github.com/goconduit/conduit/internal/credentials"
	"github.com/goconduit/conduit/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/mdobak/go-xerrors"
)

var (
	// ErrInvalidCredentials deliberately covers both "unknown user" and
	// "wrong password" so callers cannot probe which accounts exist.
	ErrInvalidCredentials = xerrors.Message("Invalid credentials")
)

// UserFinder is the slice of the storage core that login needs.
type UserFinder interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// IssueToken signs a token for the user with the parameters supplied by the
// credential manager.
func IssueToken(user *models.User, params credentials.TokenParams) (string, error) {
	now := time.Now()
	claim := Claims{
		Username: user.Username,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(params.Expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	method := jwt.GetSigningMethod(params.Algorithm)
	if method == nil {
		return "", xerrors.Newf("unknown signing algorithm %q", params.Algorithm)
	}

	token := jwt.NewWithClaims(method, claim)
	signedString, err := token.SignedString(params.Secret)
	if err != nil {
		return "", xerrors.New(err)
	}

	return signedString, nil
}

// ParseToken validates a signed token and returns its claims. Tokens signed
// with a non-HMAC method are rejected regardless of their payload.
func ParseToken(tokenString string, params credentials.TokenParams) (*Claims, error) {
	parsedToken, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, xerrors.New("unexpected signing method")
		}
		return params.Secret, nil
	})

	if err != nil {
		return nil, xerrors.New(err)
	}

	if !parsedToken.Valid {
		return nil, xerrors.New("invalid token")
	}

	claim, ok := parsedToken.Claims.(*Claims)
	if !ok {
		return nil, xerrors.New("could not parse claims")
	}

	return claim, nil
}

// Login verifies the email/password pair and issues a token. Every failure
// mode surfaces as ErrInvalidCredentials.
func Login(ctx context.Context, users UserFinder, creds *credentials.Manager, email, plaintextPassword string) (*models.User, string, error) {
	user, err := users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", xerrors.New(ErrInvalidCredentials)
	}

	match, err := creds.VerifyPassword(plaintextPassword, user.PasswordHash)
	if err != nil || !match {
		return nil, "", xerrors.New(ErrInvalidCredentials)
	}

	token, err := IssueToken(user, creds.TokenParams())
	if err != nil {
		return nil, "", xerrors.New(err)
	}

	return user, token, nil
}
