package credentials

import (
	"errors"
	"time"

	"github.com/goconduit/conduit/internal/config"
	"github.com/mdobak/go-xerrors"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// TokenParams are the signing parameters handed to the token issuer. The
// credential manager itself never signs anything.
type TokenParams struct {
	Secret     []byte
	Algorithm  string
	Expiration time.Duration
}

// Manager turns plaintext passwords into storable hashes and verifies them.
// Hashes are salted per call, so equality on the hash string is meaningless;
// the only valid comparison is VerifyPassword.
type Manager struct {
	cost        int
	tokenParams TokenParams
}

func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		cost: bcryptCost,
		tokenParams: TokenParams{
			Secret:     []byte(cfg.JWT.Secret),
			Algorithm:  cfg.JWT.Algorithm,
			Expiration: cfg.JWT.Expiration,
		},
	}
}

// HashPassword produces a self-contained bcrypt hash with a fresh random
// salt. Callers validate password policy (length, non-blank) before calling.
func (m *Manager) HashPassword(plaintextPassword string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(plaintextPassword), m.cost)
	if err != nil {
		return "", xerrors.New(err)
	}

	return string(hashedPassword), nil
}

// VerifyPassword reports whether plaintextPassword matches hashedPassword.
// A mismatch and a malformed hash both come back as plain false, so a caller
// cannot tell a corrupted credential apart from a wrong password.
func (m *Manager) VerifyPassword(plaintextPassword, hashedPassword string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plaintextPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}

		var invalidPrefix bcrypt.InvalidHashPrefixError
		if errors.Is(err, bcrypt.ErrHashTooShort) || errors.As(err, &invalidPrefix) {
			return false, nil
		}

		return false, xerrors.New(err)
	}

	return true, nil
}

// TokenParams exposes the signing parameters read-only for the external
// token issuer.
func (m *Manager) TokenParams() TokenParams {
	return m.tokenParams
}
