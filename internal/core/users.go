package core

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goconduit/conduit/internal/utils/databaseutils"
	"github.com/goconduit/conduit/internal/utils/stringutils"
	"github.com/goconduit/conduit/models"
	"github.com/mdobak/go-xerrors"
)

// NewUser is a validated signup payload. The plaintext password is hashed
// here via the credential manager and never persisted or logged.
type NewUser struct {
	Username string
	Email    string
	Password string
	Bio      *string
	ImageURL *string
}

func (c *Core) CreateUser(ctx context.Context, newUser NewUser) (*models.User, error) {
	passwordHash, err := c.credentials.HashPassword(newUser.Password)
	if err != nil {
		return nil, xerrors.New(err)
	}

	now := time.Now().UTC()
	user := &models.User{
		Username:     newUser.Username,
		Email:        newUser.Email,
		PasswordHash: passwordHash,
		Bio:          newUser.Bio,
		ImageURL:     newUser.ImageURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	query := `
		INSERT INTO users (username, email, password_hash, bio, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	args := []any{user.Username, user.Email, user.PasswordHash, user.Bio, user.ImageURL, user.CreatedAt, user.UpdatedAt}
	_, err = databaseutils.ExecuteSingleQuery(c.sqlTemplate, ctx, query, func(rows *sql.Rows) (*models.User, error) {
		if err := rows.Scan(&user.ID); err != nil {
			return nil, xerrors.New(err)
		}
		return user, nil
	}, args...)

	if err != nil {
		if sentinel := uniqueViolationError(err, map[string]error{
			"users_email_key":    ErrDuplicateEmail,
			"users_username_key": ErrDuplicateUsername,
		}); sentinel != nil {
			return nil, xerrors.New(sentinel)
		}
		return nil, xerrors.New(err)
	}

	c.log.Info("User created", "user_id", user.ID, "username", user.Username)
	return user, nil
}

const selectUserColumns = `id, username, email, password_hash, bio, image_url, created_at, updated_at`

func scanUser(rows *sql.Rows) (*models.User, error) {
	var user = &models.User{}

	if err := rows.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Bio,
		&user.ImageURL,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, xerrors.New(err)
	}
	return user, nil
}

func (c *Core) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		WHERE email = $1
	`, selectUserColumns)

	user, err := databaseutils.ExecuteSingleQuery(c.sqlTemplate, ctx, query, scanUser, email)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, xerrors.New(ErrNoRecordFound)
		default:
			return nil, xerrors.New(err)
		}
	}

	return user, nil
}

func (c *Core) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		WHERE username = $1
	`, selectUserColumns)

	user, err := databaseutils.ExecuteSingleQuery(c.sqlTemplate, ctx, query, scanUser, username)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, xerrors.New(ErrNoRecordFound)
		default:
			return nil, xerrors.New(err)
		}
	}

	return user, nil
}

func (c *Core) GetUsersByIDList(ctx context.Context, userIDList []int64) ([]*models.User, error) {
	if len(userIDList) == 0 {
		return []*models.User{}, nil
	}

	placeholders, args := stringutils.INClause(userIDList)
	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		WHERE id IN (%s)
	`, selectUserColumns, strings.Join(placeholders, ", "))

	queryResultList, err := databaseutils.ExecuteQuery(c.sqlTemplate, ctx, query, scanUser, args...)
	if err != nil {
		return nil, xerrors.New(err)
	}

	return queryResultList, nil
}
