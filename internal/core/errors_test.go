package core

import (
	"testing"

	"github.com/lib/pq"
	"github.com/mdobak/go-xerrors"
	"github.com/stretchr/testify/assert"
)

func TestIsConflict(t *testing.T) {
	for _, sentinel := range []error{
		ErrDuplicateEmail,
		ErrDuplicateUsername,
		ErrDuplicateSlug,
		ErrDuplicateFollow,
		ErrSelfFollow,
	} {
		assert.True(t, IsConflict(xerrors.New(sentinel)), "sentinel %v", sentinel)
	}

	uniqueViolation := &pq.Error{Code: "23505", Constraint: "tags_tag_key"}
	assert.True(t, IsConflict(xerrors.New(uniqueViolation)))

	assert.False(t, IsConflict(xerrors.New(ErrNoRecordFound)))
	assert.False(t, IsConflict(xerrors.New("boom")))
}

func TestIsPreconditionFailed(t *testing.T) {
	fkViolation := &pq.Error{Code: "23503", Constraint: "comments_article_id_fkey"}
	assert.True(t, IsPreconditionFailed(xerrors.New(fkViolation)))

	uniqueViolation := &pq.Error{Code: "23505"}
	assert.False(t, IsPreconditionFailed(xerrors.New(uniqueViolation)))
	assert.False(t, IsPreconditionFailed(xerrors.New("boom")))
}

func TestIsTransient(t *testing.T) {
	for _, code := range []pq.ErrorCode{"08000", "08006", "40001", "40P01"} {
		assert.True(t, IsTransient(xerrors.New(&pq.Error{Code: code})), "code %s", code)
	}

	assert.False(t, IsTransient(xerrors.New(&pq.Error{Code: "23505"})))
	assert.False(t, IsTransient(xerrors.New(ErrDuplicateSlug)))
}

func TestUniqueViolationError(t *testing.T) {
	sentinels := map[string]error{
		"users_email_key":    ErrDuplicateEmail,
		"users_username_key": ErrDuplicateUsername,
	}

	err := xerrors.New(&pq.Error{Code: "23505", Constraint: "users_email_key"})
	assert.Equal(t, ErrDuplicateEmail, uniqueViolationError(err, sentinels))

	unmapped := xerrors.New(&pq.Error{Code: "23505", Constraint: "something_else"})
	assert.Nil(t, uniqueViolationError(unmapped, sentinels))

	notUnique := xerrors.New(&pq.Error{Code: "23503", Constraint: "users_email_key"})
	assert.Nil(t, uniqueViolationError(notUnique, sentinels))
}
