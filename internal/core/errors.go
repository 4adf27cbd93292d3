package core

import (
	"errors"

	"github.com/lib/pq"
	"github.com/mdobak/go-xerrors"
)

var (
	ErrDuplicateEmail    = xerrors.Message("Duplicate email")
	ErrDuplicateUsername = xerrors.Message("Duplicate username")
	ErrDuplicateSlug     = xerrors.Message("Duplicate slug")
	ErrDuplicateFollow   = xerrors.Message("User is already followed")
	ErrSelfFollow        = xerrors.Message("User cannot follow itself")
	ErrNoRecordFound     = xerrors.Message("No record found")
)

// Postgres SQLSTATE codes. Constraint violations are classified by code, not
// by matching error message strings.
const (
	pgUniqueViolation     = pq.ErrorCode("23505")
	pgForeignKeyViolation = pq.ErrorCode("23503")
	pgCheckViolation      = pq.ErrorCode("23514")
	pgSerializationFail   = pq.ErrorCode("40001")
	pgDeadlockDetected    = pq.ErrorCode("40P01")
)

var conflictSentinels = []error{
	ErrDuplicateEmail,
	ErrDuplicateUsername,
	ErrDuplicateSlug,
	ErrDuplicateFollow,
	ErrSelfFollow,
}

// IsConflict reports whether err means a uniqueness invariant would be
// violated by the requested write. Conflicts are surfaced to the caller and
// never retried automatically.
func IsConflict(err error) bool {
	for _, sentinel := range conflictSentinels {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	if pqErr := pqError(err); pqErr != nil {
		return pqErr.Code == pgUniqueViolation || pqErr.Code == pgCheckViolation
	}

	return false
}

// IsPreconditionFailed reports whether err means a referenced entity does
// not exist. The external layer proves existence before calling in, so this
// class is a programming error, not a user-facing condition.
func IsPreconditionFailed(err error) bool {
	if pqErr := pqError(err); pqErr != nil {
		return pqErr.Code == pgForeignKeyViolation
	}

	return false
}

// IsTransient reports whether err is an infrastructure failure of the
// storage round trip. This is the only class a caller may retry: each
// logical operation is a single transaction, so a failed one has not
// partially committed.
func IsTransient(err error) bool {
	if pqErr := pqError(err); pqErr != nil {
		return pqErr.Code.Class() == "08" ||
			pqErr.Code == pgSerializationFail ||
			pqErr.Code == pgDeadlockDetected
	}

	return false
}

// uniqueViolationError maps a unique-constraint violation to the sentinel
// registered for that constraint. It returns nil when err is anything else.
func uniqueViolationError(err error, sentinelByConstraint map[string]error) error {
	pqErr := pqError(err)
	if pqErr == nil || pqErr.Code != pgUniqueViolation {
		return nil
	}

	if sentinel, ok := sentinelByConstraint[pqErr.Constraint]; ok {
		return sentinel
	}

	return nil
}

func pqError(err error) *pq.Error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr
	}
	return nil
}
