package core

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/goconduit/conduit/internal/utils/databaseutils"
	"github.com/goconduit/conduit/models"
	"github.com/mdobak/go-xerrors"
)

// FollowUser creates the directed edge follower -> following. The edge is
// set membership: a self-follow and a duplicate pair are both conflicts.
func (c *Core) FollowUser(ctx context.Context, followerID, followingID int64) (*models.Follow, error) {
	if followerID == followingID {
		return nil, xerrors.New(ErrSelfFollow)
	}

	insertSQL := `
		INSERT INTO follows (follower_id, following_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING follower_id, following_id, created_at
	`

	now := time.Now().UTC()
	follow, err := databaseutils.ExecuteSingleQuery(c.sqlTemplate, ctx, insertSQL, func(rows *sql.Rows) (*models.Follow, error) {
		var follow models.Follow
		if err := rows.Scan(&follow.FollowerID, &follow.FollowingID, &follow.CreatedAt); err != nil {
			return nil, xerrors.New(err)
		}
		return &follow, nil
	}, followerID, followingID, now)

	if err != nil {
		if sentinel := uniqueViolationError(err, map[string]error{
			"follows_pkey": ErrDuplicateFollow,
		}); sentinel != nil {
			return nil, xerrors.New(sentinel)
		}
		return nil, xerrors.New(err)
	}

	return follow, nil
}

// UnfollowUser removes the edge. Removing an edge that does not exist
// surfaces ErrNoRecordFound.
func (c *Core) UnfollowUser(ctx context.Context, followerID, followingID int64) error {
	deleteSQL := `
		DELETE FROM follows
		WHERE follower_id = $1 AND following_id = $2
	`

	executor := databaseutils.GetSQLExecutor(ctx, c.db)
	result, err := executor.ExecContext(ctx, deleteSQL, followerID, followingID)
	if err != nil {
		return xerrors.New(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return xerrors.New(err)
	}

	if affected == 0 {
		return xerrors.New(ErrNoRecordFound)
	}

	return nil
}

func (c *Core) IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM follows WHERE follower_id = $1 AND following_id = $2
		)
	`

	isFollowing, err := databaseutils.ExecuteSingleQuery(c.sqlTemplate, ctx, query, func(rows *sql.Rows) (bool, error) {
		var following bool
		if err := rows.Scan(&following); err != nil {
			return false, xerrors.New(err)
		}
		return following, nil
	}, followerID, followingID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, xerrors.New(err)
	}

	return isFollowing, nil
}
