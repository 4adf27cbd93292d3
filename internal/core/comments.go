package core

import (
	"context"
	"database/sql"
	"time"

	"github.com/goconduit/conduit/internal/utils/databaseutils"
	"github.com/goconduit/conduit/models"
	"github.com/mdobak/go-xerrors"
)

// NewComment is a validated comment-creation payload. ArticleID and AuthorID
// must refer to existing entities; a dangling reference is detected by the
// foreign key atomically with the insert and nothing is persisted.
type NewComment struct {
	ArticleID int64
	AuthorID  int64
	Body      string
}

func (c *Core) CreateComment(ctx context.Context, newComment NewComment) (*models.Comment, error) {
	insertSQL := `
		INSERT INTO comments (article_id, author_id, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, article_id, author_id, body, created_at, updated_at
	`

	now := time.Now().UTC()
	comment, err := databaseutils.ExecuteSingleQuery(c.sqlTemplate, ctx, insertSQL, func(rows *sql.Rows) (*models.Comment, error) {
		var comment models.Comment
		if err := rows.Scan(&comment.ID, &comment.ArticleID, &comment.AuthorID, &comment.Body, &comment.CreatedAt, &comment.UpdatedAt); err != nil {
			return nil, xerrors.New(err)
		}
		return &comment, nil
	}, newComment.ArticleID, newComment.AuthorID, newComment.Body, now, now)

	if err != nil {
		return nil, xerrors.New(err)
	}

	return comment, nil
}

func (c *Core) GetCommentsForArticle(ctx context.Context, articleID int64) ([]*models.Comment, error) {
	query := `
		SELECT id, article_id, author_id, body, created_at, updated_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at
	`

	comments, err := databaseutils.ExecuteQuery(c.sqlTemplate, ctx, query, func(rows *sql.Rows) (*models.Comment, error) {
		var comment models.Comment
		if err := rows.Scan(&comment.ID, &comment.ArticleID, &comment.AuthorID, &comment.Body, &comment.CreatedAt, &comment.UpdatedAt); err != nil {
			return nil, xerrors.New(err)
		}
		return &comment, nil
	}, articleID)

	if err != nil {
		return nil, xerrors.New(err)
	}

	return comments, nil
}
