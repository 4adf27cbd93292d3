package core

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goconduit/conduit/internal/utils"
	"github.com/goconduit/conduit/internal/utils/collectionutils"
	"github.com/goconduit/conduit/internal/utils/databaseutils"
	"github.com/goconduit/conduit/internal/utils/stringutils"
	"github.com/goconduit/conduit/models"
	"github.com/mdobak/go-xerrors"
)

// NewArticle is a validated article-creation payload. AuthorID must refer to
// an existing user; the caller proves existence before calling in.
type NewArticle struct {
	AuthorID    int64
	Title       string
	Description string
	Body        string
	TagNames    []string
}

// CreateArticle inserts the article and its tag associations as one unit:
// either the article row, every tag row, and every association row exist
// afterwards, or nothing does. The slug is derived from the title; a title
// that normalizes to an existing slug is rejected with ErrDuplicateSlug
// rather than disambiguated.
func (c *Core) CreateArticle(ctx context.Context, newArticle NewArticle) (*models.Article, error) {
	slug := stringutils.Slugify(newArticle.Title)

	article, err := databaseutils.DoTransactionally(ctx, c.session, func(txCtx context.Context) (*models.Article, error) {
		article, err := c.insertArticle(txCtx, slug, newArticle)
		if err != nil {
			return nil, err
		}

		tags, err := c.ResolveTags(txCtx, newArticle.TagNames)
		if err != nil {
			return nil, err
		}

		if err := c.insertArticleTags(txCtx, article.ID, tags); err != nil {
			return nil, err
		}

		article.TagList = utils.Map(tags, func(tag *models.Tag) string { return tag.Name })
		return article, nil
	})

	if err != nil {
		return nil, err
	}

	c.log.Info("Article created", "article_id", article.ID, "slug", article.Slug)
	return article, nil
}

func (c *Core) insertArticle(ctx context.Context, slug string, newArticle NewArticle) (*models.Article, error) {
	const insertSQL = `
		INSERT INTO articles (author_id, slug, title, description, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	now := time.Now().UTC()
	article := &models.Article{
		AuthorID:    newArticle.AuthorID,
		Slug:        slug,
		Title:       newArticle.Title,
		Description: newArticle.Description,
		Body:        newArticle.Body,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	args := []any{article.AuthorID, article.Slug, article.Title, article.Description, article.Body, article.CreatedAt, article.UpdatedAt}
	_, err := databaseutils.ExecuteSingleQuery(c.sqlTemplate, ctx, insertSQL, func(rows *sql.Rows) (*models.Article, error) {
		if err := rows.Scan(&article.ID); err != nil {
			return nil, xerrors.New(err)
		}
		return article, nil
	}, args...)

	if err != nil {
		if sentinel := uniqueViolationError(err, map[string]error{
			"articles_slug_key": ErrDuplicateSlug,
		}); sentinel != nil {
			return nil, xerrors.New(sentinel)
		}
		return nil, xerrors.New(err)
	}

	return article, nil
}

func (c *Core) insertArticleTags(ctx context.Context, articleID int64, tags []*models.Tag) error {
	if len(tags) == 0 {
		return nil
	}

	now := time.Now().UTC()
	valueStrings := make([]string, 0, len(tags))
	valueArgs := make([]any, 0, len(tags)*3)
	for i, tag := range tags {
		valueStrings = append(valueStrings, fmt.Sprintf("($%d, $%d, $%d)", i*3+1, i*3+2, i*3+3))
		valueArgs = append(valueArgs, articleID, tag.ID, now)
	}

	insertSQL := fmt.Sprintf(`
		INSERT INTO article_tags (article_id, tag_id, created_at)
		VALUES %s
	`, strings.Join(valueStrings, ", "))

	executor := databaseutils.GetSQLExecutor(ctx, c.db)
	if _, err := executor.ExecContext(ctx, insertSQL, valueArgs...); err != nil {
		return xerrors.New(err)
	}

	return nil
}

func (c *Core) GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	query := `
		SELECT id, author_id, slug, title, description, body, created_at, updated_at
		FROM articles
		WHERE slug = $1
	`

	article, err := databaseutils.ExecuteSingleQuery(c.sqlTemplate, ctx, query, scanArticle, slug)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, xerrors.New(ErrNoRecordFound)
		default:
			return nil, xerrors.New(err)
		}
	}

	tagsByArticle, err := c.GetTagsForArticles(ctx, []int64{article.ID})
	if err != nil {
		return nil, xerrors.New(err)
	}
	article.TagList = collectionutils.GetOrDefault(tagsByArticle, article.ID, []string{})

	return article, nil
}

// GetTagsForArticles returns the tag names attached to each of the given
// articles, keyed by article identifier.
func (c *Core) GetTagsForArticles(ctx context.Context, articleIDList []int64) (map[int64][]string, error) {
	if len(articleIDList) == 0 {
		return map[int64][]string{}, nil
	}

	placeholders, args := stringutils.INClause(articleIDList)
	query := fmt.Sprintf(`
		SELECT at.article_id, t.tag
		FROM article_tags at
		JOIN tags t ON t.id = at.tag_id
		WHERE at.article_id IN (%s)
		ORDER BY t.tag
	`, strings.Join(placeholders, ", "))

	type articleTagRow struct {
		articleID int64
		tagName   string
	}

	rows, err := databaseutils.ExecuteQuery(c.sqlTemplate, ctx, query, func(rows *sql.Rows) (articleTagRow, error) {
		var row articleTagRow
		if err := rows.Scan(&row.articleID, &row.tagName); err != nil {
			return articleTagRow{}, xerrors.New(err)
		}
		return row, nil
	}, args...)

	if err != nil {
		return nil, xerrors.New(err)
	}

	grouped := collectionutils.GroupBy(rows, func(row articleTagRow) int64 { return row.articleID })
	result := make(map[int64][]string, len(grouped))
	for articleID, articleRows := range grouped {
		result[articleID] = utils.Map(articleRows, func(row articleTagRow) string { return row.tagName })
	}

	return result, nil
}

func scanArticle(rows *sql.Rows) (*models.Article, error) {
	var article = &models.Article{}
	if err := rows.Scan(
		&article.ID,
		&article.AuthorID,
		&article.Slug,
		&article.Title,
		&article.Description,
		&article.Body,
		&article.CreatedAt,
		&article.UpdatedAt,
	); err != nil {
		return nil, xerrors.New(err)
	}
	return article, nil
}
