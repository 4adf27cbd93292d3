package core

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/goconduit/conduit/internal/utils/collectionutils"
	"github.com/goconduit/conduit/internal/utils/databaseutils"
	"github.com/goconduit/conduit/models"
	"github.com/mdobak/go-xerrors"
)

// ResolveTags finds or creates a tag row for every name in the input set.
// Matching is case-sensitive exact match, and the input is deduplicated
// first, so resolving an overlapping set never produces duplicate rows. The
// upsert runs as one statement, which makes two callers racing on the same
// name converge on a single row.
func (c *Core) ResolveTags(ctx context.Context, names []string) ([]*models.Tag, error) {
	uniqueNames := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		uniqueNames = append(uniqueNames, name)
	}

	if len(uniqueNames) == 0 {
		return []*models.Tag{}, nil
	}

	// The statement will look like:
	// INSERT INTO tags (tag, created_at) VALUES ($1, $2), ($3, $4), ...
	now := time.Now().UTC()
	valueStrings := make([]string, 0, len(uniqueNames))
	valueArgs := make([]any, 0, len(uniqueNames)*2)
	for i, name := range uniqueNames {
		valueStrings = append(valueStrings, fmt.Sprintf("($%d, $%d)", i*2+1, i*2+2))
		valueArgs = append(valueArgs, name, now)
	}

	// The DO UPDATE arm makes existing rows show up in RETURNING, so every
	// input name resolves to an identifier in one round trip.
	insertSQL := fmt.Sprintf(`
		INSERT INTO tags (tag, created_at)
		VALUES %s
		ON CONFLICT (tag) DO UPDATE SET tag = EXCLUDED.tag
		RETURNING id, tag, created_at
	`, strings.Join(valueStrings, ", "))

	returnedTags, err := databaseutils.ExecuteQuery(c.sqlTemplate, ctx, insertSQL, scanTag, valueArgs...)
	if err != nil {
		return nil, xerrors.New(err)
	}

	tagsByName := collectionutils.Associate(returnedTags, func(tag *models.Tag) (string, *models.Tag) {
		return tag.Name, tag
	})

	resultTags := make([]*models.Tag, 0, len(uniqueNames))
	for _, name := range uniqueNames {
		tag, exists := tagsByName[name]
		if !exists {
			return nil, xerrors.Newf("tag %q missing from upsert result", name)
		}
		resultTags = append(resultTags, tag)
	}

	return resultTags, nil
}

func (c *Core) GetTags(ctx context.Context) ([]*models.Tag, error) {
	query := `
		SELECT id, tag, created_at
		FROM tags
		ORDER BY tag
	`

	tags, err := databaseutils.ExecuteQuery(c.sqlTemplate, ctx, query, scanTag)
	if err != nil {
		return nil, xerrors.New(err)
	}

	return tags, nil
}

func scanTag(rows *sql.Rows) (*models.Tag, error) {
	var tag = &models.Tag{}
	if err := rows.Scan(&tag.ID, &tag.Name, &tag.CreatedAt); err != nil {
		return nil, xerrors.New(err)
	}
	return tag, nil
}
