package stringutils

import (
	"fmt"
	"regexp"
	"strings"
)

var nonAlphanumericRuns = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe identifier from a title: lower-cased, runs of
// non-alphanumeric characters collapsed to a single hyphen, leading and
// trailing hyphens trimmed. The result is a pure function of the input.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = nonAlphanumericRuns.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	return slug
}

// INClause builds the placeholder list and argument slice for a SQL IN
// clause, e.g. ["$1", "$2"] and the matching args.
func INClause[T any](list []T) (placeholders []string, args []any) {
	placeholders = make([]string, len(list))
	args = make([]any, len(list))
	for i, item := range list {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = item
	}

	return placeholders, args
}
