package stringutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Getting Started with FastAPI", "getting-started-with-fastapi"},
		{"Building RESTful APIs: Best Practices", "building-restful-apis-best-practices"},
		{"Understanding Python Async/Await", "understanding-python-async-await"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Multiple---separators___here", "multiple-separators-here"},
		{"!!!", ""},
		{"Already-A-Slug", "already-a-slug"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.title), "title %q", tc.title)
	}
}

func TestSlugifyIsDeterministic(t *testing.T) {
	title := "Database Design Fundamentals"
	assert.Equal(t, Slugify(title), Slugify(title))
}

func TestINClause(t *testing.T) {
	placeholders, args := INClause([]int64{7, 8, 9})

	assert.Equal(t, []string{"$1", "$2", "$3"}, placeholders)
	assert.Equal(t, []any{int64(7), int64(8), int64(9)}, args)
}
