package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckAccumulatesFirstErrorPerKey(t *testing.T) {
	v := New()
	assert.True(t, v.IsValid())

	v.Check(false, "title", "must be provided")
	v.Check(false, "title", "must be longer")

	assert.False(t, v.IsValid())
	assert.Equal(t, "must be provided", v.Errors["title"])
}

func TestCheckNotBlank(t *testing.T) {
	v := New()
	v.CheckNotBlank("   ", "username", "must be provided")
	assert.False(t, v.IsValid())

	v = New()
	v.CheckNotBlank("johndoe", "username", "must be provided")
	assert.True(t, v.IsValid())
}

func TestCheckEmail(t *testing.T) {
	v := New()
	v.CheckEmail("john@example.com", "must be a valid email address")
	assert.True(t, v.IsValid())

	v = New()
	v.CheckEmail("not-an-email", "must be a valid email address")
	assert.False(t, v.IsValid())
}

func TestIsUnique(t *testing.T) {
	v := New()
	assert.True(t, v.IsUnique([]string{"python", "webdev"}))
	assert.False(t, v.IsUnique([]string{"python", "python"}))
}
