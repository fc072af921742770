package category

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	c, err := NewCategory("Science Fiction", nil)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.Equal(t, "Science Fiction", c.Name)
	assert.Equal(t, "science-fiction", c.Slug)
	assert.Nil(t, c.ParentID)
	assert.True(t, c.IsRoot())
	assert.False(t, c.CreatedAt.IsZero())
}

func TestNewCategory_TrimsName(t *testing.T) {
	c, err := NewCategory("  History  ", nil)

	require.NoError(t, err)
	assert.Equal(t, "History", c.Name)
	assert.Equal(t, "history", c.Slug)
}

func TestNewCategory_WithParent(t *testing.T) {
	parentID := uuid.New()

	c, err := NewCategory("Biology", &parentID)

	require.NoError(t, err)
	require.NotNil(t, c.ParentID)
	assert.Equal(t, parentID, *c.ParentID)
	assert.False(t, c.IsRoot())
}

func TestNewCategory_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"too long", strings.Repeat("a", 256)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCategory(tt.input, nil)
			assert.Error(t, err)
		})
	}
}

func TestCategory_Replace(t *testing.T) {
	parentID := uuid.New()
	c, err := NewCategory("Science", &parentID)
	require.NoError(t, err)
	createdAt := c.CreatedAt

	err = c.Replace("Natural Sciences", nil)

	require.NoError(t, err)
	assert.Equal(t, "Natural Sciences", c.Name)
	assert.Equal(t, "natural-sciences", c.Slug)
	assert.Nil(t, c.ParentID, "absent parent clears the existing one")
	assert.Equal(t, createdAt, c.CreatedAt)
}

func TestCategory_Replace_Invalid(t *testing.T) {
	c, err := NewCategory("Science", nil)
	require.NoError(t, err)

	assert.Error(t, c.Replace("", nil))
	assert.Error(t, c.Replace(strings.Repeat("a", 256), nil))
	assert.Equal(t, "Science", c.Name, "failed replace leaves the entity untouched")
}
