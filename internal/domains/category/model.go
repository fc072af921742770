package category

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"bookcatalog-backend/internal/shared/utils"
)

// Category is a named grouping in the catalog tree. ParentID is nil for root
// categories; when set it must reference an existing category.
type Category struct {
	ID       uuid.UUID
	Name     string
	Slug     string
	ParentID *uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory validates input and builds a category ready for persistence.
// Parent existence is the service's job; this only checks local invariants.
func NewCategory(name string, parentID *uuid.UUID) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("category name cannot be empty")
	}
	if len(name) > 255 {
		return nil, fmt.Errorf("category name must not exceed 255 characters (got %d)", len(name))
	}

	now := time.Now()
	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Slug:      utils.GenerateSlug(name),
		ParentID:  parentID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Replace applies full-replace semantics: every writable field is set from
// the arguments, including clearing the parent when parentID is nil.
func (c *Category) Replace(name string, parentID *uuid.UUID) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("category name cannot be empty")
	}
	if len(name) > 255 {
		return fmt.Errorf("category name must not exceed 255 characters (got %d)", len(name))
	}

	c.Name = name
	c.Slug = utils.GenerateSlug(name)
	c.ParentID = parentID
	c.UpdatedAt = time.Now()

	return nil
}

func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}
