package category

import (
	"context"

	"github.com/google/uuid"
)

// CategoryRepository is the persistence gateway for categories. The Postgres
// implementation lives in repository/; tests supply in-memory fakes.
type CategoryRepository interface {
	Create(ctx context.Context, entity *Category) (*Category, error)

	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// GetAll returns every category ordered by creation time.
	GetAll(ctx context.Context) ([]Category, error)

	Update(ctx context.Context, entity *Category) (*Category, error)

	// Delete removes the category. Returns ErrCategoryNotFound when the id
	// does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// ExistsByName reports whether another category already uses the name.
	// excludeID skips the record being updated.
	ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)

	// GetAncestors returns the parent chain of a category from its direct
	// parent up to the root. Used for cycle detection on re-parenting.
	GetAncestors(ctx context.Context, id uuid.UUID) ([]Category, error)

	HasChildren(ctx context.Context, id uuid.UUID) (bool, error)

	// CountBooks counts books owned directly by the category.
	CountBooks(ctx context.Context, id uuid.UUID) (int64, error)
}
