package category

import (
	"context"

	"github.com/google/uuid"
)

// CategoryService implements the CRUD and parent-resolution contract exposed
// by the category endpoints.
type CategoryService interface {
	// Create resolves the optional parent reference before writing; when the
	// parent does not exist nothing is persisted and ErrParentNotFound is
	// returned.
	Create(ctx context.Context, req *CreateCategoryReq) (*CategoryResp, error)

	GetByID(ctx context.Context, id uuid.UUID) (*CategoryResp, error)

	// List returns all categories, each with its parent expanded one level.
	List(ctx context.Context) ([]CategoryResp, error)

	// Replace applies full-replace semantics with the same validation as
	// Create, plus cycle rejection on the new parent.
	Replace(ctx context.Context, id uuid.UUID, req *ReplaceCategoryReq) (*CategoryResp, error)

	// Delete rejects removal while books or subcategories still reference
	// the category.
	Delete(ctx context.Context, id uuid.UUID) error
}
