package book

import (
	"context"

	"github.com/google/uuid"
)

// BookService implements the book CRUD contract, including the
// category-resolution step that precedes every write.
type BookService interface {
	// Create resolves the body category reference; if it does not exist the
	// book is not persisted and ErrCategoryNotFound is returned.
	Create(ctx context.Context, req *CreateBookReq) (*BookResp, error)

	// CreateInCategory creates a book owned by the path category,
	// overriding any category a client may have put in the body.
	CreateInCategory(ctx context.Context, categoryID uuid.UUID, req *CreateBookInCategoryReq) (*BookResp, error)

	GetByID(ctx context.Context, id uuid.UUID) (*BookResp, error)

	List(ctx context.Context) ([]BookResp, error)

	// ListByCategory fails with ErrCategoryNotFound when the path category
	// does not exist; otherwise returns only that category's books.
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]BookResp, error)

	Patch(ctx context.Context, id uuid.UUID, req *PatchBookReq) (*BookResp, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
