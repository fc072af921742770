package book

import (
	"context"

	"github.com/google/uuid"
)

// BookRepository is the persistence gateway for books.
type BookRepository interface {
	Create(ctx context.Context, entity *Book) (*Book, error)

	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)

	GetAll(ctx context.Context) ([]Book, error)

	// GetByCategoryID returns books owned directly by the category. Books
	// under subcategories are not included.
	GetByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]Book, error)

	Update(ctx context.Context, entity *Book) (*Book, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
