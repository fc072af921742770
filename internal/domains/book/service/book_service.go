package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"bookcatalog-backend/internal/domains/book"
	"bookcatalog-backend/internal/domains/category"
	"bookcatalog-backend/pkg/logger"
)

type bookService struct {
	repo       book.BookRepository
	categories category.CategoryRepository
}

// NewBookService wires the book gateway plus the category gateway used to
// resolve owning-category references.
func NewBookService(repo book.BookRepository, categories category.CategoryRepository) book.BookService {
	return &bookService{repo: repo, categories: categories}
}

func (s *bookService) Create(ctx context.Context, req *book.CreateBookReq) (*book.BookResp, error) {
	if req == nil || req.Category == nil {
		return nil, fmt.Errorf("create book: invalid request")
	}

	if err := s.resolveCategory(ctx, *req.Category); err != nil {
		return nil, err
	}

	entity, err := book.NewBook(req.Title, req.ISBN, *req.Category)
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		logger.Error("book create failed", err)
		return nil, err
	}

	return book.BookToResp(created), nil
}

func (s *bookService) CreateInCategory(ctx context.Context, categoryID uuid.UUID, req *book.CreateBookInCategoryReq) (*book.BookResp, error) {
	if req == nil {
		return nil, fmt.Errorf("create book: invalid request")
	}

	// The path category is the owner regardless of anything in the body,
	// and it must exist before any write happens.
	if err := s.resolveCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	entity, err := book.NewBook(req.Title, req.ISBN, categoryID)
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		logger.Error("book create failed", err)
		return nil, err
	}

	return book.BookToResp(created), nil
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*book.BookResp, error) {
	if id == uuid.Nil {
		return nil, book.ErrInvalidBookID
	}

	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return book.BookToResp(entity), nil
}

func (s *bookService) List(ctx context.Context) ([]book.BookResp, error) {
	entities, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return book.BooksToResp(entities), nil
}

func (s *bookService) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]book.BookResp, error) {
	if err := s.resolveCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	entities, err := s.repo.GetByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return book.BooksToResp(entities), nil
}

func (s *bookService) Patch(ctx context.Context, id uuid.UUID, req *book.PatchBookReq) (*book.BookResp, error) {
	if id == uuid.Nil {
		return nil, book.ErrInvalidBookID
	}
	if req == nil {
		return nil, fmt.Errorf("patch book: invalid request")
	}

	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Reassignment to another category is a reference write and gets the
	// same resolve-first treatment as creation.
	if req.Category != nil {
		if err := s.resolveCategory(ctx, *req.Category); err != nil {
			return nil, err
		}
	}

	if err := entity.ApplyPatch(req.Title, req.ISBN, req.Category); err != nil {
		return nil, fmt.Errorf("patch book: %w", err)
	}

	updated, err := s.repo.Update(ctx, entity)
	if err != nil {
		logger.Error("book patch failed", err)
		return nil, err
	}

	return book.BookToResp(updated), nil
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return book.ErrInvalidBookID
	}
	return s.repo.Delete(ctx, id)
}

func (s *bookService) resolveCategory(ctx context.Context, id uuid.UUID) error {
	exists, err := s.categories.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("resolve category: %w", err)
	}
	if !exists {
		return book.ErrCategoryNotFound
	}
	return nil
}
