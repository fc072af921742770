package book

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Book belongs to exactly one category at any time. CategoryID is assigned
// either from the request body or from the owning-category path, never nil.
type Book struct {
	ID         uuid.UUID
	Title      string
	ISBN       string
	CategoryID uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBook validates the required fields and builds a book ready for
// persistence. Category existence is resolved by the service beforehand.
func NewBook(title, isbn string, categoryID uuid.UUID) (*Book, error) {
	title = strings.TrimSpace(title)
	isbn = strings.TrimSpace(isbn)

	if title == "" {
		return nil, errors.New("book title cannot be empty")
	}
	if len(title) > 255 {
		return nil, fmt.Errorf("book title must not exceed 255 characters (got %d)", len(title))
	}
	if isbn == "" {
		return nil, errors.New("book isbn cannot be empty")
	}
	if len(isbn) > 100 {
		return nil, fmt.Errorf("book isbn must not exceed 100 characters (got %d)", len(isbn))
	}
	if categoryID == uuid.Nil {
		return nil, errors.New("book category is required")
	}

	now := time.Now()
	return &Book{
		ID:         uuid.New(),
		Title:      title,
		ISBN:       isbn,
		CategoryID: categoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// ApplyPatch updates only the fields present in the request; nil pointers
// leave the current value untouched.
func (b *Book) ApplyPatch(title, isbn *string, categoryID *uuid.UUID) error {
	if title != nil {
		t := strings.TrimSpace(*title)
		if t == "" {
			return errors.New("book title cannot be empty")
		}
		if len(t) > 255 {
			return fmt.Errorf("book title must not exceed 255 characters (got %d)", len(t))
		}
		b.Title = t
	}

	if isbn != nil {
		i := strings.TrimSpace(*isbn)
		if i == "" {
			return errors.New("book isbn cannot be empty")
		}
		if len(i) > 100 {
			return fmt.Errorf("book isbn must not exceed 100 characters (got %d)", len(i))
		}
		b.ISBN = i
	}

	if categoryID != nil {
		if *categoryID == uuid.Nil {
			return errors.New("book category is required")
		}
		b.CategoryID = *categoryID
	}

	b.UpdatedAt = time.Now()
	return nil
}
