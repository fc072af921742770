package book

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// notBlank rejects values that trim to nothing; Required and NilOrNotEmpty
// both accept whitespace-only strings.
func notBlank(value interface{}) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return nil
		}
		s = *v
	}
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}

// CreateBookReq is the body for POST /books. The category comes from the
// body and must resolve to an existing record.
type CreateBookReq struct {
	Title    string     `json:"title"`
	ISBN     string     `json:"isbn"`
	Category *uuid.UUID `json:"category"`
}

func (r CreateBookReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.By(notBlank),
			validation.Length(1, 255),
		),
		validation.Field(&r.ISBN,
			validation.Required.Error("isbn is required"),
			validation.By(notBlank),
			validation.Length(1, 100),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
		),
	)
}

// CreateBookInCategoryReq is the body for POST /categories/{id}/books.
// The owning category always comes from the path; a category field in the
// body is never read, so it is not part of this struct.
type CreateBookInCategoryReq struct {
	Title string `json:"title"`
	ISBN  string `json:"isbn"`
}

func (r CreateBookInCategoryReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.By(notBlank),
			validation.Length(1, 255),
		),
		validation.Field(&r.ISBN,
			validation.Required.Error("isbn is required"),
			validation.By(notBlank),
			validation.Length(1, 100),
		),
	)
}

// PatchBookReq is the body for PATCH /books/{id}. Absent fields keep their
// previous values.
type PatchBookReq struct {
	Title    *string    `json:"title"`
	ISBN     *string    `json:"isbn"`
	Category *uuid.UUID `json:"category"`
}

func (r PatchBookReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be blank"),
			validation.By(notBlank),
		),
		validation.Field(&r.ISBN,
			validation.NilOrNotEmpty.Error("isbn cannot be blank"),
			validation.By(notBlank),
		),
	)
}

// BookResp renders the category as a bare identifier. The relation is a
// one-directional foreign reference, so no expansion happens here.
type BookResp struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	ISBN      string    `json:"isbn"`
	Category  uuid.UUID `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func BookToResp(b *Book) *BookResp {
	if b == nil {
		return nil
	}
	return &BookResp{
		ID:        b.ID,
		Title:     b.Title,
		ISBN:      b.ISBN,
		Category:  b.CategoryID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func BooksToResp(books []Book) []BookResp {
	resps := make([]BookResp, 0, len(books))
	for i := range books {
		resps = append(resps, *BookToResp(&books[i]))
	}
	return resps
}
