package category

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// notBlank rejects values that trim to nothing; Required alone accepts
// whitespace-only strings.
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

// CreateCategoryReq is the body for POST /categories. The parent, when
// present, is an identifier that must resolve before anything is written.
type CreateCategoryReq struct {
	Name           string     `json:"name"`
	ParentCategory *uuid.UUID `json:"parent_category"`
}

func (r CreateCategoryReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.By(notBlank),
			validation.Length(1, 255),
		),
	)
}

// ReplaceCategoryReq is the body for PUT /categories/{id}. Full-replace
// semantics: name is mandatory and an absent parent_category clears the
// parent, making the category a root.
type ReplaceCategoryReq struct {
	Name           string     `json:"name"`
	ParentCategory *uuid.UUID `json:"parent_category"`
}

func (r ReplaceCategoryReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.By(notBlank),
			validation.Length(1, 255),
		),
	)
}

// CategoryResp serializes a category with its parent expanded exactly one
// level. The nested parent carries its own scalar fields plus the bare
// grandparent id; it is never expanded further.
type CategoryResp struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	Slug           string      `json:"slug"`
	ParentCategory *ParentResp `json:"parent_category"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// ParentResp bounds expansion at depth 1: only scalar fields, grandparent by
// identifier.
type ParentResp struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	Slug     string     `json:"slug"`
	ParentID *uuid.UUID `json:"parent_id"`
}

// CategoryToResp maps an entity to its wire form. parent must be the already
// resolved parent record, or nil for roots.
func CategoryToResp(c *Category, parent *Category) *CategoryResp {
	if c == nil {
		return nil
	}

	resp := &CategoryResp{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}

	if parent != nil {
		resp.ParentCategory = &ParentResp{
			ID:       parent.ID,
			Name:     parent.Name,
			Slug:     parent.Slug,
			ParentID: parent.ParentID,
		}
	}

	return resp
}
