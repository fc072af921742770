package category

import (
	"errors"
	"net/http"
)

// Sentinel errors for the category domain. Services return these (possibly
// wrapped) and handlers map them to HTTP status codes with errors.Is.
var (
	ErrCategoryNotFound = errors.New("category not found")

	// ErrParentNotFound: the parent_category reference does not resolve to
	// an existing category. Reported as 404 on the referenced parent.
	ErrParentNotFound = errors.New("parent category not found")

	// ErrDuplicateName: category names are unique across the catalog.
	ErrDuplicateName = errors.New("category name already exists")

	// ErrCircularParent: the new parent is the category itself or one of
	// its descendants.
	ErrCircularParent = errors.New("circular reference: category cannot be moved under itself or its descendants")

	// Deleting a category with dependents is rejected rather than cascaded.
	ErrHasChildren = errors.New("cannot delete category that has subcategories")
	ErrHasBooks    = errors.New("cannot delete category that has books")

	ErrInvalidCategoryID = errors.New("invalid category id")
)

// GetHTTPStatusCode maps a domain error onto the response status.
// Duplicate names are a validation failure (400), not a conflict: the caller
// must correct input. Dependent deletes are conflicts (409).
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrCategoryNotFound), errors.Is(err, ErrParentNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateName),
		errors.Is(err, ErrCircularParent),
		errors.Is(err, ErrInvalidCategoryID):
		return http.StatusBadRequest
	case errors.Is(err, ErrHasChildren), errors.Is(err, ErrHasBooks):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
