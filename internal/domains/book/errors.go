package book

import (
	"errors"
	"net/http"
)

var (
	ErrBookNotFound = errors.New("book not found")

	// ErrCategoryNotFound: the owning-category reference (path parameter or
	// request body) does not resolve to an existing category.
	ErrCategoryNotFound = errors.New("category not found")

	ErrInvalidBookID = errors.New("invalid book id")
)

func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound), errors.Is(err, ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidBookID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
