package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"bookcatalog-backend/internal/domains/book"
	"bookcatalog-backend/internal/domains/category"
	"bookcatalog-backend/internal/shared/response"
)

type BookHandler struct {
	service book.BookService
}

func NewBookHandler(svc book.BookService) *BookHandler {
	return &BookHandler{service: svc}
}

// List handles GET /books.
func (h *BookHandler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// Create handles POST /books; the category reference comes from the body.
func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

// ListByCategory handles GET /categories/:id/books.
func (h *BookHandler) ListByCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, category.ErrInvalidCategoryID.Error())
		return
	}

	resp, err := h.service.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// CreateInCategory handles POST /categories/:id/books. The owning category
// is the path category; any category in the body is ignored.
func (h *BookHandler) CreateInCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, category.ErrInvalidCategoryID.Error())
		return
	}

	var req book.CreateBookInCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	resp, err := h.service.CreateInCategory(c.Request.Context(), categoryID, &req)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

// GetByID handles GET /books/:id.
func (h *BookHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, book.ErrInvalidBookID.Error())
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// Patch handles PATCH /books/:id; absent fields keep their values.
func (h *BookHandler) Patch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, book.ErrInvalidBookID.Error())
		return
	}

	var req book.PatchBookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	resp, err := h.service.Patch(c.Request.Context(), id, &req)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// Delete handles DELETE /books/:id.
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, book.ErrInvalidBookID.Error())
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}
	response.NoContent(c)
}

func respondValidationError(c *gin.Context, err error) {
	var fields validation.Errors
	if errors.As(err, &fields) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", fields)
		return
	}
	response.BadRequest(c, err.Error())
}

func respondDomainError(c *gin.Context, err error) {
	switch book.GetHTTPStatusCode(err) {
	case http.StatusNotFound:
		response.NotFound(c, err.Error())
	case http.StatusBadRequest:
		response.BadRequest(c, err.Error())
	default:
		response.InternalServerError(c, "internal server error")
	}
}
