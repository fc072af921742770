package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog-backend/internal/domains/book"
)

type stubBookService struct {
	createFn           func(ctx context.Context, req *book.CreateBookReq) (*book.BookResp, error)
	createInCategoryFn func(ctx context.Context, categoryID uuid.UUID, req *book.CreateBookInCategoryReq) (*book.BookResp, error)
	getFn              func(ctx context.Context, id uuid.UUID) (*book.BookResp, error)
	listFn             func(ctx context.Context) ([]book.BookResp, error)
	listByCategoryFn   func(ctx context.Context, categoryID uuid.UUID) ([]book.BookResp, error)
	patchFn            func(ctx context.Context, id uuid.UUID, req *book.PatchBookReq) (*book.BookResp, error)
	deleteFn           func(ctx context.Context, id uuid.UUID) error
}

func (s *stubBookService) Create(ctx context.Context, req *book.CreateBookReq) (*book.BookResp, error) {
	return s.createFn(ctx, req)
}

func (s *stubBookService) CreateInCategory(ctx context.Context, categoryID uuid.UUID, req *book.CreateBookInCategoryReq) (*book.BookResp, error) {
	return s.createInCategoryFn(ctx, categoryID, req)
}

func (s *stubBookService) GetByID(ctx context.Context, id uuid.UUID) (*book.BookResp, error) {
	return s.getFn(ctx, id)
}

func (s *stubBookService) List(ctx context.Context) ([]book.BookResp, error) {
	return s.listFn(ctx)
}

func (s *stubBookService) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]book.BookResp, error) {
	return s.listByCategoryFn(ctx, categoryID)
}

func (s *stubBookService) Patch(ctx context.Context, id uuid.UUID, req *book.PatchBookReq) (*book.BookResp, error) {
	return s.patchFn(ctx, id, req)
}

func (s *stubBookService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func newTestRouter(svc book.BookService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookHandler(svc)
	r := gin.New()
	r.GET("/api/v1/books", h.List)
	r.POST("/api/v1/books", h.Create)
	r.GET("/api/v1/books/:id", h.GetByID)
	r.PATCH("/api/v1/books/:id", h.Patch)
	r.DELETE("/api/v1/books/:id", h.Delete)
	r.GET("/api/v1/categories/:id/books", h.ListByCategory)
	r.POST("/api/v1/categories/:id/books", h.CreateInCategory)
	return r
}

func performRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestBookHandler_Create(t *testing.T) {
	categoryID := uuid.New()
	svc := &stubBookService{
		createFn: func(_ context.Context, req *book.CreateBookReq) (*book.BookResp, error) {
			require.NotNil(t, req.Category)
			assert.Equal(t, categoryID, *req.Category)
			return &book.BookResp{ID: uuid.New(), Title: req.Title, ISBN: req.ISBN, Category: *req.Category}, nil
		},
	}

	w := performRequest(newTestRouter(svc), http.MethodPost, "/api/v1/books",
		`{"title":"The Selfish Gene","isbn":"978-0-19-286092-7","category":"`+categoryID.String()+`"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)

	var data book.BookResp
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, categoryID, data.Category)
}

func TestBookHandler_Create_MissingFields(t *testing.T) {
	svc := &stubBookService{}

	w := performRequest(newTestRouter(svc), http.MethodPost, "/api/v1/books", `{"title":"Sapiens"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Equal(t, "isbn is required", env.Error.Details["isbn"])
	assert.Equal(t, "category is required", env.Error.Details["category"])
}

func TestBookHandler_Create_BlankFields(t *testing.T) {
	svc := &stubBookService{}

	w := performRequest(newTestRouter(svc), http.MethodPost, "/api/v1/books",
		`{"title":"   ","isbn":"  ","category":"`+uuid.NewString()+`"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Equal(t, "cannot be blank", env.Error.Details["title"])
	assert.Equal(t, "cannot be blank", env.Error.Details["isbn"])
}

func TestBookHandler_Create_CategoryNotFound(t *testing.T) {
	svc := &stubBookService{
		createFn: func(_ context.Context, _ *book.CreateBookReq) (*book.BookResp, error) {
			return nil, book.ErrCategoryNotFound
		},
	}

	w := performRequest(newTestRouter(svc), http.MethodPost, "/api/v1/books",
		`{"title":"Sapiens","isbn":"978-0-06-231609-7","category":"`+uuid.NewString()+`"}`)

	require.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestBookHandler_CreateInCategory_PathOwnsBook(t *testing.T) {
	pathCategoryID := uuid.New()
	bodyCategoryID := uuid.New()
	svc := &stubBookService{
		createInCategoryFn: func(_ context.Context, categoryID uuid.UUID, req *book.CreateBookInCategoryReq) (*book.BookResp, error) {
			assert.Equal(t, pathCategoryID, categoryID)
			return &book.BookResp{ID: uuid.New(), Title: req.Title, ISBN: req.ISBN, Category: categoryID}, nil
		},
	}

	// A category in the body must be ignored; only the path decides.
	w := performRequest(newTestRouter(svc), http.MethodPost,
		"/api/v1/categories/"+pathCategoryID.String()+"/books",
		`{"title":"Sapiens","isbn":"978-0-06-231609-7","category":"`+bodyCategoryID.String()+`"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w)
	var data book.BookResp
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, pathCategoryID, data.Category)
}

func TestBookHandler_CreateInCategory_InvalidCategoryID(t *testing.T) {
	svc := &stubBookService{}

	w := performRequest(newTestRouter(svc), http.MethodPost, "/api/v1/categories/not-a-uuid/books",
		`{"title":"Sapiens","isbn":"978-0-06-231609-7"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookHandler_ListByCategory(t *testing.T) {
	categoryID := uuid.New()
	svc := &stubBookService{
		listByCategoryFn: func(_ context.Context, gotID uuid.UUID) ([]book.BookResp, error) {
			assert.Equal(t, categoryID, gotID)
			return []book.BookResp{{ID: uuid.New(), Title: "The Selfish Gene", Category: gotID}}, nil
		},
	}

	w := performRequest(newTestRouter(svc), http.MethodGet,
		"/api/v1/categories/"+categoryID.String()+"/books", "")

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	var data []book.BookResp
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data, 1)
	assert.Equal(t, categoryID, data[0].Category)
}

func TestBookHandler_ListByCategory_CategoryNotFound(t *testing.T) {
	svc := &stubBookService{
		listByCategoryFn: func(_ context.Context, _ uuid.UUID) ([]book.BookResp, error) {
			return nil, book.ErrCategoryNotFound
		},
	}

	w := performRequest(newTestRouter(svc), http.MethodGet,
		"/api/v1/categories/"+uuid.NewString()+"/books", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookHandler_GetByID_NotFound(t *testing.T) {
	svc := &stubBookService{
		getFn: func(_ context.Context, _ uuid.UUID) (*book.BookResp, error) {
			return nil, book.ErrBookNotFound
		},
	}

	w := performRequest(newTestRouter(svc), http.MethodGet, "/api/v1/books/"+uuid.NewString(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookHandler_Patch(t *testing.T) {
	id := uuid.New()
	svc := &stubBookService{
		patchFn: func(_ context.Context, gotID uuid.UUID, req *book.PatchBookReq) (*book.BookResp, error) {
			assert.Equal(t, id, gotID)
			require.NotNil(t, req.Title)
			assert.Nil(t, req.ISBN)
			assert.Nil(t, req.Category)
			return &book.BookResp{ID: gotID, Title: *req.Title}, nil
		},
	}

	w := performRequest(newTestRouter(svc), http.MethodPatch, "/api/v1/books/"+id.String(),
		`{"title":"The Extended Phenotype"}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBookHandler_Patch_BlankTitle(t *testing.T) {
	svc := &stubBookService{}

	w := performRequest(newTestRouter(svc), http.MethodPatch, "/api/v1/books/"+uuid.NewString(),
		`{"title":""}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Equal(t, "title cannot be blank", env.Error.Details["title"])
}

func TestBookHandler_Patch_WhitespaceTitle(t *testing.T) {
	svc := &stubBookService{}

	w := performRequest(newTestRouter(svc), http.MethodPatch, "/api/v1/books/"+uuid.NewString(),
		`{"title":"   "}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Equal(t, "cannot be blank", env.Error.Details["title"])
}

func TestBookHandler_Delete(t *testing.T) {
	svc := &stubBookService{
		deleteFn: func(_ context.Context, _ uuid.UUID) error { return nil },
	}

	w := performRequest(newTestRouter(svc), http.MethodDelete, "/api/v1/books/"+uuid.NewString(), "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestBookHandler_Delete_NotFound(t *testing.T) {
	svc := &stubBookService{
		deleteFn: func(_ context.Context, _ uuid.UUID) error { return book.ErrBookNotFound },
	}

	w := performRequest(newTestRouter(svc), http.MethodDelete, "/api/v1/books/"+uuid.NewString(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
