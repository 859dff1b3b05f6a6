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

	"bookcms-backend/internal/domains/book/model"
)

// stubBookService returns canned data and records the filter it was
// called with.
type stubBookService struct {
	books      []model.Book
	detail     *model.Book
	related    []model.Book
	detailErr  error
	lastFilter model.CatalogFilter
}

func (s *stubBookService) List(_ context.Context, filter model.CatalogFilter) ([]model.Book, error) {
	s.lastFilter = filter
	return s.books, nil
}

func (s *stubBookService) GetBySlug(_ context.Context, _ string) (*model.Book, error) {
	if s.detailErr != nil {
		return nil, s.detailErr
	}
	return s.detail, nil
}

func (s *stubBookService) Related(_ context.Context, _ *model.Book) ([]model.Book, error) {
	return s.related, nil
}

func (s *stubBookService) ListByAuthor(_ context.Context, _ uuid.UUID) ([]model.Book, error) {
	return s.books, nil
}

func (s *stubBookService) Newest(_ context.Context, _ int) ([]model.Book, error) {
	return s.books, nil
}

func (s *stubBookService) Create(_ context.Context, req *model.CreateBookRequest) (*model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &model.Book{ID: uuid.New(), Title: req.Title}, nil
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func setupBookRouter(svc *stubBookService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookHandler(svc)

	r := gin.New()
	r.GET("/catalog", h.List)
	r.GET("/catalog/:slug", h.GetBySlug)
	r.POST("/catalog", h.Create)
	return r
}

func TestListBindsQueryParameters(t *testing.T) {
	svc := &stubBookService{}
	router := setupBookRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/catalog?category=fiction&search=war&sort=title", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fiction", svc.lastFilter.Category)
	assert.Equal(t, "war", svc.lastFilter.Search)
	assert.Equal(t, model.SortTitle, svc.lastFilter.Sort)
}

func TestListReturnsEmptyArrayNotNull(t *testing.T) {
	router := setupBookRouter(&stubBookService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestGetBySlugNotFound(t *testing.T) {
	svc := &stubBookService{detailErr: model.ErrBookNotFound}
	router := setupBookRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/catalog/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestGetBySlugIncludesRelatedBlock(t *testing.T) {
	book := model.Book{ID: uuid.New(), Title: "Source", Slug: "source"}
	svc := &stubBookService{
		detail:  &book,
		related: []model.Book{{ID: uuid.New(), Title: "Neighbor"}},
	}
	router := setupBookRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/catalog/source", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data struct {
			Book    model.Book   `json:"book"`
			Related []model.Book `json:"related_books"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))

	assert.Equal(t, "Source", envelope.Data.Book.Title)
	require.Len(t, envelope.Data.Related, 1)
	assert.Equal(t, "Neighbor", envelope.Data.Related[0].Title)
}

func TestCreateRejectsInvalidBody(t *testing.T) {
	router := setupBookRouter(&stubBookService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/catalog", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateValidationFailureIs422(t *testing.T) {
	router := setupBookRouter(&stubBookService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/catalog", jsonBody(`{"title":""}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_FAILED")
}
