package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcms-backend/internal/domains/author/model"
	bookmodel "bookcms-backend/internal/domains/book/model"
)

type stubAuthorService struct {
	authors    []model.Author
	detail     *model.Author
	detailErr  error
	lastFilter model.AuthorFilter
}

func (s *stubAuthorService) List(_ context.Context, filter model.AuthorFilter) ([]model.Author, error) {
	s.lastFilter = filter
	return s.authors, nil
}

func (s *stubAuthorService) GetBySlug(_ context.Context, _ string) (*model.Author, error) {
	if s.detailErr != nil {
		return nil, s.detailErr
	}
	return s.detail, nil
}

func (s *stubAuthorService) Popular(_ context.Context, _ int) ([]model.Author, error) {
	return s.authors, nil
}

func (s *stubAuthorService) Categories(_ context.Context) ([]model.AuthorCategory, error) {
	return nil, nil
}

func (s *stubAuthorService) Create(_ context.Context, req *model.CreateAuthorRequest) (*model.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &model.Author{ID: uuid.New(), Name: req.Name}, nil
}

type stubAuthorBookService struct {
	books []bookmodel.Book
}

func (s *stubAuthorBookService) List(_ context.Context, _ bookmodel.CatalogFilter) ([]bookmodel.Book, error) {
	return nil, nil
}

func (s *stubAuthorBookService) GetBySlug(_ context.Context, _ string) (*bookmodel.Book, error) {
	return nil, bookmodel.ErrBookNotFound
}

func (s *stubAuthorBookService) Related(_ context.Context, _ *bookmodel.Book) ([]bookmodel.Book, error) {
	return nil, nil
}

func (s *stubAuthorBookService) ListByAuthor(_ context.Context, _ uuid.UUID) ([]bookmodel.Book, error) {
	return s.books, nil
}

func (s *stubAuthorBookService) Newest(_ context.Context, _ int) ([]bookmodel.Book, error) {
	return nil, nil
}

func (s *stubAuthorBookService) Create(_ context.Context, _ *bookmodel.CreateBookRequest) (*bookmodel.Book, error) {
	return nil, nil
}

func setupAuthorRouter(svc *stubAuthorService, books *stubAuthorBookService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthorHandler(svc, books)

	r := gin.New()
	r.GET("/authors", h.List)
	r.GET("/authors/:slug", h.GetBySlug)
	return r
}

func TestListPopularFlagIsPresenceBased(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected bool
	}{
		{"absent", "/authors", false},
		{"numeric one", "/authors?popular=1", true},
		{"any value", "/authors?popular=yes", true},
		{"even zero counts", "/authors?popular=0", true},
		{"empty value is absent", "/authors?popular=", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubAuthorService{}
			router := setupAuthorRouter(svc, &stubAuthorBookService{})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.expected, svc.lastFilter.PopularOnly)
		})
	}
}

func TestListPassesCategoryFilter(t *testing.T) {
	svc := &stubAuthorService{}
	router := setupAuthorRouter(svc, &stubAuthorBookService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/authors?category=poets", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "poets", svc.lastFilter.Category)
}

func TestGetBySlugComposesBooks(t *testing.T) {
	author := model.Author{ID: uuid.New(), Name: "Лев Толстой", Slug: "lev-tolstoj"}
	svc := &stubAuthorService{detail: &author}
	books := &stubAuthorBookService{
		books: []bookmodel.Book{{ID: uuid.New(), Title: "Война и мир"}},
	}
	router := setupAuthorRouter(svc, books)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/authors/lev-tolstoj", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data struct {
			Author model.Author     `json:"author"`
			Books  []bookmodel.Book `json:"books"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))

	assert.Equal(t, "Лев Толстой", envelope.Data.Author.Name)
	require.Len(t, envelope.Data.Books, 1)
	assert.Equal(t, "Война и мир", envelope.Data.Books[0].Title)
}

func TestGetBySlugNotFound(t *testing.T) {
	svc := &stubAuthorService{detailErr: model.ErrAuthorNotFound}
	router := setupAuthorRouter(svc, &stubAuthorBookService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/authors/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
