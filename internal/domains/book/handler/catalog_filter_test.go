package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcms-backend/internal/domains/book/model"
	"bookcms-backend/internal/domains/book/service"
)

// memoryBookRepo implements the repository filter contract in memory so
// the full handler -> service -> listing path can be exercised without
// a database.
type memoryBookRepo struct {
	books      []model.Book
	categories map[uuid.UUID][]string // book ID -> category slugs
}

func (m *memoryBookRepo) List(_ context.Context, filter model.CatalogFilter) ([]model.Book, error) {
	var out []model.Book
	for _, b := range m.books {
		if !b.IsAvailable {
			continue
		}
		if filter.Category != "" && !m.inCategory(b.ID, filter.Category) {
			continue
		}
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(b.Title), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.Sort == model.SortPopular && !b.IsBestseller {
			continue
		}
		out = append(out, b)
	}

	if filter.Sort == model.SortTitle {
		sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	} else {
		sort.Slice(out, func(i, j int) bool {
			return out[i].PublicationDate.After(out[j].PublicationDate)
		})
	}

	return out, nil
}

func (m *memoryBookRepo) inCategory(id uuid.UUID, slug string) bool {
	for _, s := range m.categories[id] {
		if s == slug {
			return true
		}
	}
	return false
}

func (m *memoryBookRepo) GetBySlug(_ context.Context, slug string) (*model.Book, error) {
	for i := range m.books {
		if m.books[i].Slug == slug && m.books[i].IsAvailable {
			return &m.books[i], nil
		}
	}
	return nil, model.ErrBookNotFound
}

func (m *memoryBookRepo) FindRelatedCandidates(_ context.Context, _ uuid.UUID, _ []uuid.UUID) ([]model.Book, error) {
	return nil, nil
}

func (m *memoryBookRepo) ListByAuthor(_ context.Context, _ uuid.UUID) ([]model.Book, error) {
	return nil, nil
}

func (m *memoryBookRepo) ListNewest(_ context.Context, _ int) ([]model.Book, error) {
	return nil, nil
}

func (m *memoryBookRepo) Create(_ context.Context, book *model.Book, _ []uuid.UUID) (*model.Book, error) {
	return book, nil
}

func (m *memoryBookRepo) ExistsBySlug(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func fixtureCatalog() *memoryBookRepo {
	day := func(d int) time.Time {
		return time.Date(2026, time.January, d, 0, 0, 0, 0, time.UTC)
	}

	warAndPeace := model.Book{ID: uuid.New(), Title: "War and Peace", Slug: "war-and-peace",
		PublicationDate: day(3), IsAvailable: true, IsBestseller: true}
	annaKarenina := model.Book{ID: uuid.New(), Title: "Anna Karenina", Slug: "anna-karenina",
		PublicationDate: day(5), IsAvailable: true}
	cosmos := model.Book{ID: uuid.New(), Title: "Cosmos", Slug: "cosmos",
		PublicationDate: day(1), IsAvailable: true, IsBestseller: true}
	outOfPrint := model.Book{ID: uuid.New(), Title: "War Diaries", Slug: "war-diaries",
		PublicationDate: day(9), IsAvailable: false}

	return &memoryBookRepo{
		books: []model.Book{warAndPeace, annaKarenina, cosmos, outOfPrint},
		categories: map[uuid.UUID][]string{
			warAndPeace.ID:  {"fiction", "classics"},
			annaKarenina.ID: {"fiction"},
			cosmos.ID:       {"science"},
			outOfPrint.ID:   {"fiction"},
		},
	}
}

func catalogRouter(repo *memoryBookRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookHandler(service.NewBookService(repo))

	r := gin.New()
	r.GET("/catalog", h.List)
	return r
}

func listTitles(t *testing.T, router *gin.Engine, url string) []string {
	t.Helper()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data []model.Book `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))

	titles := make([]string, 0, len(envelope.Data))
	for _, b := range envelope.Data {
		titles = append(titles, b.Title)
	}
	return titles
}

func TestCatalogDefaultListing(t *testing.T) {
	router := catalogRouter(fixtureCatalog())

	// Newest first; the unavailable book never appears.
	assert.Equal(t,
		[]string{"Anna Karenina", "War and Peace", "Cosmos"},
		listTitles(t, router, "/catalog"))
}

func TestCatalogCategoryFilter(t *testing.T) {
	router := catalogRouter(fixtureCatalog())

	assert.Equal(t,
		[]string{"Anna Karenina", "War and Peace"},
		listTitles(t, router, "/catalog?category=fiction"))

	assert.Empty(t, listTitles(t, router, "/catalog?category=no-such-category"),
		"unknown category slug yields an empty result, not an error")
}

func TestCatalogSearchFilter(t *testing.T) {
	router := catalogRouter(fixtureCatalog())

	// Case-insensitive substring on the title; the unavailable "War
	// Diaries" stays hidden.
	assert.Equal(t,
		[]string{"War and Peace"},
		listTitles(t, router, "/catalog?search=WAR"))
}

func TestCatalogFiltersAreConjunctive(t *testing.T) {
	router := catalogRouter(fixtureCatalog())

	assert.Equal(t,
		[]string{"Anna Karenina"},
		listTitles(t, router, "/catalog?category=fiction&search=anna"))

	assert.Empty(t, listTitles(t, router, "/catalog?category=science&search=anna"))
}

func TestCatalogPopularNarrowsToBestsellers(t *testing.T) {
	router := catalogRouter(fixtureCatalog())

	// sort=popular filters, it does not reorder: default newest-first
	// ordering holds within the bestsellers.
	assert.Equal(t,
		[]string{"War and Peace", "Cosmos"},
		listTitles(t, router, "/catalog?sort=popular"))
}

func TestCatalogTitleSort(t *testing.T) {
	router := catalogRouter(fixtureCatalog())

	assert.Equal(t,
		[]string{"Anna Karenina", "Cosmos", "War and Peace"},
		listTitles(t, router, "/catalog?sort=title"))
}

func TestCatalogUnknownSortFallsBackToNewest(t *testing.T) {
	router := catalogRouter(fixtureCatalog())

	assert.Equal(t,
		listTitles(t, router, "/catalog"),
		listTitles(t, router, "/catalog?sort=banana"))
}
