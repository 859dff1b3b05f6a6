package service

import (
	"context"

	"github.com/google/uuid"

	"bookcms-backend/internal/domains/book/model"
)

// RelatedLimit caps the related-books block on a detail page.
const RelatedLimit = 4

// ServiceInterface defines business logic for the book catalog.
type ServiceInterface interface {
	// List returns available books matching the filter.
	// Semantics:
	// - category: membership by category slug; unknown slug = empty
	// - search: case-insensitive substring on title
	// - both filters are conjunctive
	// - sort "new" (default): publication date descending
	// - sort "popular": restricts to bestsellers (kept verbatim; it is
	//   a filter, not a reorder)
	// - sort "title": ascending by title
	List(ctx context.Context, filter model.CatalogFilter) ([]model.Book, error)

	// GetBySlug retrieves one available book.
	// Errors: ErrBookNotFound (also for unavailable books)
	GetBySlug(ctx context.Context, slug string) (*model.Book, error)

	// Related returns up to RelatedLimit available books sharing at
	// least one category with the source, deduplicated, source
	// excluded, in default order. No shared categories = empty slice.
	Related(ctx context.Context, book *model.Book) ([]model.Book, error)

	// ListByAuthor returns the author's available books.
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error)

	// Newest returns up to limit available books for the home page.
	Newest(ctx context.Context, limit int) ([]model.Book, error)

	// Create creates a book with a derived slug.
	// Errors: validation.Errors, ErrDuplicateSlug, ErrAuthorNotFound
	Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error)
}
