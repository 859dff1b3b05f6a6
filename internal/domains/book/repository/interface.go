package repository

import (
	"context"

	"github.com/google/uuid"

	"bookcms-backend/internal/domains/book/model"
)

// RepositoryInterface defines data access for the book catalog.
// All read operations see available books only unless noted.
type RepositoryInterface interface {
	// List returns available books matching a normalized filter.
	// Ordering: publication date descending, unless filter.Sort is
	// SortTitle (title ascending). SortPopular additionally restricts
	// to bestsellers. Unknown category slug yields an empty slice.
	List(ctx context.Context, filter model.CatalogFilter) ([]model.Book, error)

	// GetBySlug returns an available book with categories loaded.
	// Unavailable or missing books are both ErrBookNotFound.
	GetBySlug(ctx context.Context, slug string) (*model.Book, error)

	// FindRelatedCandidates returns available books sharing at least
	// one of the given categories, excluding bookID, in default order.
	// A book appears once per shared category; the caller dedups.
	FindRelatedCandidates(ctx context.Context, bookID uuid.UUID, categoryIDs []uuid.UUID) ([]model.Book, error)

	// ListByAuthor returns the author's available books, default order.
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error)

	// ListNewest returns up to limit available books, newest first.
	ListNewest(ctx context.Context, limit int) ([]model.Book, error)

	// Create inserts a book and its category links atomically.
	// Errors: ErrDuplicateSlug, ErrAuthorNotFound (FK violation)
	Create(ctx context.Context, book *model.Book, categoryIDs []uuid.UUID) (*model.Book, error)

	// ExistsBySlug checks slug availability.
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
