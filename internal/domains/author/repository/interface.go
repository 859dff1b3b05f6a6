package repository

import (
	"context"

	"github.com/google/uuid"

	"bookcms-backend/internal/domains/author/model"
)

// RepositoryInterface defines data access for authors and their
// category taxonomy.
type RepositoryInterface interface {
	// List returns authors matching the filter, ordered by name
	// ascending. An unknown category slug yields an empty slice.
	List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, error)

	// GetBySlug returns the author with categories loaded.
	// Errors: ErrAuthorNotFound
	GetBySlug(ctx context.Context, slug string) (*model.Author, error)

	// ListPopular returns up to limit popular authors.
	ListPopular(ctx context.Context, limit int) ([]model.Author, error)

	// ListCategories returns all author categories, name ascending.
	ListCategories(ctx context.Context) ([]model.AuthorCategory, error)

	// Create inserts an author and its category links in one
	// transaction. Errors: ErrDuplicateSlug
	Create(ctx context.Context, author *model.Author, categoryIDs []uuid.UUID) (*model.Author, error)

	// ExistsBySlug checks slug availability.
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
