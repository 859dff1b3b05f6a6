package service

import (
	"context"

	"bookcms-backend/internal/domains/author/model"
)

// ServiceInterface defines business logic for the author domain.
type ServiceInterface interface {
	// List returns authors matching the filter, name ascending.
	// Category and popular filters are conjunctive; an unknown
	// category slug yields an empty list, not an error.
	List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, error)

	// GetBySlug retrieves one author with its categories.
	// Errors: ErrAuthorNotFound
	GetBySlug(ctx context.Context, slug string) (*model.Author, error)

	// Popular returns up to limit popular authors for the home page.
	Popular(ctx context.Context, limit int) ([]model.Author, error)

	// Categories returns the author-category taxonomy.
	Categories(ctx context.Context) ([]model.AuthorCategory, error)

	// Create creates an author with a derived slug.
	// Errors: validation.Errors, ErrDuplicateSlug
	Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error)
}
