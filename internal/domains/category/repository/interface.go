package repository

import (
	"context"

	"bookcms-backend/internal/domains/category/model"
)

// RepositoryInterface defines data access for book categories.
type RepositoryInterface interface {
	// List returns all categories ordered by name ascending.
	List(ctx context.Context) ([]model.Category, error)

	// GetBySlug returns ErrCategoryNotFound if the slug does not exist.
	GetBySlug(ctx context.Context, slug string) (*model.Category, error)

	// Create inserts a new category.
	// Errors: ErrDuplicateSlug if the slug is taken (DB unique constraint).
	Create(ctx context.Context, category *model.Category) (*model.Category, error)

	// ExistsBySlug checks slug availability before insert.
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
