package service

import (
	"context"

	"bookcms-backend/internal/domains/category/model"
)

// ServiceInterface defines business logic for book categories.
type ServiceInterface interface {
	// List returns all categories, name ascending.
	List(ctx context.Context) ([]model.Category, error)

	// GetBySlug retrieves a single category.
	// Errors: ErrCategoryNotFound
	GetBySlug(ctx context.Context, slug string) (*model.Category, error)

	// Create creates a category. When the request carries no slug one
	// is derived from the name; the slug is never recomputed afterwards.
	// Errors: ErrDuplicateSlug
	Create(ctx context.Context, req *model.CreateCategoryRequest) (*model.Category, error)
}
