package service

import (
	"context"

	"bookcms-backend/internal/domains/news/model"
)

// RelatedLimit caps the related-articles block on a detail page.
const RelatedLimit = 3

// ServiceInterface defines business logic for the news domain.
type ServiceInterface interface {
	// List returns published articles, newest first, optionally
	// filtered by rubric. An unknown rubric yields an empty list.
	List(ctx context.Context, category string) ([]model.News, error)

	// GetDetail retrieves one published article and counts the view:
	// every call bumps the article's view counter by exactly one, and a
	// failed increment fails the request. The related articles share
	// the rubric, exclude the article itself, and are capped at
	// RelatedLimit, newest first.
	// Errors: ErrNewsNotFound
	GetDetail(ctx context.Context, slug string) (*model.News, []model.News, error)

	// Latest returns up to limit published articles for the home page.
	Latest(ctx context.Context, limit int) ([]model.News, error)

	// Create creates an article with a derived slug.
	// Errors: validation.Errors, ErrDuplicateSlug
	Create(ctx context.Context, req *model.CreateNewsRequest) (*model.News, error)
}
