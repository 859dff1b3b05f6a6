package repository

import (
	"context"

	"github.com/google/uuid"

	"bookcms-backend/internal/domains/news/model"
)

// RepositoryInterface defines data access for news articles.
// Read operations see published articles only unless noted.
type RepositoryInterface interface {
	// ListPublished returns published articles, newest first. When
	// category is non-empty it filters on the rubric; a value outside
	// the rubric set simply matches nothing.
	ListPublished(ctx context.Context, category string) ([]model.News, error)

	// GetPublishedBySlug returns one published article.
	// Errors: ErrNewsNotFound (also for unpublished articles)
	GetPublishedBySlug(ctx context.Context, slug string) (*model.News, error)

	// IncrementViews atomically adds one to the article's view counter
	// and returns the new value. Concurrent calls never lose updates.
	IncrementViews(ctx context.Context, id uuid.UUID) (int64, error)

	// ListRelated returns published articles in the same rubric,
	// excluding newsID, newest first, up to limit.
	ListRelated(ctx context.Context, newsID uuid.UUID, category model.NewsCategory, limit int) ([]model.News, error)

	// ListLatest returns up to limit published articles, newest first.
	ListLatest(ctx context.Context, limit int) ([]model.News, error)

	// Create inserts an article.
	// Errors: ErrDuplicateSlug
	Create(ctx context.Context, news *model.News) (*model.News, error)

	// ExistsBySlug checks slug availability.
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
