package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookcms-backend/internal/domains/category/model"
	"bookcms-backend/pkg/cache"
)

// postgresRepository implements RepositoryInterface with raw SQL over
// pgxpool plus a Redis read-through cache for the category list.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) RepositoryInterface {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	categoryListKey    = "categories:all"
	categorySlugPrefix = "category:slug:"
	categoryCacheTTL   = 15 * time.Minute
)

func (r *postgresRepository) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if found, err := r.cache.Get(ctx, categoryListKey, &categories); err == nil && found {
		return categories, nil
	}

	query := `
        SELECT id, name, slug, description, created_at
        FROM categories
        ORDER BY name ASC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	r.cache.Set(ctx, categoryListKey, categories, categoryCacheTTL)

	return categories, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	cacheKey := categorySlugPrefix + slug

	var c model.Category
	if found, err := r.cache.Get(ctx, cacheKey, &c); err == nil && found {
		return &c, nil
	}

	query := `
        SELECT id, name, slug, description, created_at
        FROM categories
        WHERE slug = $1
    `

	err := r.pool.QueryRow(ctx, query, slug).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by slug: %w", err)
	}

	r.cache.Set(ctx, cacheKey, c, categoryCacheTTL)

	return &c, nil
}

func (r *postgresRepository) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	query := `
        INSERT INTO categories (name, slug, description)
        VALUES ($1, $2, $3)
        RETURNING id, name, slug, description, created_at
    `

	var created model.Category
	err := r.pool.QueryRow(ctx, query, category.Name, category.Slug, category.Description).Scan(
		&created.ID,
		&created.Name,
		&created.Slug,
		&created.Description,
		&created.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" && strings.Contains(pgErr.Message, "slug") { // unique_violation
				return nil, model.ErrDuplicateSlug
			}
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	r.cache.Delete(ctx, categoryListKey)

	return &created, nil
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM categories WHERE slug = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}

	return exists, nil
}
