package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookcms-backend/internal/domains/news/model"
)

// News detail reads go straight to Postgres: every access bumps the
// view counter, so a read-through cache would swallow increments.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{
		pool: pool,
	}
}

const newsColumns = `
    id, title, slug, category, summary, body, image_url,
    is_published, published_at, views_count, created_at`

func scanNews(row pgx.Row, n *model.News) error {
	return row.Scan(
		&n.ID,
		&n.Title,
		&n.Slug,
		&n.Category,
		&n.Summary,
		&n.Body,
		&n.ImageURL,
		&n.IsPublished,
		&n.PublishedAt,
		&n.ViewsCount,
		&n.CreatedAt,
	)
}

func collectNews(rows pgx.Rows) ([]model.News, error) {
	var items []model.News
	for rows.Next() {
		var n model.News
		if err := scanNews(rows, &n); err != nil {
			return nil, fmt.Errorf("failed to scan news: %w", err)
		}
		items = append(items, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating news: %w", err)
	}

	return items, nil
}

func (r *postgresRepository) ListPublished(ctx context.Context, category string) ([]model.News, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
        SELECT ` + newsColumns + `
        FROM news
        WHERE is_published = true
    `)

	args := []interface{}{}
	if category != "" {
		queryBuilder.WriteString(" AND category = $1")
		args = append(args, category)
	}

	queryBuilder.WriteString(" ORDER BY published_at DESC")

	rows, err := r.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}
	defer rows.Close()

	return collectNews(rows)
}

func (r *postgresRepository) GetPublishedBySlug(ctx context.Context, slug string) (*model.News, error) {
	query := `
        SELECT ` + newsColumns + `
        FROM news
        WHERE slug = $1 AND is_published = true
    `

	var n model.News
	if err := scanNews(r.pool.QueryRow(ctx, query, slug), &n); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNewsNotFound
		}
		return nil, fmt.Errorf("failed to get news by slug: %w", err)
	}

	return &n, nil
}

// IncrementViews relies on a single UPDATE so the read-modify-write
// happens inside Postgres; concurrent requests serialize on the row.
func (r *postgresRepository) IncrementViews(ctx context.Context, id uuid.UUID) (int64, error) {
	query := `
        UPDATE news
        SET views_count = views_count + 1
        WHERE id = $1
        RETURNING views_count
    `

	var views int64
	if err := r.pool.QueryRow(ctx, query, id).Scan(&views); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, model.ErrNewsNotFound
		}
		return 0, fmt.Errorf("failed to increment views: %w", err)
	}

	return views, nil
}

func (r *postgresRepository) ListRelated(ctx context.Context, newsID uuid.UUID, category model.NewsCategory, limit int) ([]model.News, error) {
	query := `
        SELECT ` + newsColumns + `
        FROM news
        WHERE is_published = true
          AND category = $1
          AND id <> $2
        ORDER BY published_at DESC
        LIMIT $3
    `

	rows, err := r.pool.Query(ctx, query, category, newsID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query related news: %w", err)
	}
	defer rows.Close()

	return collectNews(rows)
}

func (r *postgresRepository) ListLatest(ctx context.Context, limit int) ([]model.News, error) {
	query := `
        SELECT ` + newsColumns + `
        FROM news
        WHERE is_published = true
        ORDER BY published_at DESC
        LIMIT $1
    `

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest news: %w", err)
	}
	defer rows.Close()

	return collectNews(rows)
}

func (r *postgresRepository) Create(ctx context.Context, news *model.News) (*model.News, error) {
	query := `
        INSERT INTO news (title, slug, category, summary, body, image_url,
                          is_published, published_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + newsColumns

	var created model.News
	err := scanNews(r.pool.QueryRow(
		ctx,
		query,
		news.Title,
		news.Slug,
		news.Category,
		news.Summary,
		news.Body,
		news.ImageURL,
		news.IsPublished,
		news.PublishedAt,
	), &created)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.Message, "slug") {
			return nil, model.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to create news: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM news WHERE slug = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}

	return exists, nil
}
