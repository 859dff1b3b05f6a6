package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookcms-backend/internal/domains/author/model"
	"bookcms-backend/pkg/cache"
)

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
	authorSlugPrefix      = "author:slug:"
	authorCategoryListKey = "author-categories:all"
	authorCacheTTL        = 15 * time.Minute
)

const authorColumns = `id, name, slug, bio, photo_url, birth_date, is_popular, created_at`

func scanAuthor(row pgx.Row, a *model.Author) error {
	return row.Scan(
		&a.ID,
		&a.Name,
		&a.Slug,
		&a.Bio,
		&a.PhotoURL,
		&a.BirthDate,
		&a.IsPopular,
		&a.CreatedAt,
	)
}

// List builds the filtered query dynamically. The base ordering is
// name ascending; both filters narrow the result (AND semantics).
func (r *postgresRepository) List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
        SELECT ` + authorColumns + `
        FROM authors
        WHERE 1=1
    `)

	args := []interface{}{}
	argPos := 1

	if filter.Category != "" {
		queryBuilder.WriteString(fmt.Sprintf(` AND EXISTS (
            SELECT 1
            FROM author_category_links l
            JOIN author_categories ac ON ac.id = l.author_category_id
            WHERE l.author_id = authors.id AND ac.slug = $%d
        )`, argPos))
		args = append(args, filter.Category)
		argPos++
	}

	if filter.PopularOnly {
		queryBuilder.WriteString(" AND is_popular = true")
	}

	queryBuilder.WriteString(" ORDER BY name ASC")

	rows, err := r.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []model.Author
	for rows.Next() {
		var a model.Author
		if err := scanAuthor(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*model.Author, error) {
	cacheKey := authorSlugPrefix + slug

	var a model.Author
	if found, err := r.cache.Get(ctx, cacheKey, &a); err == nil && found {
		return &a, nil
	}

	query := `SELECT ` + authorColumns + ` FROM authors WHERE slug = $1`

	if err := scanAuthor(r.pool.QueryRow(ctx, query, slug), &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by slug: %w", err)
	}

	categories, err := r.loadCategories(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	a.Categories = categories

	r.cache.Set(ctx, cacheKey, a, authorCacheTTL)

	return &a, nil
}

func (r *postgresRepository) loadCategories(ctx context.Context, authorID uuid.UUID) ([]model.AuthorCategory, error) {
	query := `
        SELECT ac.id, ac.name, ac.slug, ac.description
        FROM author_categories ac
        JOIN author_category_links l ON l.author_category_id = ac.id
        WHERE l.author_id = $1
        ORDER BY ac.name ASC
    `

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query author categories: %w", err)
	}
	defer rows.Close()

	var categories []model.AuthorCategory
	for rows.Next() {
		var c model.AuthorCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description); err != nil {
			return nil, fmt.Errorf("failed to scan author category: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *postgresRepository) ListPopular(ctx context.Context, limit int) ([]model.Author, error) {
	query := `
        SELECT ` + authorColumns + `
        FROM authors
        WHERE is_popular = true
        ORDER BY name ASC
        LIMIT $1
    `

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query popular authors: %w", err)
	}
	defer rows.Close()

	var authors []model.Author
	for rows.Next() {
		var a model.Author
		if err := scanAuthor(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	return authors, rows.Err()
}

func (r *postgresRepository) ListCategories(ctx context.Context) ([]model.AuthorCategory, error) {
	var categories []model.AuthorCategory
	if found, err := r.cache.Get(ctx, authorCategoryListKey, &categories); err == nil && found {
		return categories, nil
	}

	query := `
        SELECT id, name, slug, description
        FROM author_categories
        ORDER BY name ASC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query author categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c model.AuthorCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description); err != nil {
			return nil, fmt.Errorf("failed to scan author category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating author categories: %w", err)
	}

	r.cache.Set(ctx, authorCategoryListKey, categories, authorCacheTTL)

	return categories, nil
}

// Create inserts the author and its category links atomically.
func (r *postgresRepository) Create(ctx context.Context, author *model.Author, categoryIDs []uuid.UUID) (*model.Author, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO authors (name, slug, bio, photo_url, birth_date, is_popular)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + authorColumns + `
    `

	var created model.Author
	err = scanAuthor(tx.QueryRow(
		ctx,
		query,
		author.Name,
		author.Slug,
		author.Bio,
		author.PhotoURL,
		author.BirthDate,
		author.IsPopular,
	), &created)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" && strings.Contains(pgErr.Message, "slug") {
				return nil, model.ErrDuplicateSlug
			}
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	for _, categoryID := range categoryIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO author_category_links (author_id, author_category_id) VALUES ($1, $2)`,
			created.ID, categoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to link author category: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM authors WHERE slug = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}

	return exists, nil
}
