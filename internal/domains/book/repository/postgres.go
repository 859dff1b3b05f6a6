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

	"bookcms-backend/internal/domains/book/model"
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
	bookSlugPrefix = "book:slug:"
	bookCacheTTL   = 15 * time.Minute
)

const bookColumns = `
    b.id, b.title, b.slug, b.author_id, a.name AS author_name,
    b.description, b.cover_url, b.publication_date,
    b.is_available, b.is_bestseller, b.is_new, b.created_at`

func scanBook(row pgx.Row, b *model.Book) error {
	return row.Scan(
		&b.ID,
		&b.Title,
		&b.Slug,
		&b.AuthorID,
		&b.AuthorName,
		&b.Description,
		&b.CoverURL,
		&b.PublicationDate,
		&b.IsAvailable,
		&b.IsBestseller,
		&b.IsNew,
		&b.CreatedAt,
	)
}

// List translates a normalized CatalogFilter into SQL. The WHERE
// clause grows conjunctively; ordering is resolved last.
func (r *postgresRepository) List(ctx context.Context, filter model.CatalogFilter) ([]model.Book, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
        SELECT ` + bookColumns + `
        FROM books b
        JOIN authors a ON a.id = b.author_id
        WHERE b.is_available = true
    `)

	args := []interface{}{}
	argPos := 1

	if filter.Category != "" {
		queryBuilder.WriteString(fmt.Sprintf(` AND EXISTS (
            SELECT 1
            FROM book_categories bc
            JOIN categories c ON c.id = bc.category_id
            WHERE bc.book_id = b.id AND c.slug = $%d
        )`, argPos))
		args = append(args, filter.Category)
		argPos++
	}

	if filter.Search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND b.title ILIKE $%d", argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	// "popular" narrows to bestsellers and keeps the default ordering;
	// it is not a reordering. See model.SortPopular.
	if filter.Sort == model.SortPopular {
		queryBuilder.WriteString(" AND b.is_bestseller = true")
	}

	if filter.Sort == model.SortTitle {
		queryBuilder.WriteString(" ORDER BY b.title ASC")
	} else {
		queryBuilder.WriteString(" ORDER BY b.publication_date DESC")
	}

	rows, err := r.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	return collectBooks(rows)
}

func collectBooks(rows pgx.Rows) ([]model.Book, error) {
	var books []model.Book
	for rows.Next() {
		var b model.Book
		if err := scanBook(rows, &b); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*model.Book, error) {
	cacheKey := bookSlugPrefix + slug

	var b model.Book
	if found, err := r.cache.Get(ctx, cacheKey, &b); err == nil && found {
		return &b, nil
	}

	query := `
        SELECT ` + bookColumns + `
        FROM books b
        JOIN authors a ON a.id = b.author_id
        WHERE b.slug = $1 AND b.is_available = true
    `

	if err := scanBook(r.pool.QueryRow(ctx, query, slug), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by slug: %w", err)
	}

	categories, err := r.loadCategories(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	b.Categories = categories

	r.cache.Set(ctx, cacheKey, b, bookCacheTTL)

	return &b, nil
}

func (r *postgresRepository) loadCategories(ctx context.Context, bookID uuid.UUID) ([]model.CategoryRef, error) {
	query := `
        SELECT c.id, c.name, c.slug
        FROM categories c
        JOIN book_categories bc ON bc.category_id = c.id
        WHERE bc.book_id = $1
        ORDER BY c.name ASC
    `

	rows, err := r.pool.Query(ctx, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to query book categories: %w", err)
	}
	defer rows.Close()

	var categories []model.CategoryRef
	for rows.Next() {
		var c model.CategoryRef
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, fmt.Errorf("failed to scan book category: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// FindRelatedCandidates joins through the category link table, so a
// book sharing several categories with the source appears once per
// shared category. The service layer dedups and caps the result.
func (r *postgresRepository) FindRelatedCandidates(ctx context.Context, bookID uuid.UUID, categoryIDs []uuid.UUID) ([]model.Book, error) {
	if len(categoryIDs) == 0 {
		return nil, nil
	}

	query := `
        SELECT ` + bookColumns + `
        FROM books b
        JOIN book_categories bc ON bc.book_id = b.id
        JOIN authors a ON a.id = b.author_id
        WHERE b.is_available = true
          AND b.id <> $1
          AND bc.category_id = ANY($2)
        ORDER BY b.publication_date DESC
    `

	rows, err := r.pool.Query(ctx, query, bookID, categoryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query related books: %w", err)
	}
	defer rows.Close()

	return collectBooks(rows)
}

func (r *postgresRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error) {
	query := `
        SELECT ` + bookColumns + `
        FROM books b
        JOIN authors a ON a.id = b.author_id
        WHERE b.author_id = $1 AND b.is_available = true
        ORDER BY b.publication_date DESC
    `

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query books by author: %w", err)
	}
	defer rows.Close()

	return collectBooks(rows)
}

func (r *postgresRepository) ListNewest(ctx context.Context, limit int) ([]model.Book, error) {
	query := `
        SELECT ` + bookColumns + `
        FROM books b
        JOIN authors a ON a.id = b.author_id
        WHERE b.is_available = true
        ORDER BY b.publication_date DESC
        LIMIT $1
    `

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query newest books: %w", err)
	}
	defer rows.Close()

	return collectBooks(rows)
}

func (r *postgresRepository) Create(ctx context.Context, book *model.Book, categoryIDs []uuid.UUID) (*model.Book, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO books (title, slug, author_id, description, cover_url,
                           publication_date, is_available, is_bestseller, is_new)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, title, slug, author_id,
                  (SELECT name FROM authors WHERE id = $3) AS author_name,
                  description, cover_url, publication_date,
                  is_available, is_bestseller, is_new, created_at
    `

	var created model.Book
	err = scanBook(tx.QueryRow(
		ctx,
		query,
		book.Title,
		book.Slug,
		book.AuthorID,
		book.Description,
		book.CoverURL,
		book.PublicationDate,
		book.IsAvailable,
		book.IsBestseller,
		book.IsNew,
	), &created)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				if strings.Contains(pgErr.Message, "slug") {
					return nil, model.ErrDuplicateSlug
				}
			case "23503": // foreign_key_violation
				return nil, model.ErrAuthorNotFound
			}
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	for _, categoryID := range categoryIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO book_categories (book_id, category_id) VALUES ($1, $2)`,
			created.ID, categoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to link book category: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.cache.Delete(ctx, bookSlugPrefix+created.Slug)

	return &created, nil
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM books WHERE slug = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}

	return exists, nil
}
