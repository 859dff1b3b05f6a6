package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookcms-backend/internal/domains/contact/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{
		pool: pool,
	}
}

const contactColumns = `id, name, email, phone, subject, message, is_processed, created_at`

func scanContact(row pgx.Row, m *model.ContactMessage) error {
	return row.Scan(
		&m.ID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.Subject,
		&m.Message,
		&m.IsProcessed,
		&m.CreatedAt,
	)
}

func (r *postgresRepository) Create(ctx context.Context, msg *model.ContactMessage) (*model.ContactMessage, error) {
	query := `
        INSERT INTO contact_messages (name, email, phone, subject, message)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + contactColumns

	var created model.ContactMessage
	err := scanContact(r.pool.QueryRow(
		ctx,
		query,
		msg.Name,
		msg.Email,
		msg.Phone,
		msg.Subject,
		msg.Message,
	), &created)

	if err != nil {
		return nil, fmt.Errorf("failed to create contact message: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]model.ContactMessage, error) {
	query := `
        SELECT ` + contactColumns + `
        FROM contact_messages
        ORDER BY created_at DESC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact messages: %w", err)
	}
	defer rows.Close()

	var messages []model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := scanContact(rows, &m); err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact messages: %w", err)
	}

	return messages, nil
}

func (r *postgresRepository) MarkProcessed(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error) {
	query := `
        UPDATE contact_messages
        SET is_processed = true
        WHERE id = $1
        RETURNING ` + contactColumns

	var updated model.ContactMessage
	if err := scanContact(r.pool.QueryRow(ctx, query, id), &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to mark contact message processed: %w", err)
	}

	return &updated, nil
}
