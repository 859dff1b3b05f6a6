package repository

import (
	"context"

	"github.com/google/uuid"

	"bookcms-backend/internal/domains/contact/model"
)

// RepositoryInterface defines data access for contact messages.
type RepositoryInterface interface {
	// Create persists a submission and returns it with ID and
	// timestamps set.
	Create(ctx context.Context, msg *model.ContactMessage) (*model.ContactMessage, error)

	// List returns all messages, newest first.
	List(ctx context.Context) ([]model.ContactMessage, error)

	// MarkProcessed flags a message as handled.
	// Errors: ErrContactNotFound
	MarkProcessed(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error)
}
