package service

import (
	"context"

	"github.com/google/uuid"

	"bookcms-backend/internal/domains/contact/model"
)

// ServiceInterface defines business logic for the contact form.
type ServiceInterface interface {
	// Submit validates and persists a contact form submission, then
	// notifies the site administrator. The notification is best-effort:
	// it is time-bounded and a failure never fails the submission.
	// Errors: validation.Errors
	Submit(ctx context.Context, req *model.SubmitContactRequest) (*model.ContactMessage, error)

	// Subjects returns the selectable subject list.
	Subjects() []model.ContactSubject

	// List returns all messages for the admin view, newest first.
	List(ctx context.Context) ([]model.ContactMessage, error)

	// MarkProcessed flags a message as handled.
	// Errors: ErrContactNotFound
	MarkProcessed(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error)
}
