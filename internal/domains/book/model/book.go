package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Book is the catalog entity. Default ordering everywhere is
// publication date descending. Slug is unique, derived from the title
// at creation time, never recomputed afterwards.
type Book struct {
	ID     uuid.UUID `json:"id" db:"id"`
	Title  string    `json:"title" db:"title"`
	Slug   string    `json:"slug" db:"slug"`

	AuthorID   uuid.UUID `json:"author_id" db:"author_id"`
	AuthorName string    `json:"author_name" db:"author_name"` // joined

	// Loaded on detail requests only
	Categories []CategoryRef `json:"categories,omitempty"`

	Description     string    `json:"description" db:"description"`
	CoverURL        string    `json:"cover_url" db:"cover_url"`
	PublicationDate time.Time `json:"publication_date" db:"publication_date"`

	IsAvailable  bool `json:"is_available" db:"is_available"`
	IsBestseller bool `json:"is_bestseller" db:"is_bestseller"`
	IsNew        bool `json:"is_new" db:"is_new"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CategoryRef is the slim category projection carried on a book.
type CategoryRef struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
	Slug string    `json:"slug" db:"slug"`
}

// CreateBookRequest - POST /v1/catalog
type CreateBookRequest struct {
	Title           string      `json:"title"`
	Slug            string      `json:"slug,omitempty"`
	AuthorID        uuid.UUID   `json:"author_id"`
	CategoryIDs     []uuid.UUID `json:"category_ids"`
	Description     string      `json:"description"`
	CoverURL        string      `json:"cover_url"`
	PublicationDate time.Time   `json:"publication_date"`
	IsAvailable     *bool       `json:"is_available,omitempty"` // defaults to true
	IsBestseller    bool        `json:"is_bestseller"`
	IsNew           bool        `json:"is_new"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("author_id is required"),
			validation.By(func(value interface{}) error {
				if value.(uuid.UUID) == uuid.Nil {
					return validation.NewError("validation_required", "author_id is required")
				}
				return nil
			}),
		),
		validation.Field(&r.Description, validation.Required.Error("description is required")),
		validation.Field(&r.PublicationDate, validation.Required.Error("publication_date is required")),
		validation.Field(&r.Slug, validation.Length(0, 200)),
	)
}
