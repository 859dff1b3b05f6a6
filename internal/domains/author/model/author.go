package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Author is the domain entity for a catalog author.
// Slug is unique and derived from the name at creation time.
type Author struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	Slug     string    `json:"slug" db:"slug"`
	Bio      string    `json:"bio" db:"bio"`
	PhotoURL *string   `json:"photo_url,omitempty" db:"photo_url"`

	BirthDate *time.Time `json:"birth_date,omitempty" db:"birth_date"`
	IsPopular bool       `json:"is_popular" db:"is_popular"`

	// Loaded on detail requests only
	Categories []AuthorCategory `json:"categories,omitempty"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// AuthorCategory groups authors, independently of book categories.
type AuthorCategory struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Slug        string    `json:"slug" db:"slug"`
	Description string    `json:"description" db:"description"`
}

// AuthorFilter carries the optional listing criteria.
// Filters are conjunctive. PopularOnly is presence-as-truthy: any
// non-empty `popular` query value restricts to popular authors.
type AuthorFilter struct {
	Category    string `form:"category"` // AuthorCategory slug
	PopularOnly bool
}

// CreateAuthorRequest - POST /v1/authors
type CreateAuthorRequest struct {
	Name        string      `json:"name"`
	Slug        string      `json:"slug,omitempty"`
	Bio         string      `json:"bio"`
	PhotoURL    *string     `json:"photo_url,omitempty"`
	BirthDate   *time.Time  `json:"birth_date,omitempty"`
	IsPopular   bool        `json:"is_popular"`
	CategoryIDs []uuid.UUID `json:"category_ids,omitempty"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Bio, validation.Required.Error("bio is required")),
		validation.Field(&r.Slug, validation.Length(0, 200)),
	)
}
