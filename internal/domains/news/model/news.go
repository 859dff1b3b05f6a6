package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// NewsCategory is a fixed editorial rubric, not a database entity.
type NewsCategory string

const (
	CategoryEvents   NewsCategory = "events"
	CategoryReleases NewsCategory = "releases"
	CategoryAwards   NewsCategory = "awards"
	CategoryProjects NewsCategory = "projects"
)

// NewsCategories lists the valid rubrics in display order.
var NewsCategories = []NewsCategory{
	CategoryEvents,
	CategoryReleases,
	CategoryAwards,
	CategoryProjects,
}

func (c NewsCategory) IsValid() bool {
	switch c {
	case CategoryEvents, CategoryReleases, CategoryAwards, CategoryProjects:
		return true
	}
	return false
}

// Label returns the human-readable rubric name.
func (c NewsCategory) Label() string {
	switch c {
	case CategoryEvents:
		return "Events"
	case CategoryReleases:
		return "New Releases"
	case CategoryAwards:
		return "Awards"
	case CategoryProjects:
		return "Projects"
	default:
		return string(c)
	}
}

// News is a published article. ViewsCount increments by one on every
// detail access; the increment happens atomically at the store.
type News struct {
	ID       uuid.UUID    `json:"id" db:"id"`
	Title    string       `json:"title" db:"title"`
	Slug     string       `json:"slug" db:"slug"`
	Category NewsCategory `json:"category" db:"category"`

	Summary  string `json:"summary" db:"summary"`
	Body     string `json:"body" db:"body"`
	ImageURL string `json:"image_url" db:"image_url"`

	IsPublished bool      `json:"is_published" db:"is_published"`
	PublishedAt time.Time `json:"published_at" db:"published_at"`
	ViewsCount  int64     `json:"views_count" db:"views_count"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateNewsRequest - POST /v1/news
type CreateNewsRequest struct {
	Title       string       `json:"title"`
	Slug        string       `json:"slug,omitempty"`
	Category    NewsCategory `json:"category"`
	Summary     string       `json:"summary"`
	Body        string       `json:"body"`
	ImageURL    string       `json:"image_url"`
	IsPublished bool         `json:"is_published"`
	PublishedAt *time.Time   `json:"published_at,omitempty"` // defaults to now
}

func (r CreateNewsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.By(func(value interface{}) error {
				if !value.(NewsCategory).IsValid() {
					return validation.NewError("validation_invalid", "unknown news category")
				}
				return nil
			}),
		),
		validation.Field(&r.Body, validation.Required.Error("body is required")),
		validation.Field(&r.Slug, validation.Length(0, 200)),
	)
}
