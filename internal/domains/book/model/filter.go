package model

import "strings"

// Catalog sort options. SortPopular is, historically, a filter: it
// restricts the result to bestsellers and keeps the default ordering.
// The site has always behaved this way and templates link to it, so
// the behavior is kept verbatim rather than turned into a real sort.
const (
	SortNew     = "new"   // default: publication date descending
	SortPopular = "popular"
	SortTitle   = "title" // ascending by title
)

// CatalogFilter carries the optional catalog listing criteria.
// Category and search are conjunctive; sort applies after both.
type CatalogFilter struct {
	Category string `form:"category"` // category slug
	Search   string `form:"search"`   // case-insensitive substring on title
	Sort     string `form:"sort"`
}

// Normalize trims the inputs and resolves the sort option. Unknown
// sort values fall back to the default ordering.
func (f *CatalogFilter) Normalize() {
	f.Category = strings.TrimSpace(f.Category)
	f.Search = strings.TrimSpace(f.Search)

	switch f.Sort {
	case SortPopular, SortTitle:
	default:
		f.Sort = SortNew
	}
}
