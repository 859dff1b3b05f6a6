package model

import (
	"errors"
	"net/http"
)

var (
	ErrNewsNotFound    = errors.New("news article not found")
	ErrDuplicateSlug   = errors.New("news article with this slug already exists")
	ErrInvalidCategory = errors.New("unknown news category")
)

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNewsNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateSlug):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidCategory):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
