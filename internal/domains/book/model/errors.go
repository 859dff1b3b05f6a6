package model

import (
	"errors"
	"net/http"
)

var (
	ErrBookNotFound   = errors.New("book not found")
	ErrDuplicateSlug  = errors.New("book with this slug already exists")
	ErrAuthorNotFound = errors.New("author does not exist")
)

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateSlug):
		return http.StatusConflict
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
