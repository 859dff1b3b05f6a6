package model

import (
	"errors"
	"net/http"
)

var ErrContactNotFound = errors.New("contact message not found")

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrContactNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
