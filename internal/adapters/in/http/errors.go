package http

import (
	"errors"
	"net/http"

	"fleet/internal/pkg/errs"
)

// StatusOf maps an application error to an HTTP status code.
func StatusOf(err error) int {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errs.IsConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
