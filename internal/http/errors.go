package http

import (
	"errors"
	"net/http"

	"github.com/FelipePedraza/libreriaSoftware/internal/httpx"
	"github.com/FelipePedraza/libreriaSoftware/internal/usecase"
)

// writeServiceError translates the service error taxonomy into a status code
// and JSON error envelope.
func writeServiceError(r *http.Request, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		httpx.JSONErrorWithRequest(r, w, http.StatusNotFound, "not_found", "resource not found", nil)
	case errors.Is(err, usecase.ErrInvalidArgument):
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "invalid_argument", err.Error(), nil)
	case errors.Is(err, usecase.ErrConflict):
		httpx.JSONErrorWithRequest(r, w, http.StatusConflict, "conflict", "resource already exists", nil)
	default:
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "internal_error", "server error", nil)
	}
}
