package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"itemshare-backend/internal/domain"
	"itemshare-backend/internal/logger"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// writeError maps the domain error kinds to HTTP statuses. Anything
// outside the taxonomy is an unexpected storage failure and surfaces
// as 500 without interpretation.
func writeError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidRequest):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrDuplicate):
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
		logger.Error("unexpected error", "error", err)
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}
