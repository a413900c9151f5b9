package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"ecommerce-backend/internal/repository"
)

type apiError struct {
	Error   string      `json:"error"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v == nil {
		return
	}

	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string, details interface{}) {
	writeJSON(w, status, apiError{
		Error:   code,
		Message: message,
		Details: details,
	})
}

// writeRepoError maps repository sentinel errors onto HTTP statuses.
// Anything unrecognized is a database/connectivity failure: logged in
// full, reported generically.
func writeRepoError(w http.ResponseWriter, r *http.Request, err error, action string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error(), nil)
	case errors.Is(err, repository.ErrDuplicate):
		writeError(w, http.StatusConflict, "duplicate", err.Error(), nil)
	case errors.Is(err, repository.ErrNotEnough):
		writeError(w, http.StatusConflict, "out_of_stock", err.Error(), nil)
	case errors.Is(err, repository.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid_input", err.Error(), nil)
	default:
		slog.ErrorContext(r.Context(), "operation failed", "action", action, "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to "+action, nil)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid json body", map[string]any{"error": err.Error()})
		return false
	}

	if err := dec.Decode(&struct{}{}); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid json body", map[string]any{"error": "extra data after json"})
		return false
	}

	return true
}
