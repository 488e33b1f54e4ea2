package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/assetledger/apiserver/internal/store"
	"github.com/assetledger/apiserver/types"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// ErrorResponse is the error payload. Field names the offending request
// field for validation and uniqueness failures.
type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// MessageResponse confirms an operation that returns no record.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}

// writeServiceError maps service and store errors to responses. notFound is
// the message for a missing record and failure the one for unexpected errors.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error, notFound, failure string) {
	var validationErr *types.ValidationError
	var duplicateErr *store.DuplicateKeyError

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Message: validationErr.Message,
			Field:   validationErr.Field,
		})
	case errors.As(err, &duplicateErr):
		writeJSON(w, http.StatusConflict, ErrorResponse{
			Message: duplicateErr.Error(),
			Field:   duplicateErr.Field,
		})
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, notFound)
	case errors.Is(err, store.ErrUnavailable):
		logger.Error("store unavailable",
			zap.Error(err),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
		writeError(w, http.StatusServiceUnavailable, "store unavailable")
	default:
		logger.Error(failure,
			zap.Error(err),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, failure)
	}
}

// parseID reads a numeric route parameter. Routes constrain the parameter to
// digits, so a failure here means the value is outside the 32-bit serial id
// range and cannot name a stored record.
func parseID(r *http.Request, param string) (int, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 32)
	if err != nil {
		return 0, false
	}
	return int(id), true
}
