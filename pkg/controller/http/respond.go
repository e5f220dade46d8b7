package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/standup-lab/standup/pkg/service/token"
	"github.com/standup-lab/standup/pkg/usecase"
	"github.com/standup-lab/standup/pkg/utils/errutil"
	"github.com/standup-lab/standup/pkg/utils/logging"
)

type errorResponse struct {
	Error   string              `json:"error"`
	Details map[string][]string `json:"details,omitempty"`
}

// writeJSON writes a JSON response with proper error handling
func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.From(ctx).Error("failed to encode JSON response", "error", err)
	}
}

// handleError maps a use case error to its HTTP response. Validation errors
// carry per-field details; everything unanticipated becomes a generic 500
// with the cause logged for operators only.
func handleError(ctx context.Context, w http.ResponseWriter, err error) {
	var ve *usecase.ValidationError

	switch {
	case errors.As(err, &ve):
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{
			Error:   "Invalid input",
			Details: ve.Fields,
		})

	case errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrUnauthenticated),
		errors.Is(err, token.ErrInvalidToken):
		writeJSON(ctx, w, http.StatusUnauthorized, errorResponse{Error: err.Error()})

	case errors.Is(err, usecase.ErrEmailTaken),
		errors.Is(err, usecase.ErrAlreadySubmitted):
		writeJSON(ctx, w, http.StatusConflict, errorResponse{Error: err.Error()})

	case errors.Is(err, usecase.ErrLogNotFound):
		writeJSON(ctx, w, http.StatusNotFound, errorResponse{Error: err.Error()})

	default:
		_ = errutil.Handle(ctx, err, "unexpected error")
		writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{
			Error: "An unexpected error occurred.",
		})
	}
}

// decodeJSON reads a JSON request body into dst
func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
