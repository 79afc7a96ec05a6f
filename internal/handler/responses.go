package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/HeroArena_Go/internal/domain"
	"github.com/osse101/HeroArena_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, nothing left to tell the client
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and maps it to an HTTP status
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgProfileNotFoundError = "Profile not found"
	ErrMsgAlreadyExistsError   = "A profile already exists for this account"
	ErrMsgBadIndexError        = "No crate at that index"
	ErrMsgAlreadyClaimedError  = "That crate has already been claimed"
	ErrMsgTokenNotFoundError   = "Token not found"
	ErrMsgUnauthorizedError    = "You are not allowed to do that"
	ErrMsgInvalidInputError    = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage converts domain errors to an HTTP status and a message
// that does not leak internals
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, ErrMsgProfileNotFoundError
	case errors.Is(err, domain.ErrTokenNotFound):
		return http.StatusNotFound, ErrMsgTokenNotFoundError
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, ErrMsgAlreadyExistsError
	case errors.Is(err, domain.ErrAlreadyClaimed):
		return http.StatusConflict, ErrMsgAlreadyClaimedError
	case errors.Is(err, domain.ErrBadIndex):
		return http.StatusBadRequest, ErrMsgBadIndexError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden, ErrMsgUnauthorizedError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
