package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/domain"
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

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Log the error - we can't write to response at this point since headers are sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	// Write the buffer to the response
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	// Domain messages
	ErrMsgUserNotFoundError    = "User not found"
	ErrMsgRegionNotFoundError  = "Region not found"
	ErrMsgUnknownRegionError   = "Unknown region. Use one of the recognized Ghana regions."
	ErrMsgUnknownTypeError     = "Unknown activity type"
	ErrMsgInvalidQuantityError = "Quantity must be a non-negative finite number"
	ErrMsgInconsistentError    = "Aggregates are inconsistent. A recompute has been requested."

	// Challenge messages
	ErrMsgChallengeNotFoundError = "Challenge not found"
	ErrMsgChallengeInactiveError = "Challenge is not active"
	ErrMsgAlreadyJoinedError     = "You have already joined this challenge"
	ErrMsgNotJoinedError         = "You have not joined this challenge"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrRegionNotFound):
		return http.StatusNotFound, ErrMsgRegionNotFoundError
	case errors.Is(err, domain.ErrUnknownRegion):
		return http.StatusBadRequest, ErrMsgUnknownRegionError
	case errors.Is(err, domain.ErrUnknownActivityType):
		return http.StatusBadRequest, ErrMsgUnknownTypeError
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, ErrMsgInvalidQuantityError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrChallengeNotFound):
		return http.StatusNotFound, ErrMsgChallengeNotFoundError
	case errors.Is(err, domain.ErrChallengeInactive):
		return http.StatusBadRequest, ErrMsgChallengeInactiveError
	case errors.Is(err, domain.ErrAlreadyJoined):
		return http.StatusBadRequest, ErrMsgAlreadyJoinedError
	case errors.Is(err, domain.ErrNotJoined):
		return http.StatusBadRequest, ErrMsgNotJoinedError
	case errors.Is(err, domain.ErrInconsistentAggregate):
		return http.StatusInternalServerError, ErrMsgInconsistentError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	// For wrapped errors with domain errors as the base, try unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	// Surface short error messages; hide long or system-level ones
	errMsg := err.Error()
	if errMsg != "" && len(errMsg) < 200 {
		return http.StatusInternalServerError, errMsg
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
