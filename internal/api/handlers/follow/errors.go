package follow

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Scribe/internal/core/users"
)

// followOp is either Service.Follow or Service.Unfollow
type followOp func(ctx context.Context, requesterID int64, targetUsername string) error

// errorResponse represents a standardized JSON error response
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError writes a JSON error response with the given status code
func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{
		Error:   errorType,
		Message: message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// handleServiceError maps follow service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, users.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "NotFound", "User not found")

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in follow handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
