package comments

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Scribe/internal/core/comments"
	"Scribe/internal/core/posts"
)

// errorResponse represents a standardized JSON error response.
// Input echoes the rejected text on validation failures.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Input   string `json:"input,omitempty"`
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

// handleServiceError maps comment service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error, rejectedText string) {
	switch {
	case posts.IsNotFound(err):
		writeError(w, http.StatusNotFound, "NotFound", err.Error())

	case errors.Is(err, comments.ErrTextEmpty), errors.Is(err, comments.ErrTextTooLong):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		if encErr := json.NewEncoder(w).Encode(errorResponse{
			Error:   "InvalidRequest",
			Message: err.Error(),
			Input:   rejectedText,
		}); encErr != nil {
			log.Printf("Failed to encode error response: %v", encErr)
		}

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in comments handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
