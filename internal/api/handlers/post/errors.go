package post

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Scribe/internal/core/posts"
)

// errorResponse represents a standardized JSON error response.
// Input echoes the rejected submission on validation failures so clients can
// re-render the form.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Input   string `json:"input,omitempty"`
}

// writeError writes a JSON error response with the given status code
func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	writeErrorResponse(w, statusCode, errorResponse{Error: errorType, Message: message})
}

func writeErrorResponse(w http.ResponseWriter, statusCode int, resp errorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// handleServiceError maps post editor errors to HTTP responses.
// rejectedText is echoed back on validation failures.
func handleServiceError(w http.ResponseWriter, err error, rejectedText string) {
	switch {
	case posts.IsNotFound(err):
		writeError(w, http.StatusNotFound, "NotFound", err.Error())

	case posts.IsValidationError(err):
		resp := errorResponse{
			Error:   "InvalidRequest",
			Message: err.Error(),
			Input:   rejectedText,
		}
		var verr *posts.ValidationError
		if errors.As(err, &verr) {
			resp.Field = verr.Field
		}
		writeErrorResponse(w, http.StatusBadRequest, resp)

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in post handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
