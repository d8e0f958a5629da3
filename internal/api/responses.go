package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	app_errors "bi-assistant/internal/errors"
)

// This file contains shared DTOs (Data Transfer Objects) for API responses
// and helper functions for sending consistent HTTP responses.

const (
	unreachableMessage = "Cannot connect to Ollama. Make sure Ollama is running."
	timeoutMessage     = "Ollama request timed out. The model might be loading or the prompt is too long. Try a shorter question."
	unexpectedMessage  = "Server error: an unexpected internal error occurred."
)

// ErrorResponse defines the standard JSON structure for error messages.
type ErrorResponse struct {
	Error string `json:"error" example:"No message provided"`
}

// StatusResponse defines a generic success response.
type StatusResponse struct {
	Status string `json:"status"`
}

// respondWithError is the centralized error handling function for the API layer.
// It maps the relay's error taxonomy to HTTP status codes and a client-safe message.
// The full error is logged; only the mapped message reaches the client.
func respondWithError(w http.ResponseWriter, err error) {
	statusCode, message := mapError(err)

	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

func mapError(err error) (int, string) {
	var validationErr *app_errors.ValidationError
	var genErr *app_errors.GenerationError

	switch {
	case errors.As(err, &validationErr):
		// Validation messages are written for users by the service layer.
		return http.StatusBadRequest, validationErr.Message
	case errors.Is(err, app_errors.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &genErr):
		switch genErr.Kind {
		case app_errors.Unreachable:
			return http.StatusInternalServerError, unreachableMessage
		case app_errors.Timeout:
			return http.StatusInternalServerError, timeoutMessage
		default:
			return http.StatusInternalServerError, "Server error: " + genErr.UserMessage()
		}
	default:
		return http.StatusInternalServerError, unexpectedMessage
	}
}

// respondWithJSON is a low-level helper for marshaling a payload to JSON
// and writing it to the http.ResponseWriter with a given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		// This indicates a server-side programming error (e.g., trying to marshal a channel).
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}
