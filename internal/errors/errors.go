package errors

import (
	"errors"
	"fmt"
)

// This package defines the error taxonomy of the relay. Services return these
// errors without knowing about HTTP; the API layer uses `errors.Is()` and
// `errors.As()` to pick a status code and a client-safe message.

var (
	// ErrValidation signifies that input data provided by a client failed
	// validation before any call to the generation service was made.
	// This is typically mapped to a 400 Bad Request HTTP status.
	ErrValidation = errors.New("validation failed")

	// ErrInternal signifies an unexpected error on the server. It is used to
	// prevent leaking implementation details to the client.
	// This is typically mapped to a 500 Internal Server Error HTTP status.
	ErrInternal = errors.New("internal server error")
)

// ValidationError carries the message shown to the client for a rejected request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap lets errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError returns a ValidationError with the given client message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// GenerationKind classifies a failure of the generation service.
type GenerationKind int

const (
	// Unreachable means the service could not be contacted at all.
	Unreachable GenerationKind = iota + 1
	// Timeout means the service did not answer within the request timeout.
	Timeout
	// UpstreamStatus means the service answered with a non-success status.
	UpstreamStatus
	// EmptyOutput means the service answered but produced no usable text.
	EmptyOutput
)

func (k GenerationKind) String() string {
	switch k {
	case Unreachable:
		return "unreachable"
	case Timeout:
		return "timeout"
	case UpstreamStatus:
		return "upstream_status"
	case EmptyOutput:
		return "empty_output"
	default:
		return "unknown"
	}
}

// GenerationError is returned by the generation client for every failed call.
type GenerationError struct {
	Kind GenerationKind
	// StatusCode is the upstream HTTP status, set only for UpstreamStatus.
	StatusCode int
	// Hint is a short, user-facing suggestion for resolving the failure.
	Hint string
	// Err is the underlying cause. It is logged but never shown to clients.
	Err error
}

func (e *GenerationError) Error() string {
	msg := e.message()
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *GenerationError) Unwrap() error { return e.Err }

// UserMessage returns the client-safe description of the failure.
func (e *GenerationError) UserMessage() string {
	if e.Hint == "" {
		return e.message()
	}
	return e.message() + ". " + e.Hint
}

func (e *GenerationError) message() string {
	switch e.Kind {
	case Unreachable:
		return "Cannot connect to Ollama"
	case Timeout:
		return "Ollama request timed out"
	case UpstreamStatus:
		return fmt.Sprintf("Ollama API error: status %d", e.StatusCode)
	case EmptyOutput:
		return "Ollama returned empty response"
	default:
		return "Ollama generation failed"
	}
}

// IsGenerationKind reports whether err is a GenerationError of the given kind.
func IsGenerationKind(err error, kind GenerationKind) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr) && genErr.Kind == kind
}
