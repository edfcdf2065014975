// internal/app/system/httperr/httperr.go

// Package httperr defines the API error taxonomy and the JSON response
// helpers shared by all feature handlers. Every error response has the same
// shape, {"message": "..."}, so the client renders server messages directly.
package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// Sentinel errors classifying domain failures. Handlers wrap these via the
// constructors below; Write maps them to HTTP status codes.
var (
	ErrValidation = errors.New("validation failed") // 400
	ErrConflict   = errors.New("conflict")          // 400 (the API reports duplicates as bad requests)
	ErrAuth       = errors.New("unauthorized")      // 401
	ErrForbidden  = errors.New("forbidden")         // 403
	ErrNotFound   = errors.New("not found")         // 404
)

// Error pairs a taxonomy sentinel with the human-readable message returned
// to the client.
type Error struct {
	Err     error
	Message string
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Err }

// Validation builds a 400 error for missing or malformed input.
func Validation(message string) *Error {
	return &Error{Err: ErrValidation, Message: message}
}

// Conflict builds an error for duplicate-resource failures.
func Conflict(message string) *Error {
	return &Error{Err: ErrConflict, Message: message}
}

// Auth builds a 401 error for bad credentials or tokens.
func Auth(message string) *Error {
	return &Error{Err: ErrAuth, Message: message}
}

// Forbidden builds a 403 error for ownership violations.
func Forbidden(message string) *Error {
	return &Error{Err: ErrForbidden, Message: message}
}

// NotFound builds a 404 error for a missing resource.
func NotFound(resource string) *Error {
	return &Error{Err: ErrNotFound, Message: fmt.Sprintf("%s not found.", resource)}
}

// messageBody is the uniform error response shape.
type messageBody struct {
	Message string `json:"message"`
}

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already sent; nothing left to do but log.
		zap.L().Error("encoding JSON response failed", zap.Error(err))
	}
}

// Message writes a plain {"message": ...} body with the given status.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, messageBody{Message: message})
}

// Write maps err onto the taxonomy and sends the matching status and
// message. Errors outside the taxonomy are logged and returned as a generic
// 500 so internal details never reach the client.
func Write(w http.ResponseWriter, log *zap.Logger, err error) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrValidation), errors.Is(err, ErrConflict):
			status = http.StatusBadRequest
		case errors.Is(err, ErrAuth):
			status = http.StatusUnauthorized
		case errors.Is(err, ErrForbidden):
			status = http.StatusForbidden
		case errors.Is(err, ErrNotFound):
			status = http.StatusNotFound
		}
		Message(w, status, apiErr.Message)
		return
	}

	if log != nil {
		log.Error("unhandled error", zap.Error(err))
	}
	Message(w, http.StatusInternalServerError, "An unexpected error occurred.")
}
