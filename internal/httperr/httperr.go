package httperr

import "net/http"

// FieldError describes a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a typed, HTTP-mappable domain error. Every failure a domain
// operation can raise is expressed as one of the constructors below and
// converted to the uniform response envelope by Handler.
type Error struct {
	Status  int
	Message string
	Fields  []FieldError
}

func (e *Error) Error() string {
	return e.Message
}

// BadRequest signals a violated domain precondition.
func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// Unauthorized signals a missing, invalid, or expired credential.
func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// NotFound signals an absent referenced entity.
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Conflict signals a uniqueness violation.
func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

// Validation signals malformed or out-of-range input with per-field detail.
func Validation(fields []FieldError) *Error {
	return &Error{Status: http.StatusBadRequest, Message: "Validation failed", Fields: fields}
}

// Internal signals an unexpected fault. No detail is leaked to the caller.
func Internal() *Error {
	return &Error{Status: http.StatusInternalServerError, Message: "Internal server error"}
}
