package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrTokenNotValid = errors.New("token is not valid")
	ErrTokenExpired  = errors.New("token is expired")
	ErrTokenRevoked  = errors.New("token has been revoked")

	ErrForbidden         = errors.New("actor is not allowed to perform this action")
	ErrInvalidTransition = errors.New("order status does not allow the requested transition")
	ErrOrderNotFound     = errors.New("requested order not found")
)

// ValidationError carries per-field messages for a rejected request.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("request validation failed for %d field(s)", len(e.Fields))
}
