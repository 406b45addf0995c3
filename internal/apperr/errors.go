package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrPersistence = errors.New("persistence failed")
	ErrConnection  = errors.New("connection failed")
)

// Validation wraps a field-level message so callers can match with
// errors.Is(err, ErrValidation) while keeping the message for the response body.
func Validation(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// Persistence wraps an underlying store error.
func Persistence(err error) error {
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}
