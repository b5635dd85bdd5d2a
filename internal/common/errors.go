package common

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrValidation            = errors.New("validation failed")
	ErrDataNotFound          = errors.New("data not found")
	ErrConflict              = errors.New("data conflict")
	ErrInternalServerError   = errors.New("internal server error")
	ErrInvalidFingerprint    = errors.New("idempotency key cannot be reused for different requests payload")
	ErrRequestBeingProcessed = errors.New("request with same idempotency key is being processed")
	ErrNoRows                = sql.ErrNoRows
)

// NewValidationError tags err so callers can match it with errors.Is(err, ErrValidation)
// while still reaching the detailed violations with errors.As.
func NewValidationError(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}
