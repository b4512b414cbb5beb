/*
errors.go - Centralized error types for the domain

PURPOSE:
  All error types in one place for consistency and discoverability.
  Stores and the ingest pipeline wrap these with additional context.

ERROR CATEGORIES:
  1. Validation errors - Malformed or out-of-range input fields
  2. Not-found errors  - Operations referencing a nonexistent identifier
  3. Store errors      - The underlying database cannot be reached

USAGE:
  Callers classify with errors.Is or the helpers below:

    if hr.IsValidation(err) {
        // 400, store unchanged
    }

SEE ALSO:
  - store.go: Operations returning these errors
  - store/sqlite: Wraps driver failures with ErrStoreUnavailable
*/
package hr

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrValidation is the root of every validation failure.
	// Concrete failures are *ValidationError values unwrapping to this.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when an operation references an identifier
	// that no record carries. The store is left unchanged.
	ErrNotFound = errors.New("employee not found")

	// ErrStoreUnavailable is returned when the underlying storage cannot be
	// opened or reached. At startup this halts initialization.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrAlreadyPopulated is returned by the one-time dataset import when the
	// store already holds records. Callers treat it as a successful no-op.
	ErrAlreadyPopulated = errors.New("store already populated")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ValidationError names the field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsValidation returns true if the error is due to invalid input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFound returns true if the error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
