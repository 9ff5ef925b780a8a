// Package error defines domain-specific errors for the back-office ledger.
package error

import (
	"context"
	"errors"
	"strings"
)

// Storage error codes. Storage failures abort the whole atomic unit; nothing
// is partially committed, so most of them are safe to retry.
const (
	ErrCodeStorageConflict    = "STORAGE_CONFLICT"
	ErrCodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	ErrCodeStorageTimeout     = "STORAGE_TIMEOUT"
	ErrCodeStorageConstraint  = "STORAGE_CONSTRAINT"
	ErrCodeStorageUnknown     = "STORAGE_UNKNOWN"
)

// StorageError represents a failed storage transaction. Retryable means the
// operation rolled back cleanly and the caller may re-issue it as-is.
type StorageError struct {
	Code      string
	Retryable bool
	Err       error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.Err != nil {
		return "storage operation failed: " + e.Err.Error()
	}
	return "storage operation failed"
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// ClassifyStorageError converts a database error into a StorageError with an
// appropriate code and retryable flag.
func ClassifyStorageError(err error) *StorageError {
	errStr := strings.ToLower(err.Error())

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &StorageError{Code: ErrCodeStorageTimeout, Retryable: true, Err: err}
	}

	// Serialization failures and deadlocks roll back cleanly; retry is safe.
	if strings.Contains(errStr, "deadlock") || strings.Contains(errStr, "serialization") ||
		strings.Contains(errStr, "could not serialize") || strings.Contains(errStr, "database is locked") {
		return &StorageError{Code: ErrCodeStorageConflict, Retryable: true, Err: err}
	}

	if strings.Contains(errStr, "connection") || strings.Contains(errStr, "dial") ||
		strings.Contains(errStr, "refused") || strings.Contains(errStr, "broken pipe") {
		return &StorageError{Code: ErrCodeStorageUnavailable, Retryable: true, Err: err}
	}

	// Constraint violations will fail again with the same input.
	if strings.Contains(errStr, "unique") || strings.Contains(errStr, "constraint") ||
		strings.Contains(errStr, "duplicate key") || strings.Contains(errStr, "foreign key") {
		return &StorageError{Code: ErrCodeStorageConstraint, Retryable: false, Err: err}
	}

	return &StorageError{Code: ErrCodeStorageUnknown, Retryable: true, Err: err}
}
