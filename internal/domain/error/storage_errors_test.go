// Package error defines domain-specific errors for the back-office ledger.
package error

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestClassifyStorageError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode string
		expectRetry  bool
	}{
		// Timeout/cancellation errors
		{
			name:         "context deadline exceeded",
			err:          context.DeadlineExceeded,
			expectedCode: ErrCodeStorageTimeout,
			expectRetry:  true,
		},
		{
			name:         "context canceled",
			err:          context.Canceled,
			expectedCode: ErrCodeStorageTimeout,
			expectRetry:  true,
		},
		{
			name:         "wrapped context deadline",
			err:          fmt.Errorf("query aborted: %w", context.DeadlineExceeded),
			expectedCode: ErrCodeStorageTimeout,
			expectRetry:  true,
		},
		// Conflict errors
		{
			name:         "postgres deadlock",
			err:          errors.New("deadlock detected"),
			expectedCode: ErrCodeStorageConflict,
			expectRetry:  true,
		},
		{
			name:         "serialization failure",
			err:          errors.New("could not serialize access due to concurrent update"),
			expectedCode: ErrCodeStorageConflict,
			expectRetry:  true,
		},
		{
			name:         "sqlite busy",
			err:          errors.New("database is locked"),
			expectedCode: ErrCodeStorageConflict,
			expectRetry:  true,
		},
		// Availability errors
		{
			name:         "connection refused",
			err:          errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"),
			expectedCode: ErrCodeStorageUnavailable,
			expectRetry:  true,
		},
		{
			name:         "broken pipe",
			err:          errors.New("write: broken pipe"),
			expectedCode: ErrCodeStorageUnavailable,
			expectRetry:  true,
		},
		// Constraint errors
		{
			name:         "unique violation",
			err:          errors.New("duplicate key value violates unique constraint"),
			expectedCode: ErrCodeStorageConstraint,
			expectRetry:  false,
		},
		{
			name:         "foreign key violation",
			err:          errors.New("insert violates foreign key"),
			expectedCode: ErrCodeStorageConstraint,
			expectRetry:  false,
		},
		// Unknown errors
		{
			name:         "unrecognized error",
			err:          errors.New("something odd happened"),
			expectedCode: ErrCodeStorageUnknown,
			expectRetry:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storageErr := ClassifyStorageError(tt.err)

			if storageErr.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, storageErr.Code)
			}
			if storageErr.Retryable != tt.expectRetry {
				t.Errorf("expected retryable %v, got %v", tt.expectRetry, storageErr.Retryable)
			}
			if !errors.Is(storageErr, tt.err) {
				t.Error("expected classified error to wrap the original error")
			}
		})
	}
}

func TestStorageErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	storageErr := ClassifyStorageError(fmt.Errorf("tx failed: %w", inner))

	if !errors.Is(storageErr, inner) {
		t.Error("expected errors.Is to find the wrapped cause")
	}

	var target *StorageError
	if !errors.As(error(storageErr), &target) {
		t.Error("expected errors.As to match *StorageError")
	}
}
