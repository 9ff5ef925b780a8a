// Package error defines domain-specific errors for the back-office ledger.
package error

import "errors"

// Period domain errors.
var (
	// ErrInvalidPeriodKind is returned when the period variant is unknown.
	ErrInvalidPeriodKind = errors.New("invalid period kind")

	// ErrInvalidPeriodMonth is returned when the month is outside 1..12.
	ErrInvalidPeriodMonth = errors.New("month out of range")

	// ErrInvalidPeriodQuarter is returned when the quarter is outside 1..4.
	ErrInvalidPeriodQuarter = errors.New("quarter out of range")

	// ErrMissingPeriodDates is returned when a custom period lacks from or to.
	ErrMissingPeriodDates = errors.New("custom period dates are required")

	// ErrInvalidPeriodRange is returned when a custom period ends before it starts.
	ErrInvalidPeriodRange = errors.New("period end before period start")
)

// PeriodErrorCode defines error codes for period errors.
// Format: PRD-XXYYYY where XX is category and YYYY is specific error.
type PeriodErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriodKind    PeriodErrorCode = "PRD-010001"
	ErrCodeInvalidPeriodMonth   PeriodErrorCode = "PRD-010002"
	ErrCodeInvalidPeriodQuarter PeriodErrorCode = "PRD-010003"
	ErrCodeMissingPeriodDates   PeriodErrorCode = "PRD-010004"
	ErrCodeInvalidPeriodRange   PeriodErrorCode = "PRD-010005"
)

// PeriodError represents a period error with code and message.
type PeriodError struct {
	Code    PeriodErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PeriodError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PeriodError) Unwrap() error {
	return e.Err
}

// NewPeriodError creates a new PeriodError with the given code and message.
func NewPeriodError(code PeriodErrorCode, message string, err error) *PeriodError {
	return &PeriodError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
