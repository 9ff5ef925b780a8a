// Package error defines domain-specific errors for the back-office ledger.
package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account is not found in the system.
	ErrAccountNotFound = errors.New("account not found")

	// ErrEmptyAccountName is returned when an account name is empty or blank.
	ErrEmptyAccountName = errors.New("account name cannot be empty")

	// ErrEmptyAccountType is returned when an account type is empty or blank.
	ErrEmptyAccountType = errors.New("account type cannot be empty")

	// ErrAccountNameTaken is returned when an account with the same name already exists.
	ErrAccountNameTaken = errors.New("account name already in use")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyAccountName AccountErrorCode = "ACC-010001"
	ErrCodeEmptyAccountType AccountErrorCode = "ACC-010002"
	ErrCodeAccountNameTaken AccountErrorCode = "ACC-010003"
	ErrCodeAccountNotFound  AccountErrorCode = "ACC-010004"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
