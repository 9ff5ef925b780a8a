// Package error defines domain-specific errors for the back-office ledger.
package error

import "errors"

// Transfer domain errors.
var (
	// ErrSameTransferAccount is returned when source and destination accounts are identical.
	ErrSameTransferAccount = errors.New("cannot transfer to the same account")

	// ErrNonPositiveTransferAmount is returned when the transfer amount is zero or negative.
	ErrNonPositiveTransferAmount = errors.New("transfer amount must be positive")

	// ErrTransferAccountNotFound is returned when either transfer account does not exist.
	ErrTransferAccountNotFound = errors.New("transfer account not found")
)

// TransferErrorCode defines error codes for transfer errors.
// Format: TRF-XXYYYY where XX is category and YYYY is specific error.
type TransferErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSameTransferAccount       TransferErrorCode = "TRF-010001"
	ErrCodeNonPositiveTransferAmount TransferErrorCode = "TRF-010002"
	ErrCodeTransferAccountNotFound   TransferErrorCode = "TRF-010003"
)

// TransferError represents a transfer error with code and message.
type TransferError struct {
	Code    TransferErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransferError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransferError) Unwrap() error {
	return e.Err
}

// NewTransferError creates a new TransferError with the given code and message.
func NewTransferError(code TransferErrorCode, message string, err error) *TransferError {
	return &TransferError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
