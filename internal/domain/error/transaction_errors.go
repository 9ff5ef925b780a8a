// Package error defines domain-specific errors for the back-office ledger.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionStatus is returned when the transaction status is invalid.
	ErrInvalidTransactionStatus = errors.New("invalid transaction status")

	// ErrNonPositiveAmount is returned when the amount is zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be positive")

	// ErrEmptyCategory is returned when the category is empty or blank.
	ErrEmptyCategory = errors.New("category cannot be empty")

	// ErrInvalidTransactionDate is returned when the business date is missing.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrCannotAmendTransferLeg is returned when amending or removing one side
	// of a paired transfer, which would break the net-zero pairing.
	ErrCannotAmendTransferLeg = errors.New("transfer legs cannot be modified individually")

	// ErrDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrTransactionModified is returned when a write loses the race against a
	// concurrent change to the same transaction. The caller re-reads and retries.
	ErrTransactionModified = errors.New("transaction was modified concurrently")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionStatus TransactionErrorCode = "TXN-010002"
	ErrCodeNonPositiveAmount        TransactionErrorCode = "TXN-010003"
	ErrCodeEmptyCategory            TransactionErrorCode = "TXN-010004"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010005"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010006"
	ErrCodeTxnAccountNotFound       TransactionErrorCode = "TXN-010007"
	ErrCodeCannotAmendTransferLeg   TransactionErrorCode = "TXN-010008"
	ErrCodeDescriptionTooLong       TransactionErrorCode = "TXN-010009"

	// Concurrency errors (02XXXX)
	ErrCodeTransactionModified TransactionErrorCode = "TXN-020001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
