// Package transaction contains ledger use cases.
package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coursehub/backoffice/internal/domain/entity"
)

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 255

// TransactionOutput represents a transaction in use-case outputs.
type TransactionOutput struct {
	ID               uuid.UUID
	AccountID        uuid.UUID
	RelatedAccountID *uuid.UUID
	MemberID         *uuid.UUID
	Date             time.Time
	Category         string
	Description      string
	Amount           decimal.Decimal // Signed
	Type             entity.TransactionType
	Status           entity.TransactionStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// toTransactionOutput maps a transaction entity to its output form.
func toTransactionOutput(t *entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:               t.ID,
		AccountID:        t.AccountID,
		RelatedAccountID: t.RelatedAccountID,
		MemberID:         t.MemberID,
		Date:             t.Date,
		Category:         t.Category,
		Description:      t.Description,
		Amount:           t.Amount,
		Type:             t.Type,
		Status:           t.Status,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

// isRecordableType validates a type the ledger accepts directly. Transfer
// rows are only ever created in pairs by the transfer coordinator.
func isRecordableType(transactionType entity.TransactionType) bool {
	switch transactionType {
	case entity.TransactionTypeIncome, entity.TransactionTypeExpense, entity.TransactionTypeDistribution:
		return true
	}
	return false
}

// isValidStatus validates the transaction status.
func isValidStatus(status entity.TransactionStatus) bool {
	return status == entity.TransactionStatusCompleted || status == entity.TransactionStatusPending
}
