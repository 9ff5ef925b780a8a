// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the kind of money movement a transaction records.
type TransactionType string

const (
	TransactionTypeIncome       TransactionType = "income"
	TransactionTypeExpense      TransactionType = "expense"
	TransactionTypeTransfer     TransactionType = "transfer"
	TransactionTypeDistribution TransactionType = "distribution"
)

// TransactionStatus represents the settlement state of a transaction.
// Only completed amounts are reflected in account balances.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPending   TransactionStatus = "pending"
)

// TransferCategory is the fixed category assigned to both legs of a transfer.
const TransferCategory = "Transfer"

// Transaction represents a single signed money-movement record tied to an
// account. Amount is stored signed: positive for income and incoming transfer
// legs, negative for expenses, distributions and outgoing transfer legs.
type Transaction struct {
	ID               uuid.UUID
	AccountID        uuid.UUID
	RelatedAccountID *uuid.UUID // Counterpart account, set on transfer legs only
	MemberID         *uuid.UUID // Optional person link, used for income attribution
	Date             time.Time  // Effective/business date, admin-chosen
	Category         string
	Description      string
	Amount           decimal.Decimal // Signed
	Type             TransactionType
	Status           TransactionStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	accountID uuid.UUID,
	date time.Time,
	category string,
	description string,
	amount decimal.Decimal,
	transactionType TransactionType,
	status TransactionStatus,
	memberID *uuid.UUID,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		AccountID:   accountID,
		MemberID:    memberID,
		Date:        date,
		Category:    category,
		Description: description,
		Amount:      amount,
		Type:        transactionType,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SignedAmount applies the ledger sign convention to a positive magnitude:
// income counts positive, expense and distribution count negative.
func SignedAmount(magnitude decimal.Decimal, transactionType TransactionType) decimal.Decimal {
	if transactionType == TransactionTypeIncome {
		return magnitude
	}
	return magnitude.Neg()
}

// EffectiveAmount returns the transaction's contribution to its account
// balance under the completed-only policy: the signed amount when completed,
// zero while pending.
func (t *Transaction) EffectiveAmount() decimal.Decimal {
	if t.Status == TransactionStatusCompleted {
		return t.Amount
	}
	return decimal.Zero
}

// IsTransferLeg reports whether the transaction is one side of a paired
// transfer.
func (t *Transaction) IsTransferLeg() bool {
	return t.Type == TransactionTypeTransfer
}
