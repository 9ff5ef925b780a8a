// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coursehub/backoffice/internal/domain/entity"
)

// BalanceDelta is a signed adjustment to one account's materialized balance.
// Implementations must apply it as an atomic in-database increment, never as
// a read-modify-write.
type BalanceDelta struct {
	AccountID uuid.UUID
	Amount    decimal.Decimal
}

// LedgerRepository defines the interface for transaction persistence. Every
// mutating method combines its row writes and balance deltas into a single
// storage transaction: callers never observe a row without its balance
// effect or vice versa.
type LedgerRepository interface {
	// Create inserts a transaction and applies delta to its owning account.
	Create(ctx context.Context, transaction *entity.Transaction, delta decimal.Decimal) error

	// CreatePair inserts both legs of a transfer and applies each leg's
	// signed amount to its account, all in one atomic unit.
	CreatePair(ctx context.Context, outLeg, inLeg *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// List retrieves transactions ordered by date descending, optionally
	// restricted to one account.
	List(ctx context.Context, accountID *uuid.UUID) ([]*entity.Transaction, error)

	// Update saves an amended transaction and applies the given balance
	// adjustments (one for a same-account amendment, two when the
	// transaction moved between accounts). The write only lands if the
	// stored row still carries expectedUpdatedAt, the timestamp the caller
	// read before computing the deltas; a row changed or removed in the
	// meantime aborts the unit with ErrTransactionModified or
	// ErrTransactionNotFound and no delta is applied.
	Update(ctx context.Context, transaction *entity.Transaction, expectedUpdatedAt time.Time, deltas []BalanceDelta) error

	// Delete soft-deletes a transaction and applies the reversing delta.
	Delete(ctx context.Context, id uuid.UUID, delta BalanceDelta) error

	// UpdateStatus moves the transaction from one status to the other and
	// applies the boundary-crossing delta in the same atomic unit. The write
	// is conditional on the row still holding from, so of two racing callers
	// only one lands the delta; the loser gets ErrTransactionModified.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.TransactionStatus, delta BalanceDelta) error
}
