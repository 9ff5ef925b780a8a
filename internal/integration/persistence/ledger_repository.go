// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/coursehub/backoffice/internal/application/adapter"
	"github.com/coursehub/backoffice/internal/domain/entity"
	domainerror "github.com/coursehub/backoffice/internal/domain/error"
	"github.com/coursehub/backoffice/internal/integration/persistence/model"
)

// ledgerRepository implements the adapter.LedgerRepository interface. Every
// mutating method runs inside one database transaction and adjusts account
// balances with in-database increments, so concurrent writers touching the
// same account serialize at the row level.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository instance.
func NewLedgerRepository(db *gorm.DB) adapter.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// Create inserts a transaction and applies delta to its owning account.
func (r *ledgerRepository) Create(ctx context.Context, transaction *entity.Transaction, delta decimal.Decimal) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.TransactionFromEntity(transaction)).Error; err != nil {
			return err
		}
		return applyBalanceDelta(tx, transaction.AccountID, delta)
	})
	return wrapLedgerError(err)
}

// CreatePair inserts both transfer legs and applies each signed amount to
// its account. All four writes succeed or fail together.
func (r *ledgerRepository) CreatePair(ctx context.Context, outLeg, inLeg *entity.Transaction) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, leg := range []*entity.Transaction{outLeg, inLeg} {
			if err := tx.Create(model.TransactionFromEntity(leg)).Error; err != nil {
				return err
			}
			if err := applyBalanceDelta(tx, leg.AccountID, leg.Amount); err != nil {
				return err
			}
		}
		return nil
	})
	return wrapLedgerError(err)
}

// FindByID retrieves a transaction by its ID.
func (r *ledgerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// List retrieves transactions ordered by date descending, optionally
// restricted to one account.
func (r *ledgerRepository) List(ctx context.Context, accountID *uuid.UUID) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).Model(&model.TransactionModel{})
	if accountID != nil {
		query = query.Where("account_id = ?", *accountID)
	}

	var transactionModels []model.TransactionModel
	result := query.Order("date DESC, created_at DESC").Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// Update writes an amended transaction and applies the given balance deltas.
// The row update is guarded by the updated_at value the caller read before
// computing the deltas; a concurrent change or removal makes the guard match
// zero rows and the whole unit aborts with nothing applied.
func (r *ledgerRepository) Update(ctx context.Context, transaction *entity.Transaction, expectedUpdatedAt time.Time, deltas []adapter.BalanceDelta) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.TransactionModel{}).
			Where("id = ? AND updated_at = ?", transaction.ID, expectedUpdatedAt).
			Updates(map[string]interface{}{
				"account_id":         transaction.AccountID,
				"related_account_id": transaction.RelatedAccountID,
				"member_id":          transaction.MemberID,
				"date":               transaction.Date,
				"category":           transaction.Category,
				"description":        transaction.Description,
				"amount":             transaction.Amount,
				"type":               string(transaction.Type),
				"status":             string(transaction.Status),
				"updated_at":         transaction.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return missedWriteError(tx, transaction.ID)
		}
		for _, delta := range deltas {
			if err := applyBalanceDelta(tx, delta.AccountID, delta.Amount); err != nil {
				return err
			}
		}
		return nil
	})
	return wrapLedgerError(err)
}

// Delete soft-deletes a transaction and applies the reversing delta.
func (r *ledgerRepository) Delete(ctx context.Context, id uuid.UUID, delta adapter.BalanceDelta) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.TransactionModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrTransactionNotFound
		}
		return applyBalanceDelta(tx, delta.AccountID, delta.Amount)
	})
	return wrapLedgerError(err)
}

// UpdateStatus moves the transaction from one status to the other and applies
// the boundary-crossing delta in the same atomic unit. The write is
// conditional on the row still holding from, so of two callers racing to
// cross the same boundary exactly one lands the delta.
func (r *ledgerRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.TransactionStatus, delta adapter.BalanceDelta) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.TransactionModel{}).
			Where("id = ? AND status = ?", id, string(from)).
			Updates(map[string]interface{}{
				"status":     string(to),
				"updated_at": time.Now().UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return missedWriteError(tx, id)
		}
		return applyBalanceDelta(tx, delta.AccountID, delta.Amount)
	})
	return wrapLedgerError(err)
}

// missedWriteError decides why a guarded transaction update matched zero
// rows: the row is gone, or a concurrent writer changed it first.
func missedWriteError(tx *gorm.DB, id uuid.UUID) error {
	var count int64
	if err := tx.Model(&model.TransactionModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return domainerror.ErrTransactionModified
}

// applyBalanceDelta adjusts an account balance with an atomic in-database
// increment. A zero delta is skipped; a missing account aborts the enclosing
// transaction.
func applyBalanceDelta(tx *gorm.DB, accountID uuid.UUID, delta decimal.Decimal) error {
	if delta.IsZero() {
		return nil
	}

	result := tx.Model(&model.AccountModel{}).
		Where("id = ?", accountID).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", delta),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrAccountNotFound
	}
	return nil
}

// wrapLedgerError maps a failed atomic unit onto domain error kinds:
// not-found sentinels pass through, everything else becomes a classified
// storage error with a retryable flag.
func wrapLedgerError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domainerror.ErrAccountNotFound) ||
		errors.Is(err, domainerror.ErrTransactionNotFound) ||
		errors.Is(err, domainerror.ErrTransactionModified) {
		return err
	}
	return domainerror.ClassifyStorageError(err)
}
