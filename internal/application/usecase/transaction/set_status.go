// Package transaction contains ledger use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/coursehub/backoffice/internal/application/adapter"
	"github.com/coursehub/backoffice/internal/domain/entity"
	domainerror "github.com/coursehub/backoffice/internal/domain/error"
)

// SetStatusInput represents the input for toggling a transaction's status.
type SetStatusInput struct {
	AccessToken   string
	TransactionID uuid.UUID
	Status        entity.TransactionStatus
}

// SetStatusOutput represents the output of a status change.
type SetStatusOutput struct {
	Transaction *TransactionOutput
}

// SetStatusUseCase handles completed/pending transitions.
type SetStatusUseCase struct {
	ledgerRepo adapter.LedgerRepository
	authorizer adapter.Authorizer
}

// NewSetStatusUseCase creates a new SetStatusUseCase instance.
func NewSetStatusUseCase(ledgerRepo adapter.LedgerRepository, authorizer adapter.Authorizer) *SetStatusUseCase {
	return &SetStatusUseCase{
		ledgerRepo: ledgerRepo,
		authorizer: authorizer,
	}
}

// Execute toggles the status. Only completed amounts are reflected in the
// account balance, so crossing the boundary applies or reverses the signed
// amount exactly once, atomically with the status write. Setting the current
// status again is a no-op.
func (uc *SetStatusUseCase) Execute(ctx context.Context, input SetStatusInput) (*SetStatusOutput, error) {
	if err := uc.authorizer.Authorize(ctx, input.AccessToken); err != nil {
		return nil, err
	}

	if !isValidStatus(input.Status) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionStatus,
			"transaction status must be 'completed' or 'pending'",
			domainerror.ErrInvalidTransactionStatus,
		)
	}

	transaction, err := uc.ledgerRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if transaction.IsTransferLeg() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeCannotAmendTransferLeg,
			"transfer legs cannot change status; issue a compensating transfer instead",
			domainerror.ErrCannotAmendTransferLeg,
		)
	}

	if transaction.Status == input.Status {
		return &SetStatusOutput{Transaction: toTransactionOutput(transaction)}, nil
	}

	delta := transaction.Amount
	if input.Status == entity.TransactionStatusPending {
		delta = transaction.Amount.Neg()
	}

	// The repository only lands the write if the row still holds the status
	// read above, so the boundary crossing and its delta are decided inside
	// the storage transaction.
	if err := uc.ledgerRepo.UpdateStatus(ctx, transaction.ID, transaction.Status, input.Status, adapter.BalanceDelta{
		AccountID: transaction.AccountID,
		Amount:    delta,
	}); err != nil {
		if errors.Is(err, domainerror.ErrTransactionModified) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionModified,
				"transaction was modified concurrently",
				domainerror.ErrTransactionModified,
			)
		}
		return nil, fmt.Errorf("failed to update transaction status: %w", err)
	}

	transaction.Status = input.Status

	return &SetStatusOutput{Transaction: toTransactionOutput(transaction)}, nil
}
