// Package transaction contains ledger use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/coursehub/backoffice/internal/application/adapter"
	domainerror "github.com/coursehub/backoffice/internal/domain/error"
)

// RemoveTransactionInput represents the input for transaction removal.
type RemoveTransactionInput struct {
	AccessToken   string
	TransactionID uuid.UUID
}

// RemoveTransactionOutput represents the output of transaction removal.
type RemoveTransactionOutput struct {
	Success bool
}

// RemoveTransactionUseCase handles transaction removal logic.
type RemoveTransactionUseCase struct {
	ledgerRepo adapter.LedgerRepository
	authorizer adapter.Authorizer
}

// NewRemoveTransactionUseCase creates a new RemoveTransactionUseCase instance.
func NewRemoveTransactionUseCase(ledgerRepo adapter.LedgerRepository, authorizer adapter.Authorizer) *RemoveTransactionUseCase {
	return &RemoveTransactionUseCase{
		ledgerRepo: ledgerRepo,
		authorizer: authorizer,
	}
}

// Execute removes the transaction and reverses its effective balance
// contribution in the same atomic unit.
func (uc *RemoveTransactionUseCase) Execute(ctx context.Context, input RemoveTransactionInput) (*RemoveTransactionOutput, error) {
	if err := uc.authorizer.Authorize(ctx, input.AccessToken); err != nil {
		return nil, err
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
			"transfer legs cannot be removed; issue a compensating transfer instead",
			domainerror.ErrCannotAmendTransferLeg,
		)
	}

	reversal := adapter.BalanceDelta{
		AccountID: transaction.AccountID,
		Amount:    transaction.EffectiveAmount().Neg(),
	}

	if err := uc.ledgerRepo.Delete(ctx, transaction.ID, reversal); err != nil {
		return nil, fmt.Errorf("failed to remove transaction: %w", err)
	}

	return &RemoveTransactionOutput{Success: true}, nil
}
