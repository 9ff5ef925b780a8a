// Package transaction contains ledger use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coursehub/backoffice/internal/application/adapter"
	"github.com/coursehub/backoffice/internal/domain/entity"
	domainerror "github.com/coursehub/backoffice/internal/domain/error"
)

// AmendTransactionInput represents a partial transaction amendment. Nil
// fields are left unchanged. Amount is the positive magnitude; the stored
// sign is recomputed from the (possibly amended) type. Status changes go
// through SetTransactionStatus, not here.
type AmendTransactionInput struct {
	AccessToken   string
	TransactionID uuid.UUID
	Date          *time.Time
	Category      *string
	Description   *string
	Amount        *decimal.Decimal
	Type          *entity.TransactionType
	AccountID     *uuid.UUID
	MemberID      *uuid.UUID
	ClearMember   bool // Set to true to remove the member link
}

// AmendTransactionOutput represents the output of a transaction amendment.
type AmendTransactionOutput struct {
	Transaction *TransactionOutput
}

// AmendTransactionUseCase handles transaction amendment logic.
type AmendTransactionUseCase struct {
	ledgerRepo  adapter.LedgerRepository
	accountRepo adapter.AccountRepository
	authorizer  adapter.Authorizer
}

// NewAmendTransactionUseCase creates a new AmendTransactionUseCase instance.
func NewAmendTransactionUseCase(
	ledgerRepo adapter.LedgerRepository,
	accountRepo adapter.AccountRepository,
	authorizer adapter.Authorizer,
) *AmendTransactionUseCase {
	return &AmendTransactionUseCase{
		ledgerRepo:  ledgerRepo,
		accountRepo: accountRepo,
		authorizer:  authorizer,
	}
}

// Execute performs the amendment. When amount, type or account change, the
// old effective amount is reversed and the new one applied; for a
// same-account amendment the two collapse into a single net delta so the
// balance update stays a lone atomic increment.
func (uc *AmendTransactionUseCase) Execute(ctx context.Context, input AmendTransactionInput) (*AmendTransactionOutput, error) {
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
			"transfer legs cannot be amended; issue a compensating transfer instead",
			domainerror.ErrCannotAmendTransferLeg,
		)
	}

	oldAccountID := transaction.AccountID
	oldEffective := transaction.EffectiveAmount()

	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionDate,
				"transaction date is required",
				domainerror.ErrInvalidTransactionDate,
			)
		}
		transaction.Date = *input.Date
	}

	if input.Category != nil {
		category := strings.TrimSpace(*input.Category)
		if category == "" {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeEmptyCategory,
				"category cannot be empty",
				domainerror.ErrEmptyCategory,
			)
		}
		transaction.Category = category
	}

	if input.Description != nil {
		if len(*input.Description) > MaxDescriptionLength {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeDescriptionTooLong,
				fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
				domainerror.ErrDescriptionTooLong,
			)
		}
		transaction.Description = *input.Description
	}

	if input.Type != nil {
		if !isRecordableType(*input.Type) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				"transaction type must be 'income', 'expense' or 'distribution'",
				domainerror.ErrInvalidTransactionType,
			)
		}
		transaction.Type = *input.Type
	}

	magnitude := transaction.Amount.Abs()
	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeNonPositiveAmount,
				"amount must be greater than zero",
				domainerror.ErrNonPositiveAmount,
			)
		}
		magnitude = *input.Amount
	}
	transaction.Amount = entity.SignedAmount(magnitude, transaction.Type)

	if input.AccountID != nil && *input.AccountID != oldAccountID {
		if _, err := uc.accountRepo.FindByID(ctx, *input.AccountID); err != nil {
			if errors.Is(err, domainerror.ErrAccountNotFound) {
				return nil, domainerror.NewTransactionError(
					domainerror.ErrCodeTxnAccountNotFound,
					"account not found",
					domainerror.ErrAccountNotFound,
				)
			}
			return nil, fmt.Errorf("failed to find account: %w", err)
		}
		transaction.AccountID = *input.AccountID
	}

	if input.ClearMember {
		transaction.MemberID = nil
	} else if input.MemberID != nil {
		transaction.MemberID = input.MemberID
	}

	readUpdatedAt := transaction.UpdatedAt
	transaction.UpdatedAt = time.Now().UTC()

	newEffective := transaction.EffectiveAmount()

	var deltas []adapter.BalanceDelta
	if transaction.AccountID == oldAccountID {
		if net := newEffective.Sub(oldEffective); !net.IsZero() {
			deltas = append(deltas, adapter.BalanceDelta{AccountID: oldAccountID, Amount: net})
		}
	} else {
		deltas = append(deltas,
			adapter.BalanceDelta{AccountID: oldAccountID, Amount: oldEffective.Neg()},
			adapter.BalanceDelta{AccountID: transaction.AccountID, Amount: newEffective},
		)
	}

	// The deltas above were computed against the row as read; the repository
	// only applies them if the row is still unchanged since that read.
	if err := uc.ledgerRepo.Update(ctx, transaction, readUpdatedAt, deltas); err != nil {
		if errors.Is(err, domainerror.ErrTransactionModified) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionModified,
				"transaction was modified concurrently",
				domainerror.ErrTransactionModified,
			)
		}
		return nil, fmt.Errorf("failed to amend transaction: %w", err)
	}

	return &AmendTransactionOutput{
		Transaction: toTransactionOutput(transaction),
	}, nil
}
