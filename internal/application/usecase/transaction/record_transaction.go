// Package transaction contains ledger use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coursehub/backoffice/internal/application/adapter"
	"github.com/coursehub/backoffice/internal/domain/entity"
	domainerror "github.com/coursehub/backoffice/internal/domain/error"
)

// RecordTransactionInput represents the input for recording a transaction.
// Amount is the positive magnitude; the sign convention is derived from Type.
type RecordTransactionInput struct {
	AccessToken string
	AccountID   uuid.UUID
	Date        time.Time
	Category    string
	Description string
	Amount      decimal.Decimal
	Type        entity.TransactionType
	Status      entity.TransactionStatus
	MemberID    *uuid.UUID
}

// RecordTransactionOutput represents the output of recording a transaction.
type RecordTransactionOutput struct {
	Transaction *TransactionOutput
}

// RecordTransactionUseCase handles transaction recording logic.
type RecordTransactionUseCase struct {
	ledgerRepo  adapter.LedgerRepository
	accountRepo adapter.AccountRepository
	members     adapter.MemberDirectory
	authorizer  adapter.Authorizer
}

// NewRecordTransactionUseCase creates a new RecordTransactionUseCase instance.
func NewRecordTransactionUseCase(
	ledgerRepo adapter.LedgerRepository,
	accountRepo adapter.AccountRepository,
	members adapter.MemberDirectory,
	authorizer adapter.Authorizer,
) *RecordTransactionUseCase {
	return &RecordTransactionUseCase{
		ledgerRepo:  ledgerRepo,
		accountRepo: accountRepo,
		members:     members,
		authorizer:  authorizer,
	}
}

// Execute performs the transaction recording: the row insert and the account
// balance adjustment land in one atomic storage unit.
func (uc *RecordTransactionUseCase) Execute(ctx context.Context, input RecordTransactionInput) (*RecordTransactionOutput, error) {
	if err := uc.authorizer.Authorize(ctx, input.AccessToken); err != nil {
		return nil, err
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNonPositiveAmount,
			"amount must be greater than zero",
			domainerror.ErrNonPositiveAmount,
		)
	}

	if !isRecordableType(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'income', 'expense' or 'distribution'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !isValidStatus(input.Status) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionStatus,
			"transaction status must be 'completed' or 'pending'",
			domainerror.ErrInvalidTransactionStatus,
		)
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyCategory,
			"category cannot be empty",
			domainerror.ErrEmptyCategory,
		)
	}

	if len(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	if input.Date.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"transaction date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	if _, err := uc.accountRepo.FindByID(ctx, input.AccountID); err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnAccountNotFound,
				"account not found",
				domainerror.ErrAccountNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	transaction := entity.NewTransaction(
		input.AccountID,
		input.Date,
		category,
		input.Description,
		entity.SignedAmount(input.Amount, input.Type),
		input.Type,
		input.Status,
		input.MemberID,
	)

	// Pending rows contribute nothing to the balance until completion.
	if err := uc.ledgerRepo.Create(ctx, transaction, transaction.EffectiveAmount()); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	// Income attributed to a member marks them paid. The ledger write already
	// committed; a directory failure is logged rather than surfaced.
	if transaction.Type == entity.TransactionTypeIncome && transaction.MemberID != nil {
		if err := uc.members.MarkPaid(ctx, *transaction.MemberID); err != nil {
			slog.Warn("Failed to mark member as paid",
				"memberID", *transaction.MemberID,
				"transactionID", transaction.ID,
				"error", err,
			)
		}
	}

	return &RecordTransactionOutput{
		Transaction: toTransactionOutput(transaction),
	}, nil
}
