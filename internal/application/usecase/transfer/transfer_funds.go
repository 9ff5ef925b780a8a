// Package transfer contains the transfer-coordinator use case.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coursehub/backoffice/internal/application/adapter"
	"github.com/coursehub/backoffice/internal/application/usecase/transaction"
	"github.com/coursehub/backoffice/internal/domain/entity"
	domainerror "github.com/coursehub/backoffice/internal/domain/error"
)

// TransferFundsInput represents the input for an internal transfer.
type TransferFundsInput struct {
	AccessToken   string
	FromAccountID uuid.UUID
	ToAccountID   uuid.UUID
	Amount        decimal.Decimal
	Description   string
}

// TransferFundsOutput represents the output of an internal transfer: the two
// paired legs, each referencing the other's account.
type TransferFundsOutput struct {
	OutLeg *transaction.TransactionOutput
	InLeg  *transaction.TransactionOutput
}

// TransferFundsUseCase moves money between two accounts as one atomic unit:
// two balance updates and two transfer rows succeed or fail together.
type TransferFundsUseCase struct {
	ledgerRepo  adapter.LedgerRepository
	accountRepo adapter.AccountRepository
	authorizer  adapter.Authorizer
}

// NewTransferFundsUseCase creates a new TransferFundsUseCase instance.
func NewTransferFundsUseCase(
	ledgerRepo adapter.LedgerRepository,
	accountRepo adapter.AccountRepository,
	authorizer adapter.Authorizer,
) *TransferFundsUseCase {
	return &TransferFundsUseCase{
		ledgerRepo:  ledgerRepo,
		accountRepo: accountRepo,
		authorizer:  authorizer,
	}
}

// Execute performs the transfer.
func (uc *TransferFundsUseCase) Execute(ctx context.Context, input TransferFundsInput) (*TransferFundsOutput, error) {
	if err := uc.authorizer.Authorize(ctx, input.AccessToken); err != nil {
		return nil, err
	}

	if input.FromAccountID == input.ToAccountID {
		return nil, domainerror.NewTransferError(
			domainerror.ErrCodeSameTransferAccount,
			"source and destination accounts must differ",
			domainerror.ErrSameTransferAccount,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransferError(
			domainerror.ErrCodeNonPositiveTransferAmount,
			"transfer amount must be greater than zero",
			domainerror.ErrNonPositiveTransferAmount,
		)
	}

	for _, accountID := range []uuid.UUID{input.FromAccountID, input.ToAccountID} {
		if _, err := uc.accountRepo.FindByID(ctx, accountID); err != nil {
			if errors.Is(err, domainerror.ErrAccountNotFound) {
				return nil, domainerror.NewTransferError(
					domainerror.ErrCodeTransferAccountNotFound,
					"transfer account not found",
					domainerror.ErrTransferAccountNotFound,
				)
			}
			return nil, fmt.Errorf("failed to find account: %w", err)
		}
	}

	// Both legs share the same business date so no period query can split
	// the pair.
	date := time.Now().UTC()

	outLeg := entity.NewTransaction(
		input.FromAccountID,
		date,
		entity.TransferCategory,
		input.Description,
		input.Amount.Neg(),
		entity.TransactionTypeTransfer,
		entity.TransactionStatusCompleted,
		nil,
	)
	outLeg.RelatedAccountID = &input.ToAccountID

	inLeg := entity.NewTransaction(
		input.ToAccountID,
		date,
		entity.TransferCategory,
		input.Description,
		input.Amount,
		entity.TransactionTypeTransfer,
		entity.TransactionStatusCompleted,
		nil,
	)
	inLeg.RelatedAccountID = &input.FromAccountID

	if err := uc.ledgerRepo.CreatePair(ctx, outLeg, inLeg); err != nil {
		return nil, fmt.Errorf("failed to transfer funds: %w", err)
	}

	return &TransferFundsOutput{
		OutLeg: toOutput(outLeg),
		InLeg:  toOutput(inLeg),
	}, nil
}

func toOutput(t *entity.Transaction) *transaction.TransactionOutput {
	return &transaction.TransactionOutput{
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
