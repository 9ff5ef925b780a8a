// Package transaction contains ledger use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/coursehub/backoffice/internal/application/adapter"
)

// ListTransactionsInput represents the input for listing transactions.
// AccountID restricts the listing to one account when set.
type ListTransactionsInput struct {
	AccountID *uuid.UUID
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
}

// ListTransactionsUseCase handles transaction listing.
type ListTransactionsUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(ledgerRepo adapter.LedgerRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute retrieves transactions ordered by date descending.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	transactions, err := uc.ledgerRepo.List(ctx, input.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	outputs := make([]*TransactionOutput, len(transactions))
	for i, txn := range transactions {
		outputs[i] = toTransactionOutput(txn)
	}

	return &ListTransactionsOutput{Transactions: outputs}, nil
}
