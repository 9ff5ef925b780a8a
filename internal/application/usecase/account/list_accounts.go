// Package account contains account-store use cases.
package account

import (
	"context"
	"fmt"

	"github.com/coursehub/backoffice/internal/application/adapter"
)

// ListAccountsOutput represents the output of listing accounts.
type ListAccountsOutput struct {
	Accounts []*AccountOutput
}

// ListAccountsUseCase handles listing all accounts.
type ListAccountsUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(accountRepo adapter.AccountRepository) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		accountRepo: accountRepo,
	}
}

// Execute retrieves all accounts ordered by name.
func (uc *ListAccountsUseCase) Execute(ctx context.Context) (*ListAccountsOutput, error) {
	accounts, err := uc.accountRepo.ListOrderedByName(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	outputs := make([]*AccountOutput, len(accounts))
	for i, account := range accounts {
		outputs[i] = &AccountOutput{
			ID:        account.ID,
			Name:      account.Name,
			Type:      account.Type,
			Balance:   account.Balance,
			CreatedAt: account.CreatedAt,
			UpdatedAt: account.UpdatedAt,
		}
	}

	return &ListAccountsOutput{Accounts: outputs}, nil
}
