// Package account contains account-store use cases.
package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coursehub/backoffice/internal/application/adapter"
	"github.com/coursehub/backoffice/internal/domain/entity"
	domainerror "github.com/coursehub/backoffice/internal/domain/error"
)

// AccountOutput represents an account in use-case outputs.
type AccountOutput struct {
	ID        uuid.UUID
	Name      string
	Type      string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	AccessToken string
	Name        string
	Type        string
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *AccountOutput
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
	authorizer  adapter.Authorizer
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository, authorizer adapter.Authorizer) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
		authorizer:  authorizer,
	}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	if err := uc.authorizer.Authorize(ctx, input.AccessToken); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeEmptyAccountName,
			"account name cannot be empty",
			domainerror.ErrEmptyAccountName,
		)
	}

	accountType := strings.TrimSpace(input.Type)
	if accountType == "" {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeEmptyAccountType,
			"account type cannot be empty",
			domainerror.ErrEmptyAccountType,
		)
	}

	exists, err := uc.accountRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check account name: %w", err)
	}
	if exists {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameTaken,
			fmt.Sprintf("account %q already exists", name),
			domainerror.ErrAccountNameTaken,
		)
	}

	account := entity.NewAccount(name, accountType)

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{
		Account: &AccountOutput{
			ID:        account.ID,
			Name:      account.Name,
			Type:      account.Type,
			Balance:   account.Balance,
			CreatedAt: account.CreatedAt,
			UpdatedAt: account.UpdatedAt,
		},
	}, nil
}
