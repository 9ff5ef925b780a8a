// Package account contains account-store use cases.
package account

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/coursehub/backoffice/internal/domain/entity"
	domainerror "github.com/coursehub/backoffice/internal/domain/error"
)

type fakeAuthorizer struct{}

func (fakeAuthorizer) Authorize(_ context.Context, token string) error {
	if token == "valid-token" {
		return nil
	}
	return domainerror.NewAuthError(domainerror.ErrCodeUnauthorized, "not authorized", domainerror.ErrUnauthorized)
}

type fakeAccountRepository struct {
	accounts map[uuid.UUID]*entity.Account
	err      error
}

func newFakeAccountRepository(accounts ...*entity.Account) *fakeAccountRepository {
	repo := &fakeAccountRepository{accounts: make(map[uuid.UUID]*entity.Account)}
	for _, account := range accounts {
		repo.accounts[account.ID] = account
	}
	return repo
}

func (r *fakeAccountRepository) Create(_ context.Context, account *entity.Account) error {
	if r.err != nil {
		return r.err
	}
	r.accounts[account.ID] = account
	return nil
}

func (r *fakeAccountRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	account, ok := r.accounts[id]
	if !ok {
		return nil, domainerror.ErrAccountNotFound
	}
	return account, nil
}

func (r *fakeAccountRepository) ListOrderedByName(_ context.Context) ([]*entity.Account, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Account
	for _, account := range r.accounts {
		out = append(out, account)
	}
	return out, nil
}

func (r *fakeAccountRepository) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, account := range r.accounts {
		if account.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func TestCreateAccount(t *testing.T) {
	t.Run("creates an account with a zero balance", func(t *testing.T) {
		repo := newFakeAccountRepository()
		uc := NewCreateAccountUseCase(repo, fakeAuthorizer{})

		output, err := uc.Execute(context.Background(), CreateAccountInput{
			AccessToken: "valid-token",
			Name:        "Cash",
			Type:        entity.AccountTypeCash,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Account.Name != "Cash" {
			t.Errorf("expected name Cash, got %q", output.Account.Name)
		}
		if !output.Account.Balance.IsZero() {
			t.Errorf("expected zero balance, got %s", output.Account.Balance)
		}
		if _, ok := repo.accounts[output.Account.ID]; !ok {
			t.Error("expected account persisted")
		}
	})

	t.Run("trims the name and type", func(t *testing.T) {
		uc := NewCreateAccountUseCase(newFakeAccountRepository(), fakeAuthorizer{})

		output, err := uc.Execute(context.Background(), CreateAccountInput{
			AccessToken: "valid-token",
			Name:        "  Bank  ",
			Type:        "  BANK  ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Account.Name != "Bank" || output.Account.Type != "BANK" {
			t.Errorf("expected trimmed fields, got %q / %q", output.Account.Name, output.Account.Type)
		}
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		uc := NewCreateAccountUseCase(newFakeAccountRepository(), fakeAuthorizer{})

		_, err := uc.Execute(context.Background(), CreateAccountInput{
			AccessToken: "valid-token",
			Name:        "   ",
			Type:        entity.AccountTypeCash,
		})
		if !errors.Is(err, domainerror.ErrEmptyAccountName) {
			t.Fatalf("expected empty-name error, got %v", err)
		}
	})

	t.Run("blank type is rejected", func(t *testing.T) {
		uc := NewCreateAccountUseCase(newFakeAccountRepository(), fakeAuthorizer{})

		_, err := uc.Execute(context.Background(), CreateAccountInput{
			AccessToken: "valid-token",
			Name:        "Cash",
			Type:        " ",
		})
		if !errors.Is(err, domainerror.ErrEmptyAccountType) {
			t.Fatalf("expected empty-type error, got %v", err)
		}
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		existing := entity.NewAccount("Cash", entity.AccountTypeCash)
		repo := newFakeAccountRepository(existing)
		uc := NewCreateAccountUseCase(repo, fakeAuthorizer{})

		_, err := uc.Execute(context.Background(), CreateAccountInput{
			AccessToken: "valid-token",
			Name:        "Cash",
			Type:        entity.AccountTypeBank,
		})
		if !errors.Is(err, domainerror.ErrAccountNameTaken) {
			t.Fatalf("expected name-taken error, got %v", err)
		}
		if len(repo.accounts) != 1 {
			t.Error("expected no second account created")
		}
	})

	t.Run("rejected caller produces no writes", func(t *testing.T) {
		repo := newFakeAccountRepository()
		uc := NewCreateAccountUseCase(repo, fakeAuthorizer{})

		_, err := uc.Execute(context.Background(), CreateAccountInput{
			AccessToken: "bogus",
			Name:        "Cash",
			Type:        entity.AccountTypeCash,
		})
		if !domainerror.IsAuthError(err) {
			t.Fatalf("expected auth error, got %v", err)
		}
		if len(repo.accounts) != 0 {
			t.Error("expected no account created for unauthorized caller")
		}
	})
}
