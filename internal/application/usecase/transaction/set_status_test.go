// Package transaction contains ledger use cases.
package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coursehub/backoffice/internal/domain/entity"
	domainerror "github.com/coursehub/backoffice/internal/domain/error"
)

func TestSetStatus(t *testing.T) {
	account := entity.NewAccount("Cash", entity.AccountTypeCash)

	t.Run("pending to completed applies the signed amount", func(t *testing.T) {
		txn := completedExpense(account.ID, 100)
		txn.Status = entity.TransactionStatusPending
		ledgerRepo := newFakeLedgerRepository(txn)
		uc := NewSetStatusUseCase(ledgerRepo, &fakeAuthorizer{})

		output, err := uc.Execute(context.Background(), SetStatusInput{
			AccessToken:   "valid-token",
			TransactionID: txn.ID,
			Status:        entity.TransactionStatusCompleted,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if ledgerRepo.statusCalls != 1 {
			t.Fatalf("expected one status write, got %d", ledgerRepo.statusCalls)
		}
		if !ledgerRepo.statusDelta.Amount.Equal(decimal.NewFromInt(-100)) {
			t.Errorf("expected delta -100, got %s", ledgerRepo.statusDelta.Amount)
		}
		if ledgerRepo.statusFrom != entity.TransactionStatusPending {
			t.Errorf("expected the write conditioned on pending, got %s", ledgerRepo.statusFrom)
		}
		if output.Transaction.Status != entity.TransactionStatusCompleted {
			t.Errorf("expected status completed, got %s", output.Transaction.Status)
		}
	})

	t.Run("completed to pending reverses the signed amount", func(t *testing.T) {
		txn := completedExpense(account.ID, 100)
		ledgerRepo := newFakeLedgerRepository(txn)
		uc := NewSetStatusUseCase(ledgerRepo, &fakeAuthorizer{})

		if _, err := uc.Execute(context.Background(), SetStatusInput{
			AccessToken:   "valid-token",
			TransactionID: txn.ID,
			Status:        entity.TransactionStatusPending,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !ledgerRepo.statusDelta.Amount.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected reversal delta 100, got %s", ledgerRepo.statusDelta.Amount)
		}
	})

	t.Run("setting the current status is a no-op", func(t *testing.T) {
		txn := completedExpense(account.ID, 100)
		ledgerRepo := newFakeLedgerRepository(txn)
		uc := NewSetStatusUseCase(ledgerRepo, &fakeAuthorizer{})

		output, err := uc.Execute(context.Background(), SetStatusInput{
			AccessToken:   "valid-token",
			TransactionID: txn.ID,
			Status:        entity.TransactionStatusCompleted,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ledgerRepo.statusCalls != 0 {
			t.Errorf("expected no status write, got %d", ledgerRepo.statusCalls)
		}
		if output.Transaction.Status != entity.TransactionStatusCompleted {
			t.Errorf("expected status unchanged, got %s", output.Transaction.Status)
		}
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		txn := completedExpense(account.ID, 100)
		uc := NewSetStatusUseCase(newFakeLedgerRepository(txn), &fakeAuthorizer{})

		_, err := uc.Execute(context.Background(), SetStatusInput{
			AccessToken:   "valid-token",
			TransactionID: txn.ID,
			Status:        entity.TransactionStatus("draft"),
		})
		if !errors.Is(err, domainerror.ErrInvalidTransactionStatus) {
			t.Fatalf("expected invalid-status error, got %v", err)
		}
	})

	t.Run("transfer legs cannot change status", func(t *testing.T) {
		leg := entity.NewTransaction(
			account.ID,
			time.Now().UTC(),
			entity.TransferCategory,
			"",
			decimal.NewFromInt(50),
			entity.TransactionTypeTransfer,
			entity.TransactionStatusCompleted,
			nil,
		)
		ledgerRepo := newFakeLedgerRepository(leg)
		uc := NewSetStatusUseCase(ledgerRepo, &fakeAuthorizer{})

		_, err := uc.Execute(context.Background(), SetStatusInput{
			AccessToken:   "valid-token",
			TransactionID: leg.ID,
			Status:        entity.TransactionStatusPending,
		})
		if !errors.Is(err, domainerror.ErrCannotAmendTransferLeg) {
			t.Fatalf("expected transfer-leg error, got %v", err)
		}
		if ledgerRepo.statusCalls != 0 {
			t.Error("expected no status write for a transfer leg")
		}
	})

	t.Run("a write that loses the race surfaces a coded conflict", func(t *testing.T) {
		txn := completedExpense(account.ID, 100)
		ledgerRepo := newFakeLedgerRepository(txn)
		ledgerRepo.err = domainerror.ErrTransactionModified
		uc := NewSetStatusUseCase(ledgerRepo, &fakeAuthorizer{})

		_, err := uc.Execute(context.Background(), SetStatusInput{
			AccessToken:   "valid-token",
			TransactionID: txn.ID,
			Status:        entity.TransactionStatusPending,
		})
		if !errors.Is(err, domainerror.ErrTransactionModified) {
			t.Fatalf("expected concurrent-modification error, got %v", err)
		}
		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeTransactionModified {
			t.Errorf("expected code %s, got %v", domainerror.ErrCodeTransactionModified, err)
		}
	})

	t.Run("unknown transaction", func(t *testing.T) {
		uc := NewSetStatusUseCase(newFakeLedgerRepository(), &fakeAuthorizer{})

		_, err := uc.Execute(context.Background(), SetStatusInput{
			AccessToken:   "valid-token",
			TransactionID: uuid.New(),
			Status:        entity.TransactionStatusPending,
		})
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Fatalf("expected not-found error, got %v", err)
		}
	})
}
