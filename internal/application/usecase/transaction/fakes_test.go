// Package transaction contains ledger use cases.
package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coursehub/backoffice/internal/application/adapter"
	"github.com/coursehub/backoffice/internal/domain/entity"
	domainerror "github.com/coursehub/backoffice/internal/domain/error"
)

// fakeAuthorizer accepts the token "valid-token" and rejects everything else.
type fakeAuthorizer struct {
	calls int
}

func (a *fakeAuthorizer) Authorize(_ context.Context, token string) error {
	a.calls++
	if token == "valid-token" {
		return nil
	}
	return domainerror.NewAuthError(domainerror.ErrCodeUnauthorized, "not authorized", domainerror.ErrUnauthorized)
}

// fakeLedgerRepository records the calls made against it and serves
// transactions from an in-memory map.
type fakeLedgerRepository struct {
	transactions map[uuid.UUID]*entity.Transaction

	createdTransaction *entity.Transaction
	createdDelta       decimal.Decimal
	createdOutLeg      *entity.Transaction
	createdInLeg       *entity.Transaction
	updatedTransaction *entity.Transaction
	updatedGuard       time.Time
	updatedDeltas      []adapter.BalanceDelta
	deletedID          uuid.UUID
	deletedDelta       adapter.BalanceDelta
	statusID           uuid.UUID
	statusFrom         entity.TransactionStatus
	statusValue        entity.TransactionStatus
	statusDelta        adapter.BalanceDelta
	statusCalls        int

	err error
}

func newFakeLedgerRepository(transactions ...*entity.Transaction) *fakeLedgerRepository {
	repo := &fakeLedgerRepository{transactions: make(map[uuid.UUID]*entity.Transaction)}
	for _, txn := range transactions {
		repo.transactions[txn.ID] = txn
	}
	return repo
}

func (r *fakeLedgerRepository) Create(_ context.Context, transaction *entity.Transaction, delta decimal.Decimal) error {
	if r.err != nil {
		return r.err
	}
	r.createdTransaction = transaction
	r.createdDelta = delta
	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *fakeLedgerRepository) CreatePair(_ context.Context, outLeg, inLeg *entity.Transaction) error {
	if r.err != nil {
		return r.err
	}
	r.createdOutLeg = outLeg
	r.createdInLeg = inLeg
	r.transactions[outLeg.ID] = outLeg
	r.transactions[inLeg.ID] = inLeg
	return nil
}

func (r *fakeLedgerRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	txn, ok := r.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	copied := *txn
	return &copied, nil
}

func (r *fakeLedgerRepository) List(_ context.Context, accountID *uuid.UUID) ([]*entity.Transaction, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Transaction
	for _, txn := range r.transactions {
		if accountID == nil || txn.AccountID == *accountID {
			out = append(out, txn)
		}
	}
	return out, nil
}

func (r *fakeLedgerRepository) Update(_ context.Context, transaction *entity.Transaction, expectedUpdatedAt time.Time, deltas []adapter.BalanceDelta) error {
	if r.err != nil {
		return r.err
	}
	stored, ok := r.transactions[transaction.ID]
	if !ok {
		return domainerror.ErrTransactionNotFound
	}
	if !stored.UpdatedAt.Equal(expectedUpdatedAt) {
		return domainerror.ErrTransactionModified
	}
	r.updatedTransaction = transaction
	r.updatedGuard = expectedUpdatedAt
	r.updatedDeltas = deltas
	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *fakeLedgerRepository) Delete(_ context.Context, id uuid.UUID, delta adapter.BalanceDelta) error {
	if r.err != nil {
		return r.err
	}
	r.deletedID = id
	r.deletedDelta = delta
	delete(r.transactions, id)
	return nil
}

func (r *fakeLedgerRepository) UpdateStatus(_ context.Context, id uuid.UUID, from, to entity.TransactionStatus, delta adapter.BalanceDelta) error {
	if r.err != nil {
		return r.err
	}
	txn, ok := r.transactions[id]
	if !ok {
		return domainerror.ErrTransactionNotFound
	}
	if txn.Status != from {
		return domainerror.ErrTransactionModified
	}
	r.statusID = id
	r.statusFrom = from
	r.statusValue = to
	r.statusDelta = delta
	r.statusCalls++
	txn.Status = to
	return nil
}

// fakeAccountRepository serves accounts from an in-memory map.
type fakeAccountRepository struct {
	accounts map[uuid.UUID]*entity.Account
}

func newFakeAccountRepository(accounts ...*entity.Account) *fakeAccountRepository {
	repo := &fakeAccountRepository{accounts: make(map[uuid.UUID]*entity.Account)}
	for _, account := range accounts {
		repo.accounts[account.ID] = account
	}
	return repo
}

func (r *fakeAccountRepository) Create(_ context.Context, account *entity.Account) error {
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

// fakeMemberDirectory records MarkPaid calls.
type fakeMemberDirectory struct {
	paid []uuid.UUID
	err  error
}

func (d *fakeMemberDirectory) MarkPaid(_ context.Context, memberID uuid.UUID) error {
	if d.err != nil {
		return d.err
	}
	d.paid = append(d.paid, memberID)
	return nil
}
