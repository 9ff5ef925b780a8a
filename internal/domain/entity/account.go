// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Well-known account type tags. The type is free-form; these are the values
// the back office uses by convention.
const (
	AccountTypeCash     = "CASH"
	AccountTypeBank     = "BANK"
	AccountTypePersonal = "PERSONAL"
)

// Account represents a named pool of money with a materialized running balance.
// The balance is authoritative: it is adjusted incrementally by every ledger
// operation and never recomputed by replaying transaction history.
type Account struct {
	ID        uuid.UUID
	Name      string
	Type      string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount creates a new Account entity with a zero balance.
func NewAccount(name, accountType string) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:        uuid.New(),
		Name:      name,
		Type:      accountType,
		Balance:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
