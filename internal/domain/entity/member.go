// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Member represents a person in the directory. The ledger only touches the
// payment flag: recording an income attributed to a member marks them paid.
type Member struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Paid      bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMember creates a new Member with an unpaid status.
func NewMember(name, email string) *Member {
	now := time.Now().UTC()

	return &Member{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Paid:      false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
