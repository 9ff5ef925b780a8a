// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// MemberDirectory is the ledger's view of the person directory. Recording an
// income attributed to a member flips their payment flag through this port.
type MemberDirectory interface {
	// MarkPaid marks the member's payment status as paid.
	MarkPaid(ctx context.Context, memberID uuid.UUID) error
}
