// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/coursehub/backoffice/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence operations.
// There is no delete and no direct balance write: every balance change flows
// through the ledger.
type AccountRepository interface {
	// Create creates a new account in the database.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// ListOrderedByName retrieves all accounts ordered by name.
	ListOrderedByName(ctx context.Context) ([]*entity.Account, error)

	// ExistsByName checks if an account with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)
}
