// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// AdminClaims represents the validated identity carried by an admin token.
type AdminClaims struct {
	Email     string
	ExpiresAt time.Time
}

// Authorizer is the capability checked in front of every mutating operation.
// It is invoked once per call, before any read or write; a failure must
// produce zero side effects and never reveal whether a target resource exists.
type Authorizer interface {
	// Authorize validates the caller's token and confirms admin rights.
	Authorize(ctx context.Context, token string) error
}

// TokenService issues and validates admin access tokens.
type TokenService interface {
	Authorizer

	// GenerateAdminToken issues a signed admin token for the given identity.
	GenerateAdminToken(ctx context.Context, email string) (string, error)

	// ValidateAdminToken validates a token and returns its claims.
	ValidateAdminToken(ctx context.Context, token string) (*AdminClaims, error)
}
