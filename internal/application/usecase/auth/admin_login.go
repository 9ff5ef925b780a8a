// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/coursehub/backoffice/internal/application/adapter"
	domainerror "github.com/coursehub/backoffice/internal/domain/error"
)

// AdminLoginInput represents the input for admin login.
type AdminLoginInput struct {
	Email    string
	Password string
}

// AdminLoginOutput represents the output of admin login.
type AdminLoginOutput struct {
	AccessToken string
	Email       string
}

// AdminLoginUseCase handles admin login logic. The back office has a single
// operator identity provisioned through configuration rather than a user
// table.
type AdminLoginUseCase struct {
	adminEmail        string
	adminPasswordHash string
	passwordService   adapter.PasswordService
	tokenService      adapter.TokenService
}

// NewAdminLoginUseCase creates a new AdminLoginUseCase instance.
func NewAdminLoginUseCase(
	adminEmail string,
	adminPasswordHash string,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *AdminLoginUseCase {
	return &AdminLoginUseCase{
		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
		passwordService:   passwordService,
		tokenService:      tokenService,
	}
}

// Execute performs the admin login.
func (uc *AdminLoginUseCase) Execute(ctx context.Context, input AdminLoginInput) (*AdminLoginOutput, error) {
	// The same generic error covers a wrong email and a wrong password, to
	// prevent credential enumeration.
	if !strings.EqualFold(strings.TrimSpace(input.Email), uc.adminEmail) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	if err := uc.passwordService.VerifyPassword(uc.adminPasswordHash, input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	token, err := uc.tokenService.GenerateAdminToken(ctx, uc.adminEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AdminLoginOutput{
		AccessToken: token,
		Email:       uc.adminEmail,
	}, nil
}
