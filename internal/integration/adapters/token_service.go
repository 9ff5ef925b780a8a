// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/coursehub/backoffice/internal/application/adapter"
	domainerror "github.com/coursehub/backoffice/internal/domain/error"
)

const (
	tokenIssuer = "coursehub-backoffice"
	adminRole   = "admin"
)

// AdminTokenClaims represents the custom claims for admin JWT tokens.
type AdminTokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface.
type tokenService struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, tokenTTL time.Duration) adapter.TokenService {
	return &tokenService{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// GenerateAdminToken issues a signed admin token for the given identity.
func (s *tokenService) GenerateAdminToken(ctx context.Context, email string) (string, error) {
	now := time.Now().UTC()
	claims := AdminTokenClaims{
		Email: email,
		Role:  adminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign admin token: %w", err)
	}
	return signed, nil
}

// ValidateAdminToken validates a token and returns its claims.
func (s *tokenService) ValidateAdminToken(ctx context.Context, tokenString string) (*adapter.AdminClaims, error) {
	claims, err := s.parseJWT(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.Role != adminRole {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeUnauthorized, "token does not carry admin rights", domainerror.ErrUnauthorized)
	}

	return &adapter.AdminClaims{
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Authorize validates the caller's token and confirms admin rights.
func (s *tokenService) Authorize(ctx context.Context, tokenString string) error {
	if strings.TrimSpace(tokenString) == "" {
		return domainerror.NewAuthError(domainerror.ErrCodeMissingToken, "missing access token", domainerror.ErrUnauthorized)
	}
	_, err := s.ValidateAdminToken(ctx, tokenString)
	return err
}

// parseJWT parses and validates a JWT token.
func (s *tokenService) parseJWT(tokenString string) (*AdminTokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminTokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerror.NewAuthError(domainerror.ErrCodeExpiredToken, "token has expired", domainerror.ErrExpiredToken)
		}
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, "failed to parse token", domainerror.ErrInvalidToken)
	}

	claims, ok := token.Claims.(*AdminTokenClaims)
	if !ok || !token.Valid {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, "invalid token claims", domainerror.ErrInvalidToken)
	}

	return claims, nil
}
