// Package error defines domain-specific errors for the back-office ledger.
package error

import "errors"

// Authorization domain errors. These are deliberately uniform: an
// authorization failure must not reveal whether the target resource exists.
var (
	// ErrUnauthorized is returned when the caller is not an authenticated admin.
	ErrUnauthorized = errors.New("not authorized")

	// ErrInvalidToken is returned when a token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token has expired")

	// ErrInvalidCredentials is returned when admin login credentials are invalid.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthErrorCode defines error codes for authorization errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Credential errors (01XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-010001"

	// Token errors (02XXXX)
	ErrCodeUnauthorized AuthErrorCode = "AUTH-020001"
	ErrCodeInvalidToken AuthErrorCode = "AUTH-020002"
	ErrCodeExpiredToken AuthErrorCode = "AUTH-020003"
	ErrCodeMissingToken AuthErrorCode = "AUTH-020004"
)

// AuthError represents an authorization error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAuthError reports whether err is (or wraps) an authorization error.
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}
