// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService defines hashing and verification for the admin credential.
type PasswordService interface {
	// HashPassword generates a hash from a plaintext password.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plaintext password against a stored hash.
	VerifyPassword(hash, password string) error
}
