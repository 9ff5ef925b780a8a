// Package error defines domain-specific errors for the back-office ledger.
package error

import "errors"

// Member directory errors.
var (
	// ErrMemberNotFound is returned when a member is not found in the directory.
	ErrMemberNotFound = errors.New("member not found")
)
