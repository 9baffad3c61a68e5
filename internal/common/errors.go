// Package common holds shared constants and sentinel errors used across the
// gallery's store, auth and CLI layers. Callers match these with errors.Is.
package common

import "errors"

var (
	// Store-level errors.
	ErrDuplicateUsername = errors.New("username already exists")
	ErrAccountNotFound   = errors.New("user not found")

	// Authentication failure. Deliberately generic: the same value is
	// returned for an unknown username and for a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Session token errors (malformed, tampered or wrong key).
	ErrInvalidToken = errors.New("invalid session token")
)
