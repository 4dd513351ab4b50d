// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "errors"

// ErrPasswordMismatch is returned by Compare when the password does not match the hash.
var ErrPasswordMismatch = errors.New("password does not match")

// PasswordHasher defines password hashing and verification for credential sign-in.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash, ErrPasswordMismatch when it does not,
	// and any other error when the hash cannot be evaluated.
	Compare(hash, password string) error
}
