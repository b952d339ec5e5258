// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the one-way password hashing used for account
// credentials. Hashes are never reversible and never leave the store layer
// through API responses.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// checks candidates against them.
type PasswordHasher interface {
	// Hash returns a salted hash of password. Two calls with the same input
	// produce different outputs.
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash and
	// ErrPasswordMismatch otherwise. An empty hash never matches.
	Compare(hash, password string) error

	// Verify reports whether password matches hash. It never fails loudly:
	// a malformed hash is simply a mismatch.
	Verify(password, hash string) bool
}
