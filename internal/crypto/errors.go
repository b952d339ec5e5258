// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrEmptyPassword is returned by Hash for an empty plaintext.
	ErrEmptyPassword = errors.New("password is empty")
	// ErrPasswordTooLong is returned for plaintexts over 72 bytes, the bcrypt input limit.
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
	// ErrHashingFailed wraps unexpected bcrypt failures.
	ErrHashingFailed = errors.New("password hashing failed")
	// ErrPasswordMismatch is returned by Compare when the password is wrong.
	ErrPasswordMismatch = errors.New("password does not match")
)
