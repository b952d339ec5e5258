// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-ctf-backend/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AccountCtxKey is the key under which the authenticated caller is stored.
// Set by the auth middleware, read with GetAccountFromContext.
var AccountCtxKey = contextKey("account")

// WithAccount returns a copy of ctx carrying the authenticated account.
func WithAccount(ctx context.Context, account models.Account) context.Context {
	return context.WithValue(ctx, AccountCtxKey, account)
}

// GetAccountFromContext retrieves the authenticated account from the context.
//
// Returns the account and an ok flag:
//   - ok == true: value is found and has the models.Account type
//   - ok == false: value is missing or has an unexpected type
//
// Example usage:
//
//	caller, ok := utils.GetAccountFromContext(ctx)
//	if !ok {
//	    // request did not pass the auth middleware
//	}
func GetAccountFromContext(ctx context.Context) (models.Account, bool) {
	account, ok := ctx.Value(AccountCtxKey).(models.Account)
	return account, ok
}
