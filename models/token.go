// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT with convenience accessors for authentication flows.
//
// The payload is stateless and never stored server-side: subject is the
// account identifier, exp is optional.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// AccountID is the parsed "sub" claim.
	AccountID int64 `json:"-"`
}

// GetAccountID parses the "sub" claim as a base-10 int64.
func (t *Token) GetAccountID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting AccountID from token: %w", err)
	}

	accountID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting AccountID from token to int64: %w", err)
	}

	return accountID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
