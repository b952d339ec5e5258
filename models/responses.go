// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AuthorizedAccount is the public projection of an [Account]. Token is set
// only in login responses.
type AuthorizedAccount struct {
	Token      string     `json:"token"`
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	Role       Role       `json:"role"`
	IsVerified bool       `json:"isVerified"`
	IsActive   bool       `json:"isActive"`
	IsLoggedIn bool       `json:"isLoggedIn"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt"`
}

// AccountResponse is the body returned by every account endpoint.
type AccountResponse struct {
	ID                int64             `json:"id"`
	AuthorizedAccount AuthorizedAccount `json:"authorizedAccount"`
}

// NewAccountResponse projects account without exposing its password hash.
func NewAccountResponse(account Account, token string) AccountResponse {
	return AccountResponse{
		ID: account.ID,
		AuthorizedAccount: AuthorizedAccount{
			Token:      token,
			Username:   account.Username,
			Email:      account.Email,
			Role:       account.Role,
			IsVerified: account.IsEmailVerified,
			IsActive:   account.IsActive,
			IsLoggedIn: token != "",
			CreatedAt:  account.CreatedAt,
			UpdatedAt:  account.UpdatedAt,
		},
	}
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
