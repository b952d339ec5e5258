// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the privilege level of an account.
type Role string

const (
	// RoleAdmin marks a superuser allowed to manage every account.
	RoleAdmin Role = "ADMIN"
	// RoleUser is the default role assigned on registration.
	RoleUser Role = "USER"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Account is the persisted user identity record.
//
// ID and CreatedAt are assigned by the store on creation and never change
// afterwards. PasswordHash holds the bcrypt hash and is never serialized.
type Account struct {
	// ID is the store-assigned primary key.
	ID int64 `json:"id"`

	// Username is unique across all accounts.
	Username string `json:"username"`

	// Email is unique across all accounts and is used to log in.
	Email string `json:"email"`

	// PasswordHash is empty only until the first password is set.
	PasswordHash string `json:"-"`

	// IsEmailVerified defaults to false.
	IsEmailVerified bool `json:"isVerified"`

	// IsActive defaults to true. Inactive accounts cannot authenticate requests.
	IsActive bool `json:"isActive"`

	// Role defaults to RoleUser.
	Role Role `json:"role"`

	// CreatedAt is set once by the store.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is nil until the first update.
	UpdatedAt *time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the account carries the superuser role.
func (a Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "user"
}
