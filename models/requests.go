// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AccountCreate is the registration payload.
type AccountCreate struct {
	Username string `json:"username" validate:"required,min=3,max=64,username_format"`
	Email    string `json:"email" validate:"required,email,max=128"`
	Password string `json:"password" validate:"required,min=1,max=72"`
}

// AccountLogin is the email + password pair exchanged for a token.
type AccountLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AccountUpdate is a partial patch. A field that is absent from the request
// is left untouched by the update; see [Optional].
//
// Role and IsActive are honoured only for admin callers.
type AccountUpdate struct {
	Username Optional[string] `json:"username"`
	Email    Optional[string] `json:"email"`
	Password Optional[string] `json:"password"`
	Role     Optional[Role]   `json:"role"`
	IsActive Optional[bool]   `json:"isActive"`
}

// TouchesPrivileges reports whether the patch changes admin-only fields.
func (u AccountUpdate) TouchesPrivileges() bool {
	return u.Role.Set || u.IsActive.Set
}

// AccountPatch is the store-level form of an update: nil fields are left
// untouched. PasswordHash is already hashed by the time it reaches the store.
type AccountPatch struct {
	Username     *string
	Email        *string
	PasswordHash *string
	Role         *Role
	IsActive     *bool
}
