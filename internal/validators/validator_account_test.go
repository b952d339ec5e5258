// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-ctf-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountValidator_Create(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		input   models.AccountCreate
		wantErr bool
		msg     string
	}{
		{
			name:  "valid",
			input: models.AccountCreate{Username: "alice_01", Email: "alice@example.com", Password: "pw"},
		},
		{
			name:    "missing username",
			input:   models.AccountCreate{Email: "alice@example.com", Password: "pw"},
			wantErr: true,
			msg:     "username is required",
		},
		{
			name:    "short username",
			input:   models.AccountCreate{Username: "al", Email: "alice@example.com", Password: "pw"},
			wantErr: true,
			msg:     "username must be at least 3 characters",
		},
		{
			name:    "username with spaces",
			input:   models.AccountCreate{Username: "alice smith", Email: "alice@example.com", Password: "pw"},
			wantErr: true,
			msg:     "username can only contain letters, numbers, and underscores",
		},
		{
			name:    "long username",
			input:   models.AccountCreate{Username: strings.Repeat("a", 65), Email: "alice@example.com", Password: "pw"},
			wantErr: true,
			msg:     "username must be at most 64 characters",
		},
		{
			name:    "bad email",
			input:   models.AccountCreate{Username: "alice", Email: "not-an-email", Password: "pw"},
			wantErr: true,
			msg:     "email must be a valid email address",
		},
		{
			name:    "missing password",
			input:   models.AccountCreate{Username: "alice", Email: "alice@example.com"},
			wantErr: true,
			msg:     "password is required",
		},
		{
			name:    "long password",
			input:   models.AccountCreate{Username: "alice", Email: "alice@example.com", Password: strings.Repeat("p", 73)},
			wantErr: true,
			msg:     "password must be at most 72 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidationFailure)
			assert.Contains(t, err.Error(), tt.msg)

			// pointer form takes the same path
			assert.ErrorIs(t, v.Validate(ctx, &tt.input), ErrValidationFailure)
		})
	}
}

func TestAccountValidator_CreateCollectsAllProblems(t *testing.T) {
	err := NewAccountValidator().Validate(context.Background(), models.AccountCreate{})

	require.ErrorIs(t, err, ErrValidationFailure)
	assert.Contains(t, err.Error(), "username is required")
	assert.Contains(t, err.Error(), "email is required")
	assert.Contains(t, err.Error(), "password is required")
}

func TestAccountValidator_Login(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.AccountLogin{Email: "a@example.com", Password: "x"}))
	assert.ErrorIs(t, v.Validate(ctx, &models.AccountLogin{Email: "a@example.com"}), ErrValidationFailure)
	assert.ErrorIs(t, v.Validate(ctx, models.AccountLogin{Email: "bob", Password: "x"}), ErrValidationFailure)
}

func TestAccountValidator_Update(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		input   models.AccountUpdate
		wantErr error
		msg     string
	}{
		{name: "empty patch", input: models.AccountUpdate{}},
		{
			name:  "valid fields",
			input: models.AccountUpdate{Username: models.Some("bob_2"), Email: models.Some("b@example.com"), Role: models.Some(models.RoleAdmin), IsActive: models.Some(false)},
		},
		{
			name:    "null username",
			input:   models.AccountUpdate{Username: models.Null[string]()},
			wantErr: ErrValidationFailure,
			msg:     "username field cannot be null",
		},
		{
			name:    "null password",
			input:   models.AccountUpdate{Password: models.Null[string]()},
			wantErr: ErrValidationFailure,
			msg:     "password field cannot be null",
		},
		{
			name:    "null isActive",
			input:   models.AccountUpdate{IsActive: models.Null[bool]()},
			wantErr: ErrValidationFailure,
			msg:     "isActive field cannot be null",
		},
		{
			name:    "empty username value",
			input:   models.AccountUpdate{Username: models.Some("")},
			wantErr: ErrValidationFailure,
			msg:     "username must be at least 3 characters",
		},
		{
			name:    "bad email",
			input:   models.AccountUpdate{Email: models.Some("nope")},
			wantErr: ErrValidationFailure,
			msg:     "email must be a valid email address",
		},
		{
			name:    "unknown role",
			input:   models.AccountUpdate{Role: models.Some(models.Role("ROOT"))},
			wantErr: ErrValidationFailure,
			msg:     "role must be one of ADMIN, USER",
		},
		{
			name:    "empty password value",
			input:   models.AccountUpdate{Password: models.Some("")},
			wantErr: ErrValidationFailure,
			msg:     "password must be at least 1 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestAccountValidator_UpdateSelectedFields(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()
	update := &models.AccountUpdate{Username: models.Some("x"), Email: models.Some("ok@example.com")}

	assert.NoError(t, v.Validate(ctx, update, FieldEmail))
	assert.ErrorIs(t, v.Validate(ctx, update, FieldUsername), ErrValidationFailure)
	assert.ErrorIs(t, v.Validate(ctx, update, "nickname"), ErrUnknownField)
}

func TestAccountValidator_UnsupportedType(t *testing.T) {
	err := NewAccountValidator().Validate(context.Background(), models.Account{})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
