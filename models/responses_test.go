// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccountResponse_NeverExposesPasswordHash(t *testing.T) {
	account := Account{
		ID:           7,
		Username:     "alice",
		Email:        "alice@x.com",
		PasswordHash: "$2a$10$secret",
		IsActive:     true,
		Role:         RoleUser,
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	b, err := json.Marshal(NewAccountResponse(account, ""))
	require.NoError(t, err)

	assert.NotContains(t, string(b), "secret")
	assert.Contains(t, string(b), `"id":7`)
	assert.Contains(t, string(b), `"isLoggedIn":false`)
}

func TestNewAccountResponse_WithToken(t *testing.T) {
	resp := NewAccountResponse(Account{ID: 1, Role: RoleAdmin}, "signed.jwt")

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "signed.jwt", resp.AuthorizedAccount.Token)
	assert.True(t, resp.AuthorizedAccount.IsLoggedIn)
	assert.Equal(t, RoleAdmin, resp.AuthorizedAccount.Role)
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleUser.IsValid())
	assert.False(t, Role("ROOT").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestAppBuildInfo_DefaultsToNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("", "2026-10-14", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-10-14", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Contains(t, info.String(), "Build date: 2026-10-14")
}
