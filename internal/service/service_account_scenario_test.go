// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-ctf-backend/internal/crypto"
	"github.com/MKhiriev/go-ctf-backend/internal/logger"
	"github.com/MKhiriev/go-ctf-backend/internal/store"
	"github.com/MKhiriev/go-ctf-backend/models"
)

// newScenarioAccountSvc wires the validated service over the in-memory store and real bcrypt.
func newScenarioAccountSvc(t *testing.T) (AccountService, store.AccountRepository) {
	t.Helper()
	repo := store.NewMemoryAccountRepository()
	svc := NewAccountValidationService().Wrap(
		NewAccountService(repo, crypto.NewBcryptHasher(bcrypt.MinCost), logger.Nop()),
	)
	return svc, repo
}

func TestScenario_CreateStoresHashNotPlaintext(t *testing.T) {
	svc, repo := newScenarioAccountSvc(t)
	ctx := context.Background()

	created, err := svc.CreateAccount(ctx, models.AccountCreate{Username: "alice", Email: "alice@x.com", Password: "pw123"})
	require.NoError(t, err)

	stored, err := repo.FindAccountByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "pw123", stored.PasswordHash)
	assert.Equal(t, models.RoleUser, stored.Role)
	assert.True(t, stored.IsActive)
}

func TestScenario_DuplicateUsernameLeavesOneAccount(t *testing.T) {
	svc, _ := newScenarioAccountSvc(t)
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, models.AccountCreate{Username: "alice", Email: "alice@x.com", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.CreateAccount(ctx, models.AccountCreate{Username: "alice", Email: "bob@x.com", Password: "pw"})
	assert.ErrorIs(t, err, store.ErrAccountAlreadyExists)

	accounts, err := svc.ReadAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestScenario_UpdateUsernameOnlyKeepsEmailAndHash(t *testing.T) {
	svc, repo := newScenarioAccountSvc(t)
	ctx := context.Background()

	created, err := svc.CreateAccount(ctx, models.AccountCreate{Username: "alice", Email: "alice@x.com", Password: "pw"})
	require.NoError(t, err)
	before, err := repo.FindAccountByID(ctx, created.ID)
	require.NoError(t, err)

	updated, err := svc.UpdateAccountByID(ctx, created.ID, models.AccountUpdate{Username: models.Some("new")})
	require.NoError(t, err)

	assert.Equal(t, "new", updated.Username)
	assert.Equal(t, before.Email, updated.Email)
	assert.Equal(t, before.PasswordHash, updated.PasswordHash)
	assert.NotNil(t, updated.UpdatedAt)
}

func TestScenario_DeleteThenRead(t *testing.T) {
	svc, _ := newScenarioAccountSvc(t)
	ctx := context.Background()

	created, err := svc.CreateAccount(ctx, models.AccountCreate{Username: "alice", Email: "alice@x.com", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.DeleteAccountByID(ctx, created.ID)
	require.NoError(t, err)

	_, err = svc.ReadAccountByID(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrAccountNotFound)
}

func TestScenario_Authenticate(t *testing.T) {
	svc, _ := newScenarioAccountSvc(t)
	ctx := context.Background()

	created, err := svc.CreateAccount(ctx, models.AccountCreate{Username: "alice", Email: "alice@x.com", Password: "right"})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, models.AccountLogin{Email: "alice@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrCredentialMismatch)

	account, err := svc.Authenticate(ctx, models.AccountLogin{Email: "alice@x.com", Password: "right"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, account.ID)

	_, err = svc.Authenticate(ctx, models.AccountLogin{Email: "nobody@x.com", Password: "right"})
	assert.ErrorIs(t, err, store.ErrAccountNotFound)
}

func TestScenario_UpdatePasswordThenAuthenticate(t *testing.T) {
	svc, _ := newScenarioAccountSvc(t)
	ctx := context.Background()

	created, err := svc.CreateAccount(ctx, models.AccountCreate{Username: "alice", Email: "alice@x.com", Password: "old"})
	require.NoError(t, err)

	_, err = svc.UpdateAccountByID(ctx, created.ID, models.AccountUpdate{Password: models.Some("new")})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, models.AccountLogin{Email: "alice@x.com", Password: "old"})
	assert.ErrorIs(t, err, ErrCredentialMismatch)
	_, err = svc.Authenticate(ctx, models.AccountLogin{Email: "alice@x.com", Password: "new"})
	assert.NoError(t, err)
}

func TestScenario_ValidationRejectsBadInput(t *testing.T) {
	svc, _ := newScenarioAccountSvc(t)
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, models.AccountCreate{Username: "alice", Email: "not-an-email", Password: "pw"})
	assert.ErrorIs(t, err, ErrValidationFailure)

	_, err = svc.CreateAccount(ctx, models.AccountCreate{Username: "alice"})
	assert.ErrorIs(t, err, ErrValidationFailure)

	_, err = svc.UpdateAccountByID(ctx, 1, models.AccountUpdate{Email: models.Null[string]()})
	assert.ErrorIs(t, err, ErrValidationFailure)

	_, err = svc.Authenticate(ctx, models.AccountLogin{Email: "alice@x.com"})
	assert.ErrorIs(t, err, ErrValidationFailure)
}

func TestScenario_EnsureAdminIsIdempotent(t *testing.T) {
	svc, _ := newScenarioAccountSvc(t)
	ctx := context.Background()

	first, err := svc.EnsureAdmin(ctx, "root", "root@x.com", "pw")
	require.NoError(t, err)
	second, err := svc.EnsureAdmin(ctx, "root", "root@x.com", "pw")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.IsAdmin())

	accounts, err := svc.ReadAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}
