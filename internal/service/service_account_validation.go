// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ctf-backend/internal/validators"
	"github.com/MKhiriev/go-ctf-backend/models"
)

// AccountServiceWrapper defines middleware composition for AccountService.
// Implementations wrap an existing AccountService to add behavior such as
// logging or validating.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService // returns a decorated AccountService applying additional behavior
}

// AccountValidationService rejects malformed payloads before they reach the
// wrapped AccountService. Operations without a payload pass straight through.
type AccountValidationService struct {
	inner     AccountService
	validator validators.Validator
}

func NewAccountValidationService() AccountServiceWrapper {
	return &AccountValidationService{
		validator: validators.NewAccountValidator(),
	}
}

func (v *AccountValidationService) Wrap(inner AccountService) AccountService {
	v.inner = inner
	return v
}

func (v *AccountValidationService) CreateAccount(ctx context.Context, create models.AccountCreate) (models.Account, error) {
	// account creation requires:
	//  - Username: 3..64, letters, digits, underscore
	//  - Email: valid address up to 128 characters
	//  - Password: non-empty, up to 72 characters
	if err := v.validator.Validate(ctx, create); err != nil {
		return models.Account{}, fmt.Errorf("error during account validation before saving: %w", err)
	}

	return v.inner.CreateAccount(ctx, create)
}

func (v *AccountValidationService) ReadAccounts(ctx context.Context) ([]models.Account, error) {
	return v.inner.ReadAccounts(ctx)
}

func (v *AccountValidationService) ReadAccountByID(ctx context.Context, id int64) (models.Account, error) {
	return v.inner.ReadAccountByID(ctx, id)
}

func (v *AccountValidationService) ReadAccountByUsername(ctx context.Context, username string) (models.Account, error) {
	return v.inner.ReadAccountByUsername(ctx, username)
}

func (v *AccountValidationService) ReadAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	return v.inner.ReadAccountByEmail(ctx, email)
}

func (v *AccountValidationService) Authenticate(ctx context.Context, login models.AccountLogin) (models.Account, error) {
	if err := v.validator.Validate(ctx, login); err != nil {
		return models.Account{}, fmt.Errorf("error during login validation: %w", err)
	}

	return v.inner.Authenticate(ctx, login)
}

func (v *AccountValidationService) UpdateAccountByID(ctx context.Context, id int64, update models.AccountUpdate) (models.Account, error) {
	// only supplied fields are checked
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Account{}, fmt.Errorf("error during account validation before update: %w", err)
	}

	return v.inner.UpdateAccountByID(ctx, id, update)
}

func (v *AccountValidationService) DeleteAccountByID(ctx context.Context, id int64) (string, error) {
	return v.inner.DeleteAccountByID(ctx, id)
}

func (v *AccountValidationService) IsUsernameTaken(ctx context.Context, username string) (bool, error) {
	return v.inner.IsUsernameTaken(ctx, username)
}

func (v *AccountValidationService) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	return v.inner.IsEmailTaken(ctx, email)
}

func (v *AccountValidationService) EnsureAdmin(ctx context.Context, username, email, password string) (models.Account, error) {
	create := models.AccountCreate{Username: username, Email: email, Password: password}
	if err := v.validator.Validate(ctx, create); err != nil {
		return models.Account{}, fmt.Errorf("error during admin account validation: %w", err)
	}

	return v.inner.EnsureAdmin(ctx, username, email, password)
}
