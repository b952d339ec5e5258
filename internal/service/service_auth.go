// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ctf-backend/internal/logger"
	"github.com/MKhiriev/go-ctf-backend/internal/store"
	"github.com/MKhiriev/go-ctf-backend/models"
)

type authService struct {
	accountService AccountService
	tokenService   TokenService

	logger *logger.Logger
}

func NewAuthService(accountService AccountService, tokenService TokenService, logger *logger.Logger) AuthService {
	return &authService{
		accountService: accountService,
		tokenService:   tokenService,
		logger:         logger,
	}
}

// Login authenticates the credentials and issues a token with the
// configured duration.
//
// Returns the account with its token or:
//   - store.ErrAccountNotFound / ErrCredentialMismatch from Authenticate;
//   - ErrInactiveAccount if the account is deactivated;
//   - ErrTokenCreationFailed if signing fails.
func (a *authService) Login(ctx context.Context, login models.AccountLogin) (models.Account, models.Token, error) {
	account, err := a.accountService.Authenticate(ctx, login)
	if err != nil {
		return models.Account{}, models.Token{}, err
	}

	if !account.IsActive {
		logger.FromContext(ctx).Debug().Int64("id", account.ID).Msg("login of inactive account")
		return models.Account{}, models.Token{}, ErrInactiveAccount
	}

	token, err := a.tokenService.Issue(ctx, account.ID, 0)
	if err != nil {
		return models.Account{}, models.Token{}, err
	}

	return account, token, nil
}

// Authorize resolves the caller behind a bearer token.
//
// Returns the account or:
//   - ErrInvalidToken if the token does not verify;
//   - ErrAccountNotAuthenticated if the subject no longer exists;
//   - ErrInactiveAccount if the account is deactivated.
func (a *authService) Authorize(ctx context.Context, token string) (models.Account, error) {
	accountID, err := a.tokenService.Verify(ctx, token)
	if err != nil {
		return models.Account{}, err
	}

	account, err := a.accountService.ReadAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return models.Account{}, ErrAccountNotAuthenticated
		}
		return models.Account{}, fmt.Errorf("caller lookup failed: %w", err)
	}

	if !account.IsActive {
		return models.Account{}, ErrInactiveAccount
	}

	return account, nil
}
