// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ctf-backend/internal/config"
	"github.com/MKhiriev/go-ctf-backend/internal/crypto"
	"github.com/MKhiriev/go-ctf-backend/internal/logger"
	"github.com/MKhiriev/go-ctf-backend/internal/store"
)

type Services struct {
	AccountService AccountService
	AuthService    AuthService
	TokenService   TokenService
	AppInfoService AppInfoService
}

// NewServices wires the account services over storages. The AccountService
// exposed to handlers is wrapped with input validation.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	accountService := NewAccountValidationService().Wrap(
		NewAccountService(storages.AccountRepository, crypto.NewBcryptHasher(cfg.App.BcryptCost), logger),
	)
	tokenService := NewTokenService(cfg.App, logger)

	return &Services{
		AccountService: accountService,
		AuthService:    NewAuthService(accountService, tokenService, logger),
		TokenService:   tokenService,
		AppInfoService: appInfoService,
	}, nil
}

// BootstrapAdmin creates or promotes the configured admin account. It is a
// no-op when no admin credentials are configured.
func (s *Services) BootstrapAdmin(ctx context.Context, cfg config.App, logger *logger.Logger) error {
	if !cfg.HasAdminBootstrap() {
		logger.Debug().Msg("no admin account configured")
		return nil
	}

	admin, err := s.AccountService.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		logger.Err(err).Str("email", cfg.AdminEmail).Msg("admin bootstrap failed")
		return fmt.Errorf("admin bootstrap failed: %w", err)
	}

	logger.Info().Int64("id", admin.ID).Str("username", admin.Username).Msg("admin account ready")
	return nil
}
