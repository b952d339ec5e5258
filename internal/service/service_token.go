// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ctf-backend/internal/config"
	"github.com/MKhiriev/go-ctf-backend/internal/logger"
	"github.com/MKhiriev/go-ctf-backend/internal/utils"
	"github.com/MKhiriev/go-ctf-backend/models"
)

// tokenService signs HS256 JWTs whose subject is the account id.
type tokenService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration is used when Issue is called with a zero ttl.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewTokenService constructs a TokenService from the App configuration group.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

func (s *tokenService) Issue(ctx context.Context, accountID int64, ttl time.Duration) (models.Token, error) {
	if ttl == 0 {
		ttl = s.tokenDuration
	}

	token, err := utils.GenerateJWTToken(s.tokenIssuer, accountID, ttl, s.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", accountID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify normalises every validation failure (expired, wrong issuer or
// signature, malformed, bad subject) to ErrInvalidToken.
func (s *tokenService) Verify(ctx context.Context, token string) (int64, error) {
	parsed, err := utils.ValidateAndParseJWTToken(token, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return 0, ErrInvalidToken
	}

	return parsed.AccountID, nil
}
