// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

const (
	minBcryptCost = 4
	maxBcryptCost = 31
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: token duration must not be negative", ErrInvalidAppConfigs)
	}
	if c := cfg.App.BcryptCost; c != 0 && (c < minBcryptCost || c > maxBcryptCost) {
		return fmt.Errorf("%w: bcrypt cost must be within %d..%d", ErrInvalidAppConfigs, minBcryptCost, maxBcryptCost)
	}

	admin := []string{cfg.App.AdminUsername, cfg.App.AdminEmail, cfg.App.AdminPassword}
	set := 0
	for _, v := range admin {
		if v != "" {
			set++
		}
	}
	if set != 0 && set != len(admin) {
		return fmt.Errorf("%w: admin username, email and password must be set together", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: timeouts must not be negative", ErrInvalidServerConfigs)
	}

	if !isSupportedDSN(cfg.Storage.DB.DSN) {
		return fmt.Errorf("%w: unsupported dsn %q", ErrInvalidStorageConfigs, redactDSN(cfg.Storage.DB.DSN))
	}

	return nil
}

func isSupportedDSN(dsn string) bool {
	switch {
	case dsn == "memory":
		return true
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return true
	case strings.HasPrefix(dsn, "sqlite://") && len(dsn) > len("sqlite://"):
		return true
	case strings.HasPrefix(dsn, "file:"):
		return true
	}
	return false
}

// redactDSN drops everything after the scheme so credentials never reach logs.
func redactDSN(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i+3] + "..."
	}
	return dsn
}
