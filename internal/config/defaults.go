// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Environment names.
const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

const (
	defaultTitle           = "ISEP CTF BACKEND"
	defaultVersion         = "0.0.1"
	defaultTokenIssuer     = "go-ctf-backend"
	defaultTokenDuration   = 24 * time.Hour
	defaultHTTPAddress     = "0.0.0.0:8000"
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultDSN             = "memory"
	defaultMaxOpenConns    = 10
	defaultMaxIdleConns    = 4
)

var (
	defaultAllowedOrigins = []string{"http://localhost:3000", "http://0.0.0.0:3000"}
	defaultAllowedMethods = []string{"*"}
	defaultAllowedHeaders = []string{"*"}
)

// applyDefaults fills every field that no source has set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Env == "" {
		cfg.App.Env = EnvDev
	}
	if cfg.App.Title == "" {
		cfg.App.Title = defaultTitle
	}
	if cfg.App.Version == "" {
		cfg.App.Version = defaultVersion
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = append([]string(nil), defaultAllowedOrigins...)
	}
	if len(cfg.Server.AllowedMethods) == 0 {
		cfg.Server.AllowedMethods = append([]string(nil), defaultAllowedMethods...)
	}
	if len(cfg.Server.AllowedHeaders) == 0 {
		cfg.Server.AllowedHeaders = append([]string(nil), defaultAllowedHeaders...)
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultDSN
	}
	if cfg.Storage.DB.MaxOpenConns == 0 {
		cfg.Storage.DB.MaxOpenConns = defaultMaxOpenConns
	}
	if cfg.Storage.DB.MaxIdleConns == 0 {
		cfg.Storage.DB.MaxIdleConns = defaultMaxIdleConns
	}
}
