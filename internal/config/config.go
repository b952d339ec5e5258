// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// CTF backend. It aggregates all sub-configurations and is populated by
// merging values from a .env file, environment variables, command-line
// flags, and an optional JSON file.
//
// The value returned by [GetStructuredConfig] is treated as immutable and is
// passed by value to every constructor that needs it.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters,
	// password hashing cost, and the bootstrap admin account.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the account store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network, timeout, and CORS settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from the other sources.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the optional path to a .env file. When empty, ".env" in
	// the working directory is used if it exists.
	DotEnvPath string `env:"ENV_FILE"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control security,
// token lifecycle, and versioning.
type App struct {
	// Env is the environment name ("dev", "stage", "prod"). "dev" enables
	// debug-level logging.
	// Env: APP_ENV
	Env string `env:"ENV"`

	// Title is the human-readable API title.
	// Env: APP_TITLE
	Title string `env:"TITLE"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/v1/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// BcryptCost is the bcrypt work factor. Zero selects bcrypt.DefaultCost.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// AdminUsername, AdminEmail and AdminPassword describe an ADMIN account
	// that is created on startup when it does not exist yet. All three must
	// be set for the bootstrap to run.
	// Env: APP_ADMIN_USERNAME, APP_ADMIN_EMAIL, APP_ADMIN_PASSWORD
	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// IsDev reports whether the application runs in the development environment.
func (a App) IsDev() bool {
	return a.Env == EnvDev
}

// HasAdminBootstrap reports whether a bootstrap admin account is configured.
func (a App) HasAdminBootstrap() bool {
	return a.AdminUsername != "" && a.AdminEmail != "" && a.AdminPassword != ""
}

// Server holds network, timeout and CORS settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// AllowedOrigins lists CORS origins, comma separated in the environment.
	// "*" allows any origin.
	// Env: SERVER_ALLOWED_ORIGINS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// AllowedMethods lists CORS methods. "*" allows any method.
	// Env: SERVER_ALLOWED_METHODS
	AllowedMethods []string `env:"ALLOWED_METHODS" envSeparator:","`

	// AllowedHeaders lists CORS request headers. "*" echoes back the
	// headers requested by the preflight.
	// Env: SERVER_ALLOWED_HEADERS
	AllowedHeaders []string `env:"ALLOWED_HEADERS" envSeparator:","`

	// AllowCredentials sets Access-Control-Allow-Credentials.
	// Env: SERVER_ALLOW_CREDENTIALS
	AllowCredentials bool `env:"ALLOW_CREDENTIALS"`
}

// DB holds connection settings for the account store.
type DB struct {
	// DSN selects the backend:
	//   - "postgres://..." or "postgresql://...": PostgreSQL via pgx;
	//   - "sqlite://<path>": SQLite file (":memory:" is accepted as path);
	//   - "memory": process-local in-memory store.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns and MaxIdleConns bound the database/sql pool.
	// Env: STORAGE_DB_MAX_OPEN_CONNS, STORAGE_DB_MAX_IDLE_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
	MaxIdleConns int `env:"MAX_IDLE_CONNS"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 1-3)
//
// Defaults are applied to fields that are still zero after merging.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(os.Args[1:]...).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
