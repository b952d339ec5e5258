// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"
)

// DefaultFlag is served when CTF_FLAG is not configured.
const DefaultFlag = "FLAG_NOT_SET"

// ChallengeConfig holds settings of the standalone cookie challenge app.
type ChallengeConfig struct {
	// Env is the environment name, "dev" enables debug logging.
	Env string `env:"APP_ENV"`

	// HTTPAddress is the listen address of the challenge server.
	HTTPAddress string `env:"CHALLENGE_ADDRESS"`

	// StaticDir is served under /static/.
	StaticDir string `env:"CHALLENGE_STATIC_DIR"`

	// LogoPath is the PNG whose "ctf_key" text chunk holds the HMAC key.
	LogoPath string `env:"CHALLENGE_LOGO_PATH"`

	// Flag is revealed to sessions signed for the admin user.
	Flag string `env:"CTF_FLAG"`
}

// GetChallengeConfig loads [ChallengeConfig] from the .env file and the
// process environment and applies defaults.
func GetChallengeConfig() (*ChallengeConfig, error) {
	cfg := &ChallengeConfig{}

	vars, err := readDotEnvVars(os.Getenv("ENV_FILE"))
	if err != nil {
		return nil, err
	}
	if vars == nil {
		vars = map[string]string{}
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}

	if err := parseEnvMap(cfg, vars); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *ChallengeConfig) applyDefaults() {
	if cfg.Env == "" {
		cfg.Env = EnvDev
	}
	if cfg.HTTPAddress == "" {
		cfg.HTTPAddress = "0.0.0.0:5000"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "static"
	}
	if cfg.LogoPath == "" {
		cfg.LogoPath = cfg.StaticDir + "/logo.png"
	}
	if cfg.Flag == "" {
		cfg.Flag = DefaultFlag
	}
}

func (cfg *ChallengeConfig) validate() error {
	if cfg.HTTPAddress == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidChallengeConfigs)
	}
	return nil
}
