// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const defaultDotEnvPath = ".env"

// parseDotEnv reads a .env file and maps it onto a fresh [StructuredConfig]
// with the same tags used for the process environment.
// Returns nil config when no file is found at the default location.
func parseDotEnv(path string) (*StructuredConfig, error) {
	vars, err := readDotEnvVars(path)
	if err != nil || vars == nil {
		return nil, err
	}

	cfg := &StructuredConfig{}
	if err = parseEnvMap(cfg, vars); err != nil {
		return nil, err
	}

	return cfg, nil
}

// readDotEnvVars returns the variables of a .env file without exporting them.
//
// When path is empty the default ".env" is tried and silently skipped if it
// does not exist. An explicitly configured path must exist.
func readDotEnvVars(path string) (map[string]string, error) {
	explicit := path != ""
	if !explicit {
		path = defaultDotEnvPath
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("error parsing .env file: %w", err)
	}

	return vars, nil
}
