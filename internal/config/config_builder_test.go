// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func writeTempDotEnv(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func signed() *StructuredConfig {
	return &StructuredConfig{App: App{TokenSignKey: "secret"}}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a config without a sign key is rejected.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// TestBuild_AppliesDefaults verifies defaults for every field left unset.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, signed())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, EnvDev, cfg.App.Env)
	assert.True(t, cfg.App.IsDev())
	assert.Equal(t, defaultTitle, cfg.App.Title)
	assert.Equal(t, defaultVersion, cfg.App.Version)
	assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, defaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, defaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, defaultAllowedOrigins, cfg.Server.AllowedOrigins)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedMethods)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedHeaders)
	assert.Equal(t, "memory", cfg.Storage.DB.DSN)
	assert.False(t, cfg.App.HasAdminBootstrap())
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0", TokenSignKey: "k"}},
		&StructuredConfig{App: App{TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "k", cfg.App.TokenSignKey)
}

// TestBuild_LaterSourceWins verifies the override order.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenSignKey: "first"}, Server: Server{AllowedOrigins: []string{"a"}}},
		&StructuredConfig{App: App{TokenSignKey: "second"}},
		&StructuredConfig{Server: Server{AllowedOrigins: []string{"b", "c"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.App.TokenSignKey)
	assert.Equal(t, []string{"b", "c"}, cfg.Server.AllowedOrigins)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_SkipsMissingDefaultFile(t *testing.T) {
	clearEnvVars(t)
	t.Chdir(t.TempDir())

	b := newConfigBuilder().withDotEnv()

	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithDotEnv_ReadsDefaultFile(t *testing.T) {
	clearEnvVars(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("APP_TOKEN_SIGN_KEY=dot\n"), 0o600))
	t.Chdir(dir)

	b := newConfigBuilder().withDotEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "dot", b.configs[0].App.TokenSignKey)
}

func TestWithDotEnv_PathFromEnv(t *testing.T) {
	path := writeTempDotEnv(t, "APP_VERSION=from-file\nSERVER_ALLOWED_ORIGINS=http://x,http://y\n")
	setEnvVars(t, map[string]string{"ENV_FILE": path})

	b := newConfigBuilder().withDotEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "from-file", b.configs[0].App.Version)
	assert.Equal(t, []string{"http://x", "http://y"}, b.configs[0].Server.AllowedOrigins)
	_, exported := os.LookupEnv("APP_VERSION")
	assert.False(t, exported)
}

func TestWithDotEnv_PathFromArgs(t *testing.T) {
	clearEnvVars(t)
	path := writeTempDotEnv(t, "APP_TITLE=args")

	b := newConfigBuilder().withDotEnv("-env-file", path)

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "args", b.configs[0].App.Title)
}

func TestWithDotEnv_ExplicitMissingFile(t *testing.T) {
	setEnvVars(t, map[string]string{"ENV_FILE": "/nonexistent/.env"})

	b := newConfigBuilder().withDotEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":      "env-version",
		"APP_TOKEN_ISSUER": "env-issuer",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "never"})

	b := newConfigBuilder().withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Len(t, b.configs, 1)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.App.TokenIssuer = "json-issuer"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "json-issuer", b.configs[1].App.TokenIssuer)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

// ── full chain ────────────────────────────────────────────────────────────────

// TestBuilder_Priority verifies .env < env < flags < JSON.
func TestBuilder_Priority(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json"
	jsonPath := writeTempJSONConfig(t, payload)

	dotEnv := writeTempDotEnv(t, "APP_TOKEN_SIGN_KEY=dotenv\nAPP_TITLE=dotenv\nAPP_VERSION=dotenv\nSERVER_ADDRESS=127.0.0.1:1000\n")
	setEnvVars(t, map[string]string{
		"ENV_FILE":       dotEnv,
		"APP_TITLE":      "env",
		"SERVER_ADDRESS": "127.0.0.1:2000",
		"CONFIG":         jsonPath,
	})
	args := []string{"-a", "127.0.0.1:3000"}

	cfg, err := newConfigBuilder().
		withDotEnv(args...).
		withEnv().
		withFlags(args).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "dotenv", cfg.App.TokenSignKey)
	assert.Equal(t, "env", cfg.App.Title)
	assert.Equal(t, "127.0.0.1:3000", cfg.Server.HTTPAddress)
	assert.Equal(t, "json", cfg.App.Version)
	assert.Equal(t, defaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}
