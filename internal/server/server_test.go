// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-ctf-backend/internal/config"
	"github.com/MKhiriev/go-ctf-backend/internal/handler"
	httpHandler "github.com/MKhiriev/go-ctf-backend/internal/handler/http"
	"github.com/MKhiriev/go-ctf-backend/internal/logger"
	"github.com/MKhiriev/go-ctf-backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers(cfg config.Server) *handler.Handlers {
	return &handler.Handlers{HTTP: httpHandler.NewHandler(&service.Services{}, cfg, logger.Nop())}
}

func TestNewServer_NoAddress(t *testing.T) {
	s, err := NewServer(newTestHandlers(config.Server{}), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_NoHTTPHandler(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":0"}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewHTTPServer_Timeouts(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: 3 * time.Second}

	h := newHTTPServer(http.NotFoundHandler(), cfg, logger.Nop())

	assert.Equal(t, "127.0.0.1:0", h.server.Addr)
	assert.Equal(t, readHeaderTimeout, h.server.ReadHeaderTimeout)
	assert.Equal(t, 3*time.Second, h.shutdownTimeout)
}

func TestRunServer_StopsOnContextCancel(t *testing.T) {
	// Arrange
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}
	s, err := NewServer(newTestHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	// Act
	go func() { done <- s.RunServer(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	// Assert
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}

func TestRunServer_ListenFailure(t *testing.T) {
	cfg := config.Server{HTTPAddress: "256.0.0.1:-1"}
	s, err := NewServer(newTestHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)

	err = s.RunServer(context.Background())

	assert.Error(t, err)
}

func TestShutdown_BeforeRunIsSafe(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}
	s, err := NewServer(newTestHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)

	assert.NotPanics(t, s.Shutdown)
}

func TestNewRouterServer(t *testing.T) {
	s, err := NewRouterServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, s)

	_, err = NewRouterServer(nil, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewRouterServer(http.NotFoundHandler(), config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}
