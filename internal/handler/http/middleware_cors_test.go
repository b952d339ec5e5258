// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-ctf-backend/internal/config"
	"github.com/MKhiriev/go-ctf-backend/internal/logger"
	"github.com/MKhiriev/go-ctf-backend/internal/service"
	"github.com/stretchr/testify/assert"
)

const frontendOrigin = "http://localhost:3000"

func corsHandler(cfg config.Server) *Handler {
	return NewHandler(&service.Services{}, cfg, logger.Nop())
}

func defaultCORSConfig() config.Server {
	return config.Server{
		AllowedOrigins:   []string{frontendOrigin},
		AllowedMethods:   []string{"*"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
}

func executeCORS(h *Handler, req *http.Request) (*httptest.ResponseRecorder, bool) {
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	h.withCORS(next).ServeHTTP(rr, req)
	return rr, called
}

func TestWithCORS_NoOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/version", nil)

	rr, called := executeCORS(corsHandler(defaultCORSConfig()), req)

	assert.True(t, called)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestWithCORS_AllowedOrigin(t *testing.T) {
	// Arrange
	req := httptest.NewRequest(http.MethodGet, "/api/v1/version", nil)
	req.Header.Set("Origin", frontendOrigin)

	// Act
	rr, called := executeCORS(corsHandler(defaultCORSConfig()), req)

	// Assert
	assert.True(t, called)
	assert.Equal(t, frontendOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, strings.Join(rr.Header().Values("Vary"), ","), "Origin")
	assert.Contains(t, rr.Header().Get("Access-Control-Expose-Headers"), "Authorization")
}

func TestWithCORS_DisallowedOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/version", nil)
	req.Header.Set("Origin", "http://evil.example")

	rr, called := executeCORS(corsHandler(defaultCORSConfig()), req)

	assert.True(t, called)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Credentials"))
}

func TestWithCORS_Preflight(t *testing.T) {
	explicit := config.Server{
		AllowedOrigins: []string{frontendOrigin},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Authorization"},
	}

	tests := []struct {
		name           string
		cfg            config.Server
		origin         string
		method         string
		headers        string
		wantOrigin     string
		wantMethods    string
		wantAllowHeads string
	}{
		{
			name:           "wildcards allow any method and header",
			cfg:            defaultCORSConfig(),
			origin:         frontendOrigin,
			method:         http.MethodPut,
			headers:        "Authorization, Content-Type",
			wantOrigin:     frontendOrigin,
			wantMethods:    http.MethodPut,
			wantAllowHeads: "Authorization, Content-Type",
		},
		{
			name:           "explicit lists",
			cfg:            explicit,
			origin:         frontendOrigin,
			method:         http.MethodPost,
			headers:        "Authorization",
			wantOrigin:     frontendOrigin,
			wantMethods:    http.MethodPost,
			wantAllowHeads: "Authorization",
		},
		{
			name:    "method not in list",
			cfg:     explicit,
			origin:  frontendOrigin,
			method:  http.MethodDelete,
			headers: "Authorization",
		},
		{
			name:    "header not in list",
			cfg:     explicit,
			origin:  frontendOrigin,
			method:  http.MethodPost,
			headers: "X-Custom",
		},
		{
			name:    "disallowed origin",
			cfg:     defaultCORSConfig(),
			origin:  "http://evil.example",
			method:  http.MethodPut,
			headers: "Authorization",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			req := httptest.NewRequest(http.MethodOptions, "/api/v1/users/1", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", tt.method)
			req.Header.Set("Access-Control-Request-Headers", tt.headers)

			// Act
			rr, called := executeCORS(corsHandler(tt.cfg), req)

			// Assert
			assert.False(t, called, "preflight must not reach the route")
			assert.Equal(t, http.StatusNoContent, rr.Code)
			assert.Equal(t, tt.wantOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantMethods, rr.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, tt.wantAllowHeads, rr.Header().Get("Access-Control-Allow-Headers"))
		})
	}
}

func TestWithCORS_PlainOptionsIsNotPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/users/", nil)
	req.Header.Set("Origin", frontendOrigin)

	_, called := executeCORS(corsHandler(defaultCORSConfig()), req)

	assert.True(t, called)
}

func TestWithCORS_WildcardOrigin(t *testing.T) {
	tests := []struct {
		name        string
		credentials bool
		wantOrigin  string
		wantCreds   string
	}{
		{name: "without credentials", wantOrigin: "*"},
		{name: "with credentials echoes origin", credentials: true, wantOrigin: "http://anywhere.example", wantCreds: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Origin", "http://anywhere.example")
			cfg := config.Server{AllowedOrigins: []string{"*"}, AllowCredentials: tt.credentials}

			rr, _ := executeCORS(corsHandler(cfg), req)

			assert.Equal(t, tt.wantOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantCreds, rr.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}

func TestWithCORS_NoOriginsConfigured(t *testing.T) {
	// Arrange
	h := corsHandler(config.Server{})
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/users/", nil)
	req.Header.Set("Origin", frontendOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	// Act
	rr, called := executeCORS(h, req)

	// Assert
	assert.Nil(t, h.cors)
	assert.True(t, called)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewCORS_WildcardMethodsExpand(t *testing.T) {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/users/1", nil)
	req.Header.Set("Origin", frontendOrigin)

	rr, called := executeCORS(corsHandler(defaultCORSConfig()), req)

	assert.True(t, called)
	assert.Equal(t, frontendOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestWithCORS_PreflightThroughRouter(t *testing.T) {
	// Arrange
	h, _ := newTestHandler(t, defaultCORSConfig())
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/users/", nil)
	req.Header.Set("Origin", frontendOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()

	// Act
	h.Init().ServeHTTP(rr, req)

	// Assert
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, frontendOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}
