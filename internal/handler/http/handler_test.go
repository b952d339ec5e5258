// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-ctf-backend/internal/config"
	"github.com/MKhiriev/go-ctf-backend/internal/logger"
	"github.com/MKhiriev/go-ctf-backend/internal/mock"
	"github.com/MKhiriev/go-ctf-backend/internal/service"
	"github.com/MKhiriev/go-ctf-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	userToken  = "user-token"
	adminToken = "admin-token"
)

var (
	testCreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	alice = models.Account{
		ID:           1,
		Username:     "alice",
		Email:        "alice@x.com",
		PasswordHash: "$2a$10$alicehash",
		IsActive:     true,
		Role:         models.RoleUser,
		CreatedAt:    testCreatedAt,
	}

	root = models.Account{
		ID:           2,
		Username:     "root",
		Email:        "root@x.com",
		PasswordHash: "$2a$10$roothash",
		IsActive:     true,
		Role:         models.RoleAdmin,
		CreatedAt:    testCreatedAt,
	}
)

type testDeps struct {
	accounts *mock.MockAccountService
	auth     *mock.MockAuthService
	appInfo  *mock.MockAppInfoService
}

// expectCaller makes the auth middleware resolve token to account.
func (d testDeps) expectCaller(token string, account models.Account) {
	d.auth.EXPECT().Authorize(gomock.Any(), token).Return(account, nil)
}

func newTestHandler(t *testing.T, cfg config.Server) (*Handler, testDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := testDeps{
		accounts: mock.NewMockAccountService(ctrl),
		auth:     mock.NewMockAuthService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{
		AccountService: deps.accounts,
		AuthService:    deps.auth,
		AppInfoService: deps.appInfo,
	}

	return NewHandler(services, cfg, logger.Nop()), deps
}

// serve runs one request through the full router.
func serve(h *Handler, method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

func assertDetail(t *testing.T, rr *httptest.ResponseRecorder, status int, detail string) {
	t.Helper()

	assert.Equal(t, status, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, detail, decodeBody[models.ErrorResponse](t, rr).Detail)
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	cfg := config.Server{RequestTimeout: time.Second}

	h := NewHandler(svc, cfg, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, cfg, h.cfg)
	assert.NotNil(t, h.traceIDs)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, config.Server{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, config.Server{}, logger.Nop())

	assert.NotSame(t, h1, h2)
}

func TestInit_ReturnsUsableRouter(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Server{}, logger.Nop())

	router := h.Init()
	require.NotNil(t, router)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
