// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-ctf-backend/internal/logger"
	"github.com/MKhiriev/go-ctf-backend/internal/utils"
	"github.com/MKhiriev/go-ctf-backend/models"
	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL = "http://localhost:8000"
	defaultTimeout = 15 * time.Second

	apiPrefix = "/api/v1"
)

// Config configures the REST client.
type Config struct {
	// BaseURL is the server root, e.g. http://localhost:8000. A missing
	// scheme defaults to http.
	BaseURL string

	Timeout time.Duration
}

type httpAccountsAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAccountsAdapter normalises cfg.BaseURL and builds a resty-backed
// [AccountsAdapter]. An empty base URL falls back to http://localhost:8000.
func NewHTTPAccountsAdapter(cfg Config, logger *logger.Logger) (AccountsAdapter, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL + apiPrefix).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &httpAccountsAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAccountsAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAccountsAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAccountsAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpAccountsAdapter) Register(ctx context.Context, create models.AccountCreate) (models.AccountResponse, error) {
	var created models.AccountResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(create).
		SetResult(&created).
		Post("/users/")
	if err != nil {
		return models.AccountResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccountResponse{}, err
	}

	return created, nil
}

// Login stores the token from the response body, falling back to the
// Authorization response header.
func (h *httpAccountsAdapter) Login(ctx context.Context, login models.AccountLogin) (models.AccountResponse, error) {
	var account models.AccountResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(login).
		SetResult(&account).
		Post("/login/access-token")
	if err != nil {
		return models.AccountResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccountResponse{}, err
	}

	token := account.AuthorizedAccount.Token
	if token == "" {
		token, err = utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.AccountResponse{}, fmt.Errorf("login parse bearer token: %w", err)
		}
	}

	h.SetToken(token)
	h.logger.Debug().Int64("id", account.ID).Msg("logged in")
	return account, nil
}

func (h *httpAccountsAdapter) Me(ctx context.Context) (models.AccountResponse, error) {
	return h.getAccount(ctx, "/users/me")
}

func (h *httpAccountsAdapter) List(ctx context.Context) ([]models.AccountResponse, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var accounts []models.AccountResponse
	resp, err := req.SetResult(&accounts).Get("/users/")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return accounts, nil
}

func (h *httpAccountsAdapter) Get(ctx context.Context, id int64) (models.AccountResponse, error) {
	return h.getAccount(ctx, accountPath(id))
}

func (h *httpAccountsAdapter) Update(ctx context.Context, id int64, update models.AccountUpdate) (models.AccountResponse, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.AccountResponse{}, err
	}

	var updated models.AccountResponse
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(updateBody(update)).
		SetResult(&updated).
		Put(accountPath(id))
	if err != nil {
		return models.AccountResponse{}, fmt.Errorf("update request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccountResponse{}, err
	}

	return updated, nil
}

func (h *httpAccountsAdapter) Delete(ctx context.Context, id int64) (string, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return "", err
	}

	var msg models.MessageResponse
	resp, err := req.SetResult(&msg).Delete(accountPath(id))
	if err != nil {
		return "", fmt.Errorf("delete request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return msg.Message, nil
}

func (h *httpAccountsAdapter) getAccount(ctx context.Context, path string) (models.AccountResponse, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.AccountResponse{}, err
	}

	var account models.AccountResponse
	resp, err := req.SetResult(&account).Get(path)
	if err != nil {
		return models.AccountResponse{}, fmt.Errorf("get account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccountResponse{}, err
	}

	return account, nil
}

func (h *httpAccountsAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrMissingToken
	}
	return h.client.R().SetContext(ctx).SetAuthToken(token), nil
}

func accountPath(id int64) string {
	return "/users/" + strconv.FormatInt(id, 10)
}

// updateBody keeps only present fields. Absent fields must not be sent as
// null, the server would read them as explicit clears.
func updateBody(update models.AccountUpdate) map[string]any {
	body := make(map[string]any)
	addOptional(body, "username", update.Username)
	addOptional(body, "email", update.Email)
	addOptional(body, "password", update.Password)
	addOptional(body, "role", update.Role)
	addOptional(body, "isActive", update.IsActive)
	return body
}

func addOptional[T any](body map[string]any, key string, v models.Optional[T]) {
	if !v.Set {
		return
	}
	if v.Null {
		body[key] = nil
		return
	}
	body[key] = v.Value
}
