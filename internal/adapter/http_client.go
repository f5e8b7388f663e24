package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-vault-sync/internal/utils"
	"github.com/MKhiriev/go-vault-sync/models"
)

// HTTPClientConfig configures the HTTP implementation of
// [VaultServerAdapter].
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) VaultServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return "", fmt.Errorf("register request: %w: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return token, nil
}

func (h *httpServerAdapter) Params(ctx context.Context, login string) (models.AuthParamsResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("login", login).
		Get("/api/auth/params")
	if err != nil {
		return models.AuthParamsResponse{}, fmt.Errorf("params request: %w: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthParamsResponse{}, err
	}

	var params models.AuthParamsResponse
	if err = json.Unmarshal(resp.Body(), &params); err != nil {
		return models.AuthParamsResponse{}, fmt.Errorf("decode params response: %w", err)
	}

	return params, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return token, nil
}

func (h *httpServerAdapter) GetStatus(ctx context.Context) (models.VaultStatusResponse, error) {
	resp, err := h.authedRequest(ctx).Get("/api/vault/status")
	if err != nil {
		return models.VaultStatusResponse{}, fmt.Errorf("status request: %w: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultStatusResponse{}, err
	}

	var status models.VaultStatusResponse
	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		return models.VaultStatusResponse{}, fmt.Errorf("decode status response: %w", err)
	}

	return status, nil
}

func (h *httpServerAdapter) GetVault(ctx context.Context) (models.VaultGetResponse, error) {
	resp, err := h.authedRequest(ctx).Get("/api/vault")
	if err != nil {
		return models.VaultGetResponse{}, fmt.Errorf("vault download request: %w: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultGetResponse{}, err
	}

	var vault models.VaultGetResponse
	if err = json.Unmarshal(resp.Body(), &vault); err != nil {
		return models.VaultGetResponse{}, fmt.Errorf("decode vault response: %w", err)
	}

	return vault, nil
}

func (h *httpServerAdapter) PostVault(ctx context.Context, req models.VaultUploadRequest) (models.VaultUploadResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/vault")
	if err != nil {
		return models.VaultUploadResponse{}, fmt.Errorf("vault upload request: %w: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultUploadResponse{}, err
	}

	var upload models.VaultUploadResponse
	if err = json.Unmarshal(resp.Body(), &upload); err != nil {
		return models.VaultUploadResponse{}, fmt.Errorf("decode upload response: %w", err)
	}

	return upload, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
