package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-seller-sync/internal/config"
	"github.com/MKhiriev/go-seller-sync/internal/logger"
	"github.com/MKhiriev/go-seller-sync/internal/utils"
	"github.com/MKhiriev/go-seller-sync/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	hashKey string
	token   string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL and request
// timeout, and stores the bearer token and the response signing key.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	a := &httpServerAdapter{client: client, hashKey: appCfg.HashKey, logger: logger}
	a.SetToken(adapterCfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// SyncData implements [ServerAdapter]. It POSTs the request body to
// POST /api/{resource}/syncdata2. A nil id list is sent as [] because the
// server treats a missing list as a malformed request.
func (h *httpServerAdapter) SyncData(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	if req.IDsInDB == nil {
		req.IDsInDB = []int64{}
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("resource", string(req.Resource)).
		SetBody(req).
		Post("/api/{resource}/syncdata2")
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("sync %s request: %w", req.Resource, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncResponse{}, err
	}
	if err = h.verify(resp); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*httpServerAdapter.SyncData").
			Str("resource", string(req.Resource)).
			Msg("rejected unsigned or tampered response")
		return models.SyncResponse{}, err
	}

	var sr models.SyncResponse
	if err = json.Unmarshal(resp.Body(), &sr); err != nil {
		return models.SyncResponse{}, fmt.Errorf("%w: %s: %w", ErrDecodingResponse, req.Resource, err)
	}
	if sr.Resource != req.Resource {
		return models.SyncResponse{}, fmt.Errorf("%w: asked %q, got %q", ErrUnexpectedResource, req.Resource, sr.Resource)
	}

	return sr, nil
}

// GetSchemas implements [ServerAdapter]. It GETs /api/sync/schemas.
func (h *httpServerAdapter) GetSchemas(ctx context.Context) ([]models.Schema, error) {
	resp, err := h.authedRequest(ctx).Get("/api/sync/schemas")
	if err != nil {
		return nil, fmt.Errorf("get schemas request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if err = h.verify(resp); err != nil {
		return nil, err
	}

	var schemas []models.Schema
	if err = json.Unmarshal(resp.Body(), &schemas); err != nil {
		return nil, fmt.Errorf("%w: schemas: %w", ErrDecodingResponse, err)
	}

	return schemas, nil
}

// GetAppVersion implements [ServerAdapter]. It GETs /api/version, which
// answers in plain text.
func (h *httpServerAdapter) GetAppVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("get version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// verify checks the HashSHA256 header of resp. Without a configured key
// every response is accepted.
func (h *httpServerAdapter) verify(resp *resty.Response) error {
	if h.hashKey == "" {
		return nil
	}

	got := resp.Header().Get(utils.HashHeader)
	if got == "" {
		return fmt.Errorf("%w: missing %s header", ErrHashMismatch, utils.HashHeader)
	}
	if !utils.VerifyHash(resp.Body(), got, h.hashKey) {
		return ErrHashMismatch
	}

	return nil
}
