// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-seller-sync/internal/config"
	"github.com/MKhiriev/go-seller-sync/internal/logger"
	"github.com/MKhiriev/go-seller-sync/internal/utils"
	"github.com/MKhiriev/go-seller-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "testhashkey"

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL, hashKey string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, Token: " seller-token "}
	appCfg := config.ClientApp{HashKey: hashKey}

	a, err := NewHTTPServerAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func envelope(resource models.ResourceType) models.SyncResponse {
	return models.SyncResponse{
		Resource:      resource,
		SchemaVersion: 1,
		ServerTs:      1700000000,
		DataToSave:    []any{[]any{1, false, 1699999999}},
		DataToDelete:  []int64{7},
	}
}

// ── SyncData ────────────────────────────────────────────────────────────────

func TestSyncData_Success(t *testing.T) {
	lastUpdate := int64(1699990000)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders/syncdata2", r.URL.Path)
		assert.Equal(t, "Bearer seller-token", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []any{float64(3), float64(7)}, body["ids"])
		assert.Equal(t, float64(lastUpdate), body["last_update_ts"])
		assert.NotContains(t, body, "fields")

		_, _ = utils.WriteSignedJSON(w, envelope(models.ResourceOrders), http.StatusOK, testHashKey)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, testHashKey)
	got, err := a.SyncData(context.Background(), models.SyncRequest{
		Resource:     models.ResourceOrders,
		IDsInDB:      []int64{3, 7},
		LastUpdateTs: &lastUpdate,
	})

	require.NoError(t, err)
	assert.Equal(t, models.ResourceOrders, got.Resource)
	assert.Equal(t, int64(1700000000), got.ServerTs)
	assert.Equal(t, []int64{7}, got.DataToDelete)
	require.Len(t, got.DataToSave, 1)
	assert.Equal(t, []any{json.Number("1"), false, json.Number("1699999999")}, got.DataToSave[0])
}

func TestSyncData_NilIDsAreSentAsEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"ids":[],"last_update_ts":null}`, string(raw))

		_, _ = utils.WriteJSON(w, envelope(models.ResourceOrderItems), http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.SyncData(context.Background(), models.SyncRequest{Resource: models.ResourceOrderItems})

	require.NoError(t, err)
}

func TestSyncData_GzipResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Accept-Encoding"), "gzip")

		raw, err := json.Marshal(envelope(models.ResourceProducts))
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Set(utils.HashHeader, utils.HashString(raw, testHashKey))
		gz := gzip.NewWriter(w)
		_, _ = gz.Write(raw)
		_ = gz.Close()
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, testHashKey)
	got, err := a.SyncData(context.Background(), models.SyncRequest{Resource: models.ResourceProducts, IDsInDB: []int64{}})

	require.NoError(t, err)
	assert.Equal(t, 1, got.CountToSave())
}

func TestSyncData_Errors(t *testing.T) {
	tests := []struct {
		name    string
		hashKey string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name:    "bad request",
			handler: func(w http.ResponseWriter, r *http.Request) { http.Error(w, "invalid data provided", http.StatusBadRequest) },
			wantErr: ErrBadRequest,
		},
		{
			name:    "unauthorized",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusUnauthorized) },
			wantErr: ErrUnauthorized,
		},
		{
			name:    "api disabled",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusForbidden) },
			wantErr: ErrForbidden,
		},
		{
			name:    "unknown resource",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNotFound) },
			wantErr: ErrNotFound,
		},
		{
			name:    "internal error",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) },
			wantErr: ErrInternalServerError,
		},
		{
			name:    "database unavailable",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusServiceUnavailable) },
			wantErr: ErrServiceUnavailable,
		},
		{
			name:    "missing signature",
			hashKey: testHashKey,
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = utils.WriteJSON(w, envelope(models.ResourceOrders), http.StatusOK)
			},
			wantErr: ErrHashMismatch,
		},
		{
			name:    "wrong signature",
			hashKey: testHashKey,
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = utils.WriteSignedJSON(w, envelope(models.ResourceOrders), http.StatusOK, "another-key")
			},
			wantErr: ErrHashMismatch,
		},
		{
			name: "counts disagree with data",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"resource":"orders","schema_version":1,"server_ts":1,` +
					`"count_to_save":2,"count_to_delete":0,"data_to_save":[[1]],"data_to_delete":[]}`))
			},
			wantErr: models.ErrCountMismatch,
		},
		{
			name: "not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>`))
			},
			wantErr: ErrDecodingResponse,
		},
		{
			name: "another resource",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = utils.WriteJSON(w, envelope(models.ResourceInvoices), http.StatusOK)
			},
			wantErr: ErrUnexpectedResource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, tt.hashKey)
			_, err := a.SyncData(context.Background(), models.SyncRequest{Resource: models.ResourceOrders, IDsInDB: []int64{}})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── GetSchemas / GetAppVersion ──────────────────────────────────────────────

func TestGetSchemas_Success(t *testing.T) {
	schemas := []models.Schema{{Resource: models.ResourceOrderItems, Version: 1, Fields: []string{"product_id", "quantity"}}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/sync/schemas", r.URL.Path)
		_, _ = utils.WriteSignedJSON(w, schemas, http.StatusOK, testHashKey)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, testHashKey)
	got, err := a.GetSchemas(context.Background())

	require.NoError(t, err)
	assert.Equal(t, schemas, got)
}

func TestGetAppVersion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.4.0\n"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	got, err := a.GetAppVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.4.0", got)
}

func TestGetAppVersion_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.GetAppVersion(context.Background())

	assert.ErrorIs(t, err, ErrForbidden)
}

// ── Token ───────────────────────────────────────────────────────────────────

func TestSetToken_TrimsWhitespace(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1", "")
	assert.Equal(t, "seller-token", a.Token())

	a.SetToken("  other  ")
	assert.Equal(t, "other", a.Token())
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "http://localhost:8080/", want: "http://localhost:8080"},
		{name: "no scheme", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "https kept", raw: "https://sync.example.com", want: "https://sync.example.com"},
		{name: "whitespace", raw: "  http://host:1  ", want: "http://host:1"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
