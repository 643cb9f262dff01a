package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-seller-sync/internal/config"
	"github.com/MKhiriev/go-seller-sync/internal/delta"
	"github.com/MKhiriev/go-seller-sync/internal/logger"
	"github.com/MKhiriev/go-seller-sync/internal/mock"
	"github.com/MKhiriev/go-seller-sync/internal/service"
	"github.com/MKhiriev/go-seller-sync/internal/store"
	"github.com/MKhiriev/go-seller-sync/internal/utils"
	"github.com/MKhiriev/go-seller-sync/models"
)

const (
	testHashKey = "response-key"
	validToken  = "valid-token"
	testSeller  = int64(42)
)

type testDeps struct {
	sync    *mock.MockSyncService
	auth    *mock.MockAuthService
	appInfo *mock.MockAppInfoService
}

func newTestHandler(t *testing.T, cfg config.App) (*Handler, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := testDeps{
		sync:    mock.NewMockSyncService(ctrl),
		auth:    mock.NewMockAuthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	deps.auth.EXPECT().ParseToken(gomock.Any(), validToken).
		Return(models.Token{SellerID: testSeller}, nil).AnyTimes()
	deps.auth.EXPECT().ParseToken(gomock.Any(), gomock.Not(validToken)).
		Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid).AnyTimes()

	services := &service.Services{
		SyncService:    deps.sync,
		AuthService:    deps.auth,
		AppInfoService: deps.appInfo,
	}
	return NewHandler(services, cfg, logger.Nop()), deps
}

func enabledAPI() config.App {
	return config.App{EnableAPI: true, HashKey: testHashKey}
}

func serve(h *Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

var ordersSchema = models.Schema{Resource: models.ResourceOrders, Version: 1, Fields: []string{"id", "deleted", "updated_on_ts"}}

func TestNewHandler(t *testing.T) {
	services := &service.Services{}
	h := NewHandler(services, config.App{HashKey: "k", EnableAPI: true}, logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, services, h.services)
	assert.Equal(t, "k", h.hashKey)
	assert.True(t, h.enableAPI)
}

func TestSyncData_Success(t *testing.T) {
	h, deps := newTestHandler(t, enabledAPI())
	last := int64(1700000000)

	want := delta.NewSyncResponse(ordersSchema, 1700000100,
		[]any{[]any{int64(3), false, int64(1700000050)}}, []int64{1})

	deps.sync.EXPECT().Sync(gomock.Any(), models.SyncRequest{
		SellerID:     testSeller,
		Resource:     models.ResourceOrders,
		IDsInDB:      []int64{1, 2},
		LastUpdateTs: &last,
	}).Return(want, nil)

	rr := serve(h, http.MethodPost, "/api/orders/syncdata2", `{"ids":[1,2],"last_update_ts":1700000000}`, bearer(validToken))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
	assert.True(t, utils.VerifyHash(rr.Body.Bytes(), rr.Header().Get(utils.HashHeader), testHashKey))

	assert.JSONEq(t, `{
		"resource":"orders","schema_version":1,"server_ts":1700000100,
		"count_to_save":1,"count_to_delete":1,
		"data_to_save":[[3,false,1700000050]],"data_to_delete":[1]
	}`, rr.Body.String())
}

func TestSyncData_PassesProjection(t *testing.T) {
	h, deps := newTestHandler(t, enabledAPI())

	deps.sync.EXPECT().Sync(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req models.SyncRequest) (models.SyncResponse, error) {
			assert.Nil(t, req.LastUpdateTs)
			assert.Equal(t, []string{"id", "deleted"}, req.FieldList())
			return delta.NewSyncResponse(ordersSchema, 1, nil, nil), nil
		})

	rr := serve(h, http.MethodPost, "/api/orders/syncdata2", `{"ids":[],"last_update_ts":null,"fields":"id, deleted"}`, bearer(validToken))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestSyncData_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t, enabledAPI())

	rr := serve(h, http.MethodPost, "/api/orders/syncdata2", `{"ids":[1,`, bearer(validToken))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSyncData_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", fmt.Errorf("%w: ids", service.ErrInvalidDataProvided), http.StatusBadRequest},
		{"unknown projected field", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, delta.ErrUnknownField), http.StatusBadRequest},
		{"unknown resource", fmt.Errorf("%w: %q", service.ErrUnknownResource, "widgets"), http.StatusNotFound},
		{"database busy", fmt.Errorf("%w: %w: %w", service.ErrSyncFailed, store.ErrTemporarilyUnavailable, store.ErrExecutingQuery), http.StatusServiceUnavailable},
		{"query failed", fmt.Errorf("%w: %w", service.ErrSyncFailed, store.ErrExecutingQuery), http.StatusInternalServerError},
		{"encoder failed", fmt.Errorf("%w: %w", service.ErrSyncFailed, delta.ErrEncoding), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestHandler(t, enabledAPI())
			deps.sync.EXPECT().Sync(gomock.Any(), gomock.Any()).Return(models.SyncResponse{}, tt.err)

			rr := serve(h, http.MethodPost, "/api/widgets/syncdata2", `{"ids":[]}`, bearer(validToken))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Empty(t, rr.Header().Get(utils.HashHeader))
		})
	}
}

func TestSyncData_RequiresSeller(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
	}{
		{"no header", nil},
		{"no token", map[string]string{"Authorization": "Bearer"}},
		{"empty token", map[string]string{"Authorization": "Bearer "}},
		{"rejected token", bearer("forged")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t, enabledAPI())

			rr := serve(h, http.MethodPost, "/api/orders/syncdata2", `{"ids":[]}`, tt.headers)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestSyncData_NoSellerInContext(t *testing.T) {
	h, _ := newTestHandler(t, enabledAPI())

	req := httptest.NewRequest(http.MethodPost, "/api/orders/syncdata2", strings.NewReader(`{"ids":[]}`))
	rr := httptest.NewRecorder()
	h.syncData(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetSchemas(t *testing.T) {
	h, deps := newTestHandler(t, enabledAPI())
	deps.sync.EXPECT().Schemas(gomock.Any()).Return([]models.Schema{ordersSchema})

	rr := serve(h, http.MethodGet, "/api/sync/schemas", "", bearer(validToken))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, utils.VerifyHash(rr.Body.Bytes(), rr.Header().Get(utils.HashHeader), testHashKey))

	var got []models.Schema
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, []models.Schema{ordersSchema}, got)
}

func TestGetSchemas_RequiresAuth(t *testing.T) {
	h, _ := newTestHandler(t, enabledAPI())

	rr := serve(h, http.MethodGet, "/api/sync/schemas", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetServerVersion(t *testing.T) {
	h, deps := newTestHandler(t, enabledAPI())
	deps.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.4.0")

	rr := serve(h, http.MethodGet, "/api/version", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.Equal(t, "1.4.0", rr.Body.String())
}

func TestUnsignedResponsesWithoutHashKey(t *testing.T) {
	h, deps := newTestHandler(t, config.App{EnableAPI: true})
	deps.sync.EXPECT().Schemas(gomock.Any()).Return([]models.Schema{})

	rr := serve(h, http.MethodGet, "/api/sync/schemas", "", bearer(validToken))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get(utils.HashHeader))
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestAPIDisabled(t *testing.T) {
	h, _ := newTestHandler(t, config.App{EnableAPI: false})

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/version"},
		{http.MethodGet, "/api/sync/schemas"},
		{http.MethodPost, "/api/orders/syncdata2"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rr := serve(h, tc.method, tc.path, `{"ids":[]}`, bearer(validToken))
			assert.Equal(t, http.StatusForbidden, rr.Code)
		})
	}
}

func TestRoutes_NotFound(t *testing.T) {
	h, _ := newTestHandler(t, enabledAPI())

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"unknown path", http.MethodGet, "/api/unknown"},
		{"sync without action", http.MethodPost, "/api/orders"},
		{"old sync action", http.MethodPost, "/api/orders/syncdata"},
		{"GET on sync route", http.MethodGet, "/api/orders/syncdata2"},
		{"DELETE on sync route", http.MethodDelete, "/api/orders/syncdata2"},
		{"POST on version", http.MethodPost, "/api/version"},
		{"POST on schemas", http.MethodPost, "/api/sync/schemas"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(h, tt.method, tt.path, "", bearer(validToken))
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestSyncData_GzipRoundTrip(t *testing.T) {
	h, deps := newTestHandler(t, enabledAPI())
	deps.sync.EXPECT().Sync(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req models.SyncRequest) (models.SyncResponse, error) {
			assert.Equal(t, []int64{5}, req.IDsInDB)
			return delta.NewSyncResponse(ordersSchema, 9, nil, []int64{5}), nil
		})

	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	_, err := zw.Write([]byte(`{"ids":[5]}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	headers := bearer(validToken)
	headers["Content-Encoding"] = "gzip"
	headers["Accept-Encoding"] = "gzip"

	rr := serve(h, http.MethodPost, "/api/orders/syncdata2", compressed.String(), headers)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)

	assert.True(t, utils.VerifyHash(body, rr.Header().Get(utils.HashHeader), testHashKey),
		"signature covers the uncompressed body")
	assert.Contains(t, string(body), `"data_to_delete":[5]`)
}

func TestSyncData_InvalidGzipBody(t *testing.T) {
	h, _ := newTestHandler(t, enabledAPI())

	headers := bearer(validToken)
	headers["Content-Encoding"] = "gzip"

	rr := serve(h, http.MethodPost, "/api/orders/syncdata2", "not gzip", headers)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
