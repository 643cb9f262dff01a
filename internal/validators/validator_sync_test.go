package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-seller-sync/models"
)

func ptr[T any](v T) *T { return &v }

func validRequest() models.SyncRequest {
	return models.SyncRequest{
		SellerID:     7,
		Resource:     models.ResourceOrders,
		IDsInDB:      []int64{1, 2, 3},
		LastUpdateTs: ptr(int64(1700000000)),
	}
}

func TestSyncRequestValidator_Validate(t *testing.T) {
	v := NewSyncRequestValidator()

	tests := []struct {
		name    string
		mutate  func(r *models.SyncRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(r *models.SyncRequest) {}},
		{name: "empty ids are fine", mutate: func(r *models.SyncRequest) { r.IDsInDB = []int64{} }},
		{name: "null timestamp is fine", mutate: func(r *models.SyncRequest) { r.LastUpdateTs = nil }},
		{name: "zero timestamp is fine", mutate: func(r *models.SyncRequest) { r.LastUpdateTs = ptr(int64(0)) }},
		{name: "missing ids are fine", mutate: func(r *models.SyncRequest) { r.IDsInDB = nil }},
		{
			name:    "zero id",
			mutate:  func(r *models.SyncRequest) { r.IDsInDB = []int64{4, 0} },
			wantErr: ErrInvalidIDs,
		},
		{
			name:    "negative id",
			mutate:  func(r *models.SyncRequest) { r.IDsInDB = []int64{-3} },
			wantErr: ErrInvalidIDs,
		},
		{
			name:    "negative timestamp",
			mutate:  func(r *models.SyncRequest) { r.LastUpdateTs = ptr(int64(-1)) },
			wantErr: ErrInvalidLastUpdateTs,
		},
		{
			name:    "no seller",
			mutate:  func(r *models.SyncRequest) { r.SellerID = 0 },
			wantErr: ErrInvalidSellerID,
		},
		{
			name:    "no resource",
			mutate:  func(r *models.SyncRequest) { r.Resource = "" },
			wantErr: ErrInvalidResource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSyncRequestValidator_ElementErrorKeepsSentinel(t *testing.T) {
	v := NewSyncRequestValidator()

	req := validRequest()
	req.IDsInDB = []int64{1, 2, -7}

	err := v.Validate(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidIDs)
	assert.Contains(t, err.Error(), "ids[2]")
	assert.Contains(t, err.Error(), `"gt"`)
}

func TestSyncRequestValidator_PointerAndFields(t *testing.T) {
	v := NewSyncRequestValidator()

	req := validRequest()
	req.SellerID = 0

	// scoped to body fields, the missing seller is not checked
	require.NoError(t, v.Validate(context.Background(), &req, FieldIDs, FieldLastUpdateTs))
	assert.ErrorIs(t, v.Validate(context.Background(), &req, FieldSellerID), ErrInvalidSellerID)
}

func TestSyncRequestValidator_Errors(t *testing.T) {
	v := NewSyncRequestValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "not a request"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.SyncRequest)(nil)), ErrUnsupportedType)

	req := validRequest()
	assert.ErrorIs(t, v.Validate(context.Background(), req, "colour"), ErrUnknownField)
}
