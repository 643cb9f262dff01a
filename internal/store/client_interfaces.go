package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-seller-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSyncRepository is the client's mirror of the server resources.
type LocalSyncRepository interface {
	// GetRecordIDs returns the ids held for resource in ascending order.
	GetRecordIDs(ctx context.Context, resource models.ResourceType) ([]int64, error)

	// GetRecords returns every mirrored record of resource.
	GetRecords(ctx context.Context, resource models.ResourceType) ([]models.LocalRecord, error)

	// GetSyncState returns ErrLocalStateNotFound for a resource that was
	// never synchronized.
	GetSyncState(ctx context.Context, resource models.ResourceType) (models.LocalSyncState, error)

	// ApplySync stores one sync response atomically. When ReplaceAll is set
	// the existing rows of the resource are dropped before the upserts.
	ApplySync(ctx context.Context, apply models.LocalApply) error
}

// clock is replaced in tests.
var clock = func() time.Time { return time.Now().UTC() }
