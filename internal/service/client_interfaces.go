package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-seller-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSyncService defines the client-side contract for mirroring the
// server's resources into the local store.
type ClientSyncService interface {
	// SyncResource pulls the delta of one resource and applies it to the
	// local mirror in a single transaction. On any failure the mirror and
	// its stored timestamp are left untouched, so the next call retries the
	// same window.
	SyncResource(ctx context.Context, resource models.ResourceType) error

	// SyncAll calls SyncResource for every configured resource in order.
	// A failing resource does not stop the others; all failures are
	// returned joined.
	SyncAll(ctx context.Context) error
}

// ClientSyncJob defines the contract for a background sync worker that
// periodically calls SyncAll.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
