package service

import (
	"context"

	"github.com/MKhiriev/go-seller-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService answers delta-sync calls for every registered resource.
type SyncService interface {
	// Sync runs one reconciliation for req.Resource on behalf of
	// req.SellerID. An unregistered resource yields ErrUnknownResource.
	Sync(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error)

	// Schemas lists the record layouts of the registered resources in
	// pull order.
	Schemas(ctx context.Context) []models.Schema
}

type AuthService interface {
	CreateToken(ctx context.Context, sellerID int64) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService reports whether the platform database answers.
type HealthService interface {
	Ping(ctx context.Context) error
}

// SyncServiceWrapper defines middleware composition for SyncService.
// Implementations wrap an existing SyncService to add behavior such as
// logging or validating.
type SyncServiceWrapper interface {
	Wrap(SyncService) SyncService // returns a decorated SyncService applying additional behavior
}
