package service

import (
	"fmt"

	"github.com/MKhiriev/go-seller-sync/internal/config"
	"github.com/MKhiriev/go-seller-sync/internal/logger"
	"github.com/MKhiriev/go-seller-sync/internal/store"
)

type Services struct {
	AuthService    AuthService
	SyncService    SyncService
	AppInfoService AppInfoService
	HealthService  HealthService
}

// NewServices wires the server services. The sync registry is decorated
// with validation first and logging outermost.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	syncService := NewSyncService(storages, logger)
	syncService = NewSyncValidationService().Wrap(syncService)
	syncService = NewSyncLoggingService().Wrap(syncService)

	return &Services{
		AuthService:    NewAuthService(cfg.App, logger),
		SyncService:    syncService,
		AppInfoService: appInfo,
		HealthService:  NewHealthService(storages.HealthChecker),
	}, nil
}
