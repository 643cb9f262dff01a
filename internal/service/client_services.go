package service

import (
	"github.com/MKhiriev/go-seller-sync/internal/adapter"
	"github.com/MKhiriev/go-seller-sync/internal/logger"
	"github.com/MKhiriev/go-seller-sync/internal/store"
	"github.com/MKhiriev/go-seller-sync/models"
)

type ClientServices struct {
	SyncService ClientSyncService
	SyncJob     ClientSyncJob
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, resources []string, logger *logger.Logger) *ClientServices {
	types := make([]models.ResourceType, 0, len(resources))
	for _, r := range resources {
		types = append(types, models.ResourceType(r))
	}

	syncSvc := NewClientSyncService(storages, serverAdapter, types, logger)

	return &ClientServices{
		SyncService: syncSvc,
		SyncJob:     NewClientSyncJob(syncSvc),
	}
}
