// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-seller-sync/internal/delta"
	"github.com/MKhiriev/go-seller-sync/internal/logger"
	"github.com/MKhiriev/go-seller-sync/internal/store"
	"github.com/MKhiriev/go-seller-sync/models"
)

// syncService is the resource registry. It routes every call to the
// delta.Syncer registered for the requested resource.
type syncService struct {
	resources map[models.ResourceType]delta.Syncer
	order     []models.ResourceType

	logger *logger.Logger
}

// NewSyncService registers an adapter for every resource in
// models.AllResources, backed by the repositories in storages.
func NewSyncService(storages *store.Storages, logger *logger.Logger) SyncService {
	return NewSyncServiceWithResources(logger,
		NewProductsResource(storages.ProductRepository),
		NewCustomersResource(storages.CustomerRepository),
		NewAddressesResource(storages.AddressRepository),
		NewOrdersResource(storages.OrderRepository, storages.CustomerRepository),
		NewOrderItemsResource(storages.OrderItemRepository),
		NewInvoicesResource(storages.InvoiceRepository),
		NewSellerStatisticsResource(storages.SellerStatisticsRepository),
	)
}

// NewSyncServiceWithResources builds a registry from explicit syncers.
// A later syncer for the same resource replaces an earlier one.
func NewSyncServiceWithResources(logger *logger.Logger, syncers ...delta.Syncer) SyncService {
	s := &syncService{
		resources: make(map[models.ResourceType]delta.Syncer, len(syncers)),
		logger:    logger,
	}
	for _, syncer := range syncers {
		resource := syncer.Schema().Resource
		if _, ok := s.resources[resource]; !ok {
			s.order = append(s.order, resource)
		}
		s.resources[resource] = syncer
	}

	return s
}

// Sync implements SyncService.
func (s *syncService) Sync(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	syncer, ok := s.resources[req.Resource]
	if !ok {
		return models.SyncResponse{}, fmt.Errorf("%w: %q", ErrUnknownResource, req.Resource)
	}

	resp, err := syncer.Sync(ctx, req)
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrSyncFailed, err)
	}

	return resp, nil
}

// Schemas implements SyncService.
func (s *syncService) Schemas(ctx context.Context) []models.Schema {
	schemas := make([]models.Schema, 0, len(s.order))
	for _, resource := range s.order {
		schemas = append(schemas, s.resources[resource].Schema())
	}
	return schemas
}
