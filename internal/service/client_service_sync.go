// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-seller-sync/internal/adapter"
	"github.com/MKhiriev/go-seller-sync/internal/logger"
	"github.com/MKhiriev/go-seller-sync/internal/store"
	"github.com/MKhiriev/go-seller-sync/models"
)

// idField is the schema field the mirror keys its rows by.
const idField = "id"

type clientSyncService struct {
	repository store.LocalSyncRepository
	adapter    adapter.ServerAdapter
	resources  []models.ResourceType

	mu      sync.RWMutex
	schemas map[models.ResourceType]models.Schema

	logger *logger.Logger
}

// NewClientSyncService builds the mirroring service. resources lists what
// SyncAll pulls; empty means every resource in pull order.
func NewClientSyncService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, resources []models.ResourceType, logger *logger.Logger) ClientSyncService {
	if len(resources) == 0 {
		resources = models.AllResources()
	}

	return &clientSyncService{
		repository: storages.SyncRepository,
		adapter:    serverAdapter,
		resources:  resources,
		logger:     logger,
	}
}

// SyncResource implements ClientSyncService.
//
// Resources whose schema has no id field cannot be diffed by the server, so
// they are requested in full and replace the mirrored rows.
func (s *clientSyncService) SyncResource(ctx context.Context, resource models.ResourceType) error {
	log := logger.FromContext(ctx)

	schema, err := s.schema(ctx, resource, false)
	if err != nil {
		return err
	}

	req, replaceAll, err := s.buildRequest(ctx, schema)
	if err != nil {
		return err
	}

	resp, err := s.adapter.SyncData(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*clientSyncService.SyncResource").Str("resource", string(resource)).Msg("sync request failed")
		return fmt.Errorf("sync %s: %w", resource, err)
	}

	if resp.SchemaVersion != schema.Version {
		if schema, err = s.schema(ctx, resource, true); err != nil {
			return err
		}
		if resp.SchemaVersion != schema.Version {
			return fmt.Errorf("%w: %s response v%d, published v%d",
				ErrSchemaVersionMismatch, resource, resp.SchemaVersion, schema.Version)
		}
	}

	records, err := decodeRecords(schema, resp.DataToSave)
	if err != nil {
		return err
	}

	apply := models.LocalApply{
		Resource:   resource,
		Records:    records,
		ToDelete:   resp.DataToDelete,
		ReplaceAll: replaceAll,
		ServerTs:   resp.ServerTs,
	}
	if err = s.repository.ApplySync(ctx, apply); err != nil {
		log.Err(err).Str("func", "*clientSyncService.SyncResource").Str("resource", string(resource)).Msg("failed to apply sync locally")
		return fmt.Errorf("apply %s: %w", resource, err)
	}

	log.Info().
		Str("resource", string(resource)).
		Int("saved", len(records)).
		Int("deleted", len(resp.DataToDelete)).
		Bool("replace_all", replaceAll).
		Int64("server_ts", resp.ServerTs).
		Msg("resource synchronized")

	return nil
}

// SyncAll implements ClientSyncService.
func (s *clientSyncService) SyncAll(ctx context.Context) error {
	var errs []error
	for _, resource := range s.resources {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.SyncResource(ctx, resource); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *clientSyncService) buildRequest(ctx context.Context, schema models.Schema) (models.SyncRequest, bool, error) {
	req := models.SyncRequest{Resource: schema.Resource, IDsInDB: []int64{}}

	if schema.FieldIndex(idField) < 0 {
		return req, true, nil
	}

	ids, err := s.repository.GetRecordIDs(ctx, schema.Resource)
	if err != nil {
		return req, false, fmt.Errorf("read local %s ids: %w", schema.Resource, err)
	}
	if ids != nil {
		req.IDsInDB = ids
	}

	state, err := s.repository.GetSyncState(ctx, schema.Resource)
	switch {
	case errors.Is(err, store.ErrLocalStateNotFound):
	case err != nil:
		return req, false, fmt.Errorf("read local %s state: %w", schema.Resource, err)
	default:
		req.LastUpdateTs = state.LastUpdateTs
	}

	return req, false, nil
}

// schema returns the published layout of resource, fetching the list from
// the server on first use or when refresh is set.
func (s *clientSyncService) schema(ctx context.Context, resource models.ResourceType, refresh bool) (models.Schema, error) {
	if !refresh {
		s.mu.RLock()
		schema, ok := s.schemas[resource]
		s.mu.RUnlock()
		if ok {
			return schema, nil
		}
	}

	published, err := s.adapter.GetSchemas(ctx)
	if err != nil {
		return models.Schema{}, fmt.Errorf("fetch schemas: %w", err)
	}

	byResource := make(map[models.ResourceType]models.Schema, len(published))
	for _, p := range published {
		byResource[p.Resource] = p
	}

	s.mu.Lock()
	s.schemas = byResource
	s.mu.Unlock()

	schema, ok := byResource[resource]
	if !ok {
		return models.Schema{}, fmt.Errorf("%w: %s", ErrSchemaNotPublished, resource)
	}
	return schema, nil
}

// decodeRecords turns positional records into keyed JSON payloads.
func decodeRecords(schema models.Schema, data []any) ([]models.LocalRecord, error) {
	idIndex := schema.FieldIndex(idField)

	records := make([]models.LocalRecord, 0, len(data))
	for i, raw := range data {
		values, ok := raw.([]any)
		if !ok || len(values) != schema.Arity() {
			return nil, fmt.Errorf("%w: %s record #%d", ErrMalformedRecord, schema.Resource, i)
		}

		keyed := make(map[string]any, len(values))
		for j, field := range schema.Fields {
			keyed[field] = values[j]
		}
		payload, err := json.Marshal(keyed)
		if err != nil {
			return nil, fmt.Errorf("%w: %s record #%d: %w", ErrMalformedRecord, schema.Resource, i, err)
		}

		record := models.LocalRecord{Resource: schema.Resource, Payload: payload}
		if idIndex >= 0 {
			id, err := recordID(values[idIndex])
			if err != nil {
				return nil, fmt.Errorf("%w: %s record #%d: %w", ErrMalformedRecord, schema.Resource, i, err)
			}
			record.RecordID = &id
		}
		records = append(records, record)
	}

	return records, nil
}

func recordID(v any) (int64, error) {
	switch id := v.(type) {
	case json.Number:
		return id.Int64()
	case int64:
		return id, nil
	case int:
		return int64(id), nil
	default:
		return 0, fmt.Errorf("id has type %T", v)
	}
}
