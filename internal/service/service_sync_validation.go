package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-seller-sync/internal/delta"
	"github.com/MKhiriev/go-seller-sync/internal/validators"
	"github.com/MKhiriev/go-seller-sync/models"
)

// SyncValidationService rejects malformed requests before they reach the
// registry. It checks the request fields and, when a projection is asked
// for, that every projected field exists in the resource's schema.
type SyncValidationService struct {
	inner     SyncService
	validator validators.Validator
}

func NewSyncValidationService() SyncServiceWrapper {
	return &SyncValidationService{
		validator: validators.NewSyncRequestValidator(),
	}
}

// Sync validates req and forwards it. A missing id list is read as an
// empty one: the client holds nothing, so nothing is deleted.
func (v *SyncValidationService) Sync(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	if req.IDsInDB == nil {
		req.IDsInDB = []int64{}
	}

	if err := v.validator.Validate(ctx, req); err != nil {
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if fields := req.FieldList(); len(fields) > 0 {
		schema, ok := v.schemaOf(ctx, req.Resource)
		if !ok {
			return models.SyncResponse{}, fmt.Errorf("%w: %q", ErrUnknownResource, req.Resource)
		}
		if err := delta.ValidateFields(schema, fields); err != nil {
			return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
	}

	return v.inner.Sync(ctx, req)
}

func (v *SyncValidationService) Schemas(ctx context.Context) []models.Schema {
	return v.inner.Schemas(ctx)
}

func (v *SyncValidationService) Wrap(wrapped SyncService) SyncService {
	v.inner = wrapped
	return v
}

func (v *SyncValidationService) schemaOf(ctx context.Context, resource models.ResourceType) (models.Schema, bool) {
	for _, s := range v.inner.Schemas(ctx) {
		if s.Resource == resource {
			return s, true
		}
	}
	return models.Schema{}, false
}
