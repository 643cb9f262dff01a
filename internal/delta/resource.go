package delta

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-seller-sync/internal/logger"
	"github.com/MKhiriev/go-seller-sync/internal/utils"
	"github.com/MKhiriev/go-seller-sync/models"
)

// Source returns the current non-deleted items owned by sellerID.
type Source[T any] func(ctx context.Context, sellerID int64) ([]T, error)

// Transform rewrites the upsert list before encoding. It may only enrich
// items; the ids and their order must stay the same.
type Transform[T any] func(ctx context.Context, sellerID int64, items []T) ([]T, error)

// Syncer is the type-erased view of a [Resource] used by registries.
type Syncer interface {
	Schema() models.Schema
	Sync(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error)
}

// Resource binds a source, an optional enrichment step and an encoder to
// the reconciliation flow.
type Resource[T Syncable] struct {
	schema         models.Schema
	source         Source[T]
	beforeCompress Transform[T]
	encode         Encoder[T]
	now            func() time.Time
}

// Option configures a [Resource].
type Option[T Syncable] func(*Resource[T])

// WithBeforeCompress installs an enrichment step run on the upsert list.
func WithBeforeCompress[T Syncable](fn Transform[T]) Option[T] {
	return func(r *Resource[T]) {
		r.beforeCompress = fn
	}
}

// WithClock replaces time.Now as the source of the server timestamp.
func WithClock[T Syncable](now func() time.Time) Option[T] {
	return func(r *Resource[T]) {
		r.now = now
	}
}

// NewResource builds a Resource for schema.
func NewResource[T Syncable](schema models.Schema, source Source[T], encode Encoder[T], opts ...Option[T]) *Resource[T] {
	r := &Resource[T]{
		schema: schema,
		source: source,
		encode: encode,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Schema implements [Syncer].
func (r *Resource[T]) Schema() models.Schema {
	return r.schema
}

// Sync implements [Syncer]. It fetches the owned items, reconciles them
// against the request, enriches and encodes the upserts and returns the
// envelope. Any failure aborts the call without a partial result.
//
// ServerTs is read before the fetch so that a mutation racing with this call
// is picked up again by the next one.
func (r *Resource[T]) Sync(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	log := logger.FromContext(ctx)

	serverTs := utils.TimeToTimestamp(r.now())

	items, err := r.source(ctx, req.SellerID)
	if err != nil {
		log.Err(err).Str("func", "*Resource.Sync").Str("resource", string(r.schema.Resource)).Msg("source failed")
		return models.SyncResponse{}, fmt.Errorf("%w: %s: %w", ErrSourceFailed, r.schema.Resource, err)
	}

	result := Reconcile(req.IDsInDB, utils.TimestampPtrToTime(req.LastUpdateTs), items)

	upsert := result.ToUpsert
	if r.beforeCompress != nil && len(upsert) > 0 {
		enriched, err := r.beforeCompress(ctx, req.SellerID, upsert)
		if err != nil {
			log.Err(err).Str("func", "*Resource.Sync").Str("resource", string(r.schema.Resource)).Msg("enrichment failed")
			return models.SyncResponse{}, fmt.Errorf("%w: %s: %w", ErrBeforeCompressFailed, r.schema.Resource, err)
		}
		if err = sameIDs(upsert, enriched); err != nil {
			return models.SyncResponse{}, fmt.Errorf("%s: %w", r.schema.Resource, err)
		}
		upsert = enriched
	}

	records, err := EncodeAll(r.schema, r.encode, upsert)
	if err != nil {
		log.Err(err).Str("func", "*Resource.Sync").Str("resource", string(r.schema.Resource)).Msg("encoding failed")
		return models.SyncResponse{}, err
	}

	if fields := req.FieldList(); len(fields) > 0 {
		if records, err = Project(r.schema, records, fields); err != nil {
			return models.SyncResponse{}, err
		}
	}

	log.Debug().
		Str("resource", string(r.schema.Resource)).
		Int64("seller_id", req.SellerID).
		Int("owned", len(items)).
		Int("to_save", len(records)).
		Int("to_delete", len(result.ToDelete)).
		Msg("sync computed")

	return NewSyncResponse(r.schema, serverTs, records, result.ToDelete), nil
}

func sameIDs[T Syncable](before, after []T) error {
	if len(before) != len(after) {
		return fmt.Errorf("%w: %d items became %d", ErrBeforeCompressChangedItems, len(before), len(after))
	}
	for i := range before {
		if before[i].GetID() != after[i].GetID() {
			return fmt.Errorf("%w: position %d id %d became %d",
				ErrBeforeCompressChangedItems, i, before[i].GetID(), after[i].GetID())
		}
	}
	return nil
}
