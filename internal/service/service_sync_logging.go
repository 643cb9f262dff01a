package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-seller-sync/internal/logger"
	"github.com/MKhiriev/go-seller-sync/models"
)

// SyncLoggingService logs the outcome and duration of every sync call.
type SyncLoggingService struct {
	inner SyncService
}

func NewSyncLoggingService() SyncServiceWrapper {
	return &SyncLoggingService{}
}

func (l *SyncLoggingService) Sync(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	resp, err := l.inner.Sync(ctx, req)
	if err != nil {
		log.Err(err).
			Str("func", "*SyncLoggingService.Sync").
			Str("resource", string(req.Resource)).
			Int64("seller_id", req.SellerID).
			Dur("duration", time.Since(start)).
			Msg("sync failed")
		return resp, err
	}

	log.Info().
		Str("resource", string(req.Resource)).
		Int64("seller_id", req.SellerID).
		Int("ids_in_db", len(req.IDsInDB)).
		Bool("full", req.LastUpdateTs == nil).
		Int("count_to_save", resp.CountToSave()).
		Int("count_to_delete", resp.CountToDelete()).
		Dur("duration", time.Since(start)).
		Msg("sync served")

	return resp, nil
}

func (l *SyncLoggingService) Schemas(ctx context.Context) []models.Schema {
	return l.inner.Schemas(ctx)
}

func (l *SyncLoggingService) Wrap(wrapped SyncService) SyncService {
	l.inner = wrapped
	return l
}
