package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-seller-sync/internal/logger"
	"github.com/MKhiriev/go-seller-sync/models"
)

type localSyncRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalSyncRepository(db *DB, logger *logger.Logger) LocalSyncRepository {
	return &localSyncRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localSyncRepository) GetRecordIDs(ctx context.Context, resource models.ResourceType) ([]int64, error) {
	ids, err := selectAll(ctx, l.DB, "*localSyncRepository.GetRecordIDs", selectLocalRecordIDs, []any{string(resource)},
		func(row rowScanner) (int64, error) {
			var id int64
			err := row.Scan(&id)
			return id, err
		})
	if err != nil {
		return nil, err
	}

	return ids, nil
}

func (l *localSyncRepository) GetRecords(ctx context.Context, resource models.ResourceType) ([]models.LocalRecord, error) {
	return selectAll(ctx, l.DB, "*localSyncRepository.GetRecords", selectLocalRecords, []any{string(resource)},
		func(row rowScanner) (models.LocalRecord, error) {
			var (
				r        models.LocalRecord
				resource string
				payload  string
			)
			err := row.Scan(&resource, &r.RecordID, &payload)
			r.Resource = models.ResourceType(resource)
			r.Payload = []byte(payload)
			return r, err
		})
}

func (l *localSyncRepository) GetSyncState(ctx context.Context, resource models.ResourceType) (models.LocalSyncState, error) {
	log := logger.FromContext(ctx)

	var (
		state        models.LocalSyncState
		resourceName string
	)
	err := l.DB.QueryRowContext(ctx, selectLocalSyncState, string(resource)).
		Scan(&resourceName, &state.LastUpdateTs, &state.SyncedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalSyncState{}, ErrLocalStateNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*localSyncRepository.GetSyncState").
			Str("resource", string(resource)).
			Msg("failed to read sync state")
		return models.LocalSyncState{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	state.Resource = models.ResourceType(resourceName)

	return state, nil
}

// ApplySync writes records, deletions and the new sync state in a single
// transaction so that a failed sync leaves the mirror untouched.
func (l *localSyncRepository) ApplySync(ctx context.Context, apply models.LocalApply) (err error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*localSyncRepository.ApplySync").
		Str("resource", string(apply.Resource)).
		Logger()

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	now := clock()
	resource := string(apply.Resource)

	if apply.ReplaceAll {
		if _, err = tx.ExecContext(ctx, deleteAllLocalRecords, resource); err != nil {
			log.Err(err).Msg("failed to clear resource")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	for _, rec := range apply.Records {
		if rec.RecordID == nil {
			_, err = tx.ExecContext(ctx, insertLocalRecordWithoutID, resource, string(rec.Payload), now)
		} else {
			_, err = tx.ExecContext(ctx, upsertLocalRecord, resource, *rec.RecordID, string(rec.Payload), now)
		}
		if err != nil {
			log.Err(err).Msg("failed to upsert record")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	for _, id := range apply.ToDelete {
		if _, err = tx.ExecContext(ctx, deleteLocalRecord, resource, id); err != nil {
			log.Err(err).Int64("record_id", id).Msg("failed to delete record")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if _, err = tx.ExecContext(ctx, upsertLocalSyncState, resource, apply.ServerTs, now); err != nil {
		log.Err(err).Msg("failed to store sync state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().
		Int("saved", len(apply.Records)).
		Int("deleted", len(apply.ToDelete)).
		Int64("server_ts", apply.ServerTs).
		Msg("sync applied")

	return nil
}
