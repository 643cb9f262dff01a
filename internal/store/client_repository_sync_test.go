package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-seller-sync/internal/config"
	"github.com/MKhiriev/go-seller-sync/internal/logger"
	"github.com/MKhiriev/go-seller-sync/migrations"
	"github.com/MKhiriev/go-seller-sync/models"
)

func newTestLocalRepo(t *testing.T) *localSyncRepository {
	t.Helper()

	conn, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	db := &DB{DB: conn, logger: logger.Nop(), migrate: migrations.MigrateSQLite}
	require.NoError(t, db.Migrate())

	fixed := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	prev := clock
	clock = func() time.Time { return fixed }
	t.Cleanup(func() { clock = prev })

	return NewLocalSyncRepository(db, logger.Nop()).(*localSyncRepository)
}

func int64Ptr(v int64) *int64 { return &v }

func TestLocalSyncRepository_EmptyMirror(t *testing.T) {
	repo := newTestLocalRepo(t)
	ctx := context.Background()

	ids, err := repo.GetRecordIDs(ctx, models.ResourceCustomers)
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = repo.GetSyncState(ctx, models.ResourceCustomers)
	assert.ErrorIs(t, err, ErrLocalStateNotFound)
}

func TestLocalSyncRepository_ApplySync_UpsertsAndDeletes(t *testing.T) {
	repo := newTestLocalRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.ApplySync(ctx, models.LocalApply{
		Resource: models.ResourceCustomers,
		Records: []models.LocalRecord{
			{Resource: models.ResourceCustomers, RecordID: int64Ptr(3), Payload: []byte(`{"id":3}`)},
			{Resource: models.ResourceCustomers, RecordID: int64Ptr(1), Payload: []byte(`{"id":1}`)},
		},
		ServerTs: 100,
	}))

	require.NoError(t, repo.ApplySync(ctx, models.LocalApply{
		Resource: models.ResourceCustomers,
		Records: []models.LocalRecord{
			{Resource: models.ResourceCustomers, RecordID: int64Ptr(3), Payload: []byte(`{"id":3,"v":2}`)},
		},
		ToDelete: []int64{1, 99},
		ServerTs: 200,
	}))

	ids, err := repo.GetRecordIDs(ctx, models.ResourceCustomers)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, ids)

	records, err := repo.GetRecords(ctx, models.ResourceCustomers)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.JSONEq(t, `{"id":3,"v":2}`, string(records[0].Payload))
	assert.Equal(t, models.ResourceCustomers, records[0].Resource)

	state, err := repo.GetSyncState(ctx, models.ResourceCustomers)
	require.NoError(t, err)
	require.NotNil(t, state.LastUpdateTs)
	assert.Equal(t, int64(200), *state.LastUpdateTs)
	assert.Equal(t, models.ResourceCustomers, state.Resource)
	assert.True(t, state.SyncedAt.Equal(clock()))
}

func TestLocalSyncRepository_ApplySync_ResourcesAreIsolated(t *testing.T) {
	repo := newTestLocalRepo(t)
	ctx := context.Background()

	for _, resource := range []models.ResourceType{models.ResourceCustomers, models.ResourceAddresses} {
		require.NoError(t, repo.ApplySync(ctx, models.LocalApply{
			Resource: resource,
			Records:  []models.LocalRecord{{Resource: resource, RecordID: int64Ptr(1), Payload: []byte(`{}`)}},
			ServerTs: 1,
		}))
	}

	require.NoError(t, repo.ApplySync(ctx, models.LocalApply{
		Resource: models.ResourceCustomers,
		ToDelete: []int64{1},
		ServerTs: 2,
	}))

	ids, err := repo.GetRecordIDs(ctx, models.ResourceAddresses)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids)
}

func TestLocalSyncRepository_ApplySync_ReplaceAll(t *testing.T) {
	repo := newTestLocalRepo(t)
	ctx := context.Background()

	first := models.LocalApply{
		Resource:   models.ResourceOrderItems,
		ReplaceAll: true,
		Records: []models.LocalRecord{
			{Resource: models.ResourceOrderItems, Payload: []byte(`{"product_id":1}`)},
			{Resource: models.ResourceOrderItems, Payload: []byte(`{"product_id":2}`)},
		},
		ServerTs: 10,
	}
	require.NoError(t, repo.ApplySync(ctx, first))

	second := models.LocalApply{
		Resource:   models.ResourceOrderItems,
		ReplaceAll: true,
		Records: []models.LocalRecord{
			{Resource: models.ResourceOrderItems, Payload: []byte(`{"product_id":3}`)},
		},
		ServerTs: 20,
	}
	require.NoError(t, repo.ApplySync(ctx, second))

	records, err := repo.GetRecords(ctx, models.ResourceOrderItems)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].RecordID)
	assert.JSONEq(t, `{"product_id":3}`, string(records[0].Payload))

	ids, err := repo.GetRecordIDs(ctx, models.ResourceOrderItems)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestLocalSyncRepository_ApplySync_RollsBackOnFailure(t *testing.T) {
	repo := newTestLocalRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.ApplySync(ctx, models.LocalApply{
		Resource: models.ResourceProducts,
		Records:  []models.LocalRecord{{Resource: models.ResourceProducts, RecordID: int64Ptr(1), Payload: []byte(`{"v":1}`)}},
		ServerTs: 1,
	}))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	err := repo.ApplySync(cancelled, models.LocalApply{
		Resource:   models.ResourceProducts,
		ReplaceAll: true,
		ServerTs:   2,
	})
	require.Error(t, err)

	ids, err := repo.GetRecordIDs(ctx, models.ResourceProducts)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids)

	state, err := repo.GetSyncState(ctx, models.ResourceProducts)
	require.NoError(t, err)
	assert.Equal(t, int64(1), *state.LastUpdateTs)
}

func TestNewClientStorages_CreatesDatabaseFile(t *testing.T) {
	dsn := t.TempDir() + "/nested/mirror.db"

	storages, err := NewClientStorages(context.Background(), config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	_, err = storages.SyncRepository.GetSyncState(context.Background(), models.ResourceOrders)
	assert.ErrorIs(t, err, ErrLocalStateNotFound)
}
