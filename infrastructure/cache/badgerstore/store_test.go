package badgerstore

import (
	"context"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/visit-map-api/internal/domain"
)

func setupTestDB(t *testing.T) *badger.DB {
	t.Helper()

	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func sampleDataset() *domain.ProcessedDataset {
	return &domain.ProcessedDataset{
		Success: true,
		Coordinates: []domain.Coordinate{
			{
				Longitude: 106.8,
				Latitude:  -6.2,
				StoreName: "Toko S1",
				StoreID:   "S1",
				FullName:  "Budi Santoso",
				VisitDate: "2024-01-01",
				AreaName:  "Jakarta Selatan",
				AreaID:    "10",
				IsTop5:    true,
			},
		},
		TopStores: []domain.StoreRank{
			{
				StoreID:    "S1",
				StoreName:  "Toko S1",
				VisitCount: 1,
				Color:      "#FF6B6B",
				Latitude:   -6.2,
				Longitude:  106.8,
				AreaName:   "Jakarta Selatan",
				AreaID:     "10",
			},
		},
		Areas: []domain.AreaSummary{{AreaID: "10", AreaName: "Jakarta Selatan"}},
		Stats: domain.DatasetStats{
			TotalPoints: 1,
			TotalStores: 1,
			TotalAreas:  1,
			DateRange:   domain.DateRange{Start: "2024-01-01", End: "2024-01-01"},
			Bounds: &domain.Bounds{
				North: -6.2, South: -6.2, East: 106.8, West: 106.8,
				CenterLat: -6.2, CenterLng: 106.8,
			},
		},
	}
}

func TestDatasetCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	cache := NewDatasetCache(setupTestDB(t), 0)
	dataset := sampleDataset()

	require.NoError(t, cache.Put(ctx, "abc", dataset))

	got, err := cache.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, dataset, got)
}

func TestDatasetCache_EmptyDatasetRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache := NewDatasetCache(setupTestDB(t), 0)
	dataset := &domain.ProcessedDataset{
		Success:     true,
		Coordinates: []domain.Coordinate{},
		TopStores:   []domain.StoreRank{},
		Areas:       []domain.AreaSummary{},
		Stats:       domain.DatasetStats{DateRange: domain.DateRange{Start: "N/A", End: "N/A"}},
	}

	require.NoError(t, cache.Put(ctx, "empty", dataset))

	got, err := cache.Get(ctx, "empty")
	require.NoError(t, err)
	assert.Equal(t, dataset, got)
}

func TestDatasetCache_Miss(t *testing.T) {
	cache := NewDatasetCache(setupTestDB(t), 0)

	got, err := cache.Get(context.Background(), "inexistente")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestDatasetCache_CorruptEntryIsMiss(t *testing.T) {
	db := setupTestDB(t)
	cache := NewDatasetCache(db, 0)

	for key, blob := range map[string]string{
		"truncado": `{"success":true,"coordinates":[`,
		"vazio":    `{}`,
		"lixo":     "\x00\x01\x02",
	} {
		require.NoError(t, db.Update(func(txn *badger.Txn) error {
			return txn.Set([]byte(datasetKeyPrefix+key), []byte(blob))
		}))

		got, err := cache.Get(context.Background(), key)
		assert.Nil(t, got, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss, key)
	}
}

func TestDatasetCache_OverwriteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	cache := NewDatasetCache(setupTestDB(t), 0)
	dataset := sampleDataset()

	require.NoError(t, cache.Put(ctx, "abc", dataset))
	require.NoError(t, cache.Put(ctx, "abc", dataset))

	got, err := cache.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, dataset, got)
}

func TestDatasetCache_TTL(t *testing.T) {
	ctx := context.Background()
	cache := NewDatasetCache(setupTestDB(t), 2*time.Second)

	require.NoError(t, cache.Put(ctx, "abc", sampleDataset()))

	_, err := cache.Get(ctx, "abc")
	require.NoError(t, err)

	time.Sleep(2100 * time.Millisecond)

	_, err = cache.Get(ctx, "abc")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestClear_LayersAreIndependent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	cache := NewDatasetCache(db, 0)
	store := NewCurrentDatasetStore(db)

	require.NoError(t, cache.Put(ctx, "abc", sampleDataset()))
	require.NoError(t, store.Save(ctx, &domain.CurrentDataset{
		UploadID:   "Ab12Cd",
		UploadedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Dataset:    sampleDataset(),
	}))

	require.NoError(t, cache.Clear(ctx))

	_, err := cache.Get(ctx, "abc")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	current, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "Ab12Cd", current.UploadID)

	require.NoError(t, cache.Put(ctx, "abc", sampleDataset()))
	require.NoError(t, store.Clear(ctx))

	current, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	_, err = cache.Get(ctx, "abc")
	assert.NoError(t, err)
}

func TestCurrentDatasetStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewCurrentDatasetStore(setupTestDB(t))

	current, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	saved := &domain.CurrentDataset{
		UploadID:   "Xy98Zw",
		UploadedAt: time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC),
		Dataset:    sampleDataset(),
	}
	require.NoError(t, store.Save(ctx, saved))

	current, err = store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, saved.UploadID, current.UploadID)
	assert.True(t, saved.UploadedAt.Equal(current.UploadedAt))
	assert.Equal(t, saved.Dataset, current.Dataset)
}

func TestCurrentDatasetStore_ClearWithoutData(t *testing.T) {
	store := NewCurrentDatasetStore(setupTestDB(t))

	assert.NoError(t, store.Clear(context.Background()))
}

func TestMaintainer_InMemoryIsNoop(t *testing.T) {
	rewritten, err := NewMaintainer(setupTestDB(t), 0.5).CollectGarbage()

	assert.NoError(t, err)
	assert.Equal(t, 0, rewritten)
}
