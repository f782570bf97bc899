package kvdb

import (
	"path/filepath"
	"testing"

	"github.com/bootinge/omim/pkg/datastructure"
	"github.com/bootinge/omim/pkg/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func openTestDB(t *testing.T) *bbolt.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tiles.db")
	db, err := bbolt.Open(path, 0600, nil)
	require.NoError(t, err)
	require.NoError(t, EnsureBuckets(db))
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveAndFetchTileRecord(t *testing.T) {
	kv := NewKVDB(openTestDB(t))

	rec := TileRecord{
		Info: tile.Info{
			ID:        7,
			LimitRect: datastructure.Viewport{MinLat: 0, MinLon: 0, MaxLat: 1, MaxLon: 1},
			Type:      tile.TypeCountry,
			ScaleLo:   1,
			ScaleHi:   17,
		},
		CountryName: "Testland",
	}
	require.NoError(t, kv.SaveTileRecord(rec))

	got, err := kv.TileRecord(7)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestTileRecordUnknownIDMisses(t *testing.T) {
	kv := NewKVDB(openTestDB(t))
	_, err := kv.TileRecord(99)
	assert.ErrorIs(t, err, ErrTileNotFound)
}

func TestAllTileRecordsReturnsEveryEntry(t *testing.T) {
	kv := NewKVDB(openTestDB(t))
	require.NoError(t, kv.SaveTileRecord(TileRecord{Info: tile.Info{ID: 1}, CountryName: "A"}))
	require.NoError(t, kv.SaveTileRecord(TileRecord{Info: tile.Info{ID: 2}, CountryName: "B"}))

	recs, err := kv.AllTileRecords()
	require.NoError(t, err)
	require.Len(t, recs, 2)

	names := map[datastructure.TileID]string{}
	for _, r := range recs {
		names[r.Info.ID] = r.CountryName
	}
	assert.Equal(t, "A", names[1])
	assert.Equal(t, "B", names[2])
}

func TestSaveTileRecordOverwritesExisting(t *testing.T) {
	kv := NewKVDB(openTestDB(t))
	require.NoError(t, kv.SaveTileRecord(TileRecord{Info: tile.Info{ID: 1}, CountryName: "Old"}))
	require.NoError(t, kv.SaveTileRecord(TileRecord{Info: tile.Info{ID: 1}, CountryName: "New"}))

	got, err := kv.TileRecord(1)
	require.NoError(t, err)
	assert.Equal(t, "New", got.CountryName)
}
