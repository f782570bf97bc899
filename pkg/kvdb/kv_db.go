// Package kvdb persists the tile catalogue — TileInfo plus each tile's
// country name, keyed by TileId — the one piece of tile bookkeeping this
// repo owns; the tile's trie and feature data remain behind the external
// tile.Set/tile.Lease contract. Same bbolt-backed KVDB shape and locking as
// a prior key-value store, records serialized with msgpack instead of a
// hand-rolled byte-offset codec since there is no fixed-width layout to
// hand-pack here.
package kvdb

import (
	"errors"
	"strconv"
	"sync"

	"github.com/bootinge/omim/pkg/datastructure"
	"github.com/bootinge/omim/pkg/tile"
	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

// BucketTiles is the bbolt bucket holding one TileRecord per known tile.
const BucketTiles = "tiles"

// ErrTileNotFound mirrors a generic key-not-found sentinel.
var ErrTileNotFound = errors.New("tile record not found")

// TileRecord is the catalogue entry persisted per tile.
type TileRecord struct {
	Info        tile.Info
	CountryName string
}

// KVDB wraps a bbolt handle with the tile-catalogue operations.
type KVDB struct {
	db *bbolt.DB
	sync.Mutex
}

// NewKVDB wraps an already-open bbolt database.
func NewKVDB(db *bbolt.DB) *KVDB {
	return &KVDB{db: db}
}

// EnsureBuckets creates BucketTiles if absent, meant to run once after
// opening the database.
func EnsureBuckets(db *bbolt.DB) error {
	return db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(BucketTiles))
		return err
	})
}

// SaveTileRecord upserts one tile's catalogue entry, guarded by the KVDB's
// mutex.
func (kv *KVDB) SaveTileRecord(rec TileRecord) error {
	kv.Lock()
	defer kv.Unlock()

	buf, err := msgpack.Marshal(&rec)
	if err != nil {
		return err
	}
	return kv.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BucketTiles))
		return b.Put(tileKey(rec.Info.ID), buf)
	})
}

// TileRecord looks up one tile's catalogue entry by id.
func (kv *KVDB) TileRecord(id datastructure.TileID) (TileRecord, error) {
	var rec TileRecord
	err := kv.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BucketTiles))
		buf := b.Get(tileKey(id))
		if buf == nil {
			return ErrTileNotFound
		}
		return msgpack.Unmarshal(buf, &rec)
	})
	return rec, err
}

// AllTileRecords returns every catalogued tile, used to rehydrate a
// tile.Set's Tiles() list on startup.
func (kv *KVDB) AllTileRecords() ([]TileRecord, error) {
	var recs []TileRecord
	err := kv.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BucketTiles))
		return b.ForEach(func(_, v []byte) error {
			var rec TileRecord
			if err := msgpack.Unmarshal(v, &rec); err != nil {
				return err
			}
			recs = append(recs, rec)
			return nil
		})
	})
	return recs, err
}

func tileKey(id datastructure.TileID) []byte {
	return []byte(strconv.FormatUint(uint64(id), 10))
}
