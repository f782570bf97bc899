package kv_di

import (
	"context"

	"github.com/bootinge/omim/pkg/kvdb"

	"github.com/spf13/viper"
	bolt "go.etcd.io/bbolt"
)

func New(ctx context.Context) (*kvdb.KVDB, error) {
	viper.SetDefault("TILES_DB_PATH", "tiles.db")

	db, err := bolt.Open(viper.GetString("TILES_DB_PATH"), 0600, nil)
	if err != nil {
		return nil, err
	}

	if err := kvdb.EnsureBuckets(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	bboltKV := kvdb.NewKVDB(db)

	cleanup := func() {
		_ = db.Close()
	}

	go func() {
		<-ctx.Done()
		cleanup()
	}()

	return bboltKV, nil
}
