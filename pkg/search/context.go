package search

import (
	"context"
	"sync/atomic"

	"github.com/bootinge/omim/pkg/datastructure"
	"github.com/bootinge/omim/pkg/tile"
	"go.uber.org/zap"
)

// searchContext carries the per-call collaborators and the cancel flag
// through every pipeline stage. It is constructed fresh per Search call and
// discarded on return.
type searchContext struct {
	ctx      context.Context
	tiles    tile.Set
	cancel   *atomic.Bool
	log      *zap.Logger
}

// canceled polls both the write-once cancel flag and the caller's
// context.Context, satisfied at stage entry, at every feature-filter
// admission decision, and between result emissions.
func canceled(sc *searchContext) bool {
	if sc.cancel != nil && sc.cancel.Load() {
		return true
	}
	select {
	case <-sc.ctx.Done():
		return true
	default:
		return false
	}
}

func (sc *searchContext) logDebug(msg string, id datastructure.TileID) {
	if sc.log != nil {
		sc.log.Debug(msg, zap.Uint32("tileId", uint32(id)))
	}
}

func (sc *searchContext) logError(msg string, err error) {
	if sc.log != nil {
		sc.log.Error(msg, zap.Error(err))
	}
}
