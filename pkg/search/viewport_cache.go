package search

import (
	"sort"

	"github.com/bootinge/omim/pkg/datastructure"
	"github.com/bootinge/omim/pkg/geo"
	"github.com/bootinge/omim/pkg/tile"
)

// offsetCache is the Viewport Offset Cache: a per-tile sorted,
// deduplicated vector of feature offsets visible in the current
// ExtendedViewport. It is rebuilt lazily on the first search after a
// viewport change and consulted (read-only) by the Trie Matcher.
type offsetCache struct {
	viewport datastructure.Viewport
	valid    bool
	entries  map[datastructure.TileID][]datastructure.FeatureOffset
}

func newOffsetCache() *offsetCache {
	return &offsetCache{entries: make(map[datastructure.TileID][]datastructure.FeatureOffset)}
}

// setViewport is idempotent: a no-op if rect is unchanged and
// the cache is already valid.
func (c *offsetCache) setViewport(rect datastructure.Viewport) {
	if c.valid && c.viewport.Equal(rect) {
		return
	}
	c.viewport = rect
	c.valid = false
}

// invalidate marks the cache stale without changing the viewport, the
// Controller's clearCache() and InvalidateTiles() hooks.
func (c *offsetCache) invalidate() {
	c.valid = false
}

// rebuild recomputes every tile's entry against the current viewport,
// skipping world tiles (always searched unfiltered) and tiles whose limit
// rectangle misses ExtendedViewport.
func (c *offsetCache) rebuild(ctx *searchContext, infos []tile.Info) error {
	extended := c.viewport.Extended(ViewportScaleFactor)
	c.entries = make(map[datastructure.TileID][]datastructure.FeatureOffset, len(infos))

	for _, info := range infos {
		if canceled(ctx) {
			return errCanceled
		}
		if info.Type == tile.TypeWorld {
			continue
		}
		limitRect := toGeoRect(info.LimitRect)
		extendedRect := toGeoRect(extended)
		if !rectsIntersect(limitRect, extendedRect) {
			continue
		}
		offsets, err := c.tileOffsets(ctx, info, extended)
		if err != nil {
			return err
		}
		c.entries[info.ID] = offsets
	}
	c.valid = true
	return nil
}

func (c *offsetCache) tileOffsets(ctx *searchContext, info tile.Info, extended datastructure.Viewport) ([]datastructure.FeatureOffset, error) {
	lease, ok := ctx.tiles.Lock(ctx.ctx, info.ID)
	if !ok {
		ctx.logDebug("tile unavailable during offset cache rebuild", info.ID)
		return nil, nil
	}
	defer lease.Release()

	level := geo.ClampScale(geo.GetScaleLevel(toGeoRect(extended))+ScaleBias, info.ScaleLo, info.ScaleHi)
	intervals := geo.CoverRect(toGeoRect(extended), level)

	seen := map[datastructure.FeatureOffset]struct{}{}
	var offsets []datastructure.FeatureOffset
	for _, off := range lease.AllOffsets() {
		if canceled(ctx) {
			return nil, errCanceled
		}
		_, pt, ok := lease.RankAndPoint(off)
		if !ok {
			continue
		}
		if !geo.CellContains(intervals, geo.PointCellID(pt.Lat, pt.Lon)) {
			continue
		}
		if _, dup := seen[off]; dup {
			continue
		}
		seen[off] = struct{}{}
		offsets = append(offsets, off)
	}
	sort.Slice(offsets, func(i, j int) bool { return offsets[i] < offsets[j] })
	return offsets, nil
}

// contains reports whether offset is admitted by tile id's cached entry via
// binary search over the sorted vector. World tiles have
// no entry and are handled by the caller (always admit).
func (c *offsetCache) contains(id datastructure.TileID, offset datastructure.FeatureOffset) bool {
	entry, ok := c.entries[id]
	if !ok {
		return false
	}
	i := sort.Search(len(entry), func(i int) bool { return entry[i] >= offset })
	return i < len(entry) && entry[i] == offset
}

func toGeoRect(v datastructure.Viewport) geo.Rect {
	return geo.Rect{MinLat: v.MinLat, MinLon: v.MinLon, MaxLat: v.MaxLat, MaxLon: v.MaxLon}
}

func rectsIntersect(a, b geo.Rect) bool {
	if a.MaxLat < b.MinLat || a.MinLat > b.MaxLat {
		return false
	}
	if a.MaxLon < b.MinLon || a.MinLon > b.MaxLon {
		return false
	}
	return true
}
