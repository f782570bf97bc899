package geo

import (
	"github.com/golang/geo/s2"
)

// CellInterval is a contiguous run of S2 cell IDs at a fixed level, the unit
// the Viewport Offset Cache indexes tile offsets by.
type CellInterval struct {
	Lo, Hi uint64
}

// Rect mirrors the search package's Viewport shape without importing it,
// keeping pkg/geo free of a dependency on pkg/search.
type Rect struct {
	MinLat, MinLon, MaxLat, MaxLon float64
}

func (r Rect) toS2() s2.Rect {
	return s2.RectFromLatLng(s2.LatLngFromDegrees(r.MinLat, r.MinLon)).
		AddPoint(s2.LatLngFromDegrees(r.MaxLat, r.MaxLon))
}

// CoverRect returns the cell intervals of a covering of r by at most 64
// cells, none finer than the given S2 level. Each interval spans the full
// leaf-cell (level-30) range of one covering cell via RangeMin/RangeMax, so a
// point's leaf cell ID (as returned by PointCellID, which is level-independent)
// can be tested against these intervals directly regardless of the levels of
// the covering cells — this is what lets CellContains compare a point against
// a covering made of coarser cells. Cells adjacent in cell-ID order produce
// abutting leaf ranges (leaf IDs are odd, so the next range starts two IDs
// after the previous one ends), so merging collapses a contiguous covering
// into as few intervals as possible.
func CoverRect(r Rect, level int) []CellInterval {
	rc := &s2.RegionCoverer{MinLevel: 0, MaxLevel: level, MaxCells: 64}
	union := rc.Covering(r.toS2())

	ids := make([]CellInterval, len(union))
	for i, c := range union {
		ids[i] = CellInterval{Lo: uint64(c.RangeMin()), Hi: uint64(c.RangeMax())}
	}
	return mergeIntervals(ids)
}

// PointCellID returns the leaf-level (level 30) S2 cell ID containing
// (lat, lon), comparable against CoverRect's intervals regardless of the
// level CoverRect was computed at.
func PointCellID(lat, lon float64) uint64 {
	return uint64(s2.CellIDFromLatLng(s2.LatLngFromDegrees(lat, lon)))
}

func mergeIntervals(ids []CellInterval) []CellInterval {
	if len(ids) == 0 {
		return nil
	}
	sortIntervals(ids)

	merged := make([]CellInterval, 0, len(ids))
	cur := ids[0]
	for _, next := range ids[1:] {
		if next.Lo <= cur.Hi+2 {
			if next.Hi > cur.Hi {
				cur.Hi = next.Hi
			}
			continue
		}
		merged = append(merged, cur)
		cur = next
	}
	merged = append(merged, cur)
	return merged
}

func sortIntervals(ids []CellInterval) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1].Lo > ids[j].Lo; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}

// CellContains reports whether id falls within one of the given intervals,
// the query the offset cache runs per candidate tile offset.
func CellContains(intervals []CellInterval, id uint64) bool {
	for _, iv := range intervals {
		if id >= iv.Lo && id <= iv.Hi {
			return true
		}
	}
	return false
}
