// Package datastructure holds the plain data types and generic containers
// shared across the search pipeline.
package datastructure

import (
	"math"

	"github.com/bootinge/omim/pkg/geo"
)

// TileID is a dense nonnegative integer identifying a tile within the
// current tile set.
type TileID uint32

// FeatureOffset is the index of a feature record inside a tile.
type FeatureOffset uint32

// FeatureKey globally identifies a feature: its offset within its owning tile.
type FeatureKey struct {
	Offset FeatureOffset
	Tile   TileID
}

// Point is a lat/lon pair in degrees.
type Point struct {
	Lat, Lon float64
}

// Viewport is a rectangle in map coordinates (degrees).
type Viewport struct {
	MinLat, MinLon, MaxLat, MaxLon float64
}

// Center returns the rectangle's midpoint.
func (v Viewport) Center() Point {
	return Point{Lat: (v.MinLat + v.MaxLat) / 2, Lon: (v.MinLon + v.MaxLon) / 2}
}

// Extended scales the rectangle by factor around its center, the
// ExtendedViewport derivation used by the offset cache.
func (v Viewport) Extended(factor float64) Viewport {
	c := v.Center()
	halfLat := (v.MaxLat - v.MinLat) / 2 * factor
	halfLon := (v.MaxLon - v.MinLon) / 2 * factor
	return Viewport{
		MinLat: c.Lat - halfLat,
		MaxLat: c.Lat + halfLat,
		MinLon: c.Lon - halfLon,
		MaxLon: c.Lon + halfLon,
	}
}

// Intersects reports whether v and o share any area.
func (v Viewport) Intersects(o Viewport) bool {
	if v.MaxLat < o.MinLat || v.MinLat > o.MaxLat {
		return false
	}
	if v.MaxLon < o.MinLon || v.MinLon > o.MaxLon {
		return false
	}
	return true
}

// Contains reports whether p lies within v, inclusive of the boundary.
func (v Viewport) Contains(p Point) bool {
	return p.Lat >= v.MinLat && p.Lat <= v.MaxLat && p.Lon >= v.MinLon && p.Lon <= v.MaxLon
}

// Equal reports whether v and o describe the same rectangle, used by the
// controller's setViewport idempotency check.
func (v Viewport) Equal(o Viewport) bool {
	return v == o
}

// NoPosition is the sentinel Position meaning "unknown user location".
var NoPosition = Position{Known: false}

// Position is an optional user anchor point.
type Position struct {
	Point
	Known bool
}

// NewPosition builds a known Position.
func NewPosition(lat, lon float64) Position {
	return Position{Point: Point{Lat: lat, Lon: lon}, Known: true}
}

// DistanceToKM returns the great-circle distance from p to q, or +Inf if p
// is unknown.
func (p Position) DistanceToKM(q Point) float64 {
	if !p.Known {
		return math.Inf(1)
	}
	return geo.HaversineDistance(p.Lat, p.Lon, q.Lat, q.Lon)
}

// TrieHit is the lightweight candidate record the Trie Matcher emits.
type TrieHit struct {
	Key      FeatureKey
	Rank     byte
	Point    Point
	Language string
}

// Candidate is a TrieHit promoted to a full feature record.
type Candidate struct {
	Key         FeatureKey
	Rank        byte
	Point       Point
	Name        string
	NamePenalty uint32
	CountryName string
	Types       []int
	Linear      bool // true for line/polygon geometries, used by the linear-object dedup pass
}

// RankedEntry is a Candidate annotated with its three per-criterion rank
// positions (byRank, byViewportDistance, byUserDistance), sorted ascending
// before the final composite comparison.
type RankedEntry struct {
	Candidate Candidate
	Ranks     [3]int
}
