// Package tile defines the tile set and trie wire contracts as external,
// consumed-only collaborators (the tile container format, its low-level
// readers, and the trie's on-disk encoding are out of scope). It also
// supplies the one concrete piece this repo does require: the
// go-patricia-backed per-language/categories trie matcher.
package tile

import (
	"context"

	"github.com/bootinge/omim/pkg/datastructure"
)

// Type distinguishes a "world" tile, which the Trie Matcher always searches
// unfiltered, from a "country" tile, which is filtered through the
// Viewport Offset Cache.
type Type int

const (
	TypeCountry Type = iota
	TypeWorld
)

// Info describes a tile without acquiring its lease.
type Info struct {
	ID        datastructure.TileID
	LimitRect datastructure.Viewport
	Type      Type
	ScaleLo   int
	ScaleHi   int
}

// NameVariant is one (language, name) pair on a feature record. Order
// matters: the Promoter's best-name tie-break falls back to iteration order
// when two variants score an equal penalty, so Names is
// a slice rather than a map to keep that order reproducible.
type NameVariant struct {
	Lang string
	Name string
}

// Feature is a full geographic feature record, read by the Promoter after
// the Trie Matcher has already found a candidate offset.
type Feature struct {
	Offset datastructure.FeatureOffset
	Point  datastructure.Point
	Names  []NameVariant
	Types  []int
	Linear bool
}

// Lease is a scoped, read-only handle to one tile's data, released on every
// exit path including cancellation.
type Lease interface {
	Info() Info
	Trie() *NameTrie
	// RankAndPoint answers the Trie Matcher's need for a feature's rank and
	// point without paying for a full feature read; the full record is read later, only for promoted hits.
	RankAndPoint(offset datastructure.FeatureOffset) (rank byte, pt datastructure.Point, ok bool)
	// AllOffsets enumerates every feature offset in the tile, the geometric
	// covering collaborator's input for building this tile's Viewport
	// Offset Cache entry.
	AllOffsets() []datastructure.FeatureOffset
	FeatureAt(offset datastructure.FeatureOffset) (Feature, bool)
	CountryName() string
	Release()
}

// Set is the external tile-set collaborator: "getTiles()" and
// "lockTile(tileId) → lease".
type Set interface {
	Tiles() []Info
	Lock(ctx context.Context, id datastructure.TileID) (Lease, bool)
}
