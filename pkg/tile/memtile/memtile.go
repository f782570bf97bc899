// Package memtile is an in-memory tile.Set implementation. It started as a
// synthetic fixture builder for pkg/search's tests and doubles as the
// default tile.Set the wiring in pkg/di/searcher rehydrates the tile
// catalogue into, since indexing or building tiles is out of scope here; a
// deployment with a real tile container format supplies its own tile.Set
// instead.
package memtile

import (
	"context"

	"github.com/bootinge/omim/pkg/datastructure"
	"github.com/bootinge/omim/pkg/query"
	"github.com/bootinge/omim/pkg/tile"
)

type featureRecord struct {
	feature tile.Feature
	rank    byte
}

// Tile is a fully in-memory implementation of tile.Lease.
type Tile struct {
	info        tile.Info
	trie        *tile.NameTrie
	features    map[datastructure.FeatureOffset]featureRecord
	countryName string
}

// New builds an empty synthetic tile.
func New(info tile.Info, countryName string) *Tile {
	return &Tile{
		info:        info,
		trie:        tile.NewNameTrie(),
		features:    make(map[datastructure.FeatureOffset]featureRecord),
		countryName: countryName,
	}
}

// AddFeature registers a feature's names (per language, in the given order)
// and rank, indexing every folded token of every name into the tile's trie.
// names is a slice, not a map, so callers control the iteration order the
// Promoter's best-name tie-break falls back to.
func (tl *Tile) AddFeature(offset datastructure.FeatureOffset, rank byte, pt datastructure.Point, names []tile.NameVariant, types []int, linear bool) {
	tl.features[offset] = featureRecord{
		feature: tile.Feature{Offset: offset, Point: pt, Names: names, Types: types, Linear: linear},
		rank:    rank,
	}
	for _, nv := range names {
		for _, tok := range nameTokens(nv.Name) {
			tl.trie.Insert(nv.Lang, tok, offset)
		}
	}
}

// AddCategoryFeature additionally indexes offset under a category keyword,
// simulating the categories sub-trie synonym match.
func (tl *Tile) AddCategoryFeature(offset datastructure.FeatureOffset, categoryKeyword string) {
	tl.trie.InsertCategory(categoryKeyword, offset)
}

func nameTokens(name string) []string {
	n := query.Normalize(name + " ")
	return n.Tokens
}

func (tl *Tile) Info() tile.Info      { return tl.info }
func (tl *Tile) Trie() *tile.NameTrie { return tl.trie }

func (tl *Tile) RankAndPoint(offset datastructure.FeatureOffset) (byte, datastructure.Point, bool) {
	rec, ok := tl.features[offset]
	if !ok {
		return 0, datastructure.Point{}, false
	}
	return rec.rank, rec.feature.Point, true
}

func (tl *Tile) FeatureAt(offset datastructure.FeatureOffset) (tile.Feature, bool) {
	rec, ok := tl.features[offset]
	return rec.feature, ok
}

func (tl *Tile) AllOffsets() []datastructure.FeatureOffset {
	offsets := make([]datastructure.FeatureOffset, 0, len(tl.features))
	for off := range tl.features {
		offsets = append(offsets, off)
	}
	return offsets
}

func (tl *Tile) CountryName() string { return tl.countryName }
func (tl *Tile) Release()            {}

// Set is an in-memory tile.Set over a fixed collection of Tiles.
type Set struct {
	tiles map[datastructure.TileID]*Tile
}

// NewSet builds a Set from the given tiles, keyed by their Info.ID.
func NewSet(tiles ...*Tile) *Set {
	s := &Set{tiles: make(map[datastructure.TileID]*Tile, len(tiles))}
	for _, t := range tiles {
		s.tiles[t.info.ID] = t
	}
	return s
}

func (s *Set) Tiles() []tile.Info {
	infos := make([]tile.Info, 0, len(s.tiles))
	for _, t := range s.tiles {
		infos = append(infos, t.info)
	}
	return infos
}

func (s *Set) Lock(_ context.Context, id datastructure.TileID) (tile.Lease, bool) {
	t, ok := s.tiles[id]
	if !ok {
		return nil, false
	}
	return t, true
}
