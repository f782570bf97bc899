// Package region resolves a projected point to a human-readable
// administrative-boundary label. It backs the out-of-scope infoGetter
// collaborator, specified only through its consumed interface,
// adapted from an OSMSpatialIndex.AdministrativeBoundaryRtree /
// ReverseGeocoding lookup pattern (pkg/geo/types.go, pkg/datastructure/rtree.go).
package region

import (
	"strconv"

	"github.com/bootinge/omim/pkg/datastructure"
)

// Boundary is one administrative area the Resolver can attach to a point.
type Boundary struct {
	Province    string
	District    string
	SubDistrict string
	Village     string
	PostalCode  string
	Centroid    datastructure.Point
}

// Label is the region annotation attached to a final result.
type Label struct {
	Province    string
	District    string
	SubDistrict string
	Village     string
	PostalCode  string
}

// Resolver answers point-to-region lookups over a fixed, caller-supplied
// boundary set. It is built once per tile set and reused across searches;
// it holds no reference to the tile set itself.
type Resolver struct {
	index *rtree
	byID  map[string]Boundary
}

// NewResolver indexes boundaries for nearest-boundary lookups.
func NewResolver(boundaries []Boundary) *Resolver {
	idx := newRtree(4, 32, 2)
	byID := make(map[string]Boundary, len(boundaries))
	for i, b := range boundaries {
		id := strconv.Itoa(i)
		obj := object{ID: id, Lat: b.Centroid.Lat, Lon: b.Centroid.Lon}
		idx.insertLeaf(obj.getBound(), obj)
		byID[id] = b
	}
	return &Resolver{index: idx, byID: byID}
}

// Resolve returns the label of the boundary nearest to p, or an empty
// Label if the resolver has no boundaries. Mirrors the original engine's
// rule that world-typed tiles carry no country name: an empty Resolver
// (no boundaries loaded) resolves every point to the empty Label.
func (r *Resolver) Resolve(p datastructure.Point) Label {
	if r == nil || r.index == nil || r.index.root == nil {
		return Label{}
	}
	nearest := r.index.improvedNearestNeighbor(point{Lat: p.Lat, Lon: p.Lon})
	return r.boundaryForLeaf(nearest.Leaf)
}

func (r *Resolver) boundaryForLeaf(leaf object) Label {
	b := r.byID[leaf.ID]
	return Label{
		Province:    b.Province,
		District:    b.District,
		SubDistrict: b.SubDistrict,
		Village:     b.Village,
		PostalCode:  b.PostalCode,
	}
}
