package region

import (
	"math"
	"sort"

	"github.com/bootinge/omim/pkg/geo"
)

// Adapted from https://github.com/virtuald/r-star-tree/ (an R*-tree
// implementation), see also:
// https://infolab.usc.edu/csci599/Fall2001/paper/rstar-tree.pdf
// https://dl.acm.org/doi/10.1145/971697.602266
//
// Repurposed here as the spatial index behind the Resolver's
// administrative-boundary lookup: leaves are boundary centroid points keyed
// by the boundary's index rather than OSM objects, and the gob-based (de)serialization the
// original used to persist an indexing pipeline's output has been dropped —
// this resolver is always built in-memory from a caller-supplied boundary
// set.

func assertt(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

const (
	chooseSubtreeP = 32
	reinsertP      = 0.3
)

type rtreeBoundingBox struct {
	// number of dimensions
	dim int
	// edges[i][0] = low value, edges[i][1] = high value
	// i = 0,...,dim
	edges [][2]float64
}

func newRtreeBoundingBox(dim int, minVal []float64, maxVal []float64) rtreeBoundingBox {
	b := rtreeBoundingBox{dim: dim, edges: make([][2]float64, dim)}
	for axis := 0; axis < dim; axis++ {
		b.edges[axis] = [2]float64{minVal[axis], maxVal[axis]}
	}

	return b
}

// reset forces all edges to extremes so we can stretch them later.
func reset(b rtreeBoundingBox) rtreeBoundingBox {
	newBB := newRtreeBoundingBox(b.dim, make([]float64, b.dim), make([]float64, b.dim))
	for axis := 0; axis < b.dim; axis++ {
		newBB.edges[axis][0] = math.MaxFloat64
		newBB.edges[axis][1] = math.Inf(-1)
	}
	return newBB
}

// stretch fits another box inside this box, returns the smallest box enclosing both.
func stretch(b rtreeBoundingBox, bb rtreeBoundingBox) rtreeBoundingBox {
	newBB := newRtreeBoundingBox(b.dim, make([]float64, b.dim), make([]float64, b.dim))
	for axis := 0; axis < b.dim; axis++ {
		if b.edges[axis][0] > bb.edges[axis][0] {
			newBB.edges[axis][0] = bb.edges[axis][0]
		} else {
			newBB.edges[axis][0] = b.edges[axis][0]
		}

		if b.edges[axis][1] < bb.edges[axis][1] {
			newBB.edges[axis][1] = bb.edges[axis][1]
		} else {
			newBB.edges[axis][1] = b.edges[axis][1]
		}
	}
	return newBB
}

func boundingBox(b rtreeBoundingBox, bb rtreeBoundingBox) rtreeBoundingBox {
	newBound := newRtreeBoundingBox(b.dim, make([]float64, b.dim), make([]float64, b.dim))

	for axis := 0; axis < b.dim; axis++ {
		if b.edges[axis][0] <= bb.edges[axis][0] {
			newBound.edges[axis][0] = b.edges[axis][0]
		} else {
			newBound.edges[axis][0] = bb.edges[axis][0]
		}

		if b.edges[axis][1] >= bb.edges[axis][1] {
			newBound.edges[axis][1] = b.edges[axis][1]
		} else {
			newBound.edges[axis][1] = bb.edges[axis][1]
		}
	}

	return newBound
}

// edgeDeltas returns the sum of all (high - low) for each dimension (margin).
func edgeDeltas(b rtreeBoundingBox) float64 {
	distance := 0.0
	for axis := 0; axis < b.dim; axis++ {
		distance += b.edges[axis][1] - b.edges[axis][0]
	}
	return distance
}

// area calculates the area (in N dimensions) of a bounding box.
func area(b rtreeBoundingBox) float64 {
	area := 1.0
	for axis := 0; axis < b.dim; axis++ {
		area *= b.edges[axis][1] - b.edges[axis][0]
	}
	return area
}

// overlaps checks if two bounding boxes overlap.
func overlaps(b rtreeBoundingBox, bb rtreeBoundingBox) bool {
	for axis := 0; axis < b.dim; axis++ {
		if !(b.edges[axis][0] < bb.edges[axis][1]) || !(bb.edges[axis][0] < b.edges[axis][1]) {
			return false
		}
	}
	return true
}

// overlap calculates total overlapping region area (0 if no overlap).
func overlap(b rtreeBoundingBox, bb rtreeBoundingBox) float64 {
	area := 1.0

	for axis := 0; axis < b.dim && area != 0; axis++ {
		bMin := b.edges[axis][0]
		bMax := b.edges[axis][1]
		bbMin := bb.edges[axis][0]
		bbMax := bb.edges[axis][1]

		if bMin < bbMin {
			if bbMax < bMax {
				area *= float64(bbMax - bbMin)
			} else {
				area *= float64(bMax - bbMin)
			}
			continue
		} else if bMin < bbMax {
			if bMax < bbMax {
				area *= float64(bMax - bMin)
			} else {
				area *= float64(bbMax - bMin)
			}
			continue
		}
		return 0.0
	}

	return area
}

// distanceFromCenter distances between the center of the bounding box and the center of entry bb.
func (b *rtreeBoundingBox) distanceFromCenter(bb rtreeBoundingBox) float64 {
	distance := 0.0
	for axis := 0; axis < b.dim; axis++ {
		centerB := float64(b.edges[axis][0]+b.edges[axis][1]) / 2.0
		centerBB := float64(bb.edges[axis][0]+bb.edges[axis][1]) / 2.0
		distance += math.Pow(centerB-centerBB, 2)
	}
	return distance
}

func stretchBoundingBox(mBound rtreeBoundingBox, item boundedItem) rtreeBoundingBox {
	return stretch(mBound, item.getBound())
}

func sortBoundedItemsByFirstEdge(mAxis int, items []*rtreeNode) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].getBound().edges[mAxis][0] < items[j].getBound().edges[mAxis][0]
	})
}

func sortBoundedItemsBySecondEdge(mAxis int, items []*rtreeNode) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].getBound().edges[mAxis][1] < items[j].getBound().edges[mAxis][1]
	})
}

func sortDecreasingBoundedItemsByDistanceFromCenter(mCenter rtreeBoundingBox, items []*rtreeNode) {
	sort.Slice(items, func(i, j int) bool {
		return mCenter.distanceFromCenter(items[i].getBound()) > mCenter.distanceFromCenter(items[j].getBound())
	})
}

type boundedItem interface {
	getBound() rtreeBoundingBox
	isLeafNode() bool
}

// rtreeNode is either an internal node or a leaf holding one boundary object.
type rtreeNode struct {
	Items  []*rtreeNode
	Parent *rtreeNode

	Bound rtreeBoundingBox

	IsLeaf bool
	Leaf   object
}

func (node *rtreeNode) isLeafNode() bool {
	return node.IsLeaf
}

func (node *rtreeNode) getBound() rtreeBoundingBox {
	return node.Bound
}

type rtree struct {
	root          *rtreeNode
	size          int
	minChildItems int
	maxChildItems int
	dimensions    int
	height        int
}

func newRtree(minChildItems, maxChildItems, dimensions int) *rtree {
	return &rtree{
		minChildItems: minChildItems,
		maxChildItems: maxChildItems,
		dimensions:    dimensions,
	}
}

func (rt *rtree) insertLeaf(bound rtreeBoundingBox, leaf object) {
	newLeaf := &rtreeNode{Bound: bound, Leaf: leaf, IsLeaf: true}

	if rt.root == nil {
		rt.root = &rtreeNode{IsLeaf: true}
		rt.root.Items = make([]*rtreeNode, 0, rt.minChildItems)
		rt.root.Items = append(rt.root.Items, newLeaf)
		rt.root.Bound = bound
	} else {
		rt.insertInternal(newLeaf, rt.root, true)
	}
	rt.size++
}

func (rt *rtree) insertInternal(leaf *rtreeNode, root *rtreeNode, firstInsert bool) *rtreeNode {
	leafNode := rt.chooseSubtree(root, leaf.Bound)
	leafNode.Items = append(leafNode.Items, leaf)

	if len(leafNode.Items) > rt.maxChildItems {
		rt.overflowTreatment(leafNode, firstInsert)
	}

	return nil
}

func (rt *rtree) overflowTreatment(level *rtreeNode, firstInsert bool) {
	if level != rt.root && firstInsert {
		rt.reinsert(level)
		return
	}

	newNode := rt.split(level)

	if level == rt.root {
		newRoot := &rtreeNode{}
		newRoot.Items = make([]*rtreeNode, 0, rt.minChildItems)
		newRoot.Items = append(newRoot.Items, rt.root)
		newRoot.Items = append(newRoot.Items, newNode)
		rt.root.Parent = newRoot
		newNode.Parent = newRoot

		rt.height++

		newRoot.Bound = newRtreeBoundingBox(rt.dimensions, make([]float64, rt.dimensions), make([]float64, rt.dimensions))
		newRoot.Bound = reset(newRoot.Bound)
		for i := 0; i < len(newRoot.Items); i++ {
			newRoot.Bound = stretchBoundingBox(newRoot.Bound, newRoot.Items[i])
		}

		rt.root = newRoot
		return
	}

	newNode.Parent = level.Parent
	level.Parent.Items = append(level.Parent.Items, newNode)

	level.Parent.Bound = reset(level.Parent.Bound)
	for i := 0; i < len(level.Parent.Items); i++ {
		level.Parent.Bound = stretch(level.Parent.Bound, level.Parent.Items[i].getBound())
	}

	if len(level.Parent.Items) > rt.maxChildItems {
		rt.overflowTreatment(level.Parent, firstInsert)
	}
}

func (rt *rtree) reinsert(node *rtreeNode) {
	var removedItems []*rtreeNode

	nItems := len(node.Items)
	var p int
	if float64(nItems)*reinsertP > 0 {
		p = int(float64(nItems) * reinsertP)
	} else {
		p = 1
	}

	assertt(nItems == rt.maxChildItems+1, "nItems must be equal to maxChildItems + 1")

	sortDecreasingBoundedItemsByDistanceFromCenter(node.Bound, node.Items[:len(node.Items)-p])

	removedItems = node.Items[p:]
	node.Items = node.Items[:p]

	node.Bound = reset(node.Bound)
	for i := 0; i < len(node.Items); i++ {
		node.Bound = stretchBoundingBox(node.Bound, node.Items[i])
	}

	for _, removedItem := range removedItems {
		rt.insertInternal(removedItem, rt.root, false)
	}
}

func (rt *rtree) chooseSubtree(node *rtreeNode, bound rtreeBoundingBox) *rtreeNode {
	node.Bound = stretch(node.Bound, bound)

	var chosen *rtreeNode

	if node.isLeafNode() {
		return node
	}

	if node.Items[0].isLeafNode() {
		minOverlapEnlargement := math.MaxFloat64
		idxEntryWithMinOverlapEnlargement := 0
		for i, item := range node.Items {
			itembb := item.getBound()
			bb := boundingBox(itembb, bound)
			enlargement := overlap(item.getBound(), bound)

			if enlargement < minOverlapEnlargement || (enlargement == minOverlapEnlargement &&
				area(bb)-area(item.getBound()) < area(bb)-area(node.Items[idxEntryWithMinOverlapEnlargement].getBound())) {
				minOverlapEnlargement = enlargement
				idxEntryWithMinOverlapEnlargement = i
			}
		}
		chosen = node.Items[idxEntryWithMinOverlapEnlargement]
		return rt.chooseSubtree(chosen, bound)
	}

	minAreaEnlargement := math.MaxFloat64
	idxEntryWithMinAreaEnlargement := 0
	for i, item := range node.Items {
		itembb := item.getBound()
		bb := boundingBox(itembb, bound)
		enlargement := area(bb) - area(item.getBound())
		if enlargement < minAreaEnlargement ||
			(enlargement == minAreaEnlargement &&
				area(bb) < area(node.Items[idxEntryWithMinAreaEnlargement].getBound())) {
			minAreaEnlargement = enlargement
			idxEntryWithMinAreaEnlargement = i
		}
	}

	chosen = node.Items[idxEntryWithMinAreaEnlargement]
	return rt.chooseSubtree(chosen, bound)
}

func (rt *rtree) split(node *rtreeNode) *rtreeNode {
	newNode := &rtreeNode{IsLeaf: node.IsLeaf}

	nItems := len(node.Items)
	distributionCount := nItems - 2*rt.minChildItems + 1
	minSplitMargin := math.MaxFloat64

	splitIndex := 0

	firstGroup := rtreeBoundingBox{}
	secondGroup := rtreeBoundingBox{}
	assertt(nItems == rt.maxChildItems+1, "nItems must be equal to maxChildItems + 1")
	assertt(distributionCount > 0, "distributionCount must be greater than 0")
	assertt(rt.minChildItems+distributionCount-1 <= nItems, "rt.minChildItems + distributionCount - 1 must be less than or equal to nItems")

	for axis := 0; axis < rt.dimensions; axis++ {
		margin := 0.0
		overlapVal := 0.0

		distribIndex := 0

		minArea := math.MaxFloat64
		minOverlap := math.MaxFloat64

		for edge := 0; edge < 2; edge++ {
			if edge == 0 {
				sortBoundedItemsByFirstEdge(axis, node.Items)
			} else {
				sortBoundedItemsBySecondEdge(axis, node.Items)
			}

			for k := 0; k < distributionCount; k++ {
				bbArea := 0.0

				firstGroup = reset(firstGroup)
				for i := 0; i < (rt.minChildItems-1)+k; i++ {
					firstGroup = stretch(firstGroup, node.Items[i].getBound())
				}

				secondGroup = reset(secondGroup)
				for i := (rt.minChildItems - 1) + k; i < len(node.Items); i++ {
					secondGroup = stretch(secondGroup, node.Items[i].getBound())
				}

				margin += edgeDeltas(firstGroup) + edgeDeltas(secondGroup)
				bbArea += area(firstGroup) + area(secondGroup)
				overlap(firstGroup, secondGroup)

				if overlapVal < minOverlap || overlapVal == minOverlap && bbArea < minArea {
					distribIndex = (rt.minChildItems - 1) + k
					minOverlap = overlapVal
					minArea = bbArea
				}
			}
		}

		if margin < minSplitMargin {
			minSplitMargin = margin
			splitIndex = distribIndex
		}
	}

	newNode.Items = make([]*rtreeNode, 0, len(node.Items)-splitIndex)
	for i := splitIndex; i < len(node.Items); i++ {
		newNode.Items = append(newNode.Items, node.Items[i])
	}
	node.Items = node.Items[:splitIndex]

	node.Bound = reset(node.Bound)
	for i := 0; i < len(node.Items); i++ {
		node.Bound = stretch(node.Bound, node.Items[i].getBound())
	}

	newNode.Bound = newRtreeBoundingBox(rt.dimensions, make([]float64, rt.dimensions), make([]float64, rt.dimensions))
	newNode.Bound = reset(newNode.Bound)
	for i := 0; i < len(newNode.Items); i++ {
		newNode.Bound = stretch(newNode.Bound, newNode.Items[i].getBound())
	}

	return newNode
}

func (rt *rtree) search(bound rtreeBoundingBox) []rtreeNode {
	results := []rtreeNode{}
	return rt.searchNode(rt.root, bound, results)
}

func (rt *rtree) searchNode(node *rtreeNode, bound rtreeBoundingBox, results []rtreeNode) []rtreeNode {
	if node == nil {
		return results
	}
	for _, e := range node.Items {
		if !overlaps(e.getBound(), bound) {
			continue
		}

		if !node.isLeafNode() {
			results = rt.searchNode(e, bound, results)
			continue
		}

		results = append(results, *e)
	}
	return results
}

// point is a lat/lon query point used by nearest-neighbor lookups.
type point struct {
	Lat float64
	Lon float64
}

// minDist computes the distance from a point to a rectangle; zero if the
// point is inside the rectangle.
func (p point) minDist(r rtreeBoundingBox) float64 {
	rLat, rLon := 0.0, 0.0
	if p.Lat < r.edges[0][0] {
		rLat = r.edges[0][0]
	} else if p.Lat > r.edges[0][1] {
		rLat = r.edges[0][1]
	} else {
		rLat = p.Lat
	}

	if p.Lon < r.edges[1][0] {
		rLon = r.edges[1][0]
	} else if p.Lon > r.edges[1][1] {
		rLon = r.edges[1][1]
	} else {
		rLon = p.Lon
	}

	return geo.HaversineDistance(p.Lat, p.Lon, rLat, rLon)
}

// object is a spatial index leaf: a named region centroid used to resolve
// a projected point to a human-readable label.
type object struct {
	ID  string
	Lat float64
	Lon float64
}

func (o *object) getBound() rtreeBoundingBox {
	return newRtreeBoundingBox(2, []float64{o.Lat - 0.0001, o.Lon - 0.0001}, []float64{o.Lat + 0.0001, o.Lon + 0.0001})
}

func (rt *rtree) nearestNeighbor(p point, n *rtreeNode, nearest rtreeNode, nnDistTemp float64) (rtreeNode, float64) {
	if n == nil {
		return nearest, nnDistTemp
	}
	if n.IsLeaf {
		for _, item := range n.Items {
			dist := geo.HaversineDistance(p.Lat, p.Lon, item.Leaf.Lat, item.Leaf.Lon)
			if dist < nnDistTemp {
				nnDistTemp = dist
				nearest = *item
			}
		}
	} else {
		minMaxDistM := math.Inf(1)
		for _, e := range n.Items {
			minMaxDistM = math.Min(minMaxDistM, p.minMaxDist(e.getBound()))
		}

		last := len(n.Items)
		for i := 0; i < last; i++ {
			if p.minDist(n.Items[i].getBound()) <= minMaxDistM {
				nearest, nnDistTemp = rt.nearestNeighbor(p, n.Items[i], nearest, nnDistTemp)
				for j := i + 1; j < last; j++ {
					if p.minDist(n.Items[j].getBound()) > nnDistTemp {
						last = j
					}
				}
			}
		}
	}
	return nearest, nnDistTemp
}

// minMaxDist bounds the maximum possible distance to the nearest point of r.
func (p point) minMaxDist(r rtreeBoundingBox) float64 {
	rmk := 0.0
	rMi := 0.0

	if p.Lat <= (r.edges[0][0]+r.edges[0][1])/2.0 {
		rmk = r.edges[0][0]
	} else {
		rmk = r.edges[0][1]
	}
	minMaxDistLatDim := math.Pow(p.Lat-rmk, 2)

	if p.Lon >= (r.edges[1][0]+r.edges[1][1])/2.0 {
		rMi = r.edges[1][0]
	} else {
		rMi = r.edges[1][1]
	}
	minMaxDistLatDim += math.Pow(p.Lon-rMi, 2)

	if p.Lon <= (r.edges[1][0]+r.edges[1][1])/2.0 {
		rmk = r.edges[1][0]
	} else {
		rmk = r.edges[1][1]
	}
	minMaxDistLonDim := math.Pow(p.Lon-rmk, 2)

	if p.Lat >= (r.edges[0][0]+r.edges[0][1])/2.0 {
		rMi = r.edges[0][0]
	} else {
		rMi = r.edges[0][1]
	}
	minMaxDistLonDim += math.Pow(p.Lat-rMi, 2)

	if minMaxDistLatDim < minMaxDistLonDim {
		return minMaxDistLatDim
	}
	return minMaxDistLonDim
}

func (rt *rtree) improvedNearestNeighbor(p point) rtreeNode {
	nearest, _ := rt.nearestNeighbor(p, rt.root, rtreeNode{}, math.Inf(1))
	return nearest
}
