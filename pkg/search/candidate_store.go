package search

import (
	"sort"

	"github.com/bootinge/omim/pkg/datastructure"
	"github.com/bootinge/omim/pkg/geo"
)

// candidateStore holds the three parallel bounded max-queues,
// each ordered by a different criterion over lightweight TrieHits. Capacity
// is 2×resultsNeeded per queue; insertion dedupes by FeatureKey.
type candidateStore struct {
	byRank             *datastructure.BoundedQueue[datastructure.TrieHit]
	byViewportDistance *datastructure.BoundedQueue[datastructure.TrieHit]
	byUserDistance     *datastructure.BoundedQueue[datastructure.TrieHit]
}

func newCandidateStore(resultsNeeded uint32, viewportCenter datastructure.Point, userPos datastructure.Position) *candidateStore {
	capacity := int(2 * resultsNeeded)
	keyFn := func(h datastructure.TrieHit) datastructure.FeatureKey { return h.Key }

	distanceTo := func(p datastructure.Point) float64 {
		return geo.HaversineDistance(p.Lat, p.Lon, viewportCenter.Lat, viewportCenter.Lon)
	}

	return &candidateStore{
		byRank: datastructure.NewBoundedQueue(capacity, func(a, b datastructure.TrieHit) bool {
			return a.Rank > b.Rank
		}, keyFn),
		byViewportDistance: datastructure.NewBoundedQueue(capacity, func(a, b datastructure.TrieHit) bool {
			return distanceTo(a.Point) < distanceTo(b.Point)
		}, keyFn),
		byUserDistance: datastructure.NewBoundedQueue(capacity, func(a, b datastructure.TrieHit) bool {
			return userPos.DistanceToKM(a.Point) < userPos.DistanceToKM(b.Point)
		}, keyFn),
	}
}

// offer inserts hit into every queue it qualifies for.
func (s *candidateStore) offer(hit datastructure.TrieHit) {
	s.byRank.Insert(hit)
	s.byViewportDistance.Insert(hit)
	s.byUserDistance.Insert(hit)
}

// distinct returns the union of all three queues, deduplicated by
// FeatureKey and sorted by it, giving the ranker a stable input order
// regardless of the queues' internal heap order.
func (s *candidateStore) distinct() []datastructure.TrieHit {
	seen := make(map[datastructure.FeatureKey]datastructure.TrieHit)
	for _, h := range s.byRank.Items() {
		seen[h.Key] = h
	}
	for _, h := range s.byViewportDistance.Items() {
		if _, ok := seen[h.Key]; !ok {
			seen[h.Key] = h
		}
	}
	for _, h := range s.byUserDistance.Items() {
		if _, ok := seen[h.Key]; !ok {
			seen[h.Key] = h
		}
	}
	out := make([]datastructure.TrieHit, 0, len(seen))
	for _, h := range seen {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Key.Tile != out[j].Key.Tile {
			return out[i].Key.Tile < out[j].Key.Tile
		}
		return out[i].Key.Offset < out[j].Key.Offset
	})
	return out
}
