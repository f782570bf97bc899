package search

import (
	"github.com/bootinge/omim/pkg/datastructure"
	"github.com/bootinge/omim/pkg/errs"
	"github.com/bootinge/omim/pkg/langscore"
	"github.com/bootinge/omim/pkg/tile"
)

// promote resolves each distinct TrieHit to a full Candidate: it
// caches one lease per tile so a tile touched by several hits is locked only
// once, reads the feature record, and scores every name variant to pick the
// best match under scorer. Candidates come out in hits order, not grouped
// by tile, so the caller's ordering of hits (e.g. by FeatureKey) carries
// straight through instead of being reshuffled by tile-map iteration.
func promote(sc *searchContext, hits []datastructure.TrieHit, scorer *langscore.Scorer) []datastructure.Candidate {
	leases := make(map[datastructure.TileID]tile.Lease)
	failed := make(map[datastructure.TileID]bool)
	defer func() {
		for _, lease := range leases {
			lease.Release()
		}
	}()

	candidates := make([]datastructure.Candidate, 0, len(hits))
	for _, h := range hits {
		if canceled(sc) {
			return candidates
		}
		tileID := h.Key.Tile
		if failed[tileID] {
			continue
		}
		lease, ok := leases[tileID]
		if !ok {
			lease, ok = sc.tiles.Lock(sc.ctx, tileID)
			if !ok {
				sc.logError("feature resolution failed: tile unavailable", errs.ErrFeatureResolutionFailed)
				failed[tileID] = true
				continue
			}
			leases[tileID] = lease
		}

		feat, ok := lease.FeatureAt(h.Key.Offset)
		if !ok {
			continue
		}
		name, penalty := bestName(feat.Names, scorer)
		candidates = append(candidates, datastructure.Candidate{
			Key:         h.Key,
			Rank:        h.Rank,
			Point:       feat.Point,
			Name:        name,
			NamePenalty: penalty,
			CountryName: lease.CountryName(),
			Types:       feat.Types,
			Linear:      feat.Linear,
		})
	}
	return candidates
}

// bestName iterates every (lang, name) variant and keeps the one with the
// minimum scorer penalty, ties resolved by iteration order. A feature with no names at all promotes with name="" and the worst
// penalty, letting the ranker demote it naturally.
func bestName(names []tile.NameVariant, scorer *langscore.Scorer) (string, uint32) {
	bestPenalty := uint32(langscore.WorstPenalty)
	bestVal := ""
	found := false
	for _, nv := range names {
		penalty := scorer.Score(nv.Lang, nv.Name)
		if !found || penalty < bestPenalty {
			bestPenalty = penalty
			bestVal = nv.Name
			found = true
		}
	}
	return bestVal, bestPenalty
}
