package search

import (
	"sort"

	"github.com/bootinge/omim/pkg/categories"
	"github.com/bootinge/omim/pkg/datastructure"
	"github.com/bootinge/omim/pkg/tile"
)

// languagePriority builds the three-tier allowed language set:
// tier 0 preferred, tier 1 int_name/en, tier 2 default. Duplicates (e.g.
// preferred == "en") collapse naturally since matching is by set membership.
func languagePriority(preferred string) []string {
	langs := []string{preferred, "int_name", "en", "default"}
	seen := make(map[string]bool, len(langs))
	out := langs[:0]
	for _, l := range langs {
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}

// matchTiles walks every tile in the set, admitting trie hits through each
// tile's FeaturesFilter and forwarding admitted hits to store.
func matchTiles(sc *searchContext, infos []tile.Info, cache *offsetCache, tokens []string, prefix string, langs []string, catTable *categories.Table, store *candidateStore) error {
	for _, info := range infos {
		if canceled(sc) {
			return errCanceled
		}
		if err := matchOneTile(sc, info, cache, tokens, prefix, langs, catTable, store); err != nil {
			return err
		}
	}
	return nil
}

func matchOneTile(sc *searchContext, info tile.Info, cache *offsetCache, tokens []string, prefix string, langs []string, catTable *categories.Table, store *candidateStore) error {
	lease, ok := sc.tiles.Lock(sc.ctx, info.ID)
	if !ok {
		sc.logDebug("tile unavailable during trie match", info.ID)
		return nil
	}
	defer lease.Release()

	hits := lease.Trie().MatchTokens(tokens, prefix, langs, catTable.CategoryNamesFor)
	isWorld := info.Type == tile.TypeWorld

	offsets := make([]datastructure.FeatureOffset, 0, len(hits))
	for offset := range hits {
		offsets = append(offsets, offset)
	}
	sort.Slice(offsets, func(i, j int) bool { return offsets[i] < offsets[j] })

	for _, offset := range offsets {
		if canceled(sc) {
			return errCanceled
		}
		if !isWorld && !cache.contains(info.ID, offset) {
			continue
		}
		rank, pt, ok := lease.RankAndPoint(offset)
		if !ok {
			continue
		}
		store.offer(datastructure.TrieHit{
			Key:      datastructure.FeatureKey{Offset: offset, Tile: info.ID},
			Rank:     rank,
			Point:    pt,
			Language: hits[offset],
		})
	}
	return nil
}
