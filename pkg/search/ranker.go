package search

import (
	"sort"
	"strconv"

	"github.com/bootinge/omim/pkg/datastructure"
	"github.com/bootinge/omim/pkg/geo"
)

// dedupLinear sorts by lessLinearTypes (groups
// equivalent linear features, e.g. two name fragments of the same road),
// then drops runs of equals under equalLinearTypes, keeping the first.
func dedupLinear(candidates []datastructure.Candidate) []datastructure.Candidate {
	if len(candidates) == 0 {
		return candidates
	}
	sorted := append([]datastructure.Candidate(nil), candidates...)
	sort.SliceStable(sorted, func(i, j int) bool { return lessLinearTypes(sorted[i], sorted[j]) })

	out := make([]datastructure.Candidate, 0, len(sorted))
	for i, c := range sorted {
		if i > 0 && equalLinearTypes(sorted[i-1], c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func typesKey(types []int) string {
	if len(types) == 0 {
		return ""
	}
	sorted := append([]int(nil), types...)
	sort.Ints(sorted)
	b := make([]byte, 0, len(sorted)*4)
	for _, t := range sorted {
		b = strconv.AppendInt(b, int64(t), 10)
		b = append(b, ',')
	}
	return string(b)
}

func lessLinearTypes(a, b datastructure.Candidate) bool {
	if a.Linear != b.Linear {
		return !a.Linear
	}
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return typesKey(a.Types) < typesKey(b.Types)
}

// equalLinearTypes only merges linear candidates: two point features
// sharing a name (two distinct cafes both called "Central") must not
// collapse into one.
func equalLinearTypes(a, b datastructure.Candidate) bool {
	return a.Linear && b.Linear && a.Name == b.Name && a.CountryName == b.CountryName && typesKey(a.Types) == typesKey(b.Types)
}

// rankPositions sorts a copy of candidates by less and assigns each its
// rank position: 0 for the first, incrementing only when the sorted
// predecessor is strictly better than the current element — equal runs under less therefore share a rank. Positions are
// returned aligned to the input slice's original order.
func rankPositions(candidates []datastructure.Candidate, less func(a, b datastructure.Candidate) bool) []int {
	idx := make([]int, len(candidates))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return less(candidates[idx[i]], candidates[idx[j]]) })

	ranks := make([]int, len(candidates))
	position := 0
	for k, i := range idx {
		if k > 0 && less(candidates[idx[k-1]], candidates[i]) {
			position++
		}
		ranks[i] = position
	}
	return ranks
}

func distanceKM(a, b datastructure.Point) float64 {
	return geo.HaversineDistance(a.Lat, a.Lon, b.Lat, b.Lon)
}

// rank runs a three-pass ranking under byRank,
// byViewportDistance, and byUserDistance, then the composite lexicographic
// order over each Candidate's sorted rank triple.
func rank(candidates []datastructure.Candidate, viewportCenter datastructure.Point, userPos datastructure.Position) []datastructure.RankedEntry {
	deduped := dedupLinear(candidates)
	if len(deduped) == 0 {
		return nil
	}

	byRankLess := func(a, b datastructure.Candidate) bool { return a.Rank > b.Rank }
	byViewportLess := func(a, b datastructure.Candidate) bool {
		return distanceKM(a.Point, viewportCenter) < distanceKM(b.Point, viewportCenter)
	}
	byUserLess := func(a, b datastructure.Candidate) bool {
		return userPos.DistanceToKM(a.Point) < userPos.DistanceToKM(b.Point)
	}

	rRank := rankPositions(deduped, byRankLess)
	rView := rankPositions(deduped, byViewportLess)
	rUser := rankPositions(deduped, byUserLess)

	entries := make([]datastructure.RankedEntry, len(deduped))
	for i, c := range deduped {
		triple := [3]int{rRank[i], rView[i], rUser[i]}
		sort.Ints(triple[:])
		entries[i] = datastructure.RankedEntry{Candidate: c, Ranks: triple}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Ranks, entries[j].Ranks
		for k := 0; k < 3; k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
	return entries
}
