package memtile

import (
	"context"
	"testing"

	"github.com/bootinge/omim/pkg/datastructure"
	"github.com/bootinge/omim/pkg/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLockReturnsRegisteredTile(t *testing.T) {
	info := tile.Info{ID: 7, Type: tile.TypeCountry}
	tl := New(info, "Testland")
	set := NewSet(tl)

	lease, ok := set.Lock(context.Background(), 7)
	require.True(t, ok)
	assert.Equal(t, "Testland", lease.CountryName())
	assert.Equal(t, info, lease.Info())
}

func TestSetLockUnknownTileMisses(t *testing.T) {
	set := NewSet()
	_, ok := set.Lock(context.Background(), 99)
	assert.False(t, ok)
}

func TestTileAddFeatureIndexesTokensAndRank(t *testing.T) {
	tl := New(tile.Info{ID: 1}, "")
	pt := datastructure.Point{Lat: 55.75, Lon: 37.62}
	tl.AddFeature(42, 5, pt, []tile.NameVariant{{Lang: "en", Name: "Red Square"}}, nil, false)

	hits := tl.Trie().MatchTokens([]string{"red", "square"}, "", []string{"en"}, func(string) []string { return nil })
	assert.Contains(t, hits, datastructure.FeatureOffset(42))

	rank, gotPt, ok := tl.RankAndPoint(42)
	require.True(t, ok)
	assert.EqualValues(t, 5, rank)
	assert.Equal(t, pt, gotPt)

	feat, ok := tl.FeatureAt(42)
	require.True(t, ok)
	require.Len(t, feat.Names, 1)
	assert.Equal(t, "Red Square", feat.Names[0].Name)
}

func TestTileAddCategoryFeatureMatchesSynonym(t *testing.T) {
	tl := New(tile.Info{ID: 1}, "")
	tl.AddCategoryFeature(9, "restaurant")

	categoryNames := func(token string) []string {
		if token == "pizza" {
			return []string{"restaurant"}
		}
		return nil
	}
	hits := tl.Trie().MatchTokens([]string{"pizza"}, "", []string{"en"}, categoryNames)
	assert.Contains(t, hits, datastructure.FeatureOffset(9))
}
