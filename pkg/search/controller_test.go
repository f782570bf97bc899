package search

import (
	"context"
	"testing"

	"github.com/bootinge/omim/pkg/datastructure"
	"github.com/bootinge/omim/pkg/tile"
	"github.com/bootinge/omim/pkg/tile/memtile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func worldViewport() datastructure.Viewport {
	return datastructure.Viewport{MinLat: -90, MinLon: -180, MaxLat: 90, MaxLon: 180}
}

func TestSearchLatLonFastPath(t *testing.T) {
	set := memtile.NewSet()
	ctrl := NewController(set, nil, nil, Config{}, nil)
	ctrl.SetViewport(worldViewport())

	sink := &SliceSink{}
	err := ctrl.Search(context.Background(), datastructure.NoPosition, "55.7558, 37.6176", 10, sink)
	require.NoError(t, err)
	require.NotEmpty(t, sink.Results)
	assert.True(t, sink.Results[0].IsLatLon)
	assert.InDelta(t, 55.7558, sink.Results[0].LatLon.Lat, 1e-6)
	assert.InDelta(t, 37.6176, sink.Results[0].LatLon.Lon, 1e-6)
}

func TestSearchPrefixSuggestion(t *testing.T) {
	set := memtile.NewSet()
	dict := NewSuggestionDictionary(map[string]int{"cafe": 3})
	ctrl := NewController(set, nil, dict, Config{}, nil)
	ctrl.SetViewport(worldViewport())

	sink := &SliceSink{}
	err := ctrl.Search(context.Background(), datastructure.NoPosition, "caf", 10, sink)
	require.NoError(t, err)

	found := false
	for _, r := range sink.Results {
		if r.Name == "cafe" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestSearchViewportExclusionAndExpansion(t *testing.T) {
	pt := datastructure.Point{Lat: 10, Lon: 10}
	info := tile.Info{ID: 1, Type: tile.TypeCountry, LimitRect: datastructure.Viewport{MinLat: 0, MinLon: 0, MaxLat: 20, MaxLon: 20}, ScaleLo: 1, ScaleHi: 17}
	tl := memtile.New(info, "Testland")
	tl.AddFeature(1, 5, pt, []tile.NameVariant{{Lang: "en", Name: "X"}}, nil, false)
	set := memtile.NewSet(tl)

	ctrl := NewController(set, nil, nil, Config{}, nil)
	// Viewport far away from the feature: excluded.
	ctrl.SetViewport(datastructure.Viewport{MinLat: 40, MinLon: 40, MaxLat: 41, MaxLon: 41})
	sink := &SliceSink{}
	require.NoError(t, ctrl.Search(context.Background(), datastructure.NoPosition, "X", 10, sink))
	assert.Empty(t, sink.Results)

	// Viewport widened to include the feature's tile and ExtendedViewport.
	ctrl.SetViewport(datastructure.Viewport{MinLat: 8, MinLon: 8, MaxLat: 12, MaxLon: 12})
	sink2 := &SliceSink{}
	require.NoError(t, ctrl.Search(context.Background(), datastructure.NoPosition, "X", 10, sink2))
	require.NotEmpty(t, sink2.Results)
	assert.Equal(t, "X", sink2.Results[0].Name)
}

func TestSearchLanguagePreference(t *testing.T) {
	pt := datastructure.Point{Lat: 55.75, Lon: 37.62}
	info := tile.Info{ID: 1, Type: tile.TypeWorld}
	tl := memtile.New(info, "")
	tl.AddFeature(1, 5, pt, []tile.NameVariant{
		{Lang: "en", Name: "Red Square"},
		{Lang: "ru", Name: "Krasnaya Ploshchad"},
		{Lang: "default", Name: "Plaza Roja"},
	}, nil, false)
	set := memtile.NewSet(tl)

	ctrlRu := NewController(set, nil, nil, Config{PreferredLanguage: "ru"}, nil)
	ctrlRu.SetViewport(worldViewport())
	sinkRu := &SliceSink{}
	require.NoError(t, ctrlRu.Search(context.Background(), datastructure.NoPosition, "krasnaya", 10, sinkRu))
	require.NotEmpty(t, sinkRu.Results)
	assert.Equal(t, "Krasnaya Ploshchad", sinkRu.Results[0].Name)

	ctrlEn := NewController(set, nil, nil, Config{PreferredLanguage: "en"}, nil)
	ctrlEn.SetViewport(worldViewport())
	sinkEn := &SliceSink{}
	require.NoError(t, ctrlEn.Search(context.Background(), datastructure.NoPosition, "red square", 10, sinkEn))
	require.NotEmpty(t, sinkEn.Results)
	assert.Equal(t, "Red Square", sinkEn.Results[0].Name)
}

func TestSearchCategorySynonym(t *testing.T) {
	pt := datastructure.Point{Lat: 1, Lon: 1}
	info := tile.Info{ID: 1, Type: tile.TypeWorld}
	tl := memtile.New(info, "")
	tl.AddFeature(1, 5, pt, []tile.NameVariant{{Lang: "en", Name: "Mamma Mia"}}, nil, false)
	tl.AddCategoryFeature(1, "restaurant")
	set := memtile.NewSet(tl)

	ctrl := NewController(set, nil, nil, Config{}, nil)
	ctrl.SetViewport(worldViewport())
	sink := &SliceSink{}
	require.NoError(t, ctrl.Search(context.Background(), datastructure.NoPosition, "pizza mamma", 10, sink))
	require.NotEmpty(t, sink.Results)
	assert.Equal(t, "Mamma Mia", sink.Results[0].Name)
}

func TestSearchCancellationBeforeEntryYieldsNoResults(t *testing.T) {
	pt := datastructure.Point{Lat: 1, Lon: 1}
	info := tile.Info{ID: 1, Type: tile.TypeWorld}
	tl := memtile.New(info, "")
	tl.AddFeature(1, 5, pt, []tile.NameVariant{{Lang: "en", Name: "X"}}, nil, false)
	set := memtile.NewSet(tl)

	ctrl := NewController(set, nil, nil, Config{}, nil)
	ctrl.SetViewport(worldViewport())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sink := &SliceSink{}
	err := ctrl.Search(ctx, datastructure.NoPosition, "X", 10, sink)
	assert.Error(t, err)
	assert.Empty(t, sink.Results)
}

func TestSearchEmptyQueryYieldsNoFeatureResults(t *testing.T) {
	set := memtile.NewSet()
	ctrl := NewController(set, nil, nil, Config{}, nil)
	ctrl.SetViewport(worldViewport())

	sink := &SliceSink{}
	require.NoError(t, ctrl.Search(context.Background(), datastructure.NoPosition, "   ", 10, sink))
	assert.Empty(t, sink.Results)
}
