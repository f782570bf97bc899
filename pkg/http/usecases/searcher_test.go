package usecases

import (
	"testing"

	"github.com/bootinge/omim/pkg/datastructure"
	"github.com/bootinge/omim/pkg/region"
	"github.com/bootinge/omim/pkg/search"
	"github.com/bootinge/omim/pkg/tile"
	"github.com/bootinge/omim/pkg/tile/memtile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct{ label region.Label }

func (s stubResolver) Resolve(datastructure.Point) region.Label { return s.label }

func TestSearcherServiceSearchDelegatesToController(t *testing.T) {
	info := tile.Info{ID: 1, Type: tile.TypeWorld}
	tl := memtile.New(info, "")
	tl.AddFeature(1, 5, datastructure.Point{Lat: 1, Lon: 1}, []tile.NameVariant{{Lang: "en", Name: "X"}}, nil, false)
	set := memtile.NewSet(tl)

	ctrl := search.NewController(set, nil, nil, search.Config{}, nil)
	ctrl.SetViewport(datastructure.Viewport{MinLat: -90, MinLon: -180, MaxLat: 90, MaxLon: 180})

	svc := New(nil, ctrl, stubResolver{})
	results, err := svc.Search("X", datastructure.NoPosition, 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "X", results[0].Name)
}

func TestSearcherServiceReverseGeocodingUsesResolver(t *testing.T) {
	svc := New(nil, nil, stubResolver{label: region.Label{District: "Testland"}})
	label := svc.ReverseGeocoding(1, 1)
	assert.Equal(t, "Testland", label.District)
}

func TestSearcherServiceReverseGeocodingNilResolverReturnsEmptyLabel(t *testing.T) {
	svc := New(nil, nil, nil)
	assert.Equal(t, region.Label{}, svc.ReverseGeocoding(1, 1))
}
