package region

import (
	"testing"

	"github.com/bootinge/omim/pkg/datastructure"
	"github.com/stretchr/testify/assert"
)

func TestResolverNearestBoundary(t *testing.T) {
	boundaries := []Boundary{
		{Province: "DIY", District: "Sleman", Centroid: datastructure.Point{Lat: -7.75, Lon: 110.35}},
		{Province: "DIY", District: "Bantul", Centroid: datastructure.Point{Lat: -7.90, Lon: 110.32}},
	}
	r := NewResolver(boundaries)

	label := r.Resolve(datastructure.Point{Lat: -7.752, Lon: 110.351})
	assert.Equal(t, "Sleman", label.District)

	label = r.Resolve(datastructure.Point{Lat: -7.905, Lon: 110.322})
	assert.Equal(t, "Bantul", label.District)
}

func TestResolverEmptyResolvesToEmptyLabel(t *testing.T) {
	r := NewResolver(nil)
	label := r.Resolve(datastructure.Point{Lat: 1, Lon: 1})
	assert.Equal(t, Label{}, label)
}
