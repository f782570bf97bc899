package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchLatLonDecimalPair(t *testing.T) {
	got, ok := MatchLatLon("55.7558, 37.6176")
	require.True(t, ok)
	assert.InDelta(t, 55.7558, got.Lat, 1e-9)
	assert.InDelta(t, 37.6176, got.Lon, 1e-9)
}

func TestMatchLatLonHemisphereMarkers(t *testing.T) {
	got, ok := MatchLatLon("7.75S, 110.35E")
	require.True(t, ok)
	assert.InDelta(t, -7.75, got.Lat, 1e-9)
	assert.InDelta(t, 110.35, got.Lon, 1e-9)
}

func TestMatchLatLonRejectsOutOfRange(t *testing.T) {
	_, ok := MatchLatLon("200, 37.6176")
	assert.False(t, ok)
}

func TestMatchLatLonRejectsGarbage(t *testing.T) {
	_, ok := MatchLatLon("red square")
	assert.False(t, ok)
}

func TestMatchLatLonDMS(t *testing.T) {
	got, ok := MatchLatLon(`55°45'20.9"N 37°37'03.4"E`)
	require.True(t, ok)
	assert.InDelta(t, 55.7558, got.Lat, 1e-3)
	assert.InDelta(t, 37.6176, got.Lon, 1e-3)
}
