package search

import (
	"fmt"

	"github.com/bootinge/omim/pkg/categories"
	"github.com/bootinge/omim/pkg/datastructure"
	"github.com/bootinge/omim/pkg/region"
)

// FinalResult is what reaches the caller: a Candidate annotated with a
// human-readable region label and, if the user's position is known, a
// distance string").
type FinalResult struct {
	Key          datastructure.FeatureKey
	Name         string
	Point        datastructure.Point
	CountryName  string
	RegionLabel  region.Label
	DistanceKM   float64
	HasDistance  bool
	DistanceText string
	Types        []string
	Linear       bool

	// LatLon carries a decoded coordinate literal for the synthetic
	// lat/lon fast-path result; zero for feature results.
	LatLon   datastructure.Point
	IsLatLon bool
	LatPrec  int
	LonPrec  int
}

// Sink is the result-sink collaborator: "addResult(finalResult)".
type Sink interface {
	AddResult(FinalResult)
}

// SliceSink is the simplest Sink: it appends every result to a slice, the
// shape a library caller typically wants back from search().
type SliceSink struct {
	Results []FinalResult
}

func (s *SliceSink) AddResult(r FinalResult) {
	s.Results = append(s.Results, r)
}

// generateFinalResult resolves a Candidate to its presentation form: region
// label via infoGetter, distance text if pos is known, and type names via
// the category table.
func generateFinalResult(c datastructure.Candidate, infoGetter *region.Resolver, catTable *categories.Table, pos datastructure.Position) FinalResult {
	label := region.Label{}
	if infoGetter != nil {
		label = infoGetter.Resolve(c.Point)
	}

	typeNames := make([]string, 0, len(c.Types))
	for _, t := range c.Types {
		if name := categories.FeatureTypeToString(categories.Type(t)); name != "" {
			typeNames = append(typeNames, name)
		}
	}

	r := FinalResult{
		Key:         c.Key,
		Name:        c.Name,
		Point:       c.Point,
		CountryName: c.CountryName,
		RegionLabel: label,
		Types:       typeNames,
		Linear:      c.Linear,
	}
	if pos.Known {
		r.DistanceKM = pos.DistanceToKM(c.Point)
		r.HasDistance = true
		r.DistanceText = formatDistanceKM(r.DistanceKM)
	}
	return r
}

func formatDistanceKM(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%d m", int(km*1000))
	}
	return fmt.Sprintf("%.1f km", km)
}
