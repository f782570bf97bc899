package controllers

import (
	"github.com/bootinge/omim/pkg/datastructure"
	"github.com/bootinge/omim/pkg/region"
	"github.com/bootinge/omim/pkg/search"
)

// SearchService is the HTTP layer's boundary onto the search pipeline: the
// handlers below never see a *search.Controller directly, keeping the
// controllers/usecases split clean.
type SearchService interface {
	Search(query string, position datastructure.Position, resultsNeeded int) ([]search.FinalResult, error)
	Autocomplete(query string, position datastructure.Position, resultsNeeded int) ([]search.FinalResult, error)
	ReverseGeocoding(lat, lon float64) region.Label
}
