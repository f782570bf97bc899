package usecases

import (
	"context"

	"github.com/bootinge/omim/pkg/datastructure"
	"github.com/bootinge/omim/pkg/region"
	"github.com/bootinge/omim/pkg/search"

	"go.uber.org/zap"
)

// SearcherService adapts the pipeline to controllers.SearchService, the
// same thin translation role a SearcherService plays between an
// inverted-index Searcher and the HTTP controllers.
type SearcherService struct {
	log      *zap.Logger
	searcher Searcher
	resolver RegionResolver
}

func New(log *zap.Logger, searcher Searcher, resolver RegionResolver) *SearcherService {
	return &SearcherService{
		log:      log,
		searcher: searcher,
		resolver: resolver,
	}
}

func (s *SearcherService) Search(query string, position datastructure.Position, resultsNeeded int) ([]search.FinalResult, error) {
	sink := &search.SliceSink{}
	if err := s.searcher.Search(context.Background(), position, query, uint32(resultsNeeded), sink); err != nil {
		return nil, err
	}
	return sink.Results, nil
}

// Autocomplete reuses the same pipeline: the query normalizer already
// treats a bare trailing token as a prefix, so a distinct
// autocomplete code path would just duplicate Search.
func (s *SearcherService) Autocomplete(query string, position datastructure.Position, resultsNeeded int) ([]search.FinalResult, error) {
	return s.Search(query, position, resultsNeeded)
}

func (s *SearcherService) ReverseGeocoding(lat, lon float64) region.Label {
	if s.resolver == nil {
		return region.Label{}
	}
	return s.resolver.Resolve(datastructure.Point{Lat: lat, Lon: lon})
}
