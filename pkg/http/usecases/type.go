package usecases

import (
	"context"

	"github.com/bootinge/omim/pkg/datastructure"
	"github.com/bootinge/omim/pkg/region"
	"github.com/bootinge/omim/pkg/search"
)

// Searcher is the pipeline boundary this package adapts to
// controllers.SearchService, satisfied by *search.Controller.
type Searcher interface {
	Search(ctx context.Context, position datastructure.Position, query string, resultsNeeded uint32, sink search.Sink) error
}

// RegionResolver is the reverse-geocode boundary, satisfied by
// *region.Resolver.
type RegionResolver interface {
	Resolve(p datastructure.Point) region.Label
}
