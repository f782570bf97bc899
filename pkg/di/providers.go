package di

import (
	"context"

	searchHttp "github.com/bootinge/omim/pkg/http"
	"github.com/bootinge/omim/pkg/http/http-router/controllers"
	"github.com/bootinge/omim/pkg/http/usecases"

	"go.uber.org/zap"
)

func NewSearcherService(log *zap.Logger, searcher usecases.Searcher, resolver usecases.RegionResolver) controllers.SearchService {
	return usecases.New(log, searcher, resolver)
}

func NewSearchAPIServer(ctx context.Context, log *zap.Logger,
	searchService controllers.SearchService) (*searchHttp.Server, error) {
	api := searchHttp.NewServer(log)

	apiService, err := api.Use(
		ctx, log, searchService,
	)
	if err != nil {
		return nil, err
	}

	return apiService, nil
}
