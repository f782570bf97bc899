//go:build wireinject

//go:generate wire
package di

import (
	"github.com/bootinge/omim/pkg/di/config"
	dictionary_di "github.com/bootinge/omim/pkg/di/dictionary"
	kv_di "github.com/bootinge/omim/pkg/di/kv"
	logger_di "github.com/bootinge/omim/pkg/di/logger"
	region_di "github.com/bootinge/omim/pkg/di/region"
	searcher_di "github.com/bootinge/omim/pkg/di/searcher"
	searchHttp "github.com/bootinge/omim/pkg/http"
	"github.com/bootinge/omim/pkg/http/usecases"
	"github.com/bootinge/omim/pkg/region"
	"github.com/bootinge/omim/pkg/search"

	"github.com/google/wire"
)

var defaultSet = wire.NewSet(
	config.New,
	logger_di.New,
	kv_di.New,
	region_di.New,
	dictionary_di.New,
	searcher_di.New,
	wire.Bind(new(usecases.Searcher), new(*search.Controller)),
	wire.Bind(new(usecases.RegionResolver), new(*region.Resolver)),
)

var searcherSet = wire.NewSet(
	defaultSet,
	NewSearcherService,
	NewSearchAPIServer,
)

func InitializeSearcherService() (*searchHttp.Server, func(), error) {

	panic(wire.Build(searcherSet))
}
