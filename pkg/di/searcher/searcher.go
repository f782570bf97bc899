package searcher_di

import (
	"context"
	"fmt"

	"github.com/bootinge/omim/pkg/datastructure"
	"github.com/bootinge/omim/pkg/kvdb"
	"github.com/bootinge/omim/pkg/region"
	"github.com/bootinge/omim/pkg/search"
	"github.com/bootinge/omim/pkg/tile/memtile"

	ansi "github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// New rehydrates the tile catalogue persisted in db into an in-memory
// tile.Set and wires the search Controller over it. Populating a tile's
// trie and feature records is out of scope here; a real deployment loads those separately
// through memtile.Tile.AddFeature/AddCategoryFeature before the tile is
// handed to the controller, or supplies its own tile.Set implementation
// entirely, matching the external Tile Set contract.
func New(ctx context.Context, db *kvdb.KVDB, resolver *region.Resolver, dictionary *search.SuggestionDictionary, log *zap.Logger) (*search.Controller, error) {
	records, err := db.AllTileRecords()
	if err != nil {
		return nil, err
	}

	bar := progressbar.NewOptions(len(records),
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][1/1]Loading tile catalogue..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	fmt.Println("")

	tiles := make([]*memtile.Tile, 0, len(records))
	for _, rec := range records {
		tiles = append(tiles, memtile.New(rec.Info, rec.CountryName))
		_ = bar.Add(1)
	}

	viper.SetDefault("PREFERRED_LANGUAGE", "en")
	viper.SetDefault("RESULTS_NEEDED", 10)
	cfg := search.Config{
		PreferredLanguage: viper.GetString("PREFERRED_LANGUAGE"),
		ResultsNeeded:     uint32(viper.GetInt("RESULTS_NEEDED")),
	}

	set := memtile.NewSet(tiles...)
	ctrl := search.NewController(set, resolver, dictionary, cfg, log)

	viper.SetDefault("WORLD_VIEWPORT", true)
	if viper.GetBool("WORLD_VIEWPORT") {
		ctrl.SetViewport(datastructure.Viewport{MinLat: -90, MinLon: -180, MaxLat: 90, MaxLon: 180})
	}

	return ctrl, nil
}
