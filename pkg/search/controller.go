package search

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/bootinge/omim/pkg/categories"
	"github.com/bootinge/omim/pkg/datastructure"
	"github.com/bootinge/omim/pkg/errs"
	"github.com/bootinge/omim/pkg/langscore"
	"github.com/bootinge/omim/pkg/query"
	"github.com/bootinge/omim/pkg/region"
	"github.com/bootinge/omim/pkg/tile"
	"go.uber.org/zap"
)

// Controller wires the pipeline end to end. A single Controller
// must not run two Searches concurrently; callers serialize through mu.
type Controller struct {
	mu sync.Mutex

	tiles      tile.Set
	cache      *offsetCache
	scorer     *langscore.Scorer
	catTable   *categories.Table
	resolver   *region.Resolver
	dictionary *SuggestionDictionary
	log        *zap.Logger

	cfg    Config
	cancel atomic.Bool
}

// NewController builds a Controller over tiles, using resolver for region
// labels and dictionary for suggestions (either may be nil).
func NewController(tiles tile.Set, resolver *region.Resolver, dictionary *SuggestionDictionary, cfg Config, log *zap.Logger) *Controller {
	cfg = cfg.WithDefaults()
	return &Controller{
		tiles:      tiles,
		cache:      newOffsetCache(),
		scorer:     langscore.NewScorer(cfg.PreferredLanguage),
		catTable:   categories.NewTable(),
		resolver:   resolver,
		dictionary: dictionary,
		log:        log,
		cfg:        cfg,
	}
}

// SetViewport is idempotent: a no-op if rect equals the current one and the
// cache is valid.
func (c *Controller) SetViewport(rect datastructure.Viewport) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.setViewport(rect)
}

// SetPreferredLanguage updates the tier-0 language for name scoring.
func (c *Controller) SetPreferredLanguage(lang string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg.PreferredLanguage = lang
	c.scorer.SetPreferredLanguage(lang)
}

// ClearCache invalidates the offset cache only, leaving the viewport as is.
func (c *Controller) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.invalidate()
}

// InvalidateTiles is the explicit hook the offset cache needs but never got:
// the source notes a TODO to invalidate the offset cache when tiles are
// added or removed but never implements it. Callers must invoke this
// whenever the tile set's membership changes.
func (c *Controller) InvalidateTiles() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.invalidate()
}

// Cancel sets the write-once-per-search cancel flag from any goroutine.
func (c *Controller) Cancel() {
	c.cancel.Store(true)
}

// Search runs the full pipeline, honoring cancellation between
// stages and inside the matcher, and pushes results to sink in the final
// composite order.
func (c *Controller) Search(ctx context.Context, position datastructure.Position, queryString string, resultsNeeded uint32, sink Sink) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancel.Store(false)

	if resultsNeeded == 0 {
		resultsNeeded = c.cfg.ResultsNeeded
	}

	sc := &searchContext{ctx: ctx, tiles: c.tiles, cancel: &c.cancel, log: c.log}

	normalized := query.Normalize(queryString)
	if len(normalized.Tokens) == 0 && normalized.Prefix == "" {
		return nil
	}

	if canceled(sc) {
		return errs.ErrCanceled
	}

	if latlon, ok := query.MatchLatLon(queryString); ok {
		sink.AddResult(FinalResult{
			LatLon:   datastructure.Point{Lat: latlon.Lat, Lon: latlon.Lon},
			IsLatLon: true,
			LatPrec:  latlon.LatPrec,
			LonPrec:  latlon.LonPrec,
		})
	}

	if canceled(sc) {
		return errs.ErrCanceled
	}
	for _, text := range suggest(normalized.Tokens, normalized.Prefix, c.dictionary) {
		sink.AddResult(FinalResult{Name: text})
	}

	if canceled(sc) {
		return errs.ErrCanceled
	}
	return c.searchFeatures(sc, normalized, position, resultsNeeded, sink)
}

func (c *Controller) searchFeatures(sc *searchContext, normalized query.Normalized, position datastructure.Position, resultsNeeded uint32, sink Sink) error {
	infos := c.tiles.Tiles()

	if !c.cache.valid {
		if err := c.cache.rebuild(sc, infos); err != nil {
			if err == errCanceled {
				return errs.ErrCanceled
			}
			return err
		}
	}

	viewportCenter := c.cache.viewport.Center()
	store := newCandidateStore(resultsNeeded, viewportCenter, position)
	langs := languagePriority(c.cfg.PreferredLanguage)

	if err := matchTiles(sc, infos, c.cache, normalized.Tokens, normalized.Prefix, langs, c.catTable, store); err != nil {
		if err == errCanceled {
			return errs.ErrCanceled
		}
		return err
	}

	candidates := promote(sc, store.distinct(), c.scorer)
	entries := rank(candidates, viewportCenter, position)

	for _, entry := range entries {
		if canceled(sc) {
			return errs.ErrCanceled
		}
		sink.AddResult(generateFinalResult(entry.Candidate, c.resolver, c.catTable, position))
	}
	return nil
}
