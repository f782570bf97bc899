// Package search implements the ranked retrieval core: the Viewport Offset
// Cache, Trie Matcher, Candidate Store, Promoter, Ranker/Fuser, Suggester,
// and the Controller that wires them together. This is a direct Go
// transliteration of search_query.cpp, restructured into idiomatic Go:
// explicit error returns instead of exceptions, value types instead of
// shared_ptr, and a discriminated Ok/Canceled result at stage boundaries
// instead of a thrown sentinel.
package search

// Sentinel tuning constants.
const (
	TokenCap             = 31
	ViewportScaleFactor  = 3.0
	ScaleBias            = 7
	DefaultPreferredLang = "en"
)

// Config is the options object: preferredLanguage,
// resultsNeeded, and the sentinel constants above (not user-configurable,
// listed here only for documentation).
type Config struct {
	PreferredLanguage string
	ResultsNeeded     uint32
}

// WithDefaults fills zero-valued fields with their spec defaults.
func (c Config) WithDefaults() Config {
	if c.PreferredLanguage == "" {
		c.PreferredLanguage = DefaultPreferredLang
	}
	if c.ResultsNeeded == 0 {
		c.ResultsNeeded = 10
	}
	return c
}
