// Package dictionary_di builds the Suggester's static prefix dictionary
// from configuration, the same viper-backed pattern the
// rest of pkg/di uses for options.
package dictionary_di

import (
	"github.com/bootinge/omim/pkg/search"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// New reads a SUGGESTIONS map of entry text to minimum match length. An
// empty map yields a dictionary that never fires (search.suggest already
// treats a nil dictionary this way), so this is safe with no configuration
// present.
func New() *search.SuggestionDictionary {
	viper.SetDefault("SUGGESTIONS", map[string]int{})
	raw := viper.GetStringMap("SUGGESTIONS")
	entries := make(map[string]int, len(raw))
	for k, v := range raw {
		entries[k] = cast.ToInt(v)
	}
	return search.NewSuggestionDictionary(entries)
}
