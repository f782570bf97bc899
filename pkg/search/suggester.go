package search

import (
	"github.com/tchap/go-patricia/v2/patricia"
)

// SuggestionDictionary is the static prefix dictionary of "ordered pairs
// (utf8 string, minMatchLength)". Grounded in
// bastiangx-wordserve's go-patricia usage: the original engine's
// MatchForSuggestions does a linear scan (StartsWith(s, token), entry s
// starts with query token) over StringsToSuggestVectorT; here the
// dictionary is trie-backed like the name tries in pkg/tile, using
// VisitSubtree to find every dictionary entry that has target as a prefix
// in one trie walk instead of scanning every entry.
type SuggestionDictionary struct {
	trie *patricia.Trie
}

// NewSuggestionDictionary builds a dictionary from (text, minMatchLength)
// pairs.
func NewSuggestionDictionary(entries map[string]int) *SuggestionDictionary {
	trie := patricia.NewTrie()
	for text, minLen := range entries {
		trie.Insert(patricia.Prefix(text), minLen)
	}
	return &SuggestionDictionary{trie: trie}
}

// matches returns every dictionary entry that has target as a string prefix
// and whose minMatchLength does not exceed len(target).
func (d *SuggestionDictionary) matches(target string) []string {
	if d == nil || target == "" {
		return nil
	}
	var out []string
	d.trie.VisitSubtree(patricia.Prefix(target), func(prefix patricia.Prefix, item patricia.Item) error {
		minLen := item.(int)
		if minLen <= len(target) {
			out = append(out, string(prefix))
		}
		return nil
	})
	return out
}

// suggest fires only when the query reduces to a bare
// prefix (no tokens) or a single token, matching against dictionary.
func suggest(tokens []string, prefix string, dictionary *SuggestionDictionary) []string {
	if dictionary == nil {
		return nil
	}
	if len(tokens) == 0 && prefix != "" {
		return dictionary.matches(prefix)
	}
	if len(tokens) == 1 {
		return dictionary.matches(tokens[0] + " " + prefix)
	}
	return nil
}
