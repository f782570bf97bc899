package tile

import (
	"github.com/bootinge/omim/pkg/datastructure"
	"github.com/tchap/go-patricia/v2/patricia"
)

// CategoriesLang is the reserved root-edge label selecting the categories
// sub-trie. LanguageCode never returns this value, so
// "label < CategoriesLang" and "label == CategoriesLang" partition cleanly.
const CategoriesLang byte = 250

// LanguageCode derives the single-byte root-edge label a language code maps
// to under the trie wire contract. Two languages may hash to the same byte; postings are
// still kept apart because each trie entry stores a per-language map
// (see posting), not a single language tag.
func LanguageCode(lang string) byte {
	h := byte(0)
	for i := 0; i < len(lang); i++ {
		h = h*31 + lang[i]
	}
	return h % CategoriesLang
}

// NameTrie is a single per-tile trie whose keys are the concatenation of a
// one-byte root edge (a language code or CategoriesLang) and a folded name
// token, mirroring the wire contract's "outbound edges from root labeled by
// a single leading byte, inner edges chain to form byte sequences matched
// against folded tokens". Grounded on bastiangx-wordserve's go-patricia
// usage (pkg/suggest/trie.go): a byte-prefix VisitSubtree stands in for
// walking one labeled root edge into its subtree.
type NameTrie struct {
	trie *patricia.Trie
}

// NewNameTrie builds an empty trie.
func NewNameTrie() *NameTrie {
	return &NameTrie{trie: patricia.NewTrie()}
}

func rootKey(edge byte, token string) patricia.Prefix {
	key := make([]byte, 0, 1+len(token))
	key = append(key, edge)
	key = append(key, token...)
	return patricia.Prefix(key)
}

// Insert indexes token under lang's root edge, appending offset to any
// postings already present for that (lang, token) pair.
func (t *NameTrie) Insert(lang, token string, offset datastructure.FeatureOffset) {
	t.insert(LanguageCode(lang), lang, token, offset)
}

// InsertCategory indexes token under the categories root edge.
func (t *NameTrie) InsertCategory(token string, offset datastructure.FeatureOffset) {
	t.insert(CategoriesLang, "", token, offset)
}

// posting maps a language to the offsets found there, keyed at a single
// trie entry. Two distinct languages can hash to the same root-edge byte
// (LanguageCode has only CategoriesLang buckets to work with), so a bare
// per-key language field would let one collide language clobber another's
// postings; keying by language inside the entry keeps them distinct.
type posting map[string][]datastructure.FeatureOffset

func (t *NameTrie) insert(edge byte, lang, token string, offset datastructure.FeatureOffset) {
	key := rootKey(edge, token)
	if existing := t.trie.Get(key); existing != nil {
		p := existing.(posting)
		p[lang] = append(p[lang], offset)
		return
	}
	t.trie.Insert(key, posting{lang: {offset}})
}

type tokenHit struct {
	offset datastructure.FeatureOffset
	lang   string
}

func appendPostingHits(hits []tokenHit, p posting, wantLang string, filterLang bool) []tokenHit {
	for lang, offsets := range p {
		if filterLang && lang != wantLang {
			continue
		}
		for _, off := range offsets {
			hits = append(hits, tokenHit{offset: off, lang: lang})
		}
	}
	return hits
}

// matchToken visits every posting reachable from edge for token restricted
// to wantLang, exact or, when asPrefix is true, any token starting with it
// (the trailing prefix step of the match). filterLang is false for
// the categories edge, where postings carry no language.
func (t *NameTrie) matchToken(edge byte, wantLang string, token string, asPrefix, filterLang bool) []tokenHit {
	prefix := rootKey(edge, token)
	if !asPrefix {
		item := t.trie.Get(prefix)
		if item == nil {
			return nil
		}
		return appendPostingHits(nil, item.(posting), wantLang, filterLang)
	}
	var hits []tokenHit
	t.trie.VisitSubtree(prefix, func(_ patricia.Prefix, item patricia.Item) error {
		hits = appendPostingHits(hits, item.(posting), wantLang, filterLang)
		return nil
	})
	return hits
}

// CategoryNames resolves the category-name synonyms of a token, the
// collaborator a category match calls out to.
type CategoryNames func(token string) []string

// MatchTokens finds every FeatureOffset whose concatenated name labels
// contain, for every token, either the token itself or one of its category
// synonyms (an OR within a token, an AND across tokens),
// additionally requiring a match on prefix if one is present. Only the
// language edges in langs, plus the categories edge, are searched. The
// returned map values record which language edge produced the match, "" for
// a categories-only hit.
func (t *NameTrie) MatchTokens(tokens []string, prefix string, langs []string, categoryNames CategoryNames) map[datastructure.FeatureOffset]string {
	if len(tokens) == 0 && prefix == "" {
		return nil
	}

	current := map[datastructure.FeatureOffset]string(nil)
	first := true

	for _, tok := range tokens {
		hits := t.hitsForLabels(append([]string{tok}, categoryNames(tok)...), langs, false)
		if first {
			current = hits
			first = false
		} else {
			current = intersectHits(current, hits)
		}
		if len(current) == 0 {
			return nil
		}
	}

	if prefix != "" {
		hits := t.hitsForLabels([]string{prefix}, langs, true)
		if first {
			current = hits
		} else {
			current = intersectHits(current, hits)
		}
	}

	return current
}

func (t *NameTrie) hitsForLabels(labels []string, langs []string, asPrefix bool) map[datastructure.FeatureOffset]string {
	hits := map[datastructure.FeatureOffset]string{}
	record := func(h tokenHit) {
		if _, ok := hits[h.offset]; !ok {
			hits[h.offset] = h.lang
		}
	}
	for _, label := range labels {
		for _, lang := range langs {
			for _, h := range t.matchToken(LanguageCode(lang), lang, label, asPrefix, true) {
				record(h)
			}
		}
		for _, h := range t.matchToken(CategoriesLang, "", label, asPrefix, false) {
			record(h)
		}
	}
	return hits
}

func intersectHits(a, b map[datastructure.FeatureOffset]string) map[datastructure.FeatureOffset]string {
	out := map[datastructure.FeatureOffset]string{}
	for offset, lang := range a {
		if bLang, ok := b[offset]; ok {
			if lang == "" {
				lang = bLang
			}
			out[offset] = lang
		}
	}
	return out
}
