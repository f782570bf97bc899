// Package query implements the query normalizer and lat/lon literal matcher
// external callers feed into the search controller. Free-text search
// engines often ship raw strings straight into their inverted index
// instead; this package is written in a small-file, plain-function style.
package query

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxTokens is the hard cap on the normalized token list.
const MaxTokens = 31

var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalized is the output of Normalize: an ordered token list plus an
// optional trailing prefix fragment.
type Normalized struct {
	Tokens []string
	Prefix string
}

// isDelimiter reports whether r separates tokens: whitespace and
// punctuation.
func isDelimiter(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r)
}

// fold lowercases and strips diacritical marks, canonicalizing s to a form
// comparable across accented variants of the same letter.
func fold(s string) string {
	out, _, err := transform.String(foldDiacritics, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Normalize tokenizes raw on the delimiter predicate, detaches a trailing
// Prefix when the input doesn't end on a delimiter, and truncates the token
// list to MaxTokens. Deterministic: equal inputs always produce equal
// outputs.
func Normalize(raw string) Normalized {
	if raw == "" {
		return Normalized{}
	}

	folded := fold(raw)
	tokens := strings.FieldsFunc(folded, isDelimiter)
	if len(tokens) == 0 {
		return Normalized{}
	}

	rs := []rune(folded)
	last := rs[len(rs)-1]

	var prefix string
	if !isDelimiter(last) {
		prefix = tokens[len(tokens)-1]
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) > MaxTokens {
		tokens = tokens[:MaxTokens]
	}

	return Normalized{Tokens: tokens, Prefix: prefix}
}
