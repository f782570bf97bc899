package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmptyInput(t *testing.T) {
	n := Normalize("")
	assert.Empty(t, n.Tokens)
	assert.Empty(t, n.Prefix)
}

func TestNormalizeDiacriticFold(t *testing.T) {
	n := Normalize("Krasnaya Ploshchad")
	assert.Equal(t, []string{"krasnaya"}, n.Tokens)
	assert.Equal(t, "ploshchad", n.Prefix)

	n2 := Normalize("Plaza Rojá")
	assert.Equal(t, "roja", n2.Prefix)
}

func TestNormalizePrefixRule(t *testing.T) {
	n := Normalize("red square")
	assert.Equal(t, []string{"red"}, n.Tokens)
	assert.Equal(t, "square", n.Prefix)

	n2 := Normalize("red square ")
	assert.Equal(t, []string{"red", "square"}, n2.Tokens)
	assert.Empty(t, n2.Prefix)
}

func TestNormalizeTokenCap(t *testing.T) {
	words := make([]string, 40)
	for i := range words {
		words[i] = "w"
	}
	n := Normalize(strings.Join(words, " ") + " ")
	assert.LessOrEqual(t, len(n.Tokens), MaxTokens)
	assert.Len(t, n.Tokens, MaxTokens)
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Red Square", "caf", "pizza mamma", "  multiple   spaces  ", "Krasnaya Ploshchad"}
	for _, in := range inputs {
		first := Normalize(in)
		reconstructed := strings.Join(first.Tokens, " ")
		if first.Prefix != "" {
			reconstructed += " " + first.Prefix
		} else if len(first.Tokens) > 0 {
			reconstructed += " "
		}
		second := Normalize(reconstructed)
		assert.Equal(t, first.Tokens, second.Tokens)
		assert.Equal(t, first.Prefix, second.Prefix)
	}
}
