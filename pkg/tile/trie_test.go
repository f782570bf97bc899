package tile

import (
	"testing"

	"github.com/bootinge/omim/pkg/datastructure"
	"github.com/stretchr/testify/assert"
)

func noCategories(string) []string { return nil }

func TestNameTrieExactTokenMatch(t *testing.T) {
	tr := NewNameTrie()
	tr.Insert("en", "red", 1)
	tr.Insert("en", "square", 1)
	tr.Insert("en", "trafalgar", 2)

	hits := tr.MatchTokens([]string{"red", "square"}, "", []string{"en"}, noCategories)
	assert.Contains(t, hits, datastructure.FeatureOffset(1))
	assert.NotContains(t, hits, datastructure.FeatureOffset(2))
}

func TestNameTrieRequiresAllTokens(t *testing.T) {
	tr := NewNameTrie()
	tr.Insert("en", "red", 1)
	tr.Insert("en", "fort", 2)

	hits := tr.MatchTokens([]string{"red", "square"}, "", []string{"en"}, noCategories)
	assert.Empty(t, hits)
}

func TestNameTriePrefixMatchesLastToken(t *testing.T) {
	tr := NewNameTrie()
	tr.Insert("en", "square", 1)

	hits := tr.MatchTokens(nil, "squ", []string{"en"}, noCategories)
	assert.Contains(t, hits, datastructure.FeatureOffset(1))
}

func TestNameTrieCategorySynonymExpandsMatch(t *testing.T) {
	tr := NewNameTrie()
	tr.InsertCategory("restaurant", 5)

	categoryNames := func(token string) []string {
		if token == "pizza" {
			return []string{"restaurant"}
		}
		return nil
	}
	hits := tr.MatchTokens([]string{"pizza"}, "", []string{"en"}, categoryNames)
	assert.Contains(t, hits, datastructure.FeatureOffset(5))
}

func TestNameTrieIgnoresUnlistedLanguage(t *testing.T) {
	tr := NewNameTrie()
	tr.Insert("ru", "krasnaya", 9)

	hits := tr.MatchTokens([]string{"krasnaya"}, "", []string{"en"}, noCategories)
	assert.Empty(t, hits)
}
