package categories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryExpansionPizzaToRestaurant(t *testing.T) {
	table := NewTable()
	names := table.CategoryNamesFor("pizza")
	assert.Contains(t, names, "restaurant")
}

func TestCategoryExpansionUnknownTokenIsEmpty(t *testing.T) {
	table := NewTable()
	assert.Empty(t, table.CategoryNamesFor("zzzznotaword"))
}

func TestFeatureTypeToString(t *testing.T) {
	assert.Equal(t, "restaurant", FeatureTypeToString(TypeRestaurant))
	assert.Equal(t, "", FeatureTypeToString(TypeUnknown))
}
