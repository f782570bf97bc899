package langscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorerTiers(t *testing.T) {
	s := NewScorer("ru")

	assert.EqualValues(t, 0, s.Score("ru", "Krasnaya Ploshchad"))
	assert.EqualValues(t, 1, s.Score("int_name", "Red Square"))
	assert.EqualValues(t, 1, s.Score("en", "Red Square"))
	assert.EqualValues(t, 2, s.Score("default", "Plaza Roja"))
	assert.EqualValues(t, WorstPenalty, s.Score("fr", "Place Rouge"))
}

func TestScorerNoNameIsWorstPenalty(t *testing.T) {
	s := NewScorer("en")
	assert.EqualValues(t, WorstPenalty, s.Score("en", ""))
}

func TestScorerSetPreferredLanguage(t *testing.T) {
	s := NewScorer("en")
	assert.EqualValues(t, 0, s.Score("en", "Red Square"))
	s.SetPreferredLanguage("ru")
	assert.EqualValues(t, 1, s.Score("en", "Red Square"))
	assert.EqualValues(t, 0, s.Score("ru", "Krasnaya Ploshchad"))
}
