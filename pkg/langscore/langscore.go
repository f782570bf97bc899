// Package langscore implements the name-scoring collaborator, exposed only
// through its `score(lang, name) → penalty` interface. The exact
// three-tier construction is confirmed against search_query.cpp:170-174:
// tier 0 is the preferred language, tier 1 is "int_name" then "en", tier 2
// is "default". Lower is better; WorstPenalty means no tier matched.
package langscore

import "math"

// WorstPenalty is the sentinel penalty for a name in none of the three
// tiers, mirroring the original's `m_penalty = uint32_t(-1)` initializer.
const WorstPenalty = math.MaxUint32

const (
	intName = "int_name"
	en      = "en"
	dflt    = "default"
)

// Scorer scores a (language, name) pair against a fixed preferred-language
// priority list.
type Scorer struct {
	preferred string
	tiers     [3][]string
}

// NewScorer builds a Scorer for the given preferred language code.
func NewScorer(preferredLanguage string) *Scorer {
	return &Scorer{
		preferred: preferredLanguage,
		tiers: [3][]string{
			{preferredLanguage},
			{intName, en},
			{dflt},
		},
	}
}

// SetPreferredLanguage updates the tier-0 language, mirroring the
// controller's setPreferredLanguage.
func (s *Scorer) SetPreferredLanguage(lang string) {
	s.preferred = lang
	s.tiers[0] = []string{lang}
}

// Score returns the tier index (0, 1, or 2) at which lang appears, or
// WorstPenalty if it appears in none. Within a tier, all languages carry
// the same penalty — ties are resolved by iteration order at the caller
//.
func (s *Scorer) Score(lang, name string) uint32 {
	if name == "" {
		return WorstPenalty
	}
	for tier, langs := range s.tiers {
		for _, l := range langs {
			if l == lang {
				return uint32(tier)
			}
		}
	}
	return WorstPenalty
}
