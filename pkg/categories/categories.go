// Package categories provides the category-keyword expansion table,
// specified only as an external multimap collaborator. It seeds its
// vocabulary from an OSM tag set (formerly pkg/geo/constant.go's
// ValidSearchTags), repurposed as feature-type synonyms instead of
// indexing-time tag validation.
package categories

import "strings"

// Type is a feature category, e.g. "restaurant", "amenity".
type Type int

const (
	TypeUnknown Type = iota
	TypeAmenity
	TypeBuilding
	TypeSport
	TypeTourism
	TypeLeisure
	TypeShop
	TypeHistoric
	TypeRailway
	TypeHighway
	TypeWaterway
	TypeOffice
	TypeHealthcare
	TypeRestaurant
	TypeCafe
)

var typeNames = map[Type]string{
	TypeUnknown:    "",
	TypeAmenity:    "amenity",
	TypeBuilding:   "building",
	TypeSport:      "sport",
	TypeTourism:    "tourism",
	TypeLeisure:    "leisure",
	TypeShop:       "shop",
	TypeHistoric:   "historic",
	TypeRailway:    "railway",
	TypeHighway:    "highway",
	TypeWaterway:   "waterway",
	TypeOffice:     "office",
	TypeHealthcare: "healthcare",
	TypeRestaurant: "restaurant",
	TypeCafe:       "cafe",
}

// featureTypeToString converts a category type to its wire name, the
// name the external collaborator uses directly.
func featureTypeToString(t Type) string {
	return typeNames[t]
}

// FeatureTypeToString is the exported form used by the trie matcher and
// promoter to build label sequences from category types.
func FeatureTypeToString(t Type) string {
	return featureTypeToString(t)
}

// synonyms maps a folded keyword to the category types it should expand to.
// Grounded in a ValidSearchTags vocabulary (OSM tag keys),
// widened with a few everyday synonyms an example scenario
// ("pizza" → restaurant) requires.
var synonyms = map[string][]Type{
	"amenity":     {TypeAmenity},
	"building":    {TypeBuilding},
	"sport":       {TypeSport},
	"tourism":     {TypeTourism},
	"leisure":     {TypeLeisure},
	"shop":        {TypeShop},
	"historic":    {TypeHistoric},
	"railway":     {TypeRailway},
	"highway":     {TypeHighway},
	"waterway":    {TypeWaterway},
	"office":      {TypeOffice},
	"healthcare":  {TypeHealthcare},
	"restaurant":  {TypeRestaurant},
	"pizza":       {TypeRestaurant},
	"pizzeria":    {TypeRestaurant},
	"food":        {TypeRestaurant},
	"cafe":        {TypeCafe},
	"caffe":       {TypeCafe},
	"coffee":      {TypeCafe},
}

// Expansion is the multimap contract: folded token → category
// types. A Table wraps the multimap and resolves types to their string
// labels for building trie label sequences.
type Table struct {
	entries map[string][]Type
}

// NewTable builds the default table seeded from the tag vocabulary above.
func NewTable() *Table {
	return &Table{entries: synonyms}
}

// CategoriesFor returns the category types a folded token expands to, or
// nil if the token has none.
func (t *Table) CategoriesFor(token string) []Type {
	return t.entries[strings.ToLower(token)]
}

// CategoryNamesFor returns the wire names of the category types a folded
// token expands to — the label sequences the Trie Matcher additionally
// searches for a given user token.
func (t *Table) CategoryNamesFor(token string) []string {
	types := t.CategoriesFor(token)
	if len(types) == 0 {
		return nil
	}
	names := make([]string, 0, len(types))
	for _, ty := range types {
		if name := FeatureTypeToString(ty); name != "" {
			names = append(names, name)
		}
	}
	return names
}
