package protolang

import "strings"

// Category is one of the five phonological feature categories.
// Mirrors the `category` attribute described for app.models.feature.Feature
// in the original Python implementation.
type Category string

const (
	CategoryPlace            Category = "place"
	CategorySecondaryPlace   Category = "secondary_place"
	CategoryManner           Category = "manner"
	CategorySecondaryManner  Category = "secondary_manner"
	CategoryAirflow          Category = "airflow"
)

// categoryOrder fixes the category ordering used everywhere a Phoneme's
// derived name or per-category lists are produced.
var categoryOrder = []Category{
	CategoryPlace,
	CategorySecondaryPlace,
	CategoryManner,
	CategorySecondaryManner,
	CategoryAirflow,
}

// FeatureCode is the two-letter uppercase identifier that defines a
// Feature's equality and hashing. Two Features with the same code are the
// same feature regardless of name/category/index.
type FeatureCode string

// EmptyFeatureCode is the sentinel code for the empty feature, used to pad
// phoneme distance computations and as the zero value for per-category
// lookups.
const EmptyFeatureCode FeatureCode = "X"

// Feature is a single articulatory property of a speech sound. It is
// immutable once constructed: callers must never mutate Name/Code/Category
// on a shared Feature value.
type Feature struct {
	Name     string
	Code     FeatureCode
	Category Category
	Index    int
}

// NewFeature builds a Feature, capitalizing the name and upper-casing the
// code the way the Python constructor did (name.capitalize(), code.upper()).
func NewFeature(name string, code FeatureCode, category Category, index int) Feature {
	return Feature{
		Name:     capitalize(name),
		Code:     FeatureCode(strings.ToUpper(string(code))),
		Category: Category(strings.ToLower(string(category))),
		Index:    index,
	}
}

// EmptyFeature is the sentinel "no feature" value returned whenever a
// category has no member in a given Phoneme.
var EmptyFeature = Feature{Name: "", Code: EmptyFeatureCode, Category: "", Index: 0}

// Equal reports feature equality by code alone, per the spec's "equality and
// hash by code only" invariant.
func (f Feature) Equal(other Feature) bool {
	return f.Code == other.Code
}

// Less orders features by index, giving Feature a total order.
func (f Feature) Less(other Feature) bool {
	return f.Index < other.Index
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return strings.ToUpper(string(runes[0])) + strings.ToLower(string(runes[1:]))
}

// FeatureCatalog is the process-wide registry of Features and the
// asymmetric feature-distance oracle. It is loaded once at startup (see
// tables.go) and treated as read-only thereafter.
type FeatureCatalog struct {
	byCode map[FeatureCode]Feature
	// distances is asymmetric: distances[[2]FeatureCode{a,b}] need not equal
	// distances[[2]FeatureCode{b,a}].
	distances map[[2]FeatureCode]float64
}

// NewFeatureCatalog builds a catalog from a code→Feature table and the
// asymmetric distance oracle. It always registers EmptyFeature under "X".
func NewFeatureCatalog(features map[FeatureCode]Feature, distances map[[2]FeatureCode]float64) *FeatureCatalog {
	byCode := make(map[FeatureCode]Feature, len(features)+1)
	for code, f := range features {
		byCode[code] = f
	}
	byCode[EmptyFeatureCode] = EmptyFeature
	return &FeatureCatalog{byCode: byCode, distances: distances}
}

// Lookup returns the Feature registered under code, if any.
func (c *FeatureCatalog) Lookup(code FeatureCode) (Feature, bool) {
	f, ok := c.byCode[code]
	return f, ok
}

// MustLookup returns the Feature registered under code, or EmptyFeature if
// the code is unknown. Rule tables are expected to only reference known
// codes; an unknown code here indicates a malformed static table.
func (c *FeatureCatalog) MustLookup(code FeatureCode) Feature {
	if f, ok := c.byCode[code]; ok {
		return f
	}
	return EmptyFeature
}

// DistanceTo returns the asymmetric precomputed distance for the ordered
// pair (a.Code, b.Code), or def if the oracle has no entry for that
// direction. The oracle is intentionally asymmetric: DistanceTo(a, b, ...)
// need not equal DistanceTo(b, a, ...).
func (c *FeatureCatalog) DistanceTo(a, b Feature, def float64) float64 {
	if d, ok := c.distances[[2]FeatureCode{a.Code, b.Code}]; ok {
		return d
	}
	return def
}
