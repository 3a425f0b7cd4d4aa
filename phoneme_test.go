package protolang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testCatalog() *FeatureCatalog {
	features := map[FeatureCode]Feature{
		"PA": NewFeature("Palatal", "PA", CategoryPlace, 1),
		"AL": NewFeature("Alveolar", "AL", CategoryPlace, 2),
		"VE": NewFeature("Velar", "VE", CategoryPlace, 3),
		"NE": NewFeature("Near-back", "NE", CategoryPlace, 4),
		"PZ": NewFeature("Pzfeature", "PZ", CategoryPlace, 5),
		"VZ": NewFeature("Vzfeature", "VZ", CategoryPlace, 6),
		"DE": NewFeature("Dental", "DE", CategoryPlace, 7),
		"PL": NewFeature("Plosive", "PL", CategoryManner, 10),
		"FR": NewFeature("Fricative", "FR", CategoryManner, 11),
		"VO": NewFeature("Voiced", "VO", CategoryAirflow, 20),
		"CL": NewFeature("Close", "CL", CategoryManner, 30),
	}
	return NewFeatureCatalog(features, nil)
}

func testTables() *Tables {
	catalog := testCatalog()
	return &Tables{
		Catalog: catalog,
		Rules: RuleSet{
			Advance:   map[FeatureCode]FeatureCode{"VE": "PA"},
			Lower:     map[FeatureCode]FeatureCode{"PL": "FR"},
			Upper:     map[FeatureCode]FeatureCode{"FR": "PL"},
			Dentalize: map[FeatureCode]FeatureCode{"AL": "DE"},
		},
		FeatureSubsets: map[string][]FeatureCode{
			VowelManners: {"CL"},
		},
	}
}

func TestPhonemeEqualByFeatureSet(t *testing.T) {
	tables := testTables()
	a := NewPhoneme(tables, map[FeatureCode]Feature{"PA": tables.Catalog.MustLookup("PA")}, "c")
	b := NewPhoneme(tables, map[FeatureCode]Feature{"PA": tables.Catalog.MustLookup("PA")}, "different-glyph")
	assert.True(t, a.Equal(b), "phonemes with the same feature set are equal regardless of glyph")
}

func TestPhonemeSignatureIsOrderIndependent(t *testing.T) {
	tables := testTables()
	pa := tables.Catalog.MustLookup("PA")
	pl := tables.Catalog.MustLookup("PL")
	a := NewPhoneme(tables, map[FeatureCode]Feature{"PA": pa, "PL": pl}, "x")
	b := NewPhoneme(tables, map[FeatureCode]Feature{"PL": pl, "PA": pa}, "y")
	assert.Equal(t, a.Signature(), b.Signature())
}

func TestPhonemeAdvancePalatalGainsAlveolar(t *testing.T) {
	tables := testTables()
	p := NewPhoneme(tables, map[FeatureCode]Feature{"PA": tables.Catalog.MustLookup("PA")}, "c")
	p.Advance()
	assert.True(t, p.Contains(tables.Catalog.MustLookup("AL")))
	assert.True(t, p.Contains(tables.Catalog.MustLookup("PA")))
}

func TestPhonemeAdvanceGenericRuleTable(t *testing.T) {
	tables := testTables()
	p := NewPhoneme(tables, map[FeatureCode]Feature{"VE": tables.Catalog.MustLookup("VE")}, "k")
	p.Advance()
	assert.False(t, p.Contains(tables.Catalog.MustLookup("VE")))
	assert.True(t, p.Contains(tables.Catalog.MustLookup("PA")))
}

func TestPhonemeIsVowel(t *testing.T) {
	tables := testTables()
	vowel := NewPhoneme(tables, map[FeatureCode]Feature{"CL": tables.Catalog.MustLookup("CL")}, "i")
	consonant := NewPhoneme(tables, map[FeatureCode]Feature{"PL": tables.Catalog.MustLookup("PL")}, "p")
	assert.True(t, vowel.IsVowel())
	assert.False(t, consonant.IsVowel())
}

func TestPhonemeLowerAndUpper(t *testing.T) {
	tables := testTables()
	p := NewPhoneme(tables, map[FeatureCode]Feature{"PL": tables.Catalog.MustLookup("PL")}, "p")
	p.Lower()
	assert.True(t, p.Contains(tables.Catalog.MustLookup("FR")))
	assert.False(t, p.Contains(tables.Catalog.MustLookup("PL")))
	p.Upper()
	assert.True(t, p.Contains(tables.Catalog.MustLookup("PL")))
}

func TestPhonemeDentalize(t *testing.T) {
	tables := testTables()
	p := NewPhoneme(tables, map[FeatureCode]Feature{"AL": tables.Catalog.MustLookup("AL")}, "t")
	p.Dentalize()
	assert.True(t, p.Contains(tables.Catalog.MustLookup("DE")))
	assert.False(t, p.Contains(tables.Catalog.MustLookup("AL")))
}

func TestPhonemeSetPlaceReplacesExistingPlace(t *testing.T) {
	tables := testTables()
	p := NewPhoneme(tables, map[FeatureCode]Feature{"AL": tables.Catalog.MustLookup("AL")}, "t")
	p.SetPlace(tables.Catalog.MustLookup("VE"), true)
	assert.False(t, p.Contains(tables.Catalog.MustLookup("AL")))
	assert.True(t, p.Contains(tables.Catalog.MustLookup("VE")))
}

func TestPhonemeDifferenceIntersectUnion(t *testing.T) {
	tables := testTables()
	a := NewPhoneme(tables, map[FeatureCode]Feature{"PA": tables.Catalog.MustLookup("PA"), "PL": tables.Catalog.MustLookup("PL")}, "x")
	b := NewPhoneme(tables, map[FeatureCode]Feature{"PL": tables.Catalog.MustLookup("PL"), "VE": tables.Catalog.MustLookup("VE")}, "y")

	assert.ElementsMatch(t, []Feature{tables.Catalog.MustLookup("PA")}, a.Difference(b))
	assert.ElementsMatch(t, []Feature{tables.Catalog.MustLookup("PL")}, a.Intersect(b))
	assert.Len(t, a.Union(b), 3)
	assert.Len(t, a.SymmetricDifference(b), 2)
}
