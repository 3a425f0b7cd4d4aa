package protolang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureEqualityByCodeOnly(t *testing.T) {
	a := NewFeature("Palatal", "PA", CategoryPlace, 1)
	b := NewFeature("Something Else Entirely", "pa", CategorySecondaryPlace, 99)
	assert.True(t, a.Equal(b), "features with the same code must be equal regardless of name/category/index")
}

func TestFeatureLessOrdersByIndex(t *testing.T) {
	a := NewFeature("A", "AA", CategoryPlace, 1)
	b := NewFeature("B", "BB", CategoryPlace, 2)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}

func TestNewFeatureNormalizesNameAndCode(t *testing.T) {
	f := NewFeature("palatal", "pa", "PLACE", 3)
	assert.Equal(t, "Palatal", f.Name)
	assert.Equal(t, FeatureCode("PA"), f.Code)
	assert.Equal(t, CategoryPlace, f.Category)
}

func TestFeatureCatalogLookup(t *testing.T) {
	pa := NewFeature("Palatal", "PA", CategoryPlace, 1)
	catalog := NewFeatureCatalog(map[FeatureCode]Feature{"PA": pa}, nil)

	got, ok := catalog.Lookup("PA")
	require.True(t, ok)
	assert.Equal(t, pa, got)

	_, ok = catalog.Lookup("ZZ")
	assert.False(t, ok)

	assert.Equal(t, EmptyFeature, catalog.MustLookup("ZZ"))
}

func TestFeatureCatalogDistanceIsAsymmetric(t *testing.T) {
	distances := map[[2]FeatureCode]float64{
		{"PA", "AL"}: 1.5,
	}
	catalog := NewFeatureCatalog(nil, distances)
	pa := NewFeature("Palatal", "PA", CategoryPlace, 1)
	al := NewFeature("Alveolar", "AL", CategoryPlace, 2)

	assert.Equal(t, 1.5, catalog.DistanceTo(pa, al, Disallowed))
	assert.Equal(t, Disallowed, catalog.DistanceTo(al, pa, Disallowed))
}
