package protolang

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestCatalogue(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalogue.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCatalogueFiltersByMinWords(t *testing.T) {
	path := writeTestCatalogue(t, "Code,Language,#,water\nlat,Latin,100,pa\nxxx,Tiny,1,pa\n")

	rows, err := LoadCatalogue(path, 40)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "lat", rows[0].Code)
}

func TestLoadCatalogueSkipsEmptyCode(t *testing.T) {
	path := writeTestCatalogue(t, "Code,Language,#,water\n,Unknown,100,pa\n")

	rows, err := LoadCatalogue(path, 40)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestLoadCatalogueRejectsMissingRequiredColumn(t *testing.T) {
	path := writeTestCatalogue(t, "Code,#,water\nlat,100,pa\n")

	_, err := LoadCatalogue(path, 40)
	require.Error(t, err)
	var shapeErr *CatalogueShapeError
	assert.ErrorAs(t, err, &shapeErr)
}

func TestBuildLanguagesSkipsUnparseableWords(t *testing.T) {
	tables := parserTestTables()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	rows := []CatalogueRow{
		{Code: "xx", Name: "Test", Count: 100, Meanings: []string{"water", "fire"}, Words: map[string]string{
			"water": "pa",
			"fire":  "?",
		}},
	}

	languages := BuildLanguages(tables, rows, logger)
	require.Len(t, languages, 1)
	assert.True(t, languages[0].Has("water"))
	assert.False(t, languages[0].Has("fire"))
}

func TestLoadCatalogueRecordsMeaningsInHeaderOrder(t *testing.T) {
	path := writeTestCatalogue(t, "Code,Language,#,fire,water,earth\nlat,Latin,100,ig,aqua,terra\n")

	rows, err := LoadCatalogue(path, 40)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"fire", "water", "earth"}, rows[0].Meanings)
}

func TestBuildLanguagesPreservesMeaningOrderAcrossRuns(t *testing.T) {
	tables := parserTestTables()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	row := CatalogueRow{
		Code:     "xx",
		Name:     "Test",
		Count:    100,
		Meanings: []string{"fire", "water", "earth"},
		Words:    map[string]string{"fire": "pa", "water": "ta", "earth": "sa"},
	}

	for i := 0; i < 5; i++ {
		languages := BuildLanguages(tables, []CatalogueRow{row}, logger)
		require.Len(t, languages, 1)
		require.Equal(t, 3, languages[0].Len())
		assert.Equal(t, "fire", languages[0].At(0).Meaning())
		assert.Equal(t, "water", languages[0].At(1).Meaning())
		assert.Equal(t, "earth", languages[0].At(2).Meaning())
	}
}
