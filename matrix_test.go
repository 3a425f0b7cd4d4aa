package protolang

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedMatrixGetSet(t *testing.T) {
	names := []string{"a", "b", "c"}
	m := NewNamedMatrix("dist", names, func(row, col string) float64 {
		if row == col {
			return 0
		}
		return 1
	})

	assert.Equal(t, 0.0, m.Get("a", "a"))
	assert.Equal(t, 1.0, m.Get("a", "b"))

	m.Set("a", "b", 42)
	assert.Equal(t, 42.0, m.Get("a", "b"))

	rows, cols := m.Shape()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 3, cols)
}

func TestNamedMatrixToCSV(t *testing.T) {
	names := []string{"x", "y"}
	m := NewNamedMatrix("dist", names, func(row, col string) float64 {
		if row == col {
			return 0
		}
		return 7
	})

	tmp, err := os.CreateTemp(t.TempDir(), "matrix-*.csv")
	require.NoError(t, err)
	path := tmp.Name()
	tmp.Close()

	err = m.ToCSV(path, func(s string) string { return s }, formatFloat)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "x")
	assert.Contains(t, string(content), "7")
}
