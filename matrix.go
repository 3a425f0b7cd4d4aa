package protolang

import (
	"encoding/csv"
	"fmt"
	"os"
)

// NamedMatrix is a square matrix indexed by arbitrary comparable keys
// rather than plain integers, populated once at construction time by
// calling a function over every (row, column) pair of payload items.
// Mirrors the Python NamedMatrix, minus its numpy vectorize fast path
// (Go has no equivalent broadcasting trick to reach for).
type NamedMatrix[K comparable, V any] struct {
	Name string

	rowNames, columnNames []K
	rowIndex, columnIndex map[K]int
	values                [][]V
}

// NewNamedMatrix builds a NamedMatrix by calling populate(rowItem,
// columnItem) for every cell. names gives the keys in order and is used
// for both axes, so rows and columns always share the same key set and
// ordering.
func NewNamedMatrix[K comparable, V any](name string, names []K, populate func(row, col K) V) *NamedMatrix[K, V] {
	m := &NamedMatrix[K, V]{
		Name:       name,
		rowNames:   names,
		columnNames: names,
		rowIndex:    make(map[K]int, len(names)),
		columnIndex: make(map[K]int, len(names)),
	}
	for i, k := range names {
		m.rowIndex[k] = i
		m.columnIndex[k] = i
	}
	m.values = make([][]V, len(names))
	for i, rowItem := range names {
		m.values[i] = make([]V, len(names))
		for j, colItem := range names {
			m.values[i][j] = populate(rowItem, colItem)
		}
	}
	return m
}

// Get returns the value stored for (row, col).
func (m *NamedMatrix[K, V]) Get(row, col K) V {
	return m.values[m.rowIndex[row]][m.columnIndex[col]]
}

// Set overwrites the value stored for (row, col).
func (m *NamedMatrix[K, V]) Set(row, col K, v V) {
	m.values[m.rowIndex[row]][m.columnIndex[col]] = v
}

// Shape returns (rows, columns).
func (m *NamedMatrix[K, V]) Shape() (int, int) {
	return len(m.rowNames), len(m.columnNames)
}

// Names returns the row/column key order.
func (m *NamedMatrix[K, V]) Names() []K { return m.rowNames }

// ToCSV writes the matrix to path with row/column headers stringified via
// stringer, one row per line, mirroring NamedMatrix.to_csv's
// string-cast headers.
func (m *NamedMatrix[K, V]) ToCSV(path string, stringer func(K) string, cellString func(V) string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := make([]string, 0, len(m.columnNames)+1)
	header = append(header, "")
	for _, c := range m.columnNames {
		header = append(header, stringer(c))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, r := range m.rowNames {
		row := make([]string, 0, len(m.columnNames)+1)
		row = append(row, stringer(r))
		for j := range m.columnNames {
			row = append(row, cellString(m.values[i][j]))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}
