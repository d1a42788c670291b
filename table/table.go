// Package table provides the labeled tabular value type shared by die
// snapshots, game results, and analyzer output. A Table pairs ordered row
// keys and column keys with a dense cell grid. Every accessor returns an
// independent copy so callers can never mutate stored state through a
// returned value.
package table

import "fmt"

// Table is an immutable labeled grid. Row and column keys are ordered and
// row keys are unique within a table.
type Table[V any] struct {
	rowKeys []string
	colKeys []string
	cells   [][]V
}

// New builds a Table from row keys, column keys, and a cell grid.
// The inputs are copied, so later mutation of the arguments does not
// affect the table.
//
// Precondition: len(cells) == len(rowKeys), every row has len(colKeys)
// cells, and row keys are unique. Violations panic, since every Table in
// this module is assembled by code that controls the shape.
func New[V any](rowKeys, colKeys []string, cells [][]V) *Table[V] {
	if len(cells) != len(rowKeys) {
		panic(fmt.Sprintf("table: %d rows of cells for %d row keys", len(cells), len(rowKeys)))
	}
	seen := make(map[string]struct{}, len(rowKeys))
	for _, k := range rowKeys {
		if _, ok := seen[k]; ok {
			panic(fmt.Sprintf("table: duplicate row key %q", k))
		}
		seen[k] = struct{}{}
	}
	grid := make([][]V, len(cells))
	for i, row := range cells {
		if len(row) != len(colKeys) {
			panic(fmt.Sprintf("table: row %d has %d cells for %d column keys", i, len(row), len(colKeys)))
		}
		grid[i] = append([]V(nil), row...)
	}
	return &Table[V]{
		rowKeys: append([]string(nil), rowKeys...),
		colKeys: append([]string(nil), colKeys...),
		cells:   grid,
	}
}

// NumRows returns the number of rows.
func (t *Table[V]) NumRows() int {
	return len(t.rowKeys)
}

// NumColumns returns the number of columns.
func (t *Table[V]) NumColumns() int {
	return len(t.colKeys)
}

// RowKeys returns a copy of the ordered row keys.
func (t *Table[V]) RowKeys() []string {
	return append([]string(nil), t.rowKeys...)
}

// ColumnKeys returns a copy of the ordered column keys.
func (t *Table[V]) ColumnKeys() []string {
	return append([]string(nil), t.colKeys...)
}

// At returns the cell at row i, column j. Indexes follow key order.
func (t *Table[V]) At(i, j int) V {
	return t.cells[i][j]
}

// Row returns a copy of the row stored under key, or false if the key is
// not present.
func (t *Table[V]) Row(key string) ([]V, bool) {
	for i, k := range t.rowKeys {
		if k == key {
			return append([]V(nil), t.cells[i]...), true
		}
	}
	return nil, false
}

// Cell returns the value stored under (rowKey, colKey), or false if either
// key is not present.
func (t *Table[V]) Cell(rowKey, colKey string) (V, bool) {
	col := -1
	for j, k := range t.colKeys {
		if k == colKey {
			col = j
			break
		}
	}
	if col < 0 {
		var zero V
		return zero, false
	}
	for i, k := range t.rowKeys {
		if k == rowKey {
			return t.cells[i][col], true
		}
	}
	var zero V
	return zero, false
}

// Rows returns a deep copy of the cell grid in row-key order.
func (t *Table[V]) Rows() [][]V {
	grid := make([][]V, len(t.cells))
	for i, row := range t.cells {
		grid[i] = append([]V(nil), row...)
	}
	return grid
}

// Clone returns an independent copy of the table.
func (t *Table[V]) Clone() *Table[V] {
	return New(t.rowKeys, t.colKeys, t.cells)
}
