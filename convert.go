// Package gridmat: list and string exports.
// Every export copies: callers may mutate returned slices freely without
// affecting the matrix.
package gridmat

import (
	"fmt"
	"strings"
)

// RowSlices returns the matrix contents as a nested slice, row-major:
// len == Height(), each inner len == Width(). The result is a deep
// structural copy of the storage.
// Complexity: O(width×height) time and memory.
func (m Matrix[T]) RowSlices() [][]T {
	rows := make([][]T, m.height)
	for y := 0; y < m.height; y++ {
		row := make([]T, m.width)
		copy(row, m.cells[y*m.width:(y+1)*m.width])
		rows[y] = row
	}

	return rows
}

// Cells returns a flat enumeration of ((x, y), value) entries in row-major
// order: all cells of row 0 (x ascending) before row 1, and so on.
// len == Width()*Height().
// Complexity: O(width×height) time and memory.
func (m Matrix[T]) Cells() []Cell[T] {
	out := make([]Cell[T], 0, m.width*m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			out = append(out, Cell[T]{X: x, Y: y, Value: m.cells[m.index(x, y)]})
		}
	}

	return out
}

// Row returns a copy of row y, or (nil, false) when y is out of range.
// Complexity: O(width).
func (m Matrix[T]) Row(y int) ([]T, bool) {
	if y < 0 || y >= m.height {
		return nil, false
	}
	row := make([]T, m.width)
	copy(row, m.cells[y*m.width:(y+1)*m.width])

	return row, true
}

// Column returns a copy of column x, top to bottom, or (nil, false) when x
// is out of range. This is a read view, not a transposition.
// Complexity: O(height).
func (m Matrix[T]) Column(x int) ([]T, bool) {
	if x < 0 || x >= m.width {
		return nil, false
	}
	col := make([]T, m.height)
	for y := 0; y < m.height; y++ {
		col[y] = m.cells[m.index(x, y)]
	}

	return col, true
}

// String implements fmt.Stringer: one "[a, b, c]" line per row.
// The empty matrix formats as "".
// Complexity: O(width×height) for string construction.
func (m Matrix[T]) String() string {
	var b strings.Builder
	for y := 0; y < m.height; y++ {
		b.WriteByte('[')
		for x := 0; x < m.width; x++ {
			if x > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", m.cells[m.index(x, y)])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
