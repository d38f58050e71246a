// Package gridmat: constructors.
//
// All constructors produce a Matrix that satisfies the rectangularity and
// zero-coupling invariants regardless of how malformed the input was.
// Dimension policy: a requested width or height ≤ 0 clamps the result to the
// empty matrix (no error path exists on the permissive surface).
package gridmat

// Empty returns the 0×0 matrix.
// Complexity: O(1).
func Empty[T any]() Matrix[T] {
	return Matrix[T]{}
}

// Initialize builds a width×height matrix where cell (x, y) holds
// gen(x, y). The generator is invoked exactly once per cell in row-major
// order: (0,0), (1,0), …, (width-1,0), (0,1), … — side-effecting generators
// can rely on that order. A width or height ≤ 0 yields Empty.
// Complexity: O(width×height) time and memory.
func Initialize[T any](width, height int, gen func(x, y int) T) Matrix[T] {
	// Clamp invalid dimensions to the empty matrix.
	if width <= 0 || height <= 0 {
		return Matrix[T]{}
	}
	cells := make([]T, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cells[y*width+x] = gen(x, y)
		}
	}

	return Matrix[T]{width: width, height: height, cells: cells}
}

// Repeat builds a width×height matrix with every cell set to v.
// Same dimension policy as Initialize: width or height ≤ 0 yields Empty.
// Complexity: O(width×height) time and memory.
func Repeat[T any](width, height int, v T) Matrix[T] {
	if width <= 0 || height <= 0 {
		return Matrix[T]{}
	}
	cells := make([]T, width*height)
	for i := range cells {
		cells[i] = v
	}

	return Matrix[T]{width: width, height: height, cells: cells}
}

// FromRows builds a matrix from a slice of rows, normalizing ragged input:
// the resulting width is the minimum input row length (0 when there are no
// rows), and every row is truncated — never padded, never dropped — to that
// width, preserving order. A minimum width of 0 (empty input, or any empty
// row) forces the whole matrix empty. When width > 0 the output has exactly
// len(rows) rows. Input is deep-copied; later mutation of rows does not
// affect the result.
// Complexity: O(width×height) time and memory.
func FromRows[T any](rows [][]T) Matrix[T] {
	if len(rows) == 0 {
		return Matrix[T]{}
	}
	// Width is the shortest input row.
	width := len(rows[0])
	for _, row := range rows[1:] {
		if len(row) < width {
			width = len(row)
		}
	}
	// One empty row empties everything (zero-coupling).
	if width == 0 {
		return Matrix[T]{}
	}

	height := len(rows)
	cells := make([]T, 0, width*height)
	for _, row := range rows {
		cells = append(cells, row[:width]...)
	}

	return Matrix[T]{width: width, height: height, cells: cells}
}

// NewStrict builds a matrix from a slice of rows, rejecting ragged input
// with ErrRaggedRows instead of truncating. Empty input — no rows, or rows
// of length 0 — yields Empty with a nil error, since the empty matrix is a
// valid value. Input is deep-copied.
// Complexity: O(width×height) time and memory.
func NewStrict[T any](rows [][]T) (Matrix[T], error) {
	if len(rows) == 0 {
		return Matrix[T]{}, nil
	}
	width := len(rows[0])
	for _, row := range rows[1:] {
		if len(row) != width {
			return Matrix[T]{}, ErrRaggedRows
		}
	}
	if width == 0 {
		return Matrix[T]{}, nil
	}

	height := len(rows)
	cells := make([]T, 0, width*height)
	for _, row := range rows {
		cells = append(cells, row...)
	}

	return Matrix[T]{width: width, height: height, cells: cells}, nil
}
