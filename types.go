// Package gridmat: core types for the rectangular container.
package gridmat

// Matrix is a rectangular 2D grid of T values with immutable-update
// semantics. width is the number of columns, height the number of rows,
// and cells holds width*height elements in row-major order
// (index = y*width + x).
//
// The zero value is the empty matrix. Operations never mutate a Matrix in
// place; unchanged backing storage may be shared between the receiver and a
// result, which is safe because no operation ever writes into a published
// buffer.
type Matrix[T any] struct {
	width, height int // dimensions; width == 0 ⇔ height == 0
	cells         []T // flat row-major storage, length == width*height
}

// Cell pairs a coordinate with the value stored there.
// Produced by Cells in row-major order.
type Cell[T any] struct {
	X, Y  int // coordinates within the matrix
	Value T   // value at (X, Y)
}

// index maps (x, y) to a row-major offset: y*width + x.
// Callers must bounds-check first.
// Complexity: O(1).
func (m Matrix[T]) index(x, y int) int {
	return y*m.width + x
}

// clamp bounds v to the closed range [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
