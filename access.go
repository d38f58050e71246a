// Package gridmat: queries and immutable-update manipulation.
package gridmat

// IsEmpty reports whether m is the 0×0 matrix.
// Complexity: O(1).
func (m Matrix[T]) IsEmpty() bool {
	return m.width == 0 && m.height == 0
}

// Size returns (width, height).
// Complexity: O(1).
func (m Matrix[T]) Size() (width, height int) {
	return m.width, m.height
}

// Width returns the number of columns.
// Complexity: O(1).
func (m Matrix[T]) Width() int {
	return m.width
}

// Height returns the number of rows.
// Complexity: O(1).
func (m Matrix[T]) Height() int {
	return m.height
}

// InBounds reports whether (x, y) lies within the matrix.
// Complexity: O(1).
func (m Matrix[T]) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Get retrieves the element at (x, y). The second return value is false
// when the index is out of bounds; Get never panics.
// Complexity: O(1).
func (m Matrix[T]) Get(x, y int) (T, bool) {
	if !m.InBounds(x, y) {
		var zero T
		return zero, false
	}

	return m.cells[m.index(x, y)], true
}

// Set returns a new matrix identical to m except that cell (x, y) holds v.
// An out-of-bounds index is a silent no-op: the receiver is returned
// unchanged. Callers that need strict bounds-checking should consult
// InBounds or Size first.
// Complexity: O(width×height) for the copy, O(1) when out of bounds.
func (m Matrix[T]) Set(x, y int, v T) Matrix[T] {
	if !m.InBounds(x, y) {
		return m
	}
	cells := make([]T, len(m.cells))
	copy(cells, m.cells)
	cells[m.index(x, y)] = v

	return Matrix[T]{width: m.width, height: m.height, cells: cells}
}

// Update is Set with the replacement computed from the current value:
// cell (x, y) becomes f(old). Out of bounds is the same silent no-op and
// f is not invoked.
// Complexity: O(width×height) for the copy, O(1) when out of bounds.
func (m Matrix[T]) Update(x, y int, f func(T) T) Matrix[T] {
	if !m.InBounds(x, y) {
		return m
	}

	return m.Set(x, y, f(m.cells[m.index(x, y)]))
}

// Slice extracts the sub-matrix covering rows [y0, y1) and, within each
// retained row, columns [x0, x1). Bounds are clamped to the matrix extent
// and an inverted range yields zero extent, exactly like Go slice
// expressions after clamping — Slice never panics. The result dimensions
// are re-derived from the actual extraction, so a zero extent on either
// axis produces Empty.
// Complexity: O(result width×height) time and memory.
func (m Matrix[T]) Slice(x0, y0, x1, y1 int) Matrix[T] {
	// Clamp each bound to [0, dimension].
	x0 = clamp(x0, 0, m.width)
	x1 = clamp(x1, 0, m.width)
	y0 = clamp(y0, 0, m.height)
	y1 = clamp(y1, 0, m.height)
	// Inverted ranges extract nothing.
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}

	width, height := x1-x0, y1-y0
	if width == 0 || height == 0 {
		return Matrix[T]{}
	}
	cells := make([]T, 0, width*height)
	for y := y0; y < y1; y++ {
		base := y * m.width // base offset of source row y
		cells = append(cells, m.cells[base+x0:base+x1]...)
	}

	return Matrix[T]{width: width, height: height, cells: cells}
}
