// SPDX-License-Identifier: MIT
// Package gridmat: element-wise transforms and comparisons.
//
// These are package-level functions rather than methods because Go methods
// cannot introduce new type parameters: Map needs a free U. All loops run
// in fixed row-major order over the flat backing buffer, so side-effecting
// callbacks observe a deterministic visit order.

package gridmat

// Map returns a new Matrix[U] with the same dimensions as m where each cell
// holds f applied to the original value. Cells are visited in row-major
// order.
// Complexity: O(width×height) time and memory.
func Map[T, U any](m Matrix[T], f func(T) U) Matrix[U] {
	if m.IsEmpty() {
		return Matrix[U]{}
	}
	cells := make([]U, len(m.cells))
	for i, v := range m.cells {
		cells[i] = f(v)
	}

	return Matrix[U]{width: m.width, height: m.height, cells: cells}
}

// IndexedMap is Map with the cell coordinate passed alongside the value:
// cell (x, y) becomes f(x, y, old). Row-major visit order.
// Complexity: O(width×height) time and memory.
func IndexedMap[T, U any](m Matrix[T], f func(x, y int, v T) U) Matrix[U] {
	if m.IsEmpty() {
		return Matrix[U]{}
	}
	cells := make([]U, len(m.cells))
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			i := m.index(x, y)
			cells[i] = f(x, y, m.cells[i])
		}
	}

	return Matrix[U]{width: m.width, height: m.height, cells: cells}
}

// Fold reduces m to a single value, visiting cells in row-major order:
// acc = f(acc, cell) for each cell. Returns acc unchanged for Empty.
// Complexity: O(width×height).
func Fold[T, A any](m Matrix[T], acc A, f func(A, T) A) A {
	for _, v := range m.cells {
		acc = f(acc, v)
	}

	return acc
}

// Any reports whether pred holds for at least one cell. False on Empty.
// Complexity: O(width×height) worst case, short-circuits on first match.
func Any[T any](m Matrix[T], pred func(T) bool) bool {
	for _, v := range m.cells {
		if pred(v) {
			return true
		}
	}

	return false
}

// All reports whether pred holds for every cell. Vacuously true on Empty.
// Complexity: O(width×height) worst case, short-circuits on first failure.
func All[T any](m Matrix[T], pred func(T) bool) bool {
	for _, v := range m.cells {
		if !pred(v) {
			return false
		}
	}

	return true
}

// Equal reports whether a and b have identical dimensions and identical
// cell values under ==.
// Complexity: O(width×height) worst case.
func Equal[T comparable](a, b Matrix[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison, for element
// types that are not comparable or need approximate equality.
// Complexity: O(width×height) worst case.
func EqualFunc[T any](a, b Matrix[T], eq func(T, T) bool) bool {
	if a.width != b.width || a.height != b.height {
		return false
	}
	for i := range a.cells {
		if !eq(a.cells[i], b.cells[i]) {
			return false
		}
	}

	return true
}
