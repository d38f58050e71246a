// File: example_test.go
package gridmat_test

import (
	"fmt"

	"github.com/katalvlaran/gridmat"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Initialize
////////////////////////////////////////////////////////////////////////////////

// ExampleInitialize demonstrates generating a 3×2 matrix from a coordinate
// function. The generator runs once per cell in row-major order.
//
// Complexity: O(W·H), Memory: O(W·H)
func ExampleInitialize() {
	m := gridmat.Initialize(3, 2, func(x, y int) int { return x + y*10 })
	fmt.Print(m)

	// Output:
	// [0, 1, 2]
	// [10, 11, 12]
}

////////////////////////////////////////////////////////////////////////////////
// Example: FromRows
////////////////////////////////////////////////////////////////////////////////

// ExampleFromRows demonstrates ragged-input normalization: the width is the
// shortest input row and longer rows are truncated, never dropped, so the
// output keeps all three rows.
func ExampleFromRows() {
	m := gridmat.FromRows([][]int{
		{1, 2, 3},
		{4, 5},
		{6, 7, 8, 9},
	})
	w, h := m.Size()
	fmt.Printf("size: %d x %d\n", w, h)
	fmt.Print(m)

	// Output:
	// size: 2 x 3
	// [1, 2]
	// [4, 5]
	// [6, 7]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Slice
////////////////////////////////////////////////////////////////////////////////

// ExampleMatrix_Slice demonstrates half-open sub-matrix extraction: columns
// [1,3) of rows [0,2). Out-of-range bounds would be clamped rather than
// rejected.
func ExampleMatrix_Slice() {
	m := gridmat.Initialize(3, 2, func(x, y int) int { return x + y*10 })
	sub := m.Slice(1, 0, 3, 2)

	w, h := sub.Size()
	fmt.Printf("size: %d x %d\n", w, h)
	fmt.Print(sub)

	// Output:
	// size: 2 x 2
	// [1, 2]
	// [11, 12]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Set / Get
////////////////////////////////////////////////////////////////////////////////

// ExampleMatrix_Set demonstrates immutable updates: Set returns a new
// matrix and leaves the receiver untouched; an out-of-bounds Set is a
// silent no-op.
func ExampleMatrix_Set() {
	m := gridmat.Repeat(2, 2, 0)
	n := m.Set(1, 0, 9)

	before, _ := m.Get(1, 0)
	after, _ := n.Get(1, 0)
	fmt.Println("original:", before)
	fmt.Println("updated: ", after)

	same := gridmat.Equal(n, n.Set(5, 5, 1)) // out of bounds: no-op
	fmt.Println("oob no-op:", same)

	// Output:
	// original: 0
	// updated:  9
	// oob no-op: true
}

////////////////////////////////////////////////////////////////////////////////
// Example: Map
////////////////////////////////////////////////////////////////////////////////

// ExampleMap demonstrates an element-type-changing transform from int to
// string with the shape preserved.
func ExampleMap() {
	m := gridmat.FromRows([][]int{{1, 2}, {3, 4}})
	s := gridmat.Map(m, func(v int) string { return fmt.Sprintf("#%d", v) })
	fmt.Print(s)

	// Output:
	// [#1, #2]
	// [#3, #4]
}
