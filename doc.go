// Package gridmat provides a generic, immutable-update, rectangular
// two-dimensional container Matrix[T] addressed by (x, y) column/row pairs.
//
// What & Why:
//
//	Matrix[T] stores any element type T in a flat row-major buffer and
//	guarantees two structural invariants at all times:
//
//	  - Rectangularity: every row holds exactly Width() elements.
//	  - Zero-coupling: Width() == 0 if and only if Height() == 0; a matrix
//	    with one zero dimension is the empty matrix, never a degenerate
//	    "3 rows of 0 columns".
//
//	Every operation is a pure function: it returns a new Matrix (or a derived
//	value) and never mutates its receiver, so values can be shared freely
//	across goroutines without locks.
//
// Error philosophy:
//
//	Out-of-range access is a normal outcome, not a failure. Get, Row and
//	Column report absence with a comma-ok bool; Set and Update on an
//	out-of-bounds index return the receiver unchanged; Slice clamps its
//	bounds like Go's own slice expressions. Only NewStrict, the opt-in
//	validating constructor, returns an error (ErrRaggedRows).
//
// Quick example:
//
//	m := gridmat.Initialize(3, 2, func(x, y int) int { return x + y*10 })
//	m = m.Set(1, 0, 99)
//	v, ok := m.Get(1, 0) // v == 99, ok == true
//	sub := m.Slice(1, 0, 3, 2)
//
// There are no numeric operations here: addition, multiplication and
// transposition are out of scope. Matrix[T] is a container, not a
// linear-algebra type.
package gridmat
