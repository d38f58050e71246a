// SPDX-License-Identifier: MIT
// Package gridmat: sentinel error set.
// Every message is prefixed with "gridmat: ..." for consistency and easy
// grepping. Callers match with errors.Is. The permissive API surface never
// returns errors at all — absence and no-ops are modeled as values — so the
// set below covers only the opt-in strict constructor.

package gridmat

import "errors"

// ErrRaggedRows indicates that NewStrict received rows of differing lengths.
var ErrRaggedRows = errors.New("gridmat: rows must all have the same length")
