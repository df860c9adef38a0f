// SPDX-License-Identifier: MIT

package matching

import "errors"

var (
	// ErrEmptyMatrix indicates a cost matrix with no rows or no columns.
	ErrEmptyMatrix = errors.New("matching: empty cost matrix")

	// ErrRaggedMatrix indicates rows of different lengths.
	ErrRaggedMatrix = errors.New("matching: ragged cost matrix")

	// ErrCostRange indicates a cost whose magnitude could overflow the
	// potentials (|cost| > MaxCost).
	ErrCostRange = errors.New("matching: cost out of range")

	// ErrNodeOutOfRange indicates a cell member outside [0, n).
	ErrNodeOutOfRange = errors.New("matching: node position out of range")

	// ErrOverlappingCells indicates a node that belongs to two cells of the
	// same plan.
	ErrOverlappingCells = errors.New("matching: node appears in two cells")
)

// MaxCost bounds |cost| so that sums of potentials never overflow int64.
const MaxCost = int64(1) << 40

// unmatched marks a row or column without a partner.
const unmatched = -1

// Assignment is the optimal solution of a (possibly rectangular) assignment
// problem. Exactly min(rows, cols) pairs are matched.
type Assignment struct {
	// RowToCol[i] is the column matched to row i, or -1.
	RowToCol []int

	// ColToRow[j] is the row matched to column j, or -1.
	ColToRow []int

	// Cost is the total cost of the matched pairs.
	Cost int64
}

// Pair links cell A of the first plan with cell B of the second.
type Pair struct {
	A, B    int
	Overlap int // |cellsA[A] ∩ cellsB[B]|
}

// Matching is the overlap-maximizing cell matching of two plans.
type Matching struct {
	// Pairs lists matched cells in ascending order of A. Cells of the larger
	// side that found no partner are absent.
	Pairs []Pair

	// Overlap is the total number of nodes kept in place by the matching.
	Overlap int
}
