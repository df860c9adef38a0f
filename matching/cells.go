// SPDX-License-Identifier: MIT

package matching

import "fmt"

// OverlapMatrix returns m[i][j] = |cellsA[i] ∩ cellsB[j]| for cells given as
// node positions in [0, n).
//
// Implementation:
//   - Stage 1: index every position to its cell in B (rejecting duplicates).
//   - Stage 2: walk each cell of A once and count hits per B cell.
//
// Positions present on one side only contribute nothing.
//
// Errors:
//   - ErrNodeOutOfRange, ErrOverlappingCells (wrapped with the position).
//
// Complexity: O(n + |A|·|B|) time and space.
func OverlapMatrix(cellsA, cellsB [][]int, n int) ([][]int, error) {
	ownerB := make([]int, n)
	for i := range ownerB {
		ownerB[i] = unmatched
	}
	for j, cell := range cellsB {
		for _, node := range cell {
			if node < 0 || node >= n {
				return nil, fmt.Errorf("OverlapMatrix B[%d] node %d: %w", j, node, ErrNodeOutOfRange)
			}
			if ownerB[node] != unmatched {
				return nil, fmt.Errorf("OverlapMatrix B node %d: %w", node, ErrOverlappingCells)
			}
			ownerB[node] = j
		}
	}

	seenA := make([]bool, n)
	m := make([][]int, len(cellsA))
	for i, cell := range cellsA {
		m[i] = make([]int, len(cellsB))
		for _, node := range cell {
			if node < 0 || node >= n {
				return nil, fmt.Errorf("OverlapMatrix A[%d] node %d: %w", i, node, ErrNodeOutOfRange)
			}
			if seenA[node] {
				return nil, fmt.Errorf("OverlapMatrix A node %d: %w", node, ErrOverlappingCells)
			}
			seenA[node] = true
			if j := ownerB[node]; j != unmatched {
				m[i][j]++
			}
		}
	}

	return m, nil
}

// MatchCells matches the cells of two plans so that the total overlap of
// matched pairs is maximal. Cell counts may differ; the surplus cells of the
// larger side stay unmatched (conceptually matched to empty cells).
//
// The cost handed to Solve is −overlap, so the minimum-cost assignment is the
// maximum-overlap matching.
//
// Errors: those of OverlapMatrix; ErrEmptyMatrix when either side has no cells.
//
// Complexity: O(n + kA·kB·min(kA,kB)).
func MatchCells(cellsA, cellsB [][]int, n int) (Matching, error) {
	overlap, err := OverlapMatrix(cellsA, cellsB, n)
	if err != nil {
		return Matching{}, err
	}
	if len(cellsA) == 0 || len(cellsB) == 0 {
		return Matching{}, ErrEmptyMatrix
	}

	cost := make([][]int64, len(overlap))
	for i, row := range overlap {
		cost[i] = make([]int64, len(row))
		for j, o := range row {
			cost[i][j] = -int64(o)
		}
	}
	a, err := Solve(cost)
	if err != nil {
		return Matching{}, err
	}

	var m Matching
	for i, j := range a.RowToCol {
		if j == unmatched {
			continue
		}
		m.Pairs = append(m.Pairs, Pair{A: i, B: j, Overlap: overlap[i][j]})
		m.Overlap += overlap[i][j]
	}

	return m, nil
}
