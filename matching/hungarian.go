// SPDX-License-Identifier: MIT
//
// File: hungarian.go
// Role: exact rectangular min-cost assignment (Kuhn–Munkres with potentials).
// Policy:
//   - Integer arithmetic only; no epsilons.
//   - Deterministic: fixed loop orders, lowest column index wins ties.

package matching

import (
	"fmt"
	"math"
)

// inf is larger than any reduced cost reachable with |cost| ≤ MaxCost while
// leaving headroom for additions.
const inf = math.MaxInt64 / 4

// Solve returns a minimum-cost assignment for cost, which may be rectangular.
//
// Implementation:
//   - Stage 1: validate shape and cost range.
//   - Stage 2: if rows > cols, solve the transpose so that rows ≤ cols.
//   - Stage 3: add rows one at a time, growing a shortest augmenting path over
//     reduced costs cost[i][j] − u[i] − v[j] and updating potentials.
//   - Stage 4: read the matching back and total its cost.
//
// Errors:
//   - ErrEmptyMatrix, ErrRaggedMatrix, ErrCostRange (wrapped with position).
//
// Complexity: O(r²·c) time with r = min(rows, cols), c = max(rows, cols).
func Solve(cost [][]int64) (Assignment, error) {
	rows := len(cost)
	if rows == 0 || len(cost[0]) == 0 {
		return Assignment{}, ErrEmptyMatrix
	}
	cols := len(cost[0])
	for i, row := range cost {
		if len(row) != cols {
			return Assignment{}, fmt.Errorf("Solve row %d has %d cols, want %d: %w", i, len(row), cols, ErrRaggedMatrix)
		}
		for j, c := range row {
			if c > MaxCost || c < -MaxCost {
				return Assignment{}, fmt.Errorf("Solve(%d,%d)=%d: %w", i, j, c, ErrCostRange)
			}
		}
	}

	// The core routine needs rows ≤ cols; flatten (and transpose if needed)
	// into a row-major buffer.
	transposed := rows > cols
	r, c := rows, cols
	if transposed {
		r, c = cols, rows
	}
	flat := make([]int64, r*c)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if transposed {
				flat[j*c+i] = cost[i][j]
			} else {
				flat[i*c+j] = cost[i][j]
			}
		}
	}

	match := solveWide(flat, r, c) // match[row] = col over the (maybe transposed) buffer

	a := Assignment{
		RowToCol: make([]int, rows),
		ColToRow: make([]int, cols),
	}
	for i := range a.RowToCol {
		a.RowToCol[i] = unmatched
	}
	for j := range a.ColToRow {
		a.ColToRow[j] = unmatched
	}
	for i, j := range match {
		if transposed {
			i, j = j, i
		}
		a.RowToCol[i] = j
		a.ColToRow[j] = i
		a.Cost += cost[i][j]
	}

	return a, nil
}

// solveWide runs the Hungarian method on an r×c row-major matrix with r ≤ c
// and returns the column assigned to each row.
//
// Arrays are 1-based internally: column 0 is a virtual column used as the root
// of each augmenting search, p[j] is the row owning column j (0 = free), and
// way[j] remembers the previous column on the alternating path.
func solveWide(a []int64, r, c int) []int {
	u := make([]int64, r+1) // row potentials
	v := make([]int64, c+1) // column potentials
	p := make([]int, c+1)
	way := make([]int, c+1)
	minv := make([]int64, c+1)
	used := make([]bool, c+1)

	for i := 1; i <= r; i++ {
		p[0] = i
		j0 := 0
		for j := 0; j <= c; j++ {
			minv[j] = inf
			used[j] = false
		}
		for {
			used[j0] = true
			i0 := p[j0]
			delta := int64(inf)
			j1 := 0
			row := a[(i0-1)*c : i0*c]
			for j := 1; j <= c; j++ {
				if used[j] {
					continue
				}
				cur := row[j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= c; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break // reached a free column
			}
		}
		// Flip the alternating path back to the root.
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	match := make([]int, r)
	for j := 1; j <= c; j++ {
		if p[j] != 0 {
			match[p[j]-1] = j - 1
		}
	}

	return match
}
