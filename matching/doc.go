// Package matching finds optimal one-to-one matchings between the district
// cells of two plans over the same nodes.
//
// 🚀 What is inside?
//
//	Solve       — exact minimum-cost assignment on a rectangular integer
//	              matrix (Kuhn–Munkres with row/column potentials).
//	MatchCells  — builds the overlap matrix |A_i ∩ B_j| for two cell lists,
//	              negates it and solves, maximizing the total matched overlap.
//
// The unlabeled Hamming distance between two plans on N nodes is
// N − Matching.Overlap: the fewest node reassignments that turn one plan into
// the other once districts are optimally renamed.
//
// Exactness:
//
//	Costs are int64 and the solver is the primal-dual Hungarian method, so the
//	returned optimum is exact; there is no tolerance and no heuristic. When
//	several optima exist the result is deterministic for a given input.
//
// Complexity:
//
//	Solve on r×c (r ≤ c): O(r²·c) time, O(r·c) space. Wider-than-tall inputs
//	are solved on the transpose. For districting plans r and c are district
//	counts, not node counts.
package matching
