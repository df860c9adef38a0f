// Package distance measures how far apart two districting plans on the same
// nodes are, and tracks whole trajectories against a list of reference plans
// (towers).
//
// Metrics:
//
//	Hamming  — unlabeled Hamming distance: N − (maximum total overlap of a
//	           one-to-one matching between the two plans' cells). 0 for equal
//	           plans; symmetric. Solved exactly with package matching.
//
//	Entropy  — Σ over cell pairs with A_i ∩ B_j ≠ ∅ of
//	           −|A_i| · p · ln p,  p = |A_i ∩ B_j| / |B_j|,  divided by N.
//	           0 for equal plans. NOT symmetric: the normalizer uses the cell
//	           sizes of the second argument. Use SymmetricEntropy when an
//	           order-free value is required.
//
// Inputs come in two shapes:
//
//	map form       Hamming(nodes, a, b) / Entropy(nodes, a, b) with
//	               node→label assignments of any comparable label type.
//	labeling form  HammingLabels / EntropyLabels on canon.Labeling plans that
//	               share the fixed node order.
//
// Tuples is the batch form: for every plan, one distance per tower, computed
// in parallel, fail-fast by default or best-effort on request.
package distance
