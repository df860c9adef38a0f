// SPDX-License-Identifier: MIT
//
// File: distance.go
// Role: pairwise Hamming and entropy distances (map and labeling forms).

package distance

import (
	"math"

	"github.com/katalvlaran/redist/canon"
	"github.com/katalvlaran/redist/matching"
)

// Hamming returns the unlabeled Hamming distance between two node→label
// assignments over nodes: N − maximum matched overlap of their cells.
//
// Validation runs in this order: a and b must label the same node set
// (*NodeSetMismatchError), then that set must be exactly nodes
// (*canon.MappingError).
//
// Complexity: O(N + kA·kB·min(kA,kB)).
func Hamming[L comparable](nodes []string, a, b map[string]L) (int, error) {
	ca, cb, err := assignmentCells(nodes, a, b)
	if err != nil {
		return 0, err
	}

	return hammingCells(ca, cb, len(nodes))
}

// Entropy returns the entropy distance of a relative to b over nodes.
// Entropy(nodes, a, b) and Entropy(nodes, b, a) generally differ.
// Validation is the same as Hamming.
//
// Complexity: O(N + kA·kB).
func Entropy[L comparable](nodes []string, a, b map[string]L) (float64, error) {
	ca, cb, err := assignmentCells(nodes, a, b)
	if err != nil {
		return 0, err
	}

	return entropyCells(ca, cb, len(nodes))
}

// SymmetricEntropy averages both directions of Entropy.
func SymmetricEntropy[L comparable](nodes []string, a, b map[string]L) (float64, error) {
	ca, cb, err := assignmentCells(nodes, a, b)
	if err != nil {
		return 0, err
	}
	ab, err := entropyCells(ca, cb, len(nodes))
	if err != nil {
		return 0, err
	}
	ba, err := entropyCells(cb, ca, len(nodes))
	if err != nil {
		return 0, err
	}

	return (ab + ba) / 2, nil
}

// HammingLabels is Hamming for two labelings in the shared node order.
// Errors: *NodeSetMismatchError when lengths differ.
func HammingLabels(a, b canon.Labeling) (int, error) {
	if err := sameLength(a, b); err != nil {
		return 0, err
	}

	return hammingCells(cellsOf(a), cellsOf(b), a.Len())
}

// EntropyLabels is Entropy for two labelings in the shared node order.
// Errors: *NodeSetMismatchError when lengths differ.
func EntropyLabels(a, b canon.Labeling) (float64, error) {
	if err := sameLength(a, b); err != nil {
		return 0, err
	}

	return entropyCells(cellsOf(a), cellsOf(b), a.Len())
}

// hammingCells computes N − matched overlap. Empty plans are at distance 0.
func hammingCells(ca, cb [][]int, n int) (int, error) {
	if n == 0 {
		return 0, nil
	}
	m, err := matching.MatchCells(ca, cb, n)
	if err != nil {
		return 0, err
	}

	return n - m.Overlap, nil
}

// entropyCells accumulates −|A_i|·p·ln p with p = |A_i∩B_j|/|B_j| over
// non-empty intersections, divided by n.
func entropyCells(ca, cb [][]int, n int) (float64, error) {
	if n == 0 {
		return 0, nil
	}
	overlap, err := matching.OverlapMatrix(ca, cb, n)
	if err != nil {
		return 0, err
	}
	var sum float64
	for i, row := range overlap {
		sizeA := float64(len(ca[i]))
		for j, shared := range row {
			if shared == 0 {
				continue
			}
			p := float64(shared) / float64(len(cb[j]))
			sum -= sizeA * p * math.Log(p)
		}
	}

	return sum / float64(n), nil
}

// cellsOf canonicalizes a labeling (cheap for canon.Partition) and returns
// its cells as node positions.
func cellsOf(l canon.Labeling) [][]int {
	return canon.FromLabeling(l).Cells()
}

func sameLength(a, b canon.Labeling) error {
	if a.Len() != b.Len() {
		return &NodeSetMismatchError{LenA: a.Len(), LenB: b.Len()}
	}

	return nil
}

// assignmentCells validates two assignments and returns their cells along
// the node order.
func assignmentCells[L comparable](nodes []string, a, b map[string]L) ([][]int, [][]int, error) {
	if err := sameKeys(a, b); err != nil {
		return nil, nil, err
	}
	seqA, err := canon.Sequence(nodes, a)
	if err != nil {
		return nil, nil, err
	}
	seqB, err := canon.Sequence(nodes, b)
	if err != nil {
		return nil, nil, err
	}

	return canon.Canonicalize(seqA).Cells(), canon.Canonicalize(seqB).Cells(), nil
}

// sameKeys checks that a and b label exactly the same nodes.
func sameKeys[L comparable](a, b map[string]L) error {
	for n := range a {
		if _, ok := b[n]; !ok {
			return &NodeSetMismatchError{Node: n, LenA: len(a), LenB: len(b)}
		}
	}
	if len(a) != len(b) {
		for n := range b {
			if _, ok := a[n]; !ok {
				return &NodeSetMismatchError{Node: n, LenA: len(a), LenB: len(b)}
			}
		}
	}

	return nil
}
