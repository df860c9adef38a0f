// SPDX-License-Identifier: MIT

package ensemble

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrShape indicates a reference histogram whose length does not match the
// bin edges.
var ErrShape = errors.New("ensemble: histogram length does not match bins")

// Histogram returns the density histogram of values over edges: bin b covers
// [edges[b], edges[b+1]) and the last bin is closed on the right. Values
// outside [edges[0], edges[last]] are ignored. Densities integrate to 1 over
// the bins; with no in-range value every bin is 0.
// Errors: ErrBadEdges.
// Complexity: O(V·log B).
func Histogram(values, edges []float64) ([]float64, error) {
	if err := checkEdges(edges); err != nil {
		return nil, err
	}
	counts := make([]int, len(edges)-1)
	in := 0
	for _, v := range values {
		if b := bin(edges, v); b >= 0 {
			counts[b]++
			in++
		}
	}

	return density(counts, in, edges), nil
}

// HistogramErrors tracks how fast a sampled feature sequence converges to a
// reference density. For every prefix length 1, 1+step, ... below
// len(features) it returns Σ_b |hist(prefix)_b − reference_b|.
// Errors: ErrBadEdges, ErrShape, ErrBadStep.
// Complexity: O(V·log B + (V/step)·B).
func HistogramErrors(features, reference, edges []float64, step int) ([]float64, error) {
	if err := checkEdges(edges); err != nil {
		return nil, err
	}
	if len(reference) != len(edges)-1 {
		return nil, fmt.Errorf("HistogramErrors(%d bins, %d reference): %w", len(edges)-1, len(reference), ErrShape)
	}
	if step < 1 {
		return nil, fmt.Errorf("HistogramErrors(step=%d): %w", step, ErrBadStep)
	}

	counts := make([]int, len(reference))
	in, added := 0, 0
	var out []float64
	for next := 1; next < len(features); next += step {
		for ; added < next; added++ {
			if b := bin(edges, features[added]); b >= 0 {
				counts[b]++
				in++
			}
		}
		var l1 float64
		for b, d := range density(counts, in, edges) {
			l1 += math.Abs(d - reference[b])
		}
		out = append(out, l1)
	}

	return out, nil
}

func checkEdges(edges []float64) error {
	if len(edges) < 2 {
		return fmt.Errorf("%d edges: %w", len(edges), ErrBadEdges)
	}
	for i := 1; i < len(edges); i++ {
		if !(edges[i] > edges[i-1]) {
			return fmt.Errorf("edge %d: %w", i, ErrBadEdges)
		}
	}

	return nil
}

// bin returns the bin index of v, or -1 when v is out of range or NaN.
func bin(edges []float64, v float64) int {
	last := len(edges) - 1
	if !(v >= edges[0] && v <= edges[last]) {
		return -1
	}
	if v == edges[last] {
		return last - 1
	}

	// First edge strictly greater than v, minus one.
	return sort.Search(len(edges), func(i int) bool { return edges[i] > v }) - 1
}

func density(counts []int, in int, edges []float64) []float64 {
	out := make([]float64, len(counts))
	if in == 0 {
		return out
	}
	for b, c := range counts {
		out[b] = float64(c) / (float64(in) * (edges[b+1] - edges[b]))
	}

	return out
}
