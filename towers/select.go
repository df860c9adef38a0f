// SPDX-License-Identifier: MIT
//
// File: select.go
// Role: greedy farthest-point selection over a candidate pool.
// Determinism:
//   - Every argmax scans candidates in index order and only replaces the best
//     on a strictly larger value, so ties go to the lowest index.

package towers

import (
	"context"
	"fmt"

	"github.com/katalvlaran/redist/canon"
	"github.com/katalvlaran/redist/distance"
	"github.com/katalvlaran/redist/internal/parallel"
)

// Select picks count mutually distant plans from candidates.
//
// Implementation:
//   - Stage 1: pairwise distance matrix, one row per worker. The entropy
//     metric is symmetrized as (E(a,b) + E(b,a)) / 2.
//   - Stage 2: seed with the farthest pair (candidate 0 if count == 1).
//   - Stage 3: grow greedily by max of min-distance to the chosen towers.
//
// Errors: ErrBadCount (count < 1), ErrTooFewCandidates, distance errors
// (e.g. *distance.NodeSetMismatchError) wrapped in *parallel.IndexError.
//
// Complexity: O(C²·(N + k³)) for C candidates, plus O(count·C·count) for
// the greedy stage.
func Select(ctx context.Context, candidates []canon.Partition, count int, metric distance.Metric) (Selection, error) {
	if count < 1 {
		return Selection{}, fmt.Errorf("Select(count=%d): %w", count, ErrBadCount)
	}
	if len(candidates) < count {
		return Selection{}, fmt.Errorf("Select(%d of %d): %w", count, len(candidates), ErrTooFewCandidates)
	}

	d, err := pairwise(ctx, candidates, metric)
	if err != nil {
		return Selection{}, err
	}

	chosen := seed(d, count)
	for len(chosen) < count {
		chosen = append(chosen, farthest(d, chosen))
	}

	sel := Selection{
		Towers:    make([]canon.Partition, count),
		Indices:   chosen,
		Distances: make([][]float64, count),
	}
	for i, c := range chosen {
		sel.Towers[i] = candidates[c]
		sel.Distances[i] = make([]float64, count)
		for j, o := range chosen {
			sel.Distances[i][j] = d[c][o]
		}
	}

	return sel, nil
}

// pairwise fills a symmetric distance matrix. Row i owns cells (i, j) and
// (j, i) for j > i, so workers never share a slot.
func pairwise(ctx context.Context, cs []canon.Partition, metric distance.Metric) ([][]float64, error) {
	n := len(cs)
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
	}
	_, err := parallel.Run(ctx, n, parallel.Config{}, func(_ context.Context, i int) error {
		for j := i + 1; j < n; j++ {
			v, err := symmetric(metric, cs[i], cs[j])
			if err != nil {
				return err
			}
			d[i][j], d[j][i] = v, v
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return d, nil
}

func symmetric(metric distance.Metric, a, b canon.Labeling) (float64, error) {
	ab, err := metric.Between(a, b)
	if err != nil {
		return 0, err
	}
	if metric != distance.MetricEntropy {
		return ab, nil
	}
	ba, err := metric.Between(b, a)
	if err != nil {
		return 0, err
	}

	return (ab + ba) / 2, nil
}

// seed returns the first pair with the largest distance.
func seed(d [][]float64, count int) []int {
	if count == 1 || len(d) < 2 {
		return []int{0}
	}
	bi, bj := 0, 1
	for i := range d {
		for j := i + 1; j < len(d); j++ {
			if d[i][j] > d[bi][bj] {
				bi, bj = i, j
			}
		}
	}

	return []int{bi, bj}
}

// farthest returns the unchosen candidate whose nearest chosen tower is
// farthest away.
func farthest(d [][]float64, chosen []int) int {
	taken := make(map[int]bool, len(chosen))
	for _, c := range chosen {
		taken[c] = true
	}
	best, bestScore := -1, 0.0
	for o := range d {
		if taken[o] {
			continue
		}
		score := d[o][chosen[0]]
		for _, c := range chosen[1:] {
			if d[o][c] < score {
				score = d[o][c]
			}
		}
		if best < 0 || score > bestScore {
			best, bestScore = o, score
		}
	}

	return best
}
