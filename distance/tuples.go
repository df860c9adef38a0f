// SPDX-License-Identifier: MIT

package distance

import (
	"context"
	"fmt"

	"github.com/katalvlaran/redist/canon"
	"github.com/katalvlaran/redist/internal/parallel"
)

// Tuples computes, for every plan, the distance to each tower under one
// metric. Result.Distances[p][t] is the distance from plans[p] to towers[t];
// for the entropy metric the plan is the first argument.
//
// Implementation:
//   - Stage 1: re-canonicalize towers (they are expected canonical already,
//     but collaborators are not trusted) and precompute their cells once.
//   - Stage 2: evaluate plans in parallel; each plan builds its cells once
//     and reuses them across towers.
//
// Errors:
//   - fail-fast (default): the first failing plan aborts the batch; the error
//     is a *IndexError wrapping e.g. *NodeSetMismatchError.
//   - best-effort (WithBestEffort): failing plans get a nil row and are listed
//     in Result.Skipped; the returned error is nil unless ctx was cancelled.
//
// Complexity: O(P·T·(N + k³)) time in total, O(P·T) result space.
func Tuples[P, T canon.Labeling](ctx context.Context, plans []P, towers []T, opts ...Option) (Result, error) {
	o := options{metric: MetricHamming}
	for _, opt := range opts {
		opt(&o)
	}
	if o.metric != MetricHamming && o.metric != MetricEntropy {
		return Result{}, fmt.Errorf("Tuples(%v): %w", o.metric, ErrUnknownMetric)
	}

	towerCells := make([][][]int, len(towers))
	towerLen := make([]int, len(towers))
	for t, tw := range towers {
		towerCells[t] = cellsOf(tw)
		towerLen[t] = tw.Len()
	}

	res := Result{Metric: o.metric, Distances: make([][]float64, len(plans))}
	skipped, err := parallel.Run(ctx, len(plans), o.run, func(_ context.Context, p int) error {
		plan := plans[p]
		n := plan.Len()
		pc := cellsOf(plan)
		row := make([]float64, len(towers))
		for t := range towers {
			if towerLen[t] != n {
				return &NodeSetMismatchError{LenA: n, LenB: towerLen[t]}
			}
			switch o.metric {
			case MetricHamming:
				d, err := hammingCells(pc, towerCells[t], n)
				if err != nil {
					return err
				}
				row[t] = float64(d)
			case MetricEntropy:
				d, err := entropyCells(pc, towerCells[t], n)
				if err != nil {
					return err
				}
				row[t] = d
			}
		}
		res.Distances[p] = row
		return nil
	})
	res.Skipped = skipped
	if err != nil {
		return res, err
	}

	return res, nil
}
