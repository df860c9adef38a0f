// SPDX-License-Identifier: MIT

package benchmark

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/redist/canon"
	"github.com/katalvlaran/redist/internal/parallel"
	"github.com/katalvlaran/redist/precinct"
)

// batch runs Score for the per-metric entry points. Every batch option is
// honored: in best-effort mode failing plans hold NaN and the error is nil;
// call Score directly to see why each one was skipped.
func batch[P canon.Labeling](g *precinct.Graph, plans []P, kind Kind, opts []Option) ([]float64, error) {
	res, err := Score(context.Background(), g, plans, kind, opts...)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", kind, err)
	}

	return res.Values, nil
}

// EfficiencyGap scores each plan with Σ(dem wasted − rep wasted) / total votes.
// Positive values favor republicans.
// Errors (fail-fast): *IndexError wrapping *canon.MappingError,
// *canon.CanonicalFormError or *DegenerateDistrictError.
// Complexity: O(P·N).
func EfficiencyGap[P canon.Labeling](g *precinct.Graph, plans []P, opts ...Option) ([]float64, error) {
	return batch(g, plans, KindEfficiencyGap, opts)
}

// DemSeats counts the districts each plan gives to democrats. A tie counts
// as half a seat.
func DemSeats[P canon.Labeling](g *precinct.Graph, plans []P, opts ...Option) ([]float64, error) {
	return batch(g, plans, KindDemSeats, opts)
}

// RepSeats is k − DemSeats for each plan.
func RepSeats[P canon.Labeling](g *precinct.Graph, plans []P, opts ...Option) ([]float64, error) {
	return batch(g, plans, KindRepSeats, opts)
}

// MeanMedian scores each plan with mean(dem share) − median(dem share).
// For an even district count the median averages the two middle shares.
func MeanMedian[P canon.Labeling](g *precinct.Graph, plans []P, opts ...Option) ([]float64, error) {
	return batch(g, plans, KindMeanMedian, opts)
}

// MeanThirdian scores each plan with mean(dem share) minus the ascending
// share at index round(k/3). See DefaultThirdianRounding.
func MeanThirdian[P canon.Labeling](g *precinct.Graph, plans []P, opts ...Option) ([]float64, error) {
	return batch(g, plans, KindMeanThirdian, opts)
}

// PartitionEntropy returns −Σ size·ln(size) over each plan's districts,
// where size is the node count.
func PartitionEntropy[P canon.Labeling](g *precinct.Graph, plans []P, opts ...Option) ([]float64, error) {
	return batch(g, plans, KindPartitionEntropy, opts)
}

// PopulationDeviation returns max |pop_d − ideal| / ideal per plan.
// Errors: precinct.ErrNoPopulation when the graph carries no population,
// ErrZeroPopulation when it sums to zero.
func PopulationDeviation[P canon.Labeling](g *precinct.Graph, plans []P, opts ...Option) ([]float64, error) {
	return batch(g, plans, KindPopulationDeviation, opts)
}

// Score evaluates one kind over a batch of plans in parallel.
//
// Implementation:
//   - Stage 1: resolve options; reject an unknown kind before any work.
//   - Stage 2: parallel.Run over plans; each worker writes only its own slot.
//
// Errors:
//   - fail-fast (default): the first failure aborts, wrapped in
//     *IndexError.
//   - best-effort: failing plans hold NaN and are listed in Result.Skipped.
//
// Complexity: O(P·N) time, O(P + k) space per worker.
func Score[P canon.Labeling](ctx context.Context, g *precinct.Graph, plans []P, kind Kind, opts ...Option) (Result, error) {
	if kind < 0 || int(kind) >= len(kindNames) {
		return Result{}, fmt.Errorf("Score(%v): %w", kind, ErrUnknownKind)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	res := Result{Kind: kind, Values: make([]float64, len(plans))}
	skipped, err := parallel.Run(ctx, len(plans), o.run, func(_ context.Context, i int) error {
		v, err := evaluate(g, plans[i], kind, o)
		if err != nil {
			res.Values[i] = math.NaN()
			return err
		}
		res.Values[i] = v
		return nil
	})
	res.Skipped = skipped

	return res, err
}
