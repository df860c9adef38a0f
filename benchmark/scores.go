// SPDX-License-Identifier: MIT
//
// File: scores.go
// Role: per-plan partisan scores over district vote totals.
// Policy:
//   - Districts are indexed by label-1; every district 1..k is visited.
//   - Zero-vote districts are an error wherever a share or threshold is needed.

package benchmark

import (
	"math"
	"sort"

	"github.com/katalvlaran/redist/canon"
	"github.com/katalvlaran/redist/precinct"
)

// tally holds the per-district aggregates of one plan.
type tally struct {
	k    int
	dem  []float64
	rep  []float64
	size []int
}

// aggregate validates a plan against the graph and sums node columns per
// district.
// Errors: *canon.MappingError (plan length), *canon.CanonicalFormError (labels).
// Complexity: O(N).
func aggregate(g *precinct.Graph, l canon.Labeling) (tally, error) {
	if err := g.CheckLabeling(l); err != nil {
		return tally{}, err
	}
	k, err := canon.CheckContiguous(l)
	if err != nil {
		return tally{}, err
	}
	t := tally{
		k:    k,
		dem:  make([]float64, k),
		rep:  make([]float64, k),
		size: make([]int, k),
	}
	n := l.Len()
	for i := 0; i < n; i++ {
		d := l.Label(i) - 1
		t.dem[d] += g.Dem(i)
		t.rep[d] += g.Rep(i)
		t.size[d]++
	}

	return t, nil
}

// wastedVotes splits a district's wasted votes between the two parties.
// The strict winner wastes votes beyond total/2 and the other party wastes
// everything; on an exact tie the second party is treated as the winner.
func wastedVotes(dem, rep float64) (demWasted, repWasted float64) {
	total := dem + rep
	if dem > rep {
		return dem - total/2, rep
	}

	return dem, rep - total/2
}

// efficiencyGap returns Σ(dem wasted − rep wasted) / Σ votes.
func efficiencyGap(t tally) (float64, error) {
	var wasted, total float64
	for d := 0; d < t.k; d++ {
		votes := t.dem[d] + t.rep[d]
		if votes == 0 {
			return 0, &DegenerateDistrictError{District: d + 1}
		}
		dw, rw := wastedVotes(t.dem[d], t.rep[d])
		wasted += dw - rw
		total += votes
	}

	return wasted / total, nil
}

// demSeats counts democratic wins, with half a seat for each tie.
func demSeats(t tally) float64 {
	var seats float64
	for d := 0; d < t.k; d++ {
		switch {
		case t.dem[d] > t.rep[d]:
			seats++
		case t.dem[d] == t.rep[d]:
			seats += 0.5
		}
	}

	return seats
}

// demShares returns the democratic vote share of every district.
func demShares(t tally) ([]float64, error) {
	shares := make([]float64, t.k)
	for d := 0; d < t.k; d++ {
		votes := t.dem[d] + t.rep[d]
		if votes == 0 {
			return nil, &DegenerateDistrictError{District: d + 1}
		}
		shares[d] = t.dem[d] / votes
	}

	return shares, nil
}

func mean(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}

	return s / float64(len(xs))
}

// median of an ascending slice; even lengths average the two middle values.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func meanMedian(t tally) (float64, error) {
	shares, err := demShares(t)
	if err != nil {
		return 0, err
	}
	sort.Float64s(shares)

	return mean(shares) - median(shares), nil
}

// thirdianIndex is round(k/3) under the given convention.
func thirdianIndex(k int, r Rounding) int {
	x := float64(k) / 3
	if r == RoundHalfUp {
		return int(math.Floor(x + 0.5))
	}

	return int(math.RoundToEven(x))
}

func meanThirdian(t tally, r Rounding) (float64, error) {
	shares, err := demShares(t)
	if err != nil {
		return 0, err
	}
	sort.Float64s(shares)

	return mean(shares) - shares[thirdianIndex(t.k, r)], nil
}

// partitionEntropy is −Σ size·ln(size) over districts.
func partitionEntropy(t tally) float64 {
	var h float64
	for _, s := range t.size {
		if s > 0 {
			h -= float64(s) * math.Log(float64(s))
		}
	}

	return h
}

// populationDeviation is max |pop_d − ideal| / ideal.
func populationDeviation(g *precinct.Graph, l canon.Labeling, t tally) (float64, error) {
	if !g.HasPopulation() {
		return 0, precinct.ErrNoPopulation
	}
	pops := make([]float64, t.k)
	var total float64
	n := l.Len()
	for i := 0; i < n; i++ {
		p, err := g.Population(i)
		if err != nil {
			return 0, err
		}
		pops[l.Label(i)-1] += p
		total += p
	}
	if total == 0 {
		return 0, ErrZeroPopulation
	}
	ideal := total / float64(t.k)
	var worst float64
	for _, p := range pops {
		if dev := math.Abs(p-ideal) / ideal; dev > worst {
			worst = dev
		}
	}

	return worst, nil
}

// evaluate computes one score for one plan.
func evaluate(g *precinct.Graph, l canon.Labeling, kind Kind, o options) (float64, error) {
	t, err := aggregate(g, l)
	if err != nil {
		return 0, err
	}
	switch kind {
	case KindEfficiencyGap:
		return efficiencyGap(t)
	case KindDemSeats:
		return demSeats(t), nil
	case KindRepSeats:
		return float64(t.k) - demSeats(t), nil
	case KindMeanMedian:
		return meanMedian(t)
	case KindMeanThirdian:
		return meanThirdian(t, o.rounding)
	case KindPartitionEntropy:
		return partitionEntropy(t), nil
	case KindPopulationDeviation:
		return populationDeviation(g, l, t)
	}

	return 0, ErrUnknownKind
}
