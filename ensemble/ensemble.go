// SPDX-License-Identifier: MIT

package ensemble

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/redist/canon"
)

var (
	// ErrBadStep indicates a non-positive step.
	ErrBadStep = errors.New("ensemble: step must be positive")

	// ErrTotalTooSmall indicates a population size below the distinct plans
	// actually observed.
	ErrTotalTooSmall = errors.New("ensemble: total smaller than distinct plans seen")

	// ErrBadEdges indicates bin edges that are fewer than two or not strictly
	// increasing.
	ErrBadEdges = errors.New("ensemble: bin edges must be strictly increasing")
)

// Point is one sample of an exploration curve.
type Point struct {
	Step   int `json:"step"`   // number of plans considered (prefix length)
	Unique int `json:"unique"` // distinct plans in that prefix
}

// Tally counts visits per distinct plan.
// Complexity: O(P).
func Tally(plans []canon.Partition) map[canon.Partition]int {
	out := make(map[canon.Partition]int)
	for _, p := range plans {
		out[p]++
	}

	return out
}

// EnumerationFrequencies returns, for every plan of a full enumeration, how
// often it appears in sample (0 when absent). The result is index-aligned
// with enumeration.
func EnumerationFrequencies(enumeration []canon.Partition, sample map[canon.Partition]int) []int {
	out := make([]int, len(enumeration))
	for i, p := range enumeration {
		out[i] = sample[p]
	}

	return out
}

// ExplorationCounts reports the number of distinct plans among the first
// 1, 1+step, 1+2·step, ... plans (prefixes shorter than len(plans)).
// Errors: ErrBadStep.
// Complexity: O(P).
func ExplorationCounts(plans []canon.Partition, step int) ([]Point, error) {
	if step < 1 {
		return nil, fmt.Errorf("ExplorationCounts(step=%d): %w", step, ErrBadStep)
	}
	seen := make(map[canon.Partition]struct{})
	var out []Point
	added := 0
	for next := 1; next < len(plans); next += step {
		for ; added < next; added++ {
			seen[plans[added]] = struct{}{}
		}
		out = append(out, Point{Step: next, Unique: len(seen)})
	}

	return out, nil
}

// SortedFrequencies returns the visit counts of all total plans in ascending
// order, with a zero for each plan never visited.
// Errors: ErrTotalTooSmall when plans holds more than total distinct plans.
func SortedFrequencies(plans []canon.Partition, total int) ([]int, error) {
	counts := Tally(plans)
	unseen := total - len(counts)
	if unseen < 0 {
		return nil, fmt.Errorf("SortedFrequencies(total=%d, distinct=%d): %w", total, len(counts), ErrTotalTooSmall)
	}
	out := make([]int, unseen, total)
	for _, c := range counts {
		out = append(out, c)
	}
	sort.Ints(out[unseen:])

	return out, nil
}
