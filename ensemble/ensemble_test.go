package ensemble_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/redist/canon"
	"github.com/katalvlaran/redist/ensemble"
)

var (
	p1 = canon.Canonicalize([]int{1, 1, 2, 2})
	p2 = canon.Canonicalize([]int{1, 2, 1, 2})
	p3 = canon.Canonicalize([]int{1, 1, 1, 2})
)

// walk: p1 p1 p2 p1 p3 p2
var walk = []canon.Partition{p1, p1, p2, p1, p3, p2}

func TestTally(t *testing.T) {
	got := ensemble.Tally(walk)
	assert.Equal(t, map[canon.Partition]int{p1: 3, p2: 2, p3: 1}, got)
	assert.Empty(t, ensemble.Tally(nil))
}

func TestEnumerationFrequencies(t *testing.T) {
	p4 := canon.Canonicalize([]int{1, 2, 2, 2})
	got := ensemble.EnumerationFrequencies([]canon.Partition{p4, p3, p2, p1}, ensemble.Tally(walk))
	assert.Equal(t, []int{0, 1, 2, 3}, got)
}

func TestExplorationCounts(t *testing.T) {
	got, err := ensemble.ExplorationCounts(walk, 2)
	require.NoError(t, err)
	assert.Equal(t, []ensemble.Point{{Step: 1, Unique: 1}, {Step: 3, Unique: 2}, {Step: 5, Unique: 3}}, got)

	got, err = ensemble.ExplorationCounts(walk, 1)
	require.NoError(t, err)
	require.Len(t, got, 5, "prefixes 1..5 (the full walk is excluded)")
	assert.Equal(t, ensemble.Point{Step: 4, Unique: 2}, got[3])

	got, err = ensemble.ExplorationCounts(walk[:1], 1)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = ensemble.ExplorationCounts(walk, 0)
	assert.ErrorIs(t, err, ensemble.ErrBadStep)
}

func TestSortedFrequencies(t *testing.T) {
	got, err := ensemble.SortedFrequencies(walk, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 2, 3}, got)

	_, err = ensemble.SortedFrequencies(walk, 2)
	assert.ErrorIs(t, err, ensemble.ErrTotalTooSmall)
}

func TestHistogram(t *testing.T) {
	edges := []float64{0, 1, 2, 4}
	got, err := ensemble.Histogram([]float64{0, 0.5, 1, 3, 4, 9, math.NaN()}, edges)
	require.NoError(t, err)
	// In range: 0, 0.5 | 1 | 3, 4 → 5 values; last bin is 2 wide.
	assert.InDeltaSlice(t, []float64{2.0 / 5, 1.0 / 5, 2.0 / 10}, got, 1e-12)

	var area float64
	for b, d := range got {
		area += d * (edges[b+1] - edges[b])
	}
	assert.InDelta(t, 1.0, area, 1e-12)

	got, err = ensemble.Histogram(nil, edges)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, got)

	_, err = ensemble.Histogram(nil, []float64{1})
	assert.ErrorIs(t, err, ensemble.ErrBadEdges)
	_, err = ensemble.Histogram(nil, []float64{0, 1, 1})
	assert.ErrorIs(t, err, ensemble.ErrBadEdges)
}

func TestHistogramErrors(t *testing.T) {
	edges := []float64{0, 1, 2}
	ref := []float64{0.5, 0.5}
	features := []float64{0.5, 1.5, 0.5, 1.5, 0.5}

	got, err := ensemble.HistogramErrors(features, ref, edges, 1)
	require.NoError(t, err)
	// Prefix 1: [1 0] → 1. Prefix 2: [.5 .5] → 0. Prefix 3: [2/3 1/3] → 1/3.
	// Prefix 4: balanced again → 0.
	assert.InDeltaSlice(t, []float64{1, 0, 1.0 / 3, 0}, got, 1e-12)

	_, err = ensemble.HistogramErrors(features, []float64{1}, edges, 1)
	assert.ErrorIs(t, err, ensemble.ErrShape)
	_, err = ensemble.HistogramErrors(features, ref, edges, -2)
	assert.ErrorIs(t, err, ensemble.ErrBadStep)
}
