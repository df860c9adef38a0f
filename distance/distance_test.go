package distance_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/redist/canon"
	"github.com/katalvlaran/redist/distance"
)

var square = []string{"1", "2", "3", "4"}

// TestHamming_ComplementarySplit: {1,2}|{3,4} vs {1,3}|{2,4} is distance 2.
func TestHamming_ComplementarySplit(t *testing.T) {
	a := map[string]int{"1": 1, "2": 1, "3": 2, "4": 2}
	b := map[string]int{"1": 1, "2": 2, "3": 1, "4": 2}

	d, err := distance.Hamming(square, a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, d)
}

// TestHamming_Relabeling: renaming districts is free.
func TestHamming_Relabeling(t *testing.T) {
	a := map[string]string{"1": "x", "2": "x", "3": "y", "4": "y"}
	b := map[string]string{"1": "q", "2": "q", "3": "p", "4": "p"}

	d, err := distance.Hamming(square, a, b)
	require.NoError(t, err)
	assert.Zero(t, d)
}

func randomPlan(r *rand.Rand, n, k int) canon.Labels {
	l := make(canon.Labels, n)
	for i := range l {
		l[i] = r.Intn(k) + 1
	}
	return l
}

// TestHamming_Properties checks identity and symmetry on random plans, also
// with different district counts.
func TestHamming_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for trial := 0; trial < 100; trial++ {
		a := randomPlan(r, 25, 2+r.Intn(4))
		b := randomPlan(r, 25, 2+r.Intn(4))

		self, err := distance.HammingLabels(a, a)
		require.NoError(t, err)
		assert.Zero(t, self)

		ab, err := distance.HammingLabels(a, b)
		require.NoError(t, err)
		ba, err := distance.HammingLabels(b, a)
		require.NoError(t, err)
		assert.Equal(t, ab, ba, "Hamming must be symmetric")
		assert.GreaterOrEqual(t, ab, 0)
		assert.Less(t, ab, 25)
	}
}

// TestEntropy_KnownValues checks a hand-computed asymmetric pair.
func TestEntropy_KnownValues(t *testing.T) {
	a := map[string]int{"1": 1, "2": 1, "3": 2, "4": 2}
	b := map[string]int{"1": 1, "2": 1, "3": 1, "4": 2}

	ab, err := distance.Entropy(square, a, b)
	require.NoError(t, err)
	wantAB := (-(4.0/3.0)*math.Log(2.0/3.0) - (2.0/3.0)*math.Log(1.0/3.0)) / 4
	assert.InDelta(t, wantAB, ab, 1e-12)

	ba, err := distance.Entropy(square, b, a)
	require.NoError(t, err)
	assert.InDelta(t, math.Ln2/2, ba, 1e-12)
	assert.NotEqual(t, ab, ba, "entropy distance is asymmetric")

	sym, err := distance.SymmetricEntropy(square, a, b)
	require.NoError(t, err)
	assert.InDelta(t, (ab+ba)/2, sym, 1e-12)
}

// TestEntropy_Identity: a plan is at entropy distance 0 from itself.
func TestEntropy_Identity(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for trial := 0; trial < 20; trial++ {
		a := randomPlan(r, 30, 4)
		d, err := distance.EntropyLabels(a, a)
		require.NoError(t, err)
		assert.Zero(t, d)
	}
}

// TestDistance_Validation covers node-set mismatches and malformed maps.
func TestDistance_Validation(t *testing.T) {
	full := map[string]int{"1": 1, "2": 1, "3": 2, "4": 2}
	short := map[string]int{"1": 1, "2": 1, "3": 2}

	_, err := distance.Hamming(square, full, short)
	require.ErrorIs(t, err, distance.ErrNodeSetMismatch)
	var nm *distance.NodeSetMismatchError
	require.ErrorAs(t, err, &nm)
	assert.Equal(t, "4", nm.Node)

	_, err = distance.Entropy(square, short, full)
	assert.ErrorIs(t, err, distance.ErrNodeSetMismatch)

	// Both agree with each other but not with the graph's node set.
	_, err = distance.Hamming(square, short, short)
	assert.ErrorIs(t, err, canon.ErrMapping)

	_, err = distance.HammingLabels(canon.Labels{1, 2}, canon.Labels{1, 2, 2})
	assert.ErrorIs(t, err, distance.ErrNodeSetMismatch)

	_, err = distance.EntropyLabels(canon.Labels{1}, canon.Labels{})
	assert.ErrorIs(t, err, distance.ErrNodeSetMismatch)
}

// TestTuples aligns rows with plans and columns with towers.
func TestTuples(t *testing.T) {
	plans := []canon.Partition{
		canon.Canonicalize([]int{1, 1, 2, 2}),
		canon.Canonicalize([]int{1, 2, 1, 2}),
	}
	// The second tower is deliberately non-canonical.
	towers := []canon.Labeling{canon.Canonicalize([]int{1, 1, 2, 2}), canon.Labels{2, 1, 2, 1}}

	res, err := distance.Tuples(context.Background(), plans, towers)
	require.NoError(t, err)
	assert.Equal(t, distance.MetricHamming, res.Metric)
	assert.Equal(t, [][]float64{{0, 2}, {2, 0}}, res.Distances)
	assert.Empty(t, res.Skipped)

	res, err = distance.Tuples(context.Background(), plans, towers, distance.WithMetric(distance.MetricEntropy), distance.WithWorkers(1))
	require.NoError(t, err)
	assert.Zero(t, res.Distances[0][0])
	assert.Zero(t, res.Distances[1][1])
	assert.Greater(t, res.Distances[0][1], 0.0)
}

// TestTuples_Modes: fail-fast aborts, best-effort skips and reports.
func TestTuples_Modes(t *testing.T) {
	plans := []canon.Labels{{1, 1, 2, 2}, {1, 2}, {1, 2, 2, 1}}
	towers := []canon.Labels{{1, 2, 1, 2}}

	_, err := distance.Tuples(context.Background(), plans, towers, distance.WithMode(distance.FailFast))
	assert.ErrorIs(t, err, distance.ErrNodeSetMismatch)
	var ie *distance.IndexError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 1, ie.Index)

	res, err := distance.Tuples(context.Background(), plans, towers, distance.WithMode(distance.BestEffort))
	require.NoError(t, err)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 1, res.Skipped[0].Index)
	assert.ErrorIs(t, res.Skipped[0].Err, distance.ErrNodeSetMismatch)
	assert.Nil(t, res.Distances[1])
	assert.Equal(t, []float64{2}, res.Distances[0])
	assert.Equal(t, []float64{2}, res.Distances[2])
}

// TestMetric parses names and evaluates via Between.
func TestMetric(t *testing.T) {
	m, err := distance.ParseMetric("Entropy")
	require.NoError(t, err)
	assert.Equal(t, distance.MetricEntropy, m)
	assert.Equal(t, "entropy", m.String())

	_, err = distance.ParseMetric("manhattan")
	assert.ErrorIs(t, err, distance.ErrUnknownMetric)

	d, err := distance.MetricHamming.Between(canon.Labels{1, 1, 2, 2}, canon.Labels{1, 2, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 2.0, d)

	assert.Panics(t, func() { distance.WithWorkers(-1) })
}
