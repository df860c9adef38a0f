package benchmark_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/redist/benchmark"
	"github.com/katalvlaran/redist/canon"
	"github.com/katalvlaran/redist/precinct"
)

type votes struct{ dem, rep, pop float64 }

func buildGraph(t *testing.T, vs []votes, opts ...precinct.Option) *precinct.Graph {
	t.Helper()
	nodes := make([]precinct.Node, len(vs))
	for i, v := range vs {
		nodes[i] = precinct.Node{
			ID:    string(rune('1' + i)),
			Attrs: map[string]float64{"DV": v.dem, "RV": v.rep, "POP": v.pop},
		}
	}
	g, err := precinct.NewGraph(nodes, nil, opts...)
	require.NoError(t, err)
	return g
}

// twoDistricts: district 1 is 60/40, district 2 is 30/70.
func twoDistricts(t *testing.T) *precinct.Graph {
	return buildGraph(t, []votes{{30, 20, 0}, {30, 20, 0}, {15, 35, 0}, {15, 35, 0}})
}

// threeDistricts: shares 0.6, 0.3, 0.4.
func threeDistricts(t *testing.T) *precinct.Graph {
	return buildGraph(t, []votes{
		{30, 20, 10}, {30, 20, 10},
		{15, 35, 10}, {15, 35, 10},
		{20, 30, 20}, {20, 30, 20},
	}, precinct.WithPopulationAttr("POP"))
}

// TestEfficiencyGap: district 1 nets 10−40, district 2 nets 30−20.
func TestEfficiencyGap(t *testing.T) {
	g := twoDistricts(t)
	eg, err := benchmark.EfficiencyGap(g, []canon.Labels{{1, 1, 2, 2}, {2, 2, 1, 1}})
	require.NoError(t, err)
	require.Len(t, eg, 2)
	assert.InDelta(t, -0.1, eg[0], 1e-12)
	assert.InDelta(t, eg[0], eg[1], 1e-12)
}

// TestEfficiencyGap_Tie: on an exact tie the republican side wastes the
// surplus and democrats waste everything.
func TestEfficiencyGap_Tie(t *testing.T) {
	g := buildGraph(t, []votes{{50, 50, 0}})
	eg, err := benchmark.EfficiencyGap(g, []canon.Labels{{1}})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, eg[0], 1e-12)
}

func TestSeats(t *testing.T) {
	g := twoDistricts(t)
	plans := []canon.Partition{canon.Canonicalize([]int{1, 1, 2, 2}), canon.Canonicalize([]int{1, 2, 1, 2})}

	dem, err := benchmark.DemSeats(g, plans)
	require.NoError(t, err)
	rep, err := benchmark.RepSeats(g, plans)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 0}, dem, "second plan gives both districts 45/55")
	assert.Equal(t, []float64{1, 2}, rep)
}

// TestSeats_AllDistricts guards against skipping the last district.
func TestSeats_AllDistricts(t *testing.T) {
	g := buildGraph(t, []votes{{10, 0, 0}, {10, 0, 0}, {10, 0, 0}})
	dem, err := benchmark.DemSeats(g, []canon.Labels{{1, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, dem)
}

func TestMeanMedianThirdian(t *testing.T) {
	g := threeDistricts(t)
	want := 1.3/3 - 0.4

	mm, err := benchmark.MeanMedian(g, []canon.Labels{{1, 1, 2, 2, 3, 3}})
	require.NoError(t, err)
	assert.InDelta(t, want, mm[0], 1e-12)

	mt, err := benchmark.MeanThirdian(g, []canon.Labels{{1, 1, 2, 2, 3, 3}})
	require.NoError(t, err)
	assert.InDelta(t, want, mt[0], 1e-12)

	// Even district count: median averages the middle two shares.
	mm, err = benchmark.MeanMedian(twoDistricts(t), []canon.Labels{{1, 1, 2, 2}})
	require.NoError(t, err)
	assert.InDelta(t, 0, mm[0], 1e-12)
}

// TestScores_RelabelingInvariance runs every partisan score on non-canonical
// relabelings of one plan.
func TestScores_RelabelingInvariance(t *testing.T) {
	g := threeDistricts(t)
	plans := []canon.Labels{
		{1, 1, 2, 2, 3, 3},
		{3, 3, 1, 1, 2, 2},
		{2, 2, 3, 3, 1, 1},
		{3, 3, 2, 2, 1, 1},
	}
	for _, kind := range benchmark.Kinds() {
		res, err := benchmark.Score(context.Background(), g, plans, kind)
		require.NoError(t, err, kind.String())
		for i := 1; i < len(plans); i++ {
			assert.InDelta(t, res.Values[0], res.Values[i], 1e-12, "%v plan %d", kind, i)
		}
	}
}

func TestMeanThirdian_Rounding(t *testing.T) {
	g := threeDistricts(t)
	plans := []canon.Labels{{1, 1, 2, 2, 3, 3}, {1, 2, 3, 4, 5, 6}, {1, 1, 2, 3, 4, 4}}
	even, err := benchmark.MeanThirdian(g, plans)
	require.NoError(t, err)
	up, err := benchmark.MeanThirdian(g, plans, benchmark.WithThirdianRounding(benchmark.RoundHalfUp))
	require.NoError(t, err)
	assert.Equal(t, even, up, "k/3 never ends in .5")

	assert.Panics(t, func() { benchmark.WithThirdianRounding(benchmark.Rounding(7)) })

	r, err := benchmark.ParseRounding("half_up")
	require.NoError(t, err)
	assert.Equal(t, benchmark.RoundHalfUp, r)
	_, err = benchmark.ParseRounding("banker")
	assert.Error(t, err)
}

func TestPartitionEntropy(t *testing.T) {
	g := threeDistricts(t)
	h, err := benchmark.PartitionEntropy(g, []canon.Labels{{1, 1, 2, 2, 3, 3}, {1, 1, 1, 1, 1, 2}})
	require.NoError(t, err)
	assert.InDelta(t, -6*math.Ln2, h[0], 1e-12)
	assert.InDelta(t, -5*math.Log(5), h[1], 1e-12)
}

func TestPopulationDeviation(t *testing.T) {
	g := threeDistricts(t)
	dev, err := benchmark.PopulationDeviation(g, []canon.Labels{{1, 1, 2, 2, 3, 3}})
	require.NoError(t, err)
	// pops 20, 20, 40; ideal 80/3.
	ideal := 80.0 / 3
	assert.InDelta(t, (40-ideal)/ideal, dev[0], 1e-12)

	_, err = benchmark.PopulationDeviation(twoDistricts(t), []canon.Labels{{1, 1, 2, 2}})
	assert.ErrorIs(t, err, precinct.ErrNoPopulation)

	empty := buildGraph(t, []votes{{1, 1, 0}, {1, 1, 0}}, precinct.WithPopulationAttr("POP"))
	_, err = benchmark.PopulationDeviation(empty, []canon.Labels{{1, 2}})
	assert.ErrorIs(t, err, benchmark.ErrZeroPopulation)
}

func TestScores_Errors(t *testing.T) {
	g := buildGraph(t, []votes{{0, 0, 0}, {10, 5, 0}, {5, 10, 0}})

	_, err := benchmark.EfficiencyGap(g, []canon.Labels{{1, 2, 2}})
	require.ErrorIs(t, err, benchmark.ErrDegenerateDistrict)
	var dd *benchmark.DegenerateDistrictError
	require.ErrorAs(t, err, &dd)
	assert.Equal(t, 1, dd.District)

	_, err = benchmark.MeanMedian(g, []canon.Labels{{2, 1, 1}})
	require.ErrorAs(t, err, &dd)
	assert.Equal(t, 2, dd.District)

	_, err = benchmark.MeanThirdian(g, []canon.Labels{{1, 2, 2}})
	assert.ErrorIs(t, err, benchmark.ErrDegenerateDistrict)

	seats, err := benchmark.DemSeats(g, []canon.Labels{{1, 2, 2}})
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, seats, "0/0 and 15/15 are both half a seat")

	_, err = benchmark.EfficiencyGap(g, []canon.Labels{{1, 3, 3}})
	require.ErrorIs(t, err, canon.ErrCanonicalForm)
	var cf *canon.CanonicalFormError
	assert.ErrorAs(t, err, &cf)

	_, err = benchmark.DemSeats(g, []canon.Labels{{1, 2}})
	require.ErrorIs(t, err, canon.ErrMapping)
	var me *canon.MappingError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, "3", me.Node)
}

func TestScore_Modes(t *testing.T) {
	g := twoDistricts(t)
	plans := []canon.Labels{{1, 1, 2, 2}, {1, 1, 3, 3}, {1, 2}, {2, 2, 1, 1}}

	_, err := benchmark.Score(context.Background(), g, plans, benchmark.KindEfficiencyGap, benchmark.WithWorkers(1))
	require.Error(t, err)
	var ie *benchmark.IndexError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 1, ie.Index)
	assert.ErrorIs(t, err, canon.ErrCanonicalForm)

	res, err := benchmark.Score(context.Background(), g, plans, benchmark.KindEfficiencyGap, benchmark.WithBestEffort())
	require.NoError(t, err)
	require.Len(t, res.Skipped, 2)
	assert.Equal(t, 1, res.Skipped[0].Index)
	assert.Equal(t, 2, res.Skipped[1].Index)
	assert.ErrorIs(t, res.Skipped[1].Err, canon.ErrMapping)
	assert.True(t, math.IsNaN(res.Values[1]))
	assert.True(t, math.IsNaN(res.Values[2]))
	assert.InDelta(t, -0.1, res.Values[0], 1e-12)
	assert.InDelta(t, -0.1, res.Values[3], 1e-12)

	_, err = benchmark.Score(context.Background(), g, plans, benchmark.Kind(99))
	assert.ErrorIs(t, err, benchmark.ErrUnknownKind)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = benchmark.Score(ctx, g, plans, benchmark.KindDemSeats)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestScores_BestEffort: the per-metric functions honor batch options.
func TestScores_BestEffort(t *testing.T) {
	g := buildGraph(t, []votes{{10, 5, 0}, {0, 0, 0}})
	plans := []canon.Labels{{1, 1}, {1, 2}, {1, 1}}

	_, err := benchmark.EfficiencyGap(g, plans)
	require.ErrorIs(t, err, benchmark.ErrDegenerateDistrict)
	var ie *benchmark.IndexError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 1, ie.Index)

	for _, opt := range []benchmark.Option{benchmark.WithBestEffort(), benchmark.WithMode(benchmark.BestEffort)} {
		eg, err := benchmark.EfficiencyGap(g, plans, opt, benchmark.WithWorkers(2))
		require.NoError(t, err)
		require.Len(t, eg, 3)
		// 10 dem vs 5 rep: dem wastes 2.5, rep wastes 5.
		assert.InDelta(t, -2.5/15, eg[0], 1e-12)
		assert.True(t, math.IsNaN(eg[1]))
		assert.InDelta(t, -2.5/15, eg[2], 1e-12)
	}

	mm, err := benchmark.MeanMedian(g, plans, benchmark.WithBestEffort())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(mm[1]))
	assert.InDelta(t, 0, mm[0], 1e-12)
}

func TestParseKind(t *testing.T) {
	for _, k := range benchmark.Kinds() {
		got, err := benchmark.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := benchmark.ParseKind("compactness")
	assert.ErrorIs(t, err, benchmark.ErrUnknownKind)
}
