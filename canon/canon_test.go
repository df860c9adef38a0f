package canon_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/redist/canon"
)

// TestCanonicalize_Reference checks the documented example (3,1,2,1) → (1,2,3,2).
func TestCanonicalize_Reference(t *testing.T) {
	p := canon.Canonicalize([]int{3, 1, 2, 1})

	assert.Equal(t, canon.Labels{1, 2, 3, 2}, p.Labels())
	assert.Equal(t, 3, p.Districts())
	assert.Equal(t, 4, p.Len())
	assert.Equal(t, "(1,2,3,2)", p.String())
}

// TestCanonicalize_StringLabels verifies that non-integer label alphabets work
// and only first-appearance order matters.
func TestCanonicalize_StringLabels(t *testing.T) {
	a := canon.Canonicalize([]string{"north", "south", "north", "east"})
	b := canon.Canonicalize([]int{7, -1, 7, 0})

	assert.Equal(t, a, b, "same cells and first-appearance order must give identical partitions")
	assert.Equal(t, canon.Labels{1, 2, 1, 3}, a.Labels())
}

// TestCanonicalize_Idempotent checks canonicalize(canonicalize(A)) == canonicalize(A).
func TestCanonicalize_Idempotent(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		labels := make([]int, 30)
		for i := range labels {
			labels[i] = r.Intn(6) * 11
		}
		once := canon.Canonicalize(labels)
		twice := canon.Canonicalize([]int(once.Labels()))
		assert.Equal(t, once, twice)
		assert.Equal(t, once, canon.FromLabeling(once.Labels()))
	}
}

// TestCanonicalize_PermutationInvariant relabels through random bijections.
func TestCanonicalize_PermutationInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 50; trial++ {
		const k = 5
		labels := make([]int, 40)
		for i := range labels {
			labels[i] = r.Intn(k)
		}
		perm := r.Perm(k)
		relabeled := make([]int, len(labels))
		for i, l := range labels {
			relabeled[i] = perm[l] + 100
		}
		assert.Equal(t, canon.Canonicalize(labels), canon.Canonicalize(relabeled))
	}
}

// TestPartition_MapKey verifies that partitions are usable as map keys.
func TestPartition_MapKey(t *testing.T) {
	seen := map[canon.Partition]int{}
	seen[canon.Canonicalize([]int{2, 2, 1})]++
	seen[canon.Canonicalize([]string{"a", "a", "b"})]++
	seen[canon.Canonicalize([]int{1, 2, 2})]++

	assert.Len(t, seen, 2)
	assert.Equal(t, 2, seen[canon.Canonicalize([]int{9, 9, 4})])
}

// TestPartition_Cells lists node positions per district.
func TestPartition_Cells(t *testing.T) {
	p := canon.Canonicalize([]int{5, 6, 5, 7, 6})

	assert.Equal(t, [][]int{{0, 2}, {1, 4}, {3}}, p.Cells())
}

// TestPartition_Zero covers the empty plan.
func TestPartition_Zero(t *testing.T) {
	var z canon.Partition
	assert.True(t, z.IsZero())
	assert.Equal(t, 0, z.Len())
	assert.Equal(t, z, canon.Canonicalize([]int{}))
	assert.Equal(t, "()", z.String())
}

// TestFromAssignment uses a fixed node order and rejects partial maps.
func TestFromAssignment(t *testing.T) {
	order := []string{"a", "b", "c", "d"}

	p, err := canon.FromAssignment(order, map[string]string{"d": "x", "c": "y", "b": "x", "a": "y"})
	require.NoError(t, err)
	assert.Equal(t, canon.Labels{1, 2, 1, 2}, p.Labels())

	_, err = canon.FromAssignment(order, map[string]int{"a": 1, "b": 1, "c": 2})
	require.ErrorIs(t, err, canon.ErrMapping)
	var me *canon.MappingError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, "d", me.Node)
	assert.Equal(t, "missing", me.Reason)

	_, err = canon.FromAssignment(order, map[string]int{"a": 1, "b": 1, "c": 2, "d": 2, "zz": 3})
	require.ErrorAs(t, err, &me)
	assert.Equal(t, "zz", me.Node)
	assert.Equal(t, "unknown", me.Reason)
}

// TestCanonicalizeAll canonicalizes a trajectory independently per step.
func TestCanonicalizeAll(t *testing.T) {
	walk := [][]int{{2, 2, 1}, {1, 2, 2}, {3, 3, 1}}
	got := canon.CanonicalizeAll(walk)

	require.Len(t, got, 3)
	assert.Equal(t, got[0], got[2])
	assert.NotEqual(t, got[0], got[1])

	as := []map[string]int{{"x": 4, "y": 4}, {"x": 1}}
	_, err := canon.FromAssignments([]string{"x", "y"}, as)
	assert.ErrorIs(t, err, canon.ErrMapping)
}

// TestCheckContiguous covers valid, non-canonical and gapped labelings.
func TestCheckContiguous(t *testing.T) {
	k, err := canon.CheckContiguous(canon.Labels{2, 2, 1, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, k)

	k, err = canon.CheckContiguous(canon.Canonicalize([]int{9, 8}))
	require.NoError(t, err)
	assert.Equal(t, 2, k)

	_, err = canon.CheckContiguous(canon.Labels{1, 3, 3})
	require.ErrorIs(t, err, canon.ErrCanonicalForm)
	var ce *canon.CanonicalFormError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 2, ce.Label)

	_, err = canon.CheckContiguous(canon.Labels{0, 1})
	assert.ErrorIs(t, err, canon.ErrCanonicalForm)

	_, err = canon.CheckContiguous(canon.Labels{})
	assert.ErrorIs(t, err, canon.ErrCanonicalForm)
}
