// SPDX-License-Identifier: MIT
//
// File: region.go
// Role: seeded random flood-fill plans, a reference CandidateSource.
// Determinism:
//   - Candidate i draws from its own stream derived from (Seed, i), so output
//     does not depend on worker scheduling.
//   - math/rand.Rand is not goroutine-safe; each worker owns its stream.

package towers

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/redist/bfs"
	"github.com/katalvlaran/redist/canon"
	"github.com/katalvlaran/redist/internal/parallel"
	"github.com/katalvlaran/redist/precinct"
)

// defaultSeed replaces Seed == 0.
const defaultSeed int64 = 1

// RegionGrowth grows Districts regions from random seed nodes with a
// randomized multi-source breadth-first search, so region shapes vary from
// draw to draw while staying connected.
type RegionGrowth struct {
	Districts int
	Seed      int64

	// Workers bounds parallel draws (0 = GOMAXPROCS).
	Workers int
}

// Candidates implements CandidateSource.
//
// Errors: ErrBadCount (Districts < 1 or > g.Len(), n < 0), ErrDisconnected
// when the graph is not connected (checked once, before any draw), ctx.Err().
//
// Complexity: O(n·(N + E)).
func (r RegionGrowth) Candidates(ctx context.Context, g *precinct.Graph, n int) ([]canon.Partition, error) {
	if r.Districts < 1 || r.Districts > g.Len() || n < 0 {
		return nil, fmt.Errorf("RegionGrowth(districts=%d, nodes=%d, n=%d): %w", r.Districts, g.Len(), n, ErrBadCount)
	}
	if err := connectedCheck(ctx, g); err != nil {
		return nil, err
	}
	base := r.Seed
	if base == 0 {
		base = defaultSeed
	}

	out := make([]canon.Partition, n)
	_, err := parallel.Run(ctx, n, parallel.Config{Workers: r.Workers}, func(ctx context.Context, i int) error {
		rng := rand.New(rand.NewSource(deriveSeed(base, uint64(i))))
		p, err := grow(ctx, g, r.Districts, rng)
		if err != nil {
			return err
		}
		out[i] = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// deriveSeed mixes a parent seed and a stream id (SplitMix64 finalizer).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// connectedCheck fails with ErrDisconnected when some node is unreachable
// from position 0.
func connectedCheck(ctx context.Context, g *precinct.Graph) error {
	res, err := bfs.BFS(g, []int{0}, bfs.WithContext(ctx))
	if err != nil {
		return err
	}
	if lost := res.Unreached(); len(lost) > 0 {
		return fmt.Errorf("RegionGrowth: node %q: %w", g.ID(lost[0]), ErrDisconnected)
	}

	return nil
}

// grow returns one plan with k connected regions: a multi-source search from
// k random seeds that expands a uniformly random frontier entry at each step.
// Every node joins the region of the first seed tree that discovers it.
func grow(ctx context.Context, g *precinct.Graph, k int, rng *rand.Rand) (canon.Partition, error) {
	res, err := bfs.BFS(g, rng.Perm(g.Len())[:k], bfs.WithContext(ctx), bfs.WithPick(rng.Intn))
	if err != nil {
		return canon.Partition{}, err
	}
	labels := make([]int, g.Len())
	for i, s := range res.Source {
		if s < 0 {
			return canon.Partition{}, fmt.Errorf("grow: node %q: %w", g.ID(i), ErrDisconnected)
		}
		labels[i] = s + 1
	}

	return canon.Canonicalize(labels), nil
}
