// SPDX-License-Identifier: MIT

package towers

import (
	"context"
	"errors"

	"github.com/katalvlaran/redist/canon"
	"github.com/katalvlaran/redist/distance"
	"github.com/katalvlaran/redist/precinct"
)

var (
	// ErrBadCount indicates a non-positive tower or district count, or more
	// districts than nodes.
	ErrBadCount = errors.New("towers: bad count")

	// ErrTooFewCandidates indicates fewer distinct candidates than towers
	// requested.
	ErrTooFewCandidates = errors.New("towers: too few distinct candidates")

	// ErrDisconnected indicates a flood fill that could not reach every node.
	ErrDisconnected = errors.New("towers: graph not reachable from seeds")

	// ErrNoSource indicates a Pool without a CandidateSource.
	ErrNoSource = errors.New("towers: pool has no candidate source")
)

// DefaultOversample is how many candidates Pool draws per requested tower.
const DefaultOversample = 5

// Generator produces count canonical plans on g that are far apart under
// metric.
type Generator interface {
	Generate(ctx context.Context, g *precinct.Graph, count int, metric distance.Metric) ([]canon.Partition, error)
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func(ctx context.Context, g *precinct.Graph, count int, metric distance.Metric) ([]canon.Partition, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, g *precinct.Graph, count int, metric distance.Metric) ([]canon.Partition, error) {
	return f(ctx, g, count, metric)
}

// CandidateSource draws n plans on g. Plans need not be distinct.
type CandidateSource interface {
	Candidates(ctx context.Context, g *precinct.Graph, n int) ([]canon.Partition, error)
}

// Selection is the output of Select.
type Selection struct {
	// Towers are the chosen plans in selection order.
	Towers []canon.Partition

	// Indices[i] is the candidate index of Towers[i].
	Indices []int

	// Distances[i][j] is the distance between Towers[i] and Towers[j].
	Distances [][]float64
}

// MinSeparation returns the smallest distance between two distinct towers,
// or 0 for fewer than two towers.
func (s Selection) MinSeparation() float64 {
	if len(s.Towers) < 2 {
		return 0
	}
	best := s.Distances[0][1]
	for i := range s.Distances {
		for j := i + 1; j < len(s.Distances); j++ {
			if s.Distances[i][j] < best {
				best = s.Distances[i][j]
			}
		}
	}

	return best
}
