// SPDX-License-Identifier: MIT

package towers

import (
	"context"
	"fmt"

	"github.com/katalvlaran/redist/canon"
	"github.com/katalvlaran/redist/distance"
	"github.com/katalvlaran/redist/precinct"
)

// Pool is a Generator that draws count×Oversample candidates from Source and
// keeps the Select-ed subset.
type Pool struct {
	Source CandidateSource

	// Oversample ≤ 0 means DefaultOversample.
	Oversample int
}

// Generate implements Generator.
func (p Pool) Generate(ctx context.Context, g *precinct.Graph, count int, metric distance.Metric) ([]canon.Partition, error) {
	sel, err := p.Selection(ctx, g, count, metric)
	if err != nil {
		return nil, err
	}

	return sel.Towers, nil
}

// Selection is Generate with the full Select output, including the pairwise
// tower distances.
func (p Pool) Selection(ctx context.Context, g *precinct.Graph, count int, metric distance.Metric) (Selection, error) {
	if p.Source == nil {
		return Selection{}, ErrNoSource
	}
	if count < 1 {
		return Selection{}, fmt.Errorf("Pool.Generate(count=%d): %w", count, ErrBadCount)
	}
	over := p.Oversample
	if over <= 0 {
		over = DefaultOversample
	}

	cands, err := p.Source.Candidates(ctx, g, count*over)
	if err != nil {
		return Selection{}, fmt.Errorf("Pool.Generate: %w", err)
	}

	return Select(ctx, unique(cands), count, metric)
}

// unique drops repeated plans, keeping first occurrences in order.
func unique(ps []canon.Partition) []canon.Partition {
	seen := make(map[canon.Partition]struct{}, len(ps))
	out := ps[:0:0]
	for _, p := range ps {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	return out
}
