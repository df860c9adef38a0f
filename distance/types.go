// SPDX-License-Identifier: MIT

package distance

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/redist/canon"
	"github.com/katalvlaran/redist/internal/parallel"
)

var (
	// ErrNodeSetMismatch indicates two plans that do not cover the same nodes.
	ErrNodeSetMismatch = errors.New("distance: plans cover different node sets")

	// ErrUnknownMetric indicates a metric name ParseMetric does not know.
	ErrUnknownMetric = errors.New("distance: unknown metric")
)

// NodeSetMismatchError details a node-set disagreement between two plans.
type NodeSetMismatchError struct {
	// Node is a node present in one plan only (empty for labeling form).
	Node string

	// LenA and LenB are the sizes of the two plans.
	LenA, LenB int
}

func (e *NodeSetMismatchError) Error() string {
	if e.Node != "" {
		return fmt.Sprintf("distance: plans cover different node sets (%d vs %d nodes, %q not shared)", e.LenA, e.LenB, e.Node)
	}

	return fmt.Sprintf("distance: plans cover different node sets (%d vs %d nodes)", e.LenA, e.LenB)
}

// Unwrap lets errors.Is(err, ErrNodeSetMismatch) succeed.
func (e *NodeSetMismatchError) Unwrap() error { return ErrNodeSetMismatch }

// Metric selects the distance used uniformly across a batch.
type Metric int

const (
	// MetricHamming is the unlabeled Hamming distance (default).
	MetricHamming Metric = iota

	// MetricEntropy is the asymmetric entropy distance.
	MetricEntropy
)

// String returns "hamming" or "entropy".
func (m Metric) String() string {
	switch m {
	case MetricHamming:
		return "hamming"
	case MetricEntropy:
		return "entropy"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// ParseMetric accepts "hamming" or "entropy" (case-insensitive).
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hamming", "":
		return MetricHamming, nil
	case "entropy":
		return MetricEntropy, nil
	}

	return MetricHamming, fmt.Errorf("ParseMetric(%q): %w", s, ErrUnknownMetric)
}

// Between evaluates the metric on two labelings (first argument is "A").
func (m Metric) Between(a, b canon.Labeling) (float64, error) {
	switch m {
	case MetricHamming:
		d, err := HammingLabels(a, b)
		return float64(d), err
	case MetricEntropy:
		return EntropyLabels(a, b)
	}

	return 0, fmt.Errorf("Between(%v): %w", m, ErrUnknownMetric)
}

// Mode is the failure policy of a batch.
type Mode = parallel.Mode

// Failure policies.
const (
	FailFast   = parallel.FailFast
	BestEffort = parallel.BestEffort
)

// Failure is a plan skipped by a best-effort batch.
type Failure = parallel.Failure

// IndexError carries the index of the plan that aborted a fail-fast batch.
type IndexError = parallel.IndexError

// Option configures Tuples.
type Option func(*options)

type options struct {
	metric Metric
	run    parallel.Config
}

// WithMetric selects the metric (default MetricHamming).
func WithMetric(m Metric) Option {
	return func(o *options) { o.metric = m }
}

// WithWorkers bounds the goroutines used (0 = GOMAXPROCS). Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("distance: WithWorkers(n < 0)")
	}
	return func(o *options) { o.run.Workers = n }
}

// WithBestEffort keeps going past failing plans and reports them in
// Result.Skipped instead of aborting.
func WithBestEffort() Option {
	return func(o *options) { o.run.Mode = BestEffort }
}

// WithMode sets the failure policy explicitly.
func WithMode(m Mode) Option {
	return func(o *options) { o.run.Mode = m }
}

// Result is the output of Tuples.
type Result struct {
	// Metric is the metric every entry was computed with.
	Metric Metric

	// Distances[p][t] is the distance from plan p to tower t. Rows of skipped
	// plans are nil.
	Distances [][]float64

	// Skipped lists plans that failed in best-effort mode, by ascending index.
	Skipped []Failure
}
