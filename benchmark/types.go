// SPDX-License-Identifier: MIT

package benchmark

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/redist/internal/parallel"
)

var (
	// ErrDegenerateDistrict indicates a district with zero total votes where a
	// vote share or majority threshold is required.
	ErrDegenerateDistrict = errors.New("benchmark: district has zero total votes")

	// ErrZeroPopulation indicates a plan whose districts have no population,
	// so the ideal district size is zero.
	ErrZeroPopulation = errors.New("benchmark: total population is zero")

	// ErrUnknownKind indicates a score name ParseKind does not know.
	ErrUnknownKind = errors.New("benchmark: unknown score kind")
)

// DegenerateDistrictError names the zero-vote district (1-based label).
type DegenerateDistrictError struct {
	District int
}

func (e *DegenerateDistrictError) Error() string {
	return fmt.Sprintf("benchmark: district %d has zero total votes", e.District)
}

// Unwrap lets errors.Is(err, ErrDegenerateDistrict) succeed.
func (e *DegenerateDistrictError) Unwrap() error { return ErrDegenerateDistrict }

// Rounding is the convention used to turn k/3 into an order-statistic index.
type Rounding int

const (
	// RoundHalfEven rounds .5 to the nearest even integer.
	RoundHalfEven Rounding = iota

	// RoundHalfUp rounds .5 away from zero.
	RoundHalfUp
)

// DefaultThirdianRounding is the rounding used by MeanThirdian unless
// overridden with WithThirdianRounding. Since k/3 has a fractional part of 0,
// 1/3 or 2/3, the two conventions select the same index for every k; the
// constant exists so the choice is explicit.
const DefaultThirdianRounding = RoundHalfEven

// String returns "half_even" or "half_up".
func (r Rounding) String() string {
	switch r {
	case RoundHalfEven:
		return "half_even"
	case RoundHalfUp:
		return "half_up"
	default:
		return fmt.Sprintf("Rounding(%d)", int(r))
	}
}

// ParseRounding accepts "half_even" (or "") and "half_up".
func ParseRounding(s string) (Rounding, error) {
	switch strings.ToLower(s) {
	case "", "half_even":
		return RoundHalfEven, nil
	case "half_up":
		return RoundHalfUp, nil
	}

	return RoundHalfEven, fmt.Errorf("ParseRounding(%q): unknown rounding", s)
}

// Kind names a score.
type Kind int

const (
	KindEfficiencyGap Kind = iota
	KindDemSeats
	KindRepSeats
	KindMeanMedian
	KindMeanThirdian
	KindPartitionEntropy
	KindPopulationDeviation
)

var kindNames = [...]string{
	KindEfficiencyGap:       "efficiency_gap",
	KindDemSeats:            "dem_seats",
	KindRepSeats:            "rep_seats",
	KindMeanMedian:          "mean_median",
	KindMeanThirdian:        "mean_thirdian",
	KindPartitionEntropy:    "partition_entropy",
	KindPopulationDeviation: "population_deviation",
}

// Kinds lists every score in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range kindNames {
		out[i] = Kind(i)
	}

	return out
}

// String returns the snake_case score name.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a snake_case score name to its Kind.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
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

// Option configures scoring.
type Option func(*options)

type options struct {
	rounding Rounding
	run      parallel.Config
}

func defaultOptions() options {
	return options{rounding: DefaultThirdianRounding}
}

// WithThirdianRounding overrides DefaultThirdianRounding.
func WithThirdianRounding(r Rounding) Option {
	if r != RoundHalfEven && r != RoundHalfUp {
		panic("benchmark: WithThirdianRounding(unknown)")
	}
	return func(o *options) { o.rounding = r }
}

// WithWorkers bounds the goroutines a batch uses (0 = GOMAXPROCS).
// Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("benchmark: WithWorkers(n < 0)")
	}
	return func(o *options) { o.run.Workers = n }
}

// WithBestEffort makes Score skip failing plans instead of aborting.
func WithBestEffort() Option {
	return func(o *options) { o.run.Mode = BestEffort }
}

// WithMode sets Score's failure policy explicitly.
func WithMode(m Mode) Option {
	return func(o *options) { o.run.Mode = m }
}

// Result is the output of Score.
type Result struct {
	Kind Kind

	// Values[i] scores plans[i]; skipped plans hold NaN.
	Values []float64

	// Skipped lists plans that failed in best-effort mode.
	Skipped []Failure
}
