// Package parallel runs independent per-index work items over a bounded pool
// of goroutines with either fail-fast or best-effort error policy.
//
// Every redist batch (scores over plans, distances of plans to towers) is a
// pure function per index writing into its own result slot, so no locking of
// results is needed; only best-effort failure bookkeeping is synchronized.
package parallel

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Mode selects how a batch reacts to a failing item.
type Mode int

const (
	// FailFast aborts the batch on the first failure (default).
	FailFast Mode = iota

	// BestEffort records every failure with its index and keeps going.
	BestEffort
)

// ErrUnknownMode indicates a Mode string that ParseMode does not recognize.
var ErrUnknownMode = errors.New("parallel: unknown mode")

// String returns "fail_fast" or "best_effort".
func (m Mode) String() string {
	switch m {
	case FailFast:
		return "fail_fast"
	case BestEffort:
		return "best_effort"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "fail_fast" / "best_effort" (and "" as FailFast).
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "fail_fast", "failfast":
		return FailFast, nil
	case "best_effort", "besteffort":
		return BestEffort, nil
	}

	return FailFast, fmt.Errorf("ParseMode(%q): %w", s, ErrUnknownMode)
}

// Config controls a batch run.
type Config struct {
	// Workers bounds concurrent items; ≤ 0 means runtime.GOMAXPROCS(0).
	Workers int

	// Mode is the failure policy.
	Mode Mode
}

// Failure is one skipped item of a best-effort batch.
type Failure struct {
	Index int
	Err   error
}

// IndexError attaches the failing item index to an error in fail-fast mode.
type IndexError struct {
	Index int
	Err   error
}

func (e *IndexError) Error() string { return fmt.Sprintf("item %d: %v", e.Index, e.Err) }

// Unwrap exposes the item's own error to errors.Is/As.
func (e *IndexError) Unwrap() error { return e.Err }

// Run calls fn(ctx, i) for every i in [0, n) on at most cfg.Workers goroutines.
//
// FailFast: the first failure cancels the shared context, no new items start,
// and Run returns that failure as *IndexError.
// BestEffort: failures are collected and returned sorted by index with a nil
// error.
//
// In both modes a cancelled parent context stops scheduling and Run returns
// ctx.Err() (failures gathered so far are still returned in best-effort mode).
func Run(ctx context.Context, n int, cfg Config, fn func(ctx context.Context, i int) error) ([]Failure, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var (
		mu       sync.Mutex
		failures []Failure
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil // batch already aborted or cancelled
			}
			err := fn(gctx, i)
			if err == nil {
				return nil
			}
			if cfg.Mode == BestEffort {
				mu.Lock()
				failures = append(failures, Failure{Index: i, Err: err})
				mu.Unlock()
				return nil
			}
			return &IndexError{Index: i, Err: err}
		})
	}
	err := g.Wait()

	sort.Slice(failures, func(a, b int) bool { return failures[a].Index < failures[b].Index })
	if err != nil {
		return failures, err
	}
	if ctx.Err() != nil {
		return failures, ctx.Err()
	}

	return failures, nil
}
