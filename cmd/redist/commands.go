package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/katalvlaran/redist/benchmark"
	"github.com/katalvlaran/redist/canon"
	"github.com/katalvlaran/redist/distance"
	"github.com/katalvlaran/redist/ensemble"
	"github.com/katalvlaran/redist/internal/dataio"
	"github.com/katalvlaran/redist/internal/parallel"
	"github.com/katalvlaran/redist/precinct"
	"github.com/katalvlaran/redist/towers"
)

const defaultKinds = "efficiency_gap,dem_seats,rep_seats,mean_median,mean_thirdian"

func humanCount(n int) string { return humanize.Comma(int64(n)) }

// logSkipped reports best-effort failures, one entry per plan.
func (a *app) logSkipped(op string, skipped []parallel.Failure) {
	for _, f := range skipped {
		a.log.Warn("plan skipped", zap.String("operation", op), zap.Int("plan", f.Index), zap.Error(f.Err))
	}
}

// score computes partisan benchmarks for every plan.
func (a *app) score(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	kindList := fs.String("kinds", defaultKinds, "comma-separated score names")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	var kinds []benchmark.Kind
	for _, name := range splitList(*kindList) {
		k, err := benchmark.ParseKind(name)
		if err != nil {
			return err
		}
		kinds = append(kinds, k)
	}

	g, err := a.loadGraph()
	if err != nil {
		return err
	}
	plans, err := a.loadPlans(g)
	if err != nil {
		return err
	}
	run, err := a.cfg.Run()
	if err != nil {
		return err
	}
	rounding, err := a.cfg.Rounding()
	if err != nil {
		return err
	}

	results := make([]benchmark.Result, 0, len(kinds))
	for _, k := range kinds {
		start := time.Now()
		res, err := benchmark.Score(ctx, g, plans, k,
			benchmark.WithWorkers(run.Workers), benchmark.WithMode(run.Mode), benchmark.WithThirdianRounding(rounding))
		failed := len(res.Skipped)
		if err != nil {
			failed = len(plans)
		}
		a.metrics.ObserveBatch("score", len(plans), failed, time.Since(start))
		if err != nil {
			return fmt.Errorf("score %v: %w", k, err)
		}
		a.logSkipped("score/"+k.String(), res.Skipped)
		results = append(results, res)
	}

	w, closeOut, err := a.output()
	if err != nil {
		return err
	}
	if err := dataio.WriteScores(w, results); err != nil {
		_ = closeOut()
		return err
	}

	return closeOut()
}

// towerSource builds the default tower generator from config.
func (a *app) towerSource(k int) towers.Pool {
	return towers.Pool{
		Source:     towers.RegionGrowth{Districts: k, Seed: a.cfg.Towers.Seed, Workers: a.cfg.Batch.Workers},
		Oversample: a.cfg.Towers.Oversample,
	}
}

// metricFlag registers -metric with the configured default.
func (a *app) metricFlag(fs *flag.FlagSet) *string {
	return fs.String("metric", a.cfg.Batch.Metric, "hamming or entropy")
}

// distance computes, for every plan, its distance to each tower.
func (a *app) distance(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("distance", flag.ContinueOnError)
	towersPath := fs.String("towers", "", "towers CSV in plan row form; generated when empty")
	metricName := a.metricFlag(fs)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	metric, err := distance.ParseMetric(*metricName)
	if err != nil {
		return err
	}

	g, err := a.loadGraph()
	if err != nil {
		return err
	}
	plans, err := a.loadPlans(g)
	if err != nil {
		return err
	}

	var tw []canon.Partition
	if *towersPath != "" {
		tw, err = readFile(*towersPath, func(r io.Reader) ([]canon.Partition, error) { return dataio.ReadPlanRows(r, g.Len()) })
	} else {
		tw, err = a.generateTowers(ctx, g, plans, a.cfg.Towers.Count, a.cfg.Towers.Districts, metric)
	}
	if err != nil {
		return err
	}

	run, err := a.cfg.Run()
	if err != nil {
		return err
	}
	start := time.Now()
	res, err := distance.Tuples(ctx, plans, tw,
		distance.WithMetric(metric), distance.WithWorkers(run.Workers), distance.WithMode(run.Mode))
	failed := len(res.Skipped)
	if err != nil {
		failed = len(plans)
	}
	a.metrics.ObserveBatch("distance", len(plans), failed, time.Since(start))
	if err != nil {
		return err
	}
	a.logSkipped("distance", res.Skipped)

	w, closeOut, err := a.output()
	if err != nil {
		return err
	}
	if err := dataio.WriteDistances(w, res, len(tw)); err != nil {
		_ = closeOut()
		return err
	}

	return closeOut()
}

// generateTowers runs the default generator. The district count falls back
// to that of the first plan.
func (a *app) generateTowers(ctx context.Context, g *precinct.Graph, plans []canon.Partition, count, k int, metric distance.Metric) ([]canon.Partition, error) {
	if k <= 0 {
		if len(plans) == 0 {
			return nil, errors.New("tower generation needs -districts or at least one plan")
		}
		k = plans[0].Districts()
	}
	start := time.Now()
	sel, err := a.towerSource(k).Selection(ctx, g, count, metric)
	a.metrics.ObserveBatch("towers", count, boolInt(err != nil)*count, time.Since(start))
	if err != nil {
		return nil, err
	}
	a.log.Info("towers generated",
		zap.Int("count", count), zap.Int("districts", k),
		zap.Stringer("metric", metric), zap.Float64("min_separation", sel.MinSeparation()))

	return sel.Towers, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// towers generates a tower set and writes it in plan row form.
func (a *app) towers(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("towers", flag.ContinueOnError)
	count := fs.Int("count", a.cfg.Towers.Count, "number of towers")
	districts := fs.Int("districts", a.cfg.Towers.Districts, "districts per tower (default: first plan's)")
	metricName := a.metricFlag(fs)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	metric, err := distance.ParseMetric(*metricName)
	if err != nil {
		return err
	}

	g, err := a.loadGraph()
	if err != nil {
		return err
	}
	var plans []canon.Partition
	if *districts <= 0 {
		if plans, err = a.loadPlans(g); err != nil {
			return err
		}
	}
	tw, err := a.generateTowers(ctx, g, plans, *count, *districts, metric)
	if err != nil {
		return err
	}

	w, closeOut, err := a.output()
	if err != nil {
		return err
	}
	if err := dataio.WritePlanRows(w, tw); err != nil {
		_ = closeOut()
		return err
	}

	return closeOut()
}

// freqSummary is the JSON document written by freq.
type freqSummary struct {
	Plans             int              `json:"plans"`
	Distinct          int              `json:"distinct"`
	Exploration       []ensemble.Point `json:"exploration"`
	SortedFrequencies []int            `json:"sorted_frequencies,omitempty"`
}

// freq summarizes visit frequencies of the plan sequence.
func (a *app) freq(args []string) error {
	fs := flag.NewFlagSet("freq", flag.ContinueOnError)
	step := fs.Int("step", 1, "exploration curve step")
	total := fs.Int("total", 0, "size of the full plan space; 0 skips sorted frequencies")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	g, err := a.loadGraph()
	if err != nil {
		return err
	}
	plans, err := a.loadPlans(g)
	if err != nil {
		return err
	}

	sum := freqSummary{Plans: len(plans), Distinct: len(ensemble.Tally(plans))}
	if sum.Exploration, err = ensemble.ExplorationCounts(plans, *step); err != nil {
		return err
	}
	if *total > 0 {
		if sum.SortedFrequencies, err = ensemble.SortedFrequencies(plans, *total); err != nil {
			return err
		}
	}
	a.log.Info("frequencies", zap.String("plans", humanCount(sum.Plans)), zap.String("distinct", humanCount(sum.Distinct)))

	w, closeOut, err := a.output()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sum); err != nil {
		_ = closeOut()
		return err
	}

	return closeOut()
}
