// Command redist scores, measures and summarizes ensembles of districting
// plans on a precinct graph.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/redist/canon"
	"github.com/katalvlaran/redist/internal/config"
	"github.com/katalvlaran/redist/internal/dataio"
	"github.com/katalvlaran/redist/internal/logging"
	"github.com/katalvlaran/redist/internal/metrics"
	"github.com/katalvlaran/redist/precinct"
)

const helpMessage = `
redist analyzes ensembles of districting plans.

Usage: redist [options] <command> [command options]

  -config      =string   YAML or TOML config file (REDIST_* env overrides it)
  -nodes       =string   nodes CSV (id column + numeric attributes)
  -edges       =string   edges CSV (from,to); needed for tower generation
  -plans       =string   plans CSV, one plan per row in node order
  -plan-header (flag)    plans CSV starts with a header of node IDs
  -plans-json  =string   plans as a JSON array of {"node": label} objects
  -out         =string   output file (default stdout)
  -workers     =number   worker goroutines (default from config)
  -best-effort (flag)    skip failing plans instead of aborting

Commands:

	score    [-kinds efficiency_gap,dem_seats,...]
	distance [-towers towers.csv] [-metric hamming|entropy]
	towers   [-count N] [-districts K] [-metric hamming|entropy]
	freq     [-step S] [-total T]
`

var errUsage = errors.New("usage")

// globals are the options shared by every command.
type globals struct {
	configPath string
	nodesPath  string
	edgesPath  string
	plansPath  string
	planHeader bool
	jsonPath   string
	outPath    string
	workers    int
	bestEffort bool
}

// app carries the per-run collaborators.
type app struct {
	cfg     config.Config
	log     *zap.Logger
	metrics *metrics.Collector
	opts    globals
	stdout  io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "redist:", err)
		}
		os.Exit(1)
	}
}

// run parses args and executes one command.
func run(ctx context.Context, args []string, stdout io.Writer) error {
	var g globals
	fs := flag.NewFlagSet("redist", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(fs.Output(), helpMessage) }
	fs.StringVar(&g.configPath, "config", "", "")
	fs.StringVar(&g.nodesPath, "nodes", "", "")
	fs.StringVar(&g.edgesPath, "edges", "", "")
	fs.StringVar(&g.plansPath, "plans", "", "")
	fs.BoolVar(&g.planHeader, "plan-header", false, "")
	fs.StringVar(&g.jsonPath, "plans-json", "", "")
	fs.StringVar(&g.outPath, "out", "", "")
	fs.IntVar(&g.workers, "workers", -1, "")
	fs.BoolVar(&g.bestEffort, "best-effort", false, "")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	cfg, err := config.Load(g.configPath)
	if err != nil {
		return err
	}
	if g.workers >= 0 {
		cfg.Batch.Workers = g.workers
	}
	if g.bestEffort {
		cfg.Batch.Mode = "best_effort"
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	log = log.With(zap.String("run_id", uuid.NewString()))

	a := &app{cfg: cfg, log: log, metrics: metrics.NewCollector(), opts: g, stdout: stdout}
	if cfg.Metrics.Addr != "" {
		stopMetrics := a.serveMetrics(cfg.Metrics.Addr)
		defer stopMetrics()
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	start := time.Now()
	switch cmd {
	case "score":
		err = a.score(ctx, rest)
	case "distance":
		err = a.distance(ctx, rest)
	case "towers":
		err = a.towers(ctx, rest)
	case "freq":
		err = a.freq(rest)
	case "help":
		fs.Usage()
		return nil
	default:
		fs.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		log.Error("command failed", zap.String("command", cmd), zap.Error(err))
		return err
	}
	log.Info("command finished", zap.String("command", cmd), zap.Duration("elapsed", time.Since(start)))

	return nil
}

// serveMetrics exposes the collector until the returned func is called.
func (a *app) serveMetrics(addr string) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", a.metrics.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Warn("metrics server stopped", zap.String("addr", addr), zap.Error(err))
		}
	}()
	a.log.Info("serving metrics", zap.String("addr", addr))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

// loadGraph reads -nodes and the optional -edges into a core.Graph and
// freezes it.
func (a *app) loadGraph() (*precinct.Graph, error) {
	if a.opts.nodesPath == "" {
		return nil, errors.New("-nodes is required")
	}
	f, err := os.Open(a.opts.nodesPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var edges io.Reader
	if a.opts.edgesPath != "" {
		ef, err := os.Open(a.opts.edgesPath)
		if err != nil {
			return nil, err
		}
		defer ef.Close()
		edges = ef
	}

	cg, err := dataio.ReadGraph(f, edges, a.cfg.RequiredColumns()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.opts.nodesPath, err)
	}
	g, err := precinct.FromCore(cg, a.cfg.PrecinctOptions()...)
	if err != nil {
		return nil, err
	}
	a.log.Info("graph loaded", zap.Int("nodes", g.Len()), zap.Int("edges", g.EdgeCount()))

	return g, nil
}

// loadPlans reads -plans or -plans-json in the graph's node order.
func (a *app) loadPlans(g *precinct.Graph) ([]canon.Partition, error) {
	var (
		path string
		read func(io.Reader) ([]canon.Partition, error)
	)
	switch {
	case a.opts.jsonPath != "":
		path = a.opts.jsonPath
		read = func(r io.Reader) ([]canon.Partition, error) { return dataio.ReadAssignments(r, g.Order()) }
	case a.opts.plansPath != "" && a.opts.planHeader:
		path = a.opts.plansPath
		read = func(r io.Reader) ([]canon.Partition, error) { return dataio.ReadPlanTable(r, g.Order()) }
	case a.opts.plansPath != "":
		path = a.opts.plansPath
		read = func(r io.Reader) ([]canon.Partition, error) { return dataio.ReadPlanRows(r, g.Len()) }
	default:
		return nil, errors.New("-plans or -plans-json is required")
	}
	plans, err := readFile(path, read)
	if err != nil {
		return nil, err
	}
	a.log.Info("plans loaded", zap.String("path", path), zap.String("count", humanCount(len(plans))))

	return plans, nil
}

func readFile(path string, read func(io.Reader) ([]canon.Partition, error)) ([]canon.Partition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	plans, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return plans, nil
}

// output returns the -out writer (stdout by default) and its closer.
func (a *app) output() (io.Writer, func() error, error) {
	if a.opts.outPath == "" {
		return a.stdout, func() error { return nil }, nil
	}
	f, err := os.Create(a.opts.outPath)
	if err != nil {
		return nil, nil, err
	}

	return f, f.Close, nil
}

// splitList parses a comma-separated flag value.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
