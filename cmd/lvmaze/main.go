// Command lvmaze solves a character-grid maze and renders the result.
//
// Usage:
//
//	lvmaze [flags] <maze.txt | ->
//
// The maze uses '.' for open cells, 'S' for the start, 'E' for the end and
// any other character for walls. The summary is logged to stderr; the
// rendering goes to -out (stdout when empty).
//
// Exit status: 0 solved, 1 invalid input or failure, 2 end unreachable.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/pathfind"
	"github.com/katalvlaran/lvmaze/render"
)

// Exit codes.
const (
	exitOK          = 0
	exitFailure     = 1
	exitUnreachable = 2
)

// config is the parsed command line.
type config struct {
	input    string
	format   string
	out      string
	cell     int
	policy   maze.MarkerPolicy
	tieBreak pathfind.TieBreak
	astar    bool
	timeout  time.Duration
	verbose  bool
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(exitOK)
		}
		fmt.Fprintln(os.Stderr, "lvmaze:", err)
		os.Exit(exitFailure)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, cfg, os.Stdin, os.Stdout, logger))
}

// parseFlags reads args (without the program name).
func parseFlags(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("lvmaze", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var cfg config
	var policy, tieBreak string
	fs.StringVar(&cfg.format, "format", "text", "output format: text, png or geojson")
	fs.StringVar(&cfg.out, "out", "", "output file (default stdout)")
	fs.IntVar(&cfg.cell, "cell", render.DefaultCellSize, "png pixels per cell")
	fs.StringVar(&policy, "policy", "reject", "repeated marker policy: reject, first or last")
	fs.StringVar(&tieBreak, "tiebreak", "insertion", "equal-cost order: insertion or coordinate")
	fs.BoolVar(&cfg.astar, "astar", false, "guide the search with the Manhattan heuristic")
	fs.DurationVar(&cfg.timeout, "timeout", 0, "abort the search after this long (0 = no limit)")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: lvmaze [flags] <maze.txt | ->")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return config{}, errors.New("exactly one maze file is required")
	}
	cfg.input = fs.Arg(0)

	var err error
	if cfg.policy, err = maze.ParsePolicy(policy); err != nil {
		return config{}, err
	}
	if cfg.tieBreak, err = pathfind.ParseTieBreak(tieBreak); err != nil {
		return config{}, err
	}
	switch cfg.format {
	case "text", "png", "geojson":
	default:
		return config{}, fmt.Errorf("unknown format %q", cfg.format)
	}

	return cfg, nil
}

// run executes one solve and returns the process exit code.
func run(ctx context.Context, cfg config, stdin io.Reader, stdout io.Writer, logger *slog.Logger) int {
	lines, err := readInput(cfg.input, stdin)
	if err != nil {
		logger.Error("failed to read maze", "input", cfg.input, "error", err)
		return exitFailure
	}

	g, err := maze.BuildGraph(lines, maze.WithMarkerPolicy(cfg.policy))
	if err != nil {
		logger.Error("invalid maze", "input", cfg.input, "error", err)
		return exitFailure
	}
	logger.Info("maze loaded",
		"width", g.Bounds().Width, "height", g.Bounds().Height,
		"open", g.Len(), "start", g.Start(), "end", g.End())

	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}
	opts := []pathfind.Option{
		pathfind.WithContext(ctx),
		pathfind.WithTieBreak(cfg.tieBreak),
		pathfind.WithLogger(logger),
	}
	if cfg.astar {
		opts = append(opts, pathfind.WithHeuristic(pathfind.Manhattan))
	}

	solver := pathfind.NewSolver(g, opts...)
	started := time.Now()
	cost, ok, err := solver.ShortestPath()
	if err != nil {
		logger.Error("search failed", "error", err)
		return exitFailure
	}
	stats := solver.Result().Stats

	code := exitOK
	path, err := solver.ReconstructPath()
	switch {
	case ok && err == nil:
		logger.Info("solved",
			"cost", cost, "cells", len(path), "settled", stats.Settled,
			"stale", stats.Stale, "elapsed", time.Since(started))
	case !ok:
		logger.Warn("end unreachable",
			"start_region", g.RegionOf(g.Start()), "end_region", g.RegionOf(g.End()),
			"regions", len(g.Regions()), "settled", stats.Settled)
		code = exitUnreachable
	default:
		logger.Error("path reconstruction failed", "error", err)
		return exitFailure
	}

	if err := writeOutput(ctx, cfg, render.NewScene(g, path), stdout); err != nil {
		logger.Error("render failed", "format", cfg.format, "error", err)
		return exitFailure
	}

	return code
}

// readInput loads the maze rows from a file or, for "-", from stdin.
func readInput(name string, stdin io.Reader) ([]string, error) {
	if name == "-" {
		return maze.ReadLines(stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return maze.ReadLines(f)
}

// writeOutput renders the scene to cfg.out or stdout.
func writeOutput(ctx context.Context, cfg config, scene render.Scene, stdout io.Writer) (err error) {
	w := stdout
	if cfg.out != "" {
		f, cerr := os.Create(cfg.out)
		if cerr != nil {
			return cerr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	return sinkFor(cfg, w).Render(ctx, scene)
}

// sinkFor picks the render.Sink for cfg.format.
func sinkFor(cfg config, w io.Writer) render.Sink {
	switch cfg.format {
	case "png":
		return render.PNGSink{W: w, CellSize: cfg.cell}
	case "geojson":
		return render.GeoJSONSink{W: w}
	default:
		return render.TextSink{W: w}
	}
}
