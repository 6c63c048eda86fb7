// Package pathfind defines the types and configuration options of the
// uniform-cost shortest-path engine.
package pathfind

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"

	"github.com/katalvlaran/lvmaze/grid"
)

// Sentinel errors returned by the pathfind package.
var (
	// ErrNilGraph indicates that a nil Graph was passed.
	ErrNilGraph = errors.New("pathfind: graph is nil")

	// ErrStartNotTraversable indicates the graph's start is not one of its cells.
	ErrStartNotTraversable = errors.New("pathfind: start is not a traversable cell")

	// ErrEndNotTraversable indicates the graph's end is not one of its cells.
	ErrEndNotTraversable = errors.New("pathfind: end is not a traversable cell")

	// ErrNegativeWeight indicates Graph.Weight returned a negative value.
	ErrNegativeWeight = errors.New("pathfind: negative edge weight encountered")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")

	// ErrUnreachableEnd is returned by ReconstructPath when no successful
	// search result is available or the end was not reached.
	ErrUnreachableEnd = errors.New("pathfind: end is unreachable")

	// ErrBrokenChain is wrapped with ErrUnreachableEnd when the predecessor
	// links from end do not lead back to start within V steps.
	ErrBrokenChain = errors.New("pathfind: predecessor chain does not reach start")
)

// Graph is the read-only view of an adjacency structure the engine searches.
// *maze.Graph implements it. Implementations must be safe for concurrent
// reads if shared between concurrent searches.
type Graph interface {
	Start() grid.Coordinate
	End() grid.Coordinate
	// Traversable lists every cell, in a deterministic order.
	Traversable() []grid.Coordinate
	// Neighbors lists the cells reachable in one step from c.
	Neighbors(c grid.Coordinate) []grid.Coordinate
	// Weight is the non-negative cost of the step u→v.
	Weight(u, v grid.Coordinate) int64
}

// Distance is either Known(cost) or Unknown. It replaces a numeric
// "infinity" sentinel so no arithmetic can ever touch an unknown cost.
// The zero value is Unknown.
type Distance struct {
	cost  int64
	known bool
}

// Unknown is the distance of a cell no path has reached yet.
func Unknown() Distance { return Distance{} }

// Known is a finite distance.
func Known(cost int64) Distance { return Distance{cost: cost, known: true} }

// Cost returns the finite cost and true, or 0 and false when unknown.
func (d Distance) Cost() (int64, bool) { return d.cost, d.known }

// IsKnown reports whether d is finite.
func (d Distance) IsKnown() bool { return d.known }

// Less orders distances with Unknown greater than every Known value.
func (d Distance) Less(o Distance) bool {
	switch {
	case !d.known:
		return false
	case !o.known:
		return true
	default:
		return d.cost < o.cost
	}
}

// String renders a Known cost in decimal and Unknown as "∞".
func (d Distance) String() string {
	if !d.known {
		return "∞"
	}

	return strconv.FormatInt(d.cost, 10)
}

// Entry is one row of the Distance/Predecessor map.
type Entry struct {
	Dist    Distance
	Prev    grid.Coordinate // valid only when HasPrev
	HasPrev bool
}

// Stats counts the work done by one search.
type Stats struct {
	Pops        int // frontier entries removed
	Pushes      int // frontier entries added, including the start
	Stale       int // popped entries discarded as superseded
	Settled     int // cells expanded
	Relaxations int // successful distance improvements
}

// TieBreak selects the pop order among frontier entries of equal priority.
// It decides which of several equal-cost shortest paths is reconstructed.
type TieBreak int

const (
	// TieBreakInsertion pops equal-priority entries first-in first-out.
	TieBreakInsertion TieBreak = iota
	// TieBreakCoordinate pops equal-priority entries in row-major
	// coordinate order, then first-in first-out.
	TieBreakCoordinate
)

// String returns the tie-break name used by the command-line flags.
func (t TieBreak) String() string {
	switch t {
	case TieBreakInsertion:
		return "insertion"
	case TieBreakCoordinate:
		return "coordinate"
	default:
		return fmt.Sprintf("TieBreak(%d)", int(t))
	}
}

// ParseTieBreak maps "insertion" or "coordinate" to a TieBreak.
func ParseTieBreak(s string) (TieBreak, error) {
	switch s {
	case "insertion", "":
		return TieBreakInsertion, nil
	case "coordinate":
		return TieBreakCoordinate, nil
	default:
		return TieBreakInsertion, fmt.Errorf("%w: unknown tie-break %q", ErrOptionViolation, s)
	}
}

// Heuristic estimates the remaining cost from c to goal. It must never
// overestimate and must be consistent, or early termination loses
// optimality.
type Heuristic func(c, goal grid.Coordinate) int64

// Manhattan is the admissible, consistent heuristic for unit-weight
// cardinal moves.
var Manhattan Heuristic = grid.Manhattan

// Options configures a search.
//
// Ctx       – checked once per frontier pop; cancellation aborts the search.
// TieBreak  – pop order among equal priorities (default TieBreakInsertion).
// Heuristic – nil runs Dijkstra; non-nil runs A* with priority cost+h.
// MaxCost   – cells whose cost would exceed it are never reached.
// OnSettle  – called when a cell is expanded (and when end is popped).
// OnRelax   – called after each successful relaxation.
// Logger    – debug trace; silent by default.
type Options struct {
	Ctx       context.Context
	TieBreak  TieBreak
	Heuristic Heuristic
	MaxCost   int64
	OnSettle  func(c grid.Coordinate, cost int64)
	OnRelax   func(c, from grid.Coordinate, cost int64)
	Logger    *slog.Logger

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - context.Background()
//   - TieBreakInsertion
//   - no heuristic (plain Dijkstra)
//   - MaxCost = math.MaxInt64 (no cap)
//   - no-op hooks and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		TieBreak: TieBreakInsertion,
		MaxCost:  math.MaxInt64,
		OnSettle: func(grid.Coordinate, int64) {},
		OnRelax:  func(_, _ grid.Coordinate, _ int64) {},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets a context for cancellation and deadlines.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTieBreak selects the equal-priority pop order.
func WithTieBreak(t TieBreak) Option {
	return func(o *Options) {
		if t != TieBreakInsertion && t != TieBreakCoordinate {
			o.err = fmt.Errorf("%w: unknown tie-break %d", ErrOptionViolation, int(t))
			return
		}
		o.TieBreak = t
	}
}

// WithHeuristic turns the search into A* guided by h.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithMaxCost caps the explored cost. Negative values are rejected.
func WithMaxCost(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}

// WithOnSettle registers a callback run when a cell is expanded.
func WithOnSettle(fn func(c grid.Coordinate, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithOnRelax registers a callback run after each successful relaxation.
func WithOnRelax(fn func(c, from grid.Coordinate, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithLogger routes the debug trace of the search to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
