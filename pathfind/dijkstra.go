package pathfind

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvmaze/grid"
)

// Result is the outcome of one search. It owns the Distance/Predecessor map
// of that search; nothing else mutates it once ShortestPath returns.
//
// Because the search stops as soon as End is popped, only cells expanded
// before that point carry final distances; other known entries are upper
// bounds.
type Result struct {
	Start, End grid.Coordinate
	Entries    map[grid.Coordinate]Entry
	Stats      Stats

	reached bool
	cost    int64
}

// Cost returns the minimal cost from Start to End and true, or 0 and false
// when End is unreachable. Unreachability is a valid outcome, not an error.
func (r *Result) Cost() (int64, bool) {
	return r.cost, r.reached
}

// Reached reports whether End was reached.
func (r *Result) Reached() bool { return r.reached }

// Distance returns the recorded distance of c (Unknown if never reached).
func (r *Result) Distance(c grid.Coordinate) Distance {
	return r.Entries[c].Dist
}

// Predecessor returns the cell preceding c on the best known path to c.
func (r *Result) Predecessor(c grid.Coordinate) (grid.Coordinate, bool) {
	e := r.Entries[c]
	return e.Prev, e.HasPrev
}

// ShortestPath runs a uniform-cost best-first search (Dijkstra, or A* when a
// Heuristic is configured) from g.Start() to g.End().
//
// Steps:
//  1. Every traversable cell starts Unknown with no predecessor; Start is Known(0).
//  2. Start is pushed onto the frontier.
//  3. Pop the minimum entry; if it is End, stop with its cost.
//  4. If the popped cost exceeds the recorded cost, the entry is stale: skip it.
//  5. Otherwise relax every neighbor; a strictly cheaper candidate updates the
//     entry and pushes the neighbor.
//  6. An empty frontier means End is unreachable.
//
// Returns:
//
//   - res: the search result; res.Cost() reports reachability.
//   - err: ErrNilGraph, ErrOptionViolation, ErrStartNotTraversable,
//     ErrEndNotTraversable, ErrNegativeWeight, or the context error if
//     Options.Ctx is done between two iterations.
//
// Complexity:
//
//   - Time:  O((V + E) log V), E ≤ 4V on a maze.
//   - Space: O(V + E) with lazy decrease-key.
func ShortestPath(g Graph, opts ...Option) (*Result, error) {
	// 1) Build and validate options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Initialize state and run main loop
	cells := g.Traversable()
	r := newRunner(g, cells, cfg)
	if err := r.init(cells); err != nil {
		return nil, err
	}
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g    Graph
	opts Options
	log  *slog.Logger
	res  *Result
	pq   *frontier
}

func newRunner(g Graph, cells []grid.Coordinate, opts Options) *runner {
	return &runner{
		g:    g,
		opts: opts,
		log:  opts.Logger,
		res: &Result{
			Start:   g.Start(),
			End:     g.End(),
			Entries: make(map[grid.Coordinate]Entry, len(cells)),
		},
		pq: newFrontier(len(cells), opts.TieBreak),
	}
}

// init seeds the Distance map and pushes Start.
func (r *runner) init(cells []grid.Coordinate) error {
	for _, c := range cells {
		r.res.Entries[c] = Entry{Dist: Unknown()}
	}
	if _, ok := r.res.Entries[r.res.Start]; !ok {
		return fmt.Errorf("%w: %v", ErrStartNotTraversable, r.res.Start)
	}
	if _, ok := r.res.Entries[r.res.End]; !ok {
		return fmt.Errorf("%w: %v", ErrEndNotTraversable, r.res.End)
	}

	r.res.Entries[r.res.Start] = Entry{Dist: Known(0)}
	r.push(r.res.Start, 0)
	r.log.Debug("search started",
		"start", r.res.Start, "end", r.res.End,
		"cells", len(r.res.Entries), "astar", r.opts.Heuristic != nil)

	return nil
}

// push inserts c with path cost cost, adding the heuristic to its priority.
func (r *runner) push(c grid.Coordinate, cost int64) {
	priority := cost
	if r.opts.Heuristic != nil {
		priority = saturatingAdd(cost, r.opts.Heuristic(c, r.res.End))
	}
	r.pq.push(c, cost, priority)
	r.res.Stats.Pushes++
}

// process is the main loop. The top of each iteration is the only point at
// which cancellation is observed.
func (r *runner) process() error {
	ctx := r.opts.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return fmt.Errorf("pathfind: search interrupted after %d pops: %w", r.res.Stats.Pops, ctx.Err())
		default:
		}

		item := r.pq.pop()
		r.res.Stats.Pops++

		if item.at == r.res.End {
			r.res.reached, r.res.cost = true, item.cost
			r.opts.OnSettle(item.at, item.cost)
			r.log.Debug("end reached", "cost", item.cost, "pops", r.res.Stats.Pops)
			return nil
		}

		best, _ := r.res.Entries[item.at].Dist.Cost()
		if item.cost > best {
			r.res.Stats.Stale++
			continue
		}

		r.res.Stats.Settled++
		r.opts.OnSettle(item.at, item.cost)
		if err := r.relax(item); err != nil {
			return err
		}
	}
	r.log.Debug("frontier exhausted", "settled", r.res.Stats.Settled)

	return nil
}

// relax tries to improve every neighbor of u through u.
func (r *runner) relax(u frontierItem) error {
	for _, v := range r.g.Neighbors(u.at) {
		w := r.g.Weight(u.at, v)
		if w < 0 {
			return fmt.Errorf("%w: %v→%v weight=%d", ErrNegativeWeight, u.at, v, w)
		}
		if w > math.MaxInt64-u.cost {
			continue
		}
		candidate := u.cost + w
		if candidate > r.opts.MaxCost {
			continue
		}

		e, ok := r.res.Entries[v]
		if !ok {
			// neighbor outside Traversable(): ignore malformed adjacency
			continue
		}
		if !Known(candidate).Less(e.Dist) {
			continue
		}

		r.res.Entries[v] = Entry{Dist: Known(candidate), Prev: u.at, HasPrev: true}
		r.res.Stats.Relaxations++
		r.opts.OnRelax(v, u.at, candidate)
		r.push(v, candidate)
	}

	return nil
}

// saturatingAdd adds two non-negative values, clamping at math.MaxInt64.
func saturatingAdd(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}

	return a + b
}
