package pathfind

import "github.com/katalvlaran/lvmaze/grid"

// Solver binds a Graph to the state of its latest query so that the cost and
// the path can be requested in two calls. A Solver is not safe for
// concurrent use; run one Solver per goroutine over a shared Graph.
type Solver struct {
	g    Graph
	opts []Option
	res  *Result
}

// NewSolver returns a Solver over g; opts apply to every query.
func NewSolver(g Graph, opts ...Option) *Solver {
	return &Solver{g: g, opts: opts}
}

// ShortestPath runs a fresh search and keeps its Distance/Predecessor map
// for ReconstructPath. ok is false when the end is unreachable.
// On error the previous result is discarded.
func (s *Solver) ShortestPath() (cost int64, ok bool, err error) {
	s.res = nil
	res, err := ShortestPath(s.g, s.opts...)
	if err != nil {
		return 0, false, err
	}
	s.res = res
	cost, ok = res.Cost()

	return cost, ok, nil
}

// ReconstructPath returns the path found by the latest ShortestPath call.
// It fails with ErrUnreachableEnd before any successful search or when the
// end was unreachable.
func (s *Solver) ReconstructPath() ([]grid.Coordinate, error) {
	return ReconstructPath(s.res)
}

// Result returns the latest search result, or nil.
func (s *Solver) Result() *Result { return s.res }
