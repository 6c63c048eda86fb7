// Package pathfind finds a minimum-cost path between the start and end cells
// of a maze graph and reconstructs it from predecessor links.
//
// Overview:
//
//   - ShortestPath runs Dijkstra's algorithm specialised to the maze: every
//     step costs Graph.Weight (1 for *maze.Graph), the frontier is a binary
//     min-heap and the search stops the first time the end cell is popped.
//   - ReconstructPath walks the predecessor map of a Result from end back to
//     start, bounded by V steps.
//   - Solver pairs both calls around one Graph for hosts that ask for the
//     cost first and the path afterwards.
//   - BreadthFirst is a plain FIFO reference used to cross-check optimality.
//
// Distance map:
//
//   - Each traversable cell maps to an Entry{Dist, Prev}. Dist is a Distance
//     sum type: Known(cost) or Unknown. There is no "infinity" number that
//     arithmetic could overflow.
//   - The map belongs to one Result. Concurrent queries over a shared,
//     immutable Graph each get their own map and frontier.
//
// Frontier:
//
//   - Superseded entries are not removed (lazy decrease-key); an entry whose
//     cost is greater than its cell's recorded cost is discarded on pop.
//   - Ties on priority are broken FIFO by default (TieBreakInsertion) or in
//     row-major coordinate order (TieBreakCoordinate). The tie-break decides
//     which of several equal-cost paths is returned, never its cost.
//
// Options:
//
//   - WithContext(ctx):     checked once per loop iteration, the only safe
//     interruption point.
//   - WithTieBreak(t):      equal-priority pop order.
//   - WithHeuristic(h):     A*; Manhattan is consistent for unit steps.
//   - WithMaxCost(c):       cells costlier than c are never reached.
//   - WithOnSettle / WithOnRelax: observation hooks.
//   - WithLogger(l):        slog debug trace (silent by default).
//
// Errors (sentinel):
//
//   - ErrNilGraph, ErrStartNotTraversable, ErrEndNotTraversable,
//     ErrNegativeWeight, ErrOptionViolation from ShortestPath.
//   - ErrUnreachableEnd (optionally wrapping ErrBrokenChain) from
//     ReconstructPath.
//   - An unreachable end is NOT an error: Result.Cost reports ok == false.
//
// Complexity:
//
//   - Time:  O((V + E) log V), E ≤ 4V.
//   - Space: O(V + E).
//
// Example:
//
//	g, _ := maze.BuildGraph([]string{"S..", "#.E"})
//	res, err := pathfind.ShortestPath(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if cost, ok := res.Cost(); ok {
//	    path, _ := pathfind.ReconstructPath(res)
//	    fmt.Println(cost, path)
//	}
package pathfind
