// Package lvmaze finds minimum-cost paths through character-grid mazes.
//
// A maze is a list of text rows: '.' is open floor, 'S' the start, 'E' the
// end and every other character a wall. Moves go one cell north, east,
// south or west and each move costs 1.
//
// The work is split across small packages:
//
//	grid/        Coordinate, Bounds, Direction and the cardinal offset helper
//	maze/        parse rows into a Layout, build the immutable Graph, regions
//	pathfind/    Dijkstra (optional A*), path reconstruction, Solver
//	render/      text, PNG and GeoJSON sinks plus an R-tree wall index
//	cmd/lvmaze/  command-line host
//
// Quick example:
//
//	g, err := maze.BuildGraph([]string{
//		"S..#",
//		".#.#",
//		"...E",
//	})
//	if err != nil {
//		// maze.ErrMalformedGrid
//	}
//	s := pathfind.NewSolver(g)
//	cost, ok, _ := s.ShortestPath() // 5, true
//	path, _ := s.ReconstructPath()  // (0,0) … (3,2)
//
// A Graph is read-only once built and may be shared by any number of
// goroutines; every search keeps its own Result.
package lvmaze
