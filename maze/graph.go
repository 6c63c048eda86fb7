package maze

import (
	"slices"

	"github.com/katalvlaran/lvmaze/grid"
)

// Graph is the immutable adjacency structure of a parsed maze.
// Every edge has unit weight. Safe for concurrent read-only use.
type Graph struct {
	bounds     grid.Bounds
	start, end grid.Coordinate
	adj        map[grid.Coordinate][]grid.Coordinate
	walls      map[grid.Coordinate]struct{}
	region     map[grid.Coordinate]int
	regions    [][]grid.Coordinate
}

// BuildAdjacency links every traversable cell of l to its in-bounds,
// traversable cardinal neighbors, enumerated North, East, South, West.
// A coordinate is a key iff it is traversable in l.
// Complexity: O(W×H).
func BuildAdjacency(l *Layout) map[grid.Coordinate][]grid.Coordinate {
	adj := make(map[grid.Coordinate][]grid.Coordinate, len(l.Traversable))
	for c := range l.Traversable {
		nbrs := make([]grid.Coordinate, 0, 4)
		for _, d := range grid.Cardinals() {
			n, ok := grid.Neighbor(c, d, l.Bounds)
			if !ok || !l.IsTraversable(n) {
				continue
			}
			nbrs = append(nbrs, n)
		}
		adj[c] = slices.Clip(nbrs)
	}

	return adj
}

// BuildGraph parses lines and builds the adjacency structure in one call.
// Errors are those of Parse.
// Complexity: O(W×H) time and memory.
func BuildGraph(lines []string, opts ...Option) (*Graph, error) {
	l, err := Parse(lines, opts...)
	if err != nil {
		return nil, err
	}

	return NewGraph(l), nil
}

// NewGraph builds a Graph from an already parsed Layout.
// The Layout's wall set is copied; l may be discarded afterwards.
func NewGraph(l *Layout) *Graph {
	walls := make(map[grid.Coordinate]struct{}, len(l.Walls))
	for c := range l.Walls {
		walls[c] = struct{}{}
	}
	g := &Graph{
		bounds: l.Bounds,
		start:  l.Start,
		end:    l.End,
		adj:    BuildAdjacency(l),
		walls:  walls,
	}
	g.regions, g.region = g.connectedRegions()

	return g
}

// Start returns the start coordinate.
func (g *Graph) Start() grid.Coordinate { return g.start }

// End returns the end coordinate.
func (g *Graph) End() grid.Coordinate { return g.end }

// Bounds returns the grid bounds.
func (g *Graph) Bounds() grid.Bounds { return g.bounds }

// Len returns the number of traversable cells.
func (g *Graph) Len() int { return len(g.adj) }

// Neighbors returns the traversable cardinal neighbors of c in N,E,S,W
// order, or nil when c is not traversable.
// The returned slice is shared and must not be modified.
func (g *Graph) Neighbors(c grid.Coordinate) []grid.Coordinate {
	return g.adj[c]
}

// Weight returns the cost of stepping from u to its neighbor v: always 1.
func (g *Graph) Weight(_, _ grid.Coordinate) int64 { return 1 }

// IsTraversable reports whether c is a traversable cell.
func (g *Graph) IsTraversable(c grid.Coordinate) bool {
	_, ok := g.adj[c]
	return ok
}

// IsWall reports whether c is an in-bounds wall.
func (g *Graph) IsWall(c grid.Coordinate) bool {
	_, ok := g.walls[c]
	return ok
}

// Traversable returns all traversable cells in row-major order.
func (g *Graph) Traversable() []grid.Coordinate {
	out := make([]grid.Coordinate, 0, len(g.adj))
	for c := range g.adj {
		out = append(out, c)
	}
	slices.SortFunc(out, grid.Coordinate.Compare)

	return out
}

// Walls returns all wall cells in row-major order.
func (g *Graph) Walls() []grid.Coordinate {
	out := make([]grid.Coordinate, 0, len(g.walls))
	for c := range g.walls {
		out = append(out, c)
	}
	slices.SortFunc(out, grid.Coordinate.Compare)

	return out
}
