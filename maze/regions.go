package maze

import "github.com/katalvlaran/lvmaze/grid"

// connectedRegions finds all 4-connected regions of traversable cells.
// Regions are numbered in row-major order of their first cell; cells
// inside a region are listed in BFS discovery order.
//
// Time:   O(V + E), E ≤ 4V.
// Memory: O(V).
func (g *Graph) connectedRegions() ([][]grid.Coordinate, map[grid.Coordinate]int) {
	region := make(map[grid.Coordinate]int, len(g.adj))
	var regions [][]grid.Coordinate

	for _, c0 := range g.Traversable() {
		if _, seen := region[c0]; seen {
			continue
		}
		id := len(regions)
		queue := []grid.Coordinate{c0}
		region[c0] = id
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range g.adj[queue[qi]] {
				if _, seen := region[n]; !seen {
					region[n] = id
					queue = append(queue, n)
				}
			}
		}
		regions = append(regions, queue)
	}

	return regions, region
}

// Regions returns every 4-connected region of traversable cells.
// The result is a fresh copy.
func (g *Graph) Regions() [][]grid.Coordinate {
	out := make([][]grid.Coordinate, len(g.regions))
	for i, r := range g.regions {
		out[i] = append([]grid.Coordinate(nil), r...)
	}

	return out
}

// RegionOf returns the region index of c, or -1 when c is not traversable.
func (g *Graph) RegionOf(c grid.Coordinate) int {
	if id, ok := g.region[c]; ok {
		return id
	}

	return -1
}

// Connected reports whether a and b lie in the same region.
// A false result means no path exists between them.
func (g *Graph) Connected(a, b grid.Coordinate) bool {
	ra := g.RegionOf(a)
	return ra >= 0 && ra == g.RegionOf(b)
}
