package pathfind

import "github.com/katalvlaran/lvmaze/grid"

// BreadthFirst computes unit-step distances from g.Start() to every
// reachable cell with a plain FIFO queue, ignoring Graph.Weight.
// On unit-weight graphs it equals the distances ShortestPath settles and
// serves as an independent optimality reference.
//
// Time:   O(V + E).
// Memory: O(V).
func BreadthFirst(g Graph) map[grid.Coordinate]int64 {
	start := g.Start()
	dist := map[grid.Coordinate]int64{start: 0}
	queue := []grid.Coordinate{start}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range g.Neighbors(u) {
			if _, seen := dist[v]; seen {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}

	return dist
}
