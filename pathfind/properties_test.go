package pathfind_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/pathfind"
)

// TestProperties_RandomGrids cross-checks the engine against an independent
// BFS on many small random mazes: optimality of every settled cell, path
// validity, reachability agreement and monotone settle order.
func TestProperties_RandomGrids(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		w, h := 2+rng.Intn(9), 1+rng.Intn(9)
		lines := randomMaze(rng, w, h, 0.3)
		g := mustGraph(t, lines)
		want := bruteForce(lines)

		var settled []int64
		relaxed := map[grid.Coordinate]int64{}
		res, err := pathfind.ShortestPath(g,
			pathfind.WithOnSettle(func(c grid.Coordinate, cost int64) {
				require.Equal(t, want[c], cost, "grid %d: settled %v at a non-optimal cost", i, c)
				settled = append(settled, cost)
			}),
			pathfind.WithOnRelax(func(c, _ grid.Coordinate, cost int64) {
				if prev, ok := relaxed[c]; ok {
					require.Less(t, cost, prev, "relaxation must strictly improve")
				}
				relaxed[c] = cost
			}),
		)
		require.NoError(t, err)

		for j := 1; j < len(settled); j++ {
			require.LessOrEqual(t, settled[j-1], settled[j], "grid %d: settle order must be non-decreasing", i)
		}

		wantCost, reachable := want[g.End()]
		cost, ok := res.Cost()
		require.Equal(t, reachable, ok, "grid %d: %q", i, lines)
		if !ok {
			_, err := pathfind.ReconstructPath(res)
			require.ErrorIs(t, err, pathfind.ErrUnreachableEnd)
			continue
		}
		require.Equal(t, wantCost, cost)

		path, err := pathfind.ReconstructPath(res)
		require.NoError(t, err)
		requireValidPath(t, g, path, cost)

		astar, err := pathfind.ShortestPath(g, pathfind.WithHeuristic(pathfind.Manhattan))
		require.NoError(t, err)
		ac, _ := astar.Cost()
		require.Equal(t, cost, ac, "grid %d: A* must agree", i)
	}
}

// TestBreadthFirst_MatchesBruteForce checks the package reference BFS.
func TestBreadthFirst_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		lines := randomMaze(rng, 6, 6, 0.25)
		assert.Equal(t, bruteForce(lines), pathfind.BreadthFirst(mustGraph(t, lines)))
	}
}
