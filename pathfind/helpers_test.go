package pathfind_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
)

// scenario is the 3×4 maze with a cost-5 optimum.
var scenario = []string{
	"S..#",
	".#.#",
	"...E",
}

// mustGraph builds a graph or fails the test.
func mustGraph(tb testing.TB, lines []string, opts ...maze.Option) *maze.Graph {
	tb.Helper()
	g, err := maze.BuildGraph(lines, opts...)
	require.NoError(tb, err)

	return g
}

// randomMaze returns a w×h grid with roughly wallRatio walls and distinct
// S and E markers placed at random.
func randomMaze(rng *rand.Rand, w, h int, wallRatio float64) []string {
	cells := make([][]rune, h)
	for y := range cells {
		cells[y] = make([]rune, w)
		for x := range cells[y] {
			cells[y][x] = '.'
			if rng.Float64() < wallRatio {
				cells[y][x] = '#'
			}
		}
	}
	s := rng.Intn(w * h)
	e := rng.Intn(w*h - 1)
	if e >= s {
		e++
	}
	cells[s/w][s%w] = 'S'
	cells[e/w][e%w] = 'E'

	lines := make([]string, h)
	for y := range cells {
		lines[y] = string(cells[y])
	}

	return lines
}

// bruteForce runs an independent BFS directly on the text rows and returns
// the step count from S to every reachable cell.
func bruteForce(lines []string) map[grid.Coordinate]int64 {
	open := func(x, y int) bool {
		if y < 0 || y >= len(lines) || x < 0 || x >= len(lines[y]) {
			return false
		}
		return lines[y][x] != '#'
	}
	var start grid.Coordinate
	for y, row := range lines {
		for x := range row {
			if row[x] == 'S' {
				start = grid.C(x, y)
			}
		}
	}
	dist := map[grid.Coordinate]int64{start: 0}
	queue := []grid.Coordinate{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, d := range [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
			v := grid.C(u.X+d[0], u.Y+d[1])
			if !open(v.X, v.Y) {
				continue
			}
			if _, ok := dist[v]; !ok {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return dist
}

// requireValidPath checks the path-validity properties: first is start,
// last is end, consecutive cells are adjacent in g, length-1 == cost.
func requireValidPath(tb testing.TB, g *maze.Graph, path []grid.Coordinate, cost int64) {
	tb.Helper()
	require.NotEmpty(tb, path)
	require.Equal(tb, g.Start(), path[0], "path must begin at start")
	require.Equal(tb, g.End(), path[len(path)-1], "path must end at end")
	require.Equal(tb, cost, int64(len(path)-1), "one step per unit of cost")
	for i := 1; i < len(path); i++ {
		require.True(tb, slices.Contains(g.Neighbors(path[i-1]), path[i]),
			"%v→%v is not an adjacency edge", path[i-1], path[i])
	}
}
