package maze_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/maze"
)

// ExampleBuildGraph parses a small maze and inspects its adjacency.
func ExampleBuildGraph() {
	g, err := maze.BuildGraph([]string{
		"S..#",
		".#.#",
		"...E",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("bounds:", g.Bounds().Width, "x", g.Bounds().Height)
	fmt.Println("start:", g.Start(), "end:", g.End())
	fmt.Println("open cells:", g.Len(), "walls:", len(g.Walls()))
	fmt.Println("start neighbors:", g.Neighbors(g.Start()))
	fmt.Println("end neighbors:", g.Neighbors(g.End()))

	// Output:
	// bounds: 4 x 3
	// start: (0,0) end: (3,2)
	// open cells: 9 walls: 3
	// start neighbors: [(1,0) (0,1)]
	// end neighbors: [(2,2)]
}
