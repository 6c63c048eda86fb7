package pathfind_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/pathfind"
)

// ExampleShortestPath solves the 3×4 maze and prints its optimal route.
// With FIFO tie-breaking the route first heads east along the top row.
func ExampleShortestPath() {
	g, err := maze.BuildGraph([]string{
		"S..#",
		".#.#",
		"...E",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := pathfind.ShortestPath(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	cost, ok := res.Cost()
	fmt.Println("reachable:", ok, "cost:", cost)

	path, err := pathfind.ReconstructPath(res)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("path:", path)

	// Output:
	// reachable: true cost: 5
	// path: [(0,0) (1,0) (2,0) (2,1) (2,2) (3,2)]
}

// ExampleSolver shows the two-call query and the unreachable outcome.
func ExampleSolver() {
	g, _ := maze.BuildGraph([]string{
		"S.#.",
		"..#E",
	})
	s := pathfind.NewSolver(g)

	_, ok, err := s.ShortestPath()
	fmt.Println("reachable:", ok, "error:", err)

	_, err = s.ReconstructPath()
	fmt.Println(err)

	// Output:
	// reachable: false error: <nil>
	// pathfind: end is unreachable
}
