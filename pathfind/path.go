package pathfind

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmaze/grid"
)

// ReconstructPath walks the predecessor links of res from End back to Start
// and returns the cells Start…End inclusive.
//
// Returns ErrUnreachableEnd when res is nil or End was not reached, and
// ErrUnreachableEnd wrapping ErrBrokenChain when the links do not lead to
// Start within len(res.Entries) steps.
// Complexity: O(path length).
func ReconstructPath(res *Result) ([]grid.Coordinate, error) {
	if res == nil || !res.reached {
		return nil, ErrUnreachableEnd
	}

	limit := len(res.Entries)
	path := []grid.Coordinate{res.End}
	for cur := res.End; cur != res.Start; {
		if len(path) > limit {
			return nil, fmt.Errorf("%w: %w after %d steps", ErrUnreachableEnd, ErrBrokenChain, limit)
		}
		prev, ok := res.Predecessor(cur)
		if !ok {
			return nil, fmt.Errorf("%w: %w at %v", ErrUnreachableEnd, ErrBrokenChain, cur)
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}
