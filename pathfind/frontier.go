package pathfind

import (
	"container/heap"

	"github.com/katalvlaran/lvmaze/grid"
)

// frontierItem is one pending expansion.
type frontierItem struct {
	at       grid.Coordinate
	cost     int64  // path cost from start (g)
	priority int64  // cost plus heuristic; equals cost for Dijkstra
	seq      uint64 // push sequence number, for FIFO tie-breaking
}

// frontier is a min-heap of frontierItem ordered by priority, then by the
// configured tie-break. Superseded entries are never removed; the runner
// discards them on pop.
type frontier struct {
	items   []frontierItem
	byCoord bool
	seq     uint64
}

func newFrontier(capacity int, t TieBreak) *frontier {
	f := &frontier{
		items:   make([]frontierItem, 0, capacity),
		byCoord: t == TieBreakCoordinate,
	}
	heap.Init(f)

	return f
}

// Len returns the number of items in the heap.
func (f *frontier) Len() int { return len(f.items) }

// Less orders by priority, then coordinate (if enabled), then sequence.
func (f *frontier) Less(i, j int) bool {
	a, b := f.items[i], f.items[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if f.byCoord && a.at != b.at {
		return a.at.Less(b.at)
	}

	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (f *frontier) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

// Push is called by heap.Push; x must be a frontierItem.
func (f *frontier) Push(x any) { f.items = append(f.items, x.(frontierItem)) }

// Pop is called by heap.Pop.
func (f *frontier) Pop() any {
	n := len(f.items)
	item := f.items[n-1]
	f.items = f.items[:n-1]

	return item
}

// push stamps the next sequence number and inserts.
func (f *frontier) push(at grid.Coordinate, cost, priority int64) {
	f.seq++
	heap.Push(f, frontierItem{at: at, cost: cost, priority: priority, seq: f.seq})
}

// pop removes the minimum item.
func (f *frontier) pop() frontierItem {
	return heap.Pop(f).(frontierItem)
}
