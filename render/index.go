package render

import (
	"image"
	"slices"

	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/lvmaze/grid"
)

// wallInset shrinks each indexed cell so that neighboring cells never share
// an edge; a query rectangle then intersects exactly the cells it covers.
const wallInset = 0.25

// wallEntry is one wall cell stored in the R-tree.
type wallEntry struct {
	at   grid.Coordinate
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (w *wallEntry) Bounds() rtreego.Rect { return w.bbox }

// WallIndex answers "which walls lie in this rectangle" in O(log n + k).
type WallIndex struct {
	tree *rtreego.Rtree
}

// NewWallIndex indexes walls.
func NewWallIndex(walls []grid.Coordinate) *WallIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node
	for _, c := range walls {
		bbox, err := rtreego.NewRect(
			rtreego.Point{float64(c.X) + wallInset, float64(c.Y) + wallInset},
			[]float64{1 - 2*wallInset, 1 - 2*wallInset},
		)
		if err != nil {
			continue
		}
		tree.Insert(&wallEntry{at: c, bbox: bbox})
	}

	return &WallIndex{tree: tree}
}

// Len returns the number of indexed walls.
func (wi *WallIndex) Len() int { return wi.tree.Size() }

// Within returns the walls whose cells lie in r (cell units, Max exclusive),
// in row-major order. An empty r yields nil.
func (wi *WallIndex) Within(r image.Rectangle) []grid.Coordinate {
	if r.Empty() {
		return nil
	}
	bbox, err := rtreego.NewRect(
		rtreego.Point{float64(r.Min.X), float64(r.Min.Y)},
		[]float64{float64(r.Dx()), float64(r.Dy())},
	)
	if err != nil {
		return nil
	}

	hits := wi.tree.SearchIntersect(bbox)
	out := make([]grid.Coordinate, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(*wallEntry).at)
	}
	slices.SortFunc(out, grid.Coordinate.Compare)

	return out
}
