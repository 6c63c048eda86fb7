package grid_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/grid"
)

// TestBounds_Contains checks the half-open semantics on a 3×2 rectangle.
func TestBounds_Contains(t *testing.T) {
	b := grid.Bounds{Width: 3, Height: 2}

	for _, c := range []grid.Coordinate{grid.C(0, 0), grid.C(2, 1), grid.C(1, 1)} {
		assert.True(t, b.Contains(c), "Contains%v", c)
	}
	for _, c := range []grid.Coordinate{grid.C(-1, 0), grid.C(3, 0), grid.C(1, 2), grid.C(2, -1)} {
		assert.False(t, b.Contains(c), "Contains%v", c)
	}
	assert.Equal(t, 6, b.Area())
}

// TestOffset_Generic exercises the same helper over several integer widths.
func TestOffset_Generic(t *testing.T) {
	x8, y8 := grid.Offset[int8](0, 0, grid.West)
	assert.Equal(t, int8(-1), x8)
	assert.Equal(t, int8(0), y8)

	x64, y64 := grid.Offset[int64](5, 5, grid.North)
	assert.Equal(t, int64(5), x64)
	assert.Equal(t, int64(4), y64)

	x, y := grid.Offset(2, 3, grid.South)
	assert.Equal(t, 2, x)
	assert.Equal(t, 4, y)

	x, y = grid.Offset(2, 3, grid.Direction(9))
	assert.Equal(t, 2, x)
	assert.Equal(t, 3, y)
}

func TestNeighbor_Bounds(t *testing.T) {
	b := grid.Bounds{Width: 2, Height: 2}

	_, ok := grid.Neighbor(grid.C(0, 0), grid.North, b)
	assert.False(t, ok, "north of the top row is out of bounds")
	_, ok = grid.Neighbor(grid.C(0, 0), grid.West, b)
	assert.False(t, ok)

	n, ok := grid.Neighbor(grid.C(0, 0), grid.East, b)
	require.True(t, ok)
	assert.Equal(t, grid.C(1, 0), n)

	n, ok = grid.Neighbor(grid.C(1, 0), grid.South, b)
	require.True(t, ok)
	assert.Equal(t, grid.C(1, 1), n)
}

func TestCardinals_Order(t *testing.T) {
	got := grid.Cardinals()
	assert.Equal(t, [4]grid.Direction{grid.North, grid.East, grid.South, grid.West}, got)
	assert.Equal(t, "NESW", got[0].String()+got[1].String()+got[2].String()+got[3].String())
}

func TestCoordinate_Order(t *testing.T) {
	cs := []grid.Coordinate{grid.C(2, 1), grid.C(0, 1), grid.C(3, 0), grid.C(0, 0)}
	slices.SortFunc(cs, grid.Coordinate.Compare)
	assert.Equal(t, []grid.Coordinate{grid.C(0, 0), grid.C(3, 0), grid.C(0, 1), grid.C(2, 1)}, cs)
	assert.Equal(t, 0, grid.C(1, 1).Compare(grid.C(1, 1)))
	assert.Equal(t, "(3,7)", grid.C(3, 7).String())
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, int64(0), grid.Manhattan(grid.C(1, 1), grid.C(1, 1)))
	assert.Equal(t, int64(5), grid.Manhattan(grid.C(0, 0), grid.C(3, 2)))
	assert.Equal(t, int64(5), grid.Manhattan(grid.C(3, 2), grid.C(0, 0)))
}
