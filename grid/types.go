package grid

import "fmt"

// Coordinate identifies a single cell. X grows to the right (column),
// Y grows downward (row). Two coordinates are equal iff both components are.
type Coordinate struct {
	X, Y int
}

// C is shorthand for Coordinate{X: x, Y: y}.
func C(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Less orders coordinates row-major: by Y first, then by X.
func (c Coordinate) Less(o Coordinate) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}

	return c.X < o.X
}

// Compare returns -1, 0 or +1 following the row-major order of Less.
// Suitable for slices.SortFunc.
func (c Coordinate) Compare(o Coordinate) int {
	switch {
	case c.Less(o):
		return -1
	case o.Less(c):
		return 1
	default:
		return 0
	}
}

// String renders the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Bounds is the half-open rectangle [0,Width) × [0,Height).
type Bounds struct {
	Width, Height int
}

// Contains reports whether c lies inside b.
func (b Bounds) Contains(c Coordinate) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// Area is Width×Height, the number of coordinates inside b.
func (b Bounds) Area() int {
	return b.Width * b.Height
}
