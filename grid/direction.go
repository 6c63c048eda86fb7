package grid

// Direction is one of the four cardinal directions.
type Direction uint8

const (
	// North decreases Y.
	North Direction = iota
	// East increases X.
	East
	// South increases Y.
	South
	// West decreases X.
	West
)

// cardinals is the fixed enumeration order used for adjacency lists.
var cardinals = [4]Direction{North, East, South, West}

// Cardinals returns North, East, South, West in that order.
// The order is part of the contract: adjacency lists and tie-broken
// shortest paths are reproducible because of it.
func Cardinals() [4]Direction {
	return cardinals
}

// String returns the single-letter name of d.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}

// Signed is the set of signed integer types Offset operates on.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Offset returns (x,y) moved one step in direction d.
// Values may leave the non-negative quadrant; callers bounds-check after.
// An unknown Direction leaves the point unchanged.
func Offset[T Signed](x, y T, d Direction) (T, T) {
	switch d {
	case North:
		return x, y - 1
	case East:
		return x + 1, y
	case South:
		return x, y + 1
	case West:
		return x - 1, y
	default:
		return x, y
	}
}

// Neighbor returns the cell adjacent to c in direction d, and false when
// that cell falls outside b.
func Neighbor(c Coordinate, d Direction, b Bounds) (Coordinate, bool) {
	nx, ny := Offset(c.X, c.Y, d)
	n := Coordinate{X: nx, Y: ny}
	if !b.Contains(n) {
		return Coordinate{}, false
	}

	return n, true
}

// Manhattan is the L1 distance between a and b: the fewest cardinal steps
// separating them on an obstacle-free grid.
func Manhattan(a, b Coordinate) int64 {
	dx, dy := int64(a.X-b.X), int64(a.Y-b.Y)
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}
