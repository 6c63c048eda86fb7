// Package grid defines the coordinate primitives shared by every lvmaze
// package: an immutable Coordinate, half-open Bounds and the four cardinal
// Directions.
//
// What:
//
//   - Coordinate is a comparable (x,y) value usable as a map key.
//   - Bounds is the half-open rectangle [0,Width) × [0,Height).
//   - Direction enumerates North, East, South, West in that fixed order.
//   - Offset is a single generic helper over every signed integer type that
//     shifts a point one step in a Direction.
//
// Neighbor computation runs in the signed domain (so stepping West from
// x=0 yields -1 instead of wrapping) and is converted back to a Coordinate
// only after a Bounds check.
//
// Complexity: every operation is O(1).
package grid
