// Package maze turns a textual character grid into an immutable graph of
// traversable cells, ready for shortest-path search.
//
// What:
//
//   - Parse classifies every cell of a rectangular (or ragged) grid of
//     text rows into traversable cells and walls and locates the start
//     and end markers.
//   - BuildAdjacency links each traversable cell to its traversable
//     cardinal neighbors in the fixed order North, East, South, West.
//   - BuildGraph chains both steps into an immutable *Graph.
//   - ReadLines is a small text-acquisition helper for hosts; the parser
//     itself never touches files.
//
// Symbols (defaults, overridable with WithSymbols / WithOpenSymbols):
//
//	'.'  traversable cell
//	'S'  start cell (traversable)
//	'E'  end cell (traversable)
//	any other rune is a wall
//
// Bounds:
//
//   - Width is the longest row (in runes), Height the number of rows.
//   - Cells missing from a short row are inside Bounds and count as walls,
//     so every in-bounds coordinate is exactly one of traversable or wall.
//
// Markers:
//
//   - Exactly one start and one end are required.
//   - Repeated markers fail with ErrDuplicateStart / ErrDuplicateEnd under
//     the default MarkerReject policy. MarkerKeepFirst and MarkerKeepLast
//     select a single marker silently instead.
//   - When the start and end symbols coincide a single cell is both, which
//     models the degenerate start == end query. WithStartAsEnd does the same
//     for grids that carry no end marker at all.
//
// Errors:
//
//   - ErrMalformedGrid is the umbrella error; every parse failure wraps it.
//   - ErrEmptyGrid, ErrMissingStart, ErrMissingEnd, ErrDuplicateStart,
//     ErrDuplicateEnd name the precise cause; duplicates arrive as a
//     *MarkerError carrying both coordinates.
//   - ErrOptionViolation reports an invalid Option.
//
// Concurrency:
//
//	A *Graph is never mutated after BuildGraph returns and may be shared
//	read-only by any number of concurrent shortest-path queries.
//
// Complexity: Parse, BuildAdjacency and BuildGraph run in O(W×H) time and
// memory.
package maze
