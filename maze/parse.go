package maze

import (
	"strings"

	"github.com/katalvlaran/lvmaze/grid"
)

// markerSlot tracks one marker (start or end) while scanning.
type markerSlot struct {
	kind  error
	sym   rune
	found bool
	at    grid.Coordinate
}

// see records an occurrence at c under policy p.
func (m *markerSlot) see(c grid.Coordinate, p MarkerPolicy) error {
	if !m.found {
		m.found, m.at = true, c
		return nil
	}
	switch p {
	case MarkerKeepFirst:
		// keep m.at
	case MarkerKeepLast:
		m.at = c
	default:
		return &MarkerError{Kind: m.kind, Symbol: m.sym, First: m.at, Second: c}
	}

	return nil
}

// Parse classifies the cells of lines into traversable cells and walls and
// locates the start and end markers.
//
// Steps:
//  1. Apply options; an invalid option fails with ErrOptionViolation.
//  2. Decode rows as runes and compute Bounds (longest row × row count).
//  3. Classify each in-bounds cell; padding past a short row is wall.
//  4. Resolve markers per Options.Policy.
//
// Returns an error wrapping ErrMalformedGrid for empty grids and missing or
// duplicate markers.
// Complexity: O(W×H).
func Parse(lines []string, opts ...Option) (*Layout, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	rows := make([][]rune, len(lines))
	width := 0
	for y, line := range lines {
		if o.TrimCR {
			line = strings.TrimSuffix(line, "\r")
		}
		rows[y] = []rune(line)
		width = max(width, len(rows[y]))
	}
	if len(rows) == 0 || width == 0 {
		return nil, ErrEmptyGrid
	}

	open := make(map[rune]struct{}, 1+len(o.ExtraOpen))
	open[o.Open] = struct{}{}
	for _, r := range o.ExtraOpen {
		open[r] = struct{}{}
	}

	b := grid.Bounds{Width: width, Height: len(rows)}
	l := &Layout{
		Traversable: make(map[grid.Coordinate]struct{}, b.Area()),
		Walls:       make(map[grid.Coordinate]struct{}),
		Bounds:      b,
	}
	start := markerSlot{kind: ErrDuplicateStart, sym: o.Start}
	end := markerSlot{kind: ErrDuplicateEnd, sym: o.End}

	for y, row := range rows {
		for x := 0; x < width; x++ {
			c := grid.Coordinate{X: x, Y: y}
			if x >= len(row) {
				l.Walls[c] = struct{}{}
				continue
			}
			r := row[x]
			isStart, isEnd := r == o.Start, r == o.End
			if isStart {
				if err := start.see(c, o.Policy); err != nil {
					return nil, err
				}
			}
			if isEnd {
				if err := end.see(c, o.Policy); err != nil {
					return nil, err
				}
			}
			if _, ok := open[r]; ok || isStart || isEnd {
				l.Traversable[c] = struct{}{}
			} else {
				l.Walls[c] = struct{}{}
			}
		}
	}

	if !start.found {
		return nil, ErrMissingStart
	}
	if !end.found {
		if !o.StartAsEnd {
			return nil, ErrMissingEnd
		}
		end.at = start.at
	}
	l.Start, l.End = start.at, end.at

	return l, nil
}
