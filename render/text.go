package render

import (
	"bufio"
	"context"
	"io"

	"github.com/katalvlaran/lvmaze/grid"
)

// TextSink writes the maze as rows of runes with the path overlaid.
// Zero runes fall back to '#', '.', '*', 'S' and 'E'.
type TextSink struct {
	W io.Writer

	Wall, Open, Trail, Start, End rune
}

// Render implements Sink.
func (t TextSink) Render(ctx context.Context, s Scene) error {
	if err := s.validate(ctx); err != nil {
		return err
	}
	wall := orDefault(t.Wall, '#')
	open := orDefault(t.Open, '.')
	trail := orDefault(t.Trail, '*')
	start := orDefault(t.Start, 'S')
	end := orDefault(t.End, 'E')

	walls := make(map[grid.Coordinate]struct{}, len(s.Walls))
	for _, c := range s.Walls {
		walls[c] = struct{}{}
	}
	path := s.onPath()

	bw := bufio.NewWriter(t.W)
	for y := 0; y < s.Bounds.Height; y++ {
		for x := 0; x < s.Bounds.Width; x++ {
			c := grid.Coordinate{X: x, Y: y}
			r := open
			switch _, isWall := walls[c]; {
			case c == s.Start:
				r = start
			case c == s.End:
				r = end
			case isWall:
				r = wall
			default:
				if _, ok := path[c]; ok {
					r = trail
				}
			}
			if _, err := bw.WriteRune(r); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func orDefault(r, def rune) rune {
	if r == 0 {
		return def
	}

	return r
}
