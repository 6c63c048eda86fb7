package render

import (
	"context"
	"errors"
	"slices"

	"github.com/katalvlaran/lvmaze/grid"
)

// ErrEmptyScene is returned when a Scene has zero-area bounds.
var ErrEmptyScene = errors.New("render: scene has no cells")

// Source is what NewScene needs from a maze; *maze.Graph implements it.
type Source interface {
	Bounds() grid.Bounds
	Walls() []grid.Coordinate
	Start() grid.Coordinate
	End() grid.Coordinate
}

// Scene is everything a Sink may draw.
type Scene struct {
	Bounds     grid.Bounds
	Walls      []grid.Coordinate
	Path       []grid.Coordinate // start…end inclusive; empty when unreachable
	Start, End grid.Coordinate
}

// NewScene captures src and path. path is copied.
func NewScene(src Source, path []grid.Coordinate) Scene {
	return Scene{
		Bounds: src.Bounds(),
		Walls:  src.Walls(),
		Path:   slices.Clone(path),
		Start:  src.Start(),
		End:    src.End(),
	}
}

// Sink consumes a Scene.
type Sink interface {
	Render(ctx context.Context, s Scene) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, s Scene) error

// Render calls f.
func (f SinkFunc) Render(ctx context.Context, s Scene) error { return f(ctx, s) }

// validate rejects empty scenes and finished contexts.
func (s Scene) validate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.Bounds.Area() == 0 {
		return ErrEmptyScene
	}

	return nil
}

// onPath returns the set of cells on s.Path.
func (s Scene) onPath() map[grid.Coordinate]struct{} {
	set := make(map[grid.Coordinate]struct{}, len(s.Path))
	for _, c := range s.Path {
		set[c] = struct{}{}
	}

	return set
}
