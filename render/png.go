package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/katalvlaran/lvmaze/grid"
)

// DefaultCellSize is the pixel edge of one cell when PNGSink.CellSize is 0.
const DefaultCellSize = 8

// maxPixels caps the size of a rendered image.
const maxPixels = 1 << 26

// Palette colors a PNG rendering.
type Palette struct {
	Background, Wall, Path, Start, End color.Color
}

// DefaultPalette is white floor, dark walls, blue path, green start, red end.
func DefaultPalette() Palette {
	return Palette{
		Background: color.White,
		Wall:       color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff},
		Path:       color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
		Start:      color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
		End:        color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	}
}

// PNGSink encodes the scene as a PNG image.
//
// CellSize – pixels per cell edge (DefaultCellSize when 0).
// Palette  – colors; a nil field falls back to DefaultPalette.
// Viewport – cell rectangle to draw; the zero rectangle draws everything.
type PNGSink struct {
	W        io.Writer
	CellSize int
	Palette  Palette
	Viewport image.Rectangle
}

// Render implements Sink.
func (p PNGSink) Render(ctx context.Context, s Scene) error {
	img, err := p.Draw(ctx, s)
	if err != nil {
		return err
	}
	if err := png.Encode(p.W, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}

	return nil
}

// Draw rasterizes the scene without encoding it.
func (p PNGSink) Draw(ctx context.Context, s Scene) (*image.RGBA, error) {
	if err := s.validate(ctx); err != nil {
		return nil, err
	}
	cell := p.CellSize
	if cell <= 0 {
		cell = DefaultCellSize
	}
	pal := p.palette()

	full := image.Rect(0, 0, s.Bounds.Width, s.Bounds.Height)
	view := full
	if !p.Viewport.Empty() {
		view = p.Viewport.Intersect(full)
		if view.Empty() {
			return nil, fmt.Errorf("%w: viewport %v outside %v", ErrEmptyScene, p.Viewport, full)
		}
	}
	if cell > maxPixels || int64(view.Dx())*int64(view.Dy()) > maxPixels/(int64(cell)*int64(cell)) {
		return nil, fmt.Errorf("render: image of %dx%d cells at %dpx exceeds %d pixels", view.Dx(), view.Dy(), cell, maxPixels)
	}

	img := image.NewRGBA(image.Rect(0, 0, view.Dx()*cell, view.Dy()*cell))
	draw.Draw(img, img.Bounds(), image.NewUniform(pal.Background), image.Point{}, draw.Src)

	fill := func(c grid.Coordinate, col color.Color) {
		if !(image.Point{X: c.X, Y: c.Y}).In(view) {
			return
		}
		x0, y0 := (c.X-view.Min.X)*cell, (c.Y-view.Min.Y)*cell
		draw.Draw(img, image.Rect(x0, y0, x0+cell, y0+cell), image.NewUniform(col), image.Point{}, draw.Src)
	}

	for _, c := range NewWallIndex(s.Walls).Within(view) {
		fill(c, pal.Wall)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, c := range s.Path {
		fill(c, pal.Path)
	}
	fill(s.Start, pal.Start)
	fill(s.End, pal.End)

	return img, nil
}

// palette fills nil colors from DefaultPalette.
func (p PNGSink) palette() Palette {
	def, pal := DefaultPalette(), p.Palette
	if pal.Background == nil {
		pal.Background = def.Background
	}
	if pal.Wall == nil {
		pal.Wall = def.Wall
	}
	if pal.Path == nil {
		pal.Path = def.Path
	}
	if pal.Start == nil {
		pal.Start = def.Start
	}
	if pal.End == nil {
		pal.End = def.End
	}

	return pal
}
