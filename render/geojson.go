package render

import (
	"context"
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/lvmaze/grid"
)

// Feature "kind" property values written by GeoJSONSink.
const (
	KindPath  = "path"
	KindWalls = "walls"
	KindStart = "start"
	KindEnd   = "end"
)

// GeoJSONSink writes the scene as a GeoJSON FeatureCollection in planar
// cell units: walls as one MultiPolygon of unit squares, the path as a
// LineString through cell centers, start and end as Points.
type GeoJSONSink struct {
	W io.Writer
}

// Render implements Sink.
func (g GeoJSONSink) Render(ctx context.Context, s Scene) error {
	fc, err := FeatureCollection(ctx, s)
	if err != nil {
		return err
	}
	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("render: marshal geojson: %w", err)
	}
	if _, err := g.W.Write(data); err != nil {
		return fmt.Errorf("render: write geojson: %w", err)
	}

	return nil
}

// FeatureCollection builds the GeoJSON document for s.
func FeatureCollection(ctx context.Context, s Scene) (*geojson.FeatureCollection, error) {
	if err := s.validate(ctx); err != nil {
		return nil, err
	}
	fc := geojson.NewFeatureCollection()
	fc.BBox = geojson.BBox{0, 0, float64(s.Bounds.Width), float64(s.Bounds.Height)}

	walls := make(orb.MultiPolygon, 0, len(s.Walls))
	for _, c := range s.Walls {
		walls = append(walls, cellSquare(c))
	}
	wf := geojson.NewFeature(walls)
	wf.Properties["kind"] = KindWalls
	wf.Properties["count"] = len(s.Walls)
	fc.Append(wf)

	if len(s.Path) > 1 {
		line := make(orb.LineString, 0, len(s.Path))
		for _, c := range s.Path {
			line = append(line, center(c))
		}
		pf := geojson.NewFeature(line)
		pf.Properties["kind"] = KindPath
		pf.Properties["cost"] = len(s.Path) - 1
		fc.Append(pf)
	}

	for _, p := range []struct {
		kind string
		at   grid.Coordinate
	}{{KindStart, s.Start}, {KindEnd, s.End}} {
		f := geojson.NewFeature(center(p.at))
		f.Properties["kind"] = p.kind
		f.Properties["x"] = p.at.X
		f.Properties["y"] = p.at.Y
		fc.Append(f)
	}

	return fc, nil
}

// center is the midpoint of cell c.
func center(c grid.Coordinate) orb.Point {
	return orb.Point{float64(c.X) + 0.5, float64(c.Y) + 0.5}
}

// cellSquare is the closed unit square covering c.
func cellSquare(c grid.Coordinate) orb.Polygon {
	x, y := float64(c.X), float64(c.Y)

	return orb.Polygon{orb.Ring{{x, y}, {x + 1, y}, {x + 1, y + 1}, {x, y + 1}, {x, y}}}
}
