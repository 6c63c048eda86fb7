// Package render draws a solved maze for people and tools. It is the
// visualization collaborator of lvmaze: the search packages never import it,
// hosts hand a Scene to whichever Sink they were given.
//
// What:
//
//   - Scene holds plain coordinate lists: walls, the ordered path, start and
//     end, plus bounds.
//   - Sink is the injected output capability. Three implementations ship:
//     TextSink (character overlay), PNGSink (raster image) and GeoJSONSink
//     (a FeatureCollection built with github.com/paulmach/orb).
//   - WallIndex is an R-tree (github.com/dhconnelly/rtreego) over wall cells
//     that answers viewport queries; PNGSink uses it to paint only the walls
//     inside its Viewport.
//
// Coordinates:
//
//	Cell (x,y) covers the unit square [x,x+1)×[y,y+1) with y growing downward,
//	in PNG pixels (scaled by CellSize) and in GeoJSON planar units alike.
package render
