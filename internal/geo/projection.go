package geo

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

// Display projection of the map (EPSG:3857, spherical web mercator).
const DisplayProjection = "EPSG:3857"

// Latitude bound of web mercator; the poles project to infinity.
const MaxLatitude = 85.0511287798066

var toMercator orb.Projection = func(p orb.Point) orb.Point {
	p[1] = math.Max(-MaxLatitude, math.Min(MaxLatitude, p[1]))
	return project.WGS84.ToMercator(p)
}

// ToDisplay reprojects a geographic geometry into the display projection.
// The input is cloned so callers keep their geographic copy.
func ToDisplay(g orb.Geometry) orb.Geometry {
	return project.Geometry(orb.Clone(g), toMercator)
}

// FromDisplay is the inverse of ToDisplay.
func FromDisplay(g orb.Geometry) orb.Geometry {
	return project.Geometry(orb.Clone(g), project.Mercator.ToWGS84)
}

// FromLonLat projects a single geographic point.
func FromLonLat(p orb.Point) orb.Point {
	return toMercator(p)
}

// ToLonLat is the inverse of FromLonLat.
func ToLonLat(p orb.Point) orb.Point {
	return project.Mercator.ToWGS84(p)
}
