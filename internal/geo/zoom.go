package geo

import (
	"math"

	"github.com/paulmach/orb/maptile"
)

const (
	// Width of the whole world in EPSG:3857 meters.
	worldWidth = 2 * math.Pi * 6378137.0
	tileSize   = 256

	// Resolution (meters per pixel) at zoom 0.
	MaxResolution = worldWidth / tileSize
)

// ResolutionForZoom returns meters per pixel at the given zoom level.
func ResolutionForZoom(zoom float64) float64 {
	return MaxResolution / math.Pow(2, zoom)
}

// ZoomForResolution is the inverse of ResolutionForZoom.
func ZoomForResolution(res float64) float64 {
	return math.Log2(MaxResolution / res)
}

// MinResolution is the finest resolution allowed with the given zoom cap.
func MinResolution(maxZoom maptile.Zoom) float64 {
	return ResolutionForZoom(float64(maxZoom))
}
