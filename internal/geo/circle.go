package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const DefaultCircleVertices = 32

// Circular approximates a circle on the sphere as a closed polygon ring.
// center is [lon, lat] in degrees and radius is in meters.
// The ring has n vertices plus the closing point, starting due north.
func Circular(center orb.Point, radius float64, n int) orb.Polygon {
	if n < 3 {
		n = DefaultCircleVertices
	}

	ring := make(orb.Ring, 0, n+1)
	for i := 0; i < n; i++ {
		bearing := 360 * float64(i) / float64(n)
		ring = append(ring, geo.PointAtBearingAndDistance(center, bearing, radius))
	}
	ring = append(ring, ring[0])

	return orb.Polygon{ring}
}
