package domain

import (
	"time"

	"github.com/paulmach/orb"
)

// Viewport describes what the map currently frames.
// Center is in the display projection; Resolution is map units per pixel.
type Viewport struct {
	Center     orb.Point
	Zoom       float64
	Resolution float64
	Width      int
	Height     int
	// Duration of the last programmatic move, zero when none happened.
	Animation time.Duration
}

// Extent returns the area covered by the viewport in map units.
func (v Viewport) Extent() orb.Bound {
	hw := v.Resolution * float64(v.Width) / 2
	hh := v.Resolution * float64(v.Height) / 2
	return orb.Bound{
		Min: orb.Point{v.Center[0] - hw, v.Center[1] - hh},
		Max: orb.Point{v.Center[0] + hw, v.Center[1] + hh},
	}
}
