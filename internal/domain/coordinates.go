package domain

import "github.com/paulmach/orb"

// Immutable geographic coordinates (longitude, latitude) in degrees.
type Coordinates struct {
	Lon float64
	Lat float64
}

// Return coordinates as an orb point, which orders axes as [lon, lat].
func (c Coordinates) Point() orb.Point { return orb.Point{c.Lon, c.Lat} }
