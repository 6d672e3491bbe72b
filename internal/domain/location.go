package domain

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidLocation = errors.New("invalid location record")

// A single location as reported by the location service.
// Latitude and longitude are in degrees, accuracy is a radius in meters.
type LocationRecord struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
}

func (r LocationRecord) Center() Coordinates {
	return Coordinates{Lon: r.Longitude, Lat: r.Latitude}
}

// Validate checks the record is drawable.
func (r LocationRecord) Validate() error {
	if math.IsNaN(r.Latitude) || r.Latitude < -90 || r.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v out of range", ErrInvalidLocation, r.Latitude)
	}
	if math.IsNaN(r.Longitude) || r.Longitude < -180 || r.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v out of range", ErrInvalidLocation, r.Longitude)
	}
	if math.IsNaN(r.Accuracy) || math.IsInf(r.Accuracy, 0) || r.Accuracy < 0 {
		return fmt.Errorf("%w: accuracy %v must be a finite value >= 0", ErrInvalidLocation, r.Accuracy)
	}
	return nil
}
