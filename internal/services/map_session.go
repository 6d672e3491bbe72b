package services

import (
	"errors"
	"fmt"
	"location-viewer/internal/domain"
	"location-viewer/internal/geo"
	"location-viewer/internal/ports"
	"time"

	"github.com/paulmach/orb/maptile"
)

type MapSessionOptions struct {
	MaxZoom        maptile.Zoom
	FitDuration    time.Duration
	CircleVertices int
}

func DefaultMapSessionOptions() MapSessionOptions {
	return MapSessionOptions{
		MaxZoom:        18,
		FitDuration:    500 * time.Millisecond,
		CircleVertices: geo.DefaultCircleVertices,
	}
}

// MapSession is the only writer of the displayed geometry.
// The renderer's source holds either nothing or exactly one
// accuracy disc and one position marker.
type MapSession struct {
	renderer ports.MapRenderer
	opts     MapSessionOptions
}

func NewMapSession(renderer ports.MapRenderer, opts MapSessionOptions) (*MapSession, error) {
	if renderer == nil {
		return nil, errors.New("map session: renderer is nil")
	}
	if opts.CircleVertices < 3 {
		opts.CircleVertices = geo.DefaultCircleVertices
	}
	return &MapSession{renderer: renderer, opts: opts}, nil
}

// LocationFeatures builds the accuracy disc and the position marker for rec,
// both reprojected into the display projection with the same transform.
func LocationFeatures(rec domain.LocationRecord, vertices int) []domain.Feature {
	center := rec.Center().Point()
	disc := geo.Circular(center, rec.Accuracy, vertices)

	return []domain.Feature{
		{Kind: domain.FeatureAccuracy, Geometry: geo.ToDisplay(disc)},
		{Kind: domain.FeaturePosition, Geometry: geo.ToDisplay(center)},
	}
}

// UpdateLocation replaces the displayed geometry with the location at
// (lat, lon) and its accuracy radius in meters.
// Invalid coordinates are rejected and leave the map untouched.
func (s *MapSession) UpdateLocation(lat, lon, accuracy float64) error {
	rec := domain.LocationRecord{Latitude: lat, Longitude: lon, Accuracy: accuracy}
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("update location: %w", err)
	}

	s.renderer.ClearAndSet(LocationFeatures(rec, s.opts.CircleVertices))
	return nil
}

// FitToCurrent frames the displayed geometry. It reports false and leaves
// the view alone when nothing is displayed.
func (s *MapSession) FitToCurrent() bool {
	features := s.renderer.Features()
	if len(features) == 0 {
		return false
	}

	extent, ok := s.renderer.ExtentOf(features)
	if !ok {
		return false
	}

	s.renderer.FitTo(extent, s.opts.MaxZoom, s.opts.FitDuration)
	return true
}

func (s *MapSession) Features() []domain.Feature { return s.renderer.Features() }

func (s *MapSession) View() domain.Viewport { return s.renderer.View() }
