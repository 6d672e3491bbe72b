package ports

import (
	"location-viewer/internal/domain"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
)

// Port: the map surface owning the vector source and the view.
type MapRenderer interface {
	// Replace the whole source with features in a single step.
	ClearAndSet(features []domain.Feature)
	// Return a copy of the current source contents.
	Features() []domain.Feature
	// Return the bounding extent of features; false when there is nothing to bound.
	ExtentOf(features []domain.Feature) (orb.Bound, bool)
	// Move the view to frame extent, never zooming past maxZoom.
	FitTo(extent orb.Bound, maxZoom maptile.Zoom, duration time.Duration)
	// Return the current view.
	View() domain.Viewport
}
