package render

import (
	"location-viewer/internal/domain"
	"location-viewer/internal/geo"
	"math"
	"sync"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
)

// Options fixes the map's construction-time view.
type Options struct {
	Center      orb.Point // geographic [lon, lat]
	InitialZoom float64
	Width       int
	Height      int
}

// MemoryMap implements ports.MapRenderer without a drawing surface.
//
// It holds the vector source and the view; the browser page draws whatever
// it holds. The map is safe for concurrent use.
type MemoryMap struct {
	mu       sync.RWMutex
	features []domain.Feature
	view     domain.Viewport
}

func NewMemoryMap(opts Options) *MemoryMap {
	if opts.Width <= 0 {
		opts.Width = 1024
	}
	if opts.Height <= 0 {
		opts.Height = 768
	}

	return &MemoryMap{
		view: domain.Viewport{
			Center:     geo.FromLonLat(opts.Center),
			Zoom:       opts.InitialZoom,
			Resolution: geo.ResolutionForZoom(opts.InitialZoom),
			Width:      opts.Width,
			Height:     opts.Height,
		},
	}
}

func (m *MemoryMap) ClearAndSet(features []domain.Feature) {
	next := append([]domain.Feature(nil), features...)

	m.mu.Lock()
	m.features = next
	m.mu.Unlock()
}

func (m *MemoryMap) Features() []domain.Feature {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.Feature(nil), m.features...)
}

func (m *MemoryMap) ExtentOf(features []domain.Feature) (orb.Bound, bool) {
	var (
		b  orb.Bound
		ok bool
	)
	for _, f := range features {
		if f.Geometry == nil {
			continue
		}
		fb := f.Geometry.Bound()
		if !ok {
			b, ok = fb, true
			continue
		}
		b = b.Union(fb)
	}
	return b, ok
}

// fitMargin widens the fitted resolution so that recomputing the view edges
// from center and resolution cannot land inside the extent.
const fitMargin = 1e-9

// FitTo centers the view on extent at the resolution that shows all of it.
// The resolution never drops below the one of maxZoom.
func (m *MemoryMap) FitTo(extent orb.Bound, maxZoom maptile.Zoom, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	res := math.Max(
		(extent.Max[0]-extent.Min[0])/float64(m.view.Width),
		(extent.Max[1]-extent.Min[1])/float64(m.view.Height),
	) * (1 + fitMargin)
	res = math.Max(res, geo.MinResolution(maxZoom))

	m.view.Center = extent.Center()
	m.view.Resolution = res
	m.view.Zoom = geo.ZoomForResolution(res)
	m.view.Animation = duration
}

func (m *MemoryMap) View() domain.Viewport {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.view
}
