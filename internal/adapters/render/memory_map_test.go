package render

import (
	"location-viewer/internal/domain"
	"location-viewer/internal/geo"
	"math"
	"testing"
	"time"

	"github.com/paulmach/orb"
)

func TestNewMemoryMapInitialView(t *testing.T) {
	m := NewMemoryMap(Options{InitialZoom: 2, Width: 800, Height: 600})

	v := m.View()
	if math.Abs(v.Center[0]) > 1e-6 || math.Abs(v.Center[1]) > 1e-6 {
		t.Errorf("center = %v, want origin", v.Center)
	}
	if v.Zoom != 2 {
		t.Errorf("zoom = %v, want 2", v.Zoom)
	}
	if math.Abs(v.Resolution-geo.MaxResolution/4) > 1e-9 {
		t.Errorf("resolution = %v, want %v", v.Resolution, geo.MaxResolution/4)
	}
	if len(m.Features()) != 0 {
		t.Errorf("expected empty source")
	}
}

func TestMemoryMapClearAndSetReplaces(t *testing.T) {
	m := NewMemoryMap(Options{})

	m.ClearAndSet([]domain.Feature{
		{Kind: domain.FeaturePosition, Geometry: orb.Point{1, 1}},
		{Kind: domain.FeaturePosition, Geometry: orb.Point{2, 2}},
	})
	m.ClearAndSet([]domain.Feature{{Kind: domain.FeaturePosition, Geometry: orb.Point{3, 3}}})

	got := m.Features()
	if len(got) != 1 || got[0].Geometry != (orb.Point{3, 3}) {
		t.Fatalf("features = %+v, want only the last set", got)
	}
}

func TestMemoryMapExtentOf(t *testing.T) {
	m := NewMemoryMap(Options{})

	if _, ok := m.ExtentOf(nil); ok {
		t.Fatal("expected no extent for empty features")
	}

	b, ok := m.ExtentOf([]domain.Feature{
		{Geometry: orb.Point{-5, 2}},
		{Geometry: orb.LineString{{0, 0}, {10, -3}}},
	})
	if !ok {
		t.Fatal("expected extent")
	}
	want := orb.Bound{Min: orb.Point{-5, -3}, Max: orb.Point{10, 2}}
	if b != want {
		t.Fatalf("extent = %v, want %v", b, want)
	}
}

func TestMemoryMapFitToLargeExtent(t *testing.T) {
	m := NewMemoryMap(Options{Width: 1000, Height: 500})

	extent := orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{100000, 100000}}
	m.FitTo(extent, 18, 500*time.Millisecond)

	v := m.View()
	if v.Center != (orb.Point{50000, 50000}) {
		t.Errorf("center = %v", v.Center)
	}
	// Height is the limiting side: 100000 m over 500 px.
	if math.Abs(v.Resolution-200) > 1e-6 {
		t.Errorf("resolution = %v, want 200", v.Resolution)
	}
	if v.Animation != 500*time.Millisecond {
		t.Errorf("animation = %v, want 500ms", v.Animation)
	}

	ve := v.Extent()
	if !ve.Contains(extent.Min) || !ve.Contains(extent.Max) {
		t.Errorf("view extent %v does not contain %v", ve, extent)
	}
}

func TestMemoryMapFitToContainsExtentEdges(t *testing.T) {
	m := NewMemoryMap(Options{Width: 1024, Height: 768})

	extents := []orb.Bound{
		{Min: orb.Point{-500000.0000000001, -500512.9074258743}, Max: orb.Point{500000.0000000001, 500512.9074258743}},
		{Min: orb.Point{-11132.0, 6446275.841017158}, Max: orb.Point{11132.0, 6485399.2}},
		{Min: orb.Point{1.0 / 3, 2.0 / 3}, Max: orb.Point{1e6 / 7, 1e6 / 3}},
		{Min: orb.Point{-20037508.342789244, -0.1}, Max: orb.Point{20037508.342789244, 0.1}},
	}

	for _, extent := range extents {
		m.FitTo(extent, 18, 0)

		ve := m.View().Extent()
		if !ve.Contains(extent.Min) || !ve.Contains(extent.Max) {
			t.Errorf("view extent %v does not contain %v", ve, extent)
		}
	}
}

func TestMemoryMapFitToCapsZoom(t *testing.T) {
	m := NewMemoryMap(Options{Width: 1024, Height: 768})

	extent := orb.Bound{Min: orb.Point{10, 10}, Max: orb.Point{10.5, 10.5}}
	m.FitTo(extent, 18, 0)

	v := m.View()
	if v.Zoom > 18+1e-9 {
		t.Fatalf("zoom = %v, want at most 18", v.Zoom)
	}
	if math.Abs(v.Resolution-geo.ResolutionForZoom(18)) > 1e-9 {
		t.Fatalf("resolution = %v, want zoom 18 resolution", v.Resolution)
	}
}
