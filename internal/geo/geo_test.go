package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestCircularRing(t *testing.T) {
	center := orb.Point{-0.1, 51.5}
	poly := Circular(center, 25, 32)

	if len(poly) != 1 {
		t.Fatalf("expected a single ring, got %d", len(poly))
	}
	ring := poly[0]
	if len(ring) != 33 {
		t.Fatalf("ring has %d points, want 33", len(ring))
	}
	if !ring.Closed() {
		t.Fatal("ring must be closed")
	}

	// First vertex is due north of the center.
	if math.Abs(ring[0][0]-center[0]) > 1e-12 || ring[0][1] <= center[1] {
		t.Fatalf("first vertex %v is not north of %v", ring[0], center)
	}
}

func TestCircularZeroRadius(t *testing.T) {
	center := orb.Point{10, 20}
	ring := Circular(center, 0, 32)[0]

	for _, p := range ring {
		if math.Abs(p[0]-center[0]) > 1e-9 || math.Abs(p[1]-center[1]) > 1e-9 {
			t.Fatalf("vertex %v, want degenerate ring at %v", p, center)
		}
	}
}

func TestCircularDefaultVertices(t *testing.T) {
	if n := len(Circular(orb.Point{0, 0}, 10, 0)[0]); n != DefaultCircleVertices+1 {
		t.Fatalf("ring has %d points, want %d", n, DefaultCircleVertices+1)
	}
}

func TestProjectionRoundTrip(t *testing.T) {
	p := orb.Point{-0.1, 51.5}
	q := ToLonLat(FromLonLat(p))

	if math.Abs(p[0]-q[0]) > 1e-9 || math.Abs(p[1]-q[1]) > 1e-9 {
		t.Fatalf("round trip %v -> %v", p, q)
	}

	poly := Circular(p, 100, 16)
	back := FromDisplay(ToDisplay(poly)).(orb.Polygon)
	for i := range poly[0] {
		if math.Abs(poly[0][i][0]-back[0][i][0]) > 1e-9 || math.Abs(poly[0][i][1]-back[0][i][1]) > 1e-9 {
			t.Fatalf("vertex %d: %v -> %v", i, poly[0][i], back[0][i])
		}
	}
}

func TestToDisplayKeepsInput(t *testing.T) {
	poly := Circular(orb.Point{5, 5}, 100, 8)
	first := poly[0][0]

	ToDisplay(poly)
	if poly[0][0] != first {
		t.Fatal("ToDisplay must not modify its input")
	}
}

func TestFromLonLatClampsPoles(t *testing.T) {
	p := FromLonLat(orb.Point{0, 90})
	if math.IsInf(p[1], 0) || math.IsNaN(p[1]) {
		t.Fatalf("pole projected to %v", p)
	}
}

func TestZoomResolution(t *testing.T) {
	if math.Abs(ResolutionForZoom(0)-156543.03392804097) > 1e-6 {
		t.Fatalf("zoom 0 resolution = %v", ResolutionForZoom(0))
	}
	if z := ZoomForResolution(ResolutionForZoom(18)); math.Abs(z-18) > 1e-9 {
		t.Fatalf("zoom round trip = %v", z)
	}
	if MinResolution(18) != ResolutionForZoom(18) {
		t.Fatal("min resolution must match the zoom cap")
	}
}
