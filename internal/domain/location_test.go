package domain

import (
	"errors"
	"math"
	"testing"
)

func TestLocationRecordValidate(t *testing.T) {
	valid := []LocationRecord{
		{Latitude: 51.5, Longitude: -0.1, Accuracy: 25},
		{Latitude: -90, Longitude: 180, Accuracy: 0},
	}
	for _, r := range valid {
		if err := r.Validate(); err != nil {
			t.Errorf("%+v: unexpected error: %v", r, err)
		}
	}

	invalid := []LocationRecord{
		{Latitude: 90.5},
		{Longitude: -181},
		{Accuracy: -1},
		{Latitude: math.NaN()},
		{Accuracy: math.Inf(1)},
	}
	for _, r := range invalid {
		if err := r.Validate(); !errors.Is(err, ErrInvalidLocation) {
			t.Errorf("%+v: expected ErrInvalidLocation, got %v", r, err)
		}
	}
}

func TestLocationRecordCenter(t *testing.T) {
	c := LocationRecord{Latitude: 1, Longitude: 2}.Center()
	if c.Lon != 2 || c.Lat != 1 {
		t.Fatalf("center = %+v", c)
	}
	if p := c.Point(); p[0] != 2 || p[1] != 1 {
		t.Fatalf("point = %v, want [lon, lat]", p)
	}
}
