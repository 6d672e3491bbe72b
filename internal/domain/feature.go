package domain

import "github.com/paulmach/orb"

type FeatureKind string

const (
	FeatureAccuracy FeatureKind = "accuracy"
	FeaturePosition FeatureKind = "position"
)

// A drawable feature in the map's display projection.
type Feature struct {
	Kind     FeatureKind
	Geometry orb.Geometry
}
