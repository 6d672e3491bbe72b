package dto

import "github.com/paulmach/orb/geojson"

type OptionResponse struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

type ControlResponse struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Glyph string `json:"glyph"`
}

type ViewResponse struct {
	Projection  string     `json:"projection"`
	Center      [2]float64 `json:"center"`
	Zoom        float64    `json:"zoom"`
	Resolution  float64    `json:"resolution"`
	AnimationMs int64      `json:"animation_ms"`
}

type LocationResponse struct {
	Key       string  `json:"key"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
}

// StateResponse is everything the page needs to draw a viewer session.
// Geometry coordinates are in the view's projection.
type StateResponse struct {
	Auth     string                     `json:"auth"`
	Status   string                     `json:"status"`
	Location *LocationResponse          `json:"location"`
	Options  []OptionResponse           `json:"options"`
	Controls []ControlResponse          `json:"controls"`
	Geometry *geojson.FeatureCollection `json:"geometry"`
	View     ViewResponse               `json:"view"`
}

type SelectRequest struct {
	Key string `json:"key"`
}
