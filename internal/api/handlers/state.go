package handlers

import (
	"location-viewer/internal/api/dto"
	"location-viewer/internal/geo"
	"location-viewer/internal/services"

	"github.com/paulmach/orb/geojson"
)

func toStateResponse(st services.ViewerState) dto.StateResponse {
	res := dto.StateResponse{
		Auth:     st.Auth.Status.String(),
		Status:   string(st.LastUpdate.Status),
		Options:  make([]dto.OptionResponse, 0, len(st.Options)),
		Controls: make([]dto.ControlResponse, 0, len(st.Controls)),
		Geometry: geojson.NewFeatureCollection(),
		View: dto.ViewResponse{
			Projection:  geo.DisplayProjection,
			Center:      [2]float64{st.View.Center[0], st.View.Center[1]},
			Zoom:        st.View.Zoom,
			Resolution:  st.View.Resolution,
			AnimationMs: st.View.Animation.Milliseconds(),
		},
	}

	for _, o := range st.Options {
		res.Options = append(res.Options, dto.OptionResponse{
			Value:    o.Key.String(),
			Label:    o.Label,
			Selected: st.HasSelection && o.Key == st.Selected,
		})
	}

	for _, c := range st.Controls {
		res.Controls = append(res.Controls, dto.ControlResponse{Name: c.Name, Title: c.Title, Glyph: c.Glyph})
	}

	for _, f := range st.Features {
		gf := geojson.NewFeature(f.Geometry)
		gf.Properties["kind"] = string(f.Kind)
		res.Geometry.Append(gf)
	}

	if st.LastUpdate.Status == services.StatusDisplayed {
		rec := st.LastUpdate.Record
		res.Location = &dto.LocationResponse{
			Key:       st.LastUpdate.Key.String(),
			Latitude:  rec.Latitude,
			Longitude: rec.Longitude,
			Accuracy:  rec.Accuracy,
		}
	}

	return res
}
