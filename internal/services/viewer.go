package services

import (
	"context"
	"location-viewer/internal/domain"
	"location-viewer/internal/platform/metrics"
	"location-viewer/internal/ports"
	"log"
	"sync"
	"sync/atomic"
)

type UpdateStatus string

const (
	StatusIdle             UpdateStatus = "idle"
	StatusDisplayed        UpdateStatus = "displayed"
	StatusNothingToDisplay UpdateStatus = "nothing_to_display"
	// A later update was issued before this one resolved.
	StatusSuperseded UpdateStatus = "superseded"
)

type UpdateResult struct {
	Status UpdateStatus
	Key    domain.LocationKey
	Record domain.LocationRecord
}

// Control is an overlay control attached to the map.
type Control struct {
	Name  string
	Title string
	Glyph string
}

const (
	ControlSelect = "select"
	ControlUpdate = "update"
	ControlLocate = "locate"
)

func defaultControls() []Control {
	return []Control{
		{Name: ControlSelect, Title: "Location"},
		{Name: ControlUpdate, Title: "Update Location", Glyph: "↻"},
		{Name: ControlLocate, Title: "Locate me", Glyph: "◎"},
	}
}

// Viewer ties the selector, the location service and the map session
// together and handles the update and locate controls.
type Viewer struct {
	svc      ports.LocationService
	selector *Selector
	session  *MapSession
	auth     domain.AuthState
	controls []Control

	// issued counts updates; only the most recently issued one may apply.
	issued atomic.Uint64

	mu   sync.Mutex
	last UpdateResult
}

func NewViewer(
	svc ports.LocationService,
	selector *Selector,
	session *MapSession,
	auth domain.AuthState,
) *Viewer {
	return &Viewer{
		svc:      svc,
		selector: selector,
		session:  session,
		auth:     auth,
		controls: defaultControls(),
		last:     UpdateResult{Status: StatusIdle},
	}
}

func (v *Viewer) Selector() *Selector { return v.selector }

// Update looks up the selected location and displays it.
//
// Lookup failures and an empty selector end in StatusNothingToDisplay and
// keep whatever is currently displayed. When updates overlap, the result of
// the last issued one wins regardless of completion order.
func (v *Viewer) Update(ctx context.Context) UpdateResult {
	gen := v.issued.Add(1)

	key, ok := v.selector.CurrentSelection()
	if !ok {
		return v.finish(UpdateResult{Status: StatusNothingToDisplay})
	}

	rec, err := v.svc.GetLocation(ctx, key)

	v.mu.Lock()
	defer v.mu.Unlock()

	if gen != v.issued.Load() {
		metrics.UpdatesTotal.WithLabelValues(string(StatusSuperseded)).Inc()
		return UpdateResult{Status: StatusSuperseded, Key: key}
	}

	if err != nil {
		log.Printf("update: no location to display key=%q: %v", key.String(), err)
		return v.finishLocked(UpdateResult{Status: StatusNothingToDisplay, Key: key})
	}

	if err := v.session.UpdateLocation(rec.Latitude, rec.Longitude, rec.Accuracy); err != nil {
		log.Printf("update: rejected location key=%q: %v", key.String(), err)
		return v.finishLocked(UpdateResult{Status: StatusNothingToDisplay, Key: key})
	}

	return v.finishLocked(UpdateResult{Status: StatusDisplayed, Key: key, Record: rec})
}

func (v *Viewer) finish(res UpdateResult) UpdateResult {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.finishLocked(res)
}

func (v *Viewer) finishLocked(res UpdateResult) UpdateResult {
	v.last = res
	metrics.UpdatesTotal.WithLabelValues(string(res.Status)).Inc()
	return res
}

// Fit frames the displayed location; false when nothing is displayed.
func (v *Viewer) Fit() bool {
	return v.session.FitToCurrent()
}

// ViewerState is a point-in-time copy of everything the page renders.
type ViewerState struct {
	Auth         domain.AuthState
	Options      domain.NameIndex
	Selected     domain.LocationKey
	HasSelection bool
	LastUpdate   UpdateResult
	Features     []domain.Feature
	View         domain.Viewport
	Controls     []Control
}

func (v *Viewer) State() ViewerState {
	selected, ok := v.selector.CurrentSelection()

	v.mu.Lock()
	last := v.last
	v.mu.Unlock()

	return ViewerState{
		Auth:         v.auth,
		Options:      v.selector.Options(),
		Selected:     selected,
		HasSelection: ok,
		LastUpdate:   last,
		Features:     v.session.Features(),
		View:         v.session.View(),
		Controls:     append([]Control(nil), v.controls...),
	}
}
