package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"location-viewer/internal/api/dto"
	"location-viewer/internal/api/web"
	"location-viewer/internal/domain"
	"location-viewer/internal/platform/metrics"
	"location-viewer/internal/services"
	"log"
	"net/http"
)

// StartFunc bootstraps a new viewer session.
type StartFunc func(ctx context.Context) (*services.Viewer, domain.AuthState, error)

// ViewerHandler serves the map page and the per-session controls.
type ViewerHandler struct {
	Sessions *SessionRegistry
	Start    StartFunc
}

// Page bootstraps a fresh session on every page load.
// An unauthenticated user with an available login URL is redirected to it.
func (h *ViewerHandler) Page(w http.ResponseWriter, r *http.Request) {
	if id, _, ok := h.Sessions.lookup(r); ok {
		h.Sessions.Remove(id)
	}

	viewer, auth, err := h.Start(r.Context())
	if err != nil {
		log.Printf("bootstrap failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if auth.Status == domain.RedirectPending {
		metrics.AuthRedirectsTotal.Inc()
		http.Redirect(w, r, auth.RedirectURL, http.StatusFound)
		return
	}

	id := h.Sessions.Add(viewer)
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := web.Page.Execute(w, toStateResponse(viewer.State())); err != nil {
		log.Printf("render page failed: %v", err)
	}
}

func (h *ViewerHandler) State(w http.ResponseWriter, r *http.Request) {
	viewer, ok := h.viewer(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, toStateResponse(viewer.State()))
}

// Select changes the active entry of the session's selector.
func (h *ViewerHandler) Select(w http.ResponseWriter, r *http.Request) {
	viewer, ok := h.viewer(w, r)
	if !ok {
		return
	}

	var req dto.SelectRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if err := viewer.Selector().Select(req.Key); err != nil {
		if errors.Is(err, services.ErrUnknownOption) {
			writeError(w, r, http.StatusBadRequest, "unknown location")
			return
		}
		log.Printf("select failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toStateResponse(viewer.State()))
}

// Update fetches the selected location and redraws it.
// A missing location is reported in the state, not as an HTTP error.
func (h *ViewerHandler) Update(w http.ResponseWriter, r *http.Request) {
	viewer, ok := h.viewer(w, r)
	if !ok {
		return
	}

	viewer.Update(r.Context())
	writeJSON(w, r, http.StatusOK, toStateResponse(viewer.State()))
}

// Locate frames the displayed location.
func (h *ViewerHandler) Locate(w http.ResponseWriter, r *http.Request) {
	viewer, ok := h.viewer(w, r)
	if !ok {
		return
	}

	viewer.Fit()
	writeJSON(w, r, http.StatusOK, toStateResponse(viewer.State()))
}

func (h *ViewerHandler) viewer(w http.ResponseWriter, r *http.Request) (*services.Viewer, bool) {
	_, v, ok := h.Sessions.lookup(r)
	if !ok {
		writeError(w, r, http.StatusNotFound, "session not found")
		return nil, false
	}
	return v, true
}
