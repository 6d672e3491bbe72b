package services

import (
	"context"
	"errors"
	"fmt"
	"location-viewer/internal/domain"
	"location-viewer/internal/ports"
	"log"
)

type BootstrapOptions struct {
	// NewRenderer builds the map with its base layer and initial view.
	NewRenderer func() ports.MapRenderer
	Session     MapSessionOptions
}

// Bootstrap runs the startup sequence of one viewer session:
// list names, authenticate if the list failed, build the map and the
// selector, then display and frame the first location.
//
// A RedirectPending state is terminal: no viewer is built and no further
// call reaches the location service. An empty list is a valid answer and
// does not trigger authentication, and neither does a 2xx answer with an
// unusable body: the session starts authenticated with nothing to select.
func Bootstrap(
	ctx context.Context,
	svc ports.LocationService,
	opts BootstrapOptions,
) (*Viewer, domain.AuthState, error) {
	if svc == nil {
		return nil, domain.AuthState{}, errors.New("bootstrap: location service is nil")
	}
	if opts.NewRenderer == nil {
		return nil, domain.AuthState{}, errors.New("bootstrap: renderer constructor is nil")
	}

	auth := domain.AuthState{Status: domain.Authenticated}

	names, err := svc.ListNames(ctx)
	switch {
	case errors.Is(err, ports.ErrMalformedResponse):
		log.Printf("bootstrap: name list unusable: %v", err)
		names = domain.NameIndex{}
	case err != nil:
		log.Printf("bootstrap: name list unavailable: %v", err)
		names = nil

		auth = Authenticate(ctx, svc)
		if auth.Status == domain.RedirectPending {
			return nil, auth, nil
		}
	}

	session, err := NewMapSession(opts.NewRenderer(), opts.Session)
	if err != nil {
		return nil, auth, fmt.Errorf("bootstrap: %w", err)
	}

	viewer := NewViewer(svc, NewSelector(names), session, auth)

	// Same as pressing "update" then "locate" once.
	viewer.Update(ctx)
	viewer.Fit()

	return viewer, auth, nil
}
