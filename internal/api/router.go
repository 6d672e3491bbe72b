package api

import (
	"context"
	"location-viewer/internal/api/handlers"
	"location-viewer/internal/domain"
	"location-viewer/internal/platform/metrics"
	"location-viewer/internal/ports"
	"location-viewer/internal/services"
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers stay unaware of the concrete location service and map adapter.
func NewRouter(
	svc ports.LocationService,
	opts services.BootstrapOptions,
	sessions *handlers.SessionRegistry,
) http.Handler {
	r := mux.NewRouter()

	viewerHandler := &handlers.ViewerHandler{
		Sessions: sessions,
		Start: func(ctx context.Context) (*services.Viewer, domain.AuthState, error) {
			return services.Bootstrap(ctx, svc, opts)
		},
	}

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/", viewerHandler.Page).Methods(http.MethodGet)

	s := r.PathPrefix("/session").Subrouter()
	s.HandleFunc("/state", viewerHandler.State).Methods(http.MethodGet)
	s.HandleFunc("/select", viewerHandler.Select).Methods(http.MethodPost)
	s.HandleFunc("/update", viewerHandler.Update).Methods(http.MethodPost)
	s.HandleFunc("/locate", viewerHandler.Locate).Methods(http.MethodPost)

	return loggingMiddleware(r)
}
