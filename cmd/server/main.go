package main

import (
	"context"
	"location-viewer/internal/adapters/locationapi"
	"location-viewer/internal/adapters/render"
	"location-viewer/internal/api"
	"location-viewer/internal/api/handlers"
	"location-viewer/internal/config"
	"location-viewer/internal/ports"
	"location-viewer/internal/services"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/paulmach/orb"
)

// main is the application composition root.
// It wires the location service client and the in-memory map behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	client, err := locationapi.NewClient(cfg.LocationAPIBaseURL, cfg.LocationAPITimeout)
	if err != nil {
		log.Fatal(err)
	}

	opts := services.BootstrapOptions{
		NewRenderer: func() ports.MapRenderer {
			return render.NewMemoryMap(render.Options{
				Center:      orb.Point{0, 0},
				InitialZoom: cfg.InitialZoom,
				Width:       cfg.ViewportWidth,
				Height:      cfg.ViewportHeight,
			})
		},
		Session: services.MapSessionOptions{
			MaxZoom:        cfg.MaxZoom,
			FitDuration:    cfg.FitDuration,
			CircleVertices: cfg.CircleVertices,
		},
	}

	sessions := handlers.NewSessionRegistry(cfg.SessionIdleTimeout, cfg.SessionLimit)
	go sessions.Run(context.Background(), cfg.SessionIdleTimeout)
	router := api.NewRouter(client, opts, sessions)

	log.Printf("Server listening addr=:%s location_api=%s", cfg.Port, cfg.LocationAPIBaseURL)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
