package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	LocationAPIRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "viewer_location_api_requests_total",
		Help: "Location service calls by operation and outcome",
	}, []string{"op", "outcome"})
	LocationAPIDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "viewer_location_api_duration_ms",
		Help:    "Location service call duration in milliseconds",
		Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	}, []string{"op"})
	UpdatesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "viewer_location_updates_total",
		Help: "Update handler runs by result status",
	}, []string{"status"})
	AuthRedirectsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "viewer_auth_redirects_total",
		Help: "Sessions ended by a redirect to the login URL",
	})
	SessionsActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "viewer_sessions_active",
		Help: "Viewer sessions currently held in memory",
	})
)

func init() {
	prometheus.MustRegister(LocationAPIRequestsTotal)
	prometheus.MustRegister(LocationAPIDurationMs)
	prometheus.MustRegister(UpdatesTotal)
	prometheus.MustRegister(AuthRedirectsTotal)
	prometheus.MustRegister(SessionsActive)
}

// Handler exposes the registered metrics for scraping.
func Handler() http.Handler { return promhttp.Handler() }
