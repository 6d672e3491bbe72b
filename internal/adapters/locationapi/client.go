package locationapi

import (
	"context"
	"errors"
	"fmt"
	"location-viewer/internal/domain"
	"location-viewer/internal/platform/metrics"
	"location-viewer/internal/platform/obs"
	"location-viewer/internal/ports"
	"net/http"
	"strings"
	"time"
)

// ErrUnavailable wraps every failure of the location service.
// Callers treat it as "no result" and do not inspect the cause.
var ErrUnavailable = errors.New("location service unavailable")

// Client implements ports.LocationService over the location service HTTP API.
//
// Requests are issued once: a failed call is final for that call.
// The client is safe for concurrent use.
type Client struct {
	session *http.Client
	baseURL string
}

// NewClient builds a client for baseURL. A zero timeout keeps the
// transport default.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("location api base url is empty")
	}

	return &Client{
		session: &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}, nil
}

type authURLResponse struct {
	URL string `json:"url"`
}

// locationResponse uses pointers so that missing fields can be told apart
// from zero values.
type locationResponse struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Accuracy  *float64 `json:"accuracy"`
}

func (r locationResponse) record() (domain.LocationRecord, error) {
	var missing []string
	if r.Latitude == nil {
		missing = append(missing, "latitude")
	}
	if r.Longitude == nil {
		missing = append(missing, "longitude")
	}
	if r.Accuracy == nil {
		missing = append(missing, "accuracy")
	}
	if len(missing) > 0 {
		return domain.LocationRecord{}, fmt.Errorf("missing %s", strings.Join(missing, ", "))
	}
	return domain.LocationRecord{
		Latitude:  *r.Latitude,
		Longitude: *r.Longitude,
		Accuracy:  *r.Accuracy,
	}, nil
}

// ListNames fetches the selectable locations.
// Entries that cannot be decoded are skipped. A body that is not a list
// fails with ports.ErrMalformedResponse.
func (c *Client) ListNames(ctx context.Context) (_ domain.NameIndex, err error) {
	defer obs.Time(ctx, "location.ListNames")(&err)
	defer observe("list", time.Now(), &err)

	var raw listResponse
	if err := c.getJSON(ctx, "/api/location/list", nil, &raw); err != nil {
		return nil, fmt.Errorf("list names: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("list names: %w: %w: null list", ErrUnavailable, ports.ErrMalformedResponse)
	}

	return raw.index(), nil
}

// GetLocation fetches the coordinates of one location.
func (c *Client) GetLocation(ctx context.Context, key domain.LocationKey) (_ domain.LocationRecord, err error) {
	defer obs.Time(ctx, "location.GetLocation")(&err)
	defer observe("get", time.Now(), &err)

	if key.IsZero() {
		return domain.LocationRecord{}, fmt.Errorf("get location: %w: empty key", ErrUnavailable)
	}

	param, value := key.Param()

	var res locationResponse
	if err := c.getJSON(ctx, "/api/location/get", map[string]string{param: value}, &res); err != nil {
		return domain.LocationRecord{}, fmt.Errorf("get location %s=%q: %w", param, value, err)
	}
	rec, err := res.record()
	if err != nil {
		return domain.LocationRecord{}, fmt.Errorf("get location %s=%q: %w: %w: %w", param, value, ErrUnavailable, ports.ErrMalformedResponse, err)
	}
	if err := rec.Validate(); err != nil {
		return domain.LocationRecord{}, fmt.Errorf("get location %s=%q: %w: %w", param, value, ErrUnavailable, err)
	}

	return rec, nil
}

// GetAuthURL fetches the login URL for unauthenticated users.
func (c *Client) GetAuthURL(ctx context.Context) (_ string, err error) {
	defer obs.Time(ctx, "location.GetAuthURL")(&err)
	defer observe("auth_url", time.Now(), &err)

	var res authURLResponse
	if err := c.getJSON(ctx, "/api/auth/url", nil, &res); err != nil {
		return "", fmt.Errorf("get auth url: %w", err)
	}

	u := strings.TrimSpace(res.URL)
	if u == "" {
		return "", fmt.Errorf("get auth url: %w: empty url", ErrUnavailable)
	}
	return u, nil
}

func observe(op string, start time.Time, errp *error) {
	outcome := "ok"
	if *errp != nil {
		outcome = "error"
	}
	metrics.LocationAPIRequestsTotal.WithLabelValues(op, outcome).Inc()
	metrics.LocationAPIDurationMs.WithLabelValues(op).Observe(float64(time.Since(start).Milliseconds()))
}
