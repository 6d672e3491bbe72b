package ports

import (
	"context"
	"errors"
	"location-viewer/internal/domain"
)

// ErrMalformedResponse marks a successful (2xx) answer whose body could not
// be used. It says nothing about authentication.
var ErrMalformedResponse = errors.New("malformed response")

// Contract for the remote location service.
//
// Every failure (network, non-2xx, bad body) is reported as an error and
// callers treat it as "absent". A bad body on a 2xx answer also wraps
// ErrMalformedResponse. No implementation retries.
type LocationService interface {
	// Return the selectable locations in display order.
	ListNames(ctx context.Context) (domain.NameIndex, error)
	// Return the current coordinates of one location.
	GetLocation(ctx context.Context, key domain.LocationKey) (domain.LocationRecord, error)
	// Return the external login URL to redirect unauthenticated users to.
	GetAuthURL(ctx context.Context) (string, error)
}
