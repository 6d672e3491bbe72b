package services

import (
	"context"
	"location-viewer/internal/domain"
	"location-viewer/internal/ports"
	"log"
)

// Authenticate resolves the unauthenticated state after a failed list fetch.
//
// When a login URL is available the result is RedirectPending: the caller
// navigates away and runs nothing else. Otherwise the viewer carries on
// unauthenticated with an empty selector.
func Authenticate(ctx context.Context, svc ports.LocationService) domain.AuthState {
	url, err := svc.GetAuthURL(ctx)
	if err != nil {
		log.Printf("auth url unavailable, continuing unauthenticated: %v", err)
		return domain.AuthState{Status: domain.Unauthenticated}
	}

	return domain.AuthState{Status: domain.RedirectPending, RedirectURL: url}
}
