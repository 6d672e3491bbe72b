package locationapi

import (
	"context"
	"fmt"
	"location-viewer/internal/domain"
	"sync"
)

// MockLocationService serves canned answers and records every call.
// A nil Names means the list call fails, as it does for unauthenticated users.
// A non-nil ListErr overrides Names.
type MockLocationService struct {
	Names     domain.NameIndex
	ListErr   error
	Locations map[domain.LocationKey]domain.LocationRecord
	AuthURL   string

	// Hook runs at the start of GetLocation, letting tests interleave calls.
	Hook func(key domain.LocationKey)

	mu    sync.Mutex
	calls []string
}

func (m *MockLocationService) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

// Calls returns the calls made so far, in order.
func (m *MockLocationService) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *MockLocationService) ListNames(ctx context.Context) (domain.NameIndex, error) {
	m.record("list")
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if m.Names == nil {
		return nil, &StatusError{Code: 401, Body: "unauthenticated"}
	}
	return append(domain.NameIndex(nil), m.Names...), nil
}

func (m *MockLocationService) GetLocation(ctx context.Context, key domain.LocationKey) (domain.LocationRecord, error) {
	m.record("get:" + key.String())
	if m.Hook != nil {
		m.Hook(key)
	}
	rec, ok := m.Locations[key]
	if !ok {
		return domain.LocationRecord{}, fmt.Errorf("get location %q: %w", key.String(), ErrUnavailable)
	}
	return rec, nil
}

func (m *MockLocationService) GetAuthURL(ctx context.Context) (string, error) {
	m.record("auth")
	if m.AuthURL == "" {
		return "", &StatusError{Code: 500, Body: "no auth url"}
	}
	return m.AuthURL, nil
}
