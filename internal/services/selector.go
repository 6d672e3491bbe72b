package services

import (
	"errors"
	"fmt"
	"location-viewer/internal/domain"
	"sync"
)

var ErrUnknownOption = errors.New("unknown option")

// Selector is the location picker built once from the name index.
// It owns the active selection; everything else only reads it.
type Selector struct {
	mu      sync.Mutex
	options domain.NameIndex
	active  int
}

func NewSelector(names domain.NameIndex) *Selector {
	return &Selector{options: append(domain.NameIndex(nil), names...)}
}

// Options returns the entries in display order.
func (s *Selector) Options() domain.NameIndex {
	return append(domain.NameIndex(nil), s.options...)
}

// CurrentSelection reads the active entry at call time.
// It reports false when the selector has no options.
func (s *Selector) CurrentSelection() (domain.LocationKey, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.options) == 0 {
		return domain.LocationKey{}, false
	}
	return s.options[s.active].Key, true
}

// Select activates the entry whose option value equals value.
func (s *Selector) Select(value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, o := range s.options {
		if o.Key.String() == value {
			s.active = i
			return nil
		}
	}
	return fmt.Errorf("select %q: %w", value, ErrUnknownOption)
}
