package services

import (
	"errors"
	"location-viewer/internal/domain"
	"testing"
)

func TestSelectorDefaultsToFirstOption(t *testing.T) {
	s := NewSelector(domain.NameIndex{
		{Key: domain.ByID(1), Label: "Home"},
		{Key: domain.ByID(2), Label: "Work"},
	})

	key, ok := s.CurrentSelection()
	if !ok || key != domain.ByID(1) {
		t.Fatalf("selection = %v %v, want id 1", key, ok)
	}
}

func TestSelectorSelect(t *testing.T) {
	s := NewSelector(domain.NameIndex{
		{Key: domain.ByID(1), Label: "Home"},
		{Key: domain.ByID(2), Label: "Work"},
	})

	if err := s.Select("2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	key, _ := s.CurrentSelection()
	if key != domain.ByID(2) {
		t.Fatalf("selection = %v, want id 2", key)
	}

	if err := s.Select("3"); !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
	key, _ = s.CurrentSelection()
	if key != domain.ByID(2) {
		t.Fatalf("failed select changed selection to %v", key)
	}
}

func TestSelectorEmpty(t *testing.T) {
	s := NewSelector(domain.NameIndex{})

	if len(s.Options()) != 0 {
		t.Fatalf("expected no options")
	}
	if _, ok := s.CurrentSelection(); ok {
		t.Fatal("expected no selection")
	}
}

func TestSelectorOptionsKeepOrder(t *testing.T) {
	names := domain.NameIndex{
		{Key: domain.ByName("zeta"), Label: "zeta"},
		{Key: domain.ByName("alpha"), Label: "alpha"},
	}
	s := NewSelector(names)

	opts := s.Options()
	if opts[0].Label != "zeta" || opts[1].Label != "alpha" {
		t.Fatalf("options reordered: %+v", opts)
	}

	opts[0].Label = "changed"
	if s.Options()[0].Label != "zeta" {
		t.Fatal("Options must return a copy")
	}
}
