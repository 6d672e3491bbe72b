package domain

import "testing"

func TestLocationKeyByID(t *testing.T) {
	k := ByID(42)

	if k.Kind() != KeyByID || k.IsZero() {
		t.Fatalf("unexpected kind %v", k.Kind())
	}
	if k.String() != "42" {
		t.Errorf("string = %q, want 42", k.String())
	}
	if p, v := k.Param(); p != "id" || v != "42" {
		t.Errorf("param = %s=%s, want id=42", p, v)
	}
}

func TestLocationKeyByName(t *testing.T) {
	k := ByName("Home")

	if k.String() != "Home" {
		t.Errorf("string = %q, want Home", k.String())
	}
	if p, v := k.Param(); p != "name" || v != "Home" {
		t.Errorf("param = %s=%s, want name=Home", p, v)
	}
}

func TestLocationKeyZero(t *testing.T) {
	var k LocationKey

	if !k.IsZero() || k.String() != "" {
		t.Fatalf("zero key = %+v", k)
	}
	if p, _ := k.Param(); p != "" {
		t.Fatalf("zero key has param %q", p)
	}
}

func TestLocationKeyComparable(t *testing.T) {
	if ByID(1) != ByID(1) {
		t.Error("equal ids must compare equal")
	}
	// "1" as a name is a different key from id 1.
	if ByID(1) == ByName("1") {
		t.Error("id and name keys must differ")
	}
}
