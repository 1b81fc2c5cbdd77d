package enum

import "testing"

func TestTagAndMatches(t *testing.T) {
	t.Parallel()
	v := New("celsius", 21.5)
	if v.Tag() != "celsius" {
		t.Fatalf("expected tag celsius, got %q", v.Tag())
	}
	if !v.Matches("celsius") {
		t.Fatalf("expected Matches to hold for the active case")
	}
	if v.Matches("fahrenheit") {
		t.Fatalf("expected Matches to fail for an inactive case")
	}
}

func TestCast(t *testing.T) {
	t.Parallel()
	v := New("count", 3)
	got, ok := Cast[int](v, "count")
	if !ok || got != 3 {
		t.Fatalf("expected (3, true), got (%v, %v)", got, ok)
	}
	if _, ok := Cast[int](v, "total"); ok {
		t.Fatalf("expected a wrong tag to fail the cast")
	}
	if _, ok := Cast[string](v, "count"); ok {
		t.Fatalf("expected a wrong payload type to fail the cast")
	}
}

func TestCastUnitVariant(t *testing.T) {
	t.Parallel()
	v := NewUnit("disconnected")
	if !v.Matches("disconnected") {
		t.Fatalf("expected unit variant to match its tag")
	}
	if _, ok := Cast[int](v, "disconnected"); ok {
		t.Fatalf("expected no payload on a unit variant")
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()
	v := New("count", 3)
	seen := 0
	if !Match(v, "count", func(n int) { seen = n }) {
		t.Fatalf("expected Match to run on the active case")
	}
	if seen != 3 {
		t.Fatalf("expected callback to observe 3, saw %v", seen)
	}
	if Match(v, "total", func(n int) { seen = -1 }) {
		t.Fatalf("expected Match to skip an inactive case")
	}
	if seen == -1 {
		t.Fatalf("callback should not run on a tag mismatch")
	}
}
