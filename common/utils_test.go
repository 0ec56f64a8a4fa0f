package common

import "testing"

func TestCoalesce(t *testing.T) {
	if got := Coalesce(0, 0, 5, 7); got != 5 {
		t.Fatalf("expected first non-zero value 5, got %d", got)
	}
	if got := Coalesce("", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
	if got := Coalesce(0, 0); got != 0 {
		t.Fatalf("expected zero value when all inputs are zero, got %d", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp[float32](0.05, 0.1, 5.0); got != 0.1 {
		t.Fatalf("expected clamp to lower bound, got %v", got)
	}
	if got := Clamp[float32](9.0, 0.1, 5.0); got != 5.0 {
		t.Fatalf("expected clamp to upper bound, got %v", got)
	}
	if got := Clamp[float32](1.0, 0.1, 5.0); got != 1.0 {
		t.Fatalf("expected in-range value unchanged, got %v", got)
	}
}
