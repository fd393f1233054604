package util

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(30, 0, 25); got != 25 {
		t.Fatalf("Clamp(30,0,25) = %d", got)
	}
	if got := Clamp(-3, 0, 25); got != 0 {
		t.Fatalf("Clamp(-3,0,25) = %d", got)
	}
	if got := Clamp(12, 0, 25); got != 12 {
		t.Fatalf("Clamp(12,0,25) = %d", got)
	}
}

func TestPtrDeref(t *testing.T) {
	p := Ptr(42)
	if p == nil || *p != 42 {
		t.Fatalf("Ptr(42) = %v", p)
	}
	if got := Deref(p); got != 42 {
		t.Fatalf("Deref = %d, want 42", got)
	}
	var nilPtr *string
	if got := Deref(nilPtr); got != "" {
		t.Fatalf("Deref(nil) = %q, want zero value", got)
	}
}
