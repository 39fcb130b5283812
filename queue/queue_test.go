// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// queue_test.go — Adapter tests: typed coercions, naming, reports.
package queue

import (
	"errors"
	"strings"
	"testing"

	"github.com/momentics/hioload-ring/api"
)

func TestNewInt_InvalidCapacity(t *testing.T) {
	if _, err := NewInt(0); !errors.Is(err, api.ErrInvalidCapacity) {
		t.Errorf("expected ErrInvalidCapacity, got %v", err)
	}
}

func TestIntQueue_PutGet(t *testing.T) {
	q, err := NewInt(3, WithName("ints"))
	if err != nil {
		t.Fatal(err)
	}
	q.Put(-5)
	q.PutInt(7)
	if v, ok := q.Get(); !ok || v != -5 {
		t.Fatalf("expected -5, got %d (ok=%v)", v, ok)
	}
	if v, ok := q.Get(); !ok || v != 7 {
		t.Fatalf("expected 7, got %d (ok=%v)", v, ok)
	}
}

// PutInt on out-of-range input truncates; that behavior is documented,
// not validated away.
func TestIntQueue_PutIntTruncates(t *testing.T) {
	q, _ := NewInt(1)
	q.PutInt(1 << 40)
	v, ok := q.Get()
	if !ok || v != 0 {
		t.Errorf("expected truncated 0, got %d (ok=%v)", v, ok)
	}
	q.PutInt(int(int32(-1)) - (1 << 32)) // still -1 after truncation
	if v, ok := q.Get(); !ok || v != -1 {
		t.Errorf("expected -1, got %d (ok=%v)", v, ok)
	}
}

func TestFloatQueue_Coercion(t *testing.T) {
	q, _ := NewFloat(2, WithName("floats"))
	q.Put(1.5)
	q.PutFloat64(2.25)
	if v, ok := q.Get(); !ok || v != 1.5 {
		t.Fatalf("expected 1.5, got %v (ok=%v)", v, ok)
	}
	if v, ok := q.Get(); !ok || v != 2.25 {
		t.Fatalf("expected 2.25, got %v (ok=%v)", v, ok)
	}
}

func TestQueue_DefaultNamesAreSerial(t *testing.T) {
	a, _ := NewInt(1)
	b, _ := NewInt(1)
	if a.Name() == b.Name() {
		t.Errorf("expected distinct default names, got %q twice", a.Name())
	}
	if !strings.HasPrefix(a.Name(), "IntQueue") {
		t.Errorf("unexpected default name %q", a.Name())
	}
}

func TestQueue_Report(t *testing.T) {
	q, _ := NewInt(4, WithName("telemetry"))
	for i := 0; i < 3; i++ {
		q.Put(int32(i))
	}
	q.Get()
	got := q.Report()
	if !strings.Contains(got, "telemetry") ||
		!strings.Contains(got, "Queue<int32>") ||
		!strings.Contains(got, "Max Full 3/4") {
		t.Errorf("unexpected report: %q", got)
	}
}

func TestQueue_OverwriteSharedAlgorithm(t *testing.T) {
	// Same overflow behavior through the adapter as through the core.
	q, _ := NewFloat(3)
	for i := 1; i <= 4; i++ {
		q.Put(float32(i))
	}
	want := []float32{2, 3, 4}
	for _, w := range want {
		if v, ok := q.Get(); !ok || v != w {
			t.Fatalf("expected %v, got %v (ok=%v)", w, v, ok)
		}
	}
}
