// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// property_test.go — Randomized invariant tests for the ring core,
// checked against an unbounded FIFO model with explicit oldest-drop.
package ring

import (
	"math/rand"
	"testing"

	"github.com/eapache/queue"
)

// TestRingPropertyBased drives random put/get/clear sequences and checks
// every observation against an oracle queue. SPSC discipline is a
// precondition of the design, so all operations run on one goroutine.
func TestRingPropertyBased(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		capacity := 1 + rng.Intn(64)
		r, err := New[int](capacity)
		if err != nil {
			t.Fatal(err)
		}
		model := queue.New()
		peak := 0

		for i := 0; i < 5000; i++ {
			switch op := rng.Intn(10); {
			case op < 5: // put
				v := rng.Intn(100000)
				r.Put(v)
				if model.Length() >= capacity {
					model.Remove() // oldest dropped by overwrite
				}
				model.Add(v)
			case op < 9: // get
				v, ok := r.Get()
				if ok != (model.Length() > 0) {
					t.Fatalf("seed %d op %d: get ok=%v, model length %d", seed, i, ok, model.Length())
				}
				if ok {
					if want := model.Remove().(int); v != want {
						t.Fatalf("seed %d op %d: got %d, want %d", seed, i, v, want)
					}
				}
			default: // clear, occasionally
				r.Clear()
				for model.Length() > 0 {
					model.Remove()
				}
				peak = 0
			}

			n := r.Available()
			if n != model.Length() {
				t.Fatalf("seed %d op %d: available %d, model %d", seed, i, n, model.Length())
			}
			if n < 0 || n > capacity {
				t.Fatalf("seed %d op %d: available %d out of [0,%d]", seed, i, n, capacity)
			}
			if n > peak {
				peak = n
			}
			if r.PeakUsage() != peak {
				t.Fatalf("seed %d op %d: peak usage %d, observed max %d", seed, i, r.PeakUsage(), peak)
			}
			if r.Any() != (n > 0) || r.Full() != (n == capacity) {
				t.Fatalf("seed %d op %d: flag mismatch at n=%d", seed, i, n)
			}
		}
	}
}
