// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// registry_test.go — Registry ordering and probe snapshot tests.
package control

import (
	"strings"
	"testing"

	"github.com/momentics/hioload-ring/queue"
	"github.com/momentics/hioload-ring/share"
)

func TestRegistry_ShowAllInRegistrationOrder(t *testing.T) {
	reg := NewRegistry()

	q1, _ := queue.NewInt(4, queue.WithName("encoder"))
	q2, _ := queue.NewBytes(16, queue.WithName("serial"))
	s := share.New[float32](share.WithName("battery"))
	reg.Register(q1)
	reg.Register(q2)
	reg.Register(s)

	q1.Put(1)
	q1.Put(2)

	out := reg.ShowAll()
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "encoder") ||
		!strings.Contains(lines[1], "serial") ||
		!strings.Contains(lines[2], "battery") {
		t.Errorf("wrong order:\n%s", out)
	}
	if !strings.Contains(lines[0], "Max Full 2/4") {
		t.Errorf("missing fill report: %q", lines[0])
	}
}

func TestRegistry_Snapshot(t *testing.T) {
	reg := NewRegistry()
	q, _ := queue.NewFloat(8, queue.WithName("imu"))
	reg.Register(q)

	snap := reg.Snapshot()
	if _, ok := snap["imu"]; !ok {
		t.Errorf("snapshot missing entry: %v", snap)
	}
}

func TestDebugProbes_DumpState(t *testing.T) {
	dp := NewDebugProbes()
	q, _ := queue.NewInt(2, queue.WithName("probe-me"))
	dp.RegisterProbe("probe-me.available", func() any { return q.Available() })
	dp.RegisterProbe("probe-me.dump", func() any { return q.Dump() })

	q.Put(10)
	state := dp.DumpState()
	if state["probe-me.available"] != 1 {
		t.Errorf("available probe = %v, want 1", state["probe-me.available"])
	}
	if s, ok := state["probe-me.dump"].(string); !ok || !strings.Contains(s, "IntQueue[2]") {
		t.Errorf("dump probe = %v", state["probe-me.dump"])
	}
}

func TestDefaultRegistry(t *testing.T) {
	q, _ := queue.NewInt(1, queue.WithName("default-reg"))
	Register(q)
	if !strings.Contains(ShowAll(), "default-reg") {
		t.Error("default registry did not list the queue")
	}
}
