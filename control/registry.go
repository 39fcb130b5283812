// control/registry.go
// Author: momentics <momentics@gmail.com>
//
// System-wide registry of queues and shares for diagnostic printouts.
// Thread-safe; preserves registration order in reports.

package control

import (
	"strings"
	"sync"

	"github.com/momentics/hioload-ring/api"
)

// Registry holds reporters in registration order.
type Registry struct {
	mu      sync.RWMutex
	entries []api.Reporter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a reporter. Registering the same instance twice lists it
// twice; callers own deduplication.
func (r *Registry) Register(rep api.Reporter) {
	r.mu.Lock()
	r.entries = append(r.entries, rep)
	r.mu.Unlock()
}

// ShowAll returns one report line per registered entity, in
// registration order.
func (r *Registry) ShowAll() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lines := make([]string, len(r.entries))
	for i, rep := range r.entries {
		lines[i] = rep.Report()
	}
	return strings.Join(lines, "\n")
}

// Snapshot returns the latest report per name for machine consumption.
func (r *Registry) Snapshot() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]any, len(r.entries))
	for _, rep := range r.entries {
		out[rep.Name()] = rep.Report()
	}
	return out
}

// defaultRegistry backs the package-level convenience functions.
var defaultRegistry = NewRegistry()

// Register adds a reporter to the default registry.
func Register(rep api.Reporter) {
	defaultRegistry.Register(rep)
}

// ShowAll reports every entity in the default registry.
func ShowAll() string {
	return defaultRegistry.ShowAll()
}
