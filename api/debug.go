// Package api
// Author: momentics
//
// Live debug and introspection support for queue instances.

package api

// Debug exposes runtime introspection for diagnostics.
type Debug interface {
	// DumpState emits a snapshot of registered probe outputs.
	DumpState() map[string]any

	// RegisterProbe dynamically registers a named debug probe.
	RegisterProbe(name string, fn func() any)
}
