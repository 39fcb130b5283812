// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts for hioload-ring: fixed-capacity overwrite-on-full
// queues used to hand data between one producer context and one consumer
// context without allocating on the hot path.
//
// Implementations live in ring/ (generic core) and queue/ (typed
// adapters); control/ aggregates Reporter diagnostics.
package api
