// File: api/queue.go
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity FIFO queue contract with overwrite-on-full semantics.

package api

// Queue is a fixed-capacity circular queue for a single producer and a
// single consumer. Storage is allocated once at construction; no method
// allocates, blocks, or yields.
//
// A Put into a full queue silently drops the oldest unread item so the
// queue always holds the most recent Cap() items. Data loss is the
// documented contract, observable through PeakUsage and Available.
type Queue[T any] interface {
	// Put writes one item, overwriting the oldest unread item when full.
	Put(item T)
	// Get removes and returns the oldest item; ok is false when empty.
	// An empty read is a normal outcome for polling consumers, not an error.
	Get() (item T, ok bool)
	// Any reports whether at least one unread item is present.
	Any() bool
	// Full reports whether the next Put will overwrite.
	Full() bool
	// Available returns the number of unread items, in [0, Cap()].
	Available() int
	// PeakUsage returns the largest Available() observed since
	// construction or the last Clear. Used to size queues empirically.
	PeakUsage() int
	// Clear resets cursors, count and peak usage. Storage is kept;
	// stale values remain until overwritten.
	Clear()
	// Cap returns the fixed capacity.
	Cap() int
}

// Reporter is implemented by queues and shares that can describe
// themselves in one line for the control registry.
type Reporter interface {
	// Name returns the diagnostic name given at construction.
	Name() string
	// Report returns a one-line status summary.
	Report() string
}
