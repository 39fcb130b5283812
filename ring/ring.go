// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ring is a fixed-capacity circular buffer: overwrite-on-full, SPSC,
// allocation-free after construction.

package ring

import (
	"fmt"
	"strings"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.Queue[any] = (*Ring[any])(nil)

// Ring is a fixed-capacity circular buffer over elements of type T.
// A write into a full ring drops the oldest unread element instead of
// failing, so the ring always holds the most recent Cap() elements.
// See the package comment for the SPSC concurrency contract.
type Ring[T any] struct {
	data []T
	wr   int // next slot to write
	rd   int // next slot to read
	n    int // unread elements, 0..len(data)
	hwm  int // largest n observed since New or Clear
}

// New allocates a ring with the given fixed capacity. This is the only
// allocation the ring ever performs; Put and Get never allocate.
// Capacity below one is rejected with a structured error matching
// api.ErrInvalidCapacity and carrying the rejected capacity.
func New[T any](capacity int) (*Ring[T], error) {
	if capacity < 1 {
		return nil, api.NewError(api.ErrCodeInvalidCapacity, api.ErrInvalidCapacity.Error()).
			WithContext("capacity", capacity)
	}
	return &Ring[T]{data: make([]T, capacity)}, nil
}

// Clear resets cursors, count and the high-water mark. Slot contents are
// left as-is; stale values remain until overwritten.
func (r *Ring[T]) Clear() {
	r.wr = 0
	r.rd = 0
	r.n = 0
	r.hwm = 0
}

// Any reports whether at least one unread element is present.
func (r *Ring[T]) Any() bool {
	return r.n > 0
}

// Full reports whether the next Put will overwrite the oldest element.
func (r *Ring[T]) Full() bool {
	return r.n >= len(r.data)
}

// Put writes one element. If the ring is full at entry, the read cursor
// is advanced first so the oldest unread element is dropped; the drop is
// silent and is the documented contract. Count is updated last.
func (r *Ring[T]) Put(item T) {
	full := r.n >= len(r.data)

	r.data[r.wr] = item
	r.wr++
	if r.wr >= len(r.data) {
		r.wr = 0
	}

	// Full before writing: move the read cursor so the consumer keeps
	// reading old data, not the element just written.
	if full {
		r.rd++
		if r.rd >= len(r.data) {
			r.rd = 0
		}
	}

	n := r.n + 1
	if n > len(r.data) {
		n = len(r.data)
	}
	r.n = n
	if n > r.hwm {
		r.hwm = n
	}
}

// Get removes and returns the oldest unread element in FIFO order.
// ok is false when the ring is empty; an empty read has no side effect
// and is a normal outcome for polling consumers. Count is updated last.
func (r *Ring[T]) Get() (item T, ok bool) {
	if r.n == 0 {
		return item, false
	}

	item = r.data[r.rd]
	r.rd++
	if r.rd >= len(r.data) {
		r.rd = 0
	}
	r.n--
	return item, true
}

// Available returns the number of unread elements.
func (r *Ring[T]) Available() int {
	return r.n
}

// PeakUsage returns the largest Available() observed since construction
// or the last Clear. Callers size rings empirically by choosing the
// smallest capacity that keeps PeakUsage below Cap under real load.
func (r *Ring[T]) PeakUsage() int {
	return r.hwm
}

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int {
	return len(r.data)
}

// Snapshot copies the unread elements, oldest first. It allocates and is
// meant for diagnostics, never for the producer/consumer hot path.
func (r *Ring[T]) Snapshot() []T {
	out := make([]T, r.n)
	idx := r.rd
	for i := 0; i < r.n; i++ {
		out[i] = r.data[idx]
		idx++
		if idx >= len(r.data) {
			idx = 0
		}
	}
	return out
}

// String dumps every raw slot plus the cursor positions, for debugging.
// Unwritten or already-read slots show stale values.
func (r *Ring[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Ring[%d]:", len(r.data))
	for i := range r.data {
		fmt.Fprintf(&sb, "%v,", r.data[i])
	}
	fmt.Fprintf(&sb, " W:%d,R:%d", r.wr, r.rd)
	return sb.String()
}
