// File: queue/int_queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// IntQueue carries fixed-width signed integers between a producer and a
// consumer context, one element per call.

package queue

import (
	"fmt"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/ring"
)

// Ensure compile-time interface compliance.
var (
	_ api.Queue[int32] = (*IntQueue)(nil)
	_ api.Reporter     = (*IntQueue)(nil)
)

// IntQueue is a fixed-capacity overwrite-on-full queue of int32 values.
type IntQueue struct {
	*ring.Ring[int32]
	name string
}

// NewInt allocates an IntQueue with the given fixed capacity. No further
// allocation occurs for the queue's lifetime.
func NewInt(capacity int, opts ...Option) (*IntQueue, error) {
	r, err := ring.New[int32](capacity)
	if err != nil {
		return nil, err
	}
	c := applyOptions("IntQueue", opts)
	return &IntQueue{Ring: r, name: c.name}, nil
}

// PutInt converts v to int32 and puts it. Out-of-range values truncate
// with the usual two's-complement wraparound; no range validation is
// performed. Callers needing exact fidelity must stay within int32.
func (q *IntQueue) PutInt(v int) {
	q.Put(int32(v))
}

// Name returns the diagnostic name.
func (q *IntQueue) Name() string {
	return q.name
}

// Report returns a one-line summary for the control registry.
func (q *IntQueue) Report() string {
	return fmt.Sprintf("%-12s Queue<int32> Max Full %d/%d", q.name, q.PeakUsage(), q.Cap())
}

// Dump returns the unread contents oldest-first with occupancy counters.
func (q *IntQueue) Dump() string {
	return fmt.Sprintf("%s IntQueue[%d]:%v N:%d HWM:%d",
		q.name, q.Cap(), q.Snapshot(), q.Available(), q.PeakUsage())
}
