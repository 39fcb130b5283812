// File: queue/float_queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package queue

import (
	"fmt"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/ring"
)

// Ensure compile-time interface compliance.
var (
	_ api.Queue[float32] = (*FloatQueue)(nil)
	_ api.Reporter       = (*FloatQueue)(nil)
)

// FloatQueue is a fixed-capacity overwrite-on-full queue of float32
// values, one element per call.
type FloatQueue struct {
	*ring.Ring[float32]
	name string
}

// NewFloat allocates a FloatQueue with the given fixed capacity. No
// further allocation occurs for the queue's lifetime.
func NewFloat(capacity int, opts ...Option) (*FloatQueue, error) {
	r, err := ring.New[float32](capacity)
	if err != nil {
		return nil, err
	}
	c := applyOptions("FloatQueue", opts)
	return &FloatQueue{Ring: r, name: c.name}, nil
}

// PutFloat64 narrows v to float32 and puts it. Narrowing follows Go's
// conversion rules: precision is rounded away and values outside the
// float32 range become infinities. No validation is performed.
func (q *FloatQueue) PutFloat64(v float64) {
	q.Put(float32(v))
}

// Name returns the diagnostic name.
func (q *FloatQueue) Name() string {
	return q.name
}

// Report returns a one-line summary for the control registry.
func (q *FloatQueue) Report() string {
	return fmt.Sprintf("%-12s Queue<float32> Max Full %d/%d", q.name, q.PeakUsage(), q.Cap())
}

// Dump returns the unread contents oldest-first with occupancy counters.
func (q *FloatQueue) Dump() string {
	return fmt.Sprintf("%s FloatQueue[%d]:%v N:%d HWM:%d",
		q.name, q.Cap(), q.Snapshot(), q.Available(), q.PeakUsage())
}
