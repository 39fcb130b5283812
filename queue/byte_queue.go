// File: queue/byte_queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ByteQueue carries single bytes but accepts whole sequences per put,
// applying the core overwrite-on-full algorithm once per byte in order.

package queue

import (
	"fmt"
	"strings"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/ring"
)

// Ensure compile-time interface compliance.
var (
	_ api.Queue[byte] = (*ByteQueue)(nil)
	_ api.Reporter    = (*ByteQueue)(nil)
)

// ByteQueue is a fixed-capacity overwrite-on-full queue of bytes.
// Puts accept zero or more bytes in one call; Get returns one byte at a
// time. A put longer than the capacity leaves only the last Cap() bytes,
// oldest first in read order.
type ByteQueue struct {
	*ring.Ring[byte]
	name string
}

// NewBytes allocates a ByteQueue with the given fixed capacity. No
// further allocation occurs for the queue's lifetime.
func NewBytes(capacity int, opts ...Option) (*ByteQueue, error) {
	r, err := ring.New[byte](capacity)
	if err != nil {
		return nil, err
	}
	c := applyOptions("ByteQueue", opts)
	return &ByteQueue{Ring: r, name: c.name}, nil
}

// PutBytes puts each byte of p in sequence order. An empty slice is a
// no-op. Overwritten bytes are dropped silently per the core contract.
func (q *ByteQueue) PutBytes(p []byte) {
	for _, b := range p {
		q.Put(b)
	}
}

// PutString puts each byte of s in sequence order without converting the
// string to a byte slice, keeping the call allocation-free.
func (q *ByteQueue) PutString(s string) {
	for i := 0; i < len(s); i++ {
		q.Put(s[i])
	}
}

// Write implements io.Writer. It never fails: bytes that do not fit
// overwrite the oldest unread bytes, and n is always len(p).
func (q *ByteQueue) Write(p []byte) (n int, err error) {
	q.PutBytes(p)
	return len(p), nil
}

// PutValue is the dynamic-input path used by host bindings that cannot
// type their arguments statically. It accepts []byte, string or a single
// byte; anything else is rejected before any state change with a
// structured error matching api.ErrTypeMismatch that names the
// offending type.
func (q *ByteQueue) PutValue(v any) error {
	switch x := v.(type) {
	case []byte:
		q.PutBytes(x)
	case string:
		q.PutString(x)
	case byte:
		q.Put(x)
	default:
		return api.NewError(api.ErrCodeTypeMismatch, api.ErrTypeMismatch.Error()).
			WithContext("type", fmt.Sprintf("%T", v))
	}
	return nil
}

// Name returns the diagnostic name.
func (q *ByteQueue) Name() string {
	return q.name
}

// Report returns a one-line summary for the control registry.
func (q *ByteQueue) Report() string {
	return fmt.Sprintf("%-12s Queue<byte> Max Full %d/%d", q.name, q.PeakUsage(), q.Cap())
}

// Dump renders the unread contents oldest-first in Python-bytes style:
// printable ASCII verbatim, everything else as \xNN escapes.
func (q *ByteQueue) Dump() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s ByteQueue[%d]:b'", q.name, q.Cap())
	for _, b := range q.Snapshot() {
		if b > 31 && b < 127 {
			sb.WriteByte(b)
		} else {
			fmt.Fprintf(&sb, "\\x%02x", b)
		}
	}
	fmt.Fprintf(&sb, "' N:%d HWM:%d", q.Available(), q.PeakUsage())
	return sb.String()
}
