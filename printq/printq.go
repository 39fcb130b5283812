// File: printq/printq.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package printq provides a deferred writer backed by a byte queue.
//
// Producers in time-critical contexts queue output without blocking on
// the destination; a cooperatively scheduled consumer calls Poll to move
// a bounded batch of bytes to the destination per invocation. When
// output is produced faster than it is drained, the oldest queued bytes
// are overwritten, matching the core queue contract: producer liveness
// is favored over lossless output.
package printq

import (
	"fmt"
	"io"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/queue"
)

// Ensure compile-time interface compliance.
var (
	_ io.Writer    = (*PrintQueue)(nil)
	_ api.Reporter = (*PrintQueue)(nil)
)

const (
	defaultCapacity  = 1000
	defaultBatchSize = 64
)

// PrintQueue buffers bytes for deferred delivery to a destination writer.
type PrintQueue struct {
	q       *queue.ByteQueue
	dst     io.Writer
	scratch []byte
	name    string
}

// Option customizes print queue construction.
type Option func(*config)

type config struct {
	capacity int
	batch    int
	name     string
}

// WithCapacity sets the byte queue capacity (default 1000).
func WithCapacity(n int) Option {
	return func(c *config) { c.capacity = n }
}

// WithBatchSize bounds the bytes delivered per Poll (default 64).
func WithBatchSize(n int) Option {
	return func(c *config) { c.batch = n }
}

// WithName sets the diagnostic name reported to the control registry.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// New creates a print queue draining into dst. All storage, including
// the Poll scratch buffer, is allocated here; Put, Write and Poll do
// not allocate afterwards.
func New(dst io.Writer, opts ...Option) (*PrintQueue, error) {
	c := config{capacity: defaultCapacity, batch: defaultBatchSize}
	for _, opt := range opts {
		opt(&c)
	}
	if c.batch < 1 {
		return nil, api.NewError(api.ErrCodeInvalidBatchSize, api.ErrInvalidBatchSize.Error()).
			WithContext("batch", c.batch)
	}
	var qopts []queue.Option
	if c.name != "" {
		qopts = append(qopts, queue.WithName(c.name))
	}
	bq, err := queue.NewBytes(c.capacity, qopts...)
	if err != nil {
		return nil, err
	}
	return &PrintQueue{
		q:       bq,
		dst:     dst,
		scratch: make([]byte, c.batch),
		name:    bq.Name(),
	}, nil
}

// Write implements io.Writer on the producer side. It never blocks and
// never fails; overflow overwrites the oldest queued bytes.
func (p *PrintQueue) Write(b []byte) (int, error) {
	return p.q.Write(b)
}

// PutString queues the bytes of s without allocating.
func (p *PrintQueue) PutString(s string) {
	p.q.PutString(s)
}

// Any reports whether undelivered bytes are queued.
func (p *PrintQueue) Any() bool {
	return p.q.Any()
}

// Available returns the number of undelivered bytes.
func (p *PrintQueue) Available() int {
	return p.q.Available()
}

// PeakUsage returns the largest backlog observed.
func (p *PrintQueue) PeakUsage() int {
	return p.q.PeakUsage()
}

// Poll delivers at most one batch of queued bytes to the destination and
// returns the number delivered. An empty queue returns (0, nil). Bytes
// handed to a failing destination are lost; the destination error is
// returned as-is.
func (p *PrintQueue) Poll() (int, error) {
	n := 0
	for n < len(p.scratch) {
		b, ok := p.q.Get()
		if !ok {
			break
		}
		p.scratch[n] = b
		n++
	}
	if n == 0 {
		return 0, nil
	}
	if _, err := p.dst.Write(p.scratch[:n]); err != nil {
		return n, err
	}
	return n, nil
}

// Drain polls until the queue is empty or the destination fails.
func (p *PrintQueue) Drain() error {
	for {
		n, err := p.Poll()
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
	}
}

// Name returns the diagnostic name.
func (p *PrintQueue) Name() string {
	return p.name
}

// Report returns a one-line summary for the control registry.
func (p *PrintQueue) Report() string {
	return fmt.Sprintf("%-12s PrintQueue Max Full %d/%d", p.name, p.q.PeakUsage(), p.q.Cap())
}
