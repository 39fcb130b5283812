// File: share/share.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package share provides a single-slot shared value for handing the most
// recent reading between tasks. Unlike ring queues, a Share has no
// history: every Put overwrites the previous value. And unlike the
// SPSC-only queues, a Share may be touched from any number of contexts,
// so reads and writes are guarded by a mutex (the moral equivalent of
// the interrupt-disable window such data needs on a microcontroller).
package share

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.Reporter = (*Share[int])(nil)

// Share is a single overwritable slot of type T.
type Share[T any] struct {
	mu   sync.Mutex
	v    T
	name string
}

// Option customizes share construction.
type Option func(*config)

type config struct {
	name string
}

// WithName sets the diagnostic name reported to the control registry.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

var serial atomic.Int64

// New creates a Share holding the zero value of T.
func New[T any](opts ...Option) *Share[T] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.name == "" {
		c.name = fmt.Sprintf("Share%d", serial.Add(1)-1)
	}
	return &Share[T]{name: c.name}
}

// Put overwrites the stored value.
func (s *Share[T]) Put(v T) {
	s.mu.Lock()
	s.v = v
	s.mu.Unlock()
}

// Get returns the most recently stored value.
func (s *Share[T]) Get() T {
	s.mu.Lock()
	v := s.v
	s.mu.Unlock()
	return v
}

// Name returns the diagnostic name.
func (s *Share[T]) Name() string {
	return s.name
}

// Report returns a one-line summary for the control registry.
func (s *Share[T]) Report() string {
	return fmt.Sprintf("%-12s Share<%T>", s.name, s.Get())
}
