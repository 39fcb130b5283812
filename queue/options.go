// File: queue/options.go
// Package queue defines functional options shared by the typed adapters.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package queue

import (
	"fmt"
	"sync/atomic"
)

// Option customizes queue construction.
type Option func(*config)

type config struct {
	name string
}

// WithName sets the diagnostic name reported to the control registry.
// Without it, queues get a serial-numbered name such as "IntQueue3".
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// serial numbers the anonymous queues for diagnostic printouts.
var serial atomic.Int64

func applyOptions(kind string, opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.name == "" {
		c.name = fmt.Sprintf("%s%d", kind, serial.Add(1)-1)
	}
	return c
}
