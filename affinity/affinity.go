// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific
// implementations live in affinity_linux.go, affinity_windows.go and
// affinity_stub.go behind build tags.
//
// SPSC queues perform best when the producer and consumer stay on fixed
// cores; Pin gives benchmarks and latency-sensitive callers that
// placement without cgo.

package affinity

import "runtime"

// Pin locks the calling goroutine to its OS thread and binds that thread
// to the given logical CPU. On unsupported platforms it returns an error
// and leaves the thread unlocked.
func Pin(cpuID int) error {
	runtime.LockOSThread()
	if err := setAffinityPlatform(cpuID); err != nil {
		runtime.UnlockOSThread()
		return err
	}
	return nil
}

// Unpin restores the thread's full CPU mask and releases the goroutine
// from its OS thread. Safe to call only after a successful Pin.
func Unpin() error {
	err := clearAffinityPlatform()
	runtime.UnlockOSThread()
	return err
}
