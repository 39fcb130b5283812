// Package queue
// Author: momentics <momentics@gmail.com>
//
// Typed adapters over the generic ring core: IntQueue (int32),
// FloatQueue (float32) and ByteQueue (byte, with whole-sequence puts).
// All three share the same overwrite-on-full algorithm and SPSC
// contract; they differ only in element representation and, for
// ByteQueue, in write granularity. See ring/ for the core semantics.
package queue
