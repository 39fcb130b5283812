// Package ring
// Author: momentics <momentics@gmail.com>
//
// Generic fixed-capacity circular buffer with overwrite-on-full policy
// and high-water-mark tracking.
//
// The buffer exists to carry data between an interrupt-style producer and
// a cooperatively scheduled consumer (or the reverse): storage is
// allocated exactly once at construction and every operation thereafter
// is allocation-free, non-blocking and O(1) so either side can run in a
// context where allocation and blocking are illegal.
//
// Concurrency contract: strictly single-producer/single-consumer. Exactly
// one context calls Put and exactly one calls Get; no locks or atomics
// are used. Count is mutated last in both Put and Get to narrow the
// window in which the opposite side can observe an inconsistent state,
// but this is not a substitute for synchronization on platforms without
// word-sized store atomicity. Callers needing stronger guarantees must
// add their own synchronization.
package ring
