// Package threadlink carries whole OSC messages between a realtime
// thread and a non-realtime thread over a pair of fixed-capacity,
// single-producer single-consumer byte ring buffers.
//
// Neither Ring nor ThreadLink allocates after construction. Writes
// that would exceed capacity are dropped and counted rather than
// blocking the writer: a full ring never stalls the realtime side.
// Exactly one goroutine may call Write/Push on a given Ring and exactly
// one may call Read; the two rings of a ThreadLink are independent and
// carry no ordering guarantee relative to each other.
package threadlink
