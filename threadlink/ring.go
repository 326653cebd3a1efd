package threadlink

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/curlymorphic/rtosc/codec"
)

const headerSize = codec.Bit32

// Stats is a point-in-time snapshot of a Ring's counters.
type Stats struct {
	Written uint64
	Read    uint64
	Dropped uint64
}

// Ring is a fixed-capacity SPSC byte ring buffer framed as a sequence
// of (uint32 size, payload) entries. Capacity must be a multiple of 4;
// combined with the codec's invariant that every OSC message is itself
// 4-byte aligned, this guarantees an entry's header is never split
// across the physical end of the backing array, so a wrap only ever
// needs a 4-byte zero-size sentinel, never a partial one.
type Ring struct {
	buf      []byte
	capacity uint64

	head atomic.Uint64 // writer-owned; published with Store (release)
	tail atomic.Uint64 // reader-owned; published with Store (release)

	written atomic.Uint64
	read    atomic.Uint64
	dropped atomic.Uint64

	scratch []byte // writer-owned encode scratch, sized for maxMsg
}

// NewRing returns a Ring with the given byte capacity, sized to carry
// messages up to maxMsg bytes. capacity must be a positive multiple of
// 4 and at least headerSize+maxMsg.
func NewRing(capacity, maxMsg int) (*Ring, error) {
	if capacity <= 0 || capacity%4 != 0 {
		return nil, errors.Errorf("threadlink: capacity %d must be a positive multiple of 4", capacity)
	}
	if maxMsg <= 0 || maxMsg%4 != 0 {
		return nil, errors.Errorf("threadlink: maxMsg %d must be a positive multiple of 4", maxMsg)
	}
	if capacity < headerSize+maxMsg {
		return nil, errors.Errorf("threadlink: capacity %d too small to hold one %d-byte message", capacity, maxMsg)
	}
	return &Ring{
		buf:      make([]byte, capacity),
		capacity: uint64(capacity),
		scratch:  make([]byte, maxMsg),
	}, nil
}

// Push publishes msg, a complete, 4-byte-aligned OSC message, into the
// ring. It returns false, incrementing the drop counter, if msg does
// not fit in the space currently available. Push must only ever be
// called from the single writer goroutine.
func (r *Ring) Push(msg []byte) bool {
	if len(msg)%4 != 0 {
		r.dropped.Add(1)
		return false
	}
	need := uint64(headerSize + len(msg))

	head := r.head.Load()
	tail := r.tail.Load() // acquire: observe the reader's progress
	avail := r.capacity - (head - tail)

	pos := head % r.capacity
	contig := r.capacity - pos

	if contig < need {
		if avail < contig+need {
			r.dropped.Add(1)
			return false
		}
		binary.BigEndian.PutUint32(r.buf[pos:pos+4], 0) // wrap sentinel
		head += contig
		pos = 0
	} else if avail < need {
		r.dropped.Add(1)
		return false
	}

	binary.BigEndian.PutUint32(r.buf[pos:pos+4], uint32(len(msg)))
	copy(r.buf[pos+4:pos+4+uint64(len(msg))], msg)
	head += need

	r.head.Store(head) // release: publish to the reader
	r.written.Add(1)
	return true
}

// Write encodes a message from address, tags, and args into the
// Ring's internal scratch buffer and Pushes it. It returns false (and
// counts a drop) if the encoded message doesn't fit the scratch buffer
// or the ring lacks space. Write must only ever be called from the
// single writer goroutine.
func (r *Ring) Write(address, tags string, args ...interface{}) bool {
	n := codec.Encode(r.scratch, address, tags, args...)
	if n == 0 {
		r.dropped.Add(1)
		return false
	}
	return r.Push(r.scratch[:n])
}

// Read returns the next complete message and advances the read
// cursor, or false if the ring is empty. The returned bytes remain
// valid only until the next call to Read. Read must only ever be
// called from the single reader goroutine.
func (r *Ring) Read() ([]byte, bool) {
	tail := r.tail.Load()
	head := r.head.Load() // acquire: observe the writer's progress
	if tail == head {
		return nil, false
	}

	pos := tail % r.capacity
	size := binary.BigEndian.Uint32(r.buf[pos : pos+4])
	if size == 0 {
		contig := r.capacity - pos
		tail += contig
		pos = tail % r.capacity
		if tail == head {
			r.tail.Store(tail)
			return nil, false
		}
		size = binary.BigEndian.Uint32(r.buf[pos : pos+4])
	}

	msg := r.buf[pos+4 : pos+4+uint64(size)]
	tail += headerSize + uint64(size)

	r.tail.Store(tail) // release: free the space for the writer
	r.read.Add(1)
	return msg, true
}

// HasNext reports whether Read would currently return a message.
func (r *Ring) HasNext() bool {
	return r.head.Load() != r.tail.Load()
}

// WriteSize returns the number of messages that have been written but
// not yet read: messages pending delivery to whichever thread reads
// this ring.
func (r *Ring) WriteSize() uint64 {
	return r.written.Load() - r.read.Load()
}

// Stats returns a snapshot of the ring's write/read/drop counters.
func (r *Ring) Stats() Stats {
	return Stats{
		Written: r.written.Load(),
		Read:    r.read.Load(),
		Dropped: r.dropped.Load(),
	}
}
