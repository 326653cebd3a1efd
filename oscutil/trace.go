package oscutil

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/curlymorphic/rtosc/codec"
)

// Frame is a decoded snapshot of one message, suitable for recording
// as a golden test fixture or a trace log line: unlike the raw wire
// bytes it survives round-tripping through an encoding that a human
// (or a diff tool) can read.
type Frame struct {
	Address   string        `cbor:"address"`
	Tags      string        `cbor:"tags"`
	Arguments []interface{} `cbor:"arguments"`
}

// Trace is a CBOR-backed recorder for Frames. It is test/tooling
// scaffolding, not a realtime path: every call allocates.
type Trace struct {
	frames []Frame
}

// Record decodes buf and appends it to the trace. It returns false,
// recording nothing, if buf is not a well-formed message.
func (t *Trace) Record(buf []byte) bool {
	address, ok := codec.Address(buf)
	if !ok {
		return false
	}
	tags, ok := codec.ArgumentString(buf)
	if !ok {
		return false
	}
	args, ok := Arguments(buf)
	if !ok {
		return false
	}
	t.frames = append(t.frames, Frame{Address: address, Tags: tags, Arguments: args})
	return true
}

// Frames returns every Frame recorded so far.
func (t *Trace) Frames() []Frame {
	return t.frames
}

// Marshal encodes the trace's recorded frames as CBOR, for writing out
// a golden fixture.
func (t *Trace) Marshal() ([]byte, error) {
	return cbor.Marshal(t.frames)
}

// UnmarshalFrames decodes a CBOR-encoded fixture previously produced by
// Marshal.
func UnmarshalFrames(buf []byte) ([]Frame, error) {
	var frames []Frame
	if err := cbor.Unmarshal(buf, &frames); err != nil {
		return nil, err
	}
	return frames, nil
}
