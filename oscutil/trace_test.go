package oscutil

import (
	"testing"

	"github.com/curlymorphic/rtosc/codec"
)

func TestTraceRecordMarshalRoundTrip(t *testing.T) {
	var tr Trace

	buf := make([]byte, 64)
	n := codec.Encode(buf, "/foo", "if", int32(1), float32(2.5))
	if !tr.Record(buf[:n]) {
		t.Fatalf("Record() = false")
	}

	encoded, err := tr.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	frames, err := UnmarshalFrames(encoded)
	if err != nil {
		t.Fatalf("UnmarshalFrames() error = %v", err)
	}
	if len(frames) != 1 {
		t.Fatalf("len(frames) = %d, want 1", len(frames))
	}
	if frames[0].Address != "/foo" || frames[0].Tags != "if" {
		t.Errorf("frame = %+v", frames[0])
	}
}

func TestTraceRecordRejectsMalformed(t *testing.T) {
	var tr Trace
	if tr.Record([]byte{1, 2, 3}) {
		t.Errorf("Record() on malformed buffer = true, want false")
	}
	if len(tr.Frames()) != 0 {
		t.Errorf("Frames() = %v, want empty", tr.Frames())
	}
}
