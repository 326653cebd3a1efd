package codec

import (
	"testing"
	"time"
)

func TestTimetagTimeRoundTrip(t *testing.T) {
	now := time.Date(2026, 8, 6, 12, 0, 0, 0, time.UTC)
	tt := NewTimetagFromTime(now)
	got := tt.Time()
	if got.Unix() != now.Unix() {
		t.Errorf("round trip seconds = %d, want %d", got.Unix(), now.Unix())
	}
}

func TestTimetagSecondsAndFraction(t *testing.T) {
	tt := Timetag(uint64(1) << 32)
	if tt.SecondsSinceEpoch() != 1 {
		t.Errorf("SecondsSinceEpoch() = %d, want 1", tt.SecondsSinceEpoch())
	}
	if tt.FractionalSecond() != 0 {
		t.Errorf("FractionalSecond() = %d, want 0", tt.FractionalSecond())
	}
}

func TestTimetagExpiresInImmediate(t *testing.T) {
	if d := Immediate.ExpiresIn(); d != 0 {
		t.Errorf("Immediate.ExpiresIn() = %v, want 0", d)
	}
}

func TestTimetagExpiresInPast(t *testing.T) {
	past := NewTimetagFromTime(time.Now().Add(-time.Hour))
	if d := past.ExpiresIn(); d != 0 {
		t.Errorf("ExpiresIn() for a past time = %v, want 0", d)
	}
}

func TestTimetagPutIsBigEndian(t *testing.T) {
	tt := Timetag(0x0102030405060708)
	b := make([]byte, Bit64)
	tt.put(b)
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	for i := range want {
		if b[i] != want[i] {
			t.Errorf("put() byte %d = %#x, want %#x", i, b[i], want[i])
		}
	}
}
