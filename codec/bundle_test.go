package codec

import "testing"

func TestEncodeBundleRoundTrip(t *testing.T) {
	msgBuf := make([]byte, 64)
	n1 := Encode(msgBuf, "/a", "i", int32(1))
	msg1 := append([]byte(nil), msgBuf[:n1]...)

	msgBuf2 := make([]byte, 64)
	n2 := Encode(msgBuf2, "/b", "s", "hi")
	msg2 := append([]byte(nil), msgBuf2[:n2]...)

	buf := make([]byte, 256)
	n := EncodeBundle(buf, Immediate, msg1, msg2)
	if n == 0 {
		t.Fatalf("EncodeBundle returned 0")
	}
	bundle := buf[:n]

	if !BundleP(bundle) {
		t.Fatalf("BundleP() = false")
	}
	tt, ok := BundleTimetag(bundle)
	if !ok || tt != Immediate {
		t.Errorf("BundleTimetag() = %v, %v, want Immediate, true", tt, ok)
	}

	it, ok := NewBundleIterator(bundle)
	if !ok {
		t.Fatalf("NewBundleIterator() ok = false")
	}

	elem, ok := it.Next()
	if !ok {
		t.Fatalf("first Next() ok = false")
	}
	addr, _ := Address(elem)
	if addr != "/a" {
		t.Errorf("first element address = %q, want /a", addr)
	}

	elem, ok = it.Next()
	if !ok {
		t.Fatalf("second Next() ok = false")
	}
	addr, _ = Address(elem)
	if addr != "/b" {
		t.Errorf("second element address = %q, want /b", addr)
	}

	if _, ok := it.Next(); ok {
		t.Errorf("third Next() ok = true, want false")
	}
}

func TestBundlePRejectsPlainMessage(t *testing.T) {
	buf := make([]byte, 64)
	n := Encode(buf, "/a", "")
	if BundleP(buf[:n]) {
		t.Errorf("BundleP() on a plain message = true, want false")
	}
}

func TestEncodeBundleNested(t *testing.T) {
	inner := make([]byte, 64)
	nInner := Encode(inner, "/inner", "i", int32(7))
	innerMsg := append([]byte(nil), inner[:nInner]...)

	innerBundleBuf := make([]byte, 128)
	nInnerBundle := EncodeBundle(innerBundleBuf, Immediate, innerMsg)
	innerBundle := append([]byte(nil), innerBundleBuf[:nInnerBundle]...)

	outerBuf := make([]byte, 256)
	n := EncodeBundle(outerBuf, Immediate, innerBundle)
	outer := outerBuf[:n]

	it, ok := NewBundleIterator(outer)
	if !ok {
		t.Fatalf("NewBundleIterator() ok = false")
	}
	elem, ok := it.Next()
	if !ok {
		t.Fatalf("Next() ok = false")
	}
	if !BundleP(elem) {
		t.Fatalf("nested element is not itself a bundle")
	}
}
