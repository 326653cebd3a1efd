package codec

import (
	"bytes"
	"unsafe"
)

const (
	// Bit32 is the width in bytes of a 32-bit OSC argument.
	Bit32 = 4
	// Bit64 is the width in bytes of a 64-bit OSC argument.
	Bit64 = 8
)

// padLen returns the number of zero bytes needed to bring n up to the
// next multiple of 4.
func padLen(n int) int {
	return (4 - (n % 4)) % 4
}

// unsafeString views b as a string without copying. b must not be
// modified for as long as the returned string is in use; this mirrors
// the buffer-ownership contract of the codec (the caller owns the
// buffer and the codec never outlives a single call against it).
func unsafeString(b []byte) string {
	return *(*string)(unsafe.Pointer(&b))
}

// readPaddedString reads a null-terminated, 4-byte-padded string from
// the start of data. It returns the string (a zero-copy view into
// data), the number of bytes consumed including the terminator and
// padding, and whether a terminator was found within data.
func readPaddedString(data []byte) (string, int, bool) {
	idx := bytes.IndexByte(data, 0)
	if idx < 0 {
		return "", 0, false
	}
	return unsafeString(data[:idx]), idx + 1 + padLen(idx+1), true
}

// writePaddedString writes s, a null terminator, and zero padding into
// b. It returns the number of bytes written, or false if b is too
// small.
func writePaddedString(s string, b []byte) (int, bool) {
	n := len(s) + 1 + padLen(len(s)+1)
	if n > len(b) {
		return 0, false
	}
	copy(b, s)
	for i := len(s); i < n; i++ {
		b[i] = 0
	}
	return n, true
}
