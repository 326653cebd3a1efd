package codec

import "encoding/binary"

// bundleTag is the literal header string of an OSC bundle.
const bundleTag = "#bundle"

// EncodeBundle writes a minimal OSC bundle into buf: the "#bundle"
// header, timetag, and the given elements (each already a complete,
// 4-byte-aligned message or nested bundle), each prefixed with its
// 32-bit size. It returns the encoded length, or 0 if buf is too
// small, under the same no-partial-success contract as Encode.
func EncodeBundle(buf []byte, timetag Timetag, elements ...[]byte) int {
	n, ok := writePaddedString(bundleTag, buf)
	if !ok || n+Bit64 > len(buf) {
		return 0
	}
	timetag.put(buf[n : n+Bit64])
	n += Bit64

	for _, elem := range elements {
		if n+Bit32+len(elem) > len(buf) {
			return 0
		}
		binary.BigEndian.PutUint32(buf[n:n+Bit32], uint32(len(elem)))
		n += Bit32
		n += copy(buf[n:], elem)
	}
	return n
}

// BundleP reports whether buf begins with a well-formed bundle header.
func BundleP(buf []byte) bool {
	s, n, ok := readPaddedString(buf)
	return ok && s == bundleTag && n <= len(buf)
}

// BundleTimetag returns the timetag of the bundle in buf.
func BundleTimetag(buf []byte) (Timetag, bool) {
	_, n, ok := readPaddedString(buf)
	if !ok || n+Bit64 > len(buf) {
		return 0, false
	}
	return Timetag(binary.BigEndian.Uint64(buf[n : n+Bit64])), true
}

// BundleIterator walks the (size, element) pairs of a bundle without
// copying; each element it yields is a zero-copy view into the
// original buffer and may itself be a message or a nested bundle
// (check with BundleP).
type BundleIterator struct {
	buf []byte
}

// NewBundleIterator returns an iterator over the elements of the
// bundle in buf, or false if buf is not a well-formed bundle header.
func NewBundleIterator(buf []byte) (BundleIterator, bool) {
	if !BundleP(buf) {
		return BundleIterator{}, false
	}
	_, n, ok := readPaddedString(buf)
	if !ok || n+Bit64 > len(buf) {
		return BundleIterator{}, false
	}
	return BundleIterator{buf: buf[n+Bit64:]}, true
}

// Next returns the next element's bytes and advances the iterator, or
// false once every element has been consumed or the buffer is
// malformed.
func (it *BundleIterator) Next() ([]byte, bool) {
	if len(it.buf) == 0 {
		return nil, false
	}
	if Bit32 > len(it.buf) {
		it.buf = nil
		return nil, false
	}
	size := int(binary.BigEndian.Uint32(it.buf))
	rest := it.buf[Bit32:]
	if size < 0 || size > len(rest) {
		it.buf = nil
		return nil, false
	}
	elem := rest[:size]
	it.buf = rest[size:]
	return elem, true
}
