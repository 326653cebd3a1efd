package codec

import (
	"encoding/binary"
	"math"
	"strings"
)

// Encode writes a complete OSC message into buf and returns the
// encoded length in bytes, or 0 if buf is too small. On a 0 return,
// buf's contents are left undefined; callers relying on a 0 return
// must retry with a larger buffer rather than inspect buf.
//
// address must begin with '/'. tags is one type-tag character per
// argument, in order; a leading ',' is accepted and ignored. args are
// consumed in tag order: int32, float32, string, []byte (blob),
// int64, float64, Timetag, Symbol, Char, RGBA, MIDI map to 'i' 'f' 's'
// 'b' 'h' 'd' 't' 'S' 'c' 'r' 'm' respectively. For the immediate tags
// 'T' 'F' 'N' 'I' a placeholder argument must still be present (one
// argument per tag character) but its value is ignored.
func Encode(buf []byte, address string, tags string, args ...interface{}) int {
	if len(address) == 0 || address[0] != '/' || strings.IndexByte(address, 0) >= 0 {
		return 0
	}
	tags = strings.TrimPrefix(tags, ",")
	if len(tags) != len(args) {
		return 0
	}

	n, ok := writePaddedString(address, buf)
	if !ok {
		return 0
	}

	tagLen := 1 + len(tags) + 1 + padLen(1+len(tags)+1)
	if n+tagLen > len(buf) {
		return 0
	}
	buf[n] = ','
	copy(buf[n+1:], tags)
	tagEnd := n + 1 + len(tags)
	for i := tagEnd; i < n+tagLen; i++ {
		buf[i] = 0
	}
	n += tagLen

	for i := 0; i < len(tags); i++ {
		var wn int
		wn, ok = writeArg(Tag(tags[i]), args[i], buf[n:])
		if !ok {
			return 0
		}
		n += wn
	}

	return n
}

// writeArg writes a single argument's payload (including padding) to
// b, which begins at the argument's offset.
func writeArg(tag Tag, arg interface{}, b []byte) (int, bool) {
	if isImmediate(tag) {
		return 0, true
	}
	switch tag {
	case TagInt32:
		v, ok := arg.(int32)
		if !ok || Bit32 > len(b) {
			return 0, false
		}
		binary.BigEndian.PutUint32(b, uint32(v))
		return Bit32, true
	case TagFloat32:
		v, ok := arg.(float32)
		if !ok || Bit32 > len(b) {
			return 0, false
		}
		binary.BigEndian.PutUint32(b, math.Float32bits(v))
		return Bit32, true
	case TagInt64:
		v, ok := arg.(int64)
		if !ok || Bit64 > len(b) {
			return 0, false
		}
		binary.BigEndian.PutUint64(b, uint64(v))
		return Bit64, true
	case TagFloat64:
		v, ok := arg.(float64)
		if !ok || Bit64 > len(b) {
			return 0, false
		}
		binary.BigEndian.PutUint64(b, math.Float64bits(v))
		return Bit64, true
	case TagTimetag:
		v, ok := arg.(Timetag)
		if !ok || Bit64 > len(b) {
			return 0, false
		}
		v.put(b)
		return Bit64, true
	case TagChar:
		v, ok := arg.(Char)
		if !ok || Bit32 > len(b) {
			return 0, false
		}
		binary.BigEndian.PutUint32(b, uint32(v))
		return Bit32, true
	case TagRGBA:
		v, ok := arg.(RGBA)
		if !ok || Bit32 > len(b) {
			return 0, false
		}
		binary.BigEndian.PutUint32(b, uint32(v))
		return Bit32, true
	case TagMIDI:
		v, ok := arg.(MIDI)
		if !ok || Bit32 > len(b) {
			return 0, false
		}
		copy(b[:Bit32], v[:])
		return Bit32, true
	case TagString:
		v, ok := arg.(string)
		if !ok {
			return 0, false
		}
		return writePaddedString(v, b)
	case TagSymbol:
		v, ok := arg.(Symbol)
		if !ok {
			return 0, false
		}
		return writePaddedString(string(v), b)
	case TagBlob:
		v, ok := arg.([]byte)
		if !ok {
			return 0, false
		}
		n := Bit32 + len(v) + padLen(Bit32+len(v))
		if n > len(b) {
			return 0, false
		}
		binary.BigEndian.PutUint32(b, uint32(len(v)))
		copy(b[Bit32:], v)
		for i := Bit32 + len(v); i < n; i++ {
			b[i] = 0
		}
		return n, true
	default:
		return 0, false
	}
}

// Address returns the address pattern of the message in buf, or false
// if buf does not contain a properly terminated address. The returned
// string is a zero-copy view into buf.
func Address(buf []byte) (string, bool) {
	addr, _, ok := readPaddedString(buf)
	if !ok || len(addr) == 0 || addr[0] != '/' {
		return "", false
	}
	return addr, true
}

// tagRegion locates the type-tag string (including its leading ',')
// and returns it along with the offset at which argument payloads
// begin.
func tagRegion(buf []byte) (tags string, argsStart int, ok bool) {
	_, addrLen, ok := readPaddedString(buf)
	if !ok || addrLen > len(buf) {
		return "", 0, false
	}
	tags, tagsLen, ok := readPaddedString(buf[addrLen:])
	if !ok || len(tags) == 0 || tags[0] != ',' {
		return "", 0, false
	}
	return tags, addrLen + tagsLen, true
}

// ArgumentString returns the message's type-tag characters, one per
// argument, without the leading ','.
func ArgumentString(buf []byte) (string, bool) {
	tags, _, ok := tagRegion(buf)
	if !ok {
		return "", false
	}
	return tags[1:], true
}

// NArguments returns the number of arguments in the message (the
// immediate types 'T' 'F' 'N' 'I' each count as one argument).
func NArguments(buf []byte) (int, bool) {
	tags, _, ok := tagRegion(buf)
	if !ok {
		return 0, false
	}
	return len(tags) - 1, true
}

// TypeAt returns the type tag of the i-th argument.
func TypeAt(buf []byte, i int) (Tag, bool) {
	tags, _, ok := tagRegion(buf)
	if !ok || i < 0 || i >= len(tags)-1 {
		return TagInvalid, false
	}
	return Tag(tags[1+i]), true
}

// widthAt returns the number of bytes (including padding) occupied by
// an argument of the given tag, whose payload starts at data.
func widthAt(tag Tag, data []byte) (int, bool) {
	if isImmediate(tag) {
		return 0, true
	}
	switch tag {
	case TagInt32, TagFloat32, TagChar, TagRGBA, TagMIDI:
		if Bit32 > len(data) {
			return 0, false
		}
		return Bit32, true
	case TagInt64, TagFloat64, TagTimetag:
		if Bit64 > len(data) {
			return 0, false
		}
		return Bit64, true
	case TagString, TagSymbol:
		_, n, ok := readPaddedString(data)
		return n, ok
	case TagBlob:
		if Bit32 > len(data) {
			return 0, false
		}
		blobLen := int(binary.BigEndian.Uint32(data))
		n := Bit32 + blobLen + padLen(Bit32+blobLen)
		if blobLen < 0 || n > len(data) {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// readArg reads the argument of tag at the start of data.
func readArg(tag Tag, data []byte) (interface{}, bool) {
	switch tag {
	case TagTrue:
		return true, true
	case TagFalse:
		return false, true
	case TagNil:
		return nil, true
	case TagInf:
		return Inf, true
	case TagInt32:
		if Bit32 > len(data) {
			return nil, false
		}
		return int32(binary.BigEndian.Uint32(data)), true
	case TagFloat32:
		if Bit32 > len(data) {
			return nil, false
		}
		return math.Float32frombits(binary.BigEndian.Uint32(data)), true
	case TagInt64:
		if Bit64 > len(data) {
			return nil, false
		}
		return int64(binary.BigEndian.Uint64(data)), true
	case TagFloat64:
		if Bit64 > len(data) {
			return nil, false
		}
		return math.Float64frombits(binary.BigEndian.Uint64(data)), true
	case TagTimetag:
		if Bit64 > len(data) {
			return nil, false
		}
		return Timetag(binary.BigEndian.Uint64(data)), true
	case TagChar:
		if Bit32 > len(data) {
			return nil, false
		}
		return Char(binary.BigEndian.Uint32(data)), true
	case TagRGBA:
		if Bit32 > len(data) {
			return nil, false
		}
		return RGBA(binary.BigEndian.Uint32(data)), true
	case TagMIDI:
		if Bit32 > len(data) {
			return nil, false
		}
		var m MIDI
		copy(m[:], data[:Bit32])
		return m, true
	case TagString:
		s, _, ok := readPaddedString(data)
		return s, ok
	case TagSymbol:
		s, _, ok := readPaddedString(data)
		return Symbol(s), ok
	case TagBlob:
		if Bit32 > len(data) {
			return nil, false
		}
		blobLen := int(binary.BigEndian.Uint32(data))
		if blobLen < 0 || Bit32+blobLen > len(data) {
			return nil, false
		}
		return data[Bit32 : Bit32+blobLen], true
	default:
		return nil, false
	}
}

// Argument returns the i-th argument of the message in buf. Strings,
// symbols, and blobs are zero-copy views into buf. Argument is O(i):
// it walks the tag string and sums the byte width of each preceding
// argument, as specified.
func Argument(buf []byte, i int) (interface{}, bool) {
	tags, argsStart, ok := tagRegion(buf)
	if !ok || i < 0 || i >= len(tags)-1 {
		return nil, false
	}
	off := argsStart
	for j := 0; j < i; j++ {
		if off > len(buf) {
			return nil, false
		}
		w, ok := widthAt(Tag(tags[1+j]), buf[off:])
		if !ok {
			return nil, false
		}
		off += w
	}
	if off > len(buf) {
		return nil, false
	}
	return readArg(Tag(tags[1+i]), buf[off:])
}

// MessageLength returns the total encoded length of the message in
// buf: the address, the type-tag string, and every argument's
// payload, each with its padding accounted for.
func MessageLength(buf []byte) (int, bool) {
	tags, off, ok := tagRegion(buf)
	if !ok {
		return 0, false
	}
	for j := 0; j < len(tags)-1; j++ {
		if off > len(buf) {
			return 0, false
		}
		w, ok := widthAt(Tag(tags[1+j]), buf[off:])
		if !ok {
			return 0, false
		}
		off += w
	}
	if off > len(buf) {
		return 0, false
	}
	return off, true
}
