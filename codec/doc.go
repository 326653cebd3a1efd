// Copyright 2013 - 2015 Sebastian Ruml <sebastian.ruml@gmail.com>
// Copyright 2021 - 2022 Mendel Greenberg <mendel@chabad360.me>

// Package codec encodes and decodes OSC 1.0 messages and bundles into
// caller-supplied byte buffers.
//
// This implementation is based on the Open Sound Control 1.0
// Specification (http://opensoundcontrol.org/spec-1_0.html).
//
// Every function in this package never blocks and runs in time bounded
// by the size of the buffer it is given. Encode and the accessors do
// not allocate, except that Argument returns its value as an
// interface{}: that conversion allocates for strings, blobs, and most
// numeric values (the Go runtime avoids it only for small integers
// and a few other cases). Buffers are owned by the caller; the codec never retains
// one past the call that received it, except where a returned value
// (a blob, a string) is explicitly documented as a view into the
// original buffer.
//
// Supported argument tags:
//
//	'i' (int32)      'f' (float32)     's' (string)     'b' ([]byte)
//	'h' (int64)       'd' (float64)     't' (Timetag)    'S' (Symbol)
//	'c' (Char)        'r' (RGBA)        'm' (MIDI)
//	'T' (true)        'F' (false)       'N' (nil)        'I' (Infinitum)
//
// Encoding a message:
//
//	n := codec.Encode(buf, "/synth/freq", "f", float32(440))
//	if n == 0 {
//	    // buf was too small; buf's contents are undefined
//	}
//
// Decoding one is a sequence of read-only accessor calls against the
// same buffer; none of them copy or mutate it:
//
//	tags, _ := codec.ArgumentString(buf)
//	v, _ := codec.Argument(buf, 0)
package codec
