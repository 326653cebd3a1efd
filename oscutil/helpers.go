package oscutil

import "github.com/curlymorphic/rtosc/codec"

// Arguments walks every argument of the message in buf and returns
// them as a slice. Unlike codec.Argument, which is O(i) per call and
// allocation-free, Arguments allocates the returned slice: it is meant
// for logging, tests, and other non-realtime consumers, not the audio
// thread.
func Arguments(buf []byte) ([]interface{}, bool) {
	n, ok := codec.NArguments(buf)
	if !ok {
		return nil, false
	}
	args := make([]interface{}, n)
	for i := 0; i < n; i++ {
		v, ok := codec.Argument(buf, i)
		if !ok {
			return nil, false
		}
		args[i] = v
	}
	return args, true
}

// HasTypePrefix reports whether tags, a message's type-tag string
// (without the leading ','), satisfies the port type constraint
// constraint: empty constraints match anything, otherwise constraint
// must be a prefix of tags.
func HasTypePrefix(constraint, tags string) bool {
	if constraint == "" {
		return true
	}
	if len(constraint) > len(tags) {
		return false
	}
	return tags[:len(constraint)] == constraint
}
