// Package pattern implements the OSC address-pattern matching language:
// '?', '*', '[abc]'/'[a-z]'/'[!abc]', and '{foo,bar}' alternation, over
// a path made of '/'-separated segments.
//
// Match never allocates: it walks pattern and address byte-by-byte,
// backtracking across '*' by retrying at each later address position
// and across '{...}' by retrying with each alternative, so that matching a message's address costs no allocation
// on the realtime path.
package pattern
