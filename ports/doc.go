// Package ports implements the dispatch engine: a statically described
// tree of named endpoints ("ports") matched against an incoming OSC
// message's address, with descent into nested subtrees.
//
// A ports.Table is built once, at program scope, with Build, and never
// mutated afterward: the graph it forms is walked read-only by every
// later Dispatch call, in declaration order, with explicit subtree
// descent and path-stripping as the address is matched segment by
// segment.
package ports
