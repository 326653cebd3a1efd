package ports

import (
	"strings"

	"github.com/pkg/errors"
)

// Handler is invoked when a message matches a leaf Port. msg is the
// full, unaltered message buffer (beginning at its address); ctx is
// the opaque context threaded through from the outer Dispatch call.
// Handlers must be realtime-safe and non-throwing; the engine does not
// recover from a handler panic.
type Handler func(msg []byte, ctx interface{})

// RecurseFunc descends into a subtree. tail is the address remaining
// after the matched prefix, always starting with '/'. A RecurseFunc is
// responsible for locating the nested Table and narrowing ctx; Descend
// synthesizes the common case.
type RecurseFunc func(tail string, msg []byte, ctx interface{}) bool

// Port is one declared endpoint in a Table.
//
// Pattern is "<address-or-pattern>[:<type-constraint>]". A pattern
// ending in '/' names a subtree and must set either Table or Recurse
// (not both); any other pattern names a leaf and must set Handler.
// Meta is an opaque string never inspected by this package.
type Port struct {
	Pattern string
	Meta    string
	Handler Handler
	Table   *Table
	Recurse RecurseFunc
}

// Table is a statically sized, ordered collection of Ports. Its
// lifetime is that of the program; it and the graph it forms are
// immutable after Build returns.
type Table struct {
	Ports []Port
}

// Build validates ports and returns an immutable Table. It is meant to
// run once, at program start, on the non-realtime thread; it is not
// itself realtime-safe (it allocates and may return wrapped errors).
func Build(ports ...Port) (*Table, error) {
	for i, p := range ports {
		addr, _ := splitPattern(p.Pattern)
		if addr == "" {
			return nil, errors.Errorf("port %d: empty pattern %q", i, p.Pattern)
		}
		if strings.IndexByte(p.Pattern, 0) >= 0 {
			return nil, errors.Errorf("port %d: pattern %q contains a NUL byte", i, p.Pattern)
		}
		subtree := strings.HasSuffix(addr, "/")
		switch {
		case subtree && p.Handler != nil:
			return nil, errors.Errorf("port %d: subtree pattern %q may not set Handler", i, p.Pattern)
		case subtree && p.Table == nil && p.Recurse == nil:
			return nil, errors.Errorf("port %d: subtree pattern %q needs Table or Recurse", i, p.Pattern)
		case subtree && p.Table != nil && p.Recurse != nil:
			return nil, errors.Errorf("port %d: subtree pattern %q may not set both Table and Recurse", i, p.Pattern)
		case !subtree && p.Handler == nil:
			return nil, errors.Errorf("port %d: leaf pattern %q needs a Handler", i, p.Pattern)
		case !subtree && (p.Table != nil || p.Recurse != nil):
			return nil, errors.Errorf("port %d: leaf pattern %q may not set Table or Recurse", i, p.Pattern)
		}
	}
	return &Table{Ports: ports}, nil
}

// splitPattern splits a Port.Pattern into its address fragment and
// type constraint, at the first ':'.
func splitPattern(pattern string) (addr, types string) {
	if i := strings.IndexByte(pattern, ':'); i >= 0 {
		return pattern[:i], pattern[i+1:]
	}
	return pattern, ""
}
