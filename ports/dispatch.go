package ports

import (
	"strings"

	"github.com/curlymorphic/rtosc/codec"
	"github.com/curlymorphic/rtosc/pattern"
)

// Dispatch matches the address of msg against t in declaration order
// and invokes the first matching port's handler, descending into
// subtrees as needed. It returns true if a handler was invoked.
//
// Dispatch itself holds no state beyond the immutable graph rooted at
// t; a call is re-entrant only if every handler it reaches is.
func Dispatch(t *Table, msg []byte, ctx interface{}) bool {
	addr, ok := codec.Address(msg)
	if !ok {
		return false
	}
	return dispatch(t, addr, msg, ctx)
}

// dispatch expects addr to start with '/': at the top level that's the
// message's real address, and after a subtree descent it's the tail
// handed back by the matched port's recurse step.
func dispatch(t *Table, addr string, msg []byte, ctx interface{}) bool {
	rel := addr[1:]
	for i := range t.Ports {
		p := &t.Ports[i]
		frag, types := splitPattern(p.Pattern)

		if strings.HasSuffix(frag, "/") {
			seg := frag[:len(frag)-1]
			slash := strings.IndexByte(rel, '/')
			var first string
			if slash < 0 {
				first = rel
			} else {
				first = rel[:slash]
			}
			if !pattern.Match(seg, first) || slash < 0 {
				continue
			}
			tail := rel[slash:]
			if p.Recurse != nil {
				if p.Recurse(tail, msg, ctx) {
					return true
				}
				continue
			}
			if p.Table != nil && dispatch(p.Table, tail, msg, ctx) {
				return true
			}
			continue
		}

		if !pattern.Match(frag, rel) {
			continue
		}
		if types != "" {
			tags, ok := codec.ArgumentString(msg)
			if !ok || !strings.HasPrefix(tags, types) {
				continue
			}
		}
		if p.Handler == nil {
			continue
		}
		p.Handler(msg, ctx)
		return true
	}
	return false
}

// Descend builds a RecurseFunc that dispatches into table, narrowing
// ctx with narrow first if narrow is non-nil. It synthesizes the
// common shape of a subtree port so callers don't have to hand-write
// the tail/table/context plumbing themselves.
func Descend(table *Table, narrow func(ctx interface{}) interface{}) RecurseFunc {
	return func(tail string, msg []byte, ctx interface{}) bool {
		sub := ctx
		if narrow != nil {
			sub = narrow(ctx)
		}
		return dispatch(table, tail, msg, sub)
	}
}

// DispatchBundle dispatches every element of the bundle in msg against
// t, in bundle order, each as its own Dispatch call (bundle elements
// that are themselves bundles are expanded recursively). It returns
// true if any element was handled.
//
// rtosc does not defer dispatch until a bundle's timetag arrives: the
// host application owns the realtime clock and any deferred-execution
// queue, so scheduling by timetag is left to it. BundleTimetag is
// available via the codec package for a caller that wants to schedule
// its own DispatchBundle call.
func DispatchBundle(t *Table, msg []byte, ctx interface{}) bool {
	it, ok := codec.NewBundleIterator(msg)
	if !ok {
		return false
	}
	handled := false
	for {
		elem, ok := it.Next()
		if !ok {
			break
		}
		if codec.BundleP(elem) {
			if DispatchBundle(t, elem, ctx) {
				handled = true
			}
			continue
		}
		if Dispatch(t, elem, ctx) {
			handled = true
		}
	}
	return handled
}
