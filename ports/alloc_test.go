package ports

import "testing"

// TestDispatchZeroAllocs exercises invariant 7 for the dispatch engine:
// once a Table is built and a message encoded, walking ports and
// invoking a matching leaf's Handler must not allocate. This covers
// both a plain literal port and an alternation pattern, since the
// latter has its own allocation history (see pattern/alloc_test.go).
func TestDispatchZeroAllocs(t *testing.T) {
	hits := 0
	table, err := Build(
		Port{Pattern: "foo:i", Handler: func(msg []byte, ctx interface{}) { hits++ }},
		Port{Pattern: "{bar,baz}", Handler: func(msg []byte, ctx interface{}) { hits++ }},
	)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	msg := encode(t, "/foo", "i", int32(1))

	allocs := testing.AllocsPerRun(1000, func() {
		Dispatch(table, msg, nil)
	})
	if allocs != 0 {
		t.Errorf("Dispatch() AllocsPerRun = %v, want 0", allocs)
	}

	altMsg := encode(t, "/bar", "")

	allocs = testing.AllocsPerRun(1000, func() {
		Dispatch(table, altMsg, nil)
	})
	if allocs != 0 {
		t.Errorf("Dispatch() with alternation pattern AllocsPerRun = %v, want 0", allocs)
	}

	if hits == 0 {
		t.Fatalf("handler was never invoked")
	}
}
