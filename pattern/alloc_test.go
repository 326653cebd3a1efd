package pattern

import "testing"

// TestMatchZeroAllocs exercises invariant 7 on the pattern matcher,
// including the '{foo,bar}' alternation branch, which is exactly as
// realtime-sensitive as every other branch here since Dispatch calls
// Match once per port it considers.
func TestMatchZeroAllocs(t *testing.T) {
	tc := []struct {
		name    string
		pattern string
		address string
	}{
		{"literal", "/foo/bar", "/foo/bar"},
		{"star", "/foo/*", "/foo/bar"},
		{"char class", "/foo/[a-c]ar", "/foo/bar"},
		{"alternation", "/a/{foo,bar,baz}", "/a/bar"},
		{"alternation trailing empty", "/a/{foo,}", "/a/"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			allocs := testing.AllocsPerRun(1000, func() {
				Match(tt.pattern, tt.address)
			})
			if allocs != 0 {
				t.Errorf("Match(%q, %q) AllocsPerRun = %v, want 0", tt.pattern, tt.address, allocs)
			}
		})
	}
}
