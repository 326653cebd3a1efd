package threadlink

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/curlymorphic/rtosc/codec"
)

func TestRingFIFO(t *testing.T) {
	r, err := NewRing(256, 64)
	require.NoError(t, err)

	require.True(t, r.Write("/a", "i", int32(1)))
	require.True(t, r.Write("/b", "i", int32(2)))

	msg, ok := r.Read()
	require.True(t, ok)
	addr, _ := codec.Address(msg)
	require.Equal(t, "/a", addr)

	msg, ok = r.Read()
	require.True(t, ok)
	addr, _ = codec.Address(msg)
	require.Equal(t, "/b", addr)

	_, ok = r.Read()
	require.False(t, ok)
}

func TestRingDropsWhenFull(t *testing.T) {
	r, err := NewRing(32, 16)
	require.NoError(t, err)

	written := 0
	for i := 0; i < 10; i++ {
		if r.Write("/x", "i", int32(i)) {
			written++
		}
	}
	stats := r.Stats()
	require.Equal(t, uint64(written), stats.Written)
	require.Greater(t, stats.Dropped, uint64(0))
}

func TestRingNewRingValidation(t *testing.T) {
	_, err := NewRing(30, 16)
	require.Error(t, err)

	_, err = NewRing(32, 15)
	require.Error(t, err)

	_, err = NewRing(8, 16)
	require.Error(t, err)
}

func TestRingWrapAround(t *testing.T) {
	r, err := NewRing(32, 16)
	require.NoError(t, err)

	for round := 0; round < 20; round++ {
		require.True(t, r.Write("/x", "i", int32(round)))
		msg, ok := r.Read()
		require.True(t, ok)
		addr, _ := codec.Address(msg)
		require.Equal(t, "/x", addr)
	}
}

func TestRingConcurrentProducerConsumer(t *testing.T) {
	r, err := NewRing(4096, 32)
	require.NoError(t, err)

	const n = 5000
	var g errgroup.Group

	g.Go(func() error {
		for i := 0; i < n; i++ {
			for !r.Write("/v", "i", int32(i)) {
				// ring momentarily full; retry until the reader catches up
			}
		}
		return nil
	})

	g.Go(func() error {
		read := 0
		for read < n {
			if _, ok := r.Read(); ok {
				read++
			}
		}
		return nil
	})

	require.NoError(t, g.Wait())
	stats := r.Stats()
	require.Equal(t, uint64(n), stats.Written)
	require.Equal(t, uint64(n), stats.Read)
	require.Equal(t, uint64(0), stats.Dropped)
}
