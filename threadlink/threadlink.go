package threadlink

import "github.com/pkg/errors"

// ThreadLink is a pair of independent Rings, Up and Down, carrying
// whole OSC messages in each direction between a realtime thread and a
// non-realtime thread. Which ring is "up" and which is "down" is a
// convention of the host application; the two carry no ordering
// guarantee relative to each other.
type ThreadLink struct {
	Up   *Ring
	Down *Ring
}

// New returns a ThreadLink whose two Rings each have the given byte
// capacity and maximum message size.
func New(capacity, maxMsg int) (*ThreadLink, error) {
	up, err := NewRing(capacity, maxMsg)
	if err != nil {
		return nil, errors.Wrap(err, "up ring")
	}
	down, err := NewRing(capacity, maxMsg)
	if err != nil {
		return nil, errors.Wrap(err, "down ring")
	}
	return &ThreadLink{Up: up, Down: down}, nil
}
