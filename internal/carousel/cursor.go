package carousel

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCatalog is returned when a carousel is built over zero entries.
	ErrEmptyCatalog = errors.New("carousel: catalog must not be empty")

	// ErrIndexOutOfRange is returned by Select for an index outside [0, N).
	ErrIndexOutOfRange = errors.New("carousel: index out of range")
)

// Cursor is the active position on a ring of fixed size.
// The zero value is not usable; build one with NewCursor.
type Cursor struct {
	index int
	size  int
}

// NewCursor returns a cursor at index 0 over a ring of the given size.
func NewCursor(size int) (Cursor, error) {
	if size < 1 {
		return Cursor{}, ErrEmptyCatalog
	}
	return Cursor{index: 0, size: size}, nil
}

// Index returns the active position.
func (c Cursor) Index() int {
	return c.index
}

// Size returns the number of positions on the ring.
func (c Cursor) Size() int {
	return c.size
}

// Next returns the cursor one step forward, wrapping to 0 after the last position.
func (c Cursor) Next() Cursor {
	c.index = (c.index + 1) % c.size
	return c
}

// Prev returns the cursor one step back, wrapping to the last position before 0.
func (c Cursor) Prev() Cursor {
	c.index = (c.index - 1 + c.size) % c.size
	return c
}

// Select returns the cursor moved to i. The receiver is returned unchanged
// together with ErrIndexOutOfRange when i is not a valid position.
func (c Cursor) Select(i int) (Cursor, error) {
	if i < 0 || i >= c.size {
		return c, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, c.size)
	}
	c.index = i
	return c, nil
}

// Clamp maps an arbitrary integer onto the nearest valid position.
func (c Cursor) Clamp(i int) int {
	switch {
	case i < 0:
		return 0
	case i >= c.size:
		return c.size - 1
	default:
		return i
	}
}

// Highlighted reports whether position i is the active one.
func (c Cursor) Highlighted(i int) bool {
	return i == c.index
}

// String implements fmt.Stringer.
func (c Cursor) String() string {
	return fmt.Sprintf("%d/%d", c.index+1, c.size)
}
