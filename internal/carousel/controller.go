package carousel

// Controller holds a catalog and the cursor selecting its active entry.
// The catalog is copied at construction and never changes afterwards.
type Controller[T any] struct {
	items  []T
	cursor Cursor
}

// New builds a controller over items with the first entry active.
func New[T any](items []T) (*Controller[T], error) {
	cursor, err := NewCursor(len(items))
	if err != nil {
		return nil, err
	}
	owned := make([]T, len(items))
	copy(owned, items)
	return &Controller[T]{items: owned, cursor: cursor}, nil
}

// Len returns the catalog size.
func (c *Controller[T]) Len() int {
	return len(c.items)
}

// Cursor returns the current cursor value.
func (c *Controller[T]) Cursor() Cursor {
	return c.cursor
}

// ActiveIndex returns the index of the active entry.
func (c *Controller[T]) ActiveIndex() int {
	return c.cursor.Index()
}

// Advance moves to the next entry, wrapping from the last to the first.
func (c *Controller[T]) Advance() {
	c.cursor = c.cursor.Next()
}

// Retreat moves to the previous entry, wrapping from the first to the last.
func (c *Controller[T]) Retreat() {
	c.cursor = c.cursor.Prev()
}

// SelectIndex makes entry i active. Out-of-range indexes are rejected and
// leave the active entry unchanged.
func (c *Controller[T]) SelectIndex(i int) error {
	next, err := c.cursor.Select(i)
	if err != nil {
		return err
	}
	c.cursor = next
	return nil
}

// Active returns the active entry.
func (c *Controller[T]) Active() T {
	return c.items[c.cursor.Index()]
}

// Items returns a copy of the catalog in display order.
func (c *Controller[T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// IndicatorHighlighted reports whether the indicator at position i is active.
func (c *Controller[T]) IndicatorHighlighted(i int) bool {
	return c.cursor.Highlighted(i)
}

// Indicators returns one flag per catalog position; exactly one is true.
func (c *Controller[T]) Indicators() []bool {
	flags := make([]bool, len(c.items))
	for i := range flags {
		flags[i] = c.cursor.Highlighted(i)
	}
	return flags
}
