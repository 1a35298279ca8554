package sekai

// Column stores one attribute type for a set of slots: a presence Bitset and
// a dense slice addressed by slot. data[i] is meaningful only while the mask
// has i set; the mask is the sole authority on validity.
//
// The zero value is an empty, detached column over the full MaxSlots domain.
type Column[T any] struct {
	data []T
	mask Bitset
	borrow
}

// NewDetachedColumn returns an empty column over [0, capacity) that is not
// owned by any World.
func NewDetachedColumn[T any](capacity int) *Column[T] {
	c := &Column[T]{}
	c.mask = *NewBitset(capacity)
	return c
}

// Get returns a copy of the value at slot i, or false if i is absent.
func (c *Column[T]) Get(i Index) (T, bool) {
	if !c.mask.Contains(i) {
		var zero T
		return zero, false
	}
	return c.data[i], true
}

// GetMut returns a pointer to the value at slot i, or nil if i is absent.
// The pointer stays valid until the column grows or i is removed.
func (c *Column[T]) GetMut(i Index) *T {
	if !c.mask.Contains(i) {
		return nil
	}
	return &c.data[i]
}

// Has reports whether slot i holds a value.
func (c *Column[T]) Has(i Index) bool {
	return c.mask.Contains(i)
}

// Insert stores v at slot i. If i already held a value, it is swapped out
// and returned with true. Inserting outside the column's domain panics with
// ErrCapacityExhausted before anything is changed.
func (c *Column[T]) Insert(i Index, v T) (T, bool) {
	if c.mask.Contains(i) {
		old := c.data[i]
		c.data[i] = v
		return old, true
	}
	if !c.mask.inDomain(i) {
		capacityPanic("slot %d outside column capacity %d", i, c.mask.Capacity())
	}
	c.data = extendTo(c.data, int(i))
	c.data[i] = v
	c.mask.Insert(i)
	var zero T
	return zero, false
}

// Remove moves the value out of slot i and returns it with true, or returns
// false if i was absent.
func (c *Column[T]) Remove(i Index) (T, bool) {
	var zero T
	if !c.mask.Remove(i) {
		return zero, false
	}
	v := c.data[i]
	c.data[i] = zero
	return v, true
}

// Mask returns the presence bitmap. It must be treated as read-only: writing
// to it without touching the data breaks the column's validity invariant.
func (c *Column[T]) Mask() *Bitset {
	return &c.mask
}

// Len returns the number of slots holding a value.
func (c *Column[T]) Len() int {
	return c.mask.Len()
}

// Domain returns the capacity of the column's address space.
func (c *Column[T]) Domain() int {
	return c.mask.Capacity()
}

// Each calls fn with every present slot and a pointer to its value, in
// ascending slot order.
func (c *Column[T]) Each(fn func(Index, *T)) {
	c.mask.ForEach(func(i Index) {
		fn(i, &c.data[i])
	})
}

// Clear removes every value, keeping the backing storage.
func (c *Column[T]) Clear() {
	clear(c.data)
	c.data = c.data[:0]
	c.mask.Clear()
}

// fetch returns the value pointer for a slot already proven present by a
// mask intersection. It performs no membership check; calling it for an
// absent slot returns a pointer to meaningless storage or panics.
func (c *Column[T]) fetch(i Index) *T {
	return &c.data[i]
}

func (c *Column[T]) spec() termSpec {
	if c == nil {
		return termSpec{}
	}
	return termSpec{mask: &c.mask, domain: c.mask.Capacity(), owner: c}
}

// discard removes slot i without returning its value. World uses it to clear
// a despawned index from every attached column.
func (c *Column[T]) discard(i Index) {
	c.Remove(i)
}

func (c *Column[T]) reset() {
	c.Clear()
}
