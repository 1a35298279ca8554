package sekai

import (
	"iter"

	"github.com/pkg/errors"
)

// Query iterates the slots of a single required column, yielding pointers to
// its values. Queries over 2 to 4 terms (Query2..Query4) are generated and
// follow the same pattern.
//
// A Query holds a cursor for the Reset/Next/Get style of iteration. Each,
// All and Indices start their own enumeration and never disturb the cursor,
// so a query can be re-run at any time.
type Query[T any] struct {
	t1 Term[T]
	cursor
	cur Index
	ok  bool // cursor is on a match
}

// NewQuery composes a query over one term. A lone optional term is rejected
// with ErrNoRequiredTerm since it would enumerate the whole domain.
//
// Example:
//
//	q, err := sekai.NewQuery[Position](positions)
//	for q.Next() {
//	    p := q.Get()
//	    // ...
//	}
func NewQuery[T any](t1 Term[T]) (*Query[T], error) {
	masks, err := compose(specOf(t1))
	if err != nil {
		return nil, errors.Wrap(err, "sekai: compose Query")
	}
	q := &Query[T]{t1: t1, cursor: cursor{masks: masks}}
	q.Reset()
	return q, nil
}

// Reset rewinds the query to the first matching slot.
func (q *Query[T]) Reset() {
	q.cursor.reset()
	q.ok = false
}

// Next advances to the next matching slot and reports whether there is one.
func (q *Query[T]) Next() bool {
	q.cur, q.ok = q.cursor.next()
	return q.ok
}

// Index returns the current slot. Only valid after Next returned true.
func (q *Query[T]) Index() Index {
	return q.cur
}

// Get returns the value at the current slot, or nil before the first Next
// and after Next returned false.
func (q *Query[T]) Get() *T {
	if !q.ok {
		return nil
	}
	return q.t1.fetch(q.cur)
}

// Each calls fn for every matching slot.
func (q *Query[T]) Each(fn func(Index, *T)) {
	c := cursor{masks: q.masks}
	c.reset()
	for i, ok := c.next(); ok; i, ok = c.next() {
		fn(i, q.t1.fetch(i))
	}
}

// All returns the matching slots paired with their values.
func (q *Query[T]) All() iter.Seq2[Index, *T] {
	return func(yield func(Index, *T) bool) {
		c := cursor{masks: q.masks}
		c.reset()
		for i, ok := c.next(); ok; i, ok = c.next() {
			if !yield(i, q.t1.fetch(i)) {
				return
			}
		}
	}
}

// Indices returns the matching slots.
func (q *Query[T]) Indices() iter.Seq[Index] {
	return indices(q.masks)
}

// Count returns the number of matching slots.
func (q *Query[T]) Count() int {
	return count(q.masks)
}

func indices(masks []*Bitset) iter.Seq[Index] {
	return func(yield func(Index) bool) {
		c := cursor{masks: masks}
		c.reset()
		for i, ok := c.next(); ok; i, ok = c.next() {
			if !yield(i) {
				return
			}
		}
	}
}

func count(masks []*Bitset) int {
	if len(masks) == 1 {
		return masks[0].Len()
	}
	n := 0
	c := cursor{masks: masks}
	c.reset()
	for _, ok := c.next(); ok; _, ok = c.next() {
		n++
	}
	return n
}
