package sekai

import (
	"sync/atomic"

	"github.com/pkg/errors"
)

// borrow tracks runtime access to a column in checked mode: 0 when free, n>0
// while n readers hold it, -1 while a writer holds it.
type borrow struct {
	state atomic.Int32
}

func (b *borrow) borrowState() *borrow { return b }

func (b *borrow) acquireRead() bool {
	for {
		s := b.state.Load()
		if s < 0 {
			return false
		}
		if b.state.CompareAndSwap(s, s+1) {
			return true
		}
	}
}

func (b *borrow) releaseRead() {
	b.state.Add(-1)
}

func (b *borrow) acquireWrite() bool {
	return b.state.CompareAndSwap(0, -1)
}

func (b *borrow) releaseWrite() {
	b.state.Store(0)
}

// Borrowable is implemented by every Column and lets an Access descriptor
// name columns of different element types.
type Borrowable interface {
	borrowState() *borrow
}

// Access describes the columns a unit of work reads and writes. Two accesses
// conflict when either writes a column the other reads or writes.
type Access struct {
	Reads  []Borrowable
	Writes []Borrowable
}

// Reads builds an Access reading the given columns.
func Reads(cols ...Borrowable) Access {
	return Access{Reads: cols}
}

// Writes builds an Access writing the given columns.
func Writes(cols ...Borrowable) Access {
	return Access{Writes: cols}
}

// Read adds columns to the read set.
func (a Access) Read(cols ...Borrowable) Access {
	a.Reads = append(a.Reads[:len(a.Reads):len(a.Reads)], cols...)
	return a
}

// Write adds columns to the write set.
func (a Access) Write(cols ...Borrowable) Access {
	a.Writes = append(a.Writes[:len(a.Writes):len(a.Writes)], cols...)
	return a
}

// Conflicts reports whether a and o cannot run at the same time.
func (a Access) Conflicts(o Access) bool {
	for _, w := range a.Writes {
		if contains(o.Writes, w) || contains(o.Reads, w) {
			return true
		}
	}
	for _, w := range o.Writes {
		if contains(a.Reads, w) {
			return true
		}
	}
	return false
}

func contains(set []Borrowable, c Borrowable) bool {
	for _, s := range set {
		if s.borrowState() == c.borrowState() {
			return true
		}
	}
	return false
}

// acquire takes every borrow in a, or none of them. A column listed in both
// sets, or twice in the write set, is a conflict with itself.
func (a Access) acquire() (release func(), err error) {
	var reads, writes []*borrow
	undo := func() {
		for _, b := range reads {
			b.releaseRead()
		}
		for _, b := range writes {
			b.releaseWrite()
		}
	}
	for _, c := range a.Writes {
		b := c.borrowState()
		if !b.acquireWrite() {
			undo()
			return nil, errors.Wrapf(ErrAccessConflict, "column %p already borrowed", b)
		}
		writes = append(writes, b)
	}
	for _, c := range a.Reads {
		b := c.borrowState()
		if !b.acquireRead() {
			undo()
			return nil, errors.Wrapf(ErrAccessConflict, "column %p is being written", b)
		}
		reads = append(reads, b)
	}
	return undo, nil
}
