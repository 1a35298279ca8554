package sekai

// blockRef is satisfied by pointers to pooled block types.
type blockRef[B any] interface {
	*B
	bitmask() *bitmask256
}

// level is a growable pool of blocks for one tier of a Bitset. Released
// blocks are chained through their own first lane, so the free list needs no
// storage of its own, and acquire only grows the pool when that list is empty.
type level[B any, P blockRef[B]] struct {
	blocks []B
	free   uint64 // index+1 of the first released block, 0 when none
	live   int
}

// peek returns the index the next acquire will hand out.
func (l *level[B, P]) peek() int {
	if l.free != 0 {
		return int(l.free - 1)
	}
	return len(l.blocks)
}

// acquire hands out a zeroed block, recycling released blocks first.
func (l *level[B, P]) acquire() int {
	l.live++
	if l.free != 0 {
		i := int(l.free - 1)
		l.free = P(&l.blocks[i]).bitmask().takeNext()
		return i
	}
	l.blocks = extendSlice(l.blocks, 1)
	return len(l.blocks) - 1
}

// release returns an empty block to the free list.
func (l *level[B, P]) release(i int) {
	P(&l.blocks[i]).bitmask().setNext(l.free)
	l.free = uint64(i) + 1
	l.live--
}

func (l *level[B, P]) at(i int) P {
	return P(&l.blocks[i])
}

func (l *level[B, P]) reset() {
	clear(l.blocks)
	l.blocks = l.blocks[:0]
	l.free = 0
	l.live = 0
}
