package sekai

import "math/bits"

// bitmask256 is one 256-bit block of the hierarchical bitset, stored as four
// 64-bit lanes. Bit b lives in lane b>>6 at offset b&63.
type bitmask256 [4]uint64

// set enables bit and reports whether it was already set.
func (m *bitmask256) set(bit uint8) bool {
	i := bit >> 6 // (bit / 64) to find the lane
	o := bit & 63 // (bit % 64) to find the offset inside the lane
	mask := uint64(1) << o
	old := m[i]&mask != 0
	m[i] |= mask
	return old
}

// unset disables bit and reports whether it was set.
func (m *bitmask256) unset(bit uint8) bool {
	i := bit >> 6
	o := bit & 63
	mask := uint64(1) << o
	old := m[i]&mask != 0
	m[i] &^= mask
	return old
}

// containsBit checks if a specific bit is set in the mask.
func (m *bitmask256) containsBit(bit uint8) bool {
	i := bit >> 6
	o := bit & 63
	return (m[i] & (uint64(1) << o)) != 0
}

// isEmpty reports whether no bit is set, using a lane-wise OR reduction.
func (m *bitmask256) isEmpty() bool {
	return kernelEmpty(m)
}

// count returns the number of set bits.
func (m *bitmask256) count() int {
	return kernelCount(m)
}

// and returns the lane-wise intersection of m and o.
func (m bitmask256) and(o bitmask256) bitmask256 {
	return bitmask256{m[0] & o[0], m[1] & o[1], m[2] & o[2], m[3] & o[3]}
}

// pop removes the lowest set bit and returns its position. Empty lanes are
// skipped with a single zero test.
func (m *bitmask256) pop() (int, bool) {
	for lane := 0; lane < 4; lane++ {
		v := m[lane]
		if v == 0 {
			continue
		}
		m[lane] = v & (v - 1) // clear the lowest set bit
		return lane<<6 + bits.TrailingZeros64(v), true
	}
	return 0, false
}

// forEach calls fn for every set bit, lane 0 to 3, low to high.
func (m *bitmask256) forEach(fn func(bit int)) {
	for lane := 0; lane < 4; lane++ {
		v := m[lane]
		for v != 0 {
			fn(lane<<6 + bits.TrailingZeros64(v))
			v &= v - 1
		}
	}
}

// first returns the lowest set bit without modifying the mask.
func (m *bitmask256) first() (int, bool) {
	c := *m
	return c.pop()
}

// Free-list threading. A released block is empty, so its first lane is free
// to carry the link to the next released block. Links are stored as index+1
// so that zero means "end of list".

func (m *bitmask256) setNext(next uint64) {
	*m = bitmask256{next}
}

func (m *bitmask256) takeNext() uint64 {
	next := m[0]
	m[0] = 0
	return next
}
