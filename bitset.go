package sekai

import "iter"

const (
	blockBits = 256

	// MaxSlots is the size of the full address space: one top block of 256
	// bits, each owning a middle block of 256 bits, each owning a bottom block
	// of 256 bits.
	MaxSlots = blockBits * blockBits * blockBits
)

// Index is a slot in the address space shared by a Bitset and every Column
// keyed by it.
type Index uint32

// split resolves a slot into its top, middle and bottom bit positions:
// slot = top*65536 + middle*256 + bottom.
func split(i Index) (top, middle, bottom uint8) {
	return uint8(i >> 16), uint8(i >> 8), uint8(i)
}

type topBlock struct {
	bits     bitmask256
	children [blockBits]uint8 // middle pool index per set bit
}

type middleBlock struct {
	bits     bitmask256
	children [blockBits]uint16 // bottom pool index per set bit
}

func (b *middleBlock) bitmask() *bitmask256 { return &b.bits }

type bottomBlock struct {
	bits bitmask256
}

func (b *bottomBlock) bitmask() *bitmask256 { return &b.bits }

// Bitset is a three-level radix bitmap over a fixed address space. A single
// top block is embedded in the set; middle and bottom blocks come from pools
// that recycle released blocks before growing.
//
// Child pointers are compressed: 8 bits from top to middle and 16 bits from
// middle to bottom. Both widths match the address space exactly (256 middle
// blocks, 65536 bottom blocks), so a pool index that does not fit means the
// set is corrupt and the operation panics with ErrCapacityExhausted.
//
// The zero value is an empty set over the full MaxSlots domain.
type Bitset struct {
	middle   level[middleBlock, *middleBlock]
	bottom   level[bottomBlock, *bottomBlock]
	top      topBlock
	capacity uint32 // 0 means MaxSlots
}

// NewBitset returns an empty set accepting slots in [0, capacity). It panics
// if capacity is not in (0, MaxSlots].
func NewBitset(capacity int) *Bitset {
	if capacity <= 0 || capacity > MaxSlots {
		panic("sekai: bitset capacity must be in (0, MaxSlots]")
	}
	s := &Bitset{}
	if capacity < MaxSlots {
		s.capacity = uint32(capacity)
	}
	return s
}

// Capacity returns the size of the set's domain.
func (s *Bitset) Capacity() int {
	if s.capacity == 0 {
		return MaxSlots
	}
	return int(s.capacity)
}

func (s *Bitset) inDomain(i Index) bool {
	return int(i) < s.Capacity()
}

// Contains reports whether slot i is present. Ancestor bits are checked
// before any compressed pointer is followed.
func (s *Bitset) Contains(i Index) bool {
	if !s.inDomain(i) {
		return false
	}
	t, m, b := split(i)
	if !s.top.bits.containsBit(t) {
		return false
	}
	mid := s.middle.at(int(s.top.children[t]))
	if !mid.bits.containsBit(m) {
		return false
	}
	return s.bottom.at(int(mid.children[m])).bits.containsBit(b)
}

// Insert marks slot i present and reports whether it was newly set. Middle
// and bottom blocks are drawn from the pools the first time their path is
// used. Inserting outside the domain panics with ErrCapacityExhausted.
func (s *Bitset) Insert(i Index) bool {
	if !s.inDomain(i) {
		capacityPanic("slot %d outside bitset capacity %d", i, s.Capacity())
	}
	t, m, b := split(i)

	needMiddle := !s.top.bits.containsBit(t)
	needBottom := needMiddle || !s.middle.at(int(s.top.children[t])).bits.containsBit(m)
	if needMiddle && s.middle.peek() > 0xff {
		capacityPanic("middle block index %d does not fit 8 bits", s.middle.peek())
	}
	if needBottom && s.bottom.peek() > 0xffff {
		capacityPanic("bottom block index %d does not fit 16 bits", s.bottom.peek())
	}

	if needMiddle {
		s.top.children[t] = uint8(s.middle.acquire())
		s.top.bits.set(t)
	}
	mi := int(s.top.children[t])
	if needBottom {
		bi := s.bottom.acquire()
		mid := s.middle.at(mi)
		mid.children[m] = uint16(bi)
		mid.bits.set(m)
	}
	bi := int(s.middle.at(mi).children[m])
	return !s.bottom.at(bi).bits.set(b)
}

// Remove clears slot i and reports whether it was set. A bottom block that
// becomes empty is released to its pool and its middle bit cleared; a middle
// block left empty by that is released in turn. Ancestor bits are therefore
// exact at all times.
func (s *Bitset) Remove(i Index) bool {
	if !s.inDomain(i) {
		return false
	}
	t, m, b := split(i)
	if !s.top.bits.containsBit(t) {
		return false
	}
	mi := int(s.top.children[t])
	mid := s.middle.at(mi)
	if !mid.bits.containsBit(m) {
		return false
	}
	bi := int(mid.children[m])
	bot := s.bottom.at(bi)
	if !bot.bits.unset(b) {
		return false
	}
	if bot.bits.isEmpty() {
		mid.bits.unset(m)
		s.bottom.release(bi)
		if mid.bits.isEmpty() {
			s.top.bits.unset(t)
			s.middle.release(mi)
		}
	}
	return true
}

// IsEmpty reports whether no slot is present.
func (s *Bitset) IsEmpty() bool {
	return s.top.bits.isEmpty()
}

// Len returns the number of present slots.
func (s *Bitset) Len() int {
	n := 0
	top := s.top.bits
	for t, ok := top.pop(); ok; t, ok = top.pop() {
		mid := s.middle.at(int(s.top.children[t]))
		present := mid.bits
		for m, ok := present.pop(); ok; m, ok = present.pop() {
			n += s.bottom.at(int(mid.children[m])).bits.count()
		}
	}
	return n
}

// First returns the lowest present slot.
func (s *Bitset) First() (Index, bool) {
	t, ok := s.top.bits.first()
	if !ok {
		return 0, false
	}
	mid := s.middle.at(int(s.top.children[t]))
	m, ok := mid.bits.first()
	if !ok {
		return 0, false
	}
	b, ok := s.bottom.at(int(mid.children[m])).bits.first()
	if !ok {
		return 0, false
	}
	return Index(t<<16 | m<<8 | b), true
}

// ForEach calls fn for every present slot in ascending order.
func (s *Bitset) ForEach(fn func(Index)) {
	c := cursor{masks: []*Bitset{s}}
	c.reset()
	for i, ok := c.next(); ok; i, ok = c.next() {
		fn(i)
	}
}

// All returns the present slots in ascending order. Each range over the
// sequence starts a fresh enumeration.
func (s *Bitset) All() iter.Seq[Index] {
	return indices([]*Bitset{s})
}

// Clear removes every slot and drops all pooled blocks, keeping the
// allocated pool storage for reuse.
func (s *Bitset) Clear() {
	s.top = topBlock{}
	s.middle.reset()
	s.bottom.reset()
}

// BitsetStats reports pool occupancy.
type BitsetStats struct {
	MiddleLive   int // middle blocks reachable from the top block
	MiddlePooled int // middle blocks allocated, live or released
	BottomLive   int
	BottomPooled int
}

// Stats returns the current pool occupancy of s.
func (s *Bitset) Stats() BitsetStats {
	return BitsetStats{
		MiddleLive:   s.middle.live,
		MiddlePooled: len(s.middle.blocks),
		BottomLive:   s.bottom.live,
		BottomPooled: len(s.bottom.blocks),
	}
}
