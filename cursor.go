package sekai

// cursor walks the intersection of one or more bitsets in ascending slot
// order. Each level is ANDed across all masks before descending, so a block
// that is empty in any mask is never visited. The cursor keeps a copy of the
// remaining bits at each level and never shares state with other cursors.
type cursor struct {
	masks         []*Bitset
	top, mid, bot bitmask256
	ti, mi        int
}

func (c *cursor) reset() {
	c.top = c.masks[0].top.bits
	for _, s := range c.masks[1:] {
		c.top = c.top.and(s.top.bits)
	}
	c.mid = bitmask256{}
	c.bot = bitmask256{}
}

// next yields the lowest remaining slot. The bottom snapshot is narrowed by
// the live blocks before every pop, so a slot removed after its block was
// entered is never yielded.
func (c *cursor) next() (Index, bool) {
	for {
		if !c.bot.isEmpty() {
			c.bot = c.bot.and(c.bottomAt(c.ti, c.mi))
			if b, ok := c.bot.pop(); ok {
				return Index(c.ti<<16 | c.mi<<8 | b), true
			}
		}
		if m, ok := c.mid.pop(); ok {
			c.mi = m
			c.bot = c.bottomAt(c.ti, m)
			continue
		}
		if t, ok := c.top.pop(); ok {
			c.ti = t
			c.mid = c.middleAt(t)
			continue
		}
		return 0, false
	}
}

// middleAt intersects the middle blocks under top bit t. A mask whose top
// bit was cleared since reset contributes an empty block.
func (c *cursor) middleAt(t int) bitmask256 {
	var acc bitmask256
	for k, s := range c.masks {
		if !s.top.bits.containsBit(uint8(t)) {
			return bitmask256{}
		}
		bits := s.middle.at(int(s.top.children[t])).bits
		if k == 0 {
			acc = bits
		} else {
			acc = acc.and(bits)
		}
		if acc.isEmpty() {
			break
		}
	}
	return acc
}

func (c *cursor) bottomAt(t, m int) bitmask256 {
	var acc bitmask256
	for k, s := range c.masks {
		if !s.top.bits.containsBit(uint8(t)) {
			return bitmask256{}
		}
		mid := s.middle.at(int(s.top.children[t]))
		if !mid.bits.containsBit(uint8(m)) {
			return bitmask256{}
		}
		bits := s.bottom.at(int(mid.children[m])).bits
		if k == 0 {
			acc = bits
		} else {
			acc = acc.and(bits)
		}
		if acc.isEmpty() {
			break
		}
	}
	return acc
}
