package fusedlru

// hash returns the home slot (an absolute offset, multiple of
// entrySize) for key, via a Fibonacci multiplicative mix. The
// multiplication is carried out on uint32 so it wraps modulo 2^32
// instead of relying on signed-overflow semantics; the mix and mask
// steps are then applied exactly as the Java original does on a
// 32-bit signed int, so the sign-extending shift below matches.
func (c *FusedLRU) hash(key int32) int32 {
	h := int32(uint32(key) * fibonacciMultiplier)
	mixed := h ^ (h >> 16)
	return (mixed & c.slotMask) * entrySize
}

// next advances a slot offset by one entry, wrapping at the end of
// the buffer. offsetMask is (capacity*entrySize)-1, a power-of-two
// minus one, so the wrap is a plain mask.
func (c *FusedLRU) next(offset int32) int32 {
	return (offset + entrySize) & c.offsetMask
}

// backshift fills the vacated slot at free by sliding later entries
// along their probe chains backward, without tombstones. It walks
// forward from free examining occupied slots; a slot may move into
// free only when doing so preserves every key's probe reachability
// (invariant 7). Terminates when it reaches an empty slot.
func (c *FusedLRU) backshift(free int32) {
	for {
		pos := c.next(free)
		for {
			curKey := c.key(pos)
			if curKey == null {
				c.setKey(free, null)
				return
			}

			home := c.hash(curKey)
			if free <= pos {
				if free >= home || home > pos {
					break
				}
			} else {
				if pos < home && home <= free {
					break
				}
			}
			pos = c.next(pos)
		}

		c.relocate(free, pos)
		free = pos
	}
}

// relocate copies the entry at src into dst and fixes up the recency
// list's adjacency pointers and head/tail so the moved entry remains
// correctly threaded.
func (c *FusedLRU) relocate(dst, src int32) {
	left := c.left(src)
	right := c.right(src)

	c.setKey(dst, c.key(src))
	c.setValue(dst, c.value(src))
	c.setLeft(dst, left)
	c.setRight(dst, right)

	if left != null {
		c.setRight(left, dst)
	}
	if right != null {
		c.setLeft(right, dst)
	}
	if src == c.head {
		c.head = dst
	}
	if src == c.tail {
		c.tail = dst
	}
}
