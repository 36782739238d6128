package fusedlru

// unlink splices s out of the recency list, fixing up its neighbors
// and head/tail as needed. Leaves s's own left/right fields in a
// don't-care state; callers either overwrite them (pushToTail) or are
// about to erase the slot (backshift).
func (c *FusedLRU) unlink(s int32) {
	left := c.left(s)
	right := c.right(s)

	if left != null {
		c.setRight(left, right)
	} else {
		c.head = right
	}

	if right != null {
		c.setLeft(right, left)
	} else {
		c.tail = left
	}
}

// pushToTail appends s after the current tail, making it the most
// recently used slot.
func (c *FusedLRU) pushToTail(s int32) {
	if c.tail != null {
		c.setRight(c.tail, s)
	}
	c.setLeft(s, c.tail)
	c.setRight(s, null)
	c.tail = s
	if c.head == null {
		c.head = s
	}
}
