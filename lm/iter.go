package lm

// Iter is a cursor over the successor array of a node. In bounded mode
// it enumerates one node's direct children; in the fixed-depth walk used
// by Ngrams it continues into the next sibling subtree at the same depth
// once the current children are exhausted. Traversal methods return nil
// when the iterator is exhausted, so loops read
//
//	for it := t.Ngrams(2); it != nil; it = it.Next() { ... }
type Iter struct {
	t      *Trie
	cur    *Node // node whose successors are enumerated
	pos    int
	nostop bool
}

// Successors returns a bounded iterator over the direct children of h.
func (t *Trie) Successors(h *Node) *Iter {
	return &Iter{t: t, cur: h}
}

// Ngrams returns an iterator over all N-grams of the given order. The
// first N-gram is found by descending first children from the root; nil
// is returned if the trie holds no N-grams of that order.
func (t *Trie) Ngrams(n int) *Iter {
	h := t.root
	for i := 1; i < n; i++ {
		if len(h.successors) == 0 {
			return nil
		}
		h = h.successors[0]
	}
	// The first parent reached may be a leaf; walk to one with children.
	for h != nil && len(h.successors) == 0 {
		h = t.nextNode(h)
	}
	if h == nil {
		return nil
	}
	return &Iter{t: t, cur: h, nostop: true}
}

// nextNode returns the next node at the same depth as ng, walking up the
// history chain to find the next unvisited sibling subtree.
func (t *Trie) nextNode(ng *Node) *Node {
	h := ng.history
	if h == nil {
		return nil
	}
	pos := t.successorPos(h, ng.word) + 1
	if pos >= len(h.successors) {
		h = t.nextNode(h)
		for h != nil && len(h.successors) == 0 {
			h = t.nextNode(h)
		}
		if h == nil {
			return nil
		}
		return h.successors[0]
	}
	return h.successors[pos]
}

// Next advances to the next sibling, crossing into the next subtree at
// the same depth in fixed-depth mode. Returns nil when exhausted.
func (it *Iter) Next() *Iter {
	it.pos++
	if it.pos < len(it.cur.successors) {
		return it
	}
	if !it.nostop {
		return nil
	}
	next := it.t.nextNode(it.cur)
	for next != nil && len(next.successors) == 0 {
		next = it.t.nextNode(next)
	}
	if next == nil {
		return nil
	}
	it.cur = next
	it.pos = 0
	return it
}

// Up moves the cursor to the current node's parent. Returns nil if the
// cursor was already at the root.
func (it *Iter) Up() *Iter {
	it.cur = it.cur.history
	if it.cur == nil {
		return nil
	}
	return it
}

// Down moves the cursor into the child at the current position. Returns
// nil if the position is past the end or that child has no children of
// its own.
func (it *Iter) Down() *Iter {
	if it.pos >= len(it.cur.successors) {
		return nil
	}
	it.cur = it.cur.successors[it.pos]
	if len(it.cur.successors) == 0 {
		return nil
	}
	it.pos = 0
	return it
}

// Get returns the node at the cursor, or nil if the position is past the
// end of the successor array.
func (it *Iter) Get() *Node {
	if it.pos >= len(it.cur.successors) {
		return nil
	}
	return it.cur.successors[it.pos]
}

// Parent returns the node whose successors are being enumerated.
func (it *Iter) Parent() *Node {
	return it.cur
}
