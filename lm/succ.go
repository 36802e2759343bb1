package lm

import (
	"sort"

	"github.com/arpalm/ngramtrie/dict"
)

// Successor arrays are kept sorted by the surface string of each child's
// word, not by numeric ID, so lookups bisect on the dictionary mapping.
// N-grams within one history are looked up far more often than inserted,
// which makes a sorted slice with binary search the right trade against a
// hash per node.

// successorPos returns the leftmost position in h's successor array at
// which a node for word w would be inserted.
func (t *Trie) successorPos(h *Node, w dict.WordID) int {
	ws := t.dict.WordStr(w)
	return sort.Search(len(h.successors), func(i int) bool {
		return t.dict.WordStr(h.successors[i].word) >= ws
	})
}

// insertSuccessor places ng into h's successor array, preserving sort
// order. Insertion bisects for the rightmost consistent position; a
// position past the end appends instead of shifting.
func (t *Trie) insertSuccessor(h *Node, ng *Node) {
	ws := t.dict.WordStr(ng.word)
	pos := sort.Search(len(h.successors), func(i int) bool {
		return t.dict.WordStr(h.successors[i].word) > ws
	})
	if pos == len(h.successors) {
		h.successors = append(h.successors, ng)
		return
	}
	h.successors = append(h.successors, nil)
	copy(h.successors[pos+1:], h.successors[pos:])
	h.successors[pos] = ng
}

// Successor returns the child of h whose word is w, or nil if there is
// no such child.
func (t *Trie) Successor(h *Node, w dict.WordID) *Node {
	if w == dict.BadID {
		return nil
	}
	pos := t.successorPos(h, w)
	if pos >= len(h.successors) || h.successors[pos].word != w {
		return nil
	}
	return h.successors[pos]
}

// DeleteSuccessor removes and frees the child of h whose word is w. The
// child's own subtree is not cascaded; freeing it first is the caller's
// responsibility. Returns ErrNotFound if h has no such child.
func (t *Trie) DeleteSuccessor(h *Node, w dict.WordID) error {
	pos := t.successorPos(h, w)
	if pos >= len(h.successors) || h.successors[pos].word != w {
		return ErrNotFound
	}
	ng := h.successors[pos]
	copy(h.successors[pos:], h.successors[pos+1:])
	h.successors = h.successors[:len(h.successors)-1]
	t.pool.release(ng)
	return nil
}
