package lm

import "github.com/arpalm/ngramtrie/dict"

// Node is one N-gram entry in the trie. The node's own word is the most
// recent word of the N-gram; the chain of history pointers yields the
// older words in order, ending at the root sentinel.
//
// Log values are stored quantized: right-shifted by the owning trie's
// shift so they fit 16 bits, and left-shifted back on read. Use the
// Trie's NodeProb/NodeBowt accessors to read them at full range.
type Node struct {
	word    dict.WordID
	logProb int16
	logBowt int16
	// history is a non-owning back-reference used for upward traversal
	// only; ownership flows parent to child through successors.
	history    *Node
	successors []*Node
}

// Word returns the node's word ID. The root sentinel returns dict.BadID.
func (ng *Node) Word() dict.WordID {
	return ng.word
}

// History returns the node's parent, or nil for the root.
func (ng *Node) History() *Node {
	return ng.history
}

// NumSuccessors returns the number of direct children.
func (ng *Node) NumSuccessors() int {
	return len(ng.successors)
}
