// Package lm implements a mutable trie representation of a statistical
// N-gram language model, with Katz backoff probability queries and ARPA
// format reading and writing.
package lm

import (
	"github.com/arpalm/ngramtrie/dict"
	"github.com/arpalm/ngramtrie/logmath"
	"github.com/rs/zerolog"
)

// minProb is the probability floor; the shift is chosen so its log value
// fits a 16-bit quantized field.
const minProb = 1e-20

// Trie is a mutable N-gram trie. Nodes are looked up by word plus a
// history supplied most-recent-first; probabilities back off to shorter
// histories when the full N-gram is absent. Not safe for concurrent
// mutation.
type Trie struct {
	dict    *dict.Dict
	gendict bool // dictionary is private and may grow during loading
	lmath   *logmath.LogMath

	shift uint  // right-shift applied to stored log values
	zero  int32 // minimum allowable log value, already shifted

	n      int     // maximum N-gram order
	counts []int32 // per-order counts; index 0 is the zerogram

	root *Node
	pool *nodePool

	log zerolog.Logger
}

// New returns a Trie instance sharing the given dictionary. If d is nil
// the trie owns a private, growable dictionary and the ARPA reader may
// add unknown unigrams to it; with a shared dictionary unknown words are
// skipped instead.
func New(d *dict.Dict, lmath *logmath.LogMath) *Trie {
	t := &Trie{
		lmath: lmath,
		pool:  newNodePool(),
		log:   zerolog.Nop(),
	}
	if d != nil {
		t.dict = d
	} else {
		t.dict = dict.New()
		t.gendict = true
	}

	// Determine the shift that fits the probability floor in 16 bits.
	t.zero = lmath.Log(minProb)
	for t.zero < -32768 {
		t.zero >>= 1
		t.shift++
	}

	t.counts = []int32{1} // there is always one zerogram
	t.root = t.allocNode()
	return t
}

// SetLogger installs the logger used for ARPA loading warnings. The
// default discards everything.
func (t *Trie) SetLogger(log zerolog.Logger) {
	t.log = log
}

// Dict returns the trie's dictionary.
func (t *Trie) Dict() *dict.Dict {
	return t.dict
}

// LogMath returns the trie's log-math context.
func (t *Trie) LogMath() *logmath.LogMath {
	return t.lmath
}

// Root returns the unigram-history sentinel node.
func (t *Trie) Root() *Node {
	return t.root
}

// Order returns the maximum N-gram order.
func (t *Trie) Order() int {
	return t.n
}

// Count returns the declared number of n-grams of the given order, with
// Count(0) the implicit zerogram count. Returns 0 for orders the trie
// has no declaration for.
func (t *Trie) Count(n int) int {
	if n < 0 || n >= len(t.counts) {
		return 0
	}
	return int(t.counts[n])
}

// SetOrder sets the maximum N-gram order for a trie built through the
// mutation API. The ARPA reader sets it from the counts section.
func (t *Trie) SetOrder(n int) {
	t.n = n
}

func (t *Trie) allocNode() *Node {
	ng := t.pool.alloc()
	ng.word = dict.BadID
	return ng
}

// quantize right-shifts a full-range log value into the 16-bit stored
// form, clamping at the representable bounds.
func (t *Trie) quantize(lp int32) int16 {
	q := lp >> t.shift
	if q < t.zero {
		q = t.zero
	}
	if q > 32767 {
		q = 32767
	}
	return int16(q)
}

// NodeProb returns ng's log probability at full range.
func (t *Trie) NodeProb(ng *Node) int32 {
	return int32(ng.logProb) << t.shift
}

// SetNodeProb stores a full-range log probability on ng.
func (t *Trie) SetNodeProb(ng *Node, lp int32) {
	ng.logProb = t.quantize(lp)
}

// NodeBowt returns ng's log backoff weight at full range.
func (t *Trie) NodeBowt(ng *Node) int32 {
	return int32(ng.logBowt) << t.shift
}

// SetNodeBowt stores a full-range log backoff weight on ng.
func (t *Trie) SetNodeBowt(ng *Node, lb int32) {
	ng.logBowt = t.quantize(lb)
}

// NgramV looks up the node for word w given a history of word IDs,
// most recent first. Histories longer than order-1 are truncated at the
// oldest end. Returns nil if any hop of the path is missing.
func (t *Trie) NgramV(w dict.WordID, hist []dict.WordID) *Node {
	node := t.root
	if t.n > 0 && len(hist) > t.n-1 {
		hist = hist[:t.n-1]
	}
	// Descend consuming the history oldest word first.
	for i := len(hist) - 1; i >= 0; i-- {
		if node = t.Successor(node, hist[i]); node == nil {
			return nil
		}
	}
	return t.Successor(node, w)
}

// Ngram looks up the node for word w given history words, most recent
// first. Returns nil if any word is unknown or the path is missing.
func (t *Trie) Ngram(w string, hist ...string) *Node {
	wid, hids, ok := t.resolve(w, hist)
	if !ok {
		return nil
	}
	return t.NgramV(wid, hids)
}

// resolve maps a word and history to IDs; ok is false if any word is
// not in the dictionary.
func (t *Trie) resolve(w string, hist []string) (dict.WordID, []dict.WordID, bool) {
	wid := t.dict.WordID(w)
	if wid == dict.BadID {
		return dict.BadID, nil, false
	}
	hids := make([]dict.WordID, len(hist))
	for i, h := range hist {
		if hids[i] = t.dict.WordID(h); hids[i] == dict.BadID {
			return dict.BadID, nil, false
		}
	}
	return wid, hids, true
}

// AddSuccessor allocates a node for word w, attaches it under h and
// returns it. The caller sets its log values afterwards.
func (t *Trie) AddSuccessor(h *Node, w dict.WordID) *Node {
	ng := t.allocNode()
	ng.word = w
	ng.history = h
	t.insertSuccessor(h, ng)
	return ng
}

// AddSuccessorNgram attaches a pre-built node under h, preserving the
// successor sort order.
func (t *Trie) AddSuccessorNgram(h *Node, ng *Node) {
	ng.history = h
	t.insertSuccessor(h, ng)
}

// WordHist returns the history word IDs of ng, most recent first,
// excluding the root sentinel.
func (t *Trie) WordHist(ng *Node) []dict.WordID {
	var hist []dict.WordID
	for h := ng.history; h != nil && h.word != dict.BadID; h = h.history {
		hist = append(hist, h.word)
	}
	return hist
}

// Backoff returns the node for ng's word under its one-shorter history
// (the history minus its oldest word), or nil if absent.
func (t *Trie) Backoff(ng *Node) *Node {
	hist := t.WordHist(ng)
	if len(hist) > 0 {
		hist = hist[:len(hist)-1]
	}
	return t.NgramV(ng.word, hist)
}
