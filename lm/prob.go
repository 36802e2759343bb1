package lm

import "github.com/arpalm/ngramtrie/dict"

// ProbV returns the Katz backoff log probability of word w given a
// history of word IDs, most recent first, along with the number of
// words of the query actually used. The recursion is total: an exact
// node yields its stored probability; otherwise the estimate backs off
// to the history minus its oldest word, corrected by the history's
// backoff weight; with no history left the floor probability is
// returned and zero words are used.
func (t *Trie) ProbV(w dict.WordID, hist []dict.WordID) (int32, int) {
	if ng := t.NgramV(w, hist); ng != nil {
		return t.NodeProb(ng), len(hist) + 1
	}
	if len(hist) > 0 {
		prob, used := t.ProbV(w, hist[:len(hist)-1])
		return prob + t.BowtV(hist[0], hist[1:]), used
	}
	return t.zero << t.shift, 0
}

// BowtV returns the log backoff weight of the N-gram formed by word w
// and the given history, dropping the oldest history word until a node
// is found. An exhausted history yields weight 0.
func (t *Trie) BowtV(w dict.WordID, hist []dict.WordID) int32 {
	if ng := t.NgramV(w, hist); ng != nil {
		return t.NodeBowt(ng)
	}
	if len(hist) > 0 {
		return t.BowtV(w, hist[:len(hist)-1])
	}
	return 0
}

// Bowt returns the log backoff weight of the N-gram formed by word w
// and the given history words, most recent first. Unknown words never
// match, shortening the history until something does.
func (t *Trie) Bowt(w string, hist ...string) int32 {
	wid := t.dict.WordID(w)
	hids := make([]dict.WordID, len(hist))
	for i, h := range hist {
		hids[i] = t.dict.WordID(h)
	}
	return t.BowtV(wid, hids)
}

// Prob returns the backoff log probability of word w given history
// words, most recent first. An unknown head word is rescored as "<unk>"
// when the dictionary has it; unknown history words simply never match,
// so the estimate backs off past them.
func (t *Trie) Prob(w string, hist ...string) (int32, int) {
	wid := t.dict.WordID(w)
	if wid == dict.BadID {
		if wid = t.dict.WordID("<unk>"); wid == dict.BadID {
			return t.zero << t.shift, 0
		}
	}
	hids := make([]dict.WordID, len(hist))
	for i, h := range hist {
		hids[i] = t.dict.WordID(h)
	}
	return t.ProbV(wid, hids)
}

// SuccessorProb returns the backoff log probability of word w following
// the full history ending at node h.
func (t *Trie) SuccessorProb(h *Node, w dict.WordID) int32 {
	var hist []dict.WordID
	if h.word != dict.BadID {
		hist = append([]dict.WordID{h.word}, t.WordHist(h)...)
	}
	prob, _ := t.ProbV(w, hist)
	return prob
}
