package lm

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arpalm/ngramtrie/dict"
)

// buildBigramModel constructs the model of §test scenarios by hand:
// unigrams a (-1.0), b (-2.0), <unk> (-3.0) and the single bigram
// "a b" (-0.5), no backoff weights.
func buildBigramModel(t *testing.T) *Trie {
	t.Helper()
	tr := newTestTrie()
	tr.SetOrder(2)
	for _, u := range []struct {
		word string
		lp10 float64
	}{{"a", -1.0}, {"b", -2.0}, {"<unk>", -3.0}} {
		ng := tr.AddSuccessor(tr.Root(), tr.Dict().AddWord(u.word))
		tr.SetNodeProb(ng, tr.lmath.Log10ToLog(u.lp10))
	}
	a := tr.Successor(tr.Root(), tr.Dict().WordID("a"))
	require.NotNil(t, a)
	ab := tr.AddSuccessor(a, tr.Dict().WordID("b"))
	tr.SetNodeProb(ab, tr.lmath.Log10ToLog(-0.5))
	return tr
}

// quantized returns lp10 as stored and re-expanded by the trie.
func quantized(tr *Trie, lp10 float64) int32 {
	return int32(tr.quantize(tr.lmath.Log10ToLog(lp10))) << tr.shift
}

func TestRoundTripInsertLookup(t *testing.T) {
	tr := buildBigramModel(t)

	for _, q := range []struct {
		lp10 float64
		word string
		hist []string
	}{
		{-1.0, "a", nil},
		{-2.0, "b", nil},
		{-3.0, "<unk>", nil},
		{-0.5, "b", []string{"a"}},
	} {
		ng := tr.Ngram(q.word, q.hist...)
		require.NotNil(t, ng, "ngram %v %v", q.word, q.hist)
		full := tr.lmath.Log10ToLog(q.lp10)
		require.InDelta(t, float64(full), float64(tr.NodeProb(ng)), float64(int32(1)<<tr.shift),
			"stored probability off by more than one shift unit")
	}
}

func TestProbBackoff(t *testing.T) {
	tr := buildBigramModel(t)

	// Exact bigram.
	prob, used := tr.Prob("b", "a")
	require.Equal(t, quantized(tr, -0.5), prob)
	require.Equal(t, 2, used)

	// No such bigram: unigram probability plus the history's backoff
	// weight, which defaults to 0.
	prob, used = tr.Prob("b", "<unk>")
	require.Equal(t, quantized(tr, -2.0), prob)
	require.Equal(t, 1, used)

	// Unknown zerogram falls to the floor.
	empty := newTestTrie()
	prob, used = empty.Prob("nothing")
	require.Equal(t, empty.zero<<empty.shift, prob)
	require.Equal(t, 0, used)
}

func TestProbUnknownWordFallsBackToUnk(t *testing.T) {
	tr := buildBigramModel(t)
	prob, _ := tr.Prob("zzz")
	require.Equal(t, quantized(tr, -3.0), prob)
}

func TestBackoffTotality(t *testing.T) {
	tr := buildBigramModel(t)
	vocab := []string{"a", "b", "<unk>", "zzz", "qqq"}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		word := vocab[rng.Intn(len(vocab))]
		hist := make([]string, rng.Intn(4))
		for j := range hist {
			hist[j] = vocab[rng.Intn(len(vocab))]
		}
		prob, used := tr.Prob(word, hist...)
		require.LessOrEqual(t, used, len(hist)+1)
		require.GreaterOrEqual(t, used, 0)
		require.GreaterOrEqual(t, prob, tr.zero<<tr.shift)
	}
}

func TestHistoryReconstruction(t *testing.T) {
	tr := newTestTrie()
	tr.SetOrder(3)
	a := tr.AddSuccessor(tr.Root(), tr.Dict().AddWord("a"))
	tr.AddSuccessor(tr.Root(), tr.Dict().AddWord("b"))
	ab := tr.AddSuccessor(a, tr.Dict().WordID("b"))
	abc := tr.AddSuccessor(ab, tr.Dict().AddWord("c"))

	// Root-anchored nodes have empty histories.
	require.Empty(t, tr.WordHist(a))

	hist := tr.WordHist(abc)
	require.Equal(t, []dict.WordID{tr.Dict().WordID("b"), tr.Dict().WordID("a")}, hist)

	// Re-resolving the extracted path finds the same node.
	require.Same(t, abc, tr.NgramV(abc.Word(), hist))
	require.Same(t, ab, tr.NgramV(ab.Word(), tr.WordHist(ab)))
}

func TestBackoffNode(t *testing.T) {
	tr := newTestTrie()
	tr.SetOrder(3)
	a := tr.AddSuccessor(tr.Root(), tr.Dict().AddWord("a"))
	b := tr.AddSuccessor(tr.Root(), tr.Dict().AddWord("b"))
	ab := tr.AddSuccessor(a, tr.Dict().WordID("b"))
	abc := tr.AddSuccessor(ab, tr.Dict().AddWord("c"))
	bc := tr.AddSuccessor(b, tr.Dict().WordID("c"))

	// (c | a b) backs off to (c | b), dropping the oldest history word.
	require.Same(t, bc, tr.Backoff(abc))
	// A unigram's backoff entry is itself.
	require.Same(t, a, tr.Backoff(a))
}

func TestHistoryTruncation(t *testing.T) {
	tr := buildBigramModel(t)
	// Histories longer than order-1 are truncated at the oldest end.
	ng := tr.Ngram("b", "a", "b", "a")
	require.NotNil(t, ng)
	require.Same(t, tr.Ngram("b", "a"), ng)
}

func TestQuantizationBoundary(t *testing.T) {
	tr := newTestTrie()
	// The shift must fit the floor in 16 bits exactly.
	require.GreaterOrEqual(t, tr.zero, int32(-32768))
	require.Less(t, tr.zero, int32(0))

	ng := tr.AddSuccessor(tr.Root(), tr.Dict().AddWord("floor"))
	tr.SetNodeProb(ng, tr.zero<<tr.shift)
	require.Equal(t, tr.zero<<tr.shift, tr.NodeProb(ng))

	// Values below the floor clamp instead of wrapping the 16-bit field.
	tr.SetNodeProb(ng, (tr.zero-100)<<tr.shift)
	require.Equal(t, tr.zero<<tr.shift, tr.NodeProb(ng))
}

func TestSuccessorProb(t *testing.T) {
	tr := buildBigramModel(t)
	a := tr.Successor(tr.Root(), tr.Dict().WordID("a"))
	require.Equal(t, quantized(tr, -0.5), tr.SuccessorProb(a, tr.Dict().WordID("b")))
	// From the root the history is empty: plain unigram probability.
	require.Equal(t, quantized(tr, -1.0), tr.SuccessorProb(tr.Root(), tr.Dict().WordID("a")))
}
