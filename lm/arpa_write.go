package lm

import (
	"bufio"
	"fmt"
	"io"
)

// CountNgrams returns the number of N-grams of the given order actually
// present in the trie, which can differ from the declared Count after
// skipped lines or direct mutation.
func (t *Trie) CountNgrams(n int) int {
	count := 0
	for it := t.Ngrams(n); it != nil; it = it.Next() {
		count++
	}
	return count
}

// WriteARPA serializes the trie as an ARPA format model: the \data\
// counts section from the actual per-order node counts, then each
// order's block in ascending order. Record lines carry the base-10 log
// probability, the words oldest first, and the backoff weight for every
// order below the maximum.
func (t *Trie) WriteARPA(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s\n", dataMarker)
	for n := 1; n <= t.n; n++ {
		fmt.Fprintf(bw, "ngram %d=%d\n", n, t.CountNgrams(n))
	}
	fmt.Fprintln(bw)

	for n := 1; n <= t.n; n++ {
		fmt.Fprintf(bw, "\\%d-grams:\n", n)
		for it := t.Ngrams(n); it != nil; it = it.Next() {
			t.writeNgramLine(bw, it.Get(), n)
		}
		fmt.Fprintln(bw)
	}

	fmt.Fprintf(bw, "%s\n", endMarker)
	return bw.Flush()
}

func (t *Trie) writeNgramLine(bw *bufio.Writer, ng *Node, n int) {
	// Six decimals keep the quantized value exact through a reload.
	fmt.Fprintf(bw, "%.6f", t.lmath.LogToLog10(t.NodeProb(ng)))
	hist := t.WordHist(ng)
	for i := len(hist) - 1; i >= 0; i-- {
		fmt.Fprintf(bw, " %s", t.dict.WordStr(hist[i]))
	}
	fmt.Fprintf(bw, " %s", t.dict.WordStr(ng.word))
	if n < t.n {
		fmt.Fprintf(bw, " %.6f", t.lmath.LogToLog10(t.NodeBowt(ng)))
	}
	fmt.Fprintln(bw)
}
