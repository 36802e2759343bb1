package lm

import (
	"math"

	"github.com/cheggaaa/pb/v3"
	"gonum.org/v1/gonum/floats"
)

// Perplexity returns the per-word perplexity of the corpus under the
// trie's backoff model. Each word is scored against the up to order-1
// preceding words of its sentence; unknown words fall back to "<unk>"
// or the floor probability through Prob.
func (t *Trie) Perplexity(c *Corpus) float64 {
	return t.perplexity(c, true)
}

func (t *Trie) perplexity(c *Corpus, progress bool) float64 {
	var bar *pb.ProgressBar
	if progress {
		bar = pb.StartNew(c.Size)
	}
	var logs []float64
	countWord := 0
	for _, sent := range c.Sents {
		if bar != nil {
			bar.Increment()
		}
		var hist []string
		for _, word := range sent {
			prob, _ := t.Prob(word, hist...)
			logs = append(logs, t.lmath.LogToLog10(prob)/math.Log10(2))
			hist = append([]string{word}, hist...)
			if t.n > 0 && len(hist) > t.n-1 {
				hist = hist[:t.n-1]
			}
			countWord++
		}
	}
	if bar != nil {
		bar.Finish()
	}
	if countWord == 0 {
		return math.Inf(1)
	}
	entropy := -floats.Sum(logs) / float64(countWord)
	return math.Exp2(entropy)
}
