package lm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arpalm/ngramtrie/dict"
)

// ARPA text format markers.
const (
	dataMarker = `\data\`
	endMarker  = `\end\`
)

// lineIter yields trimmed lines with their line numbers.
type lineIter struct {
	sc   *bufio.Scanner
	line int
	buf  string
}

func newLineIter(r io.Reader) *lineIter {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &lineIter{sc: sc}
}

func (li *lineIter) next() bool {
	if !li.sc.Scan() {
		return false
	}
	li.line++
	li.buf = strings.TrimSpace(li.sc.Text())
	return true
}

// ReadARPA populates the trie from an ARPA format model. Log values in
// the file are base-10 and converted through the trie's log-math
// context, then quantized. Fatal format errors abort the load with the
// trie left partially populated; lines with unknown words or histories
// are skipped with a warning.
func (t *Trie) ReadARPA(r io.Reader) error {
	li := newLineIter(r)

	if err := skipARPAHeader(li); err != nil {
		return err
	}

	n, err := t.readNgramCounts(li)
	if err != nil {
		return err
	}
	t.n = n

	// Parse each order's block; a higher-order marker hands control back
	// here, \end\ reports 0.
	n = 1
	for {
		next, err := t.readNgrams(li, n)
		if err != nil {
			return err
		}
		if next <= 1 {
			break
		}
		n = next
	}
	return li.sc.Err()
}

// skipARPAHeader discards lines up to and including the \data\ marker.
func skipARPAHeader(li *lineIter) error {
	for li.next() {
		if li.buf == dataMarker {
			return nil
		}
	}
	return ErrNoData
}

// readNgramCounts parses the "ngram <n>=<count>" declarations up to the
// blank line ending the section and returns the maximum declared order.
// The implicit zerogram count of 1 is always present at index 0.
func (t *Trie) readNgramCounts(li *lineIter) (int, error) {
	t.counts = t.counts[:0]
	t.counts = append(t.counts, 1)

	for li.next() {
		if li.buf == "" {
			break
		}
		decl, ok := strings.CutPrefix(li.buf, "ngram ")
		if !ok {
			continue
		}
		ns, cs, ok := strings.Cut(decl, "=")
		if !ok {
			return 0, fmt.Errorf("line %d: %w: %q", li.line, ErrBadCount, li.buf)
		}
		n, err := strconv.Atoi(strings.TrimSpace(ns))
		if err != nil {
			return 0, fmt.Errorf("line %d: %w: %q", li.line, ErrBadCount, li.buf)
		}
		c, err := strconv.ParseInt(strings.TrimSpace(cs), 10, 32)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w: %q", li.line, ErrBadCount, li.buf)
		}
		t.log.Info().Int("order", n).Int64("count", c).Msg("ngram count")
		for len(t.counts) <= n {
			t.counts = append(t.counts, 0)
		}
		t.counts[n] = int32(c)
	}
	return len(t.counts) - 1, nil
}

// readNgrams parses the block of N-grams of order n. It returns 0 after
// the \end\ marker, or k when a \k-grams: marker for a higher order is
// seen, so the caller can resume at that order.
func (t *Trie) readNgrams(li *lineIter, n int) (int, error) {
	wids := make([]dict.WordID, n)

	// 1-grams always hang off the root; higher orders resolve their
	// history against the previously inserted one before falling back to
	// a full path lookup.
	var lastHist *Node
	if n == 1 {
		lastHist = t.root
	}

	for li.next() {
		if li.buf == "" {
			continue
		}
		if li.buf == endMarker {
			return 0, nil
		}
		if li.buf[0] == '\\' {
			nn, err := parseNgramMarker(li)
			if err != nil {
				return 0, err
			}
			if nn > n {
				return nn, nil
			}
			t.log.Info().Str("section", li.buf).Msg("reading ngrams")
			continue
		}
		if err := t.addNgramLine(li, n, wids, &lastHist); err != nil {
			return 0, err
		}
	}
	return 0, ErrNoEnd
}

// parseNgramMarker parses a "\<k>-grams:" section marker.
func parseNgramMarker(li *lineIter) (int, error) {
	body, ok := strings.CutSuffix(li.buf[1:], "-grams:")
	if !ok {
		return 0, fmt.Errorf("line %d: %w: %q", li.line, ErrBadMarker, li.buf)
	}
	nn, err := strconv.Atoi(body)
	if err != nil || nn < 1 {
		return 0, fmt.Errorf("line %d: %w: %q", li.line, ErrBadMarker, li.buf)
	}
	return nn, nil
}

// addNgramLine parses one N-gram record of order n and inserts it. The
// fields are the base-10 log probability, the words oldest first, and an
// optional base-10 log backoff weight. Lines whose words or history
// cannot be resolved are skipped with a warning; a malformed line is a
// fatal error.
func (t *Trie) addNgramLine(li *lineIter, n int, wids []dict.WordID, lastHist **Node) error {
	fields := strings.Fields(li.buf)
	if len(fields) < n+1 || len(fields) > n+2 {
		return fmt.Errorf("line %d: %w: expected %d or %d fields, got %d",
			li.line, ErrBadNgram, n+1, n+2, len(fields))
	}

	prob, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return fmt.Errorf("line %d: %w: bad log probability %q", li.line, ErrBadNgram, fields[0])
	}
	bowt := 0.0
	if len(fields) == n+2 {
		if bowt, err = strconv.ParseFloat(fields[n+1], 64); err != nil {
			return fmt.Errorf("line %d: %w: bad backoff weight %q", li.line, ErrBadNgram, fields[n+1])
		}
	}

	// wids[0] is the head word, wids[1..n-1] the history most recent
	// first; the line carries them oldest first.
	wids[0] = t.dict.WordID(fields[n])
	if wids[0] == dict.BadID {
		if !t.gendict {
			t.log.Warn().Int("line", li.line).Str("word", fields[n]).
				Msg("unknown unigram in ARPA file, skipping")
			return nil
		}
		wids[0] = t.dict.AddWord(fields[n])
	}
	for i := 1; i < n; i++ {
		if wids[i] = t.dict.WordID(fields[n-i]); wids[i] == dict.BadID {
			t.log.Warn().Int("line", li.line).Str("word", fields[n-i]).
				Msg("unknown history word in ARPA file, skipping")
			return nil
		}
	}

	if n > 1 {
		// Lines are not guaranteed sorted, so check the cached history
		// word by word before paying for a full lookup.
		h := *lastHist
		i := 1
		for ; h != nil && i < n; i++ {
			if h.word != wids[i] {
				break
			}
			h = h.history
		}
		if i < n {
			*lastHist = t.NgramV(wids[1], wids[2:n])
		}
		if *lastHist == nil {
			t.log.Warn().Int("line", li.line).Str("line_text", li.buf).
				Msg("unknown history for ngram in ARPA file, skipping")
			return nil
		}
	}

	ng := t.AddSuccessor(*lastHist, wids[0])
	ng.logProb = t.quantize(t.lmath.Log10ToLog(prob))
	ng.logBowt = t.quantize(t.lmath.Log10ToLog(bowt))
	return nil
}
