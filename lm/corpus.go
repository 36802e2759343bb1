package lm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Corpus holds tokenized evaluation sentences.
type Corpus struct {
	Sents [][]string
	Size  int
}

// NewCorpus returns a Corpus instance read from filePath. Lines are
// lowercased and split on splitter; an empty splitter splits on
// whitespace runs. Blank lines are dropped.
func NewCorpus(filePath string, splitter string) (*Corpus, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("cannot open corpus %s: %w", filePath, err)
	}
	defer f.Close()
	c, err := NewCorpusFromReader(f, splitter)
	if err != nil {
		return nil, fmt.Errorf("read error in corpus %s: %w", filePath, err)
	}
	return c, nil
}

// NewCorpusFromReader returns a Corpus instance read from r.
func NewCorpusFromReader(r io.Reader, splitter string) (*Corpus, error) {
	c := new(Corpus)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.ToLower(strings.TrimSpace(sc.Text()))
		if line == "" {
			continue
		}
		var sent []string
		if splitter == "" {
			sent = strings.Fields(line)
		} else {
			sent = strings.Split(line, splitter)
		}
		c.Sents = append(c.Sents, sent)
		c.Size++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return c, nil
}
