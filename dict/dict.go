// Package dict maps word strings to dense integer IDs and back.
package dict

// WordID is a dense integer identifier for a word.
type WordID int32

// BadID marks a word that is not in the dictionary.
const BadID WordID = -1

// Dict is a bidirectional word/ID mapping. IDs are assigned densely in
// insertion order.
type Dict struct {
	words []string
	ids   map[string]WordID
}

// New returns an empty Dict instance.
func New() *Dict {
	return &Dict{ids: make(map[string]WordID)}
}

// NewFromWords returns a Dict instance populated with the given words.
func NewFromWords(words []string) *Dict {
	d := New()
	for _, w := range words {
		d.AddWord(w)
	}
	return d
}

// WordID returns the ID of w, or BadID if w is unknown.
func (d *Dict) WordID(w string) WordID {
	id, ok := d.ids[w]
	if !ok {
		return BadID
	}
	return id
}

// AddWord inserts w and returns its ID. Adding an existing word returns
// the ID it already has.
func (d *Dict) AddWord(w string) WordID {
	if id, ok := d.ids[w]; ok {
		return id
	}
	id := WordID(len(d.words))
	d.words = append(d.words, w)
	d.ids[w] = id
	return id
}

// WordStr returns the surface form of id, or the empty string if id is
// out of range.
func (d *Dict) WordStr(id WordID) string {
	if id < 0 || int(id) >= len(d.words) {
		return ""
	}
	return d.words[id]
}

// Size returns the number of words in the dictionary.
func (d *Dict) Size() int {
	return len(d.words)
}
