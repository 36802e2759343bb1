package lm

import "errors"

// Fatal ARPA parse errors. Lookup misses are not errors; they are nil
// results, except DeleteSuccessor which reports ErrNotFound.
var (
	// ErrNotFound is returned when a successor to delete does not exist.
	ErrNotFound = errors.New("ngram not found")

	// ErrNoData means the input ended before a \data\ marker.
	ErrNoData = errors.New("no \\data\\ marker before end of input")

	// ErrBadCount means an ngram count declaration could not be parsed.
	ErrBadCount = errors.New("malformed ngram count line")

	// ErrBadMarker means a \k-grams: section marker was malformed.
	ErrBadMarker = errors.New("malformed n-gram section marker")

	// ErrBadNgram means an n-gram line had a bad field count or an
	// unparseable log value.
	ErrBadNgram = errors.New("malformed n-gram line")

	// ErrNoEnd means the input ended before the \end\ marker.
	ErrNoEnd = errors.New("unexpected end of input before \\end\\")
)
