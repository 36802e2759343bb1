package dict

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDict(t *testing.T) {
	d := New()
	require.Equal(t, 0, d.Size())
	require.Equal(t, BadID, d.WordID("a"))

	a := d.AddWord("a")
	b := d.AddWord("b")
	require.Equal(t, WordID(0), a)
	require.Equal(t, WordID(1), b)
	require.Equal(t, a, d.WordID("a"))
	require.Equal(t, "a", d.WordStr(a))
	require.Equal(t, 2, d.Size())

	// Adding an existing word keeps its ID.
	require.Equal(t, a, d.AddWord("a"))
	require.Equal(t, 2, d.Size())

	require.Equal(t, "", d.WordStr(BadID))
	require.Equal(t, "", d.WordStr(WordID(99)))
}

func TestNewFromWords(t *testing.T) {
	d := NewFromWords([]string{"c", "a", "b"})
	require.Equal(t, 3, d.Size())
	require.Equal(t, WordID(0), d.WordID("c"))
	require.Equal(t, WordID(2), d.WordID("b"))
}
