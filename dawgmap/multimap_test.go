package dawgmap

import (
	"slices"
	"testing"

	"github.com/corey/dawgset/dawg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiMapPutGet(t *testing.T) {
	m := NewMultiMap()

	added, err := m.Put("fruit", "apple")
	require.NoError(t, err)
	assert.True(t, added)
	added, err = m.Put("fruit", "pear")
	require.NoError(t, err)
	assert.True(t, added)
	added, err = m.Put("fruit", "apple")
	require.NoError(t, err)
	assert.False(t, added)
	_, err = m.Put("veg", "leek")
	require.NoError(t, err)

	assert.Equal(t, 3, m.Size())
	assert.Equal(t, []string{"apple", "pear"}, slices.Collect(m.Get("fruit").All()))
	assert.True(t, m.Contains("fruit", "pear"))
	assert.False(t, m.Contains("fruit", "leek"))
	assert.True(t, m.Get("missing").IsEmpty())
}

func TestMultiMapValueSetIsLive(t *testing.T) {
	m := NewMultiMap()
	m.Put("k", "a")
	view := m.Get("k")
	assert.Equal(t, 1, view.Size())

	m.Put("k", "b")
	assert.Equal(t, 2, view.Size())
	assert.True(t, view.Contains("b"))

	added, err := view.Add("c")
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, m.Contains("k", "c"))

	removed, err := view.Remove("a")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, []string{"b", "c"}, slices.Collect(view.All()))
}

func TestMultiMapDeleteKey(t *testing.T) {
	m := NewMultiMap()
	m.Put("k", "b")
	m.Put("k", "a")
	m.Put("other", "x")

	removed, err := m.DeleteKey("k")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, removed)
	assert.False(t, m.ContainsKey("k"))
	assert.True(t, m.ContainsKey("other"))
	assert.Equal(t, 1, m.Size())
}

func TestMultiMapKeysAndEntries(t *testing.T) {
	m := NewMultiMap()
	m.Put("b", "1")
	m.Put("a", "2")
	m.Put("a", "1")

	assert.Equal(t, []string{"a", "b"}, slices.Collect(m.Keys()))

	var pairs [][2]string
	for k, v := range m.Entries() {
		pairs = append(pairs, [2]string{k, v})
	}
	assert.Equal(t, [][2]string{{"a", "1"}, {"a", "2"}, {"b", "1"}}, pairs)
}

func TestMultiMapNavigation(t *testing.T) {
	m := NewMultiMap()
	m.Put("b", "1")
	m.Put("b", "2")
	m.Put("d", "1")

	got, ok := m.HigherKey("b")
	require.True(t, ok)
	assert.Equal(t, "d", got)
	got, ok = m.FloorKey("c")
	require.True(t, ok)
	assert.Equal(t, "b", got)
	got, ok = m.CeilingKey("b")
	require.True(t, ok)
	assert.Equal(t, "b", got)
	_, ok = m.LowerKey("b")
	assert.False(t, ok)
}

func TestMultiMapRejectsSeparator(t *testing.T) {
	m := NewMultiMap()
	_, err := m.Put("a\x00", "v")
	assert.ErrorIs(t, err, ErrSeparator)
	_, err = m.Put("k", "\x00v")
	assert.ErrorIs(t, err, ErrSeparator)
	_, err = m.PutAll("k", slices.Values([]string{"ok", "bad\x00"}))
	assert.ErrorIs(t, err, ErrSeparator)
}

func TestMultiMapOverCompact(t *testing.T) {
	src := NewMultiMap()
	src.Put("k", "a")
	src.Put("k", "b")

	compact := src.Set().(*dawg.Set).Compress()
	m := WrapMultiMap(compact)

	assert.Equal(t, []string{"a", "b"}, slices.Collect(m.Get("k").All()))
	_, err := m.Put("k", "c")
	assert.ErrorIs(t, err, dawg.ErrNotSupported)
	_, err = m.Get("k").Add("c")
	assert.ErrorIs(t, err, dawg.ErrNotSupported)
}
