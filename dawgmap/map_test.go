package dawgmap

import (
	"slices"
	"testing"

	"github.com/corey/dawgset/dawg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapPutGetDelete(t *testing.T) {
	m := NewMap()
	assert.True(t, m.IsEmpty())

	_, replaced, err := m.Put("fr", "french")
	require.NoError(t, err)
	assert.False(t, replaced)

	_, _, err = m.Put("de", "german")
	require.NoError(t, err)
	_, _, err = m.Put("en", "english")
	require.NoError(t, err)

	v, ok := m.Get("fr")
	require.True(t, ok)
	assert.Equal(t, "french", v)
	_, ok = m.Get("es")
	assert.False(t, ok)

	prev, replaced, err := m.Put("fr", "francais")
	require.NoError(t, err)
	assert.True(t, replaced)
	assert.Equal(t, "french", prev)
	v, _ = m.Get("fr")
	assert.Equal(t, "francais", v)
	assert.Equal(t, 3, m.Size())

	removed, ok, err := m.Delete("de")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "german", removed)
	assert.False(t, m.ContainsKey("de"))
	assert.Equal(t, 2, m.Size())

	_, ok, err = m.Delete("de")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMapRejectsSeparator(t *testing.T) {
	m := NewMap()
	_, _, err := m.Put("a\x00b", "v")
	assert.ErrorIs(t, err, ErrSeparator)
	_, _, err = m.Put("k", "a\x00b")
	assert.ErrorIs(t, err, ErrSeparator)
	_, _, err = m.Delete("a\x00b")
	assert.ErrorIs(t, err, ErrSeparator)
	assert.True(t, m.IsEmpty())
}

func TestMapContainsValue(t *testing.T) {
	m := NewMap()
	m.Put("a", "one")
	m.Put("b", "two")
	assert.True(t, m.ContainsValue("one"))
	assert.True(t, m.ContainsValue("two"))
	assert.False(t, m.ContainsValue("three"))
}

func TestMapIteration(t *testing.T) {
	m := NewMap()
	m.Put("b", "2")
	m.Put("a", "1")
	m.Put("c", "3")

	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(m.Keys()))

	var keys, values []string
	for k, v := range m.Entries() {
		keys = append(keys, k)
		values = append(values, v)
	}
	assert.Equal(t, []string{"a", "b", "c"}, keys)
	assert.Equal(t, []string{"1", "2", "3"}, values)
}

func TestMapKeyNavigation(t *testing.T) {
	m := NewMap()
	for _, k := range []string{"b", "bb", "d", "f"} {
		_, _, err := m.Put(k, "v")
		require.NoError(t, err)
	}

	first, ok := m.FirstKey()
	require.True(t, ok)
	assert.Equal(t, "b", first)
	last, ok := m.LastKey()
	require.True(t, ok)
	assert.Equal(t, "f", last)

	got, ok := m.LowerKey("d")
	require.True(t, ok)
	assert.Equal(t, "bb", got)

	got, ok = m.FloorKey("d")
	require.True(t, ok)
	assert.Equal(t, "d", got)
	got, ok = m.FloorKey("c")
	require.True(t, ok)
	assert.Equal(t, "bb", got)

	got, ok = m.CeilingKey("c")
	require.True(t, ok)
	assert.Equal(t, "d", got)
	got, ok = m.CeilingKey("d")
	require.True(t, ok)
	assert.Equal(t, "d", got)

	got, ok = m.HigherKey("d")
	require.True(t, ok)
	assert.Equal(t, "f", got)
	// A key that is a prefix of another: the longer key is strictly greater.
	got, ok = m.HigherKey("b")
	require.True(t, ok)
	assert.Equal(t, "bb", got)

	_, ok = m.LowerKey("b")
	assert.False(t, ok)
	_, ok = m.HigherKey("f")
	assert.False(t, ok)
}

func TestMapOverCompactIsReadOnly(t *testing.T) {
	src := NewMap()
	src.Put("fr", "french")
	src.Put("de", "german")

	compact := src.Set().(*dawg.Set).Compress()
	m := WrapMap(compact)

	v, ok := m.Get("fr")
	require.True(t, ok)
	assert.Equal(t, "french", v)
	assert.Equal(t, 2, m.Size())
	assert.Equal(t, []string{"de", "fr"}, slices.Collect(m.Keys()))

	_, _, err := m.Put("es", "spanish")
	assert.ErrorIs(t, err, dawg.ErrNotSupported)
	_, _, err = m.Delete("fr")
	assert.ErrorIs(t, err, dawg.ErrNotSupported)
}

func TestMapEmptyValues(t *testing.T) {
	m := NewMap()
	_, _, err := m.Put("k", "")
	require.NoError(t, err)
	v, ok := m.Get("k")
	require.True(t, ok)
	assert.Equal(t, "", v)
	assert.True(t, m.ContainsKey("k"))

	got, ok := m.CeilingKey("k")
	require.True(t, ok)
	assert.Equal(t, "k", got)
	_, ok = m.HigherKey("k")
	assert.False(t, ok)
}
