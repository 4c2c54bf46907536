package ahocorasick

import (
	"slices"
	"testing"

	"github.com/corey/dawgset/dawg"
	"github.com/stretchr/testify/assert"
)

func TestScanFindsDictionaryWords(t *testing.T) {
	var s Scanner
	s.Build([]string{"ant", "bee", "beetle"})

	matches := s.Scan("the ant met a beetle")
	var words []string
	for _, m := range matches {
		words = append(words, m.Word)
	}
	assert.Contains(t, words, "ant")
	assert.Contains(t, words, "bee")
	assert.Contains(t, words, "beetle")

	for _, m := range matches {
		assert.Equal(t, m.Word, "the ant met a beetle"[m.Start:m.End])
	}
}

func TestScanUnbuiltReturnsNil(t *testing.T) {
	var s Scanner
	assert.Nil(t, s.Scan("anything"))

	s.Build(nil)
	assert.Nil(t, s.Scan("anything"))
}

func TestScanSkipsEmptyWords(t *testing.T) {
	var s Scanner
	s.Build([]string{"", "ant"})
	assert.Equal(t, 1, s.WordCount())
}

func TestScanFromCompactSet(t *testing.T) {
	c := dawg.FromStrings("cat", "dog").Compress()

	var s Scanner
	s.Build(slices.Collect(c.All()))

	matches := s.Scan("catalog of dogs")
	var words []string
	for _, m := range matches {
		words = append(words, m.Word)
	}
	assert.Equal(t, []string{"cat", "dog"}, words)
}
