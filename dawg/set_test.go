package dawg

import (
	"math/rand"
	"slices"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect drains an iterator into a slice.
func collect(t *testing.T, d *Set) []string {
	t.Helper()
	return slices.Collect(d.All())
}

func TestMinimalConstruction(t *testing.T) {
	d := FromStrings("a", "xe", "xes", "xs")

	assert.Equal(t, 4, d.Size())
	assert.Equal(t, 4, d.NodeCount())
	assert.Equal(t, 5, d.TransitionCount())

	assert.Equal(t, []string{"a", "xe", "xes", "xs"}, collect(t, d))
	assert.Equal(t, []string{"xs", "xes", "xe", "a"}, slices.Collect(d.Descending()))
	assert.Equal(t, []string{"xe", "xes"}, slices.Collect(d.StartingWith("xe")))
	assert.ElementsMatch(t, []string{"xes", "xs"}, slices.Collect(d.EndingWith("s")))
}

func TestContainsSoundness(t *testing.T) {
	words := []string{"ant", "ants", "anteater", "bee", "bees", "b"}
	d := New()
	for _, w := range words {
		assert.True(t, d.Add(w), "first insert of %q", w)
		assert.False(t, d.Add(w), "second insert of %q", w)
	}
	for _, w := range words {
		assert.True(t, d.Contains(w), w)
	}
	for _, w := range []string{"", "a", "an", "anter", "antss", "c", "bea"} {
		assert.False(t, d.Contains(w), w)
	}
	assert.Equal(t, len(words), d.Size())
}

func TestAddAllUnsortedMatchesSorted(t *testing.T) {
	words := []string{"assiez", "assions", "eriez", "erions", "eront", "iez", "ions"}
	sorted := FromStrings(words...)

	shuffled := slices.Clone(words)
	rng := rand.New(rand.NewSource(7))
	for run := 0; run < 10; run++ {
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		d := New()
		d.AddAll(slices.Values(shuffled))
		assert.Equal(t, collect(t, sorted), collect(t, d))
		assert.Equal(t, sorted.NodeCount(), d.NodeCount())
		assert.Equal(t, sorted.TransitionCount(), d.TransitionCount())
	}
}

func TestEmptyStringOverlap(t *testing.T) {
	d := FromStrings("", "add", "a", "ad")
	assert.Equal(t, []string{"", "a", "ad", "add"}, collect(t, d))
	assert.Equal(t, 4, d.Size())
	assert.True(t, d.Contains(""))

	assert.True(t, d.Remove(""))
	assert.False(t, d.Remove(""))
	assert.Equal(t, []string{"a", "ad", "add"}, collect(t, d))
	assert.Equal(t, 3, d.Size())
}

func TestRemoveByConfluence(t *testing.T) {
	d := FromStrings("ant", "ants", "ant")
	require.Equal(t, 2, d.Size())

	assert.True(t, d.Remove("ants"))
	assert.True(t, d.Contains("ant"))
	assert.False(t, d.Contains("ants"))

	control := FromStrings("ant")
	assert.Equal(t, control.NodeCount(), d.NodeCount())
	assert.Equal(t, control.TransitionCount(), d.TransitionCount())
	assert.Equal(t, control.EquivalenceClassCount(), d.EquivalenceClassCount())

	d.OptimizeLetters()
	assert.True(t, d.Compress().Equal(control.Compress()))
}

func TestRemoveMatchesRebuild(t *testing.T) {
	words := []string{
		"catch", "cat", "cats", "catalog", "dog", "dogs", "catching",
		"do", "done", "doing", "ding", "dings", "catcher",
	}
	for _, victim := range words {
		d := New()
		d.AddAll(slices.Values(words))
		require.True(t, d.Remove(victim), victim)
		assert.False(t, d.Contains(victim))

		rest := make([]string, 0, len(words)-1)
		for _, w := range words {
			if w != victim {
				rest = append(rest, w)
			}
		}
		control := New()
		control.AddAll(slices.Values(rest))

		assert.Equal(t, collect(t, control), collect(t, d), "after removing %q", victim)
		assert.Equal(t, control.NodeCount(), d.NodeCount(), "after removing %q", victim)
		assert.Equal(t, control.TransitionCount(), d.TransitionCount(), "after removing %q", victim)
		assert.Equal(t, control.EquivalenceClassCount(), d.EquivalenceClassCount(), "after removing %q", victim)
	}
}

func TestRemoveAbsentLeavesSetUntouched(t *testing.T) {
	d := FromStrings("ant", "ants")
	nodes, transitions := d.NodeCount(), d.TransitionCount()

	assert.False(t, d.Remove("an"))
	assert.False(t, d.Remove("antsy"))
	assert.False(t, d.Remove("zebra"))

	assert.Equal(t, nodes, d.NodeCount())
	assert.Equal(t, transitions, d.TransitionCount())
	assert.Equal(t, []string{"ant", "ants"}, collect(t, d))
}

func TestMinimalityAfterEveryOperation(t *testing.T) {
	words := []string{"tap", "taps", "top", "tops", "stop", "stops", "stap", "staps"}
	d := New()
	for _, w := range words {
		d.Add(w)
		// No two reachable nodes may share a signature: every node but the
		// source is the representative of its own class.
		assert.Equal(t, d.NodeCount()-1, d.EquivalenceClassCount(), "after adding %q", w)
	}
	for _, w := range []string{"taps", "stop", "tap"} {
		d.Remove(w)
		assert.Equal(t, d.NodeCount()-1, d.EquivalenceClassCount(), "after removing %q", w)
	}
}

func TestMpsIndex(t *testing.T) {
	cases := []struct {
		prev, curr string
		want       int
	}{
		{"", "", -1},
		{"abcd", "efg", 0},
		{"abcd", "ab", 2},
		{"abcd", "abcd", -1},
		{"abcd", "abd", 2},
		{"abcd", "abcr", 3},
		{"abcd", "", 0},
		{"", "abcd", -1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, mpsIndex(encode(tc.prev), encode(tc.curr)), "mpsIndex(%q, %q)", tc.prev, tc.curr)
	}
}

func TestLongestPrefix(t *testing.T) {
	d := FromStrings("bro", "cats", "do", "doggy")
	cases := map[string]string{
		"do":      "do",
		"doggy":   "doggy",
		"catsing": "cats",
		"brolic":  "bro",
		"1234":    "",
	}
	for in, want := range cases {
		assert.Equal(t, encode(want), d.longestPrefix(encode(in)), in)
	}
}

func TestAddAllFrom(t *testing.T) {
	d := New()
	changed, err := d.AddAllFrom(strings.NewReader("alpha\nbeta\ngamma\n"))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, collect(t, d))

	changed, err = d.AddAllFrom(strings.NewReader("alpha\nbeta\n"))
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestAddAllFromPropagatesReadFailure(t *testing.T) {
	d := New()
	_, err := d.AddAllFrom(failingReader{})
	require.Error(t, err)
	// The lines read before the failure are kept and minimized.
	assert.True(t, d.Contains("ok"))
	assert.Equal(t, d.NodeCount()-1, d.EquivalenceClassCount())
}

func TestClear(t *testing.T) {
	d := FromStrings("a", "b")
	d.SetWithIncoming(false)
	d.Clear()
	assert.Equal(t, 0, d.Size())
	assert.False(t, d.Contains("a"))
	assert.True(t, d.Add("c"))
}

func TestMaxLength(t *testing.T) {
	d := FromStrings("ab", "abcde", "x")
	assert.Equal(t, 5, d.MaxLength())
	d.Remove("abcde")
	// Max length never decreases on removal.
	assert.Equal(t, 5, d.MaxLength())
}

func TestSetWithIncomingPanicsAfterInsert(t *testing.T) {
	d := FromStrings("a")
	assert.Panics(t, func() { d.SetWithIncoming(true) })
}

func TestLargeRandomSoundness(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("abcd")
	stored := make(map[string]bool)
	d := New()
	d.SetWithIncoming(true)

	randomWord := func() string {
		n := rng.Intn(8)
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteRune(alphabet[rng.Intn(len(alphabet))])
		}
		return b.String()
	}

	for i := 0; i < 3000; i++ {
		w := randomWord()
		if rng.Intn(3) == 0 {
			assert.Equal(t, stored[w], d.Remove(w), "remove %q at step %d", w, i)
			delete(stored, w)
		} else {
			assert.Equal(t, !stored[w], d.Add(w), "add %q at step %d", w, i)
			stored[w] = true
		}
	}

	want := make([]string, 0, len(stored))
	for w := range stored {
		want = append(want, w)
	}
	sort.Strings(want)
	assert.Equal(t, want, collect(t, d))
	assert.Equal(t, len(stored), d.Size())
	assert.Equal(t, d.NodeCount()-1, d.EquivalenceClassCount())
}

// failingReader yields one line, then an error.
type failingReader struct{ done bool }

func (r failingReader) Read(p []byte) (int, error) {
	return copy(p, []byte("ok\n")), errReadFailed
}

var errReadFailed = errorString("read failed")

type errorString string

func (e errorString) Error() string { return string(e) }
