package suffixtree_test

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"fortio.org/sets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"grol.io/ukkonen/suffixtree"
	"grol.io/ukkonen/trie"
)

func runes(s string) []rune {
	return []rune(s)
}

func TestFindScenarios(t *testing.T) {
	tests := []struct {
		text     string
		pattern  string
		expected []int
	}{
		{"banana", "ana", []int{1, 3}},
		{"banana", "xyz", []int{}},
		{"babcababx", "ab", []int{1, 4, 6}},
		{"banana", "a", []int{1, 3, 5}},
		{"banana", "banana", []int{0}},
		{"banana", "bananas", []int{}},
		{"banana", "nab", []int{}},
		{"mississippi", "issi", []int{1, 4}},
		{"mississippi", "ssi", []int{2, 5}},
		{"aaaaa", "aa", []int{0, 1, 2, 3}},
		{"abcabxabcd", "abc", []int{0, 6}},
		{"", "a", []int{}},
	}
	for _, tt := range tests {
		st := suffixtree.Construct(runes(tt.text))
		got := st.FindSorted(runes(tt.pattern))
		assert.ElementsMatch(t, tt.expected, got, "Find(%q) in %q", tt.pattern, tt.text)
		assert.IsIncreasing(t, got)
	}
}

func TestFindNumbers(t *testing.T) {
	st := suffixtree.Construct([]int{1, 2, 3, 2, 3, 4})
	assert.True(t, st.Find([]int{2, 3}).Equals(sets.New(1, 3)))
	assert.Equal(t, []suffixtree.Span{{Start: 1, End: 3}, {Start: 3, End: 5}}, st.FindSpans([]int{2, 3}))
	assert.Equal(t, 2, st.Count([]int{3}))
	assert.False(t, st.Contains([]int{3, 2, 3, 2}))
}

func TestFindSpansBanana(t *testing.T) {
	st := suffixtree.Construct(runes("banana"))
	assert.Equal(t, []suffixtree.Span{{Start: 1, End: 4}, {Start: 3, End: 6}}, st.FindSpans(runes("ana")))
	assert.Empty(t, st.FindSpans(runes("xyz")))
}

func TestEmptyPattern(t *testing.T) {
	st := suffixtree.Construct(runes("abc"))
	assert.Equal(t, []int{0, 1, 2, 3}, st.FindSorted(nil))
	assert.True(t, st.Contains(nil))
	empty := suffixtree.New[rune]()
	assert.Equal(t, []int{0}, empty.FindSorted(nil))
	assert.Equal(t, 0, empty.Len())
	assert.Empty(t, empty.FindSorted(runes("a")))
}

func TestFindIsRepeatable(t *testing.T) {
	st := suffixtree.Construct(runes("abracadabra"))
	first := st.Find(runes("abra"))
	for range 5 {
		assert.True(t, st.Find(runes("abra")).Equals(first))
	}
	assert.Equal(t, []int{0, 7}, sets.Sort(first))
}

// randomSeq returns a sequence over a small alphabet so that repeats, and
// therefore splits and suffix links, are frequent.
func randomSeq(r *rand.Rand, n, alphabet int) []int {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = r.IntN(alphabet)
	}
	return seq
}

// Every substring is found at its own position, and every returned
// position really holds the pattern.
func TestSoundAndComplete(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 1))
	for _, alphabet := range []int{1, 2, 3, 4, 26} {
		for range 20 {
			seq := randomSeq(r, 1+r.IntN(40), alphabet)
			st := suffixtree.Construct(seq)
			oracle := trie.NewTrie[int]()
			oracle.InsertSuffixes(seq)
			for i := range seq {
				for k := 1; i+k <= len(seq); k++ {
					pattern := seq[i : i+k]
					got := st.Find(pattern)
					require.True(t, got.Has(i), "Find(%v) in %v misses %d: %v", pattern, seq, i, sets.Sort(got))
					for p := range got {
						require.LessOrEqual(t, p+k, len(seq))
						require.Equal(t, pattern, seq[p:p+k], "bogus position %d for %v in %v", p, pattern, seq)
					}
					require.True(t, got.Equals(oracle.Positions(pattern)),
						"Find(%v) in %v = %v, oracle %v", pattern, seq, sets.Sort(got), sets.Sort(oracle.Positions(pattern)))
				}
			}
		}
	}
}

func TestAbsentPatterns(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	for range 50 {
		seq := randomSeq(r, 1+r.IntN(30), 3)
		st := suffixtree.Construct(seq)
		oracle := trie.NewTrie[int]()
		oracle.InsertSuffixes(seq)
		for range 20 {
			pattern := randomSeq(r, 1+r.IntN(6), 4) // 3 never appears in seq
			want := oracle.Positions(pattern)
			got := st.Find(pattern)
			assert.True(t, got.Equals(want), "Find(%v) in %v = %v, want %v", pattern, seq, sets.Sort(got), sets.Sort(want))
			assert.Equal(t, len(want) > 0, st.Contains(pattern))
		}
	}
}

// Extending one element at a time gives the same answers at every prefix
// as building that prefix from scratch.
func TestIncrementalEquivalence(t *testing.T) {
	text := runes("abcabxabcdabcabxabcxxabab")
	st := suffixtree.New[rune]()
	for n := range len(text) {
		st.Extend(text[n])
		prefix := text[:n+1]
		fresh := suffixtree.Construct(prefix)
		require.Equal(t, n+1, st.Len())
		for i := range prefix {
			for j := i + 1; j <= len(prefix); j++ {
				pattern := prefix[i:j]
				require.True(t, st.Find(pattern).Equals(fresh.Find(pattern)),
					"prefix %q pattern %q", string(prefix), string(pattern))
			}
		}
	}
}

// On R·R every suffix of the second copy already occurred, so they are all
// implicit and only the tail scan finds them.
func TestRepeatedHalfTail(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 8))
	half := randomSeq(r, 500, 26)
	st := suffixtree.Construct(append(slices.Clone(half), half...))
	assert.Equal(t, len(half), st.Remainder())
	assert.Equal(t, []int{0, len(half)}, st.FindSorted(half))
	assert.Equal(t, []int{0, len(half)}, st.FindSorted(half[:10]))
	tail := half[len(half)-7:]
	assert.Equal(t, []int{len(half) - 7, 2*len(half) - 7}, st.FindSorted(tail))
}

func TestExtendAllAfterConstruct(t *testing.T) {
	st := suffixtree.Construct(runes("bana"))
	assert.Equal(t, []int{1}, st.FindSorted(runes("ana")))
	st.ExtendAll(runes("na")...)
	assert.Equal(t, []int{1, 3}, st.FindSorted(runes("ana")))
	assert.Equal(t, runes("banana"), st.Sequence())
	assert.Equal(t, 'n', st.At(4))
}

func TestStrings(t *testing.T) {
	words := []string{"to", "be", "or", "not", "to", "be", "that", "is"}
	st := suffixtree.Construct(words)
	assert.Equal(t, []int{0, 4}, st.FindSorted([]string{"to", "be"}))
	assert.Equal(t, []int{3}, st.FindSorted([]string{"not", "to", "be"}))
	assert.Empty(t, st.FindSorted([]string{"be", "to"}))
}

func TestNodeBound(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 9))
	for _, n := range []int{0, 1, 2, 10, 100, 1000} {
		st := suffixtree.Construct(randomSeq(r, n, 3))
		s := st.Stats()
		assert.LessOrEqual(t, s.Nodes, max(1, 2*n), "n=%d %s", n, s)
		assert.Equal(t, n-st.Remainder(), s.Leaves, "n=%d %s", n, s)
		assert.Equal(t, n, s.Elements)
	}
}

func TestDump(t *testing.T) {
	st := suffixtree.Construct(runes("abab"))
	// No split happens: "ab" repeats implicitly.
	expected := `[root] elements 4, nodes 3 (leaves 2, internal 0), remainder 2
.[97 98 97 98] [0:4) suffix 0
.[98 97 98] [1:4) suffix 1
`
	assert.Equal(t, expected, st.String())
	st.Extend('c')
	s := st.Stats()
	assert.Equal(t, 0, s.Remainder)
	assert.Equal(t, 5, s.Leaves)
	assert.Equal(t, 2, s.Internal)
	assert.Contains(t, st.String(), "suffix 4")
}

func ExampleTree_Find() {
	st := suffixtree.Construct([]rune("banana"))
	fmt.Println(st.FindSorted([]rune("ana")))
	st.ExtendAll([]rune("na")...)
	fmt.Println(st.FindSorted([]rune("ana")))
	fmt.Println(st.FindSpans([]rune("nana")))
	// Output:
	// [1 3]
	// [1 3 5]
	// [{2 6} {4 8}]
}
