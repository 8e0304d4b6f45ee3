// Trie implements an uncompressed trie over sequences of comparable elements.
// Inserting every suffix of a sequence gives a naive suffix trie: quadratic
// in size, but simple enough to serve as a reference for the suffix tree.
package trie // import "grol.io/ukkonen/trie"

import "fortio.org/sets"

type Trie[T comparable] struct {
	// Children of this node
	children map[T]*Trie[T]
	// Start positions of the inserted words going through (or ending at) this node.
	starts []int
	// This node itself terminates an inserted word in addition to maybe having children.
	valid bool
}

func NewTrie[T comparable]() *Trie[T] {
	return &Trie[T]{}
}

// Insert adds word, recording start on every node along its path.
func (t *Trie[T]) Insert(word []T, start int) {
	t.starts = append(t.starts, start)
	for _, e := range word {
		next := t.children[e]
		if next == nil {
			if t.children == nil {
				t.children = make(map[T]*Trie[T])
			}
			next = &Trie[T]{}
			t.children[e] = next
		}
		t = next
		t.starts = append(t.starts, start)
	}
	t.valid = true
}

// InsertSuffixes adds every suffix of seq, each tagged with its start.
func (t *Trie[T]) InsertSuffixes(seq []T) {
	for i := range len(seq) + 1 {
		t.Insert(seq[i:], i)
	}
}

func (t *Trie[T]) Contains(word []T) bool {
	return t.Prefix(word).IsValid()
}

func (t *Trie[T]) Prefix(word []T) *Trie[T] {
	for _, e := range word {
		t = t.children[e]
		if t == nil {
			return nil
		}
	}
	return t
}

// Positions returns the starts of all inserted words having word as prefix.
// For a suffix trie that is every occurrence of word.
func (t *Trie[T]) Positions(word []T) sets.Set[int] {
	res := sets.New[int]()
	if p := t.Prefix(word); p != nil {
		res.Add(p.starts...)
	}
	return res
}

func (t *Trie[T]) IsLeaf() bool {
	return t != nil && len(t.children) == 0
}

func (t *Trie[T]) IsValid() bool {
	return t != nil && t.valid
}
