package suffixtree

import (
	"fortio.org/log"
	"fortio.org/sets"
)

// Span is a half open [Start, End) occurrence of a pattern in the sequence.
type Span struct {
	Start int
	End   int
}

// Find returns every start position where pattern occurs in the sequence
// appended so far. The empty pattern occurs at every position 0..Len().
// An empty set means the pattern is absent.
func (t *Tree[T]) Find(pattern []T) sets.Set[int] {
	res := sets.New[int]()
	n := t.buf.len()
	if len(pattern) == 0 {
		for i := range n + 1 {
			res.Add(i)
		}
		return res
	}
	below, ok := t.locate(pattern)
	if !ok {
		return res
	}
	t.collectLeaves(below, res)
	t.collectTail(pattern, res)
	if log.LogVerbose() {
		log.LogVf("find %v: %d occurrence(s), %d tail suffix(es) scanned", pattern, len(res), t.remainder)
	}
	return res
}

// FindSorted is [Tree.Find] with the positions in ascending order.
func (t *Tree[T]) FindSorted(pattern []T) []int {
	return sets.Sort(t.Find(pattern))
}

// FindSpans returns the occurrences of pattern as sorted spans.
func (t *Tree[T]) FindSpans(pattern []T) []Span {
	pos := t.FindSorted(pattern)
	spans := make([]Span, 0, len(pos))
	for _, p := range pos {
		spans = append(spans, Span{Start: p, End: p + len(pattern)})
	}
	return spans
}

// Contains reports whether pattern occurs at least once.
func (t *Tree[T]) Contains(pattern []T) bool {
	if len(pattern) == 0 {
		return true
	}
	_, ok := t.locate(pattern)
	return ok
}

// Count returns the number of occurrences of pattern.
func (t *Tree[T]) Count(pattern []T) int {
	return len(t.Find(pattern))
}

// locate walks pattern down from the root. On success it returns the node
// right below the point where the pattern ends.
func (t *Tree[T]) locate(pattern []T) (nodeID, bool) {
	cur := root
	off := 0
	for {
		next, ok := t.child(cur, pattern[off])
		if !ok {
			return noNode, false
		}
		nd := &t.nodes[next]
		l := t.edgeLen(next)
		k := min(len(pattern)-off, l)
		if !t.buf.equal(nd.start, pattern[off:off+k]) {
			return noNode, false
		}
		off += k
		if off == len(pattern) {
			return next, true
		}
		cur = next
	}
}

// collectLeaves adds the suffix start of every leaf under from.
func (t *Tree[T]) collectLeaves(from nodeID, res sets.Set[int]) {
	stack := []nodeID{from}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := &t.nodes[n]
		if nd.isLeaf() {
			res.Add(nd.suffix)
			continue
		}
		for _, c := range nd.children {
			stack = append(stack, c)
		}
	}
}

// collectTail adds the occurrences of pattern starting within the last
// remainder positions. Those suffixes only exist implicitly, there is no
// leaf to find them by.
func (t *Tree[T]) collectTail(pattern []T, res sets.Set[int]) {
	n := t.buf.len()
	if t.remainder < len(pattern) {
		return
	}
	from := n - t.remainder
	for _, p := range matchAll(t.buf.elems[from:], pattern) {
		res.Add(from + p)
	}
}

// matchAll returns the offsets of every occurrence of pattern in text,
// overlapping ones included, using the prefix function of pattern.
func matchAll[T comparable](text, pattern []T) []int {
	m := len(pattern)
	fail := make([]int, m)
	for i, k := 1, 0; i < m; i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = fail[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		fail[i] = k
	}
	var out []int
	k := 0
	for i, e := range text {
		for k > 0 && e != pattern[k] {
			k = fail[k-1]
		}
		if e == pattern[k] {
			k++
		}
		if k == m {
			out = append(out, i-m+1)
			k = fail[k-1]
		}
	}
	return out
}
