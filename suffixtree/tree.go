package suffixtree

import (
	"fmt"

	"fortio.org/log"
)

// Tree is a suffix tree over the sequence appended so far. The zero value
// is not usable, create one with [New] or [Construct].
//
// A Tree is not safe for concurrent use while it is being extended.
// Concurrent Find calls on a tree nobody extends are fine.
type Tree[T comparable] struct {
	buf   buffer[T]
	nodes []node[T] // arena, nodes[root] is the root

	// Active point.
	activeNode nodeID
	activeEdge int // buffer index of the first element of the active edge
	activeLen  int

	// Suffixes of the current sequence not yet present as leaves.
	remainder int
	// Internal node created earlier in the current phase, waiting for its suffix link.
	pending nodeID
}

// New returns an empty tree.
func New[T comparable]() *Tree[T] {
	t := &Tree[T]{activeNode: root, pending: noNode}
	t.newNode(0, fixedEnd(0), -1)
	return t
}

// Construct builds the tree of seq, one element at a time.
func Construct[T comparable](seq []T) *Tree[T] {
	t := New[T]()
	t.ExtendAll(seq...)
	return t
}

// ExtendAll appends every element of seq in order.
func (t *Tree[T]) ExtendAll(seq ...T) {
	for _, e := range seq {
		t.Extend(e)
	}
}

// Extend appends elem to the sequence and updates the tree so that every
// suffix of the longer sequence is represented, explicitly or implicitly.
func (t *Tree[T]) Extend(elem T) {
	pos := t.buf.append(elem)
	t.remainder++
	t.pending = noNode
	for t.remainder > 0 {
		if t.activeLen == 0 {
			t.activeEdge = pos
		}
		key := t.buf.at(t.activeEdge)
		next, found := t.child(t.activeNode, key)
		if !found {
			leaf := t.newLeaf(pos, t.buf.len()-t.remainder)
			t.setChild(t.activeNode, key, leaf)
			t.linkPending(t.activeNode)
			if log.LogDebug() {
				log.Debugf("phase %d: leaf %d for suffix %d under node %d", pos, leaf, t.nodes[leaf].suffix, t.activeNode)
			}
		} else {
			if t.walkDown() {
				continue
			}
			nd := &t.nodes[next]
			if t.buf.at(nd.start+t.activeLen) == elem {
				// Already present implicitly, and so are all shorter pending suffixes.
				t.linkPending(t.activeNode)
				t.activeLen++
				if log.LogDebug() {
					log.Debugf("phase %d: implicit match, active len %d remainder %d", pos, t.activeLen, t.remainder)
				}
				break
			}
			t.split(next, key, elem, pos)
		}
		t.remainder--
		if t.activeNode == root && t.activeLen > 0 {
			t.activeLen--
			t.activeEdge = t.buf.len() - t.remainder
		} else if t.activeNode != root {
			t.activeNode = t.linkOrRoot(t.activeNode)
		}
	}
}

// split breaks the edge into next (keyed by key under the active node) at
// the active length, and hangs a new leaf for elem off the new internal node.
func (t *Tree[T]) split(next nodeID, key, elem T, pos int) {
	start := t.nodes[next].start
	mid := t.newInternal(start, start+t.activeLen)
	t.setChild(t.activeNode, key, mid)
	leaf := t.newLeaf(pos, t.buf.len()-t.remainder)
	t.setChild(mid, elem, leaf)
	t.nodes[next].start += t.activeLen
	t.setChild(mid, t.buf.at(t.nodes[next].start), next)
	t.linkPending(mid)
	t.pending = mid
	if log.LogDebug() {
		log.Debugf("phase %d: split node %d at %d into %d, leaf %d for suffix %d",
			pos, next, start+t.activeLen, mid, leaf, t.nodes[leaf].suffix)
	}
}

// walkDown moves the active point past the active edge when the active
// length covers it entirely. It reports whether it moved.
func (t *Tree[T]) walkDown() bool {
	key := t.buf.at(t.activeEdge)
	next, ok := t.child(t.activeNode, key)
	if !ok {
		msg := fmt.Sprintf("suffixtree: no edge %v under active node %d (edge %d, len %d)",
			key, t.activeNode, t.activeEdge, t.activeLen)
		log.Critf("%s", msg)
		panic(msg)
	}
	nd := &t.nodes[next]
	if nd.end.open {
		return false
	}
	l := nd.end.fixed - nd.start
	if t.activeLen < l {
		return false
	}
	t.activeEdge += l
	t.activeLen -= l
	t.activeNode = next
	return true
}

// linkPending points the pending internal node's suffix link at target
// and clears the slot.
func (t *Tree[T]) linkPending(target nodeID) {
	if t.pending != noNode {
		t.nodes[t.pending].link = target
		t.pending = noNode
	}
}

func (t *Tree[T]) linkOrRoot(n nodeID) nodeID {
	if l := t.nodes[n].link; l != noNode {
		return l
	}
	return root
}

// Len returns the number of elements appended so far.
func (t *Tree[T]) Len() int {
	return t.buf.len()
}

// At returns the i-th element of the sequence.
func (t *Tree[T]) At(i int) T {
	return t.buf.at(i)
}

// Sequence returns a copy of the elements appended so far.
func (t *Tree[T]) Sequence() []T {
	return append([]T(nil), t.buf.elems...)
}

// Remainder returns how many trailing suffixes are still only implicit,
// i.e. not yet ending at a leaf.
func (t *Tree[T]) Remainder() int {
	return t.remainder
}
