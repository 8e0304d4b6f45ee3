package suffixtree

import "fortio.org/safecast"

// nodeID addresses a node in the tree's arena.
type nodeID int32

const (
	root   nodeID = 0
	noNode nodeID = -1
)

// edgeEnd is either a fixed exclusive end index or open, meaning the
// edge runs to the current end of the buffer. Leaves stay open so they
// grow with every appended element without being touched.
type edgeEnd struct {
	fixed int
	open  bool
}

var openEnd = edgeEnd{open: true}

func fixedEnd(i int) edgeEnd {
	return edgeEnd{fixed: i}
}

// resolve returns the exclusive end for a buffer of length n.
func (e edgeEnd) resolve(n int) int {
	if e.open {
		return n
	}
	return e.fixed
}

type node[T comparable] struct {
	// Children keyed by the first element of their incoming edge. Nil until
	// the first child is added.
	children map[T]nodeID
	// Incoming edge label is buf[start:end].
	start int
	end   edgeEnd
	// Suffix link, noNode when unset. An index, never an owner.
	link nodeID
	// Start of the suffix this leaf spells; -1 for root and internal nodes.
	suffix int
}

func (n *node[T]) isLeaf() bool {
	return len(n.children) == 0
}

// newNode appends a node to the arena and returns its id.
func (t *Tree[T]) newNode(start int, end edgeEnd, suffix int) nodeID {
	id := nodeID(safecast.MustConvert[int32](len(t.nodes)))
	t.nodes = append(t.nodes, node[T]{start: start, end: end, link: noNode, suffix: suffix})
	return id
}

func (t *Tree[T]) newLeaf(start, suffix int) nodeID {
	return t.newNode(start, openEnd, suffix)
}

func (t *Tree[T]) newInternal(start, end int) nodeID {
	return t.newNode(start, fixedEnd(end), -1)
}

func (t *Tree[T]) child(parent nodeID, key T) (nodeID, bool) {
	c, ok := t.nodes[parent].children[key]
	return c, ok
}

func (t *Tree[T]) setChild(parent nodeID, key T, c nodeID) {
	p := &t.nodes[parent]
	if p.children == nil {
		p.children = make(map[T]nodeID, 2)
	}
	p.children[key] = c
}

// edgeLen is the label length of n's incoming edge at the current buffer length.
func (t *Tree[T]) edgeLen(n nodeID) int {
	nd := &t.nodes[n]
	return nd.end.resolve(t.buf.len()) - nd.start
}
