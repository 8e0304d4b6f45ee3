package suffixtree

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Stats summarizes the shape of the tree.
type Stats struct {
	Elements  int // sequence length
	Nodes     int // root included
	Leaves    int
	Internal  int // excluding the root
	Remainder int // implicit trailing suffixes
}

func (s Stats) String() string {
	return fmt.Sprintf("elements %d, nodes %d (leaves %d, internal %d), remainder %d",
		s.Elements, s.Nodes, s.Leaves, s.Internal, s.Remainder)
}

// Stats counts the nodes of the tree.
func (t *Tree[T]) Stats() Stats {
	s := Stats{Elements: t.buf.len(), Nodes: len(t.nodes), Remainder: t.remainder}
	for i := range t.nodes {
		switch {
		case i == int(root):
		case t.nodes[i].isLeaf():
			s.Leaves++
		default:
			s.Internal++
		}
	}
	return s
}

// String returns the [Tree.Dump] output.
func (t *Tree[T]) String() string {
	w := new(strings.Builder)
	t.Dump(w)
	return w.String()
}

// Dump writes the tree to w, one edge per line, children sorted by the
// position of their edge so the output is stable.
func (t *Tree[T]) Dump(w io.Writer) {
	fmt.Fprintf(w, "[root] %s\n", t.Stats())
	t.dumpRec(w, root, 1)
}

func (t *Tree[T]) dumpRec(w io.Writer, n nodeID, depth int) {
	kids := make([]nodeID, 0, len(t.nodes[n].children))
	for _, c := range t.nodes[n].children {
		kids = append(kids, c)
	}
	slices.SortFunc(kids, func(a, b nodeID) int {
		return cmp.Compare(t.nodes[a].start, t.nodes[b].start)
	})
	indent := strings.Repeat(".", depth)
	for _, c := range kids {
		nd := &t.nodes[c]
		end := nd.end.resolve(t.buf.len())
		label := fmt.Sprint(t.buf.elems[nd.start:end])
		if nd.isLeaf() {
			fmt.Fprintf(w, "%s%s [%d:%d) suffix %d\n", indent, label, nd.start, end, nd.suffix)
			continue
		}
		fmt.Fprintf(w, "%s%s [%d:%d) node %d", indent, label, nd.start, end, c)
		if nd.link != noNode {
			fmt.Fprintf(w, " -> %d", nd.link)
		}
		fmt.Fprintln(w)
		t.dumpRec(w, c, depth+1)
	}
}
