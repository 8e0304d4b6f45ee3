// Package suffixtree implements Ukkonen's online suffix tree construction
// over sequences of any comparable element type.
//
// Elements are appended one at a time with [Tree.Extend] in amortized
// constant time, and at any point [Tree.Find] returns every position where
// a pattern occurs in the sequence appended so far.
//
// There is no terminator: the last [Tree.Remainder] suffixes of the sequence
// are only implicitly present in the tree. Find accounts for them by scanning
// that tail, so results are complete at every prefix, and a query costs time
// proportional to the pattern length plus the number of occurrences plus the
// remainder. The remainder is the length of the longest suffix that occurred
// earlier: small on typical text, but as large as half the sequence on input
// that repeats itself, like R·R.
//
// Nodes live in an arena and refer to each other by index, suffix links
// included, so the tree holds no pointer cycles.
package suffixtree // import "grol.io/ukkonen/suffixtree"
