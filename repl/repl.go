package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"fortio.org/log"
	"fortio.org/sets"
	"grol.io/ukkonen/input"
	"grol.io/ukkonen/suffixtree"
	"grol.io/ukkonen/trie"
)

const PROMPT = "> "

type Options struct {
	Mode      input.Mode
	ShowSpans bool // print [start,end) spans instead of start positions
	Check     bool // cross-check every query against a naive suffix trie
	NoPrompt  bool
}

// Session holds the tree being queried and the running error count.
type Session struct {
	Tree    *suffixtree.Tree[string]
	Options Options
	Errors  int
	oracle  *trie.Trie[string] // built on first Check use, dropped on extension
}

func NewSession(tree *suffixtree.Tree[string], options Options) *Session {
	return &Session{Tree: tree, Options: options}
}

// Interactive reads one command per line from in until EOF and returns the
// number of errors encountered.
func (s *Session) Interactive(in io.Reader, out io.Writer) int {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for {
		if !s.Options.NoPrompt {
			fmt.Fprint(out, PROMPT)
		}
		if !scanner.Scan() {
			break
		}
		s.EvalOne(scanner.Text(), out)
	}
	if err := scanner.Err(); err != nil {
		log.Errf("Error reading input: %v", err)
		s.Errors++
	}
	return s.Errors
}

// EvalOne runs a single command:
//
//	+text   appends the elements of text to the tree
//	:dump   writes the tree structure
//	:stats  writes node counts
//	:len    writes the sequence length
//	:all    queries the empty pattern, which occurs at every position
//	pattern anything else is a query
func (s *Session) EvalOne(line string, out io.Writer) {
	if line == "" {
		return
	}
	switch {
	case strings.HasPrefix(line, "+"):
		elems := input.Split(s.Options.Mode, line[1:])
		s.Tree.ExtendAll(elems...)
		s.oracle = nil
		log.LogVf("Extended by %d element(s), now %d", len(elems), s.Tree.Len())
		fmt.Fprintf(out, "%d elements\n", s.Tree.Len())
	case line == ":dump":
		s.Tree.Dump(out)
	case line == ":stats":
		fmt.Fprintln(out, s.Tree.Stats())
	case line == ":len":
		fmt.Fprintln(out, s.Tree.Len())
	case line == ":all":
		s.query(nil, out)
	case strings.HasPrefix(line, ":"):
		log.Errf("Unknown command %q (known: +text, :dump, :stats, :len, :all)", line)
		s.Errors++
	default:
		s.query(input.Split(s.Options.Mode, line), out)
	}
}

func (s *Session) query(pattern []string, out io.Writer) {
	res := s.Tree.Find(pattern)
	if s.Options.Check && !s.check(pattern, res) {
		fmt.Fprint(out, log.Colors.Red)
		defer fmt.Fprint(out, log.Colors.Reset)
	}
	positions := sets.Sort(res)
	switch len(positions) {
	case 0:
		fmt.Fprintln(out, "no match")
		return
	case 1:
		fmt.Fprint(out, "1 match:")
	default:
		fmt.Fprintf(out, "%d matches:", len(positions))
	}
	for _, p := range positions {
		if s.Options.ShowSpans {
			fmt.Fprintf(out, " [%d,%d)", p, p+len(pattern))
		} else {
			fmt.Fprintf(out, " %d", p)
		}
	}
	fmt.Fprintln(out)
}

func (s *Session) check(pattern []string, res sets.Set[int]) bool {
	if s.oracle == nil {
		s.oracle = trie.NewTrie[string]()
		s.oracle.InsertSuffixes(s.Tree.Sequence())
	}
	want := s.oracle.Positions(pattern)
	if res.Equals(want) {
		log.LogVf("Check ok for %q: %d occurrence(s)", input.Join(s.Options.Mode, pattern), len(want))
		return true
	}
	log.Errf("Check failed for %q: got %v, naive trie says %v",
		input.Join(s.Options.Mode, pattern), sets.Sort(res), sets.Sort(want))
	s.Errors++
	return false
}

// EvalString indexes text and runs each line of script, returning the
// output and the number of errors.
func EvalString(text, script string, options Options) (string, int) {
	tree := suffixtree.Construct(input.Split(options.Mode, text))
	s := NewSession(tree, options)
	out := strings.Builder{}
	for _, line := range strings.Split(script, "\n") {
		s.EvalOne(line, &out)
	}
	return out.String(), s.Errors
}
