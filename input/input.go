// Package input turns text into the element sequences the suffix tree indexes.
package input

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"fortio.org/log"
	"github.com/klauspost/compress/gzip"
	"github.com/rivo/uniseg"
)

// Mode selects what one element of the sequence is.
type Mode int

const (
	Bytes     Mode = iota // each byte
	Runes                 // each unicode code point
	Graphemes             // each user perceived character (grapheme cluster)
	Words                 // whitespace separated words
	Lines                 // newline separated lines
)

var modeNames = []string{"bytes", "runes", "graphemes", "words", "lines"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Modes lists the valid mode names, for help texts.
func Modes() string {
	return strings.Join(modeNames, ", ")
}

var ErrUnknownMode = errors.New("unknown mode")

func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(i), nil
		}
	}
	return Bytes, fmt.Errorf("%w %q, valid modes are: %s", ErrUnknownMode, s, Modes())
}

// Split cuts text into elements according to mode.
func Split(mode Mode, text string) []string {
	switch mode {
	case Bytes:
		res := make([]string, len(text))
		for i := range len(text) {
			res[i] = text[i : i+1]
		}
		return res
	case Runes:
		res := make([]string, 0, utf8.RuneCountInString(text))
		for len(text) > 0 {
			_, size := utf8.DecodeRuneInString(text)
			res = append(res, text[:size])
			text = text[size:]
		}
		return res
	case Graphemes:
		var res []string
		g := uniseg.NewGraphemes(text)
		for g.Next() {
			res = append(res, g.Str())
		}
		return res
	case Words:
		return strings.Fields(text)
	case Lines:
		text = strings.TrimSuffix(text, "\n")
		if text == "" {
			return nil
		}
		return strings.Split(text, "\n")
	}
	log.Critf("Split called with invalid mode %d", int(mode))
	return nil
}

// Join renders elements back as text, the inverse of [Split] up to
// whitespace normalization.
func Join(mode Mode, elems []string) string {
	switch mode {
	case Words:
		return strings.Join(elems, " ")
	case Lines:
		return strings.Join(elems, "\n")
	default:
		return strings.Join(elems, "")
	}
}

var gzipMagic = []byte{0x1f, 0x8b}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var errs []error
	for _, c := range r.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// Open opens path for reading, "-" being stdin. Gzip compressed content is
// detected by its magic bytes and decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return wrap(path, io.NopCloser(os.Stdin))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return wrap(path, f)
}

func wrap(path string, f io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReader(f)
	head, err := br.Peek(len(gzipMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if !bytes.Equal(head, gzipMagic) {
		return &readCloser{Reader: br, closers: []io.Closer{f}}, nil
	}
	zr, err := gzip.NewReader(br)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.LogVf("%s: gzip compressed input", path)
	return &readCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil
}

// ReadFile returns the (decompressed) content of path.
func ReadFile(path string) (string, error) {
	r, err := Open(path)
	if err != nil {
		return "", err
	}
	defer r.Close()
	return readAll(path, r)
}

// Read returns the (decompressed) content of r, name is used in errors.
func Read(name string, r io.Reader) (string, error) {
	rc, err := wrap(name, io.NopCloser(r))
	if err != nil {
		return "", err
	}
	defer rc.Close()
	return readAll(name, rc)
}

func readAll(name string, r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	log.LogVf("read %d bytes from %s", len(b), name)
	return string(b), nil
}
