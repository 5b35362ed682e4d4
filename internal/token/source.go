// Package token implements the source-stream abstraction and the 12-state
// Mealy tokenizer that turns PCB-element wire-format bytes into a stream of
// typed tokens, tracking exact source positions for error reporting.
package token

import (
	"io"
	"os"

	"github.com/laminoid-pcb/sprintplugin/internal/errkind"
)

// Origin pinpoints the first rune of a token's text, for error reporting.
type Origin = errkind.Origin

// Source abstracts a byte source as a single "read next rune" operation,
// the way the original library abstracted file and in-memory sources
// behind one function-pointer pair.
type Source interface {
	// ReadRune returns the next rune and true, or (0, false) at end of input.
	ReadRune() (rune, bool)
	// Close releases any resource the source owns. Safe to call more than
	// once.
	Close() error
}

// stringSource reads runes from an in-memory string.
type stringSource struct {
	runes []rune
	pos   int
}

// NewStringSource wraps an in-memory document. The string is copied into a
// rune slice up front; the source itself is never mutated, so there is
// nothing analogous to the original's "optionally free on close" flag.
func NewStringSource(s string) Source {
	return &stringSource{runes: []rune(s)}
}

func (s *stringSource) ReadRune() (rune, bool) {
	if s.pos >= len(s.runes) {
		return 0, false
	}
	r := s.runes[s.pos]
	s.pos++
	return r, true
}

func (s *stringSource) Close() error { return nil }

// fileSource reads runes from an opened file handle.
type fileSource struct {
	file   *os.File
	reader io.RuneReader
	closer func() error
}

// NewFileSource opens path for reading and wraps it as a Source, closed by
// Close.
func NewFileSource(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &errkind.Error{Kind: errkind.IO, Err: err}
	}
	return WrapReader(f, f.Close), nil
}

// WrapReader adapts an arbitrary io.Reader (already open) into a Source,
// using closeFn to release it on Close. Pass a no-op closeFn if the caller
// retains ownership of r.
func WrapReader(r io.Reader, closeFn func() error) Source {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufReader{r}
	}
	return &fileSource{reader: rr, closer: closeFn}
}

// bufReader adapts a plain io.Reader to io.RuneReader one byte at a time;
// PCB wire documents are ASCII, so byte-at-a-time decoding is sufficient
// and avoids pulling in bufio purely for rune boundary handling.
type bufReader struct {
	r io.Reader
}

func (b bufReader) ReadRune() (rune, int, error) {
	var buf [1]byte
	n, err := b.r.Read(buf[:])
	if n == 0 {
		if err == nil {
			err = io.EOF
		}
		return 0, 0, err
	}
	return rune(buf[0]), 1, nil
}

func (s *fileSource) ReadRune() (rune, bool) {
	r, _, err := s.reader.ReadRune()
	if err != nil {
		return 0, false
	}
	return r, true
}

func (s *fileSource) Close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer()
	s.closer = nil
	return err
}
