// Released under an MIT license. See LICENSE.

// Package stream provides starlisp's character stream type. A stream is
// an input stream, an output stream or, for the standard streams, a
// pairing of the two.
package stream

import (
	"bufio"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/michaelmacinnis/starlisp/internal/common/errs"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/conduit"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/starlisp/internal/common/struct/loc"
)

const name = "stream"

// Directions accepted by Open.
const (
	In  = "in"
	Out = "out"
)

// T (stream) is a character stream.
type T struct {
	back   []rune
	closed bool
	closer io.Closer
	eof    bool
	r      io.RuneReader
	s      *strings.Builder
	source loc.T
	w      io.Writer
}

type stream = T

// FromString creates an input stream that reads the characters of s.
func FromString(s string) *stream {
	return &stream{
		r:      strings.NewReader(s),
		source: loc.T{Line: 1, Name: "string"},
	}
}

// New creates a stream called label. Either r or w may be nil.
func New(label string, r io.Reader, w io.Writer) *stream {
	s := &stream{
		source: loc.T{Line: 1, Name: label},
		w:      w,
	}

	if r != nil {
		s.r = reader(r)
	}

	return s
}

// Open opens the file at path for reading (direction In) or writing
// (direction Out). Input files are decoded as UTF-8 and a leading byte
// order mark is discarded.
func Open(path, direction string) (*stream, error) {
	switch direction {
	case In:
		f, err := os.Open(path)
		if err != nil {
			return nil, errs.Wrap(errs.IO, err, "")
		}

		d := transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

		return &stream{
			closer: f,
			r:      bufio.NewReader(d),
			source: loc.T{Line: 1, Name: path},
		}, nil

	case Out:
		f, err := os.Create(path)
		if err != nil {
			return nil, errs.Wrap(errs.IO, err, "")
		}

		return &stream{
			closer: f,
			source: loc.T{Name: path},
			w:      f,
		}, nil
	}

	return nil, errs.New(errs.IO, "unknown direction %q", direction)
}

// StringOutput creates an output stream that accumulates text in memory.
func StringOutput() *stream {
	b := &strings.Builder{}

	return &stream{
		s:      b,
		source: loc.T{Name: "string"},
		w:      b,
	}
}

// Back pushes r back onto the stream. It will be the next rune returned.
func (s *stream) Back(r rune) {
	s.back = append(s.back, r)
	s.eof = false

	if r == '\n' {
		s.source.Line--
	} else if s.source.Char > 0 {
		s.source.Char--
	}
}

// Close closes the stream. Closing a closed stream is a no-op.
func (s *stream) Close() error {
	if s.closed {
		return nil
	}

	s.closed = true

	if s.closer == nil {
		return nil
	}

	err := s.closer.Close()
	if err != nil {
		return errs.Wrap(errs.IO, err, "")
	}

	return nil
}

// Closed returns true if the stream has been closed.
func (s *stream) Closed() bool {
	return s.closed
}

// Contents returns the text accumulated by a string output stream and
// resets the accumulated text to empty.
func (s *stream) Contents() (string, error) {
	if s.s == nil {
		return "", errs.New(errs.Type, "%s is not a string output stream", s.Literal())
	}

	v := s.s.String()
	s.s.Reset()

	return v, nil
}

// EOF returns true if no more characters can be read from the stream.
func (s *stream) EOF() bool {
	if len(s.back) > 0 {
		return false
	}

	if s.eof || s.closed || s.r == nil {
		return true
	}

	r, err := s.Next()
	if err != nil {
		return true
	}

	s.Back(r)

	return false
}

// Equal returns true if c is the same stream.
func (s *stream) Equal(c cell.I) bool {
	o, ok := c.(*stream)

	return ok && o == s
}

// Input returns true if characters can be read from the stream.
func (s *stream) Input() bool {
	return s.r != nil
}

// Literal returns the printed representation of the stream s.
func (s *stream) Literal() string {
	return "#<" + name + " " + s.source.Name + ">"
}

// Loc returns the stream's current position.
func (s *stream) Loc() *loc.T {
	l := s.source

	return &l
}

// Name returns the type name for streams.
func (s *stream) Name() string {
	return name
}

// Next returns the next rune. It returns io.EOF at the end of the stream.
func (s *stream) Next() (rune, error) {
	if s.closed {
		return 0, errs.New(errs.IO, "%s is closed", s.Literal())
	}

	if s.r == nil {
		return 0, errs.New(errs.IO, "%s is not an input stream", s.Literal())
	}

	var r rune

	if n := len(s.back); n > 0 {
		r = s.back[n-1]
		s.back = s.back[:n-1]
	} else {
		if s.eof {
			return 0, io.EOF
		}

		var err error

		r, _, err = s.r.ReadRune()
		if err == io.EOF {
			s.eof = true

			return 0, io.EOF
		} else if err != nil {
			return 0, errs.Wrap(errs.IO, err, "")
		}
	}

	if r == '\n' {
		s.source.Line++
		s.source.Char = 0
	} else {
		s.source.Char++
	}

	return r, nil
}

// Output returns true if characters can be written to the stream.
func (s *stream) Output() bool {
	return s.w != nil
}

// Write writes text to the stream.
func (s *stream) Write(text string) error {
	if s.closed {
		return errs.New(errs.IO, "%s is closed", s.Literal())
	}

	if s.w == nil {
		return errs.New(errs.IO, "%s is not an output stream", s.Literal())
	}

	_, err := io.WriteString(s.w, text)
	if err != nil {
		return errs.Wrap(errs.IO, err, "")
	}

	return nil
}

// Is returns true if c is a stream.
func Is(c cell.I) bool {
	_, ok := c.(*stream)

	return ok
}

func reader(r io.Reader) io.RuneReader {
	if rr, ok := r.(io.RuneReader); ok {
		return rr
	}

	return bufio.NewReader(r)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t stream

	// The stream type is a cell.
	_ = cell.I(&t)

	// The stream type has a printed representation.
	_ = literal.I(&t)

	// The stream type is a character source.
	_ = conduit.Source(&t)

	// The stream type is a character sink.
	_ = conduit.Sink(&t)
}
