// Released under an MIT license. See LICENSE.

package commands

import (
	"io"

	"github.com/michaelmacinnis/starlisp/internal/common/errs"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/starlisp/internal/common/type/char"
	"github.com/michaelmacinnis/starlisp/internal/common/type/pair"
	"github.com/michaelmacinnis/starlisp/internal/common/type/str"
	"github.com/michaelmacinnis/starlisp/internal/common/type/stream"
	"github.com/michaelmacinnis/starlisp/internal/common/validate"
	"github.com/michaelmacinnis/starlisp/internal/reader"
)

func (c *commands) conduits() []entry {
	return []entry{
		{"close", 1, 1, c.close},
		{"eof?", 1, 1, c.eof},
		{"get-output-stream-string", 1, 1, getOutputStreamString},
		{"make-string-input-stream", 1, 1, makeStringInputStream},
		{"make-string-output-stream", 0, 0, makeStringOutputStream},
		{"open", 2, 2, c.open},
		{"prin1", 1, 2, c.prin1},
		{"princ", 1, 2, c.princ},
		{"read", 0, 1, c.read},
		{"read-char", 0, 1, c.readChar},
		{"terpri", 0, 1, c.terpri},
		{"write-char", 1, 2, c.writeChar},
	}
}

// Princ returns the text princ writes for v. Strings and characters are
// written without quoting. Everything else is written as a literal.
func Princ(v cell.I) string {
	switch v := v.(type) {
	case *str.T:
		return v.String()
	case char.T:
		return v.String()
	}

	return literal.String(v)
}

// close returns t if the stream was open.
func (c *commands) close(args []cell.I) (cell.I, error) {
	s, err := validate.Stream("close", args[0])
	if err != nil {
		return nil, err
	}

	if s.Closed() {
		return pair.Null, nil
	}

	err = s.Close()
	if err != nil {
		return nil, err
	}

	return c.t, nil
}

func (c *commands) eof(args []cell.I) (cell.I, error) {
	s, err := validate.Stream("eof?", args[0])
	if err != nil {
		return nil, err
	}

	return c.bool(s.EOF()), nil
}

func (c *commands) open(args []cell.I) (cell.I, error) {
	path, err := validate.String("open", args[0])
	if err != nil {
		return nil, err
	}

	var direction string

	switch args[1] {
	case c.in:
		direction = stream.In
	case c.out:
		direction = stream.Out
	default:
		return nil, errs.New(errs.Type, "open: expected in or out, passed %s", literal.String(args[1]))
	}

	s, err := stream.Open(path.String(), direction)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (c *commands) prin1(args []cell.I) (cell.I, error) {
	return c.print("prin1", args, literal.String(args[0]))
}

func (c *commands) princ(args []cell.I) (cell.I, error) {
	return c.print("princ", args, Princ(args[0]))
}

func (c *commands) print(label string, args []cell.I, text string) (cell.I, error) {
	s, err := c.stream(label, args, 1, c.stdout)
	if err != nil {
		return nil, err
	}

	err = s.Write(text)
	if err != nil {
		return nil, err
	}

	return args[0], nil
}

func (c *commands) read(args []cell.I) (cell.I, error) {
	s, err := c.stream("read", args, 0, c.stdin)
	if err != nil {
		return nil, err
	}

	return reader.New(c.task.Table(), s).Read()
}

func (c *commands) readChar(args []cell.I) (cell.I, error) {
	s, err := c.stream("read-char", args, 0, c.stdin)
	if err != nil {
		return nil, err
	}

	r, err := s.Next()
	if err == io.EOF {
		return nil, errs.New(errs.EOF, "end of input on %s", s.Literal())
	} else if err != nil {
		return nil, err
	}

	return char.T(r), nil
}

func (c *commands) terpri(args []cell.I) (cell.I, error) {
	s, err := c.stream("terpri", args, 0, c.stdout)
	if err != nil {
		return nil, err
	}

	err = s.Write("\n")
	if err != nil {
		return nil, err
	}

	return pair.Null, nil
}

func (c *commands) writeChar(args []cell.I) (cell.I, error) {
	ch, err := validate.Char("write-char", args[0])
	if err != nil {
		return nil, err
	}

	s, err := c.stream("write-char", args, 1, c.stdout)
	if err != nil {
		return nil, err
	}

	err = s.Write(ch.String())
	if err != nil {
		return nil, err
	}

	return ch, nil
}

func getOutputStreamString(args []cell.I) (cell.I, error) {
	s, err := validate.Stream("get-output-stream-string", args[0])
	if err != nil {
		return nil, err
	}

	text, err := s.Contents()
	if err != nil {
		return nil, err
	}

	return str.New(text), nil
}

func makeStringInputStream(args []cell.I) (cell.I, error) {
	s, err := validate.String("make-string-input-stream", args[0])
	if err != nil {
		return nil, err
	}

	return stream.FromString(s.String()), nil
}

func makeStringOutputStream(_ []cell.I) (cell.I, error) {
	return stream.StringOutput(), nil
}
