// Released under an MIT license. See LICENSE.

// Package conduit defines the character source and sink contracts used by
// the reader and the output primitives.
package conduit

// Source is a character source with pushback. Next returns io.EOF once the
// source is exhausted. Back may be called repeatedly; characters are
// returned by Next in the reverse order they were pushed back.
type Source interface {
	Next() (rune, error)
	Back(r rune)
}

// Sink accepts text.
type Sink interface {
	Write(s string) error
}
