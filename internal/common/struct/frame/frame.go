// Released under an MIT license. See LICENSE.

// Package frame provides starlisp's binding stack. Every symbol has a
// single value cell. Before a cell is overwritten by a binding its old
// contents are pushed here so they can be restored when the form that
// introduced the binding finishes.
package frame

import (
	"github.com/michaelmacinnis/starlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/starlisp/internal/common/type/sym"
)

// An entry with a nil sym is a marker.
type entry struct {
	old cell.I
	sym *sym.T
}

// T (frame) is a stack of saved bindings separated by markers.
type T struct {
	entries []entry
	markers int
}

type frame = T

// New creates an empty binding stack.
func New() *frame {
	return &frame{}
}

// Bind saves the current value of s and sets it to v. The old value is
// saved only once for each symbol above the most recent marker so that
// unwinding restores the value s had when the marker was pushed.
func (f *frame) Bind(s *sym.T, v cell.I) {
	if !f.saved(s) {
		f.entries = append(f.entries, entry{old: s.Value(), sym: s})
	}

	s.Set(v)
}

// Depth returns the number of markers on the stack.
func (f *frame) Depth() int {
	return f.markers
}

// Len returns the number of entries, including markers, on the stack.
func (f *frame) Len() int {
	return len(f.entries)
}

// Mark pushes a marker.
func (f *frame) Mark() {
	f.entries = append(f.entries, entry{})
	f.markers++
}

// Unwind restores every saved binding above the most recent marker, most
// recent first, and then pops the marker. Unwinding an unmarked stack is
// a no-op.
func (f *frame) Unwind() {
	if f.markers == 0 {
		return
	}

	i := len(f.entries) - 1
	for ; f.entries[i].sym != nil; i-- {
		e := f.entries[i]
		e.sym.Set(e.old)
	}

	for j := i; j < len(f.entries); j++ {
		f.entries[j] = entry{}
	}

	f.entries = f.entries[:i]
	f.markers--
}

func (f *frame) saved(s *sym.T) bool {
	for i := len(f.entries) - 1; i >= 0; i-- {
		e := f.entries[i]
		if e.sym == nil {
			return false
		}

		if e.sym == s {
			return true
		}
	}

	return false
}
