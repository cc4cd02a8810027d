// Released under an MIT license. See LICENSE.

// Package table provides starlisp's symbol table.
package table

import (
	"strconv"
	"sync"

	"github.com/michaelmacinnis/starlisp/internal/common/type/sym"
)

// T (table) maps names to interned symbols.
type T struct {
	sync.RWMutex
	m     map[string]*sym.T
	order []*sym.T
	count int
}

type table = T

// New creates a new, empty symbol table.
func New() *table {
	return &table{m: map[string]*sym.T{}}
}

// Find returns the symbol interned as k, or nil.
func (t *table) Find(k string) *sym.T {
	if t == nil {
		return nil
	}

	t.RLock()
	defer t.RUnlock()

	return t.m[k]
}

// Gensym creates a fresh uninterned symbol.
func (t *table) Gensym() *sym.T {
	t.Lock()
	defer t.Unlock()

	t.count++

	return sym.New("G" + strconv.Itoa(t.count))
}

// Intern returns the symbol named k, creating it if necessary.
// Repeated calls with the same name return the same symbol.
func (t *table) Intern(k string) *sym.T {
	t.Lock()
	defer t.Unlock()

	if s, ok := t.m[k]; ok {
		return s
	}

	s := sym.New(k)
	t.add(s)

	return s
}

// InternSymbol registers the uninterned symbol s under its name. If a
// symbol with that name already exists it is returned instead.
func (t *table) InternSymbol(s *sym.T) *sym.T {
	t.Lock()
	defer t.Unlock()

	if e, ok := t.m[s.String()]; ok {
		return e
	}

	t.add(s)

	return s
}

// Size returns the number of interned symbols.
func (t *table) Size() int {
	t.RLock()
	defer t.RUnlock()

	return len(t.order)
}

// Symbols returns every interned symbol, most recently interned first.
func (t *table) Symbols() []*sym.T {
	t.RLock()
	defer t.RUnlock()

	n := len(t.order)
	s := make([]*sym.T, n)

	for i, v := range t.order {
		s[n-1-i] = v
	}

	return s
}

func (t *table) add(s *sym.T) {
	s.MarkInterned()

	t.m[s.String()] = s
	t.order = append(t.order, s)
}
