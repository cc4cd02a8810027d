// Released under an MIT license. See LICENSE.

// Package hashable defines the interface for starlisp types with a
// structural hash (sxhash).
package hashable

import (
	"hash/fnv"

	"github.com/michaelmacinnis/starlisp/internal/common/interface/cell"
)

// I (hashable) is anything with a hash consistent with its Equal method.
type I interface {
	Hash() uint32
}

// Value returns the hash for c. Cells that only compare by identity
// fall back to a hash of their type name.
func Value(c cell.I) uint32 {
	if h, ok := c.(I); ok {
		return h.Hash()
	}

	return String(c.Name())
}

// String hashes the text s.
func String(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))

	return h.Sum32()
}
