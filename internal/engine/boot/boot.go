// Released under an MIT license. See LICENSE.

// Package boot provides what is necessary for bootstrapping starlisp.
package boot

import _ "embed" // Blank import required by embed.

//go:embed boot.lisp
var script string //nolint:gochecknoglobals

// Script returns the boot script for starlisp.
func Script() string {
	return script
}
