// Package assets carries the default word list compiled into the binary.
package assets

import (
	_ "embed"
)

// Words is the default comma separated word list.
//
//go:embed words.txt
var Words string
