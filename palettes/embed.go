// Package palettes holds the built-in palette files.
package palettes

import _ "embed"

// Default is the palette used when no palette file is configured.
//
//go:embed default.txt
var Default []byte
