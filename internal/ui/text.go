package ui

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DisplayWidth returns the number of terminal cells s occupies, counting
// grapheme clusters rather than runes so emoji and combining marks measure
// correctly.
func DisplayWidth(s string) int {
	return uniseg.StringWidth(s)
}

// TruncateString truncates s to at most maxWidth display cells, appending an
// ellipsis when anything was cut.
func TruncateString(s string, maxWidth int) string {
	if DisplayWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "…")
}
