package charmap

import (
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

// Width is the number of cells r occupies.
func Width(r rune) int {
	return runewidth.RuneWidth(r)
}

// Normalize composes combining sequences so that each rune we encode
// maps onto one glyph where the terminal has a precomposed form.
func Normalize(s string) string {
	return norm.NFC.String(s)
}
