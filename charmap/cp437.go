package charmap

import (
	xcharmap "golang.org/x/text/encoding/charmap"
)

// The control range of code page 437 is printed as glyphs by PC
// fonts. x/text decodes it as plain control codes, so we overlay
// the glyph table for 0x01..0x1f.
var cp437Controls = [0x20]rune{
	0x0000, 0x263a, 0x263b, 0x2665, 0x2666, 0x2663, 0x2660, 0x2022,
	0x25d8, 0x25cb, 0x25d9, 0x2642, 0x2640, 0x266a, 0x266b, 0x263c,
	0x25ba, 0x25c4, 0x2195, 0x203c, 0x00b6, 0x00a7, 0x25ac, 0x21a8,
	0x2191, 0x2193, 0x2192, 0x2190, 0x221f, 0x2194, 0x25b2, 0x25bc,
}

var (
	cp437ToUCS [256]rune
	ucsToCP437 map[rune]byte
)

func init() {
	ucsToCP437 = make(map[rune]byte, 256)
	for i := 0; i < 256; i++ {
		b := byte(i)
		var r rune
		if b < 0x20 {
			r = cp437Controls[b]
		} else {
			r = xcharmap.CodePage437.DecodeByte(b)
		}
		cp437ToUCS[b] = r
		ucsToCP437[r] = b
	}
}

// CP437ToUnicode returns the glyph code page 437 shows for b.
func CP437ToUnicode(b byte) rune {
	return cp437ToUCS[b]
}

// UnicodeToCP437 is the inverse of CP437ToUnicode.
func UnicodeToCP437(r rune) (byte, bool) {
	b, ok := ucsToCP437[r]
	return b, ok
}
