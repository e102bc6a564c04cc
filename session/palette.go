package session

import "github.com/bdwalton/termcore/capability"

// RGB is one palette entry, 0-255 per channel.
type RGB struct {
	R, G, B int
}

// DEFAULT_PALETTE is loaded into terminals that let us redefine their
// colors, so that every terminal shows the same 16 colors.
var DEFAULT_PALETTE = [16]RGB{
	{0x00, 0x00, 0x00}, // black
	{0xa0, 0x15, 0x15}, // red
	{0x21, 0x8b, 0x21}, // green
	{0xa0, 0x70, 0x18}, // brown
	{0x22, 0x34, 0x8f}, // blue
	{0x8e, 0x2f, 0x8e}, // magenta
	{0x30, 0x82, 0x9b}, // cyan
	{0xbc, 0xbc, 0xbc}, // light gray
	{0x50, 0x50, 0x50}, // dark gray
	{0xef, 0x52, 0x52}, // light red
	{0x5d, 0xd6, 0x5d}, // light green
	{0xfb, 0xe1, 0x50}, // yellow
	{0x68, 0x7d, 0xe5}, // light blue
	{0xe0, 0x6b, 0xe0}, // light magenta
	{0x6c, 0xc6, 0xe6}, // light cyan
	{0xff, 0xff, 0xff}, // white
}

// redefinePalette loads DEFAULT_PALETTE, or its first 8 entries on
// terminals with fewer than 16 colors. Called with the write lock
// held.
func (s *Session) redefinePalette() {
	if !s.CanChangeColorPalette() {
		return
	}

	s.resetColorMapLocked()
	s.driver.SaveColorMap()

	n := len(DEFAULT_PALETTE)
	if s.attr.MaxColors < 16 {
		n = 8
	}
	for i, c := range DEFAULT_PALETTE[:n] {
		if s.setPaletteLocked(i, c.R, c.G, c.B) {
			s.paletteChanged = true
		}
	}
}

// scaleColor maps a 0-255 channel onto the 0-1000 range initc and
// initp take.
func scaleColor(v int) int {
	return (v & 0xff) * 1001 / 256
}

// setPaletteLocked redefines one color with initc or initp, falling
// back to the console driver when the terminal has neither. Called
// with the write lock held.
func (s *Session) setPaletteLocked(index, r, g, b int) bool {
	rr, gg, bb := scaleColor(r), scaleColor(g), scaleColor(b)

	if seq, ok := s.caps.String(capability.InitializeColor); ok {
		s.puts(s.caps.Instantiate(seq, index, rr, gg, bb))
		return true
	}
	if seq, ok := s.caps.String(capability.InitializePair); ok {
		s.puts(s.caps.Instantiate(seq, index, 0, 0, 0, rr, gg, bb))
		return true
	}
	return s.driver.SetPalette(index, r, g, b)
}

// resetColorMapLocked puts the terminal's own colors back: oc, or the
// console driver without it, then op.
func (s *Session) resetColorMapLocked() {
	if s.attr.OrigColors != "" {
		s.puts(s.attr.OrigColors)
	} else {
		s.driver.ResetColorMap()
	}
	s.puts(s.attr.OrigPair)
}
