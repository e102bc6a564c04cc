package console

import (
	"fmt"
	"io"
)

// Fonts xterm can switch to with OSC 50. "#0" is the default entry
// of xterm's font menu, the font the user started with.
const (
	XTERM_FONT_NORMAL = "#0"
	XTERM_FONT_VGA    = "vga"
	XTERM_FONT_NEW    = "8x16graph"
)

// Xterm drives xterm compatible emulators with OSC and DECSCUSR
// sequences. It has no bell control.
type Xterm struct {
	out  io.Writer
	font FontKind
}

func NewXterm(out io.Writer) *Xterm {
	return &Xterm{out: out}
}

func (x *Xterm) Name() string {
	return "xterm"
}

func (x *Xterm) LoadFont(f FontKind) bool {
	name := XTERM_FONT_NORMAL
	switch f {
	case FontVGA:
		name = XTERM_FONT_VGA
	case FontNew:
		name = XTERM_FONT_NEW
	}
	if f == x.font {
		return true
	}
	write(x.out, fmt.Sprintf("\x1b]50;%s\x07", name))
	x.font = f
	return true
}

func (x *Xterm) SetCursorStyle(s CursorStyle) {
	n := 0
	switch s {
	case CursorUnderline:
		n = 3 // blinking underline
	case CursorBlock:
		n = 2 // steady block
	case CursorBar:
		n = 6 // steady bar
	}
	write(x.out, fmt.Sprintf("\x1b[%d q", n))
}

func (x *Xterm) SetPalette(index, r, g, b int) bool {
	if index < 0 || index > 255 {
		return false
	}
	write(x.out, fmt.Sprintf("\x1b]4;%d;rgb:%02x/%02x/%02x\x07", index, r&0xff, g&0xff, b&0xff))
	return true
}

func (x *Xterm) SetBeep(_, _ int) {}

func (x *Xterm) ResetBeep() {}

func (x *Xterm) InitCharMap() {}

func (x *Xterm) SaveColorMap() {}

func (x *Xterm) ResetColorMap() {
	write(x.out, "\x1b]104\x07")
}
