package console

import (
	"fmt"
	"io"
	"log/slog"
)

// Linux console cursor shapes for CSI ? n c.
const (
	LINUX_CURSOR_DEFAULT    = 0
	LINUX_CURSOR_UNDERSCORE = 2
	LINUX_CURSOR_FULL_BLOCK = 6
)

// Linux drives the kernel virtual console through its private escape
// sequences and the colormap ioctls.
type Linux struct {
	out io.Writer
	fd  uintptr

	cmap      [COLORMAP_SIZE]byte
	cmapSaved bool
	font      FontKind
}

func NewLinux(out io.Writer, fd uintptr) *Linux {
	return &Linux{out: out, fd: fd}
}

func (l *Linux) Name() string {
	return "linux"
}

// LoadFont only supports returning to the normal font. No font data is
// shipped to install the VGA or graphics fonts.
func (l *Linux) LoadFont(f FontKind) bool {
	if f != FontNormal {
		slog.Debug("linux console font not available", "font", f)
		return false
	}
	l.font = f
	return true
}

func (l *Linux) SetCursorStyle(s CursorStyle) {
	n := LINUX_CURSOR_DEFAULT
	switch s {
	case CursorUnderline:
		n = LINUX_CURSOR_UNDERSCORE
	case CursorBlock, CursorBar:
		n = LINUX_CURSOR_FULL_BLOCK
	}
	write(l.out, fmt.Sprintf("\x1b[?%dc", n))
}

// SetPalette redefines one of the 16 console colors.
func (l *Linux) SetPalette(index, r, g, b int) bool {
	if index < 0 || index > 15 {
		return false
	}
	write(l.out, fmt.Sprintf("\x1b]P%X%02x%02x%02x", index, r&0xff, g&0xff, b&0xff))
	return true
}

func (l *Linux) SetBeep(hz, ms int) {
	if hz < 21 || hz > 32766 || ms < 0 || ms > 1999 {
		slog.Debug("beep out of range", "hz", hz, "ms", ms)
		return
	}
	write(l.out, fmt.Sprintf("\x1b[10;%d]\x1b[11;%d]", hz, ms))
}

func (l *Linux) ResetBeep() {
	write(l.out, "\x1b[10]\x1b[11]")
}

func (l *Linux) InitCharMap() {
	n, err := unicodeMapEntries(l.fd)
	if err != nil {
		slog.Debug("couldn't read console unicode map", "err", err)
		return
	}
	slog.Debug("console unicode map", "entries", n)
}

func (l *Linux) SaveColorMap() {
	if err := getColorMap(l.fd, &l.cmap); err != nil {
		slog.Debug("couldn't save console colormap", "err", err)
		return
	}
	l.cmapSaved = true
}

// ResetColorMap restores the saved colormap, or the kernel default
// palette when nothing was saved.
func (l *Linux) ResetColorMap() {
	if l.cmapSaved {
		err := putColorMap(l.fd, &l.cmap)
		if err == nil {
			return
		}
		slog.Debug("couldn't restore console colormap", "err", err)
	}
	write(l.out, "\x1b]R")
}
