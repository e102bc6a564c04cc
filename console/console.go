package console

import (
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/bdwalton/termcore/detect"
)

type FontKind uint8

const (
	FontNormal FontKind = iota
	FontVGA
	FontNew
)

var fontNames = map[FontKind]string{
	FontNormal: "normal",
	FontVGA:    "vga",
	FontNew:    "new",
}

func (f FontKind) String() string {
	return fontNames[f]
}

type CursorStyle uint8

const (
	CursorDefault CursorStyle = iota
	CursorUnderline
	CursorBlock
	CursorBar
)

const (
	DEF_BEEP_HZ = 220
	DEF_BEEP_MS = 100
)

// Driver is the host console subsystem: fonts, palette, bell and
// cursor shape. Unsupported operations are no-ops or return false.
type Driver interface {
	Name() string
	LoadFont(FontKind) bool
	SetCursorStyle(CursorStyle)
	SetPalette(index, r, g, b int) bool
	SetBeep(hz, ms int)
	InitCharMap()
	SaveColorMap()
	ResetColorMap()
	ResetBeep()
}

// Detect picks the driver for the terminal in id. out is the
// terminal device; ioctls are issued against it where supported.
func Detect(id detect.Identity, out *os.File) Driver {
	switch {
	case id.Has(detect.Linux) && runtime.GOOS == "linux":
		return NewLinux(out, out.Fd())
	case id.Has(detect.Xterm) && !id.NoFontSwitching():
		return NewXterm(out)
	default:
		slog.Debug("no console driver for terminal", "term", id.TermType)
		return Null{}
	}
}

// Null is the driver for consoles we know nothing about.
type Null struct{}

func (Null) Name() string                   { return "null" }
func (Null) LoadFont(f FontKind) bool       { return f == FontNormal }
func (Null) SetCursorStyle(CursorStyle)     {}
func (Null) SetPalette(_, _, _, _ int) bool { return false }
func (Null) SetBeep(_, _ int)               {}
func (Null) InitCharMap()                   {}
func (Null) SaveColorMap()                  {}
func (Null) ResetColorMap()                 {}
func (Null) ResetBeep()                     {}

func write(w io.Writer, s string) {
	if _, err := io.WriteString(w, s); err != nil {
		slog.Debug("console write failed", "err", err)
	}
}
