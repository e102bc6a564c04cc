package console

import (
	"bytes"
	"os"
	"testing"

	"github.com/bdwalton/termcore/detect"
)

func TestLinuxSequences(t *testing.T) {
	cases := []struct {
		f    func(l *Linux)
		want string
	}{
		{func(l *Linux) { l.SetBeep(DEF_BEEP_HZ, DEF_BEEP_MS) }, "\x1b[10;220]\x1b[11;100]"},
		{func(l *Linux) { l.SetBeep(10, 100) }, ""},
		{func(l *Linux) { l.SetBeep(220, 5000) }, ""},
		{func(l *Linux) { l.ResetBeep() }, "\x1b[10]\x1b[11]"},
		{func(l *Linux) { l.SetCursorStyle(CursorUnderline) }, "\x1b[?2c"},
		{func(l *Linux) { l.SetCursorStyle(CursorBlock) }, "\x1b[?6c"},
		{func(l *Linux) { l.SetCursorStyle(CursorDefault) }, "\x1b[?0c"},
		{func(l *Linux) { l.SetPalette(1, 0xaa, 0, 0x10) }, "\x1b]P1aa0010"},
		{func(l *Linux) { l.SetPalette(15, 255, 255, 255) }, "\x1b]PFffffff"},
		{func(l *Linux) { l.SetPalette(16, 255, 255, 255) }, ""},
		// No colormap was saved, so the default palette comes back.
		{func(l *Linux) { l.ResetColorMap() }, "\x1b]R"},
	}

	for i, c := range cases {
		var buf bytes.Buffer
		l := NewLinux(&buf, ^uintptr(0))
		c.f(l)
		if got := buf.String(); got != c.want {
			t.Errorf("%d: Got %q, wanted %q", i, got, c.want)
		}
	}
}

func TestLinuxFonts(t *testing.T) {
	l := NewLinux(&bytes.Buffer{}, ^uintptr(0))
	cases := []struct {
		f    FontKind
		want bool
	}{
		{FontVGA, false},
		{FontNew, false},
		{FontNormal, true},
	}

	for i, c := range cases {
		if got := l.LoadFont(c.f); got != c.want {
			t.Errorf("%d: Got %t, wanted %t", i, got, c.want)
		}
	}
}

func TestXtermSequences(t *testing.T) {
	var buf bytes.Buffer
	x := NewXterm(&buf)

	cases := []struct {
		f    func()
		want string
	}{
		{func() { x.LoadFont(FontNormal) }, ""},
		{func() { x.LoadFont(FontVGA) }, "\x1b]50;vga\x07"},
		{func() { x.LoadFont(FontVGA) }, ""},
		{func() { x.LoadFont(FontNew) }, "\x1b]50;8x16graph\x07"},
		{func() { x.LoadFont(FontNormal) }, "\x1b]50;#0\x07"},
		{func() { x.SetCursorStyle(CursorBlock) }, "\x1b[2 q"},
		{func() { x.SetCursorStyle(CursorDefault) }, "\x1b[0 q"},
		{func() { x.SetPalette(3, 1, 2, 3) }, "\x1b]4;3;rgb:01/02/03\x07"},
		{func() { x.ResetColorMap() }, "\x1b]104\x07"},
		{func() { x.SetBeep(DEF_BEEP_HZ, DEF_BEEP_MS) }, ""},
	}

	for i, c := range cases {
		buf.Reset()
		c.f()
		if got := buf.String(); got != c.want {
			t.Errorf("%d: Got %q, wanted %q", i, got, c.want)
		}
	}
}

func TestNull(t *testing.T) {
	var d Driver = Null{}
	if d.SetPalette(1, 2, 3, 4) {
		t.Errorf("Null accepted a palette change")
	}
	if d.LoadFont(FontVGA) || !d.LoadFont(FontNormal) {
		t.Errorf("Null font support wrong")
	}
}

func TestDetect(t *testing.T) {
	cases := []struct {
		f    detect.Family
		want string
	}{
		{detect.Xterm, "xterm"},
		{detect.Gnome | detect.Xterm, "null"},
		{detect.ANSI, "null"},
		{0, "null"},
	}

	for i, c := range cases {
		d := Detect(detect.Identity{Families: c.f}, os.Stdout)
		if d.Name() != c.want {
			t.Errorf("%d: Got %q, wanted %q", i, d.Name(), c.want)
		}
	}
}
