package session

import (
	"log/slog"
	"strconv"

	"github.com/creack/pty"
	"golang.org/x/term"

	"github.com/bdwalton/termcore/capability"
	"github.com/bdwalton/termcore/optimove"
)

const (
	DEF_COLS = 80
	DEF_ROWS = 24
)

// CurrentGeometry returns the terminal size in cells. The size is
// cached and only re-detected when nothing valid is known.
func (s *Session) CurrentGeometry() (int, int) {
	s.geoMux.Lock()
	defer s.geoMux.Unlock()

	if s.size.Width == 0 || s.size.Height == 0 {
		s.setSizeLocked(s.detectGeometry())
	}
	return s.size.Width, s.size.Height
}

// ConsumePendingResize reports whether a resize was signalled since
// the last call. When it was, the geometry has been re-detected.
func (s *Session) ConsumePendingResize() bool {
	if !s.resizePending.CompareAndSwap(true, false) {
		return false
	}

	s.geoMux.Lock()
	defer s.geoMux.Unlock()

	s.setSizeLocked(s.detectGeometry())
	slog.Debug("terminal resized", "width", s.size.Width, "height", s.size.Height)
	return true
}

func (s *Session) setSizeLocked(sz optimove.Size) {
	s.size = sz
	if s.opt != nil {
		s.opt.SetSize(sz)
	}
}

// detectGeometry asks the output device, then the input device, then
// the environment, then the terminal description.
func (s *Session) detectGeometry() optimove.Size {
	if s.out != nil {
		if w, h, err := term.GetSize(int(s.out.Fd())); err == nil && w > 0 && h > 0 {
			return optimove.Size{Width: w, Height: h}
		}
	}

	if s.in != nil {
		if rows, cols, err := pty.Getsize(s.in); err == nil && rows > 0 && cols > 0 {
			return optimove.Size{Width: cols, Height: rows}
		}
	}

	sz := optimove.Size{
		Width:  envSize(s.getenv, "COLUMNS"),
		Height: envSize(s.getenv, "LINES"),
	}

	if s.caps != nil {
		if sz.Width <= 0 {
			sz.Width = s.caps.Number(capability.Columns)
		}
		if sz.Height <= 0 {
			sz.Height = s.caps.Number(capability.Lines)
		}
	}

	if sz.Width <= 0 {
		sz.Width = DEF_COLS
	}
	if sz.Height <= 0 {
		sz.Height = DEF_ROWS
	}
	return sz
}

func envSize(getenv func(string) string, name string) int {
	v := getenv(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Debug("ignoring bad size in environment", "var", name, "value", v)
		return 0
	}
	return n
}
