package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/bdwalton/termcore/optimove"
	"github.com/bdwalton/termcore/session"
)

const (
	DEMO_STEP  = 50 * time.Millisecond
	DEMO_INSET = 2
	DEMO_TEXT  = "Press any key"
)

// demo draws a frame and walks a marker around inside it, letting
// the optimizer pick every movement.
type demo struct {
	s   *session.Session
	pos optimove.Point
}

func runDemo(s *session.Session) error {
	d := &demo{s: s}

	s.SetTitle("termcore demo")
	s.HideCursor()
	defer s.ShowCursor()

	keys := make(chan struct{}, 1)
	go waitForKey(os.Stdin, keys)

	ticker := time.NewTicker(DEMO_STEP)
	defer ticker.Stop()

	w, h := s.CurrentGeometry()
	path := d.draw(w, h)
	prev := -1
	for i := 0; ; i++ {
		select {
		case <-keys:
			return nil
		case <-ticker.C:
		}

		if s.ConsumePendingResize() {
			w, h = s.CurrentGeometry()
			path = d.draw(w, h)
			prev = -1
		}
		if len(path) == 0 {
			continue
		}

		if prev >= 0 {
			d.put(path[prev], ' ')
		}
		prev = i % len(path)
		d.put(path[prev], '●')
	}
}

// draw clears the screen, draws the frame and returns the path the
// marker follows.
func (d *demo) draw(w, h int) []optimove.Point {
	d.s.ClearScreen()
	d.pos = optimove.Point{}

	if w < 2 || h < 2 {
		return nil
	}

	hline := strings.Repeat("─", w-2)
	d.text(optimove.Point{X: 0, Y: 0}, "┌"+hline+"┐")
	for y := 1; y < h-1; y++ {
		d.text(optimove.Point{X: 0, Y: y}, "│")
		d.text(optimove.Point{X: w - 1, Y: y}, "│")
	}

	// Writing the last cell scrolls terminals without xenl.
	bottom := "└" + hline
	if env := d.s.Optimizer().Env(); env.EatNewlineGlitch || !env.AutoRightMargin {
		bottom += "┘"
	}
	d.text(optimove.Point{X: 0, Y: h - 1}, bottom)

	if x := (w - len(DEMO_TEXT)) / 2; x > 0 && h > 2 {
		d.text(optimove.Point{X: x, Y: h / 2}, DEMO_TEXT)
	}

	return walkPath(w, h, DEMO_INSET)
}

func (d *demo) put(p optimove.Point, r rune) {
	d.text(p, string(r))
}

// text moves to p and writes str, which must fit on the row.
func (d *demo) text(p optimove.Point, str string) {
	d.s.MoveCursor(d.pos, p)
	if _, err := d.s.Write(d.s.EncodeString(str)); err != nil {
		slog.Debug("demo write failed", "err", err)
	}

	n := 0
	for _, r := range str {
		n += d.s.CharWidth(r)
	}
	d.pos = optimove.Point{X: p.X + n, Y: p.Y}
}

// walkPath returns the cells of the rectangle inset cells inside a
// w x h screen, clockwise from the top left.
func walkPath(w, h, inset int) []optimove.Point {
	x0, y0 := inset, inset
	x1, y1 := w-1-inset, h-1-inset
	if x1 < x0 || y1 < y0 {
		return nil
	}

	var path []optimove.Point
	for x := x0; x <= x1; x++ {
		path = append(path, optimove.Point{X: x, Y: y0})
	}
	for y := y0 + 1; y <= y1; y++ {
		path = append(path, optimove.Point{X: x1, Y: y})
	}
	if y1 > y0 {
		for x := x1 - 1; x >= x0; x-- {
			path = append(path, optimove.Point{X: x, Y: y1})
		}
	}
	if x1 > x0 {
		for y := y1 - 1; y > y0; y-- {
			path = append(path, optimove.Point{X: x0, Y: y})
		}
	}
	return path
}

func waitForKey(r io.Reader, keys chan<- struct{}) {
	buf := make([]byte, 1)
	if _, err := r.Read(buf); err != nil {
		slog.Debug("couldn't read key", "err", err)
	}
	keys <- struct{}{}
}
