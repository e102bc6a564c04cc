package session

import (
	"log/slog"

	"github.com/muesli/termenv"

	"github.com/bdwalton/termcore/capability"
	"github.com/bdwalton/termcore/charmap"
	"github.com/bdwalton/termcore/console"
	"github.com/bdwalton/termcore/detect"
	"github.com/bdwalton/termcore/optimove"
)

// XTWINOPS requests to push and pop the window and icon title.
const (
	TITLE_PUSH = "\x1b[22;0t"
	TITLE_POP  = "\x1b[23;0t"
)

// puts writes seq, honouring padding. Callers hold s.mux.
func (s *Session) puts(seq string) {
	if seq == "" || s.out == nil {
		return
	}
	capability.Puts(s.out, seq)
}

func (s *Session) putCap(c capability.Cap) {
	if seq, ok := s.caps.String(c); ok {
		s.puts(seq)
	}
}

// Write sends p to the terminal as is.
func (s *Session) Write(p []byte) (int, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	n, err := s.out.Write(p)
	if err != nil {
		slog.Debug("terminal write failed", "err", err)
	}
	return n, err
}

// MoveCursorBytes returns the cheapest sequence that takes the
// cursor from one cell to another, or nil before Initialize or when
// to is off screen.
func (s *Session) MoveCursorBytes(from, to optimove.Point) []byte {
	if s.opt == nil {
		return nil
	}
	return s.opt.Move(from, to)
}

// MoveCursor writes the movement from one cell to another.
func (s *Session) MoveCursor(from, to optimove.Point) {
	b := s.MoveCursorBytes(from, to)
	if len(b) == 0 {
		return
	}

	s.mux.Lock()
	defer s.mux.Unlock()
	s.puts(string(b))
}

func (s *Session) saveTitle() {
	if !s.id.Has(detect.Xterm) {
		return
	}
	s.puts(TITLE_PUSH)
	s.titleSaved = true
}

func (s *Session) restoreTitle() {
	if !s.titleSaved {
		return
	}
	s.puts(TITLE_POP)
	s.titleSaved = false
}

// SetTitle changes the window title on terminals that have one. The
// original title comes back on Finish.
func (s *Session) SetTitle(title string) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.st != stateActive || !s.id.Has(detect.Xterm|detect.Rxvt) {
		return
	}
	termenv.NewOutput(s.out).SetWindowTitle(title)
}

func (s *Session) ShowCursor() {
	s.mux.Lock()
	defer s.mux.Unlock()

	s.showCursorLocked()
}

func (s *Session) showCursorLocked() {
	if s.caps == nil {
		return
	}
	s.putCap(capability.CursorNormal)
	s.cursorHidden = false
}

func (s *Session) HideCursor() {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.caps == nil {
		return
	}
	s.putCap(capability.CursorInvisible)
	s.cursorHidden = true
}

func (s *Session) CursorHidden() bool {
	s.mux.Lock()
	defer s.mux.Unlock()

	return s.cursorHidden
}

// SetVGAFont switches to the VGA font and PC encoding. It reports
// false when the terminal can't do it.
func (s *Session) SetVGAFont() bool {
	return s.switchFont(console.FontVGA)
}

// SetNewFont switches to the graphics font and PC encoding.
func (s *Session) SetNewFont() bool {
	return s.switchFont(console.FontNew)
}

// SetNormalFont returns to the font the terminal started with. The
// encoding stays as it is.
func (s *Session) SetNormalFont() bool {
	return s.switchFont(console.FontNormal)
}

func (s *Session) switchFont(f console.FontKind) bool {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.st != stateActive {
		return false
	}
	if f != console.FontNormal && s.id.NoFontSwitching() {
		slog.Debug("terminal can't switch fonts", "font", f)
		return false
	}
	if !s.loadFont(f) {
		return false
	}
	if f != console.FontNormal {
		s.setEncoding(charmap.PC)
	}
	return true
}

// loadFont asks the console driver for f. Callers hold s.mux.
func (s *Session) loadFont(f console.FontKind) bool {
	if s.driver == nil || !s.driver.LoadFont(f) {
		slog.Debug("couldn't load font", "font", f)
		return false
	}
	s.font = f
	return true
}

func (s *Session) Font() console.FontKind {
	s.mux.Lock()
	defer s.mux.Unlock()

	return s.font
}

func (s *Session) Beep() {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.caps == nil {
		return
	}
	if seq, ok := s.caps.String(capability.Bell); ok {
		s.puts(seq)
		return
	}
	s.puts("\a")
}

// CanChangeColorPalette reports whether the terminal lets us redefine
// its colors. Some terminals claim to but get it wrong.
func (s *Session) CanChangeColorPalette() bool {
	if s.caps == nil || s.id.NoPaletteChange() {
		return false
	}
	if s.caps.Bool(capability.CanChange) {
		return true
	}
	if _, ok := s.caps.String(capability.InitializeColor); ok {
		return true
	}
	_, ok := s.caps.String(capability.InitializePair)
	return ok
}

// SetPalette redefines one color. The terminal's own palette is put
// back by Finish.
func (s *Session) SetPalette(index, r, g, b int) bool {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.st != stateActive || !s.CanChangeColorPalette() {
		return false
	}
	if !s.setPaletteLocked(index, r, g, b) {
		return false
	}
	s.paletteChanged = true
	return true
}

// SetExitMessage sets a message printed to stderr once the terminal
// has been restored.
func (s *Session) SetExitMessage(msg string) {
	s.mux.Lock()
	defer s.mux.Unlock()

	s.exitMsg = msg
}

// Recover restores the terminal when a panic unwinds through it and
// then lets the panic continue. Use it as:
//
//	defer s.Recover()
func (s *Session) Recover() {
	if r := recover(); r != nil {
		s.Finish()
		panic(r)
	}
}

// setEncoding switches the output encoding and emitter.
func (s *Session) setEncoding(enc charmap.Encoding) {
	s.encMux.Lock()
	defer s.encMux.Unlock()

	s.enc = enc
	s.emitter = charmap.EmitterFor(enc, s.utf8Glyphs)
}

func (s *Session) Encoding() charmap.Encoding {
	s.encMux.RLock()
	defer s.encMux.RUnlock()

	return s.enc
}

func (s *Session) Emitter() charmap.Emitter {
	s.encMux.RLock()
	defer s.encMux.RUnlock()

	return s.emitter
}

func (s *Session) UTF8Console() bool {
	return s.utf8Console
}

func (s *Session) Identity() detect.Identity {
	return s.id
}

func (s *Session) Optimizer() *optimove.Optimizer {
	return s.opt
}

func (s *Session) AttrEnv() AttrEnv {
	return s.attr
}

func (s *Session) Table() *charmap.Table {
	return s.table
}

// Capabilities is the terminal description after every quirk and
// override has been applied.
func (s *Session) Capabilities() capability.Source {
	if s.caps == nil {
		return nil
	}
	return s.caps
}

func (s *Session) Baud() int {
	return s.baud
}

func (s *Session) DevicePath() string {
	return s.devicePath
}

func (s *Session) Locale() string {
	return s.locale
}

func (s *Session) Driver() console.Driver {
	return s.driver
}

// Active reports whether the session currently owns the terminal.
func (s *Session) Active() bool {
	s.mux.Lock()
	defer s.mux.Unlock()

	return s.st == stateActive
}

// ClearScreen erases the display and homes the cursor.
func (s *Session) ClearScreen() {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.st != stateActive {
		return
	}
	s.putCap(capability.ClearScreen)
}

// MoveCursorThrough is MoveCursorBytes for a move that may reprint
// row, the cells currently shown on the cursor's row. Cells drawn
// with attributes or a character set other than the current ones
// must be 0 in row.
func (s *Session) MoveCursorThrough(from, to optimove.Point, row []rune) []byte {
	if s.opt == nil {
		return nil
	}
	return s.opt.MoveThrough(from, to, row)
}
