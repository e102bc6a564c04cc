// Copyright (c) 2025, Ben Walton
// All rights reserved.

package session

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/bdwalton/termcore/capability"
	"github.com/bdwalton/termcore/charmap"
	"github.com/bdwalton/termcore/console"
	"github.com/bdwalton/termcore/detect"
	"github.com/bdwalton/termcore/optimove"
)

// DEF_BAUD feeds the cost model when the line speed can't be read.
const DEF_BAUD = 38400

var (
	ErrNotATTY       = errors.New("Standard input is not a TTY.")
	ErrAlreadyActive = errors.New("another terminal session is active")
	ErrFinished      = errors.New("terminal session already finished")
	ErrNegativeBaud  = errors.New("baud rate can't be negative")

	errNoBaud = errors.New("no baud rate available")
)

// Only one session may drive the terminal at a time.
var active atomic.Bool

// InitError is a fatal failure while bringing the terminal up.
type InitError struct {
	Op  string
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("couldn't %s: %v", e.Op, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

type state uint8

const (
	stateIdle state = iota
	stateActive
	stateFinished
)

var stateNames = map[state]string{
	stateIdle:     "idle",
	stateActive:   "active",
	stateFinished: "finished",
}

func (st state) String() string {
	return stateNames[st]
}

// Session owns the controlling terminal between Initialize and
// Finish.
type Session struct {
	opts   Options
	in     *os.File
	out    *os.File
	stderr io.Writer
	getenv func(string) string
	exit   func(int)

	// mux serializes every terminal write and the lifecycle.
	mux sync.Mutex
	st  state

	devicePath string
	saved      *term.State
	baud       int
	id         detect.Identity
	caps       *capability.Override
	attr       AttrEnv
	table      *charmap.Table
	driver     console.Driver
	locale     string
	codeset    string
	opt        *optimove.Optimizer

	// encMux guards the encoding, which font switches change.
	encMux      sync.RWMutex
	enc         charmap.Encoding
	baseEnc     charmap.Encoding
	emitter     charmap.Emitter
	utf8Console bool
	utf8Glyphs  bool

	geoMux        sync.Mutex
	size          optimove.Size
	resizePending atomic.Bool

	cursorHidden   bool
	font           console.FontKind
	fontAllowed    bool
	altScreen      bool
	titleSaved     bool
	paletteChanged bool
	exitMsg        string

	sigCh   chan os.Signal
	sigDone chan struct{}
}

// New returns an idle session. Nothing touches the terminal until
// Initialize.
func New(opts Options) *Session {
	opts.setDefaults()
	return &Session{
		opts:   opts,
		in:     opts.In,
		out:    opts.Out,
		stderr: opts.Stderr,
		getenv: opts.Getenv,
		exit:   opts.Exit,
	}
}

// Initialize brings the terminal up. Calling it on an active session
// does nothing.
func (s *Session) Initialize() error {
	s.mux.Lock()
	defer s.mux.Unlock()

	switch s.st {
	case stateActive:
		return nil
	case stateFinished:
		return ErrFinished
	}

	if !term.IsTerminal(int(s.in.Fd())) {
		return ErrNotATTY
	}

	if !active.CompareAndSwap(false, true) {
		return ErrAlreadyActive
	}

	if err := s.initialize(); err != nil {
		active.Store(false)
		return err
	}

	s.st = stateActive
	slog.Info("terminal initialized", "term", s.id.TermType, "encoding", s.enc, "baud", s.baud, "size", fmt.Sprintf("%dx%d", s.size.Width, s.size.Height))
	return nil
}

// initialize runs the bring up steps in order. Everything before the
// first write to the terminal may fail; after that, missing features
// only degrade.
func (s *Session) initialize() error {
	s.devicePath = devicePath(s.out)

	st, err := term.GetState(int(s.in.Fd()))
	if err != nil {
		return &InitError{Op: "save terminal settings", Err: err}
	}
	s.saved = st

	s.baud = s.opts.Baud
	if s.baud <= 0 {
		b, err := outputBaud(int(s.out.Fd()))
		if err != nil || b <= 0 {
			slog.Debug("couldn't read baud rate", "err", err)
			b = DEF_BAUD
		}
		s.baud = b
	}

	s.id = detect.Detect(s.getenv)

	src := s.opts.Source
	if src == nil {
		src, err = capability.Load(s.id.TermFileName)
		if err != nil {
			s.saved = nil
			return &InitError{Op: "load terminal capabilities", Err: err}
		}
	}

	s.caps = capability.NewOverride(src)
	profile := termenv.NewOutput(s.out, termenv.WithEnvironment(envLookup(s.getenv))).EnvColorProfile()
	applyQuirks(s.caps, s.id, profile, s.opts.Caps)

	env := optimove.NewEnv(s.caps)
	s.attr = newAttrEnv(s.caps)

	s.table = charmap.NewTable()
	if acsc, ok := s.caps.String(capability.AcsChars); ok {
		s.table.PatchVT100(acsc)
	}

	s.locale, s.codeset = resolveLocale(s.getenv, s.id)

	_, hasRmacs := s.caps.String(capability.ExitAltCharsetMode)
	res := resolveEncoding(encodingInput{
		id:         s.id,
		outTTY:     term.IsTerminal(int(s.out.Fd())),
		utf8Locale: s.codeset == CODESET_UTF8,
		hasRmacs:   hasRmacs,
		noUTF8ACS:  s.caps.Bool(capability.NoUTF8ACS),
		vgaFont:    s.opts.VGAFont,
		newFont:    s.opts.NewFont,
		requested:  s.opts.Encoding,
	})
	s.utf8Console = res.utf8Console
	s.utf8Glyphs = res.utf8Glyphs
	s.fontAllowed = res.fontAllowed
	initPCCharset(s.caps, s.id, s.utf8Console)
	s.attr = newAttrEnv(s.caps)
	s.setEncoding(res.enc)
	s.baseEnc = res.enc

	if res.enc == charmap.VT100 || res.enc == charmap.PC {
		// A tab prints a glyph in these character sets.
		env = env.WithoutTab()
	}
	if s.opts.NoCursorOptimize {
		env = addressOnly(env)
	}

	s.geoMux.Lock()
	s.size = s.detectGeometry()
	s.opt = optimove.NewOptimizer(env, s.baud, s.size)
	s.geoMux.Unlock()

	if s.opts.Input != nil {
		if err := s.opts.Input.Enable(s.enc == charmap.UTF8); err != nil {
			slog.Debug("couldn't enable input decoding", "err", err)
		}
	}
	s.putCap(capability.KeypadXmit)

	if !s.opts.NoAltScreen {
		if _, ok := s.caps.String(capability.EnterCaMode); ok {
			s.putCap(capability.SaveCursor)
			s.putCap(capability.EnterCaMode)
			s.altScreen = true
		}
	}

	s.putCap(capability.EnaAcs)
	s.saveTitle()

	s.driver = s.opts.Driver
	if s.driver == nil {
		s.driver = console.Detect(s.id, s.out)
	}
	s.driver.InitCharMap()
	switch {
	case s.id.Has(detect.Cygwin):
		s.table.ApplyCygwinQuirks()
	case s.id.Has(detect.TeraTerm):
		s.table.ApplyTeraTermQuirks()
	}

	s.redefinePalette()
	s.driver.SetBeep(console.DEF_BEEP_HZ, console.DEF_BEEP_MS)

	if s.fontAllowed {
		switch {
		case s.opts.VGAFont:
			s.loadFont(console.FontVGA)
		case s.opts.NewFont:
			s.loadFont(console.FontNew)
		}
	}

	s.installSignals()

	if _, err := term.MakeRaw(int(s.in.Fd())); err != nil {
		slog.Debug("couldn't enter raw mode", "err", err)
	}

	return nil
}

// Finish restores the terminal to the state Initialize found it in.
// It is safe to call more than once and on a session that never
// started.
func (s *Session) Finish() {
	s.mux.Lock()
	defer s.mux.Unlock()

	s.finishLocked()
}

func (s *Session) finishLocked() {
	if s.st != stateActive {
		return
	}

	s.stopSignals()
	s.restoreTitle()

	if s.saved != nil {
		if err := term.Restore(int(s.in.Fd()), s.saved); err != nil {
			slog.Debug("couldn't restore terminal settings", "err", err)
		}
	}

	s.puts(s.attr.ExitAttributeMode)
	if s.Encoding() == charmap.PC {
		s.puts(s.attr.ExitPCCharset)
	}
	if s.id.Has(detect.Xterm) {
		s.driver.SetCursorStyle(console.CursorDefault)
	}
	if s.paletteChanged {
		s.resetColorMapLocked()
		s.paletteChanged = false
	}
	s.driver.ResetBeep()

	s.showCursorLocked()

	if s.altScreen {
		s.putCap(capability.ExitCaMode)
		s.putCap(capability.RestoreCursor)
		s.altScreen = false
	}
	s.putCap(capability.KeypadLocal)

	if s.opts.Input != nil {
		s.opts.Input.Disable()
	}

	if s.font != console.FontNormal {
		s.loadFont(console.FontNormal)
	}

	s.st = stateFinished
	active.Store(false)
	slog.Info("terminal finished")

	if s.exitMsg != "" {
		fmt.Fprintln(s.stderr, s.exitMsg)
	}
}

// devicePath returns the name of the terminal device behind f.
func devicePath(f *os.File) string {
	if p, err := os.Readlink(fmt.Sprintf("/proc/self/fd/%d", f.Fd())); err == nil {
		return p
	}
	return "/dev/tty"
}

// addressOnly strips env down to absolute addressing, plus the
// carriage return needed to recover a cursor parked in the margin.
func addressOnly(env *optimove.Env) *optimove.Env {
	return &optimove.Env{
		CarriageReturn:   env.CarriageReturn,
		Address:          env.Address,
		TabStop:          env.TabStop,
		AutoRightMargin:  env.AutoRightMargin,
		EatNewlineGlitch: env.EatNewlineGlitch,
		Instantiate:      env.Instantiate,
	}
}

// envLookup adapts getenv to termenv's view of the environment.
type envLookup func(string) string

func (e envLookup) Getenv(key string) string {
	return e(key)
}

func (e envLookup) Environ() []string {
	var env []string
	for _, k := range []string{"TERM", "COLORTERM", "NO_COLOR", "CLICOLOR", "CLICOLOR_FORCE", "TERM_PROGRAM"} {
		if v := e(k); v != "" {
			env = append(env, k+"="+v)
		}
	}
	return env
}
