package optimove

import (
	"github.com/bdwalton/termcore/capability"
)

// DEF_TABSTOP is used when the terminal doesn't report init_tabs.
const DEF_TABSTOP = 8

// Cap is one movement capability. Param marks sequences that take
// arguments and must be instantiated before use.
type Cap struct {
	Seq   string
	Param bool
}

func (c Cap) usable() bool {
	return c.Seq != ""
}

// Env is the capability environment the optimizer plans against. It
// is built once per session and never modified afterwards; use
// WithoutTab and friends to derive a changed copy.
type Env struct {
	Home           Cap
	CarriageReturn Cap
	Tab            Cap
	BackTab        Cap
	CursorUp       Cap
	CursorDown     Cap
	CursorLeft     Cap
	CursorRight    Cap
	ParmUp         Cap
	ParmDown       Cap
	ParmLeft       Cap
	ParmRight      Cap
	Address        Cap
	ColumnAddress  Cap
	RowAddress     Cap
	CursorToLL     Cap
	EraseChars     Cap
	RepeatChar     Cap
	ClrBol         Cap
	ClrEol         Cap

	TabStop          int
	AutoLeftMargin   bool
	AutoRightMargin  bool
	EatNewlineGlitch bool

	// Instantiate expands parameterized capabilities. Nil means
	// capability.Instantiate.
	Instantiate func(seq string, params ...int) string
}

// NewEnv captures the movement capabilities of src.
func NewEnv(src capability.Source) *Env {
	str := func(c capability.Cap) Cap {
		s, _ := src.String(c)
		return Cap{Seq: s}
	}
	parm := func(c capability.Cap) Cap {
		s, _ := src.String(c)
		return Cap{Seq: s, Param: true}
	}

	ts := src.Number(capability.InitTabs)
	if ts <= 0 {
		ts = DEF_TABSTOP
	}

	return &Env{
		Home:             str(capability.CursorHome),
		CarriageReturn:   str(capability.CarriageReturn),
		Tab:              str(capability.Tab),
		BackTab:          str(capability.BackTab),
		CursorUp:         str(capability.CursorUp),
		CursorDown:       str(capability.CursorDown),
		CursorLeft:       str(capability.CursorLeft),
		CursorRight:      str(capability.CursorRight),
		ParmUp:           parm(capability.ParmUpCursor),
		ParmDown:         parm(capability.ParmDownCursor),
		ParmLeft:         parm(capability.ParmLeftCursor),
		ParmRight:        parm(capability.ParmRightCursor),
		Address:          parm(capability.CursorAddress),
		ColumnAddress:    parm(capability.ColumnAddress),
		RowAddress:       parm(capability.RowAddress),
		CursorToLL:       str(capability.CursorToLl),
		EraseChars:       parm(capability.EraseChars),
		RepeatChar:       parm(capability.RepeatChar),
		ClrBol:           str(capability.ClrBol),
		ClrEol:           str(capability.ClrEol),
		TabStop:          ts,
		AutoLeftMargin:   src.Bool(capability.AutoLeftMargin),
		AutoRightMargin:  src.Bool(capability.AutoRightMargin),
		EatNewlineGlitch: src.Bool(capability.EatNewlineGlitch),
		Instantiate:      src.Instantiate,
	}
}

// WithoutTab returns a copy of e that never uses forward tabs. Used
// when the terminal is driven in an encoding where a tab would print
// a glyph.
func (e *Env) WithoutTab() *Env {
	c := *e
	c.Tab = Cap{}
	return &c
}

func (e *Env) instantiate(c Cap, params ...int) string {
	if !c.Param {
		return c.Seq
	}
	if e.Instantiate != nil {
		return e.Instantiate(c.Seq, params...)
	}
	return capability.Instantiate(c.Seq, params...)
}

func (e *Env) canAddress() bool {
	return e.Address.usable() || (e.RowAddress.usable() && e.ColumnAddress.usable())
}
