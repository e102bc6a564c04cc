package capability

import (
	"fmt"

	"github.com/xo/terminfo"
)

// Terminfo is a Source backed by the compiled terminfo database on
// this host.
type Terminfo struct {
	ti   *terminfo.Terminfo
	name string
}

var terminfoStrings = map[Cap]int{
	CursorHome:          terminfo.CursorHome,
	CarriageReturn:      terminfo.CarriageReturn,
	Tab:                 terminfo.Tab,
	BackTab:             terminfo.BackTab,
	CursorUp:            terminfo.CursorUp,
	CursorDown:          terminfo.CursorDown,
	CursorLeft:          terminfo.CursorLeft,
	CursorRight:         terminfo.CursorRight,
	CursorAddress:       terminfo.CursorAddress,
	ColumnAddress:       terminfo.ColumnAddress,
	RowAddress:          terminfo.RowAddress,
	ParmUpCursor:        terminfo.ParmUpCursor,
	ParmDownCursor:      terminfo.ParmDownCursor,
	ParmLeftCursor:      terminfo.ParmLeftCursor,
	ParmRightCursor:     terminfo.ParmRightCursor,
	CursorToLl:          terminfo.CursorToLl,
	EraseChars:          terminfo.EraseChars,
	RepeatChar:          terminfo.RepeatChar,
	ClrBol:              terminfo.ClrBol,
	ClrEol:              terminfo.ClrEol,
	ClearScreen:         terminfo.ClearScreen,
	EnterCaMode:         terminfo.EnterCaMode,
	ExitCaMode:          terminfo.ExitCaMode,
	SaveCursor:          terminfo.SaveCursor,
	RestoreCursor:       terminfo.RestoreCursor,
	AcsChars:            terminfo.AcsChars,
	EnterAltCharsetMode: terminfo.EnterAltCharsetMode,
	ExitAltCharsetMode:  terminfo.ExitAltCharsetMode,
	EnaAcs:              terminfo.EnaAcs,
	EnterPcCharsetMode:  terminfo.EnterPcCharsetMode,
	ExitPcCharsetMode:   terminfo.ExitPcCharsetMode,
	KeypadXmit:          terminfo.KeypadXmit,
	KeypadLocal:         terminfo.KeypadLocal,
	CursorInvisible:     terminfo.CursorInvisible,
	CursorNormal:        terminfo.CursorNormal,
	CursorVisible:       terminfo.CursorVisible,
	ExitAttributeMode:   terminfo.ExitAttributeMode,
	OrigPair:            terminfo.OrigPair,
	OrigColors:          terminfo.OrigColors,
	InitializeColor:     terminfo.InitializeColor,
	InitializePair:      terminfo.InitializePair,
	Bell:                terminfo.Bell,
}

var terminfoBools = map[Cap]int{
	AutoLeftMargin:   terminfo.AutoLeftMargin,
	AutoRightMargin:  terminfo.AutoRightMargin,
	EatNewlineGlitch: terminfo.EatNewlineGlitch,
	CanChange:        terminfo.CanChange,
	BackColorErase:   terminfo.BackColorErase,
}

var terminfoNumbers = map[Cap]int{
	Columns:      terminfo.Columns,
	Lines:        terminfo.Lines,
	MaxColors:    terminfo.MaxColors,
	InitTabs:     terminfo.InitTabs,
	NoColorVideo: terminfo.NoColorVideo,
}

// LoadTerminfo reads the description of term from the terminfo
// search path.
func LoadTerminfo(term string) (*Terminfo, error) {
	ti, err := terminfo.Load(term)
	if err != nil {
		return nil, fmt.Errorf("couldn't load terminfo for %q: %w", term, err)
	}
	return &Terminfo{ti: ti, name: term}, nil
}

func (t *Terminfo) Name() string {
	return t.name
}

func (t *Terminfo) String(c Cap) (string, bool) {
	i, ok := terminfoStrings[c]
	if !ok {
		return "", false
	}
	b, ok := t.ti.Strings[i]
	if !ok || len(b) == 0 {
		return "", false
	}
	return string(b), true
}

func (t *Terminfo) Bool(c Cap) bool {
	switch c {
	case TrueColor:
		ext := t.ti.ExtBoolCapsShort()
		return ext["Tc"] || ext["RGB"]
	case NoUTF8ACS:
		// ncurses describes U8 as a number.
		return t.ti.ExtNumCapsShort()["U8"] > 0 || t.ti.ExtBoolCapsShort()["U8"]
	}

	i, ok := terminfoBools[c]
	if !ok {
		return false
	}
	return t.ti.Bools[i]
}

func (t *Terminfo) Number(c Cap) int {
	i, ok := terminfoNumbers[c]
	if !ok {
		return -1
	}
	n, ok := t.ti.Nums[i]
	if !ok {
		return -1
	}
	return n
}

func (t *Terminfo) Instantiate(seq string, params ...int) string {
	return Instantiate(seq, params...)
}
