package capability

import (
	"fmt"

	"github.com/gdamore/tcell/v2/terminfo"
	_ "github.com/gdamore/tcell/v2/terminfo/base"
	_ "github.com/gdamore/tcell/v2/terminfo/extended"
)

// Builtin is a Source backed by the descriptions compiled into tcell.
// They only carry what a full screen program needs, so most of the
// movement capabilities come back absent and the session fills in
// defaults.
type Builtin struct {
	ti *terminfo.Terminfo
}

// LoadBuiltin looks term up in tcell's compiled descriptions.
func LoadBuiltin(term string) (*Builtin, error) {
	ti, err := terminfo.LookupTerminfo(term)
	if err != nil {
		return nil, fmt.Errorf("couldn't find builtin terminfo for %q: %w", term, err)
	}
	return &Builtin{ti: ti}, nil
}

func (b *Builtin) Name() string {
	return b.ti.Name
}

func (b *Builtin) String(c Cap) (string, bool) {
	var s string
	switch c {
	case CursorAddress:
		s = b.ti.SetCursor
	case CursorLeft:
		s = b.ti.CursorBack1
	case CursorUp:
		s = b.ti.CursorUp1
	case ClearScreen:
		s = b.ti.Clear
	case EnterCaMode:
		s = b.ti.EnterCA
	case ExitCaMode:
		s = b.ti.ExitCA
	case AcsChars:
		s = b.ti.AltChars
	case EnterAltCharsetMode:
		s = b.ti.EnterAcs
	case ExitAltCharsetMode:
		s = b.ti.ExitAcs
	case EnaAcs:
		s = b.ti.EnableAcs
	case KeypadXmit:
		s = b.ti.EnterKeypad
	case KeypadLocal:
		s = b.ti.ExitKeypad
	case CursorInvisible:
		s = b.ti.HideCursor
	case CursorNormal:
		s = b.ti.ShowCursor
	case ExitAttributeMode:
		s = b.ti.AttrOff
	case Bell:
		s = b.ti.Bell
	}
	return s, s != ""
}

func (b *Builtin) Bool(c Cap) bool {
	switch c {
	case AutoRightMargin:
		return b.ti.AutoMargin
	case TrueColor:
		return b.ti.Colors >= 1<<24
	}
	return false
}

func (b *Builtin) Number(c Cap) int {
	switch c {
	case Columns:
		return b.ti.Columns
	case Lines:
		return b.ti.Lines
	case MaxColors:
		return b.ti.Colors
	}
	return -1
}

func (b *Builtin) Instantiate(seq string, params ...int) string {
	return Instantiate(seq, params...)
}
