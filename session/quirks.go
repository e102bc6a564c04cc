package session

import (
	"log/slog"
	"sort"

	"github.com/muesli/termenv"

	"github.com/bdwalton/termcore/capability"
	"github.com/bdwalton/termcore/detect"
)

// Defaults for terminals whose description leaves out the basics.
const (
	DEF_CUP  = "\x1b[%i%p1%d;%p2%dH"
	DEF_CR   = "\r"
	DEF_CUD1 = "\n"

	LINUX_CIVIS = "\x1b[?25l\x1b[?1c"
	LINUX_CNORM = "\x1b[?25h\x1b[?0c"
)

// applyQuirks fixes up known problems in terminal descriptions and
// then layers the user's overrides on top.
func applyQuirks(o *capability.Override, id detect.Identity, profile termenv.Profile, user map[string]string) {
	o.SetDefault(capability.CursorAddress, DEF_CUP)
	o.SetDefault(capability.CarriageReturn, DEF_CR)
	o.SetDefault(capability.CursorDown, DEF_CUD1)

	if id.Has(detect.Linux) {
		// The console can't draw line graphics while in UTF-8 mode.
		o.SetBool(capability.NoUTF8ACS, true)
		o.SetString(capability.CursorInvisible, LINUX_CIVIS)
		o.SetString(capability.CursorNormal, LINUX_CNORM)
	}

	if id.Has(detect.TeraTerm) {
		o.SetBool(capability.EatNewlineGlitch, true)
	}

	if id.Has(detect.Putty | detect.Screen | detect.Tmux) {
		o.SetString(capability.EnaAcs, "")
	}

	switch {
	case id.FixedMaxColors():
		o.SetNumber(capability.MaxColors, 16)
	case o.Number(capability.MaxColors) < 0:
		if n := profileColors(profile); n > 0 {
			o.SetNumber(capability.MaxColors, n)
		}
	}

	names := make([]string, 0, len(user))
	for n := range user {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		if err := o.Set(n, user[n]); err != nil {
			slog.Debug("ignoring capability override", "cap", n, "err", err)
		}
	}
}

// profileColors maps the color profile seen in the environment onto
// a max_colors value for terminals whose description has none.
func profileColors(p termenv.Profile) int {
	switch p {
	case termenv.TrueColor:
		return 1 << 24
	case termenv.ANSI256:
		return 256
	case termenv.ANSI:
		return 16
	}
	return 0
}

// AttrEnv holds what the attribute layer needs to know about the
// terminal. The session uses it to reset the display on exit.
type AttrEnv struct {
	ExitAttributeMode string
	EnterAltCharset   string
	ExitAltCharset    string
	EnterPCCharset    string
	ExitPCCharset     string
	OrigPair          string
	OrigColors        string

	MaxColors    int
	NoColorVideo int
}

func newAttrEnv(src capability.Source) AttrEnv {
	str := func(c capability.Cap) string {
		s, _ := src.String(c)
		return s
	}

	ncv := src.Number(capability.NoColorVideo)
	if ncv < 0 {
		ncv = 0
	}

	return AttrEnv{
		ExitAttributeMode: str(capability.ExitAttributeMode),
		EnterAltCharset:   str(capability.EnterAltCharsetMode),
		ExitAltCharset:    str(capability.ExitAltCharsetMode),
		EnterPCCharset:    str(capability.EnterPcCharsetMode),
		ExitPCCharset:     str(capability.ExitPcCharsetMode),
		OrigPair:          str(capability.OrigPair),
		OrigColors:        str(capability.OrigColors),
		MaxColors:         src.Number(capability.MaxColors),
		NoColorVideo:      ncv,
	}
}
