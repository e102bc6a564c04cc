package detect

import (
	"fmt"
	"log/slog"
	"strings"
)

// Family is a set of terminal vendor/type markers. A terminal may
// belong to several families, eg: urxvt is also rxvt and xterm.
type Family uint32

const (
	ANSI Family = 1 << iota
	Xterm
	Rxvt
	Urxvt
	Kde
	Gnome
	Putty
	TeraTerm
	Cygwin
	Mintty
	Linux
	FreeBSD
	NetBSD
	OpenBSD
	Sun
	Screen
	Tmux
	Kterm
	Mlterm
)

var familyNames = []struct {
	f    Family
	name string
}{
	{ANSI, "ansi"},
	{Xterm, "xterm"},
	{Rxvt, "rxvt"},
	{Urxvt, "urxvt"},
	{Kde, "kde"},
	{Gnome, "gnome"},
	{Putty, "putty"},
	{TeraTerm, "teraterm"},
	{Cygwin, "cygwin"},
	{Mintty, "mintty"},
	{Linux, "linux"},
	{FreeBSD, "freebsd"},
	{NetBSD, "netbsd"},
	{OpenBSD, "openbsd"},
	{Sun, "sun"},
	{Screen, "screen"},
	{Tmux, "tmux"},
	{Kterm, "kterm"},
	{Mlterm, "mlterm"},
}

// Names lists the families in f.
func (f Family) Names() []string {
	var names []string
	for _, fn := range familyNames {
		if f&fn.f != 0 {
			names = append(names, fn.name)
		}
	}
	return names
}

func (f Family) String() string {
	if f == 0 {
		return "unknown"
	}
	return strings.Join(f.Names(), "|")
}

// Identity is what we could work out about the controlling terminal.
type Identity struct {
	// TermType is $TERM as given.
	TermType string
	// TermFileName is the name used for capability lookups.
	TermFileName string
	Families     Family
}

func (id Identity) Has(f Family) bool {
	return id.Families&f != 0
}

func (id Identity) String() string {
	return fmt.Sprintf("%s (%s)", id.TermType, id.Families)
}

// Prefixes of $TERM and the families they imply. Longer prefixes
// must come before shorter ones that share a start.
var termPrefixes = []struct {
	prefix string
	f      Family
}{
	{"rxvt-unicode", Urxvt | Rxvt | Xterm},
	{"urxvt", Urxvt | Rxvt | Xterm},
	{"rxvt", Rxvt | Xterm},
	{"xterm", Xterm},
	{"putty", Putty | Xterm},
	{"teraterm", TeraTerm},
	{"cygwin", Cygwin},
	{"mintty", Mintty | Xterm},
	{"linux", Linux},
	{"cons25", FreeBSD},
	{"wsvt25", NetBSD},
	{"pccon", OpenBSD},
	{"sun", Sun},
	{"screen", Screen},
	{"tmux", Tmux | Screen},
	{"kterm", Kterm | Xterm},
	{"mlterm", Mlterm | Xterm},
	{"konsole", Kde | Xterm},
	{"gnome", Gnome | Xterm},
	{"vte", Gnome | Xterm},
	{"ansi", ANSI},
}

// Detect identifies the terminal from $TERM and the markers terminal
// emulators leave in the environment. getenv is usually os.Getenv.
func Detect(getenv func(string) string) Identity {
	term := getenv("TERM")
	id := Identity{TermType: term, TermFileName: term}

	for _, tp := range termPrefixes {
		if strings.HasPrefix(term, tp.prefix) {
			id.Families |= tp.f
			break
		}
	}

	markers := []struct {
		env string
		f   Family
	}{
		{"VTE_VERSION", Gnome | Xterm},
		{"KONSOLE_VERSION", Kde | Xterm},
		{"KONSOLE_DBUS_SESSION", Kde | Xterm},
		{"MLTERM", Mlterm | Xterm},
		{"TMUX", Tmux | Screen},
		{"STY", Screen},
	}
	for _, m := range markers {
		if getenv(m.env) != "" {
			id.Families |= m.f
		}
	}

	switch getenv("TERM_PROGRAM") {
	case "mintty":
		id.Families |= Mintty | Xterm
	case "tmux":
		id.Families |= Tmux | Screen
	case "Apple_Terminal", "iTerm.app", "WezTerm", "vscode":
		id.Families |= Xterm
	}

	switch ct := getenv("COLORTERM"); {
	case ct == "gnome-terminal":
		id.Families |= Gnome | Xterm
	case strings.HasPrefix(ct, "rxvt"):
		id.Families |= Rxvt | Xterm
	}

	// Inside screen or tmux the outer terminal is unknown, so
	// the emulator markers that leak through don't apply.
	if id.Has(Screen) && !strings.HasPrefix(term, "xterm") {
		id.Families &^= Gnome | Kde | Mlterm
	}

	if term == "" {
		id.TermFileName = "dumb"
	}

	slog.Debug("detected terminal", "term", term, "families", id.Families.String())
	return id
}

// NoFontSwitching reports terminals that can't change their font from
// the application.
func (id Identity) NoFontSwitching() bool {
	return id.Has(Gnome | Kde | Putty | TeraTerm | Cygwin | Mintty)
}

// FixedMaxColors reports terminals known to support only 16 colors
// whatever their description says.
func (id Identity) FixedMaxColors() bool {
	return id.Has(Cygwin | Putty | TeraTerm | Rxvt)
}

// NoPaletteChange reports terminals that misbehave when the color
// palette is redefined, even when they claim to support it.
func (id Identity) NoPaletteChange() bool {
	return id.Has(Cygwin | Kde | TeraTerm | Mlterm | NetBSD | OpenBSD | Sun | ANSI)
}
