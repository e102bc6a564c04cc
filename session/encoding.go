package session

import (
	"log/slog"
	"strings"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/bdwalton/termcore/capability"
	"github.com/bdwalton/termcore/charmap"
	"github.com/bdwalton/termcore/detect"
)

const CODESET_UTF8 = "utf-8"

// resolveLocale picks the locale the same way the C library does
// (LC_ALL, LC_CTYPE, LANG) and returns it with its normalized
// codeset. Terminals that can't render UTF-8 are dropped to "C".
func resolveLocale(getenv func(string) string, id detect.Identity) (string, string) {
	locale := ""
	for _, v := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if locale = getenv(v); locale != "" {
			break
		}
	}

	if xl := getenv("XTERM_LOCALE"); xl != "" && id.Has(detect.Xterm) {
		locale = xl
	}

	if locale == "" {
		return "C", ""
	}

	cs := codeset(locale)
	if cs == CODESET_UTF8 && id.Has(detect.TeraTerm|detect.Kterm|detect.Sun) {
		slog.Debug("terminal can't display UTF-8, using C locale", "locale", locale)
		return "C", ""
	}

	return locale, cs
}

// codeset extracts the codeset of a locale name like
// "en_US.UTF-8@euro" and returns its canonical name, or "" when it
// is unknown.
func codeset(locale string) string {
	_, cs, ok := strings.Cut(locale, ".")
	if !ok {
		return ""
	}
	cs, _, _ = strings.Cut(cs, "@")

	e, err := htmlindex.Get(cs)
	if err != nil {
		slog.Debug("unknown locale codeset", "codeset", cs, "err", err)
		return ""
	}
	name, err := htmlindex.Name(e)
	if err != nil {
		return ""
	}
	return name
}

// encodingInput is everything the encoding cascade looks at.
type encodingInput struct {
	id         detect.Identity
	outTTY     bool
	utf8Locale bool
	hasRmacs   bool
	noUTF8ACS  bool
	vgaFont    bool
	newFont    bool
	requested  charmap.Encoding
}

type encodingResult struct {
	enc         charmap.Encoding
	utf8Console bool
	// utf8Glyphs selects the UTF-8 emitter for VT100 and PC output.
	utf8Glyphs bool
	// fontAllowed is false when a font request had to be refused.
	fontAllowed bool
}

// resolveEncoding works out the output encoding from the terminal and
// locale. An explicit request always wins.
func resolveEncoding(in encodingInput) encodingResult {
	r := encodingResult{fontAllowed: true}

	switch {
	case in.outTTY && in.utf8Locale:
		r.enc = charmap.UTF8
		r.utf8Console = true
	case in.outTTY && in.id.TermType != "" && in.hasRmacs:
		r.enc = charmap.VT100
	default:
		r.enc = charmap.ASCII
	}

	fontRequested := in.vgaFont || in.newFont
	if fontRequested && in.id.NoFontSwitching() {
		slog.Debug("terminal can't switch fonts", "families", in.id.Families.String())
		r.fontAllowed = false
		fontRequested = false
	}

	if fontRequested ||
		(in.id.Has(detect.Putty) && !in.utf8Locale) ||
		(in.id.Has(detect.TeraTerm) && !in.utf8Locale) {
		r.enc = charmap.PC
		if r.utf8Console && in.requested == charmap.Unknown && in.id.Has(detect.Xterm) {
			r.utf8Glyphs = true
		}
	}

	switch {
	case in.id.Has(detect.Rxvt) && !in.id.Has(detect.Urxvt):
		r.enc = charmap.VT100
	case in.noUTF8ACS && in.utf8Locale && r.enc == charmap.VT100:
		r.enc = charmap.ASCII
	}

	if in.requested != charmap.Unknown {
		r.enc = in.requested
	}

	return r
}

// initPCCharset fills in the PC charset switching strings for the
// terminals known to have one.
func initPCCharset(o *capability.Override, id detect.Identity, utf8Console bool) {
	if id.Has(detect.Rxvt | detect.Urxvt) {
		return
	}
	if !id.Has(detect.Gnome | detect.Linux) {
		return
	}

	if utf8Console {
		o.SetDefault(capability.EnterPcCharsetMode, "\x1b%@\x1b(U")
		o.SetDefault(capability.ExitPcCharsetMode, "\x1b(B\x1b%G")
		return
	}
	o.SetDefault(capability.EnterPcCharsetMode, "\x1b(U")
	o.SetDefault(capability.ExitPcCharsetMode, "\x1b(B")
}

// EncodeChar returns the bytes that draw r on the terminal in the
// current encoding, including any charset switching around it.
func (s *Session) EncodeChar(r rune) []byte {
	s.encMux.RLock()
	defer s.encMux.RUnlock()

	return s.appendChar(nil, r)
}

// EncodeString normalizes str and encodes it rune by rune.
func (s *Session) EncodeString(str string) []byte {
	s.encMux.RLock()
	defer s.encMux.RUnlock()

	var out []byte
	for _, r := range charmap.Normalize(str) {
		out = s.appendChar(out, r)
	}
	return out
}

// CharWidth is the number of cells r takes in the current encoding.
// Only UTF-8 output has wide or zero width glyphs.
func (s *Session) CharWidth(r rune) int {
	if s.Encoding() != charmap.UTF8 {
		return 1
	}
	return charmap.Width(r)
}

func (s *Session) appendChar(dst []byte, r rune) []byte {
	if s.table == nil {
		return s.emit(charmap.ASCIIEmitter, dst, r)
	}

	r = s.table.Substitute(r)
	e := s.table.Encode(r, s.enc)

	switch s.enc {
	case charmap.UTF8:
		return s.emit(s.emitter, dst, e)
	case charmap.VT100:
		if s.table.Encodable(r, charmap.VT100) {
			dst = append(dst, s.attr.EnterAltCharset...)
			dst = s.emit(s.emitter, dst, e)
			return append(dst, s.attr.ExitAltCharset...)
		}
	case charmap.PC:
		if s.table.Encodable(r, charmap.PC) && s.attr.EnterPCCharset != "" {
			dst = append(dst, s.attr.EnterPCCharset...)
			dst = s.emit(s.emitter, dst, e)
			return append(dst, s.attr.ExitPCCharset...)
		}
	}

	// No glyph in the table column, or nothing that fits a byte.
	if e == 0 || e > 0xff {
		e = s.table.Encode(r, charmap.ASCII)
	}
	return s.emit(s.emitter, dst, e)
}

func (s *Session) emit(em charmap.Emitter, dst []byte, r rune) []byte {
	if em == nil {
		em = charmap.ASCIIEmitter
	}
	out, err := em.Append(dst, r)
	if err != nil {
		slog.Debug("couldn't emit character", "rune", r, "emitter", em.Name(), "err", err)
		return append(dst, '?')
	}
	return out
}
