package capability

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gdamore/tcell/v2/terminfo"
)

var ErrNoTerminfo = errors.New("no terminal description found")

// Source answers capability queries for one terminal type.
type Source interface {
	// String returns the sequence for c and whether the terminal
	// has it.
	String(c Cap) (string, bool)
	Bool(c Cap) bool
	// Number returns -1 when c is absent.
	Number(c Cap) int
	// Instantiate expands the parameters of a parameterized
	// sequence.
	Instantiate(seq string, params ...int) string
}

// The parameter interpreter is stateless. It only needs a Terminfo
// value to hang off.
var interp = &terminfo.Terminfo{}

// Instantiate expands %-escapes in seq with params.
func Instantiate(seq string, params ...int) string {
	if seq == "" || !strings.Contains(seq, "%") {
		return seq
	}

	args := make([]any, len(params))
	for i, p := range params {
		args[i] = p
	}
	return interp.TParm(seq, args...)
}

// Puts writes seq to w, honouring $<n> padding requests.
func Puts(w io.Writer, seq string) {
	interp.TPuts(w, seq)
}

// Padding splits seq into the bytes that are sent and the delay, in
// tenths of a millisecond, requested by its $<n> markers. A '*'
// multiplies the delay by affcnt, the number of affected lines.
func Padding(seq string, affcnt int) (string, int) {
	if !strings.Contains(seq, "$<") {
		return seq, 0
	}

	var (
		sb    strings.Builder
		delay float64
	)
	for len(seq) > 0 {
		beg := strings.Index(seq, "$<")
		if beg < 0 {
			sb.WriteString(seq)
			break
		}
		end := strings.IndexByte(seq[beg:], '>')
		if end < 0 {
			sb.WriteString(seq)
			break
		}
		sb.WriteString(seq[:beg])

		var (
			num  float64
			frac bool
			div  = 1.0
		)
		for _, ch := range seq[beg+2 : beg+end] {
			switch {
			case ch >= '0' && ch <= '9':
				if frac {
					div *= 10
					num += float64(ch-'0') / div
				} else {
					num = num*10 + float64(ch-'0')
				}
			case ch == '.':
				frac = true
			case ch == '*':
				num *= float64(affcnt)
			}
		}
		delay += num * 10
		seq = seq[beg+end+1:]
	}

	return sb.String(), int(delay)
}

// StripPadding drops $<n> markers.
func StripPadding(seq string) string {
	s, _ := Padding(seq, 1)
	return s
}

// Load returns the best available source for term: the system
// terminfo database, then the descriptions compiled into tcell.
func Load(term string) (Source, error) {
	if term == "" {
		return nil, fmt.Errorf("couldn't load capabilities: %w", ErrNoTerminfo)
	}

	db, dbErr := LoadTerminfo(term)
	if dbErr == nil {
		return db, nil
	}
	slog.Debug("terminfo database lookup failed", "term", term, "err", dbErr)

	b, err := LoadBuiltin(term)
	if err == nil {
		return b, nil
	}
	slog.Debug("builtin terminfo lookup failed", "term", term, "err", err)

	return nil, fmt.Errorf("couldn't load capabilities for %q: %w", term, ErrNoTerminfo)
}
