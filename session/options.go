package session

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bdwalton/termcore/capability"
	"github.com/bdwalton/termcore/charmap"
	"github.com/bdwalton/termcore/console"
)

// InputDecoder is the keyboard and mouse layer. The session only
// switches it on and off around its own lifetime.
type InputDecoder interface {
	Enable(utf8 bool) error
	Disable()
}

// Options controls how a Session brings the terminal up. The zero
// value detects everything from the environment.
type Options struct {
	// Encoding forces the output encoding. charmap.Unknown means
	// work it out from the locale and the terminal.
	Encoding    charmap.Encoding
	NoAltScreen bool
	VGAFont     bool
	NewFont     bool

	// Baud overrides the rate read from the line discipline. It
	// only feeds the movement cost model.
	Baud             int
	NoCursorOptimize bool

	// Caps overrides capabilities by terminfo name, eg: "cup" or
	// "xenl". They are applied after every built in quirk.
	Caps map[string]string

	Input  InputDecoder
	Driver console.Driver
	// Source replaces the terminfo lookup.
	Source capability.Source

	In     *os.File
	Out    *os.File
	Stderr io.Writer
	Getenv func(string) string
	Exit   func(int)
}

// OptionsFromEnv reads TERMCORE_ENCODING, TERMCORE_NO_ALT_SCREEN and
// TERMCORE_BAUD.
func OptionsFromEnv(getenv func(string) string) (Options, error) {
	var o Options

	if v := getenv("TERMCORE_ENCODING"); v != "" {
		enc, err := charmap.ParseEncoding(v)
		if err != nil {
			return o, fmt.Errorf("couldn't parse TERMCORE_ENCODING: %w", err)
		}
		o.Encoding = enc
	}

	if v := getenv("TERMCORE_NO_ALT_SCREEN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return o, fmt.Errorf("couldn't parse TERMCORE_NO_ALT_SCREEN: %w", err)
		}
		o.NoAltScreen = b
	}

	if v := getenv("TERMCORE_BAUD"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return o, fmt.Errorf("couldn't parse TERMCORE_BAUD: %w", err)
		}
		if n < 0 {
			return o, fmt.Errorf("%w: TERMCORE_BAUD %d", ErrNegativeBaud, n)
		}
		o.Baud = n
	}

	return o, nil
}

func (o *Options) setDefaults() {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Getenv == nil {
		o.Getenv = os.Getenv
	}
	if o.Exit == nil {
		o.Exit = os.Exit
	}
}
