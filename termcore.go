package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/bdwalton/termcore/charmap"
	"github.com/bdwalton/termcore/config"
	"github.com/bdwalton/termcore/debugdata"
	"github.com/bdwalton/termcore/logging"
	"github.com/bdwalton/termcore/session"
)

var (
	logfile     = flag.String("logfile", "", "If set, logs will be written to this file.")
	debug       = flag.Bool("debug", false, "If true, log at debug level.")
	cfgFile     = flag.String("config", "", "If set, a YAML terminal profile to load.")
	encoding    = flag.String("encoding", "", "If set, force the output encoding (UTF8, VT100, PC or ASCII).")
	noAltScreen = flag.Bool("no_alt_screen", false, "If true, draw on the normal screen instead of the alternate one.")
	vgaFont     = flag.Bool("vga_font", false, "If true, switch to the VGA font where the terminal allows it.")
	newFont     = flag.Bool("new_font", false, "If true, switch to the graphics font where the terminal allows it.")
	report      = flag.Bool("report", false, "If true, print what was detected about the terminal and exit.")
	demoFlag    = flag.Bool("demo", false, "If true, draw a frame and walk the cursor around it until a key is pressed.")
)

type cliFlags struct {
	config      string
	encoding    string
	noAltScreen bool
	vgaFont     bool
	newFont     bool
}

// buildOptions layers the environment, the profile and the command
// line, in that order.
func buildOptions(getenv func(string) string, f cliFlags) (session.Options, error) {
	o, err := session.OptionsFromEnv(getenv)
	if err != nil {
		return o, err
	}

	if f.config != "" {
		p, err := config.Load(f.config)
		if err != nil {
			return o, err
		}
		p.Apply(&o)
	}

	if f.encoding != "" {
		enc, err := charmap.ParseEncoding(f.encoding)
		if err != nil {
			return o, fmt.Errorf("couldn't use --encoding: %w", err)
		}
		o.Encoding = enc
	}
	o.NoAltScreen = o.NoAltScreen || f.noAltScreen
	o.VGAFont = o.VGAFont || f.vgaFont
	o.NewFont = o.NewFont || f.newFont

	if o.VGAFont && o.NewFont {
		return o, errors.New("--vga_font and --new_font are mutually exclusive")
	}

	return o, nil
}

func main() {
	flag.Parse()

	if err := logging.Setup(*logfile, *debug); err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't setup logging: %v\n", err)
		os.Exit(1)
	}

	opts, err := buildOptions(os.Getenv, cliFlags{
		config:      *cfgFile,
		encoding:    *encoding,
		noAltScreen: *noAltScreen,
		vgaFont:     *vgaFont,
		newFont:     *newFont,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	s := session.New(opts)
	if err := s.Initialize(); err != nil {
		slog.Info("couldn't initialize terminal", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer s.Recover()

	switch {
	case *report:
		b, err := debugdata.Render(s)
		s.Finish()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Stdout.Write(append(b, '\n'))
	case *demoFlag:
		if err := runDemo(s); err != nil {
			s.SetExitMessage(fmt.Sprintf("Demo failed: %v", err))
		}
		s.Finish()
	default:
		s.Finish()
		w, h := s.CurrentGeometry()
		fmt.Printf("%s: %s, %dx%d, %d baud\n", s.Identity(), s.Encoding(), w, h, s.Baud())
	}
}
