package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bdwalton/termcore/capability"
	"github.com/bdwalton/termcore/charmap"
	"github.com/bdwalton/termcore/session"
)

// Profile is the on-disk terminal profile, eg:
//
//	encoding: vt100
//	no_alt_screen: true
//	cursor:
//	  baud: 9600
//	caps:
//	  cup: "\e[%i%p1%d;%p2%dH"
//	  xenl: "true"
type Profile struct {
	Encoding    string            `yaml:"encoding"`
	NoAltScreen bool              `yaml:"no_alt_screen"`
	VGAFont     bool              `yaml:"vga_font"`
	NewFont     bool              `yaml:"new_font"`
	Cursor      Cursor            `yaml:"cursor"`
	Caps        map[string]string `yaml:"caps"`
}

type Cursor struct {
	// Optimize defaults to true. When false every move is an
	// absolute address.
	Optimize *bool `yaml:"optimize"`
	Baud     int   `yaml:"baud"`
}

// Load reads and validates the profile at path.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read profile: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("couldn't parse profile: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

func (p *Profile) Validate() error {
	if p.Encoding != "" {
		if _, err := charmap.ParseEncoding(p.Encoding); err != nil {
			return fmt.Errorf("bad profile encoding: %w", err)
		}
	}
	if p.Cursor.Baud < 0 {
		return fmt.Errorf("bad profile baud rate %d", p.Cursor.Baud)
	}
	if p.VGAFont && p.NewFont {
		return fmt.Errorf("vga_font and new_font are mutually exclusive")
	}
	for name := range p.Caps {
		if _, ok := capability.Lookup(name); !ok {
			return fmt.Errorf("bad profile: %w", &capability.UnknownCapError{Name: name})
		}
	}
	return nil
}

// Apply layers the profile over o. Values the profile leaves unset
// keep what o already has.
func (p *Profile) Apply(o *session.Options) {
	if p.Encoding != "" {
		// Validate already accepted it.
		o.Encoding, _ = charmap.ParseEncoding(p.Encoding)
	}
	o.NoAltScreen = o.NoAltScreen || p.NoAltScreen
	o.VGAFont = o.VGAFont || p.VGAFont
	o.NewFont = o.NewFont || p.NewFont
	if p.Cursor.Baud > 0 {
		o.Baud = p.Cursor.Baud
	}
	if p.Cursor.Optimize != nil {
		o.NoCursorOptimize = !*p.Cursor.Optimize
	}
	if len(p.Caps) > 0 {
		if o.Caps == nil {
			o.Caps = make(map[string]string, len(p.Caps))
		}
		for k, v := range p.Caps {
			o.Caps[k] = v
		}
	}
}
