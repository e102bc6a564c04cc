package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/bdwalton/termcore/charmap"
	"github.com/bdwalton/termcore/session"
)

func TestParse(t *testing.T) {
	cases := []struct {
		data    string
		wantErr bool
	}{
		{"", false},
		{"encoding: vt100\n", false},
		{"encoding: UTF-8\nno_alt_screen: true\n", false},
		{"encoding: ebcdic\n", true},
		{"cursor:\n  baud: -1\n", true},
		{"vga_font: true\nnew_font: true\n", true},
		{"caps: [1, 2\n", true},
		{"caps:\n  frobnicate: \"1\"\n", true},
		{"caps:\n  colors: \"256\"\n", false},
	}

	for i, c := range cases {
		if _, err := Parse([]byte(c.data)); (err != nil) != c.wantErr {
			t.Errorf("%d: Got %v, wanted error %t", i, err, c.wantErr)
		}
	}
}

func TestApply(t *testing.T) {
	p, err := Parse([]byte(`
encoding: pc
vga_font: true
cursor:
  optimize: false
  baud: 9600
caps:
  cup: "\e[%i%p1%d;%p2%dH"
  xenl: "true"
`))
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}

	o := session.Options{Caps: map[string]string{"am": "false"}}
	p.Apply(&o)

	if o.Encoding != charmap.PC {
		t.Errorf("Got encoding %s, wanted PC", o.Encoding)
	}
	if !o.VGAFont || o.NewFont || o.NoAltScreen {
		t.Errorf("Got fonts/alt (%t, %t, %t), wanted (true, false, false)", o.VGAFont, o.NewFont, o.NoAltScreen)
	}
	if o.Baud != 9600 || !o.NoCursorOptimize {
		t.Errorf("Got (%d, %t), wanted (9600, true)", o.Baud, o.NoCursorOptimize)
	}

	want := map[string]string{
		"am":   "false",
		"cup":  "\x1b[%i%p1%d;%p2%dH",
		"xenl": "true",
	}
	for k, v := range want {
		if o.Caps[k] != v {
			t.Errorf("%s: Got %q, wanted %q", k, o.Caps[k], v)
		}
	}
}

func TestApplyKeepsOptions(t *testing.T) {
	p, _ := Parse([]byte("no_alt_screen: false\n"))
	o := session.Options{Encoding: charmap.ASCII, NoAltScreen: true, Baud: 300}
	p.Apply(&o)

	if o.Encoding != charmap.ASCII || !o.NoAltScreen || o.Baud != 300 || o.NoCursorOptimize {
		t.Errorf("Apply() overwrote unset values: %+v", o)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	if err := os.WriteFile(path, []byte("encoding: ascii\n"), 0600); err != nil {
		t.Fatalf("couldn't write profile: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if p.Encoding != "ascii" {
		t.Errorf("Got %q, wanted %q", p.Encoding, "ascii")
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Got %v, wanted ErrNotExist", err)
	}
}
