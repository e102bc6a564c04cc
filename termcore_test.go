package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bdwalton/termcore/charmap"
	"github.com/bdwalton/termcore/optimove"
)

func TestBuildOptions(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, "profile.yaml")
	if err := os.WriteFile(profile, []byte("encoding: vt100\nvga_font: true\ncursor:\n  baud: 1200\n"), 0600); err != nil {
		t.Fatalf("couldn't write profile: %v", err)
	}

	cases := []struct {
		env      map[string]string
		f        cliFlags
		wantEnc  charmap.Encoding
		wantAlt  bool
		wantBaud int
		wantErr  bool
	}{
		{nil, cliFlags{}, charmap.Unknown, false, 0, false},
		{map[string]string{"TERMCORE_ENCODING": "ascii", "TERMCORE_BAUD": "300"}, cliFlags{}, charmap.ASCII, false, 300, false},
		{map[string]string{"TERMCORE_ENCODING": "ascii"}, cliFlags{config: profile}, charmap.VT100, false, 1200, false},
		{nil, cliFlags{config: profile, encoding: "pc", noAltScreen: true}, charmap.PC, true, 1200, false},
		{nil, cliFlags{encoding: "ebcdic"}, charmap.Unknown, false, 0, true},
		{nil, cliFlags{config: filepath.Join(dir, "missing.yaml")}, charmap.Unknown, false, 0, true},
		{nil, cliFlags{config: profile, newFont: true}, charmap.Unknown, false, 0, true},
		{map[string]string{"TERMCORE_BAUD": "fast"}, cliFlags{}, charmap.Unknown, false, 0, true},
	}

	for i, c := range cases {
		getenv := func(k string) string { return c.env[k] }
		o, err := buildOptions(getenv, c.f)
		if (err != nil) != c.wantErr {
			t.Errorf("%d: Got error %v, wanted error %t", i, err, c.wantErr)
			continue
		}
		if c.wantErr {
			continue
		}
		if o.Encoding != c.wantEnc || o.NoAltScreen != c.wantAlt || o.Baud != c.wantBaud {
			t.Errorf("%d: Got (%s, %t, %d), wanted (%s, %t, %d)", i, o.Encoding, o.NoAltScreen, o.Baud, c.wantEnc, c.wantAlt, c.wantBaud)
		}
	}
}

func TestWalkPath(t *testing.T) {
	cases := []struct {
		w, h, inset int
		want        []optimove.Point
	}{
		{4, 4, 2, nil},
		{5, 5, 2, []optimove.Point{{X: 2, Y: 2}}},
		{6, 5, 2, []optimove.Point{{X: 2, Y: 2}, {X: 3, Y: 2}}},
		{6, 6, 2, []optimove.Point{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 3}}},
	}

	for i, c := range cases {
		got := walkPath(c.w, c.h, c.inset)
		if len(got) != len(c.want) {
			t.Errorf("%d: Got %v, wanted %v", i, got, c.want)
			continue
		}
		for j := range got {
			if got[j] != c.want[j] {
				t.Errorf("%d: Got %v, wanted %v", i, got, c.want)
				break
			}
		}
	}

	// A 6x6 loop visits every border cell once.
	if got := walkPath(10, 10, 2); len(got) != 20 {
		t.Errorf("Got %d cells, wanted 20", len(got))
	}
}
