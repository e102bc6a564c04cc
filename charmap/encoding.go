package charmap

import (
	"fmt"
	"strings"
)

// Encoding is the character set the terminal is being driven in.
type Encoding uint8

// Unknown is the zero value so that an unset Encoding means "work it
// out from the terminal".
const (
	Unknown Encoding = iota
	UTF8
	VT100
	PC // IBM code page 437
	ASCII
)

var encodingNames = map[Encoding]string{
	UTF8:    "UTF8",
	VT100:   "VT100",
	PC:      "PC",
	ASCII:   "ASCII",
	Unknown: "Unknown",
}

// Canonical names accepted by ParseEncoding. "UTF-8" is an alias.
var encodingByName = map[string]Encoding{
	"UTF8":  UTF8,
	"UTF-8": UTF8,
	"VT100": VT100,
	"PC":    PC,
	"ASCII": ASCII,
}

func (e Encoding) String() string {
	if n, ok := encodingNames[e]; ok {
		return n
	}
	return fmt.Sprintf("Encoding(%d)", uint8(e))
}

// ParseEncoding maps a user supplied name onto an Encoding. The
// lookup is case insensitive.
func ParseEncoding(name string) (Encoding, error) {
	if e, ok := encodingByName[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return e, nil
	}
	return Unknown, fmt.Errorf("unknown encoding %q", name)
}

// Names returns the registered encoding names.
func Names() []string {
	return []string{"UTF8", "UTF-8", "VT100", "PC", "ASCII"}
}
