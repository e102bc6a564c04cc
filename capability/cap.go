package capability

import "fmt"

// Cap names a terminal capability.
type Cap int

// Kind tells which table a Cap lives in.
type Kind uint8

const (
	KindString Kind = iota
	KindBool
	KindNumber
)

// String capabilities.
const (
	CursorHome Cap = iota
	CarriageReturn
	Tab
	BackTab
	CursorUp
	CursorDown
	CursorLeft
	CursorRight
	CursorAddress
	ColumnAddress
	RowAddress
	ParmUpCursor
	ParmDownCursor
	ParmLeftCursor
	ParmRightCursor
	CursorToLl
	EraseChars
	RepeatChar
	ClrBol
	ClrEol
	ClearScreen
	EnterCaMode
	ExitCaMode
	SaveCursor
	RestoreCursor
	AcsChars
	EnterAltCharsetMode
	ExitAltCharsetMode
	EnaAcs
	EnterPcCharsetMode
	ExitPcCharsetMode
	KeypadXmit
	KeypadLocal
	CursorInvisible
	CursorNormal
	CursorVisible
	ExitAttributeMode
	OrigPair
	OrigColors
	InitializeColor
	InitializePair
	Bell

	lastString
)

// Boolean capabilities.
const (
	AutoLeftMargin Cap = iota + 100
	AutoRightMargin
	EatNewlineGlitch
	CanChange
	BackColorErase
	TrueColor // Tc or RGB extension
	NoUTF8ACS // U8 extension, no line drawing in UTF-8 mode

	lastBool
)

// Numeric capabilities.
const (
	Columns Cap = iota + 200
	Lines
	MaxColors
	InitTabs
	NoColorVideo

	lastNumber
)

var capNames = map[Cap]string{
	CursorHome:          "home",
	CarriageReturn:      "cr",
	Tab:                 "ht",
	BackTab:             "cbt",
	CursorUp:            "cuu1",
	CursorDown:          "cud1",
	CursorLeft:          "cub1",
	CursorRight:         "cuf1",
	CursorAddress:       "cup",
	ColumnAddress:       "hpa",
	RowAddress:          "vpa",
	ParmUpCursor:        "cuu",
	ParmDownCursor:      "cud",
	ParmLeftCursor:      "cub",
	ParmRightCursor:     "cuf",
	CursorToLl:          "ll",
	EraseChars:          "ech",
	RepeatChar:          "rep",
	ClrBol:              "el1",
	ClrEol:              "el",
	ClearScreen:         "clear",
	EnterCaMode:         "smcup",
	ExitCaMode:          "rmcup",
	SaveCursor:          "sc",
	RestoreCursor:       "rc",
	AcsChars:            "acsc",
	EnterAltCharsetMode: "smacs",
	ExitAltCharsetMode:  "rmacs",
	EnaAcs:              "enacs",
	EnterPcCharsetMode:  "smpch",
	ExitPcCharsetMode:   "rmpch",
	KeypadXmit:          "smkx",
	KeypadLocal:         "rmkx",
	CursorInvisible:     "civis",
	CursorNormal:        "cnorm",
	CursorVisible:       "cvvis",
	ExitAttributeMode:   "sgr0",
	OrigPair:            "op",
	OrigColors:          "oc",
	InitializeColor:     "initc",
	InitializePair:      "initp",
	Bell:                "bel",

	AutoLeftMargin:   "bw",
	AutoRightMargin:  "am",
	EatNewlineGlitch: "xenl",
	CanChange:        "ccc",
	BackColorErase:   "bce",
	TrueColor:        "Tc",
	NoUTF8ACS:        "U8",

	Columns:      "cols",
	Lines:        "lines",
	MaxColors:    "colors",
	InitTabs:     "it",
	NoColorVideo: "ncv",
}

var capsByName map[string]Cap

func init() {
	capsByName = make(map[string]Cap, len(capNames))
	for c, n := range capNames {
		capsByName[n] = c
	}
}

// Kind reports which table c belongs to.
func (c Cap) Kind() Kind {
	switch {
	case c >= Columns:
		return KindNumber
	case c >= AutoLeftMargin:
		return KindBool
	}
	return KindString
}

// String returns the short terminfo name.
func (c Cap) String() string {
	if n, ok := capNames[c]; ok {
		return n
	}
	return fmt.Sprintf("Cap(%d)", int(c))
}

// Lookup finds a capability by its short terminfo name.
func Lookup(name string) (Cap, bool) {
	c, ok := capsByName[name]
	return c, ok
}

// All returns every known capability of kind k, in declaration
// order.
func All(k Kind) []Cap {
	var first, last Cap
	switch k {
	case KindString:
		first, last = CursorHome, lastString
	case KindBool:
		first, last = AutoLeftMargin, lastBool
	default:
		first, last = Columns, lastNumber
	}

	caps := make([]Cap, 0, last-first)
	for c := first; c < last; c++ {
		caps = append(caps, c)
	}
	return caps
}
