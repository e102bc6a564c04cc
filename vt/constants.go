package vt

const (
	// Like it's 1975 baby!
	DEF_ROWS = 24
	DEF_COLS = 80

	DEF_TABSTOP = 8
)

const (
	BEL   = 0x07 // ^G Bell
	BS    = 0x08 // ^H Backspace
	TAB   = 0x09 // ^I Tab \t
	LF    = 0x0a // ^J Line feed \n
	VT    = 0x0b // ^K Vertical tab \v
	FF    = 0x0c // ^L Form feed \f
	CR    = 0x0d // ^M Carriage return \r
	SO    = 0x0e // ^N Switch to G1/alternate charset as default
	SI    = 0x0f // ^O Switch to G0 charset as default
	ESC   = 0x1b
	DECSC = '7' // DECSC - save cursor
	DECRC = '8' // DECRC - restore cursor
	IND   = 'D' // IND - index
	NEL   = 'E' // NEL - newline
	HTS   = 'H' // HTS - horizontal tab set
	RI    = 'M' // RI - reverse index
	RIS   = 'c' // RIS - Full reset
	CSI   = 0x5b
	OSC   = 0x5d
	ST    = '\\'
)

// CSI codes
const (
	CSI_CUU  = 'A' // cursor up
	CSI_CUD  = 'B' // cursor down
	CSI_CUF  = 'C' // cursor forward
	CSI_CUB  = 'D' // cursor back
	CSI_CNL  = 'E' // cursor next line
	CSI_CPL  = 'F' // cursor previous line
	CSI_CHA  = 'G' // cursor horizontal absolute
	CSI_CUP  = 'H' // cursor position
	CSI_CHT  = 'I' // cursor forward tabulation
	CSI_ED   = 'J' // erase in display
	CSI_EL   = 'K' // erase in line
	CSI_ECH  = 'X' // erase characters
	CSI_CBT  = 'Z' // cursor backward tabulation
	CSI_HPA  = '`' // character position absolute (column)
	CSI_HPR  = 'a' // character position relative (column)
	CSI_REP  = 'b' // repeat the preceding graphic character
	CSI_VPA  = 'd' // line position absolute (row)
	CSI_VPR  = 'e' // line position relative (row)
	CSI_HVP  = 'f' // horizontal vertical position
	CSI_TBC  = 'g' // tab stop clear
	CSI_SET  = 'h'
	CSI_RST  = 'l'
	CSI_SGR  = 'm' // select graphic rendition
	CSI_SCP  = 's' // save cursor position (SCO)
	CSI_RCP  = 'u' // restore cursor position (SCO)
	CSI_WOPS = 't' // window manipulation, xterm/dtterm stuff mostly
)

// CSI private mode parameter codes
const (
	PRIV_DECAWM       = 7  // DEC autowrap mode
	PRIV_SHOW_CURSOR  = 25 // Show cursor DECTCEM
	PRIV_REVERSE_WRAP = 45 // Xterm's reverse-wraparound mode
)

// Modes for CSI_TBC
const (
	TBC_CUR = 0 // clear current tab stop
	TBC_ALL = 3 // clear all tab stops
)
