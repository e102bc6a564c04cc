package charmap

// Row is one entry of the character map. VT100 holds the byte sent
// while the alternate character set is active; zero means the glyph
// isn't available there.
type Row struct {
	Unicode rune
	VT100   rune
	PC      rune
	ASCII   rune
}

func (r Row) column(enc Encoding) rune {
	switch enc {
	case UTF8:
		return r.Unicode
	case VT100:
		return r.VT100
	case PC:
		return r.PC
	case ASCII:
		return r.ASCII
	}
	return r.Unicode
}

func (r *Row) setColumn(enc Encoding, v rune) {
	switch enc {
	case VT100:
		r.VT100 = v
	case PC:
		r.PC = v
	case ASCII:
		r.ASCII = v
	}
}

// Table is a session owned copy of the character map. The session
// patches it at startup, after which it is only read.
type Table struct {
	Rows []Row

	// Substitutions replace a glyph before it is looked up. Vendor
	// quirks fill it for characters the rows can't express.
	Substitutions map[rune]rune
}

// NewTable returns a fresh, unpatched copy of the default map.
func NewTable() *Table {
	rows := make([]Row, len(defaultRows))
	copy(rows, defaultRows)
	return &Table{
		Rows:          rows,
		Substitutions: make(map[rune]rune),
	}
}

// lookup returns the last row matching r.
func (t *Table) lookup(r rune) (Row, bool) {
	var (
		found Row
		ok    bool
	)
	for _, row := range t.Rows {
		if row.Unicode == r {
			found, ok = row, true
		}
	}
	return found, ok
}

// Encode returns the representation of r in enc. Unknown characters
// come back unchanged, except for PC, which falls back to the code
// page 437 table, and ASCII, which never returns more than one byte.
func (t *Table) Encode(r rune, enc Encoding) rune {
	out := r
	if row, ok := t.lookup(r); ok {
		out = row.column(enc)
	}

	switch enc {
	case PC:
		if out == r {
			if b, ok := UnicodeToCP437(r); ok {
				out = rune(b)
			}
		}
	case ASCII:
		if out > 0xff || out < 0 {
			out = '?'
		}
	}

	return out
}

// Encodable reports whether enc has a dedicated representation for r.
func (t *Table) Encodable(r rune, enc Encoding) bool {
	e := t.Encode(r, enc)
	return e > 0 && e != r
}

// Substitute applies the substitution map.
func (t *Table) Substitute(r rune) rune {
	if s, ok := t.Substitutions[r]; ok {
		return s
	}
	return r
}

// PatchVT100 rewrites the VT100 column from a terminal's acsc string
// (pairs of vt100 key, terminal byte). Glyphs the terminal doesn't
// list are zeroed.
func (t *Table) PatchVT100(acsc string) {
	alt := make(map[byte]byte, len(acsc)/2)
	for i := 0; i+1 < len(acsc); i += 2 {
		alt[acsc[i]] = acsc[i+1]
	}

	for _, k := range vt100KeyToUnicode {
		v := rune(alt[k.key])
		for i := range t.Rows {
			if t.Rows[i].Unicode == k.r {
				t.Rows[i].VT100 = v
			}
		}
	}
}

// Box drawing and symbol keys of the DEC special graphics set, as
// they appear in acsc.
const (
	VT100_KEY_RARROW    = '+' // arrow pointing right
	VT100_KEY_LARROW    = ',' // arrow pointing left
	VT100_KEY_UARROW    = '-' // arrow pointing up
	VT100_KEY_DARROW    = '.' // arrow pointing down
	VT100_KEY_BLOCK     = '0' // solid square block
	VT100_KEY_NSUP      = 'I' // n superscript
	VT100_KEY_BLACKRECT = '_' // black vertical rectangle
	VT100_KEY_DIAMOND   = '`' // diamond
	VT100_KEY_CKBOARD   = 'a' // checker board
	VT100_KEY_HTAB      = 'b' // horizontal tab symbol
	VT100_KEY_FF        = 'c' // form feed symbol
	VT100_KEY_CR        = 'd' // carriage return symbol
	VT100_KEY_LF        = 'e' // line feed symbol
	VT100_KEY_DEGREE    = 'f' // degree symbol
	VT100_KEY_PLMINUS   = 'g' // plus/minus
	VT100_KEY_BOARD     = 'h' // board of squares
	VT100_KEY_LANTERN   = 'i' // lantern symbol
	VT100_KEY_LRCORNER  = 'j' // lower right corner
	VT100_KEY_URCORNER  = 'k' // upper right corner
	VT100_KEY_ULCORNER  = 'l' // upper left corner
	VT100_KEY_LLCORNER  = 'm' // lower left corner
	VT100_KEY_PLUS      = 'n' // large plus or crossover
	VT100_KEY_S1        = 'o' // scan line 1
	VT100_KEY_S3        = 'p' // scan line 3
	VT100_KEY_HLINE     = 'q' // horizontal line
	VT100_KEY_S7        = 'r' // scan line 7
	VT100_KEY_S9        = 's' // scan line 9
	VT100_KEY_LTEE      = 't' // tee pointing right
	VT100_KEY_RTEE      = 'u' // tee pointing left
	VT100_KEY_BTEE      = 'v' // tee pointing up
	VT100_KEY_TTEE      = 'w' // tee pointing down
	VT100_KEY_VLINE     = 'x' // vertical line
	VT100_KEY_LEQUAL    = 'y' // less-than-or-equal-to
	VT100_KEY_GEQUAL    = 'z' // greater-than-or-equal-to
	VT100_KEY_PI        = '{' // greek pi
	VT100_KEY_NEQUAL    = '|' // not-equal
	VT100_KEY_STERLING  = '}' // UK pound sign
	VT100_KEY_BULLET    = '~' // bullet
)

var vt100KeyToUnicode = []struct {
	key byte
	r   rune
}{
	{VT100_KEY_RARROW, '►'},
	{VT100_KEY_LARROW, '◄'},
	{VT100_KEY_UARROW, '▲'},
	{VT100_KEY_DARROW, '▼'},
	{VT100_KEY_BLOCK, '█'},
	{VT100_KEY_NSUP, 'ⁿ'},
	{VT100_KEY_BLACKRECT, '▮'},
	{VT100_KEY_DIAMOND, '◆'},
	{VT100_KEY_CKBOARD, '▒'},
	{VT100_KEY_HTAB, '␉'},
	{VT100_KEY_FF, '␌'},
	{VT100_KEY_CR, '␍'},
	{VT100_KEY_LF, '␊'},
	{VT100_KEY_DEGREE, '°'},
	{VT100_KEY_PLMINUS, '±'},
	{VT100_KEY_BOARD, '␤'},
	{VT100_KEY_LANTERN, '␋'},
	{VT100_KEY_LRCORNER, '┘'},
	{VT100_KEY_URCORNER, '┐'},
	{VT100_KEY_ULCORNER, '┌'},
	{VT100_KEY_LLCORNER, '└'},
	{VT100_KEY_PLUS, '┼'},
	{VT100_KEY_S1, '⎺'},
	{VT100_KEY_S3, '⎻'},
	{VT100_KEY_HLINE, '─'},
	{VT100_KEY_S7, '⎼'},
	{VT100_KEY_S9, '⎽'},
	{VT100_KEY_LTEE, '├'},
	{VT100_KEY_RTEE, '┤'},
	{VT100_KEY_BTEE, '┴'},
	{VT100_KEY_TTEE, '┬'},
	{VT100_KEY_VLINE, '│'},
	{VT100_KEY_LEQUAL, '≤'},
	{VT100_KEY_GEQUAL, '≥'},
	{VT100_KEY_PI, 'π'},
	{VT100_KEY_NEQUAL, '≠'},
	{VT100_KEY_STERLING, '£'},
	{VT100_KEY_BULLET, '·'},
	{VT100_KEY_DIAMOND, '•'},
}

// Rows in the 0x1ab4..0x1afb range are private glyphs of the new
// graphical font and only exist in the PC column.
var defaultRows = []Row{
	{0x20ac, 0, 0xee, 'E'},     // € euro
	{0x00a3, '}', 0x9c, 'P'},   // £ pound
	{0x00a7, '$', 0x15, '$'},   // § section
	{0x25d8, '*', 0x08, '*'},   // ◘ inverse bullet
	{0x25d9, '*', 0x0a, '*'},   // ◙ inverse white circle
	{0x203c, '!', 0x13, '!'},   // ‼ double exclamation mark
	{0x2195, 'I', 0x12, 'I'},   // ↕ up down arrow
	{0x2194, '-', 0x1d, '-'},   // ↔ left right arrow
	{0x25ac, '_', 0x16, '_'},   // ▬ black rectangle
	{0x2191, '^', 0x18, '^'},   // ↑ upwards arrow
	{0x2193, 'v', 0x19, 'v'},   // ↓ downwards arrow
	{0x2192, '>', 0x1a, '>'},   // → rightwards arrow
	{0x2190, '<', 0x1b, '<'},   // ← leftwards arrow
	{0x03c0, '{', 0xe3, 'n'},   // π pi
	{0x207f, 'I', 0xfc, ' '},   // ⁿ superscript n
	{0x2265, 'z', 0xf2, '>'},   // ≥
	{0x2264, 'y', 0xf3, '<'},   // ≤
	{0x2260, 0, 0xd8, '#'},     // ≠
	{0x00b1, 'g', 0xf1, '#'},   // ±
	{0x00f7, '/', 0xf6, '/'},   // ÷
	{0x00d7, 0, 'x', 'x'},      // ×
	{0x02e3, '~', 0xfc, '`'},   // ˣ modifier letter small x
	{0x00b0, 'f', 0xb0, 'o'},   // ° degree
	{0x2022, '`', 0x04, '*'},   // • bullet
	{0x00b7, '`', 0xfa, '.'},   // · small bullet
	{0x25cf, '`', 0x04, '*'},   // ● black circle
	{0x2666, '`', 0x04, '*'},   // ◆ black diamond suit
	{0x2424, 'h', ' ', ' '},    // ␤ symbol for newline
	{0x240b, 'i', ' ', ' '},    // ␋ symbol for vertical tab
	{0x2409, 'b', ' ', ' '},    // ␉ symbol for horizontal tab
	{0x240c, 'c', ' ', ' '},    // ␌ symbol for form feed
	{0x240d, 'd', ' ', ' '},    // ␍ symbol for carriage return
	{0x240a, 'e', ' ', ' '},    // ␊ symbol for line feed
	{0x2592, 'a', 0xb0, '#'},   // ▒ medium shade
	{0x2588, '0', 0xdb, '#'},   // █ full block
	{0x25ae, '_', 0xfe, '#'},   // ▮ black vertical rectangle
	{0x258c, 0, 0xdd, ' '},     // ▌ left half block
	{0x2590, 0, 0xde, ' '},     // ▐ right half block
	{0x2584, 0, 0xdc, ' '},     // ▄ lower half block
	{0x2580, 0, 0xdf, ' '},     // ▀ upper half block
	{0x2500, 'q', 0xc4, '-'},   // ─
	{0x2502, 'x', 0xb3, '|'},   // │
	{0x250c, 'l', 0xda, '.'},   // ┌
	{0x2510, 'k', 0xbf, '.'},   // ┐
	{0x2514, 'm', 0xc0, '`'},   // └
	{0x2518, 'j', 0xd9, '\''},  // ┘
	{0x253c, 'n', 0xc5, '+'},   // ┼
	{0x252c, 'w', 0xc2, '+'},   // ┬
	{0x2524, 'u', 0xb4, '+'},   // ┤
	{0x251c, 't', 0xc3, '+'},   // ├
	{0x2534, 'v', 0xc1, '+'},   // ┴
	{0x23ba, 'o', '~', '~'},    // ⎺ scan line 1
	{0x23bb, 'p', 0xc4, '-'},   // ⎻ scan line 3
	{0x23bc, 'r', 0xc4, '-'},   // ⎼ scan line 7
	{0x23bd, 's', '_', '_'},    // ⎽ scan line 9
	{0x25b2, '-', 0x1e, '^'},   // ▲
	{0x25bc, '.', 0x1f, 'v'},   // ▼
	{0x25b6, '+', 0x10, '>'},   // ▶
	{0x25c0, ',', 0x11, '<'},   // ◀
	{0x25ba, '+', 0x10, '>'},   // ►
	{0x25c4, ',', 0x11, '<'},   // ◄
	{0x1ab4, 0, 0xb4, 0},       // reverse left arrow 2
	{0x1ab5, 0, 0xb5, 0},       // reverse right arrow 2
	{0x1ab7, 0, 0xb7, 0},       // radio button 3
	{0x1ab8, 0, 0xb8, 0},       // reverse border corner upper right
	{0x1ab9, 0, 0xb9, 0},       // reverse border line right
	{0x1aba, 0, 0xba, 0},       // reverse border line vertical left
	{0x1abb, 0, 0xbb, 0},       // reverse border corner lower right
	{0x1abc, 0, 0xbc, 0},       // border line left
	{0x1abd, 0, 0xbd, 0},       // reverse up arrow 2
	{0x1abe, 0, 0xbe, 0},       // reverse down arrow 2
	{0x1ac0, 0, 0xc0, 0},       // border corner middle lower left
	{0x1ac1, 0, 0xc1, 0},       // reverse up arrow 1
	{0x1ac2, 0, 0xc2, 0},       // reverse down arrow 1
	{0x1ac3, 0, 0xc3, 0},       // border line vertical right
	{0x1ac5, 0, 0xc5, 0},       // border line up and down
	{0x1ac6, 0, 0xc6, 0},       // shadow box middle
	{0x1ac7, 0, 0xc7, 0},       // shadow box hdd
	{0x1ac8, 0, 0xc8, 0},       // reverse left arrow 1
	{0x1ac9, 0, 0xc9, 0},       // reverse right arrow 1
	{0x1aca, 0, 0xca, 0},       // reverse menu button 1
	{0x1acb, 0, 0xcb, 0},       // reverse menu button 2
	{0x1acc, 0, 0xcc, 0},       // border corner middle upper left
	{0x1acd, 0, 0xcd, 0},       // shadow box cd
	{0x1ace, 0, 0xce, 0},       // shadow box left
	{0x1acf, 0, 0xcf, 0},       // border corner middle lower right
	{0x1ad0, 0, 0xd0, 0},       // border corner middle upper right
	{0x1ad1, 0, 0xd1, 0},       // shadow box net
	{0x1ad2, 0, 0xd2, 0},       // reverse up pointing triangle 1
	{0x1ad3, 0, 0xd3, 0},       // border corner lower left
	{0x1ad4, 0, 0xd4, 0},       // border line bottom
	{0x1ad5, 0, 0xd5, 0},       // radio button 2
	{0x1ad6, 0, 0xd6, 0},       // radio button 2 checked
	{0x1ad7, 0, 0xd7, 0},       // reverse down pointing triangle 1
	{0x1ad8, 0, 0xd8, 0},       // border line upper
	{0x1ad9, 0, 0xd9, 0},       // radio button 1
	{0x1ada, 0, 0xda, 0},       // border corner upper left
	{0x1adc, 0, 0xdc, 0},       // shadow box checked
	{0x1ae7, 0, 0xe7, 0},       // reverse border line right and left
	{0x1ae8, 0, 0xe8, 0},       // reverse up pointing triangle 2
	{0x1ae9, 0, 0xe9, 0},       // reverse down pointing triangle 2
	{0x1af4, 0, 0xf4, 0},       // reverse menu button 3
	{0x1af5, 0, 0xf5, 0},       // shadow box right
	{0x1afb, 0, 0xfb, 0},       // check mark
	{0x221a, 0, 0xfb, 'x'},     // √ square root
	{0x25cf, '`', 0x04, '*'},   // ● black circle, fallback
}
