package charmap

// ApplyCygwinQuirks adjusts the map for the Cygwin console, which
// can't print several code page 437 glyphs.
func (t *Table) ApplyCygwinQuirks() {
	for i := range t.Rows {
		row := &t.Rows[i]
		switch row.Unicode {
		case '▲':
			row.setColumn(PC, 0x18)
		case '▼':
			row.setColumn(PC, 0x19)
		case '◘', '◙', '↕', '↔', '‼', '▬', '→', '§', '√':
			row.setColumn(PC, row.ASCII)
		}
	}

	for from, to := range map[rune]rune{
		'•': '*',
		'●': '*',
		'◘': '*',
		'○': '*',
		'◙': '*',
		'♪': '♫',
		'√': 'x',
		'ˣ': '`',
	} {
		t.Substitutions[from] = to
	}
}

// ApplyTeraTermQuirks replaces PC glyphs in the control range, which
// Tera Term refuses to print, with their ASCII fallback.
func (t *Table) ApplyTeraTermQuirks() {
	for i := range t.Rows {
		if t.Rows[i].PC < 0x20 {
			t.Rows[i].setColumn(PC, t.Rows[i].ASCII)
		}
	}
}
