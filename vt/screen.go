// Copyright (c) 2025, Ben Walton
// All rights reserved.
package vt

import (
	"log/slog"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Options pick the wrapping behaviour the screen emulates. They map
// onto the am, xenl and bw terminal capabilities.
type Options struct {
	AutoWrap    bool
	EatNewline  bool
	ReverseWrap bool
	TabStop     int
}

// Screen is a minimal VT style screen. It tracks the cursor and the
// printed cells so that generated output can be replayed and
// checked; there are no attributes, scrolling regions or charsets.
type Screen struct {
	p *parser

	opts     Options
	data     [][]rune
	cur      cursor
	savedCur cursor
	tabs     []bool

	// Set after printing in the last column when the terminal
	// defers the wrap until the next printable character.
	wrapPending bool
	lastPrinted rune
	bells       int
}

func NewScreen(rows, cols int, opts Options) *Screen {
	if rows <= 0 {
		rows = DEF_ROWS
	}
	if cols <= 0 {
		cols = DEF_COLS
	}
	if opts.TabStop <= 0 {
		opts.TabStop = DEF_TABSTOP
	}

	s := &Screen{opts: opts}
	s.data = make([][]rune, rows)
	for r := range s.data {
		s.data[r] = newRow(cols)
	}
	s.tabs = makeTabs(cols, opts.TabStop)
	s.p = newParser(s)
	return s
}

func newRow(cols int) []rune {
	row := make([]rune, cols)
	for i := range row {
		row[i] = ' '
	}
	return row
}

func makeTabs(cols, every int) []bool {
	tabs := make([]bool, cols)
	for i := every; i < cols; i += every {
		tabs[i] = true
	}
	return tabs
}

// Write feeds terminal output to the screen. It never fails.
func (s *Screen) Write(p []byte) (int, error) {
	s.p.parse(p)
	return len(p), nil
}

func (s *Screen) rows() int {
	return len(s.data)
}

func (s *Screen) cols() int {
	return len(s.data[0])
}

// Cursor reports the cursor as (col, row). A pending wrap reports the
// column just past the right margin.
func (s *Screen) Cursor() (int, int) {
	if s.wrapPending {
		return s.cols(), s.cur.row
	}
	return s.cur.col, s.cur.row
}

// SetCursor places the cursor directly. col may equal the width to
// model a cursor parked after writing the last column.
func (s *Screen) SetCursor(col, row int) {
	s.wrapPending = false
	if col >= s.cols() {
		s.wrapPending = s.opts.AutoWrap && s.opts.EatNewline
		col = s.cols() - 1
	}
	s.cursorMoveAbs(row, col)
}

// Row returns a copy of the cells in row.
func (s *Screen) Row(row int) []rune {
	if row < 0 || row >= s.rows() {
		return nil
	}
	return append([]rune(nil), s.data[row]...)
}

// SetRow replaces the start of row with text without moving the
// cursor.
func (s *Screen) SetRow(row int, text string) {
	if row < 0 || row >= s.rows() {
		return
	}
	col := 0
	for _, r := range text {
		if col >= s.cols() {
			break
		}
		s.data[row][col] = r
		col++
	}
}

func (s *Screen) String() string {
	var sb strings.Builder
	for i, row := range s.data {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.TrimRight(string(row), " "))
	}
	return sb.String()
}

// Bells is the number of BEL characters seen.
func (s *Screen) Bells() int {
	return s.bells
}

func (s *Screen) print(r rune) {
	if s.wrapPending {
		s.wrapPending = false
		s.lineFeed()
		s.cur.col = 0
	}

	// Wide runes occupy their first cell only; the model is used
	// for cursor checks and narrow text.
	if runewidth.RuneWidth(r) == 0 {
		slog.Debug("dropping zero width rune", "r", r)
		return
	}

	s.data[s.cur.row][s.cur.col] = r
	s.lastPrinted = r

	if s.cur.col < s.cols()-1 {
		s.cur.col++
		return
	}

	if !s.opts.AutoWrap {
		return
	}
	if s.opts.EatNewline {
		s.wrapPending = true
		return
	}
	s.lineFeed()
	s.cur.col = 0
}

func (s *Screen) execute(b byte) {
	switch b {
	case BEL:
		s.bells++
	case BS:
		s.backspace()
	case TAB:
		s.cursorCHT(1)
	case LF, VT, FF:
		s.wrapPending = false
		s.lineFeed()
	case CR:
		s.wrapPending = false
		s.cur.col = 0
	default:
		slog.Debug("ignoring control", "b", b)
	}
}

func (s *Screen) escDispatch(intermediate []rune, last byte) {
	if len(intermediate) > 0 {
		// charset designations and the like
		return
	}

	switch last {
	case DECSC:
		s.savedCur = s.cur
	case DECRC:
		s.wrapPending = false
		s.cur = s.savedCur
	case IND:
		s.wrapPending = false
		s.lineFeed()
	case NEL:
		s.wrapPending = false
		s.lineFeed()
		s.cur.col = 0
	case HTS:
		s.tabs[s.cur.col] = true
	case RI:
		s.cursorUp(1)
	case RIS:
		*s = *NewScreen(s.rows(), s.cols(), s.opts)
	default:
		slog.Debug("ignoring ESC", "last", string(last))
	}
}

func (s *Screen) csiDispatch(params *parameters, intermediate []rune, last byte) {
	if len(intermediate) > 0 {
		if intermediate[0] == '?' && (last == CSI_SET || last == CSI_RST) {
			s.setPrivate(params, last == CSI_SET)
		}
		return
	}

	n := params.getItem(0, 1)

	switch last {
	case CSI_CUU:
		s.cursorUp(n)
	case CSI_CUD:
		s.cursorDown(n)
	case CSI_CUF:
		s.cursorForward(n)
	case CSI_CUB:
		s.cursorBack(n)
	case CSI_CNL:
		s.cursorDown(n)
		s.cur.col = 0
	case CSI_CPL:
		s.cursorUp(n)
		s.cur.col = 0
	case CSI_CHA, CSI_HPA:
		s.cursorCHAorHPA(n - 1)
	case CSI_HPR:
		s.cursorHPR(n)
	case CSI_VPA:
		s.cursorVPA(n - 1)
	case CSI_VPR:
		s.cursorVPR(n)
	case CSI_CUP, CSI_HVP:
		s.cursorCUPorHVP(n-1, params.getItem(1, 1)-1)
	case CSI_CHT:
		s.cursorCHT(n)
	case CSI_CBT:
		s.cursorCBT(n)
	case CSI_REP:
		if s.lastPrinted != 0 {
			r := s.lastPrinted
			for i := 0; i < n; i++ {
				s.print(r)
			}
		}
	case CSI_ECH:
		s.erase(s.cur.row, s.cur.col, s.cur.col+n)
	case CSI_EL:
		switch params.getItem(0, 0) {
		case 0:
			s.erase(s.cur.row, s.cur.col, s.cols())
		case 1:
			s.erase(s.cur.row, 0, s.cur.col+1)
		case 2:
			s.erase(s.cur.row, 0, s.cols())
		}
	case CSI_ED:
		if params.getItem(0, 0) == 2 {
			for r := range s.data {
				s.data[r] = newRow(s.cols())
			}
		}
	case CSI_TBC:
		switch params.getItem(0, TBC_CUR) {
		case TBC_CUR:
			s.tabs[s.cur.col] = false
		case TBC_ALL:
			s.tabs = make([]bool, s.cols())
		}
	case CSI_SCP:
		s.savedCur = s.cur
	case CSI_RCP:
		s.wrapPending = false
		s.cur = s.savedCur
	case CSI_SGR, CSI_WOPS:
		// attributes and window operations don't move the cursor
	default:
		slog.Debug("ignoring CSI", "last", string(last), "params", params.items)
	}
}

func (s *Screen) setPrivate(params *parameters, on bool) {
	for i := 0; i < params.numItems(); i++ {
		switch params.getItem(i, 0) {
		case PRIV_DECAWM:
			s.opts.AutoWrap = on
		case PRIV_REVERSE_WRAP:
			s.opts.ReverseWrap = on
		}
	}
}

func (s *Screen) erase(row, from, to int) {
	if to > s.cols() {
		to = s.cols()
	}
	for c := from; c < to; c++ {
		s.data[row][c] = ' '
	}
}

// lineFeed moves down a row, scrolling the screen at the bottom.
func (s *Screen) lineFeed() {
	if s.cur.row < s.rows()-1 {
		s.cur.row++
		return
	}
	copy(s.data, s.data[1:])
	s.data[s.rows()-1] = newRow(s.cols())
}

func (s *Screen) backspace() {
	s.wrapPending = false
	switch {
	case s.cur.col > 0:
		s.cur.col--
	case s.opts.ReverseWrap && s.cur.row > 0:
		s.cur.row--
		s.cur.col = s.cols() - 1
	}
}
