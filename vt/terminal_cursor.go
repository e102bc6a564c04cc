package vt

// Move to an absolute column. Param col is assumed to be normalized
// to our 0 indexing by the caller.
func (s *Screen) cursorCHAorHPA(col int) {
	s.cursorMoveAbs(s.cur.row, col)
}

// Move to an absolute position. Params row and col are assumed to be
// normalized to our 0 indexing by the caller.
func (s *Screen) cursorCUPorHVP(row, col int) {
	s.cursorMoveAbs(row, col)
}

func (s *Screen) cursorHPR(n int) {
	s.cursorMoveAbs(s.cur.row, s.cur.col+n)
}

// Move to an absolute row. Param row is assumed to be normalized to
// our 0 indexing by the caller.
func (s *Screen) cursorVPA(row int) {
	s.cursorMoveAbs(row, s.cur.col)
}

func (s *Screen) cursorVPR(n int) {
	s.cursorMoveAbs(s.cur.row+n, s.cur.col)
}

func (s *Screen) cursorUp(n int) {
	if n == 0 {
		n = 1
	}
	s.cursorMoveAbs(s.cur.row-n, s.cur.col)
}

func (s *Screen) cursorDown(n int) {
	if n == 0 {
		n = 1
	}
	s.cursorMoveAbs(s.cur.row+n, s.cur.col)
}

func (s *Screen) cursorForward(n int) {
	if n == 0 {
		n = 1
	}
	s.cursorMoveAbs(s.cur.row, s.cur.col+n)
}

func (s *Screen) cursorBack(n int) {
	if n == 0 {
		n = 1
	}
	s.cursorMoveAbs(s.cur.row, s.cur.col-n)
}

// cursorCHT moves forward n tab stops, stopping at the right margin.
func (s *Screen) cursorCHT(n int) {
	col := s.cur.col
	for ; n > 0 && col < s.cols()-1; n-- {
		col++
		for col < s.cols()-1 && !s.tabs[col] {
			col++
		}
	}
	s.cursorMoveAbs(s.cur.row, col)
}

// cursorCBT moves back n tab stops, stopping at the left margin.
func (s *Screen) cursorCBT(n int) {
	col := s.cur.col
	for ; n > 0 && col > 0; n-- {
		col--
		for col > 0 && !s.tabs[col] {
			col--
		}
	}
	s.cursorMoveAbs(s.cur.row, col)
}

func (s *Screen) cursorMoveAbs(row, col int) {
	s.wrapPending = false
	s.cur = cursor{row: row, col: col}.clamp(s.rows(), s.cols())
}
