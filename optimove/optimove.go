package optimove

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrOutOfBounds = errors.New("cursor position outside the screen")
	ErrNoMethod    = errors.New("terminal has no usable cursor movement")
)

// Point is a 0 indexed screen position.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Size is the screen geometry in cells.
type Size struct {
	Width, Height int
}

func (s Size) contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.Width && p.Y < s.Height
}

// Method identifies how a movement was built. Candidates are tried
// in this order and the first of equally cheap ones wins.
type Method uint8

const (
	Identity Method = iota
	HomeRelative
	CarriageReturnRelative
	Absolute
	RowColumn
	Relative
	None
)

var methodNames = map[Method]string{
	Identity:               "identity",
	HomeRelative:           "home+relative",
	CarriageReturnRelative: "cr+relative",
	Absolute:               "absolute",
	RowColumn:              "row+column",
	Relative:               "relative",
	None:                   "none",
}

func (m Method) String() string {
	return methodNames[m]
}

// Movement is a planned cursor move. Seq may still contain $<n>
// padding markers.
type Movement struct {
	Seq    string
	Cost   int
	Method Method
}

// MoveCursor returns the cheapest sequence that takes the cursor from
// from to to. It returns nil when to is off screen or the terminal
// can't move the cursor at all; identical positions give an empty,
// non-nil slice.
func MoveCursor(env *Env, baud int, size Size, from, to Point) []byte {
	m, err := Plan(env, baud, size, from, to)
	if err != nil {
		return nil
	}
	return []byte(m.Seq)
}

// Plan is MoveCursor with the chosen method and its cost.
func Plan(env *Env, baud int, size Size, from, to Point) (Movement, error) {
	return PlanThrough(env, baud, size, from, to, nil)
}

// PlanThrough also considers reprinting the cells between from and to
// when both are on the same row. row holds what is currently shown on
// that row; cells that aren't plain printable ASCII disable the
// option.
//
// Reprinted cells come out in whatever attributes and character set
// are current when the sequence is written. Callers must set any cell
// drawn differently (bold, colored, line drawing) to 0 in row, which
// keeps the planner from printing across it.
func PlanThrough(env *Env, baud int, size Size, from, to Point, row []rune) (Movement, error) {
	if size.Width <= 0 || size.Height <= 0 || !size.contains(to) {
		return Movement{}, fmt.Errorf("move to %v on %dx%d: %w", to, size.Width, size.Height, ErrOutOfBounds)
	}
	if from.X < 0 || from.Y < 0 || from.Y >= size.Height {
		return Movement{}, fmt.Errorf("move from %v on %dx%d: %w", from, size.Width, size.Height, ErrOutOfBounds)
	}

	p := &planner{
		env:       env,
		costModel: costModel{charDur: CharDuration(baud)},
		size:      size,
		row:       row,
		guard:     env.canAddress(),
	}

	var (
		prefix     string
		prefixCost int
		known      = true
	)

	// The cursor is parked past the right margin after writing the
	// last column. Don't rely on how the terminal wraps.
	if from.X >= size.Width {
		switch {
		case !env.AutoRightMargin:
			from.X = size.Width - 1
		case env.CarriageReturn.usable():
			prefix = env.CarriageReturn.Seq
			prefixCost = p.capCost(prefix)
			from.X = 0
			if !env.EatNewlineGlitch {
				p.row = nil
				if from.Y < size.Height-1 {
					from.Y++
				}
			}
		default:
			known = false
			p.row = nil
		}
	}

	if known && from == to {
		return Movement{Seq: prefix, Cost: prefixCost, Method: Identity}, nil
	}

	best := Movement{Cost: LONG_DURATION, Method: None}
	try := func(m Method, seq string, cost int) {
		if cost < best.Cost {
			best = Movement{Seq: seq, Cost: cost, Method: m}
		}
	}

	if env.Home.usable() {
		s, c := p.relative(Point{0, 0}, to, nil)
		try(HomeRelative, env.Home.Seq+s, add(p.capCost(env.Home.Seq), c))
	}

	if known && to.X == 0 && env.CarriageReturn.usable() {
		s, c := p.relative(Point{0, from.Y}, to, nil)
		try(CarriageReturnRelative, env.CarriageReturn.Seq+s, add(p.capCost(env.CarriageReturn.Seq), c))
	}

	if env.Address.usable() {
		s := env.instantiate(env.Address, to.Y, to.X)
		try(Absolute, s, p.capCost(s))
	}

	if s, c := p.rowColumn(from, to, known); c < LONG_DURATION {
		try(RowColumn, s, c)
	}

	if known {
		s, c := p.relativeMethod(from, to)
		try(Relative, s, c)
	}

	if best.Cost >= LONG_DURATION {
		return Movement{}, fmt.Errorf("move %v to %v: %w", from, to, ErrNoMethod)
	}

	best.Seq = prefix + best.Seq
	best.Cost = add(prefixCost, best.Cost)
	return best, nil
}

type planner struct {
	env *Env
	costModel
	size  Size
	row   []rune
	guard bool
}

func (p *planner) rowColumn(from, to Point, known bool) (string, int) {
	env := p.env
	switch {
	case known && from.Y == to.Y:
		if !env.ColumnAddress.usable() {
			return "", LONG_DURATION
		}
		s := env.instantiate(env.ColumnAddress, to.X)
		return s, p.capCost(s)
	case known && from.X == to.X:
		if !env.RowAddress.usable() {
			return "", LONG_DURATION
		}
		s := env.instantiate(env.RowAddress, to.Y)
		return s, p.capCost(s)
	}

	if !env.RowAddress.usable() || !env.ColumnAddress.usable() {
		return "", LONG_DURATION
	}
	rs := env.instantiate(env.RowAddress, to.Y)
	cs := env.instantiate(env.ColumnAddress, to.X)
	return rs + cs, add(p.capCost(rs), p.capCost(cs))
}

// relativeMethod is plain stepping from the current position, plus
// the variants through the last line and the left margin wrap.
func (p *planner) relativeMethod(from, to Point) (string, int) {
	env := p.env

	var transit []rune
	if from.Y == to.Y {
		transit = p.row
	}

	best, cost := p.relative(from, to, transit)

	if to.Y == p.size.Height-1 && env.CursorToLL.usable() {
		s, c := p.relative(Point{0, to.Y}, to, transit)
		if total := add(p.capCost(env.CursorToLL.Seq), c); total < cost {
			best, cost = env.CursorToLL.Seq+s, total
		}
	}

	// cub1 from column 0 wraps to the end of the previous line.
	if env.AutoLeftMargin && !env.EatNewlineGlitch && from.Y > 0 &&
		env.CarriageReturn.usable() && env.CursorLeft.usable() {
		s, c := p.relative(Point{p.size.Width - 1, from.Y - 1}, to, nil)
		pre := env.CarriageReturn.Seq + env.CursorLeft.Seq
		if total := add(p.capCost(env.CarriageReturn.Seq), p.capCost(env.CursorLeft.Seq), c); total < cost {
			best, cost = pre+s, total
		}
	}

	return best, cost
}

// relative steps vertically, then horizontally on the target row.
func (p *planner) relative(from, to Point, transit []rune) (string, int) {
	if p.guard && (abs(to.X-from.X) > MOVE_LIMIT || abs(to.Y-from.Y) > MOVE_LIMIT) {
		return "", LONG_DURATION
	}

	vs, vc := p.vertical(from.Y, to.Y)
	if vc >= LONG_DURATION {
		return "", LONG_DURATION
	}
	if from.Y != to.Y {
		transit = nil
	}
	hs, hc := p.horizontal(from.X, to.X, transit)
	if hc >= LONG_DURATION {
		return "", LONG_DURATION
	}

	return vs + hs, vc + hc
}

func (p *planner) vertical(y1, y2 int) (string, int) {
	env := p.env
	dy := y2 - y1

	switch {
	case dy == 0:
		return "", 0
	case dy > 0:
		best, cost := p.parm(env.ParmDown, dy)
		down := env.CursorDown
		// A newline right after a wrap is swallowed.
		if env.EatNewlineGlitch && down.Seq == "\n" {
			down = Cap{}
		}
		if s, c := p.repeat(down, dy); c < cost {
			best, cost = s, c
		}
		return best, cost
	default:
		best, cost := p.parm(env.ParmUp, -dy)
		if s, c := p.repeat(env.CursorUp, -dy); c < cost {
			best, cost = s, c
		}
		return best, cost
	}
}

func (p *planner) horizontal(x1, x2 int, transit []rune) (string, int) {
	switch {
	case x2 > x1:
		return p.right(x1, x2, transit)
	case x2 < x1:
		return p.left(x1, x2)
	}
	return "", 0
}

func (p *planner) right(x1, x2 int, transit []rune) (string, int) {
	env := p.env

	best, cost := p.parm(env.ParmRight, x2-x1)
	if s, c := p.repeat(env.CursorRight, x2-x1); c < cost {
		best, cost = s, c
	}

	if env.Tab.usable() && env.TabStop > 0 {
		var (
			sb  strings.Builder
			tc  int
			pos = x1
		)
		tabCost := p.capCost(env.Tab.Seq)
		for {
			next := pos + env.TabStop - pos%env.TabStop
			if next > x2 {
				break
			}
			sb.WriteString(env.Tab.Seq)
			tc = add(tc, tabCost)
			pos = next
		}

		if pos > x1 {
			rs, rc := p.repeat(env.CursorRight, x2-pos)
			if ps, pc := p.print(transit, pos, x2); pc < rc {
				rs, rc = ps, pc
			}
			if total := add(tc, rc); total < cost {
				best, cost = sb.String()+rs, total
			}
		}
	}

	if s, c := p.print(transit, x1, x2); c < cost {
		best, cost = s, c
	}

	return best, cost
}

func (p *planner) left(x1, x2 int) (string, int) {
	env := p.env

	best, cost := p.parm(env.ParmLeft, x1-x2)
	if s, c := p.repeat(env.CursorLeft, x1-x2); c < cost {
		best, cost = s, c
	}

	if env.BackTab.usable() && env.TabStop > 0 {
		pos, tabs := x1, 0
		for {
			next := -1
			if pos > 0 {
				next = ((pos - 1) / env.TabStop) * env.TabStop
			}
			if next < x2 {
				break
			}
			tabs++
			pos = next
		}

		if tabs > 0 {
			ts, tc := p.repeat(env.BackTab, tabs)
			rs, rc := p.repeat(env.CursorLeft, pos-x2)
			if total := add(tc, rc); total < cost {
				best, cost = ts+rs, total
			}
		}
	}

	return best, cost
}

// print reprints the cells in [x1, x2) of transit. It never writes
// the last column so no wrap can happen.
func (p *planner) print(transit []rune, x1, x2 int) (string, int) {
	n := x2 - x1
	if n <= 0 {
		return "", 0
	}
	if len(transit) < x2 || x2 >= p.size.Width {
		return "", LONG_DURATION
	}

	cells := transit[x1:x2]
	same := true
	for _, r := range cells {
		if r < 0x20 || r >= 0x7f {
			return "", LONG_DURATION
		}
		if r != cells[0] {
			same = false
		}
	}

	best, cost := string(cells), p.printCost(n)

	if same && n > 1 && p.env.RepeatChar.usable() {
		s := p.env.instantiate(p.env.RepeatChar, int(cells[0]), n)
		if c := p.capCost(s); c < cost {
			best, cost = s, c
		}
	}

	return best, cost
}

func (p *planner) parm(c Cap, n int) (string, int) {
	if !c.usable() {
		return "", LONG_DURATION
	}
	s := p.env.instantiate(c, n)
	return s, p.capCost(s)
}

func (p *planner) repeat(c Cap, n int) (string, int) {
	if n == 0 {
		return "", 0
	}
	if !c.usable() {
		return "", LONG_DURATION
	}
	unit := p.capCost(c.Seq)
	if unit >= LONG_DURATION {
		return "", LONG_DURATION
	}
	return strings.Repeat(c.Seq, n), add(unit * n)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
