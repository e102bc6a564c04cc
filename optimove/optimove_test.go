package optimove

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/bdwalton/termcore/capability"
	"github.com/bdwalton/termcore/vt"
)

var screen80x24 = Size{Width: 80, Height: 24}

// admEnv is a Lear Siegler ADM-3A style terminal: single byte
// relative moves and a long absolute address.
func admEnv() *capability.Static {
	s := capability.NewStatic()
	s.Strings[capability.CursorHome] = "\x1e"
	s.Strings[capability.CarriageReturn] = "\r"
	s.Strings[capability.CursorDown] = "\n"
	s.Strings[capability.CursorUp] = "\x0b"
	s.Strings[capability.CursorRight] = "\x0c"
	s.Strings[capability.CursorLeft] = "\b"
	s.Strings[capability.CursorAddress] = "\x1b[%i%p1%d;%p2%dH"
	s.Bools[capability.AutoRightMargin] = true
	return s
}

func xtermEnv() *capability.Static {
	s := capability.NewStatic()
	for c, v := range map[capability.Cap]string{
		capability.CursorHome:      "\x1b[H",
		capability.CarriageReturn:  "\r",
		capability.Tab:             "\t",
		capability.BackTab:         "\x1b[Z",
		capability.CursorUp:        "\x1b[A",
		capability.CursorDown:      "\n",
		capability.CursorLeft:      "\b",
		capability.CursorRight:     "\x1b[C",
		capability.CursorAddress:   "\x1b[%i%p1%d;%p2%dH",
		capability.ColumnAddress:   "\x1b[%i%p1%dG",
		capability.RowAddress:      "\x1b[%i%p1%dd",
		capability.ParmUpCursor:    "\x1b[%p1%dA",
		capability.ParmDownCursor:  "\x1b[%p1%dB",
		capability.ParmLeftCursor:  "\x1b[%p1%dD",
		capability.ParmRightCursor: "\x1b[%p1%dC",
		capability.EraseChars:      "\x1b[%p1%dX",
		capability.ClrEol:          "\x1b[K",
		capability.ClrBol:          "\x1b[1K",
	} {
		s.Strings[c] = v
	}
	s.Bools[capability.AutoRightMargin] = true
	s.Bools[capability.EatNewlineGlitch] = true
	s.Numbers[capability.InitTabs] = 8
	return s
}

func TestCharDuration(t *testing.T) {
	cases := []struct {
		baud, want int
	}{
		{9600, 9},
		{38400, 2},
		{300, 300},
		{1000000, 1},
		{0, 1},
		{-5, 1},
	}

	for i, c := range cases {
		if got := CharDuration(c.baud); got != c.want {
			t.Errorf("%d: Got %d, wanted %d", i, got, c.want)
		}
	}
}

func TestAdd(t *testing.T) {
	cases := []struct {
		costs []int
		want  int
	}{
		{nil, 0},
		{[]int{1, 2, 3}, 6},
		{[]int{1, LONG_DURATION}, LONG_DURATION},
		{[]int{LONG_DURATION - 1, 5}, LONG_DURATION},
	}

	for i, c := range cases {
		if got := add(c.costs...); got != c.want {
			t.Errorf("%d: Got %d, wanted %d", i, got, c.want)
		}
	}
}

func TestCapCost(t *testing.T) {
	m := costModel{charDur: 9}
	cases := []struct {
		seq  string
		want int
	}{
		{"\r", 10},
		{"\x1b[2;3H", 55},
		{"\x1b[H$<5>", 27 + 50 + 1},
		{"", LONG_DURATION},
		{"$<5>", LONG_DURATION},
	}

	for i, c := range cases {
		if got := m.capCost(c.seq); got != c.want {
			t.Errorf("%d: Got %d, wanted %d", i, got, c.want)
		}
	}
}

// The ADM-3A style fixture at 9600 baud: home+relative costs 40, cup
// costs 55 and stepping from the origin costs 30.
func TestGoldenRelative(t *testing.T) {
	env := NewEnv(admEnv())
	m, err := Plan(env, 9600, screen80x24, Point{0, 0}, Point{2, 1})
	if err != nil {
		t.Fatalf("Plan() = %v", err)
	}

	if m.Seq != "\n\x0c\x0c" || m.Cost != 30 || m.Method != Relative {
		t.Errorf("Got (%q, %d, %s), wanted (%q, 30, relative)", m.Seq, m.Cost, m.Method, "\n\x0c\x0c")
	}

	if got := MoveCursor(env, 9600, screen80x24, Point{0, 0}, Point{2, 1}); string(got) != "\n\x0c\x0c" {
		t.Errorf("MoveCursor() = %q, wanted %q", got, "\n\x0c\x0c")
	}

	// From elsewhere on the screen homing first is cheapest.
	m, err = Plan(env, 9600, screen80x24, Point{40, 12}, Point{2, 1})
	if err != nil {
		t.Fatalf("Plan() = %v", err)
	}
	if m.Seq != "\x1e\n\x0c\x0c" || m.Method != HomeRelative || m.Cost != 40 {
		t.Errorf("Got (%q, %d, %s), wanted home+relative", m.Seq, m.Cost, m.Method)
	}
}

func TestIdentity(t *testing.T) {
	env := NewEnv(xtermEnv())
	for _, p := range []Point{{0, 0}, {79, 23}, {17, 3}} {
		got := MoveCursor(env, 9600, screen80x24, p, p)
		if got == nil || len(got) != 0 {
			t.Errorf("%v: Got %q, wanted empty non-nil", p, got)
		}
		m, _ := Plan(env, 9600, screen80x24, p, p)
		if m.Method != Identity || m.Cost != 0 {
			t.Errorf("%v: Got (%s, %d), wanted (identity, 0)", p, m.Method, m.Cost)
		}
	}
}

func TestDeterministic(t *testing.T) {
	env := NewEnv(xtermEnv())
	from, to := Point{33, 7}, Point{2, 19}
	first := MoveCursor(env, 38400, screen80x24, from, to)
	for i := 0; i < 10; i++ {
		if got := MoveCursor(env, 38400, screen80x24, from, to); string(got) != string(first) {
			t.Fatalf("%d: Got %q, wanted %q", i, got, first)
		}
	}
}

func TestOutOfBounds(t *testing.T) {
	env := NewEnv(xtermEnv())
	cases := []struct {
		size     Size
		from, to Point
	}{
		{screen80x24, Point{0, 0}, Point{80, 0}},
		{screen80x24, Point{0, 0}, Point{0, 24}},
		{screen80x24, Point{0, 0}, Point{-1, 0}},
		{screen80x24, Point{-1, 0}, Point{1, 1}},
		{screen80x24, Point{0, 24}, Point{1, 1}},
		{Size{}, Point{0, 0}, Point{0, 0}},
	}

	for i, c := range cases {
		if _, err := Plan(env, 9600, c.size, c.from, c.to); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("%d: Got %v, wanted ErrOutOfBounds", i, err)
		}
		if got := MoveCursor(env, 9600, c.size, c.from, c.to); got != nil {
			t.Errorf("%d: Got %q, wanted nil", i, got)
		}
	}
}

func TestNoMethod(t *testing.T) {
	env := NewEnv(capability.NewStatic())
	if _, err := Plan(env, 9600, screen80x24, Point{0, 0}, Point{1, 1}); !errors.Is(err, ErrNoMethod) {
		t.Errorf("Got %v, wanted ErrNoMethod", err)
	}
}

func TestWideMoveGuard(t *testing.T) {
	s := capability.NewStatic()
	s.Strings[capability.CursorAddress] = "\x1b[%i%p1%d;%p2%dH"
	s.Strings[capability.ParmRightCursor] = "\x1b[%p1%dC"

	m, err := Plan(NewEnv(s), 9600, screen80x24, Point{0, 0}, Point{10, 0})
	if err != nil {
		t.Fatalf("Plan() = %v", err)
	}
	if m.Method != Absolute || m.Seq != "\x1b[1;11H" {
		t.Errorf("Got (%q, %s), wanted absolute", m.Seq, m.Method)
	}

	// Short moves still step.
	m, _ = Plan(NewEnv(s), 9600, screen80x24, Point{0, 0}, Point{7, 0})
	if m.Method != Relative || m.Seq != "\x1b[7C" {
		t.Errorf("Got (%q, %s), wanted relative", m.Seq, m.Method)
	}

	// Without addressing there is nothing to guard.
	delete(s.Strings, capability.CursorAddress)
	m, _ = Plan(NewEnv(s), 9600, screen80x24, Point{0, 0}, Point{10, 0})
	if m.Method != Relative || m.Seq != "\x1b[10C" {
		t.Errorf("Got (%q, %s), wanted unguarded relative", m.Seq, m.Method)
	}
}

func TestEatNewlineGlitch(t *testing.T) {
	s := capability.NewStatic()
	s.Strings[capability.CursorDown] = "\n"
	s.Strings[capability.CursorAddress] = "\x1b[%i%p1%d;%p2%dH"

	m, _ := Plan(NewEnv(s), 9600, screen80x24, Point{0, 0}, Point{0, 1})
	if m.Seq != "\n" {
		t.Errorf("Got %q, wanted newline", m.Seq)
	}

	s.Bools[capability.EatNewlineGlitch] = true
	m, _ = Plan(NewEnv(s), 9600, screen80x24, Point{0, 0}, Point{0, 1})
	if m.Seq != "\x1b[2;1H" || m.Method != Absolute {
		t.Errorf("Got (%q, %s), wanted absolute under xenl", m.Seq, m.Method)
	}
}

func TestTabs(t *testing.T) {
	s := capability.NewStatic()
	s.Strings[capability.CarriageReturn] = "\r"
	s.Strings[capability.CursorRight] = "\x0c"
	s.Strings[capability.CursorLeft] = "\b"
	s.Strings[capability.Tab] = "\t"
	s.Strings[capability.BackTab] = "\x1b[Z"
	env := NewEnv(s)

	cases := []struct {
		from, to Point
		want     string
		wantCost int
	}{
		{Point{0, 0}, Point{17, 0}, "\t\t\x0c", 30},
		{Point{3, 0}, Point{8, 0}, "\t", 10},
		{Point{17, 0}, Point{8, 0}, "\x1b[Z\x1b[Z", 56},
		{Point{17, 0}, Point{15, 0}, "\b\b", 20},
		{Point{17, 0}, Point{0, 0}, "\r", 10},
	}

	for i, c := range cases {
		m, err := Plan(env, 9600, screen80x24, c.from, c.to)
		if err != nil {
			t.Errorf("%d: Plan() = %v", i, err)
			continue
		}
		if m.Seq != c.want || m.Cost != c.wantCost {
			t.Errorf("%d: Got (%q, %d), wanted (%q, %d)", i, m.Seq, m.Cost, c.want, c.wantCost)
		}
	}

	m, _ := Plan(env.WithoutTab(), 9600, screen80x24, Point{0, 0}, Point{17, 0})
	if strings.Contains(m.Seq, "\t") {
		t.Errorf("Got %q, wanted no tabs", m.Seq)
	}
}

func TestTransitPrint(t *testing.T) {
	env := NewEnv(xtermEnv())
	row := []rune(strings.Repeat("abcdefghij", 8))

	m, err := PlanThrough(env, 9600, screen80x24, Point{2, 3}, Point{5, 3}, row)
	if err != nil {
		t.Fatalf("PlanThrough() = %v", err)
	}
	if m.Seq != "cde" || m.Cost != 27 {
		t.Errorf("Got (%q, %d), wanted (%q, 27)", m.Seq, m.Cost, "cde")
	}

	// Non ASCII cells can't be reprinted safely.
	row[3] = 'é'
	m, _ = PlanThrough(env, 9600, screen80x24, Point{2, 3}, Point{5, 3}, row)
	if m.Seq != "\x1b[6G" {
		t.Errorf("Got %q, wanted %q", m.Seq, "\x1b[6G")
	}

	// A cell drawn in other attributes is passed as 0 and blocks
	// reprinting.
	row[3] = 0
	m, _ = PlanThrough(env, 9600, screen80x24, Point{2, 3}, Point{5, 3}, row)
	if m.Seq != "\x1b[6G" {
		t.Errorf("Got %q, wanted %q", m.Seq, "\x1b[6G")
	}
	row[3] = 'd'
	if m, _ = PlanThrough(env, 9600, screen80x24, Point{2, 3}, Point{5, 3}, row); m.Seq != "cde" {
		t.Errorf("Got %q, wanted %q", m.Seq, "cde")
	}

	// Cells we don't know about can't be printed.
	m, _ = PlanThrough(env, 9600, screen80x24, Point{0, 3}, Point{3, 3}, []rune("ab"))
	if m.Seq != "\x1b[4G" {
		t.Errorf("Got %q, wanted %q", m.Seq, "\x1b[4G")
	}

	// Different rows never print.
	row = []rune(strings.Repeat("a", 80))
	m, _ = PlanThrough(env, 9600, screen80x24, Point{2, 3}, Point{4, 4}, row)
	if strings.Contains(m.Seq, "a") {
		t.Errorf("Got %q, printed across rows", m.Seq)
	}
}

func TestTransitRepeat(t *testing.T) {
	s := capability.NewStatic()
	s.Strings[capability.CursorRight] = "\x0c"
	s.Strings[capability.RepeatChar] = "%p1%c\x1b[%p2%{1}%-%db"
	env := NewEnv(s)
	row := []rune(strings.Repeat("a", 80))

	m, err := PlanThrough(env, 9600, screen80x24, Point{1, 0}, Point{7, 0}, row)
	if err != nil {
		t.Fatalf("PlanThrough() = %v", err)
	}
	if m.Seq != "a\x1b[5b" || m.Cost != 46 {
		t.Errorf("Got (%q, %d), wanted (%q, 46)", m.Seq, m.Cost, "a\x1b[5b")
	}

	// A mixed run falls back to plain printing.
	row[4] = 'b'
	m, _ = PlanThrough(env, 9600, screen80x24, Point{1, 0}, Point{7, 0}, row)
	if m.Seq != "aaabaa" {
		t.Errorf("Got %q, wanted %q", m.Seq, "aaabaa")
	}
}

func TestLowerLeft(t *testing.T) {
	s := capability.NewStatic()
	s.Strings[capability.CursorDown] = "\n"
	s.Strings[capability.CursorRight] = "\x0c"
	s.Strings[capability.CursorToLl] = "\x0e"

	m, _ := Plan(NewEnv(s), 9600, screen80x24, Point{0, 0}, Point{2, 23})
	if m.Seq != "\x0e\x0c\x0c" || m.Cost != 30 {
		t.Errorf("Got (%q, %d), wanted (%q, 30)", m.Seq, m.Cost, "\x0e\x0c\x0c")
	}
}

func TestLeftMarginWrap(t *testing.T) {
	s := capability.NewStatic()
	s.Strings[capability.CarriageReturn] = "\r"
	s.Strings[capability.CursorLeft] = "\b"
	s.Strings[capability.CursorRight] = "\x1b[C"
	s.Strings[capability.CursorUp] = "\x1b[A"
	s.Strings[capability.CursorDown] = "\n"
	s.Bools[capability.AutoLeftMargin] = true
	env := NewEnv(s)

	cases := []struct {
		from, to Point
		want     string
	}{
		{Point{0, 3}, Point{79, 2}, "\r\b"},
		{Point{5, 3}, Point{78, 2}, "\r\b\b"},
		{Point{5, 3}, Point{4, 3}, "\b"},
	}

	for i, c := range cases {
		m, err := Plan(env, 9600, screen80x24, c.from, c.to)
		if err != nil {
			t.Errorf("%d: Plan() = %v", i, err)
			continue
		}
		if m.Seq != c.want {
			t.Errorf("%d: Got %q, wanted %q", i, m.Seq, c.want)
		}

		scr := vt.NewScreen(24, 80, vt.Options{ReverseWrap: true})
		scr.SetCursor(c.from.X, c.from.Y)
		scr.Write([]byte(m.Seq))
		if col, row := scr.Cursor(); col != c.to.X || row != c.to.Y {
			t.Errorf("%d: replay landed on (%d, %d), wanted %v", i, col, row, c.to)
		}
	}

	// Eating newlines makes the wrap unreliable.
	s.Bools[capability.EatNewlineGlitch] = true
	m, _ := Plan(NewEnv(s), 9600, screen80x24, Point{0, 3}, Point{79, 2})
	if strings.HasPrefix(m.Seq, "\r\b") {
		t.Errorf("Got %q, wanted no margin wrap under xenl", m.Seq)
	}
}

func TestParkedCursor(t *testing.T) {
	env := NewEnv(xtermEnv())

	m, err := Plan(env, 9600, screen80x24, Point{80, 5}, Point{3, 5})
	if err != nil {
		t.Fatalf("Plan() = %v", err)
	}
	if m.Seq != "\r\x1b[4G" {
		t.Errorf("Got %q, wanted %q", m.Seq, "\r\x1b[4G")
	}

	scr := vt.NewScreen(24, 80, vt.Options{AutoWrap: true, EatNewline: true})
	scr.SetCursor(80, 5)
	scr.Write([]byte(m.Seq))
	if col, row := scr.Cursor(); col != 3 || row != 5 {
		t.Errorf("replay landed on (%d, %d), wanted (3, 5)", col, row)
	}

	// am without xenl wraps to the next line.
	s := xtermEnv()
	s.Bools[capability.EatNewlineGlitch] = false
	m, _ = Plan(NewEnv(s), 9600, screen80x24, Point{80, 5}, Point{0, 6})
	if m.Seq != "\r" {
		t.Errorf("Got %q, wanted %q", m.Seq, "\r")
	}

	// No am: the cursor sticks in the last column.
	s.Bools[capability.AutoRightMargin] = false
	m, _ = Plan(NewEnv(s), 9600, screen80x24, Point{80, 5}, Point{78, 5})
	if m.Seq != "\b" {
		t.Errorf("Got %q, wanted %q", m.Seq, "\b")
	}

	// am without cr leaves the position unknown.
	s = xtermEnv()
	delete(s.Strings, capability.CarriageReturn)
	m, _ = Plan(NewEnv(s), 9600, screen80x24, Point{80, 5}, Point{78, 5})
	if m.Method != Absolute && m.Method != RowColumn && m.Method != HomeRelative {
		t.Errorf("Got %s, wanted an absolute method", m.Method)
	}
}

// reference prices every method for the xterm fixture directly from
// the sequences it would emit, with no tab or printing shortcuts.
func reference(cd int, from, to Point) map[Method]int {
	capc := func(s string) int { return len(s)*cd + CAP_OVERHEAD }
	long := LONG_DURATION
	min := func(a, b int) int {
		if a < b {
			return a
		}
		return b
	}
	steps := func(a, b Point) int {
		dx, dy := b.X-a.X, b.Y-a.Y
		if abs(dx) > MOVE_LIMIT || abs(dy) > MOVE_LIMIT {
			return long
		}
		c := 0
		switch {
		case dy > 0:
			// cud1 is \n and the fixture has xenl.
			c += capc(fmt.Sprintf("\x1b[%dB", dy))
		case dy < 0:
			c += min(capc(fmt.Sprintf("\x1b[%dA", -dy)), -dy*capc("\x1b[A"))
		}
		switch {
		case dx > 0:
			c += min(capc(fmt.Sprintf("\x1b[%dC", dx)), dx*capc("\x1b[C"))
		case dx < 0:
			c += min(capc(fmt.Sprintf("\x1b[%dD", -dx)), -dx*capc("\b"))
		}
		return c
	}
	plus := func(a, b int) int {
		if a >= long || b >= long {
			return long
		}
		return a + b
	}

	costs := map[Method]int{
		HomeRelative: plus(capc("\x1b[H"), steps(Point{0, 0}, to)),
		Absolute:     capc(fmt.Sprintf("\x1b[%d;%dH", to.Y+1, to.X+1)),
		Relative:     steps(from, to),
	}
	if to.X == 0 {
		costs[CarriageReturnRelative] = plus(capc("\r"), steps(Point{0, from.Y}, to))
	}
	hpa := capc(fmt.Sprintf("\x1b[%dG", to.X+1))
	vpa := capc(fmt.Sprintf("\x1b[%dd", to.Y+1))
	switch {
	case from.Y == to.Y:
		costs[RowColumn] = hpa
	case from.X == to.X:
		costs[RowColumn] = vpa
	default:
		costs[RowColumn] = hpa + vpa
	}
	return costs
}

func TestOptimalAndReplays(t *testing.T) {
	env := NewEnv(xtermEnv())
	points := []Point{
		{0, 0}, {1, 0}, {5, 3}, {7, 7}, {40, 12}, {79, 23},
		{0, 23}, {79, 0}, {10, 3}, {3, 10}, {12, 12}, {16, 12}, {9, 12},
	}

	for _, baud := range []int{300, 9600, 38400} {
		cd := CharDuration(baud)
		for _, from := range points {
			for _, to := range points {
				m, err := Plan(env, baud, screen80x24, from, to)
				if err != nil {
					t.Errorf("%v->%v@%d: Plan() = %v", from, to, baud, err)
					continue
				}

				if from != to {
					for meth, c := range reference(cd, from, to) {
						if m.Cost > c {
							t.Errorf("%v->%v@%d: chose %s at %d, %s costs %d", from, to, baud, m.Method, m.Cost, meth, c)
						}
					}
				}

				scr := vt.NewScreen(24, 80, vt.Options{AutoWrap: true, EatNewline: true})
				scr.SetCursor(from.X, from.Y)
				scr.Write([]byte(m.Seq))
				if col, row := scr.Cursor(); col != to.X || row != to.Y {
					t.Errorf("%v->%v@%d: %q landed on (%d, %d)", from, to, baud, m.Seq, col, row)
				}
			}
		}
	}
}

func TestTransitReplay(t *testing.T) {
	env := NewEnv(xtermEnv())
	text := "The quick brown fox jumps over the lazy dog"

	for _, c := range []struct{ from, to Point }{
		{Point{0, 2}, Point{3, 2}},
		{Point{4, 2}, Point{9, 2}},
		{Point{10, 2}, Point{15, 2}},
	} {
		scr := vt.NewScreen(24, 80, vt.Options{AutoWrap: true, EatNewline: true})
		scr.SetRow(2, text)
		row := scr.Row(2)
		scr.SetCursor(c.from.X, c.from.Y)

		m, err := PlanThrough(env, 9600, screen80x24, c.from, c.to, row)
		if err != nil {
			t.Fatalf("PlanThrough() = %v", err)
		}
		scr.Write([]byte(m.Seq))
		if col, r := scr.Cursor(); col != c.to.X || r != c.to.Y {
			t.Errorf("%v->%v: %q landed on (%d, %d)", c.from, c.to, m.Seq, col, r)
		}
		if got := string(scr.Row(2)); got != string(row) {
			t.Errorf("%v->%v: row changed to %q", c.from, c.to, got)
		}
	}
}

func TestOptimizer(t *testing.T) {
	o := NewOptimizer(NewEnv(xtermEnv()), 9600, screen80x24)

	if got := o.Move(Point{0, 0}, Point{0, 0}); got == nil || len(got) != 0 {
		t.Errorf("Got %q, wanted empty", got)
	}
	if got := o.Move(Point{0, 0}, Point{79, 30}); got != nil {
		t.Errorf("Got %q, wanted nil off screen", got)
	}

	o.SetSize(Size{Width: 80, Height: 40})
	if got := o.Move(Point{0, 0}, Point{79, 30}); got == nil {
		t.Errorf("Move() failed after resize")
	}
	if o.Size().Height != 40 {
		t.Errorf("Got height %d, wanted 40", o.Size().Height)
	}

	if got := o.MoveThrough(Point{0, 1}, Point{2, 1}, []rune("hello")); string(got) != "he" {
		t.Errorf("Got %q, wanted %q", got, "he")
	}

	cases := []struct {
		name string
		got  int
		want int
	}{
		{"ech", o.EraseCost(5), 4*9 + 1},
		{"el", o.ClearEOLCost(), 3*9 + 1},
		{"el1", o.ClearBOLCost(), 4*9 + 1},
		{"rep", o.RepeatCost(5), LONG_DURATION},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s: Got %d, wanted %d", c.name, c.got, c.want)
		}
	}
}

func TestCapCostExported(t *testing.T) {
	cases := []struct {
		seq  string
		baud int
		want int
	}{
		{"\x1b[H", 9600, 28},
		{"\x1b[H", 38400, 7},
		{"", 9600, LONG_DURATION},
	}

	for i, c := range cases {
		if got := CapCost(c.seq, c.baud); got != c.want {
			t.Errorf("%d: Got %d, wanted %d", i, got, c.want)
		}
	}
}
