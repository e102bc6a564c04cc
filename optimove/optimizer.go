package optimove

import (
	"log/slog"
	"sync"
)

// Optimizer binds an Env to a line speed and a screen size. The size
// may change on resize; everything else is fixed.
type Optimizer struct {
	env  *Env
	baud int

	mux  sync.RWMutex
	size Size
}

func NewOptimizer(env *Env, baud int, size Size) *Optimizer {
	return &Optimizer{env: env, baud: baud, size: size}
}

func (o *Optimizer) Env() *Env {
	return o.env
}

func (o *Optimizer) Baud() int {
	return o.baud
}

func (o *Optimizer) Size() Size {
	o.mux.RLock()
	defer o.mux.RUnlock()
	return o.size
}

func (o *Optimizer) SetSize(s Size) {
	o.mux.Lock()
	defer o.mux.Unlock()
	if s != o.size {
		slog.Debug("optimizer geometry changed", "old", o.size, "new", s)
	}
	o.size = s
}

// Move returns the bytes that take the cursor from from to to, or
// nil if there is no way to get there.
func (o *Optimizer) Move(from, to Point) []byte {
	return MoveCursor(o.env, o.baud, o.Size(), from, to)
}

func (o *Optimizer) Plan(from, to Point) (Movement, error) {
	return Plan(o.env, o.baud, o.Size(), from, to)
}

// MoveThrough is Move with the current contents of the cursor's row
// available for reprinting. Cells that must not be reprinted in the
// current attributes are 0, see PlanThrough.
func (o *Optimizer) MoveThrough(from, to Point, row []rune) []byte {
	m, err := PlanThrough(o.env, o.baud, o.Size(), from, to, row)
	if err != nil {
		slog.Debug("no cursor movement", "from", from, "to", to, "err", err)
		return nil
	}
	return []byte(m.Seq)
}

// EraseCost is the price of erasing n characters with ech.
func (o *Optimizer) EraseCost(n int) int {
	return o.env.Cost(o.env.EraseChars, o.baud, n)
}

// RepeatCost is the price of repeating a character n times with rep.
func (o *Optimizer) RepeatCost(n int) int {
	return o.env.Cost(o.env.RepeatChar, o.baud, ' ', n)
}

// ClearEOLCost is the price of el.
func (o *Optimizer) ClearEOLCost() int {
	return o.env.Cost(o.env.ClrEol, o.baud)
}

// ClearBOLCost is the price of el1.
func (o *Optimizer) ClearBOLCost() int {
	return o.env.Cost(o.env.ClrBol, o.baud)
}
