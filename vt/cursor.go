package vt

import "fmt"

type cursor struct {
	row, col int
}

// clamp pulls c inside a rows x cols screen.
func (c cursor) clamp(rows, cols int) cursor {
	c.row = max(0, min(c.row, rows-1))
	c.col = max(0, min(c.col, cols-1))
	return c
}

func (c cursor) String() string {
	return fmt.Sprintf("(%d, %d)", c.row, c.col)
}
