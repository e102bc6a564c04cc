//go:build !linux

package session

import (
	"golang.org/x/term"
)

// outputBaud only checks that fd is a terminal. Other systems keep
// the speed where we can't portably reach it.
func outputBaud(fd int) (int, error) {
	if !term.IsTerminal(fd) {
		return 0, errNoBaud
	}
	return DEF_BAUD, nil
}
