//go:build linux

package session

import (
	"fmt"

	"golang.org/x/sys/unix"
)

var baudRates = map[uint32]int{
	unix.B50:     50,
	unix.B75:     75,
	unix.B110:    110,
	unix.B134:    134,
	unix.B150:    150,
	unix.B200:    200,
	unix.B300:    300,
	unix.B600:    600,
	unix.B1200:   1200,
	unix.B1800:   1800,
	unix.B2400:   2400,
	unix.B4800:   4800,
	unix.B9600:   9600,
	unix.B19200:  19200,
	unix.B38400:  38400,
	unix.B57600:  57600,
	unix.B115200: 115200,
	unix.B230400: 230400,
}

// outputBaud reads the output speed of the terminal on fd.
func outputBaud(fd int) (int, error) {
	t, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return 0, fmt.Errorf("couldn't read terminal attributes: %w", err)
	}

	b, ok := baudRates[t.Cflag&unix.CBAUD]
	if !ok {
		return 0, fmt.Errorf("unsupported baud rate flag %#o", t.Cflag&unix.CBAUD)
	}
	return b, nil
}
