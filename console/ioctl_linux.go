//go:build linux

package console

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	GIO_CMAP   = 0x4B70
	PIO_CMAP   = 0x4B71
	GIO_UNIMAP = 0x4B66

	COLORMAP_SIZE = 16 * 3
)

type unimapdesc struct {
	count   uint16
	entries uintptr
}

func ioctl(fd, req, arg uintptr) error {
	if _, _, e := unix.Syscall(unix.SYS_IOCTL, fd, req, arg); e != 0 {
		return e
	}
	return nil
}

func getColorMap(fd uintptr, cmap *[COLORMAP_SIZE]byte) error {
	return ioctl(fd, GIO_CMAP, uintptr(unsafe.Pointer(&cmap[0])))
}

func putColorMap(fd uintptr, cmap *[COLORMAP_SIZE]byte) error {
	return ioctl(fd, PIO_CMAP, uintptr(unsafe.Pointer(&cmap[0])))
}

// unicodeMapEntries asks for the size of the console font's unicode
// map. The kernel reports it with ENOMEM when the buffer is empty.
func unicodeMapEntries(fd uintptr) (int, error) {
	var d unimapdesc
	err := ioctl(fd, GIO_UNIMAP, uintptr(unsafe.Pointer(&d)))
	if err != nil && !errors.Is(err, unix.ENOMEM) {
		return 0, err
	}
	return int(d.count), nil
}
