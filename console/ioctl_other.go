//go:build !linux

package console

import "errors"

const COLORMAP_SIZE = 16 * 3

var errNoConsole = errors.New("console ioctls not available on this platform")

func getColorMap(fd uintptr, cmap *[COLORMAP_SIZE]byte) error {
	return errNoConsole
}

func putColorMap(fd uintptr, cmap *[COLORMAP_SIZE]byte) error {
	return errNoConsole
}

func unicodeMapEntries(fd uintptr) (int, error) {
	return 0, errNoConsole
}
