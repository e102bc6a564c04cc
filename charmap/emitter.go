package charmap

import (
	"errors"
)

var ErrUnencodable = errors.New("code point has no byte encoding")

// An Emitter turns an encoded character into the bytes written to
// the terminal.
type Emitter interface {
	Append(dst []byte, r rune) ([]byte, error)
	Name() string
}

type asciiEmitter struct{}

type utf8Emitter struct{}

var (
	ASCIIEmitter Emitter = asciiEmitter{}
	UTF8Emitter  Emitter = utf8Emitter{}
)

func (asciiEmitter) Name() string { return "ascii" }

// Append writes the low byte of r.
func (asciiEmitter) Append(dst []byte, r rune) ([]byte, error) {
	return append(dst, byte(r)), nil
}

func (utf8Emitter) Name() string { return "utf-8" }

// Append writes r using the RFC 2279 1 to 4 byte UTF-8 layout, which
// covers code points up to 0x1fffff.
func (utf8Emitter) Append(dst []byte, r rune) ([]byte, error) {
	c := uint32(r)
	switch {
	case c < 0x80:
		return append(dst, byte(c)), nil
	case c < 0x800:
		return append(dst,
			byte(0xc0|c>>6),
			byte(0x80|c&0x3f)), nil
	case c < 0x10000:
		return append(dst,
			byte(0xe0|c>>12),
			byte(0x80|(c>>6)&0x3f),
			byte(0x80|c&0x3f)), nil
	case c < 0x200000:
		return append(dst,
			byte(0xf0|c>>18),
			byte(0x80|(c>>12)&0x3f),
			byte(0x80|(c>>6)&0x3f),
			byte(0x80|c&0x3f)), nil
	}
	return dst, ErrUnencodable
}

// EmitterFor picks the output encoder for enc. utf8Glyphs reports
// that the terminal keeps decoding UTF-8 while drawing line or PC
// glyphs, which is the case for xterm style terminals on a UTF-8
// locale.
func EmitterFor(enc Encoding, utf8Glyphs bool) Emitter {
	switch enc {
	case UTF8:
		return UTF8Emitter
	case VT100, PC:
		if utf8Glyphs {
			return UTF8Emitter
		}
		return ASCIIEmitter
	}
	return ASCIIEmitter
}
