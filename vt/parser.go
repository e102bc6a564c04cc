package vt

import (
	"log/slog"
	"unicode/utf8"
)

const (
	MAX_EXPECTED_INTERMEDIATE = 10
	MAX_EXPECTED_PARAMS       = 16
)

type pState uint8

const (
	STATE_GROUND pState = iota
	STATE_ESCAPE
	STATE_CSI
	STATE_OSC
	STATE_OSC_ESC
)

type parameters struct {
	num   int
	items []int
}

func newParams() *parameters {
	return &parameters{items: make([]int, 0, MAX_EXPECTED_PARAMS)}
}

func (p *parameters) addItem(item int) {
	p.items = append(p.items, item)
	p.num += 1
}

func (p *parameters) alterItem(val int) {
	p.items[p.num-1] = val
}

func (p *parameters) reset() {
	p.items = p.items[:0]
	p.num = 0
}

func (p *parameters) numItems() int {
	return p.num
}

// getItem returns parameter item, or def if it wasn't supplied or
// was given as 0.
func (p *parameters) getItem(item, def int) int {
	if p.num <= item || p.items[item] == 0 {
		return def
	}
	return p.items[item]
}

func (p *parameters) lastItem() int {
	if p.num == 0 {
		return 0
	}
	return p.items[p.num-1]
}

type dispatcher interface {
	print(rune)
	execute(byte)
	escDispatch(intermediate []rune, last byte)
	csiDispatch(params *parameters, intermediate []rune, last byte)
}

// parser splits a byte stream into printable runes, C0 controls and
// ESC/CSI sequences. OSC strings are consumed and dropped.
type parser struct {
	state        pState
	d            dispatcher
	intermediate []rune
	params       *parameters
	partial      []byte
}

func newParser(d dispatcher) *parser {
	return &parser{
		state:        STATE_GROUND,
		d:            d,
		params:       newParams(),
		intermediate: make([]rune, 0, MAX_EXPECTED_INTERMEDIATE),
	}
}

func (p *parser) clear() {
	p.intermediate = p.intermediate[:0]
	p.params.reset()
}

func (p *parser) parse(data []byte) {
	if len(p.partial) > 0 {
		data = append(p.partial, data...)
		p.partial = nil
	}

	for len(data) > 0 {
		b := data[0]
		if p.state != STATE_GROUND || b < utf8.RuneSelf {
			p.parseByte(b)
			data = data[1:]
			continue
		}

		if !utf8.FullRune(data) {
			p.partial = append([]byte(nil), data...)
			return
		}
		r, n := utf8.DecodeRune(data)
		p.d.print(r)
		data = data[n:]
	}
}

func (p *parser) parseByte(b byte) {
	// CAN and SUB abort any sequence, ESC restarts one.
	switch {
	case b == 0x18 || b == 0x1a:
		p.state = STATE_GROUND
		return
	case b == ESC && p.state != STATE_OSC:
		if p.state == STATE_OSC_ESC {
			break
		}
		p.clear()
		p.state = STATE_ESCAPE
		return
	}

	switch p.state {
	case STATE_GROUND:
		if b < 0x20 || b == 0x7f {
			p.d.execute(b)
			return
		}
		p.d.print(rune(b))

	case STATE_ESCAPE:
		switch {
		case b < 0x20:
			p.d.execute(b)
		case b == CSI:
			p.state = STATE_CSI
		case b == OSC:
			p.state = STATE_OSC
		case b >= 0x20 && b <= 0x2f:
			p.intermediate = append(p.intermediate, rune(b))
		default:
			p.d.escDispatch(p.intermediate, b)
			p.state = STATE_GROUND
		}

	case STATE_CSI:
		switch {
		case b < 0x20:
			p.d.execute(b)
		case b >= '0' && b <= '9':
			switch p.params.numItems() {
			case 0:
				p.params.addItem(int(b - '0'))
			default:
				p.params.alterItem(p.params.lastItem()*10 + int(b-'0'))
			}
		case b == ';' || b == ':':
			if p.params.numItems() == 0 {
				p.params.addItem(0)
			}
			p.params.addItem(0)
		case b >= 0x3c && b <= 0x3f, b >= 0x20 && b <= 0x2f:
			// private markers and intermediates
			p.intermediate = append(p.intermediate, rune(b))
		case b >= 0x40 && b <= 0x7e:
			p.d.csiDispatch(p.params, p.intermediate, b)
			p.state = STATE_GROUND
		default:
			slog.Debug("dropping byte in csi", "b", b)
		}

	case STATE_OSC:
		switch b {
		case BEL:
			p.state = STATE_GROUND
		case ESC:
			p.state = STATE_OSC_ESC
		}

	case STATE_OSC_ESC:
		if b == ST {
			p.state = STATE_GROUND
			return
		}
		p.state = STATE_OSC
	}
}
