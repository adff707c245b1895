package memory

import "github.com/gbcgb/corescope/corescope/addr"

// Interrupts owns the interrupt-enable (0xFFFF) and interrupt-flag
// (0xFF0F) registers, and gates every interrupt request through IE:
// Request is a no-op unless the corresponding bit is enabled, which keeps
// IF & ^IE zero as long as IF is only changed through Request (direct IF
// writes via Set are not gated).
//
// Real hardware latches IF regardless of IE; gating at request time is a
// deliberate simplification carried over from the source material.
type Interrupts struct {
	ie uint8
	ifReg uint8
}

// InRange reports whether a is IE or IF.
func (i *Interrupts) InRange(a uint16) bool {
	return a == addr.IE || a == addr.IF
}

// Get reads IE or IF.
func (i *Interrupts) Get(a uint16) uint8 {
	if a == addr.IE {
		return i.ie
	}
	return i.ifReg
}

// Set writes IE or IF directly. Direct IF writes bypass the IE gate -
// only Request enforces it.
func (i *Interrupts) Set(a uint16, value uint8) {
	if a == addr.IE {
		i.ie = value
		return
	}
	i.ifReg = value
}

// Request sets the IF bit for source, but only if IE enables it.
func (i *Interrupts) Request(source addr.Interrupt) {
	if i.ie&uint8(source) != 0 {
		i.ifReg |= uint8(source)
	}
}

// Pending returns the set of currently serviceable interrupts: those
// enabled in IE and flagged in IF.
func (i *Interrupts) Pending() uint8 {
	return i.ie & i.ifReg & 0x1F
}
