package memory

import "github.com/gbcgb/corescope/corescope/addr"

// WRAM is the 8 KiB work RAM block at 0xC000-0xDFFF. The echo mirror at
// 0xE000-0xFDFF is handled by the bus dispatcher, which retargets those
// addresses here after subtracting 0x2000 - WRAM itself only ever sees
// addresses in its own range.
//
// Real CGB hardware banks the upper 4 KiB seven ways via SVBK (0xFF70);
// this is a flat 8 KiB block with no such banking. That's reachable only
// through SVBK, which the bus dispatcher never routes, so the omission is
// inert rather than a gap in the dispatched address surface.
type WRAM struct {
	data [addr.WRAMEnd - addr.WRAMStart + 1]byte
}

// InRange reports whether a belongs to the work RAM region.
func (w *WRAM) InRange(a uint16) bool {
	return a >= addr.WRAMStart && a <= addr.WRAMEnd
}

// Get reads a byte.
func (w *WRAM) Get(a uint16) uint8 {
	return w.data[a-addr.WRAMStart]
}

// Set writes a byte.
func (w *WRAM) Set(a uint16, value uint8) {
	w.data[a-addr.WRAMStart] = value
}
