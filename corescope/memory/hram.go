package memory

import "github.com/gbcgb/corescope/corescope/addr"

// HRAM is the 127-byte high RAM block at 0xFF80-0xFFFE.
type HRAM struct {
	data [addr.HRAMEnd - addr.HRAMStart + 1]byte
}

// InRange reports whether a belongs to HRAM.
func (h *HRAM) InRange(a uint16) bool {
	return a >= addr.HRAMStart && a <= addr.HRAMEnd
}

// Get reads a byte.
func (h *HRAM) Get(a uint16) uint8 {
	return h.data[a-addr.HRAMStart]
}

// Set writes a byte.
func (h *HRAM) Set(a uint16, value uint8) {
	h.data[a-addr.HRAMStart] = value
}
