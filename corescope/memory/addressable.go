// Package memory provides the bus-dispatcher's non-GPU collaborator
// devices: the cartridge stub, work RAM (with its echo mirror), HRAM, the
// interrupt-enable/flag registers, the OAM and VRAM DMA engines, and
// minimal register-backed stand-ins for the joypad/serial/timer/audio
// devices the bus must still be able to route to.
package memory

// Addressable is the uniform contract every memory-mapped device
// satisfies: a predicate for whether an address belongs to it, and
// byte-level get/set. The bus dispatcher relies on the InRange
// predicates of its registered devices being pairwise disjoint.
type Addressable interface {
	InRange(addr uint16) bool
	Get(addr uint16) uint8
	Set(addr uint16, value uint8)
}
