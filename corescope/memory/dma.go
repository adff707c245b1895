package memory

import "github.com/gbcgb/corescope/corescope/addr"

// BusAccessor is the minimal view of the bus a DMA engine needs to copy
// bytes between arbitrary source addresses and its destination region.
type BusAccessor interface {
	Get8(addr uint16) uint8
	Set8(addr uint16, value uint8)
}

// DMAEngine implements the OAM DMA register at 0xFF46. Writing a value
// starts an immediate (non-cycle-accurate) 160-byte copy from
// value<<8..value<<8+0x9F into OAM.
type DMAEngine struct {
	bus BusAccessor
	reg uint8
}

// NewDMAEngine returns a DMA engine that copies through bus.
func NewDMAEngine(bus BusAccessor) *DMAEngine {
	return &DMAEngine{bus: bus}
}

// InRange reports whether a is the DMA source register.
func (d *DMAEngine) InRange(a uint16) bool {
	return a == addr.DMA
}

// Get reads back the last source byte written.
func (d *DMAEngine) Get(a uint16) uint8 {
	return d.reg
}

// Set starts a transfer: 160 bytes from value<<8 are copied into
// 0xFE00-0xFE9F, one bus read/write pair at a time.
func (d *DMAEngine) Set(a uint16, value uint8) {
	d.reg = value
	source := uint16(value) << 8
	for i := uint16(0); i < 160; i++ {
		d.bus.Set8(addr.OAMStart+i, d.bus.Get8(source+i))
	}
}
