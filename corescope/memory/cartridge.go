package memory

import (
	"log/slog"

	"github.com/gbcgb/corescope/corescope/addr"
)

// Cartridge is a minimal stand-in for the real cartridge/mapper
// collaborator. It covers 0x0000-0x7FFF and 0xA000-0xBFFF with a flat ROM
// image and a flat external RAM block; it performs no bank switching -
// mapper logic is explicitly out of scope here.
type Cartridge struct {
	rom []byte
	ram [addr.ExtRAMEnd - addr.ExtRAMStart + 1]byte
}

// NewCartridge returns a Cartridge with no ROM loaded.
func NewCartridge() *Cartridge {
	return &Cartridge{}
}

// LoadROM replaces the ROM image.
func (c *Cartridge) LoadROM(data []byte) {
	c.rom = data
}

// InRange reports whether a belongs to ROM or external RAM space.
func (c *Cartridge) InRange(a uint16) bool {
	return (a >= addr.ROMStart && a <= addr.ROMEnd) || (a >= addr.ExtRAMStart && a <= addr.ExtRAMEnd)
}

// Get reads a byte from ROM or external RAM.
func (c *Cartridge) Get(a uint16) uint8 {
	if a <= addr.ROMEnd {
		if int(a) >= len(c.rom) {
			return 0xFF
		}
		return c.rom[a]
	}
	return c.ram[a-addr.ExtRAMStart]
}

// Set writes a byte. ROM writes are discarded and logged; external RAM
// writes are stored.
func (c *Cartridge) Set(a uint16, value uint8) {
	if a <= addr.ROMEnd {
		slog.Debug("discarded write to ROM", "addr", a, "value", value)
		return
	}
	c.ram[a-addr.ExtRAMStart] = value
}
