package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gbcgb/corescope/corescope/addr"
)

func TestCartridgeLoadAndReadROM(t *testing.T) {
	c := NewCartridge()
	c.LoadROM([]byte{0xAA, 0xBB, 0xCC})

	assert.Equal(t, uint8(0xAA), c.Get(0x0000))
	assert.Equal(t, uint8(0xCC), c.Get(0x0002))
}

func TestCartridgeUnloadedROMReadsFF(t *testing.T) {
	c := NewCartridge()
	assert.Equal(t, uint8(0xFF), c.Get(0x0100))
}

func TestCartridgeROMWritesAreDiscarded(t *testing.T) {
	c := NewCartridge()
	c.LoadROM([]byte{0x01})
	c.Set(0x0000, 0x99)
	assert.Equal(t, uint8(0x01), c.Get(0x0000))
}

func TestCartridgeExternalRAMReadWrite(t *testing.T) {
	c := NewCartridge()
	c.Set(addr.ExtRAMStart, 0x42)
	assert.Equal(t, uint8(0x42), c.Get(addr.ExtRAMStart))
}

func TestCartridgeInRange(t *testing.T) {
	c := NewCartridge()
	assert.True(t, c.InRange(0x0000))
	assert.True(t, c.InRange(addr.ROMEnd))
	assert.True(t, c.InRange(addr.ExtRAMStart))
	assert.False(t, c.InRange(0xC000))
}
