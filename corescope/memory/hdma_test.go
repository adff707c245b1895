package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gbcgb/corescope/corescope/addr"
)

func TestHDMAGeneralPurposeTransferRunsImmediately(t *testing.T) {
	bus := &fakeBus{}
	for i := 0; i < 0x20; i++ {
		bus.mem[0xD000+uint16(i)] = uint8(0x50 + i)
	}

	h := NewHDMAEngine(bus)
	h.Set(addr.HDMA1, 0xD0)
	h.Set(addr.HDMA2, 0x00)
	h.Set(addr.HDMA3, 0x00)
	h.Set(addr.HDMA4, 0x00)
	h.Set(addr.HDMA5, 0x01) // length = 2 blocks of 0x10 = 0x20 bytes, bit7 clear

	for i := 0; i < 0x20; i++ {
		assert.Equal(t, uint8(0x50+i), bus.mem[addr.VRAMStart+uint16(i)])
	}
	assert.Equal(t, uint8(0xFF), h.Get(addr.HDMA5), "general-purpose transfer completes immediately")
}

func TestHDMAHBlankTransferMarksActiveWithoutCopying(t *testing.T) {
	bus := &fakeBus{}
	bus.mem[0xD000] = 0xAB

	h := NewHDMAEngine(bus)
	h.Set(addr.HDMA1, 0xD0)
	h.Set(addr.HDMA2, 0x00)
	h.Set(addr.HDMA3, 0x00)
	h.Set(addr.HDMA4, 0x00)
	h.Set(addr.HDMA5, 0x80) // bit7 set: HBlank mode

	assert.Equal(t, uint8(0x00), bus.mem[addr.VRAMStart], "HBlank transfers are not stepped by this core")
	assert.Equal(t, uint8(0x80), h.Get(addr.HDMA5)&0x80)
}

func TestHDMARegisterMasking(t *testing.T) {
	h := NewHDMAEngine(&fakeBus{})
	h.Set(addr.HDMA2, 0xFF)
	h.Set(addr.HDMA3, 0xFF)
	h.Set(addr.HDMA4, 0xFF)

	assert.Equal(t, uint8(0xF0), h.srcLow)
	assert.Equal(t, uint8(0x1F), h.dstHigh)
	assert.Equal(t, uint8(0xF0), h.dstLow)
}

func TestHDMAInRange(t *testing.T) {
	h := NewHDMAEngine(&fakeBus{})
	assert.True(t, h.InRange(addr.HDMA1))
	assert.True(t, h.InRange(addr.HDMA5))
	assert.False(t, h.InRange(addr.HDMA1-1))
}
