package corescope

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gbcgb/corescope/corescope/addr"
	"github.com/gbcgb/corescope/corescope/video"
)

func TestEchoRAMMirrorsWorkRAM(t *testing.T) {
	b := NewBus()
	b.Set8(0xC010, 0x55)
	assert.Equal(t, uint8(0x55), b.Get8(0xE010))

	b.Set8(0xE020, 0x66)
	assert.Equal(t, uint8(0x66), b.Get8(0xC020))
}

func TestIncLYRaisesLCDSTATInterruptOnLYCMatch(t *testing.T) {
	b := NewBus()
	b.Set8(addr.LYC, b.GPU.GetLy()+1)
	b.Set8(addr.STAT, 0xFF) // enable the LYC interrupt source
	b.Set8(addr.IE, uint8(addr.LCDSTATInterrupt))

	b.IncLY()

	assert.Equal(t, b.Get8(addr.LYC), b.GPU.GetLy())
	assert.NotZero(t, b.InterruptsPending()&uint8(addr.LCDSTATInterrupt))
}

func TestIncLYDoesNotRaiseWhenSourceDisabled(t *testing.T) {
	b := NewBus()
	b.Set8(addr.LYC, b.GPU.GetLy()+1)
	b.Set8(addr.IE, uint8(addr.LCDSTATInterrupt))
	// STAT LYC-interrupt bit left clear.

	b.IncLY()

	assert.Zero(t, b.InterruptsPending()&uint8(addr.LCDSTATInterrupt))
}

func TestGet16Set16LittleEndian(t *testing.T) {
	b := NewBus()
	b.Set16(0xC000, 0xBEEF)
	assert.Equal(t, uint8(0xEF), b.Get8(0xC000))
	assert.Equal(t, uint8(0xBE), b.Get8(0xC001))
	assert.Equal(t, uint16(0xBEEF), b.Get16(0xC000))
}

func TestBackToBackPaletteDataWritesAutoIncrement(t *testing.T) {
	b := NewBus()
	b.Set8(addr.BCPS, 0x80)
	// Two back-to-back palette-data writes through the bus: the first
	// write's auto-increment is visible to the second.
	b.Set8(addr.BCPD, 0x11)
	b.Set8(addr.BCPD, 0x22)

	assert.Equal(t, uint8(0x82), b.Get8(addr.BCPS))
}

func TestUnmappedAddressReadsFF(t *testing.T) {
	b := NewBus()
	assert.Equal(t, uint8(0xFF), b.Get8(0xFEA0)) // OAM-adjacent unmapped region
}

func TestBusDispatchPriorityCartridgeBeforeEverythingElse(t *testing.T) {
	b := NewBus()
	b.LoadROM([]byte{0x01})
	b.Set8(0x0000, 0x99) // ROM write discarded, not routed elsewhere
	assert.Equal(t, uint8(0x01), b.Get8(0x0000))
}

func TestDMATransferThroughBus(t *testing.T) {
	b := NewBus()
	for i := 0; i < 160; i++ {
		b.WRAM.Set(0xC100+uint16(i), uint8(i))
	}

	b.Set8(addr.DMA, 0xC1)

	for i := 0; i < 160; i++ {
		assert.Equal(t, uint8(i), b.Get8(addr.OAMStart+uint16(i)))
	}
}

func TestInterruptRequestHelpersRespectIEGate(t *testing.T) {
	b := NewBus()
	b.RequestVBlank()
	assert.Zero(t, b.InterruptsPending())

	b.Set8(addr.IE, uint8(addr.VBlankInterrupt))
	b.RequestVBlank()
	assert.Equal(t, uint8(addr.VBlankInterrupt), b.InterruptsPending())
}

func TestChangeModeVisibleThroughBusSTATRead(t *testing.T) {
	b := NewBus()
	b.ChangeMode(video.OAMScanMode{DotsRemaining: 80})
	assert.Equal(t, uint8(2), b.Get8(addr.STAT)&0x03)
}

func TestIFAndIEMaskedPendingNeverExceedsBothSets(t *testing.T) {
	b := NewBus()
	b.Set8(addr.IE, 0x03)
	b.Set8(addr.IF, 0x1F)
	pending := b.InterruptsPending()
	assert.Equal(t, uint8(0x03), pending)
	assert.Zero(t, pending&^b.Get8(addr.IE))
}
