// Package video implements the GPU memory subsystem: banked VRAM, OAM,
// the LCD register bank and mode state machine, and CGB color palette
// RAM. It is the composite "GPU memory" component the bus dispatcher
// routes display-related addresses to.
package video

import "github.com/gbcgb/corescope/corescope/bit"

// ScannedObject is the per-scanline sprite descriptor produced by
// ScanOam: the raw OAM X coordinate (priority among sprites is resolved
// by X downstream), the two already bank-selected, already row-picked
// bitplane bytes, the CGB palette index, and the BG-priority flag.
type ScannedObject struct {
	X       uint8
	P1      byte
	P2      byte
	Palette uint8
	Prio    bool // true: sprite drawn behind non-zero background pixels
}

// GPUMemory composes VRAM, OAM, the LCD register bank, CGB palette RAM,
// and the current Mode into the single addressable unit the bus treats as
// "GPU memory".
type GPUMemory struct {
	VRAM     VRAM
	OAM      OAM
	LCD      LCDRegisters
	Palettes CGBPalettes
	mode     Mode
}

// New returns a GPUMemory in its post-boot-ROM state: LCDC=0x91,
// STAT=0x81, LY=0x91, mode VBlank(0), BGP=0xFC with the remaining
// palettes zeroed, and VRAM/OAM zeroed.
func New() *GPUMemory {
	g := &GPUMemory{
		mode: VBlankMode{LineWithinVBlank: 0},
	}
	g.LCD.lcdc = 0x91
	g.LCD.stat = 0x81
	g.LCD.ly = 0x91
	g.Palettes.bgp = 0xFC
	return g
}

// InRange reports whether a belongs to any GPU-memory-owned region:
// VRAM+bank select, OAM, the LCD register bank, or the CGB/legacy
// palette registers.
func (g *GPUMemory) InRange(a uint16) bool {
	return g.VRAM.InRange(a) || g.OAM.InRange(a) || g.LCD.InRange(a) || g.Palettes.InRange(a)
}

// Get reads a byte from whichever sub-region owns a.
func (g *GPUMemory) Get(a uint16) uint8 {
	switch {
	case g.VRAM.InRange(a):
		return g.VRAM.Get(a)
	case g.OAM.InRange(a):
		return g.OAM.Get(a)
	case g.LCD.InRange(a):
		return g.LCD.Get(a)
	case g.Palettes.InRange(a):
		return g.Palettes.Get(a)
	}
	return 0xFF
}

// Set writes a byte to whichever sub-region owns a. Callers that need the
// LY==LYC interrupt gate re-evaluated after this (per the bus's write
// policy) should follow with a call to LCD.CmpLYC.
func (g *GPUMemory) Set(a uint16, value uint8) {
	switch {
	case g.VRAM.InRange(a):
		g.VRAM.Set(a, value)
	case g.OAM.InRange(a):
		g.OAM.Set(a, value)
	case g.LCD.InRange(a):
		g.LCD.Set(a, value)
	case g.Palettes.InRange(a):
		g.Palettes.Set(a, value)
	}
}

// GetMode returns the currently installed Mode.
func (g *GPUMemory) GetMode() Mode { return g.mode }

// GetLy returns the current scanline.
func (g *GPUMemory) GetLy() uint8 { return g.LCD.LY() }

// UpdateMode replaces the mode tag without touching STAT. Used for
// countdown bookkeeping within a mode (e.g. decrementing DotsRemaining).
func (g *GPUMemory) UpdateMode(m Mode) {
	g.mode = m
}

// ChangeMode replaces the mode tag and projects its code into STAT bits
// 1-0.
func (g *GPUMemory) ChangeMode(m Mode) {
	g.mode = m
	g.LCD.setModeBits(m.Code())
}

// IncLy advances the scanline and re-evaluates the LY==LYC latch.
func (g *GPUMemory) IncLy() {
	g.LCD.IncLY()
	g.LCD.CmpLYC()
}

// ResetLy resets the scanline to 0 and re-evaluates the LY==LYC latch.
func (g *GPUMemory) ResetLy() {
	g.LCD.ResetLY()
	g.LCD.CmpLYC()
}

// ResetWLC resets the internal window line counter at start-of-frame.
func (g *GPUMemory) ResetWLC() { g.LCD.ResetWLC() }

// IncWLC advances the window line counter, once per scanline on which the
// window was visible.
func (g *GPUMemory) IncWLC() { g.LCD.IncWLC() }

// WLC returns the current window line counter.
func (g *GPUMemory) WLC() int { return g.LCD.WLC() }

// GetTileIndex, GetTileAttributes and GetTileDataRow forward to VRAM for
// background/window rendering; GetObjTileDataRow forwards for sprite
// rendering. They are exposed here because the rendering driver talks to
// GPUMemory as a whole, not to VRAM directly.
func (g *GPUMemory) GetTileIndex(area uint16, y, x int) uint8 {
	return g.VRAM.GetTileIndex(area, y, x)
}

func (g *GPUMemory) GetTileAttributes(area uint16, y, x int) uint8 {
	return g.VRAM.GetTileAttributes(area, y, x)
}

func (g *GPUMemory) GetTileDataRow(area uint16, index uint8, row int, bank uint8) (byte, byte) {
	return g.VRAM.GetTileDataRow(area, index, row, bank)
}

func (g *GPUMemory) GetObjTileDataRow(index uint8, size, row int, chosenBank uint8) (byte, byte) {
	return g.VRAM.GetObjTileDataRow(index, size, row, chosenBank)
}

// ScanOam extracts up to 10 ScannedObjects for scanline ly: the raw OAM
// scan (see OAM.ScanLine) followed by per-entry flag decoding, row
// selection (honoring Y-flip), and tile-row fetch.
//
// Sprite bit-reversal happens when X-flip is *not* set: the renderer is
// assumed to consume pixels MSB-first, so an unflipped sprite's bytes are
// reversed here to compensate. This inverts the naive reading of the flag
// but is intentional and must be preserved.
func (g *GPUMemory) ScanOam(ly int) []ScannedObject {
	size := 8
	if g.LCD.LCDCBit(LCDCObjSize) {
		size = 16
	}

	entries := g.OAM.ScanLine(ly, size)
	out := make([]ScannedObject, 0, len(entries))
	for _, e := range entries {
		yFlip := bit.IsSet(flagYFlip, e.Flags)
		xFlip := bit.IsSet(flagXFlip, e.Flags)
		bankSrc := uint8(0)
		if bit.IsSet(flagBank, e.Flags) {
			bankSrc = 1
		}
		palette := e.Flags & 0x07
		prio := bit.IsSet(flagPriority, e.Flags)

		top := int(e.Y) - 16
		row := ly - top
		if yFlip {
			row = size - 1 - row
		}

		p1, p2 := g.VRAM.GetObjTileDataRow(e.Tile, size, row, bankSrc)
		if !xFlip {
			p1 = bit.Reverse(p1)
			p2 = bit.Reverse(p2)
		}

		out = append(out, ScannedObject{
			X:       e.X,
			P1:      p1,
			P2:      p2,
			Palette: palette,
			Prio:    prio,
		})
	}
	return out
}
