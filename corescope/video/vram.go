package video

import "github.com/gbcgb/corescope/corescope/addr"

// VRAM holds the two 8 KiB CGB video RAM banks mapped at 0x8000-0x9FFF,
// plus the bank-select register exposed at 0xFF4F.
type VRAM struct {
	banks      [2][addr.VRAMBankSize]byte
	activeBank uint8 // 0 or 1
}

// InRange reports whether addr belongs to the VRAM region or its
// bank-select register.
func (v *VRAM) InRange(a uint16) bool {
	return (a >= addr.VRAMStart && a <= addr.VRAMEnd) || a == addr.VBK
}

// Get reads a byte. Reads to 0xFF4F always report the high bits set
// (0xFE | selected bank).
func (v *VRAM) Get(a uint16) uint8 {
	if a == addr.VBK {
		return 0xFE | (v.activeBank & 1)
	}
	return v.banks[v.activeBank][a-addr.VRAMStart]
}

// Set writes a byte. Writes to 0xFF4F select the active bank (only bit 0
// is meaningful); writes in 0x8000-0x9FFF land in the currently selected
// bank.
func (v *VRAM) Set(a uint16, value uint8) {
	if a == addr.VBK {
		v.activeBank = value & 1
		return
	}
	v.banks[v.activeBank][a-addr.VRAMStart] = value
}

// GetBank reads a byte from an explicit bank, independent of the active
// bank selector. Used by tile/attribute lookups and sprite fetches which
// address a specific bank directly.
func (v *VRAM) GetBank(bank uint8, a uint16) uint8 {
	return v.banks[bank&1][a-addr.VRAMStart]
}

// GetTileIndex reads a background/window tile map entry from VRAM bank 0.
// area must be addr.TileMap0 or addr.TileMap1.
func (v *VRAM) GetTileIndex(area uint16, y, x int) uint8 {
	offset := uint16((y/8)*32 + (x / 8))
	return v.GetBank(0, area+offset)
}

// GetTileAttributes reads the CGB tile attribute byte for the same map
// coordinate, from VRAM bank 1.
func (v *VRAM) GetTileAttributes(area uint16, y, x int) uint8 {
	offset := uint16((y/8)*32 + (x / 8))
	return v.GetBank(1, area+offset)
}

// GetTileDataRow fetches the two bitplane bytes for one row of a
// background/window tile, from the given bank. area selects the
// addressing mode: addr.TileData0 for unsigned indices (0-255), or
// addr.TileData2 for signed indices (-128..127).
func (v *VRAM) GetTileDataRow(area uint16, index uint8, row int, bank uint8) (byte, byte) {
	var tileAddr uint16
	if area == addr.TileData2 {
		signed := int8(index)
		tileAddr = uint16(int(area) + int(signed)*16 + row*2)
	} else {
		tileAddr = area + uint16(index)*16 + uint16(row*2)
	}
	lo := v.GetBank(bank, tileAddr)
	hi := v.GetBank(bank, tileAddr+1)
	return lo, hi
}

// GetObjTileDataRow fetches the two bitplane bytes for one row of a
// sprite tile. Sprites always use unsigned addressing from 0x8000. When
// size is 16, the low bit of index is masked off (tall sprites are
// addressed as a pair).
//
// chosenBank is XORed with the VRAM bank-select register's low bit before
// selecting the source bank. The intent of this XOR is unclear - sprites
// are expected to pick their bank purely from the OAM attribute flag - but
// it is preserved here rather than silently corrected.
func (v *VRAM) GetObjTileDataRow(index uint8, size, row int, chosenBank uint8) (byte, byte) {
	if size == 16 {
		index &^= 1
	}
	tileAddr := addr.TileData0 + uint16(index)*16 + uint16(row*2)
	bank := chosenBank ^ (v.activeBank & 1)
	lo := v.GetBank(bank, tileAddr)
	hi := v.GetBank(bank, tileAddr+1)
	return lo, hi
}
