package video

import "github.com/gbcgb/corescope/corescope/addr"

// OAMEntry is a single 4-byte object attribute memory record, exactly as
// laid out in hardware: Y position (+16 offset), X position (+8 offset),
// tile index, and the attribute flags byte.
type OAMEntry struct {
	Y     uint8
	X     uint8
	Tile  uint8
	Flags uint8
}

// Attribute flag bit positions within OAMEntry.Flags.
const (
	flagPriority uint8 = 7 // 1 = behind non-zero background pixels
	flagYFlip    uint8 = 6
	flagXFlip    uint8 = 5
	flagBank     uint8 = 3 // CGB VRAM bank source
	// bits 0-2: CGB palette index
)

// OAM is Object Attribute Memory: 40 sprite entries at 0xFE00-0xFE9F.
type OAM struct {
	entries [40]OAMEntry
}

// InRange reports whether a belongs to the OAM region.
func (o *OAM) InRange(a uint16) bool {
	return a >= addr.OAMStart && a <= addr.OAMEnd
}

// Get reads a single byte of an OAM entry.
func (o *OAM) Get(a uint16) uint8 {
	i, field := oamIndex(a)
	e := &o.entries[i]
	switch field {
	case 0:
		return e.Y
	case 1:
		return e.X
	case 2:
		return e.Tile
	default:
		return e.Flags
	}
}

// Set writes a single byte of an OAM entry.
func (o *OAM) Set(a uint16, value uint8) {
	i, field := oamIndex(a)
	e := &o.entries[i]
	switch field {
	case 0:
		e.Y = value
	case 1:
		e.X = value
	case 2:
		e.Tile = value
	default:
		e.Flags = value
	}
}

func oamIndex(a uint16) (entry int, field int) {
	offset := a - addr.OAMStart
	return int(offset / 4), int(offset % 4)
}

// ScanLine walks the 40 OAM entries in address order and returns every
// entry whose screen-space row span covers ly, given the current object
// size (8 or 16). At most 10 entries are returned, matching the hardware
// per-scanline sprite limit.
//
// The source accumulates matches by prepending, so earlier-matching
// entries end up later in the returned slice. This ordering is preserved:
// callers must not treat list order as render priority, which is resolved
// separately by X position.
func (o *OAM) ScanLine(ly int, size int) []OAMEntry {
	var matched []OAMEntry
	for i := range o.entries {
		e := o.entries[i]
		top := int(e.Y) - 16
		if ly < top || ly > top+size-1 {
			continue
		}
		matched = append([]OAMEntry{e}, matched...)
		if len(matched) == 10 {
			break
		}
	}
	return matched
}
