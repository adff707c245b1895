// Package corescope implements the unified address-bus dispatcher and the
// console snapshot it fans out to: the GPU memory subsystem, work RAM,
// HRAM, the interrupt registers, and a set of minimal collaborator
// devices for the regions whose real behavior (CPU execution, cartridge
// banking, audio synthesis, serial/timer/joypad logic) is out of scope
// here.
package corescope

import (
	"fmt"
	"log/slog"

	"github.com/gbcgb/corescope/corescope/addr"
	"github.com/gbcgb/corescope/corescope/memory"
	"github.com/gbcgb/corescope/corescope/video"
)

// Bus is the single owner of the console snapshot and the sole entry
// point CPU, DMA, and rendering code use to read or write the 16-bit
// address space.
type Bus struct {
	Cartridge   *memory.Cartridge
	GPU         *video.GPUMemory
	WRAM        *memory.WRAM
	HRAM        *memory.HRAM
	Interrupts  *memory.Interrupts
	Joypad      *memory.RangeDevice
	Serial      *memory.RangeDevice
	Timer       *memory.RangeDevice
	Audio       *memory.RangeDevice
	WavePattern *memory.RangeDevice
	DMA         *memory.DMAEngine
	HDMA        *memory.HDMAEngine
}

// NewBus wires a fresh console snapshot together. The DMA engines are
// constructed last and given a reference back to the bus, since they need
// to perform ordinary bus reads/writes to do their copies.
func NewBus() *Bus {
	b := &Bus{
		Cartridge:   memory.NewCartridge(),
		GPU:         video.New(),
		WRAM:        &memory.WRAM{},
		HRAM:        &memory.HRAM{},
		Interrupts:  &memory.Interrupts{},
		Joypad:      memory.NewJoypad(),
		Serial:      memory.NewSerial(),
		Timer:       memory.NewTimer(),
		Audio:       memory.NewAudio(),
		WavePattern: memory.NewWavePattern(),
	}
	b.DMA = memory.NewDMAEngine(b)
	b.HDMA = memory.NewHDMAEngine(b)
	return b
}

// Get8 reads a single byte, following the bus's address decoding
// priority: cartridge, then GPU memory, then WRAM (+echo), then the
// remaining I/O devices, then HRAM/IE, then the unmapped fallback.
func (b *Bus) Get8(a uint16) uint8 {
	switch {
	case b.Cartridge.InRange(a):
		return b.Cartridge.Get(a)
	case b.GPU.InRange(a):
		return b.GPU.Get(a)
	case b.WRAM.InRange(a):
		return b.WRAM.Get(a)
	case a >= addr.EchoStart && a <= addr.EchoEnd:
		return b.WRAM.Get(a - addr.EchoOffset)
	case b.Joypad.InRange(a):
		return b.Joypad.Get(a)
	case b.Serial.InRange(a):
		return b.Serial.Get(a)
	case b.Timer.InRange(a):
		return b.Timer.Get(a)
	case a == addr.IF:
		return b.Interrupts.Get(a)
	case b.Audio.InRange(a):
		return b.Audio.Get(a)
	case b.WavePattern.InRange(a):
		return b.WavePattern.Get(a)
	case b.DMA.InRange(a):
		return b.DMA.Get(a)
	case b.HDMA.InRange(a):
		return b.HDMA.Get(a)
	case b.HRAM.InRange(a):
		return b.HRAM.Get(a)
	case a == addr.IE:
		return b.Interrupts.Get(a)
	default:
		slog.Warn("read from unmapped address", "addr", fmt.Sprintf("0x%04X", a))
		return 0xFF
	}
}

// Set8 writes a single byte, following the same decoding priority as
// Get8. Writes that land inside GPU memory re-evaluate the LY==LYC latch
// afterward and may raise the LCD STAT interrupt on a rising edge.
func (b *Bus) Set8(a uint16, value uint8) {
	switch {
	case b.Cartridge.InRange(a):
		b.Cartridge.Set(a, value)
	case b.GPU.InRange(a):
		b.GPU.Set(a, value)
		b.runLycGate()
	case b.WRAM.InRange(a):
		b.WRAM.Set(a, value)
	case a >= addr.EchoStart && a <= addr.EchoEnd:
		b.WRAM.Set(a-addr.EchoOffset, value)
	case b.Joypad.InRange(a):
		b.Joypad.Set(a, value)
	case b.Serial.InRange(a):
		b.Serial.Set(a, value)
	case b.Timer.InRange(a):
		b.Timer.Set(a, value)
	case a == addr.IF:
		b.Interrupts.Set(a, value)
	case b.Audio.InRange(a):
		b.Audio.Set(a, value)
	case b.WavePattern.InRange(a):
		b.WavePattern.Set(a, value)
	case b.DMA.InRange(a):
		b.DMA.Set(a, value)
	case b.HDMA.InRange(a):
		b.HDMA.Set(a, value)
	case b.HRAM.InRange(a):
		b.HRAM.Set(a, value)
	case a == addr.IE:
		b.Interrupts.Set(a, value)
	default:
		slog.Warn("write to unmapped address", "addr", fmt.Sprintf("0x%04X", a), "value", fmt.Sprintf("0x%02X", value))
	}
}

// Get16 reads a little-endian 16-bit value: the low byte at a, the high
// byte at a+1.
func (b *Bus) Get16(a uint16) uint16 {
	lo := b.Get8(a)
	hi := b.Get8(a + 1)
	return (uint16(hi) << 8) | uint16(lo)
}

// Set16 writes a little-endian 16-bit value, low byte first. Side effects
// of the low-byte write (palette auto-increment, the LY==LYC gate) are
// visible to the high-byte write that follows.
func (b *Bus) Set16(a uint16, value uint16) {
	b.Set8(a, uint8(value))
	b.Set8(a+1, uint8(value>>8))
}

// runLycGate re-evaluates LY==LYC and requests the LCD STAT interrupt on
// a rising edge, provided the LYC interrupt source is enabled.
func (b *Bus) runLycGate() {
	if b.GPU.LCD.CmpLYC() && b.GPU.LCD.StatBit(video.StatLYCIrq) {
		b.Interrupts.Request(addr.LCDSTATInterrupt)
	}
}

// IncLY advances the GPU's scanline and runs the LY==LYC gate, exactly as
// a bus write into GPU memory would.
func (b *Bus) IncLY() {
	b.GPU.LCD.IncLY()
	b.runLycGate()
}

// ResetLY resets the GPU's scanline to 0 and runs the LY==LYC gate.
func (b *Bus) ResetLY() {
	b.GPU.LCD.ResetLY()
	b.runLycGate()
}

// ChangeMode installs a new GPU mode and projects its code into STAT.
func (b *Bus) ChangeMode(m video.Mode) {
	b.GPU.ChangeMode(m)
}

// UpdateMode installs a new GPU mode without touching STAT.
func (b *Bus) UpdateMode(m video.Mode) {
	b.GPU.UpdateMode(m)
}

// RequestJoypad, RequestSerial, RequestTimer, RequestLCD and RequestVBlank
// request their respective interrupt, subject to the IE gate in
// Interrupts.Request.
func (b *Bus) RequestJoypad() { b.Interrupts.Request(addr.JoypadInterrupt) }
func (b *Bus) RequestSerial() { b.Interrupts.Request(addr.SerialInterrupt) }
func (b *Bus) RequestTimer()  { b.Interrupts.Request(addr.TimerInterrupt) }
func (b *Bus) RequestLCD()    { b.Interrupts.Request(addr.LCDSTATInterrupt) }
func (b *Bus) RequestVBlank() { b.Interrupts.Request(addr.VBlankInterrupt) }

// InterruptsPending returns IE & IF & 0x1F.
func (b *Bus) InterruptsPending() uint8 {
	return b.Interrupts.Pending()
}

// LoadROM loads a ROM image into the cartridge stub.
func (b *Bus) LoadROM(data []byte) {
	b.Cartridge.LoadROM(data)
}
