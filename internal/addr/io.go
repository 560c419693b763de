// Package addr centralizes the I/O register and memory-region addresses
// used across the bus, PPU, APU, timer and joypad packages.
package addr

// gpu registers
const (
	// LCDC is the LCD Control register.
	LCDC uint16 = 0xFF40
	// STAT is the LCDC Status register.
	STAT uint16 = 0xFF41
	// SCY is the Scroll Y register.
	SCY uint16 = 0xFF42
	// SCX is the Scroll X register.
	SCX uint16 = 0xFF43
	// LY is the LCDC Y-Coordinate (read-only) register.
	LY uint16 = 0xFF44
	// LYC is the LY Compare register.
	LYC uint16 = 0xFF45
	// DMA is the DMA Transfer and Start register.
	DMA uint16 = 0xFF46
	// BGP is the DMG BG Palette register.
	BGP uint16 = 0xFF47
	// OBP0 is DMG Object Palette 0.
	OBP0 uint16 = 0xFF48
	// OBP1 is DMG Object Palette 1.
	OBP1 uint16 = 0xFF49
	// WY is the Window Y Position register.
	WY uint16 = 0xFF4A
	// WX is the Window X Position register.
	WX uint16 = 0xFF4B
)

// CGB-only registers.
const (
	// KEY1 is the CGB prepare-speed-switch register.
	KEY1 uint16 = 0xFF4D
	// VBK selects the active VRAM bank (bit 0).
	VBK uint16 = 0xFF4F
	// HDMA1..HDMA5 drive the CGB general/h-blank VRAM DMA.
	HDMA1 uint16 = 0xFF51
	HDMA2 uint16 = 0xFF52
	HDMA3 uint16 = 0xFF53
	HDMA4 uint16 = 0xFF54
	HDMA5 uint16 = 0xFF55
	// BCPS/BCPD index and access the background color palette RAM.
	BCPS uint16 = 0xFF68
	BCPD uint16 = 0xFF69
	// OCPS/OCPD index and access the object color palette RAM.
	OCPS uint16 = 0xFF6A
	OCPD uint16 = 0xFF6B
	// SVBK selects the active WRAM bank (bits 0-2).
	SVBK uint16 = 0xFF70
)

// Audio/Sound registers - APU (Audio Processing Unit)
// Reference: https://gbdev.io/pandocs/Audio_Registers.html
const (
	AudioStart uint16 = 0xFF10
	AudioEnd   uint16 = 0xFF3F

	// Channel 1 - Square wave with sweep
	NR10 uint16 = 0xFF10
	NR11 uint16 = 0xFF11
	NR12 uint16 = 0xFF12
	NR13 uint16 = 0xFF13
	NR14 uint16 = 0xFF14

	// Channel 2 - Square wave
	NR21 uint16 = 0xFF16
	NR22 uint16 = 0xFF17
	NR23 uint16 = 0xFF18
	NR24 uint16 = 0xFF19

	// Channel 3 - Custom wave
	NR30 uint16 = 0xFF1A
	NR31 uint16 = 0xFF1B
	NR32 uint16 = 0xFF1C
	NR33 uint16 = 0xFF1D
	NR34 uint16 = 0xFF1E

	// Channel 4 - Noise
	NR41 uint16 = 0xFF20
	NR42 uint16 = 0xFF21
	NR43 uint16 = 0xFF22
	NR44 uint16 = 0xFF23

	// Global sound control
	NR50 uint16 = 0xFF24
	NR51 uint16 = 0xFF25
	NR52 uint16 = 0xFF26

	// Wave pattern RAM (32 samples, 4-bit each)
	WaveRAMStart uint16 = 0xFF30
	WaveRAMEnd   uint16 = 0xFF3F
)

// OAM (Object Attribute Memory) - sprite data
const (
	OAMStart uint16 = 0xFE00
	OAMEnd   uint16 = 0xFE9F
)

// tile data and tile maps
const (
	TileData0 uint16 = 0x8000
	TileData1 uint16 = 0x8800
	TileData2 uint16 = 0x9000

	TileMap0 uint16 = 0x9800
	TileMap1 uint16 = 0x9C00
)

// interrupts
const (
	IF uint16 = 0xFF0F
	IE uint16 = 0xFFFF
)

// joypad
const (
	P1 uint16 = 0xFF00
)

// serial I/O
const (
	SB uint16 = 0xFF01
	SC uint16 = 0xFF02
)

// timers
const (
	DIV  uint16 = 0xFF04
	TIMA uint16 = 0xFF05
	TMA  uint16 = 0xFF06
	TAC  uint16 = 0xFF07
)

// Interrupt is an enum that represents one of the possible interrupts.
type Interrupt uint8

const (
	VBlankInterrupt  Interrupt = 1
	LCDSTATInterrupt Interrupt = 1 << 1
	TimerInterrupt   Interrupt = 1 << 2
	SerialInterrupt  Interrupt = 1 << 3
	JoypadInterrupt  Interrupt = 1 << 4
)
