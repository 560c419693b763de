// Package bus implements the memory-mapped address bus: region routing
// to the cartridge mapper, VRAM/OAM (via the PPU), WRAM/HRAM and the
// I/O register file, plus the OAM DMA engine, CGB speed switch, HDMA,
// and the cheat read-intercept. On every Tick the bus advances the DMA
// engine, PPU, APU, timer and RTC by the elapsed T-cycles.
package bus

import (
	"github.com/rs/zerolog"

	"github.com/mattjamison/gogb/internal/addr"
	"github.com/mattjamison/gogb/internal/audio"
	"github.com/mattjamison/gogb/internal/cartridge"
	"github.com/mattjamison/gogb/internal/cheats"
	"github.com/mattjamison/gogb/internal/interrupt"
	"github.com/mattjamison/gogb/internal/joypad"
	"github.com/mattjamison/gogb/internal/savestate"
	"github.com/mattjamison/gogb/internal/timer"
	"github.com/mattjamison/gogb/internal/video"
)

const (
	wramBankSize = 0x1000
	wramBanks    = 8
	hramSize     = 0x7F
)

// Config carries the construction options the bus needs.
type Config struct {
	CGB        bool
	SampleRate int
	BootROM    []byte
}

// Bus owns every memory-mapped component and routes CPU accesses.
type Bus struct {
	cgb bool

	mapper cartridge.Mapper

	wram     [wramBanks][wramBankSize]uint8
	wramBank uint8
	hram     [hramSize]uint8

	bootROM []byte
	inBIOS  bool

	ppu    *video.PPU
	apu    *audio.APU
	timer  *timer.Timer
	joypad *joypad.Joypad
	intc   *interrupt.Controller
	dma    dma
	cheats *cheats.Registry

	// CGB double-speed state: KEY1 prepare bit and the active speed.
	speedPrepare bool
	doubleSpeed  bool

	// CGB HBlank DMA (FF51-FF55)
	hdmaSource uint16
	hdmaDest   uint16
	hdmaLength uint8
	hdmaActive bool
	lastMode   video.Mode

	// STOP handling: remembers whether the LCD was blanked on entry.
	stopBlankedLCD bool

	// serial SB/SC are stored but the link cable is not emulated
	sb, sc uint8

	// leftover sub-M-cycle budget for the DMA engine
	dmaCycleRemainder int

	// misc I/O registers with no dedicated component
	io [0x80]uint8

	log zerolog.Logger
}

// New wires a bus around the given mapper.
func New(mapper cartridge.Mapper, cfg Config, log zerolog.Logger) *Bus {
	b := &Bus{
		cgb:      cfg.CGB,
		mapper:   mapper,
		wramBank: 1,
		bootROM:  cfg.BootROM,
		inBIOS:   len(cfg.BootROM) > 0,
		intc:     interrupt.New(),
		timer:    timer.New(),
		joypad:   joypad.New(),
		apu:      audio.New(cfg.SampleRate),
		cheats:   cheats.NewRegistry(),
		log:      log,
	}
	b.ppu = video.New(cfg.CGB, b.intc.Request)
	b.lastMode = b.ppu.Mode()
	b.timer.InterruptHandler = func() { b.intc.Request(addr.TimerInterrupt) }
	b.joypad.InterruptHandler = func() { b.intc.Request(addr.JoypadInterrupt) }
	b.timer.SetSeed(0xABCC)
	return b
}

func (b *Bus) PPU() *video.PPU                 { return b.ppu }
func (b *Bus) APU() *audio.APU                 { return b.apu }
func (b *Bus) Timer() *timer.Timer             { return b.timer }
func (b *Bus) Joypad() *joypad.Joypad          { return b.joypad }
func (b *Bus) Interrupts() *interrupt.Controller { return b.intc }
func (b *Bus) Mapper() cartridge.Mapper        { return b.mapper }
func (b *Bus) Cheats() *cheats.Registry        { return b.cheats }

// DoubleSpeed reports whether the CGB double-speed mode is active.
func (b *Bus) DoubleSpeed() bool { return b.doubleSpeed }

// Tick advances the peripherals by elapsed CPU T-cycles. In double
// speed the PPU and APU run at half the CPU clock; the timer and DMA
// track the CPU clock directly.
func (b *Bus) Tick(tCycles int) {
	b.timer.Tick(tCycles)

	b.dmaCycleRemainder += tCycles
	for b.dmaCycleRemainder >= 4 {
		b.dmaCycleRemainder -= 4
		b.dma.step(b)
	}

	peripheralCycles := tCycles
	if b.doubleSpeed {
		peripheralCycles /= 2
	}
	b.ppu.Tick(peripheralCycles)
	b.apu.Tick(peripheralCycles)

	if m, ok := b.mapper.(interface{ Advance(int) }); ok {
		m.Advance(peripheralCycles)
	}

	mode := b.ppu.Mode()
	if mode == video.HBlankMode && b.lastMode != video.HBlankMode {
		b.hdmaHBlankStep()
	}
	b.lastMode = mode
}

// ReadIE, ReadIF and WriteIF satisfy the CPU's bus interface without a
// full Read dispatch for the interrupt hot path.
func (b *Bus) ReadIE() uint8       { return b.intc.ReadIE() }
func (b *Bus) ReadIF() uint8       { return b.intc.ReadIF() }
func (b *Bus) WriteIF(value uint8) { b.intc.WriteIF(value) }

// RequestInterrupt sets the IF bit for the given interrupt.
func (b *Bus) RequestInterrupt(i addr.Interrupt) { b.intc.Request(i) }

// dmaBlocks reports whether an active OAM DMA hides address from the
// CPU; only HRAM stays reachable.
func (b *Bus) dmaBlocks(address uint16) bool {
	if !b.dma.inProgress || b.dma.delay > 0 {
		return false
	}
	return address < 0xFF80 || address == 0xFFFF
}

// Read services a CPU read, including the cheat-table consultation.
func (b *Bus) Read(address uint16) uint8 {
	if b.dmaBlocks(address) {
		return 0xFF
	}
	value := b.read(address)
	if b.cheats.Len() > 0 {
		value = b.cheats.Apply(address, value, b.bankForCheat)
	}
	return value
}

// readForDMA is the DMA engine's read path: it bypasses the open-bus
// blocking the CPU sees while the transfer runs.
func (b *Bus) readForDMA(address uint16) uint8 {
	return b.read(address)
}

func (b *Bus) biosCovers(address uint16) bool {
	if !b.inBIOS || int(address) >= len(b.bootROM) {
		return false
	}
	if address < 0x0100 {
		return true
	}
	// the CGB boot ROM maps a second stretch above the header
	return b.cgb && address >= 0x0200 && address < 0x0900
}

func (b *Bus) read(address uint16) uint8 {
	switch {
	case address < 0x8000:
		if b.biosCovers(address) {
			return b.bootROM[address]
		}
		return b.mapper.ReadROM(address)
	case address < 0xA000:
		return b.ppu.ReadVRAM(address)
	case address < 0xC000:
		return b.mapper.ReadRAM(address)
	case address < 0xD000:
		return b.wram[0][address-0xC000]
	case address < 0xE000:
		return b.wram[b.wramBank][address-0xD000]
	case address < 0xFE00:
		return b.read(address - 0x2000)
	case address < 0xFEA0:
		return b.ppu.ReadOAM(address)
	case address < 0xFF00:
		return 0xFF
	case address < 0xFF80:
		return b.readIO(address)
	case address < 0xFFFF:
		return b.hram[address-0xFF80]
	default:
		return b.intc.ReadIE()
	}
}

// Write services a CPU write.
func (b *Bus) Write(address uint16, value uint8) {
	// the DMA register itself stays writable so a running transfer can
	// be restarted with a new source
	if b.dmaBlocks(address) && address != addr.DMA {
		return
	}
	b.write(address, value)
}

func (b *Bus) write(address uint16, value uint8) {
	switch {
	case address < 0x8000:
		b.mapper.WriteROM(address, value)
	case address < 0xA000:
		b.ppu.WriteVRAM(address, value)
	case address < 0xC000:
		b.mapper.WriteRAM(address, value)
	case address < 0xD000:
		b.wram[0][address-0xC000] = value
	case address < 0xE000:
		b.wram[b.wramBank][address-0xD000] = value
	case address < 0xFE00:
		b.write(address-0x2000, value)
	case address < 0xFEA0:
		b.ppu.WriteOAM(address, value)
	case address < 0xFF00:
		// prohibited region, writes ignored
	case address < 0xFF80:
		b.writeIO(address, value)
	case address < 0xFFFF:
		b.hram[address-0xFF80] = value
	default:
		b.intc.WriteIE(value)
	}
}

func (b *Bus) readIO(address uint16) uint8 {
	switch {
	case address == addr.P1:
		return b.joypad.Read()
	case address == addr.SB:
		return b.sb
	case address == addr.SC:
		return b.sc | 0x7E
	case address >= addr.DIV && address <= addr.TAC:
		return b.timer.Read(address)
	case address == addr.IF:
		return b.intc.ReadIF()
	case address >= addr.AudioStart && address <= addr.AudioEnd:
		return b.apu.ReadRegister(address)
	case address == addr.DMA:
		return b.dma.Source()
	case address >= addr.LCDC && address <= addr.WX:
		return b.ppu.ReadRegister(address)
	case address == addr.KEY1:
		if !b.cgb {
			return 0xFF
		}
		v := uint8(0x7E)
		if b.doubleSpeed {
			v |= 0x80
		}
		if b.speedPrepare {
			v |= 0x01
		}
		return v
	case address == addr.VBK, address >= addr.BCPS && address <= addr.OCPD:
		return b.ppu.ReadRegister(address)
	case address >= addr.HDMA1 && address <= addr.HDMA5:
		return b.readHDMA(address)
	case address == addr.SVBK:
		if !b.cgb {
			return 0xFF
		}
		return 0xF8 | b.wramBank
	default:
		return b.io[address-0xFF00]
	}
}

func (b *Bus) writeIO(address uint16, value uint8) {
	switch {
	case address == addr.P1:
		b.joypad.Write(value)
	case address == addr.SB:
		b.sb = value
	case address == addr.SC:
		b.sc = value
	case address >= addr.DIV && address <= addr.TAC:
		b.timer.Write(address, value)
	case address == addr.IF:
		b.intc.WriteIF(value)
	case address >= addr.AudioStart && address <= addr.AudioEnd:
		b.apu.WriteRegister(address, value)
	case address == addr.DMA:
		b.dma.Start(value)
	case address >= addr.LCDC && address <= addr.WX:
		b.ppu.WriteRegister(address, value)
	case address == addr.KEY1:
		if b.cgb {
			b.speedPrepare = value&0x01 != 0
		}
	case address == addr.VBK, address >= addr.BCPS && address <= addr.OCPD:
		b.ppu.WriteRegister(address, value)
	case address == 0xFF50:
		if value != 0 {
			b.inBIOS = false
		}
	case address >= addr.HDMA1 && address <= addr.HDMA5:
		b.writeHDMA(address, value)
	case address == addr.SVBK:
		if b.cgb {
			bank := value & 0x07
			if bank == 0 {
				bank = 1
			}
			b.wramBank = bank
		}
	default:
		b.log.Debug().Uint16("addr", address).Uint8("value", value).Msg("write to unmapped I/O register")
		b.io[address-0xFF00] = value
	}
}

// EnterStop implements the CPU's STOP hook: on CGB with the speed
// switch armed it toggles double-speed and resumes immediately
// (returning true); otherwise it blanks the LCD until ExitStop.
func (b *Bus) EnterStop() bool {
	if b.cgb && b.speedPrepare {
		b.speedPrepare = false
		b.doubleSpeed = !b.doubleSpeed
		return true
	}
	lcdc := b.ppu.ReadRegister(addr.LCDC)
	if lcdc&0x80 != 0 {
		b.ppu.WriteRegister(addr.LCDC, lcdc&^0x80)
		b.stopBlankedLCD = true
	}
	return false
}

// ExitStop restores the LCD if EnterStop blanked it.
func (b *Bus) ExitStop() {
	if b.stopBlankedLCD {
		b.stopBlankedLCD = false
		lcdc := b.ppu.ReadRegister(addr.LCDC)
		b.ppu.WriteRegister(addr.LCDC, lcdc|0x80)
	}
}

// bankForCheat resolves the bank a GameShark code must match for the
// given address: the mapper's RAM bank for external RAM, the active
// WRAM bank for work RAM.
func (b *Bus) bankForCheat(address uint16) uint8 {
	switch {
	case address >= 0xA000 && address < 0xC000:
		return b.mapper.GetRAMBank()
	case address >= 0xC000 && address < 0xE000:
		return b.wramBank
	default:
		return 0
	}
}

// readHDMA services reads of FF51-FF55.
func (b *Bus) readHDMA(address uint16) uint8 {
	if !b.cgb {
		return 0xFF
	}
	if address == addr.HDMA5 {
		if !b.hdmaActive {
			return 0xFF
		}
		return b.hdmaLength - 1
	}
	// HDMA1-4 are write-only
	return 0xFF
}

// writeHDMA services writes of FF51-FF55: source/destination setup and
// transfer start. General-purpose transfers copy everything at once;
// HBlank transfers copy 16 bytes at each HBlank entry.
func (b *Bus) writeHDMA(address uint16, value uint8) {
	if !b.cgb {
		return
	}
	switch address {
	case addr.HDMA1:
		b.hdmaSource = (b.hdmaSource & 0x00F0) | uint16(value)<<8
	case addr.HDMA2:
		b.hdmaSource = (b.hdmaSource & 0xFF00) | uint16(value&0xF0)
	case addr.HDMA3:
		b.hdmaDest = (b.hdmaDest & 0x00F0) | uint16(value&0x1F)<<8
	case addr.HDMA4:
		b.hdmaDest = (b.hdmaDest & 0x1F00) | uint16(value&0xF0)
	case addr.HDMA5:
		blocks := (value & 0x7F) + 1
		if value&0x80 == 0 {
			if b.hdmaActive {
				// cancel a running HBlank transfer
				b.hdmaActive = false
				return
			}
			for i := uint8(0); i < blocks; i++ {
				b.hdmaCopyBlock()
			}
		} else {
			b.hdmaLength = blocks
			b.hdmaActive = true
		}
	}
}

func (b *Bus) hdmaCopyBlock() {
	for i := 0; i < 16; i++ {
		value := b.read(b.hdmaSource)
		b.write(0x8000|(b.hdmaDest&0x1FFF), value)
		b.hdmaSource++
		b.hdmaDest++
	}
}

func (b *Bus) hdmaHBlankStep() {
	if !b.hdmaActive {
		return
	}
	b.hdmaCopyBlock()
	b.hdmaLength--
	if b.hdmaLength == 0 {
		b.hdmaActive = false
	}
}

// Save appends the bus-owned state: WRAM, HRAM, banking and speed
// flags, serial/misc registers, DMA and HDMA engines.
func (b *Bus) Save(w *savestate.Writer) {
	for i := range b.wram {
		w.Bytes(b.wram[i][:])
	}
	w.U8(b.wramBank)
	w.Bytes(b.hram[:])
	w.Bool(b.inBIOS)
	w.Bool(b.speedPrepare)
	w.Bool(b.doubleSpeed)
	w.U8(b.sb)
	w.U8(b.sc)
	w.Bytes(b.io[:])

	w.U16(b.dma.source)
	w.U8(b.dma.offset)
	w.U8(b.dma.delay)
	w.Bool(b.dma.inProgress)
	w.Int(b.dmaCycleRemainder)

	w.U16(b.hdmaSource)
	w.U16(b.hdmaDest)
	w.U8(b.hdmaLength)
	w.Bool(b.hdmaActive)
	w.U8(uint8(b.lastMode))
	w.Bool(b.stopBlankedLCD)

	w.U8(b.intc.ReadIE())
	w.U8(b.intc.ReadIF())
}

// Load restores state written by Save.
func (b *Bus) Load(r *savestate.Reader) error {
	for i := range b.wram {
		r.Bytes(b.wram[i][:])
	}
	b.wramBank = r.U8()
	if b.wramBank == 0 || b.wramBank >= wramBanks {
		b.wramBank = 1
	}
	r.Bytes(b.hram[:])
	b.inBIOS = r.Bool()
	b.speedPrepare = r.Bool()
	b.doubleSpeed = r.Bool()
	b.sb = r.U8()
	b.sc = r.U8()
	r.Bytes(b.io[:])

	b.dma.source = r.U16()
	b.dma.offset = r.U8()
	b.dma.delay = r.U8()
	b.dma.inProgress = r.Bool()
	b.dmaCycleRemainder = r.Int()

	b.hdmaSource = r.U16()
	b.hdmaDest = r.U16()
	b.hdmaLength = r.U8()
	b.hdmaActive = r.Bool()
	b.lastMode = video.Mode(r.U8() & 0x03)
	b.stopBlankedLCD = r.Bool()

	b.intc.WriteIE(r.U8())
	b.intc.WriteIF(r.U8())
	return r.Err()
}
