// Package video implements the PPU: the OAM/VRAM/HBlank/VBlank scanline
// state machine, LCDC/STAT/LY register behavior, and the scanline
// renderer for both DMG (BGP/OBP palettes) and CGB (indexed color
// palettes, tile attributes, dual VRAM banks).
package video

import (
	"github.com/mattjamison/gogb/internal/addr"
	"github.com/mattjamison/gogb/internal/bit"
	"github.com/mattjamison/gogb/internal/savestate"
)

// Mode identifies the PPU's current rendering stage; the values match
// STAT bits 1-0.
type Mode uint8

const (
	HBlankMode Mode = 0
	VBlankMode Mode = 1
	OAMMode    Mode = 2
	VRAMMode   Mode = 3
)

const (
	oamCycles      = 80
	vramCycles     = 172
	hblankCycles   = 204
	scanlineCycles = oamCycles + vramCycles + hblankCycles
	vblankLines    = 10
	totalLines     = 154
	// FrameCycles is the T-cycle cost of one full frame.
	FrameCycles = scanlineCycles * totalLines
)

// STAT register bit positions.
const (
	statLycIrq       = 6
	statOamIrq       = 5
	statVblankIrq    = 4
	statHblankIrq    = 3
	statLycCondition = 2
)

// LCDC register bit positions.
const (
	lcdDisplayEnable       = 7
	windowTileMapSelect    = 6
	windowDisplayEnable    = 5
	bgWindowTileDataSelect = 4
	bgTileMapDisplaySelect = 3
	spriteSize             = 2
	spriteDisplayEnable    = 1
	bgDisplay              = 0
)

// PPU owns VRAM, OAM, the LCD registers and the framebuffer, and
// advances the scanline state machine in lockstep with the CPU clock.
type PPU struct {
	cgb bool

	vram     [2][0x2000]uint8
	vramBank uint8
	oam      [160]uint8

	lcdc, stat             uint8
	scy, scx, lyc, wy, wx  uint8
	bgp, obp0, obp1        uint8
	line                   int

	// CGB color palette RAM and index registers.
	bgPalette, objPalette [64]uint8
	bcps, ocps            uint8

	mode       Mode
	modeClock  int
	windowLine int

	framebuffer   *FrameBuffer
	bgPixelBuffer []uint8 // background color index per pixel, for sprite priority
	bgPriority    []bool  // CGB BG-over-OBJ attribute per pixel

	requestInterrupt func(addr.Interrupt)

	// FrameCallback fires once per completed frame, at entry to VBlank.
	FrameCallback func(*FrameBuffer)
}

// New creates a PPU in the post-boot state: LCD on, start of VBlank.
func New(cgb bool, requestInterrupt func(addr.Interrupt)) *PPU {
	p := &PPU{
		cgb:              cgb,
		framebuffer:      NewFrameBuffer(),
		bgPixelBuffer:    make([]uint8, FramebufferSize),
		bgPriority:       make([]bool, FramebufferSize),
		requestInterrupt: requestInterrupt,
		lcdc:             0x91,
		bgp:              0xFC,
		mode:             VBlankMode,
		line:             144,
	}
	p.stat = uint8(p.mode)
	return p
}

func (p *PPU) Framebuffer() *FrameBuffer { return p.framebuffer }

// Mode returns the current PPU mode.
func (p *PPU) Mode() Mode { return p.mode }

// LY returns the current scanline.
func (p *PPU) LY() uint8 { return uint8(p.line) }

func (p *PPU) lcdEnabled() bool {
	return bit.IsSet(lcdDisplayEnable, p.lcdc)
}

// Tick advances the state machine by the elapsed T-cycles, crossing as
// many mode boundaries as the budget covers. The LCD off state freezes
// everything at LY=0, mode 0.
func (p *PPU) Tick(cycles int) {
	if !p.lcdEnabled() {
		return
	}

	p.modeClock += cycles
	for p.advance() {
	}
}

// advance crosses at most one mode boundary, reporting whether it did.
func (p *PPU) advance() bool {
	switch p.mode {
	case OAMMode:
		if p.modeClock < oamCycles {
			return false
		}
		p.modeClock -= oamCycles
		p.setMode(VRAMMode)
		p.drawScanline()
	case VRAMMode:
		if p.modeClock < vramCycles {
			return false
		}
		p.modeClock -= vramCycles
		p.setMode(HBlankMode)
		if bit.IsSet(statHblankIrq, p.stat) {
			p.requestInterrupt(addr.LCDSTATInterrupt)
		}
	case HBlankMode:
		if p.modeClock < hblankCycles {
			return false
		}
		p.modeClock -= hblankCycles
		p.setLY(p.line + 1)

		if p.line == FramebufferHeight {
			p.setMode(VBlankMode)
			p.requestInterrupt(addr.VBlankInterrupt)
			if bit.IsSet(statVblankIrq, p.stat) {
				p.requestInterrupt(addr.LCDSTATInterrupt)
			}
			if p.FrameCallback != nil {
				p.FrameCallback(p.framebuffer)
			}
		} else {
			p.enterOAM()
		}
	case VBlankMode:
		if p.modeClock < scanlineCycles {
			return false
		}
		p.modeClock -= scanlineCycles
		p.setLY(p.line + 1)

		if p.line >= totalLines {
			p.setLY(0)
			p.windowLine = 0
			p.enterOAM()
		}
	}
	return true
}

func (p *PPU) enterOAM() {
	p.setMode(OAMMode)
	if bit.IsSet(statOamIrq, p.stat) {
		p.requestInterrupt(addr.LCDSTATInterrupt)
	}
}

func (p *PPU) setMode(mode Mode) {
	p.mode = mode
	p.stat = p.stat&0xFC | uint8(mode)
}

func (p *PPU) setLY(line int) {
	p.line = line
	p.compareLYToLYC()
}

func (p *PPU) compareLYToLYC() {
	if uint8(p.line) == p.lyc {
		p.stat = bit.Set(statLycCondition, p.stat)
		if bit.IsSet(statLycIrq, p.stat) {
			p.requestInterrupt(addr.LCDSTATInterrupt)
		}
	} else {
		p.stat = bit.Reset(statLycCondition, p.stat)
	}
}

// ReadVRAM services a CPU read; VRAM is inaccessible during mode 3.
func (p *PPU) ReadVRAM(address uint16) uint8 {
	if p.mode == VRAMMode {
		return 0xFF
	}
	return p.vram[p.vramBank][address&0x1FFF]
}

// WriteVRAM services a CPU write; writes during mode 3 are dropped.
func (p *PPU) WriteVRAM(address uint16, value uint8) {
	if p.mode == VRAMMode {
		return
	}
	p.vram[p.vramBank][address&0x1FFF] = value
}

// ReadOAM services a CPU read; OAM is inaccessible during modes 2-3.
func (p *PPU) ReadOAM(address uint16) uint8 {
	if p.mode == OAMMode || p.mode == VRAMMode {
		return 0xFF
	}
	return p.oam[address&0xFF]
}

// WriteOAM services a CPU write; dropped during modes 2-3.
func (p *PPU) WriteOAM(address uint16, value uint8) {
	if p.mode == OAMMode || p.mode == VRAMMode {
		return
	}
	p.oam[address&0xFF] = value
}

// SetOAMByte is the DMA engine's write path; it bypasses mode blocking
// since the DMA controller has bus priority over the CPU.
func (p *PPU) SetOAMByte(offset uint8, value uint8) {
	if offset < dmaOAMSize {
		p.oam[offset] = value
	}
}

// OAMByte reads OAM directly, bypassing mode blocking (test/debug use).
func (p *PPU) OAMByte(offset uint8) uint8 {
	return p.oam[offset&0xFF]
}

const dmaOAMSize = 160

// ReadRegister services CPU reads of the PPU's I/O registers.
func (p *PPU) ReadRegister(address uint16) uint8 {
	switch address {
	case addr.LCDC:
		return p.lcdc
	case addr.STAT:
		return p.stat | 0x80
	case addr.SCY:
		return p.scy
	case addr.SCX:
		return p.scx
	case addr.LY:
		return uint8(p.line)
	case addr.LYC:
		return p.lyc
	case addr.BGP:
		return p.bgp
	case addr.OBP0:
		return p.obp0
	case addr.OBP1:
		return p.obp1
	case addr.WY:
		return p.wy
	case addr.WX:
		return p.wx
	case addr.VBK:
		if !p.cgb {
			return 0xFF
		}
		return 0xFE | p.vramBank
	case addr.BCPS:
		return p.bcps
	case addr.BCPD:
		return p.bgPalette[p.bcps&0x3F]
	case addr.OCPS:
		return p.ocps
	case addr.OCPD:
		return p.objPalette[p.ocps&0x3F]
	default:
		return 0xFF
	}
}

// WriteRegister services CPU writes of the PPU's I/O registers.
func (p *PPU) WriteRegister(address uint16, value uint8) {
	switch address {
	case addr.LCDC:
		wasEnabled := p.lcdEnabled()
		p.lcdc = value
		if wasEnabled && !p.lcdEnabled() {
			// LCD off: LY and the mode machine reset and freeze.
			p.line = 0
			p.setMode(HBlankMode)
			p.modeClock = 0
			p.windowLine = 0
		} else if !wasEnabled && p.lcdEnabled() {
			p.enterOAM()
			p.compareLYToLYC()
		}
	case addr.STAT:
		// bits 0-2 are read-only status
		p.stat = (p.stat & 0x07) | (value & 0x78)
	case addr.SCY:
		p.scy = value
	case addr.SCX:
		p.scx = value
	case addr.LY:
		// read-only
	case addr.LYC:
		p.lyc = value
		p.compareLYToLYC()
	case addr.BGP:
		p.bgp = value
	case addr.OBP0:
		p.obp0 = value
	case addr.OBP1:
		p.obp1 = value
	case addr.WY:
		p.wy = value
	case addr.WX:
		p.wx = value
	case addr.VBK:
		if p.cgb {
			p.vramBank = value & 0x01
		}
	case addr.BCPS:
		p.bcps = value & 0xBF
	case addr.BCPD:
		p.bgPalette[p.bcps&0x3F] = value
		if bit.IsSet(7, p.bcps) {
			p.bcps = (p.bcps & 0x80) | ((p.bcps + 1) & 0x3F)
		}
	case addr.OCPS:
		p.ocps = value & 0xBF
	case addr.OCPD:
		p.objPalette[p.ocps&0x3F] = value
		if bit.IsSet(7, p.ocps) {
			p.ocps = (p.ocps & 0x80) | ((p.ocps + 1) & 0x3F)
		}
	}
}

// Save appends the full PPU state, framebuffer included.
func (p *PPU) Save(w *savestate.Writer) {
	w.Bytes(p.vram[0][:])
	w.Bytes(p.vram[1][:])
	w.U8(p.vramBank)
	w.Bytes(p.oam[:])
	w.U8(p.lcdc)
	w.U8(p.stat)
	w.U8(p.scy)
	w.U8(p.scx)
	w.U8(p.lyc)
	w.U8(p.wy)
	w.U8(p.wx)
	w.U8(p.bgp)
	w.U8(p.obp0)
	w.U8(p.obp1)
	w.Int(p.line)
	w.Bytes(p.bgPalette[:])
	w.Bytes(p.objPalette[:])
	w.U8(p.bcps)
	w.U8(p.ocps)
	w.U8(uint8(p.mode))
	w.Int(p.modeClock)
	w.Int(p.windowLine)
	for _, px := range p.framebuffer.buffer {
		w.U32(px)
	}
}

// Load restores state written by Save.
func (p *PPU) Load(r *savestate.Reader) error {
	r.Bytes(p.vram[0][:])
	r.Bytes(p.vram[1][:])
	p.vramBank = r.U8() & 0x01
	r.Bytes(p.oam[:])
	p.lcdc = r.U8()
	p.stat = r.U8()
	p.scy = r.U8()
	p.scx = r.U8()
	p.lyc = r.U8()
	p.wy = r.U8()
	p.wx = r.U8()
	p.bgp = r.U8()
	p.obp0 = r.U8()
	p.obp1 = r.U8()
	p.line = r.Int()
	r.Bytes(p.bgPalette[:])
	r.Bytes(p.objPalette[:])
	p.bcps = r.U8()
	p.ocps = r.U8()
	mode := r.U8()
	if mode > uint8(VRAMMode) {
		return errBadMode
	}
	p.mode = Mode(mode)
	p.modeClock = r.Int()
	p.windowLine = r.Int()
	for i := range p.framebuffer.buffer {
		p.framebuffer.buffer[i] = r.U32()
	}
	return r.Err()
}
