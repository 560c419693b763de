package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattjamison/gogb/internal/addr"
)

type irqRecorder struct {
	vblank int
	stat   int
}

func (r *irqRecorder) request(i addr.Interrupt) {
	switch i {
	case addr.VBlankInterrupt:
		r.vblank++
	case addr.LCDSTATInterrupt:
		r.stat++
	}
}

func newTestPPU() (*PPU, *irqRecorder) {
	rec := &irqRecorder{}
	return New(false, rec.request), rec
}

func TestFrameTiming(t *testing.T) {
	p, rec := newTestPPU()
	frames := 0
	p.FrameCallback = func(*FrameBuffer) { frames++ }

	// the PPU starts at VBlank entry (LY=144); one full frame later the
	// callback and the VBlank interrupt must have fired exactly once
	for i := 0; i < FrameCycles/4; i++ {
		p.Tick(4)
	}

	assert.Equal(t, 1, frames)
	assert.Equal(t, 1, rec.vblank)
	assert.Equal(t, uint8(144), p.LY())
	assert.Equal(t, VBlankMode, p.Mode())

	for i := 0; i < FrameCycles/4; i++ {
		p.Tick(4)
	}
	assert.Equal(t, 2, frames, "one frame per 70224 T-cycles")
	assert.Equal(t, 2, rec.vblank)
}

func TestModeSequenceWithinScanline(t *testing.T) {
	p, _ := newTestPPU()

	p.Tick(10 * 456) // leave VBlank
	require.Equal(t, OAMMode, p.Mode())
	require.Equal(t, uint8(0), p.LY())

	p.Tick(80)
	assert.Equal(t, VRAMMode, p.Mode())
	p.Tick(172)
	assert.Equal(t, HBlankMode, p.Mode())
	p.Tick(204)
	assert.Equal(t, OAMMode, p.Mode())
	assert.Equal(t, uint8(1), p.LY())
}

func TestLYCCoincidence(t *testing.T) {
	p, rec := newTestPPU()
	p.WriteRegister(addr.LYC, 2)
	p.WriteRegister(addr.STAT, 1<<statLycIrq)

	p.Tick(10 * 456) // LY wraps to 0
	require.Zero(t, p.ReadRegister(addr.STAT)&(1<<statLycCondition))

	statBefore := rec.stat
	p.Tick(2 * 456) // LY reaches 2

	assert.NotZero(t, p.ReadRegister(addr.STAT)&(1<<statLycCondition))
	assert.Greater(t, rec.stat, statBefore, "coincidence fires the STAT interrupt")
}

func TestVRAMAccessByMode(t *testing.T) {
	p, _ := newTestPPU()

	// VBlank: accessible
	p.WriteVRAM(0x8000, 0x42)
	require.Equal(t, uint8(0x42), p.ReadVRAM(0x8000))

	p.Tick(10*456 + 80 + 10) // into mode 3
	require.Equal(t, VRAMMode, p.Mode())

	assert.Equal(t, uint8(0xFF), p.ReadVRAM(0x8000))
	p.WriteVRAM(0x8000, 0x99)

	p.Tick(172) // into HBlank
	assert.Equal(t, uint8(0x42), p.ReadVRAM(0x8000), "mode-3 write dropped")
}

func TestOAMAccessByMode(t *testing.T) {
	p, _ := newTestPPU()

	p.WriteOAM(0xFE00, 0x42)
	require.Equal(t, uint8(0x42), p.ReadOAM(0xFE00))

	p.Tick(10*456 + 10) // into mode 2
	require.Equal(t, OAMMode, p.Mode())

	assert.Equal(t, uint8(0xFF), p.ReadOAM(0xFE00))
	p.WriteOAM(0xFE00, 0x99)

	// the DMA path bypasses the blocking
	p.SetOAMByte(0x01, 0x77)
	assert.Equal(t, uint8(0x77), p.OAMByte(0x01))

	p.Tick(80 + 172 + 204) // past mode 3 into the next line's... mode 2
	p.Tick(80 + 172)       // land in HBlank
	assert.Equal(t, uint8(0x42), p.OAMByte(0x00), "mode-2 write dropped")
}

func TestLCDDisable(t *testing.T) {
	p, _ := newTestPPU()

	p.Tick(10*456 + 40)
	require.Equal(t, OAMMode, p.Mode())

	lcdc := p.ReadRegister(addr.LCDC)
	p.WriteRegister(addr.LCDC, lcdc&^0x80)

	assert.Equal(t, uint8(0), p.LY())
	assert.Equal(t, HBlankMode, p.Mode())

	p.Tick(100000)
	assert.Equal(t, uint8(0), p.LY(), "the PPU is frozen while the LCD is off")

	p.WriteRegister(addr.LCDC, lcdc|0x80)
	assert.Equal(t, OAMMode, p.Mode(), "re-enable resumes from OAM scan")
}

func TestBackgroundRendering(t *testing.T) {
	p, _ := newTestPPU()

	// tile 1: all pixels color 3 (both bitplanes solid)
	for row := 0; row < 8; row++ {
		p.vram[0][16+row*2] = 0xFF
		p.vram[0][16+row*2+1] = 0xFF
	}
	// point the whole tile map at tile 1
	for i := 0x1800; i < 0x1C00; i++ {
		p.vram[0][i] = 1
	}
	p.WriteRegister(addr.LCDC, 0x91) // LCD on, BG on, 0x8000 addressing
	p.WriteRegister(addr.BGP, 0xE4)  // identity palette

	p.Tick(10 * 456) // wrap to line 0
	p.Tick(80)       // render line 0 on mode-3 entry

	for x := 0; x < FramebufferWidth; x++ {
		require.Equal(t, dmgShades[3], p.framebuffer.At(x, 0), "pixel %d", x)
	}
}

func TestSpriteRendering(t *testing.T) {
	p, _ := newTestPPU()

	// tile 2: solid color 3
	for row := 0; row < 8; row++ {
		p.vram[0][32+row*2] = 0xFF
		p.vram[0][32+row*2+1] = 0xFF
	}
	// sprite 0 at screen (0,0)
	p.oam[0] = 16 // Y
	p.oam[1] = 8  // X
	p.oam[2] = 2  // tile
	p.oam[3] = 0  // attributes

	p.WriteRegister(addr.LCDC, 0x93) // LCD, BG and sprites on
	p.WriteRegister(addr.OBP0, 0xE4)

	p.Tick(10 * 456)
	p.Tick(80)

	assert.Equal(t, dmgShades[3], p.framebuffer.At(0, 0))
	assert.Equal(t, dmgShades[3], p.framebuffer.At(7, 0))
	assert.Equal(t, dmgShades[0], p.framebuffer.At(8, 0), "background beyond the sprite")
}

func TestCGBPaletteRegisters(t *testing.T) {
	p := New(true, func(addr.Interrupt) {})

	p.WriteRegister(addr.BCPS, 0x80) // index 0, auto-increment
	p.WriteRegister(addr.BCPD, 0x1F) // red, low byte
	p.WriteRegister(addr.BCPD, 0x00)

	p.WriteRegister(addr.BCPS, 0x00)
	assert.Equal(t, uint8(0x1F), p.ReadRegister(addr.BCPD))
	p.WriteRegister(addr.BCPS, 0x01)
	assert.Equal(t, uint8(0x00), p.ReadRegister(addr.BCPD))

	assert.Equal(t, uint32(0xFFFF0000), cgbColor(0x001F), "BGR555 red expands to ARGB red")
}

func TestVRAMBankSelect(t *testing.T) {
	p := New(true, func(addr.Interrupt) {})

	p.WriteVRAM(0x8000, 0x11)
	p.WriteRegister(addr.VBK, 0x01)
	assert.Equal(t, uint8(0xFE)|0x01, p.ReadRegister(addr.VBK))
	p.WriteVRAM(0x8000, 0x22)
	assert.Equal(t, uint8(0x22), p.ReadVRAM(0x8000))

	p.WriteRegister(addr.VBK, 0x00)
	assert.Equal(t, uint8(0x11), p.ReadVRAM(0x8000))
}
