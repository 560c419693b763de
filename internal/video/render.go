package video

import (
	"github.com/pkg/errors"

	"github.com/mattjamison/gogb/internal/bit"
)

var errBadMode = errors.New("save state: invalid ppu mode")

// tileAttributes unpacks a CGB background map attribute byte.
type tileAttributes struct {
	palette  uint8
	bank     uint8
	flipX    bool
	flipY    bool
	priority bool
}

func unpackAttributes(raw uint8) tileAttributes {
	return tileAttributes{
		palette:  raw & 0x07,
		bank:     (raw >> 3) & 0x01,
		flipX:    bit.IsSet(5, raw),
		flipY:    bit.IsSet(6, raw),
		priority: bit.IsSet(7, raw),
	}
}

func (p *PPU) lcdcFlag(flag uint8) bool {
	return bit.IsSet(flag, p.lcdc)
}

// tileRow reads the two bitplane bytes of one tile row from VRAM.
func (p *PPU) tileRow(bank uint8, tileAddr uint16) (low, high uint8) {
	offset := tileAddr & 0x1FFF
	return p.vram[bank][offset], p.vram[bank][offset+1]
}

// tileDataAddr resolves a map tile number to the address of the
// requested row of tile data, honoring the LCDC.4 addressing mode.
func (p *PPU) tileDataAddr(tileNumber uint8, rowOffset uint16) uint16 {
	if p.lcdcFlag(bgWindowTileDataSelect) {
		return 0x8000 + uint16(tileNumber)*16 + rowOffset
	}
	return uint16(0x9000 + int(int8(tileNumber))*16 + int(rowOffset))
}

func (p *PPU) bgColor(paletteIdx, colorIdx uint8) uint32 {
	if p.cgb {
		base := paletteIdx*8 + colorIdx*2
		raw := uint16(p.bgPalette[base]) | uint16(p.bgPalette[base+1])<<8
		return cgbColor(raw)
	}
	return dmgShades[(p.bgp>>(colorIdx*2))&0x03]
}

func (p *PPU) objColor(paletteIdx, colorIdx uint8, obp1 bool) uint32 {
	if p.cgb {
		base := paletteIdx*8 + colorIdx*2
		raw := uint16(p.objPalette[base]) | uint16(p.objPalette[base+1])<<8
		return cgbColor(raw)
	}
	palette := p.obp0
	if obp1 {
		palette = p.obp1
	}
	return dmgShades[(palette>>(colorIdx*2))&0x03]
}

// drawScanline renders line into the framebuffer: background, then
// window, then sprites.
func (p *PPU) drawScanline() {
	if p.line >= FramebufferHeight {
		return
	}
	p.drawBackground()
	p.drawWindow()
	p.drawSprites()
}

func (p *PPU) drawBackground() {
	lineWidth := p.line * FramebufferWidth

	// On DMG, LCDC.0 off blanks the background to color 0. On CGB it
	// only drops BG priority; the background still draws.
	if !p.cgb && !p.lcdcFlag(bgDisplay) {
		color := dmgShades[p.bgp&0x03]
		for x := 0; x < FramebufferWidth; x++ {
			p.framebuffer.buffer[lineWidth+x] = color
			p.bgPixelBuffer[lineWidth+x] = 0
			p.bgPriority[lineWidth+x] = false
		}
		return
	}

	mapBase := uint16(0x9800)
	if p.lcdcFlag(bgTileMapDisplaySelect) {
		mapBase = 0x9C00
	}

	y := (p.line + int(p.scy)) & 0xFF
	mapRow := uint16(y/8) * 32
	rowInTile := uint16(y % 8)

	for x := 0; x < FramebufferWidth; x++ {
		mapX := (x + int(p.scx)) & 0xFF
		mapAddr := mapBase + mapRow + uint16(mapX/8)

		tileNumber := p.vram[0][mapAddr&0x1FFF]
		attrs := tileAttributes{}
		if p.cgb {
			attrs = unpackAttributes(p.vram[1][mapAddr&0x1FFF])
		}

		row := rowInTile
		if attrs.flipY {
			row = 7 - row
		}
		low, high := p.tileRow(attrs.bank, p.tileDataAddr(tileNumber, row*2))

		pixelIdx := uint8(7 - mapX%8)
		if attrs.flipX {
			pixelIdx = uint8(mapX % 8)
		}
		colorIdx := bit.GetBitValue(pixelIdx, low) | bit.GetBitValue(pixelIdx, high)<<1

		pos := lineWidth + x
		p.framebuffer.buffer[pos] = p.bgColor(attrs.palette, colorIdx)
		p.bgPixelBuffer[pos] = colorIdx
		p.bgPriority[pos] = attrs.priority
	}
}

func (p *PPU) drawWindow() {
	if !p.lcdcFlag(windowDisplayEnable) {
		return
	}
	if int(p.wy) > p.line || p.windowLine > 143 {
		return
	}
	wx := int(p.wx) - 7
	if wx >= FramebufferWidth {
		return
	}

	mapBase := uint16(0x9800)
	if p.lcdcFlag(windowTileMapSelect) {
		mapBase = 0x9C00
	}

	mapRow := uint16(p.windowLine/8) * 32
	rowInTile := uint16(p.windowLine % 8)
	lineWidth := p.line * FramebufferWidth

	for x := 0; x < FramebufferWidth; x++ {
		if x < wx {
			continue
		}
		winX := x - wx
		mapAddr := mapBase + mapRow + uint16(winX/8)

		tileNumber := p.vram[0][mapAddr&0x1FFF]
		attrs := tileAttributes{}
		if p.cgb {
			attrs = unpackAttributes(p.vram[1][mapAddr&0x1FFF])
		}

		row := rowInTile
		if attrs.flipY {
			row = 7 - row
		}
		low, high := p.tileRow(attrs.bank, p.tileDataAddr(tileNumber, row*2))

		pixelIdx := uint8(7 - winX%8)
		if attrs.flipX {
			pixelIdx = uint8(winX % 8)
		}
		colorIdx := bit.GetBitValue(pixelIdx, low) | bit.GetBitValue(pixelIdx, high)<<1

		pos := lineWidth + x
		p.framebuffer.buffer[pos] = p.bgColor(attrs.palette, colorIdx)
		p.bgPixelBuffer[pos] = colorIdx
		p.bgPriority[pos] = attrs.priority
	}
	p.windowLine++
}

func (p *PPU) drawSprites() {
	if !p.lcdcFlag(spriteDisplayEnable) {
		return
	}

	height := 8
	if p.lcdcFlag(spriteSize) {
		height = 16
	}

	// OAM scan: the first 10 sprites intersecting this line, in OAM
	// order. X position does not affect selection.
	var selected []int
	for sprite := 0; sprite < 40 && len(selected) < 10; sprite++ {
		spriteY := int(p.oam[sprite*4]) - 16
		if spriteY <= p.line && p.line < spriteY+height {
			selected = append(selected, sprite)
		}
	}

	lineWidth := p.line * FramebufferWidth

	// ownerX tracks, per pixel, the X of the sprite that claimed it
	// (offset by 8 so the value is always non-negative; unclaimed = -1).
	// DMG priority: lower X wins, then lower OAM index. CGB: OAM index only.
	ownerX := make([]int, FramebufferWidth)
	for i := range ownerX {
		ownerX[i] = -1
	}

	for _, sprite := range selected {
		base := sprite * 4
		spriteY := int(p.oam[base]) - 16
		spriteX := int(p.oam[base+1]) - 8
		tile := p.oam[base+2]
		flags := p.oam[base+3]

		if height == 16 {
			tile &= 0xFE
		}

		flipX := bit.IsSet(5, flags)
		flipY := bit.IsSet(6, flags)
		behindBG := bit.IsSet(7, flags)

		bank := uint8(0)
		objPalIdx := uint8(0)
		if p.cgb {
			bank = (flags >> 3) & 0x01
			objPalIdx = flags & 0x07
		}

		row := p.line - spriteY
		if flipY {
			row = height - 1 - row
		}

		tileAddr := 0x8000 + uint16(tile)*16 + uint16(row)*2
		low, high := p.tileRow(bank, tileAddr)

		for px := 0; px < 8; px++ {
			x := spriteX + px
			if x < 0 || x >= FramebufferWidth {
				continue
			}

			// resolve sprite-vs-sprite priority
			if prev := ownerX[x]; prev >= 0 {
				if p.cgb || prev <= spriteX+8 {
					continue
				}
			}

			pixelIdx := uint8(7 - px)
			if flipX {
				pixelIdx = uint8(px)
			}
			colorIdx := bit.GetBitValue(pixelIdx, low) | bit.GetBitValue(pixelIdx, high)<<1
			if colorIdx == 0 {
				continue
			}

			pos := lineWidth + x

			// background priority: the OAM behind-BG flag, or on CGB
			// the map attribute priority bit, keeps non-zero BG pixels
			// on top — unless LCDC.0 drops all BG priority (CGB).
			bgHasPriority := behindBG || (p.cgb && p.bgPriority[pos])
			if p.cgb && !p.lcdcFlag(bgDisplay) {
				bgHasPriority = false
			}
			if bgHasPriority && p.bgPixelBuffer[pos] != 0 {
				continue
			}

			ownerX[x] = spriteX + 8
			p.framebuffer.buffer[pos] = p.objColor(objPalIdx, colorIdx, bit.IsSet(4, flags))
		}
	}
}
