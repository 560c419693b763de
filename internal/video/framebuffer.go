package video

// Screen dimensions of the DMG/CGB LCD.
const (
	FramebufferWidth  = 160
	FramebufferHeight = 144
	FramebufferSize   = FramebufferWidth * FramebufferHeight
)

// FrameBuffer holds one rendered frame as packed 0xAARRGGBB pixels.
type FrameBuffer struct {
	buffer []uint32
}

func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{buffer: make([]uint32, FramebufferSize)}
}

// At returns the pixel at (x, y).
func (f *FrameBuffer) At(x, y int) uint32 {
	return f.buffer[y*FramebufferWidth+x]
}

// Pixels returns the raw pixel slice. Callers must not hold the slice
// across emulator steps; the PPU reuses the buffer for every frame.
func (f *FrameBuffer) Pixels() []uint32 {
	return f.buffer
}

// Fill sets every pixel to the given color.
func (f *FrameBuffer) Fill(color uint32) {
	for i := range f.buffer {
		f.buffer[i] = color
	}
}

// dmgShades maps the four DMG color indexes to ARGB grays.
var dmgShades = [4]uint32{0xFFFFFFFF, 0xFFAAAAAA, 0xFF555555, 0xFF000000}

// cgbColor converts a 15-bit BGR555 palette entry to 0xAARRGGBB.
func cgbColor(raw uint16) uint32 {
	expand := func(c uint16) uint32 {
		c &= 0x1F
		return uint32(c<<3 | c>>2)
	}
	r := expand(raw)
	g := expand(raw >> 5)
	b := expand(raw >> 10)
	return 0xFF000000 | r<<16 | g<<8 | b
}
