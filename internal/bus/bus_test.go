package bus

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattjamison/gogb/internal/addr"
	"github.com/mattjamison/gogb/internal/cartridge"
	"github.com/mattjamison/gogb/internal/joypad"
	"github.com/mattjamison/gogb/internal/video"
)

func buildROM(typeCode, romSizeCode, ramSizeCode uint8) []byte {
	rom := make([]byte, 0x8000<<romSizeCode)
	for i := range rom {
		rom[i] = uint8(i / 0x4000)
	}
	copy(rom[0x0134:], "TEST")
	rom[0x0147] = typeCode
	rom[0x0148] = romSizeCode
	rom[0x0149] = ramSizeCode
	return rom
}

func newTestBus(t *testing.T, cgb bool, rom []byte) *Bus {
	t.Helper()
	if rom == nil {
		rom = buildROM(0x00, 0, 0)
	}
	mapper, err := cartridge.New(rom, nil, nil)
	require.NoError(t, err)
	return New(mapper, Config{CGB: cgb}, zerolog.Nop())
}

func TestReadWriteRoundTrip(t *testing.T) {
	b := newTestBus(t, false, nil)

	regions := []struct {
		name string
		addr uint16
	}{
		{"wram bank 0", 0xC123},
		{"wram bank 1", 0xD456},
		{"hram", 0xFF85},
		{"vram", 0x8010},
		{"oam", 0xFE20},
	}
	for _, r := range regions {
		t.Run(r.name, func(t *testing.T) {
			b.Write(r.addr, 0x5A)
			assert.Equal(t, uint8(0x5A), b.Read(r.addr))
		})
	}
}

func TestEchoRAM(t *testing.T) {
	b := newTestBus(t, false, nil)

	b.Write(0xC100, 0x42)
	assert.Equal(t, uint8(0x42), b.Read(0xE100))

	b.Write(0xFD00, 0x24)
	assert.Equal(t, uint8(0x24), b.Read(0xDD00))
}

func TestProhibitedRegion(t *testing.T) {
	b := newTestBus(t, false, nil)

	b.Write(0xFEA5, 0x12)
	assert.Equal(t, uint8(0xFF), b.Read(0xFEA5))
}

func TestROMWritesDriveMapper(t *testing.T) {
	b := newTestBus(t, false, buildROM(0x01, 2, 0)) // MBC1, 128 KiB

	b.Write(0x2000, 0x03)
	assert.Equal(t, uint8(3), b.Read(0x4005), "banked read hits bank 3")
	assert.Equal(t, uint8(0), b.Read(0x0005), "bank 0 window unchanged")
}

func TestWRAMBankingCGB(t *testing.T) {
	b := newTestBus(t, true, nil)

	b.Write(0xD000, 0x11)
	b.Write(addr.SVBK, 0x02)
	assert.Equal(t, uint8(0xFA), b.Read(addr.SVBK))
	b.Write(0xD000, 0x22)
	assert.Equal(t, uint8(0x22), b.Read(0xD000))

	b.Write(addr.SVBK, 0x01)
	assert.Equal(t, uint8(0x11), b.Read(0xD000))

	// bank 0 selects bank 1
	b.Write(addr.SVBK, 0x00)
	assert.Equal(t, uint8(0x11), b.Read(0xD000))
}

func TestSVBKIgnoredOnDMG(t *testing.T) {
	b := newTestBus(t, false, nil)

	b.Write(0xD000, 0x11)
	b.Write(addr.SVBK, 0x03)
	assert.Equal(t, uint8(0xFF), b.Read(addr.SVBK))
	assert.Equal(t, uint8(0x11), b.Read(0xD000))
}

func TestOAMDMATransfer(t *testing.T) {
	b := newTestBus(t, false, nil)

	for i := 0; i < 160; i++ {
		b.Write(0xC100+uint16(i), uint8(i)+1)
	}

	b.Write(addr.DMA, 0xC1)
	assert.Equal(t, uint8(0xC1), b.Read(addr.DMA), "DMA register reads back before the startup delay elapses")

	// 2 startup M-cycles plus one per byte
	for i := 0; i < 162; i++ {
		b.Tick(4)
	}

	for i := 0; i < 160; i++ {
		require.Equal(t, uint8(i)+1, b.PPU().OAMByte(uint8(i)), "OAM byte %d", i)
	}
}

func TestOAMDMAOpenBus(t *testing.T) {
	b := newTestBus(t, false, nil)
	b.Write(0xC000, 0x42)
	b.Write(0xFF85, 0x24)

	b.Write(addr.DMA, 0xC1)
	b.Tick(8) // past the startup delay, transfer active

	assert.Equal(t, uint8(0xFF), b.Read(0xC000), "non-HRAM reads float during DMA")
	assert.Equal(t, uint8(0x24), b.Read(0xFF85), "HRAM stays reachable")

	b.Write(0xC000, 0x99)
	b.Tick(4 * 160)
	assert.Equal(t, uint8(0x42), b.Read(0xC000), "CPU writes during DMA are dropped")
}

func TestDMARestartKeepsOffset(t *testing.T) {
	b := newTestBus(t, false, nil)

	b.Write(addr.DMA, 0xC1)
	b.Tick(40)
	offsetBefore := b.dma.offset
	require.Greater(t, offsetBefore, uint8(0))

	b.Write(addr.DMA, 0xC2)
	assert.Equal(t, offsetBefore, b.dma.offset, "restart retargets without resetting progress")
	assert.Equal(t, uint16(0xC200), b.dma.source)
}

func TestGameSharkReadIntercept(t *testing.T) {
	b := newTestBus(t, true, nil)

	b.Write(addr.SVBK, 0x01)
	b.Write(0xD356, 0x12)
	require.NoError(t, b.Cheats().RegisterGameShark("gs", "01FF56D3"))

	assert.Equal(t, uint8(0xFF), b.Read(0xD356))

	// a different WRAM bank misses the cheat
	b.Write(addr.SVBK, 0x02)
	b.Write(0xD356, 0x12)
	assert.Equal(t, uint8(0x12), b.Read(0xD356))
}

func TestGameGenieReadIntercept(t *testing.T) {
	rom := buildROM(0x01, 1, 0)
	rom[0x5D56] = 0x8E
	b := newTestBus(t, false, rom)

	require.NoError(t, b.Cheats().RegisterGameGenie("gg", "CED-56A-D50"))
	assert.Equal(t, uint8(0xCE), b.Read(0x5D56))
}

func TestSpeedSwitch(t *testing.T) {
	b := newTestBus(t, true, nil)
	require.False(t, b.DoubleSpeed())

	// STOP without the prepare bit does not switch
	assert.False(t, b.EnterStop())
	b.ExitStop()

	b.Write(addr.KEY1, 0x01)
	assert.Equal(t, uint8(0x7F), b.Read(addr.KEY1))

	assert.True(t, b.EnterStop())
	assert.True(t, b.DoubleSpeed())
	assert.Equal(t, uint8(0xFE), b.Read(addr.KEY1))
}

func TestKEY1UnmappedOnDMG(t *testing.T) {
	b := newTestBus(t, false, nil)
	assert.Equal(t, uint8(0xFF), b.Read(addr.KEY1))
}

func TestHDMAGeneralPurposeTransfer(t *testing.T) {
	b := newTestBus(t, true, nil)

	for i := 0; i < 32; i++ {
		b.Write(0xC000+uint16(i), uint8(0xA0+i))
	}

	b.Write(addr.HDMA1, 0xC0)
	b.Write(addr.HDMA2, 0x00)
	b.Write(addr.HDMA3, 0x00)
	b.Write(addr.HDMA4, 0x00)
	b.Write(addr.HDMA5, 0x01) // two blocks, general purpose

	for i := 0; i < 32; i++ {
		require.Equal(t, uint8(0xA0+i), b.Read(0x8000+uint16(i)))
	}
	assert.Equal(t, uint8(0xFF), b.Read(addr.HDMA5), "transfer complete")
}

func TestVRAMBlockedDuringMode3(t *testing.T) {
	b := newTestBus(t, false, nil)
	b.Write(0x8000, 0x42)

	// advance the PPU out of VBlank into mode 3 of the first scanline
	b.Tick(10 * 456)
	b.Tick(100)
	require.Equal(t, video.VRAMMode, b.PPU().Mode())

	assert.Equal(t, uint8(0xFF), b.Read(0x8000))
	b.Write(0x8000, 0x99)

	b.Tick(200) // into HBlank
	require.Equal(t, video.HBlankMode, b.PPU().Mode())
	assert.Equal(t, uint8(0x42), b.Read(0x8000), "mode-3 write was dropped")
}

func TestTimerInterruptWiring(t *testing.T) {
	b := newTestBus(t, false, nil)

	b.Write(addr.TAC, 0x05) // enable, 262144 Hz (bit 3 of the divider)
	b.Write(addr.TIMA, 0xFF)
	b.Tick(16) // falling edge increments and overflows TIMA
	b.Tick(4)  // reload delay elapses
	b.Tick(4)  // delayed interrupt flag lands

	assert.NotZero(t, b.ReadIF()&uint8(addr.TimerInterrupt))
}

func TestJoypadInterruptWiring(t *testing.T) {
	b := newTestBus(t, false, nil)

	b.Write(addr.P1, 0x20) // bit 4 low: d-pad column selected
	b.Joypad().Press(joypad.Up)

	assert.NotZero(t, b.ReadIF()&uint8(addr.JoypadInterrupt))
}
