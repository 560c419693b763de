package cartridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildROM creates a ROM image with a minimal valid header. Every byte
// outside the header is its bank number, so bank switching is visible
// in reads.
func buildROM(typeCode uint8, romSizeCode, ramSizeCode uint8) []byte {
	size := 0x8000 << romSizeCode
	rom := make([]byte, size)
	for i := range rom {
		rom[i] = uint8(i / 0x4000)
	}
	copy(rom[headerTitleStart:], "TEST")
	rom[headerTypeCode] = typeCode
	rom[headerROMSize] = romSizeCode
	rom[headerRAMSize] = ramSizeCode
	return rom
}

func TestParseHeader(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		rom := buildROM(TypeMBC1, 2, 3)
		h, err := ParseHeader(rom)
		require.NoError(t, err)
		assert.Equal(t, "TEST", h.Title)
		assert.Equal(t, uint8(TypeMBC1), h.TypeCode)
		assert.Equal(t, 8, h.MaxROMBanks)
		assert.Equal(t, 4, h.MaxRAMBanks)
		assert.False(t, h.HasBattery)
	})

	t.Run("battery and rtc flags", func(t *testing.T) {
		h, err := ParseHeader(buildROM(TypeMBC3TimerRAMBattery, 2, 3))
		require.NoError(t, err)
		assert.True(t, h.HasBattery)
		assert.True(t, h.HasRTC)
	})

	t.Run("too small", func(t *testing.T) {
		_, err := ParseHeader(make([]byte, 0x100))
		assert.Error(t, err)
	})

	t.Run("bad ram size code", func(t *testing.T) {
		rom := buildROM(TypeMBC1, 1, 0)
		rom[headerRAMSize] = 0x09
		_, err := ParseHeader(rom)
		assert.Error(t, err)
	})
}

func TestNewRejectsUnsupportedTypes(t *testing.T) {
	for _, code := range []uint8{0x05, 0x06, 0x0B, 0x20, 0x22, 0xFC, 0xFE} {
		_, err := New(buildROM(code, 1, 0), nil, nil)
		assert.Errorf(t, err, "type %#02x must be rejected", code)
	}
}

func TestROMOnly(t *testing.T) {
	m, err := New(buildROM(TypeROMOnly, 0, 0), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, uint8(0), m.ReadROM(0x0005))
	assert.Equal(t, uint8(1), m.ReadROM(0x4005))
	m.WriteROM(0x2000, 0x02) // ignored
	assert.Equal(t, uint8(1), m.ReadROM(0x4005))
	assert.Equal(t, uint8(0xFF), m.ReadRAM(0xA000))
}

func TestMBC1BankSelection(t *testing.T) {
	t.Run("128 KiB cart selects bank 3", func(t *testing.T) {
		m, err := New(buildROM(TypeMBC1, 2, 0), nil, nil)
		require.NoError(t, err)

		m.WriteROM(0x2000, 0x03)
		assert.Equal(t, uint8(3), m.ReadROM(0x4005))
	})

	t.Run("bank 0 coerces to 1", func(t *testing.T) {
		// 1 MiB cart: writing 0 to the low 5 bits still lands in bank 1
		m, err := New(buildROM(TypeMBC1, 5, 0), nil, nil)
		require.NoError(t, err)

		m.WriteROM(0x2000, 0x00)
		assert.Equal(t, uint8(1), m.ReadROM(0x4000))
	})

	t.Run("upper bits via 4000-5FFF in ROM mode", func(t *testing.T) {
		m, err := New(buildROM(TypeMBC1, 5, 0), nil, nil) // 64 banks
		require.NoError(t, err)

		m.WriteROM(0x2000, 0x01)
		m.WriteROM(0x4000, 0x01) // bits 5-6
		assert.Equal(t, uint8(0x21), m.ReadROM(0x4000))
	})

	t.Run("bank mask wraps small carts", func(t *testing.T) {
		m, err := New(buildROM(TypeMBC1, 1, 0), nil, nil) // 4 banks
		require.NoError(t, err)

		m.WriteROM(0x2000, 0x07) // masked to 3
		assert.Equal(t, uint8(3), m.ReadROM(0x4000))
	})
}

func TestMBC1RAM(t *testing.T) {
	m, err := New(buildROM(TypeMBC1RAM, 2, 3), nil, nil)
	require.NoError(t, err)

	// disabled RAM reads open bus, writes are dropped
	m.WriteRAM(0xA000, 0x55)
	assert.Equal(t, uint8(0xFF), m.ReadRAM(0xA000))

	m.WriteROM(0x0000, 0x0A)
	m.WriteRAM(0xA000, 0x55)
	assert.Equal(t, uint8(0x55), m.ReadRAM(0xA000))

	// RAM banking mode switches the visible bank
	m.WriteROM(0x6000, 0x01)
	m.WriteROM(0x4000, 0x02)
	assert.Equal(t, uint8(0), m.ReadRAM(0xA000)&0x55, "bank 2 starts empty")
	m.WriteRAM(0xA000, 0x77)
	m.WriteROM(0x4000, 0x00)
	assert.Equal(t, uint8(0x55), m.ReadRAM(0xA000), "bank 0 contents survive")

	m.WriteROM(0x0000, 0x00)
	assert.Equal(t, uint8(0xFF), m.ReadRAM(0xA000))
}

type recordingEffects struct {
	title string
	calls int
}

func (e *recordingEffects) SaveRAM(title string, ram []byte) {
	e.title = title
	e.calls++
}

func TestBatteryEffectsFireOnRAMWrite(t *testing.T) {
	effects := &recordingEffects{}
	m, err := New(buildROM(TypeMBC1RAMBattery, 2, 3), nil, effects)
	require.NoError(t, err)

	m.WriteROM(0x0000, 0x0A)
	m.WriteRAM(0xA000, 0x01)
	m.WriteRAM(0xA001, 0x02)

	assert.Equal(t, 2, effects.calls)
	assert.Equal(t, "TEST", effects.title)
}

func TestMBC3(t *testing.T) {
	t.Run("7-bit rom bank, 0 coerces to 1", func(t *testing.T) {
		m, err := New(buildROM(TypeMBC3, 6, 3), nil, nil) // 128 banks
		require.NoError(t, err)

		m.WriteROM(0x2000, 0x00)
		assert.Equal(t, uint8(1), m.ReadROM(0x4000))
		m.WriteROM(0x2000, 0x7F)
		assert.Equal(t, uint8(0x7F), m.ReadROM(0x4000))
	})

	t.Run("rtc register select and latch", func(t *testing.T) {
		m, err := New(buildROM(TypeMBC3TimerRAMBattery, 2, 3), nil, nil)
		require.NoError(t, err)
		mbc := m.(*mbc3)

		m.WriteROM(0x0000, 0x0A)
		mbc.clock.seconds = 12
		mbc.clock.minutes = 34

		// nothing visible until the 0->1 latch
		m.WriteROM(0x4000, 0x08)
		assert.Equal(t, uint8(0), m.ReadRAM(0xA000))

		m.WriteROM(0x6000, 0x00)
		m.WriteROM(0x6000, 0x01)
		assert.Equal(t, uint8(12), m.ReadRAM(0xA000))
		m.WriteROM(0x4000, 0x09)
		assert.Equal(t, uint8(34), m.ReadRAM(0xA000))
	})

	t.Run("ram banks under 0x04", func(t *testing.T) {
		m, err := New(buildROM(TypeMBC3RAM, 2, 3), nil, nil)
		require.NoError(t, err)

		m.WriteROM(0x0000, 0x0A)
		m.WriteROM(0x4000, 0x02)
		m.WriteRAM(0xA000, 0xBE)
		m.WriteROM(0x4000, 0x00)
		assert.NotEqual(t, uint8(0xBE), m.ReadRAM(0xA000))
		m.WriteROM(0x4000, 0x02)
		assert.Equal(t, uint8(0xBE), m.ReadRAM(0xA000))
	})
}

func TestMBC5(t *testing.T) {
	t.Run("bank 0 is legal", func(t *testing.T) {
		m, err := New(buildROM(TypeMBC5, 2, 3), nil, nil)
		require.NoError(t, err)

		m.WriteROM(0x2000, 0x00)
		assert.Equal(t, uint8(0), m.ReadROM(0x4000), "reads the byte at physical offset 0")
	})

	t.Run("9-bit bank via 3000-3FFF", func(t *testing.T) {
		m, err := New(buildROM(TypeMBC5, 8, 3), nil, nil) // 512 banks, 8 MiB
		require.NoError(t, err)

		m.WriteROM(0x2000, 0x04)
		m.WriteROM(0x3000, 0x01)
		assert.Equal(t, uint8(uint16(0x104)&0xFF), m.ReadROM(0x4000))
	})

	t.Run("rumble variant keeps 3 ram bank bits", func(t *testing.T) {
		m, err := New(buildROM(TypeMBC5RumbleRAMBattery, 2, 4), nil, nil)
		require.NoError(t, err)
		mbc := m.(*mbc5)

		m.WriteROM(0x0000, 0x0A)
		m.WriteROM(0x4000, 0x0B) // bit 3 = rumble, banks = 0x03
		assert.True(t, mbc.rumble)
		assert.Equal(t, uint8(0x03), m.GetRAMBank())
	})
}

func TestHuC1(t *testing.T) {
	m, err := New(buildROM(TypeHuC1, 2, 3), nil, nil)
	require.NoError(t, err)

	// RAM mode by default
	m.WriteRAM(0xA000, 0x5A)
	assert.Equal(t, uint8(0x5A), m.ReadRAM(0xA000))

	// IR mode: reads return the idle IR value
	m.WriteROM(0x0000, 0x0E)
	assert.Equal(t, uint8(0xC0), m.ReadRAM(0xA000))

	// back to RAM mode, contents intact
	m.WriteROM(0x0000, 0x0A)
	assert.Equal(t, uint8(0x5A), m.ReadRAM(0xA000))

	m.WriteROM(0x2000, 0x00)
	assert.Equal(t, uint8(1), m.ReadROM(0x4000), "bank 0 coerces to 1")
}

func TestMapperSerializeRoundTrip(t *testing.T) {
	m, err := New(buildROM(TypeMBC1RAM, 2, 3), nil, nil)
	require.NoError(t, err)

	m.WriteROM(0x0000, 0x0A)
	m.WriteROM(0x2000, 0x03)
	m.WriteRAM(0xA010, 0x42)

	data := m.Serialize()

	restored, err := New(buildROM(TypeMBC1RAM, 2, 3), nil, nil)
	require.NoError(t, err)
	require.NoError(t, restored.Deserialize(data))

	assert.Equal(t, uint8(3), restored.ReadROM(0x4000))
	assert.Equal(t, uint8(0x42), restored.ReadRAM(0xA010))

	assert.Error(t, restored.Deserialize([]byte{0x01}), "truncated state must fail")
}
