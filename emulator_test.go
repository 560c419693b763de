package gogb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattjamison/gogb/internal/cpu"
)

func buildROM(typeCode, romSizeCode, ramSizeCode uint8, program ...uint8) []byte {
	rom := make([]byte, 0x8000<<romSizeCode)
	copy(rom[0x0134:], "TEST")
	rom[0x0147] = typeCode
	rom[0x0148] = romSizeCode
	rom[0x0149] = ramSizeCode
	copy(rom, program)
	return rom
}

func newTestEmulator(t *testing.T, rom []byte, opts ...Option) *Emulator {
	t.Helper()
	opts = append(opts, WithTestMode())
	emu, err := New(rom, nil, opts...)
	require.NoError(t, err)
	return emu
}

func TestLoadAImmediateScenario(t *testing.T) {
	emu := newTestEmulator(t, buildROM(0x00, 0, 0, 0x3E, 0x42))
	emu.CPU().SetState(cpu.State{PC: 0x0000, SP: 0xFFFE})

	cycles := emu.Step()

	s := emu.CPU().State()
	assert.Equal(t, uint8(0x42), s.A)
	assert.Equal(t, uint16(0x0002), s.PC)
	assert.Equal(t, 8, cycles)
	assert.Equal(t, 8, emu.InstructionTCycles())
	assert.Equal(t, uint64(8), emu.TCycles())

	trace := emu.CPU().Trace
	require.Len(t, trace, 2)
	assert.Equal(t, cpu.TraceEntry{Kind: cpu.Read, Address: 0x0000, Value: 0x3E}, trace[0])
	assert.Equal(t, cpu.TraceEntry{Kind: cpu.Read, Address: 0x0001, Value: 0x42}, trace[1])
}

func TestCallScenario(t *testing.T) {
	rom := buildROM(0x00, 0, 0)
	rom[0x0150] = 0xCD // CALL 0x1234
	rom[0x0151] = 0x34
	rom[0x0152] = 0x12
	emu := newTestEmulator(t, rom)
	emu.CPU().SetState(cpu.State{PC: 0x0150, SP: 0xFFFE})

	cycles := emu.Step()

	s := emu.CPU().State()
	assert.Equal(t, uint16(0x1234), s.PC)
	assert.Equal(t, uint16(0xFFFC), s.SP)
	assert.Equal(t, uint8(0x53), emu.Read(0xFFFC))
	assert.Equal(t, uint8(0x01), emu.Read(0xFFFD))
	assert.Equal(t, 24, cycles)
}

func TestMBC1BankedReadScenario(t *testing.T) {
	rom := buildROM(0x01, 2, 0) // MBC1, 128 KiB
	rom[0xC005] = 0x99
	emu := newTestEmulator(t, rom)

	emu.Write(0x2000, 0x03)

	assert.Equal(t, uint8(0x99), emu.Read(0x4005))
}

func TestGameSharkScenario(t *testing.T) {
	emu := newTestEmulator(t, buildROM(0x00, 0, 0), WithCGB())
	require.True(t, emu.CGB())

	emu.Write(0xFF70, 0x01)
	emu.Write(0xD356, 0x12)
	require.NoError(t, emu.RegisterGameShark("gs", "01FF56D3"))

	assert.Equal(t, uint8(0xFF), emu.Read(0xD356))

	emu.UnregisterCheat("gs")
	assert.Equal(t, uint8(0x12), emu.Read(0xD356))
}

func TestInvalidCheatLeavesCoreUntouched(t *testing.T) {
	emu := newTestEmulator(t, buildROM(0x00, 0, 0))

	assert.Error(t, emu.RegisterGameShark("bad", "xyz"))
	assert.Error(t, emu.RegisterGameGenie("bad", "123"))
}

func TestUnsupportedCartridgeType(t *testing.T) {
	_, err := New(buildROM(0x0B, 0, 0), nil) // MMM01
	assert.Error(t, err)
}

func TestVBlankFiresOncePerFrame(t *testing.T) {
	// a tight loop: JR -2
	emu := newTestEmulator(t, buildROM(0x00, 0, 0, 0x18, 0xFE))
	emu.CPU().SetState(cpu.State{PC: 0x0000, SP: 0xFFFE})

	frames := 0
	emu.SetFrameCallback(func(*FrameBuffer) { frames++ })

	start := emu.TCycles()
	emu.RunFrame()

	assert.Equal(t, 1, frames)
	assert.InDelta(t, 70224, float64(emu.TCycles()-start), 12, "one frame within one instruction of 70224 T")
}

func TestRunFrameDeliversSamples(t *testing.T) {
	rom := buildROM(0x00, 0, 0,
		0x3E, 0x80, // LD A,0x80
		0xE0, 0x26, // LDH (NR52),A — power on the APU
		0x18, 0xFE, // JR -2
	)
	emu := newTestEmulator(t, rom)
	emu.CPU().SetState(cpu.State{PC: 0x0000, SP: 0xFFFE})

	var samples int
	emu.SetSampleCallback(func(batch []float32) { samples += len(batch) })

	for i := 0; i < 3; i++ {
		emu.RunFrame()
	}

	assert.Greater(t, samples, 0, "three frames outlast one sample batch")
}

func TestHostKeyEventsReachJOYP(t *testing.T) {
	emu := newTestEmulator(t, buildROM(0x00, 0, 0))

	emu.Write(0xFF00, 0x20) // select the d-pad column
	emu.PressKey(KeyDown)
	assert.Equal(t, uint8(0xE7), emu.Read(0xFF00), "Down pulls line 3 low")

	emu.ReleaseKey(KeyDown)
	assert.Equal(t, uint8(0xEF), emu.Read(0xFF00))
}

func TestResetReinitializes(t *testing.T) {
	emu := newTestEmulator(t, buildROM(0x00, 0, 0, 0x3E, 0x42))
	emu.CPU().SetState(cpu.State{PC: 0x0000, SP: 0xFFFE})
	emu.Step()
	require.NotZero(t, emu.TCycles())

	require.NoError(t, emu.Reset())

	assert.Zero(t, emu.TCycles())
	assert.Equal(t, uint16(0x0100), emu.CPU().State().PC)
}

func TestCGBOnlyCartRejectsDMGForce(t *testing.T) {
	rom := buildROM(0x00, 0, 0)
	rom[0x0143] = 0xC0
	_, err := New(rom, nil, WithDMG())
	assert.Error(t, err)
}
