package gogb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattjamison/gogb/internal/cpu"
)

func runningEmulator(t *testing.T) *Emulator {
	t.Helper()
	rom := buildROM(0x03, 2, 3, // MBC1+RAM+BATTERY
		0x3E, 0x0A, // LD A,0x0A
		0xE0, 0x00, // warm up some I/O
		0x18, 0xFE, // JR -2
	)
	emu := newTestEmulator(t, rom)
	emu.CPU().SetState(cpu.State{PC: 0x0000, SP: 0xFFFE})

	// scatter state across the subsystems
	emu.Write(0x0000, 0x0A) // enable cart RAM
	emu.Write(0xA010, 0x77)
	emu.Write(0xC234, 0x88)
	emu.Write(0xFF85, 0x99)
	emu.Write(0x8123, 0x66)
	for i := 0; i < 500; i++ {
		emu.Step()
	}
	return emu
}

func TestSaveStateRoundTrip(t *testing.T) {
	emu := runningEmulator(t)

	snapshot := emu.SaveState()
	wantCPU := emu.CPU().State()
	wantCycles := emu.TCycles()

	// diverge
	for i := 0; i < 300; i++ {
		emu.Step()
	}
	emu.Write(0xC234, 0x00)
	require.NotEqual(t, wantCycles, emu.TCycles())

	require.NoError(t, emu.LoadState(snapshot))

	assert.Equal(t, wantCPU, emu.CPU().State())
	assert.Equal(t, wantCycles, emu.TCycles())
	assert.Equal(t, uint8(0x88), emu.Read(0xC234))
	assert.Equal(t, uint8(0x99), emu.Read(0xFF85))
	assert.Equal(t, uint8(0x77), emu.Read(0xA010))
	assert.Equal(t, uint8(0x66), emu.Read(0x8123))
}

func TestSaveStateResumesIdentically(t *testing.T) {
	emu := runningEmulator(t)
	snapshot := emu.SaveState()

	for i := 0; i < 100; i++ {
		emu.Step()
	}
	after := emu.CPU().State()
	afterCycles := emu.TCycles()

	require.NoError(t, emu.LoadState(snapshot))
	for i := 0; i < 100; i++ {
		emu.Step()
	}

	assert.Equal(t, after, emu.CPU().State(), "replay from a snapshot is deterministic")
	assert.Equal(t, afterCycles, emu.TCycles())
}

func TestLoadStateTruncatedFailsCleanly(t *testing.T) {
	emu := runningEmulator(t)
	snapshot := emu.SaveState()

	before := emu.CPU().State()
	beforeCycles := emu.TCycles()
	beforeWRAM := emu.Read(0xC234)

	assert.Error(t, emu.LoadState(snapshot[:len(snapshot)/2]))

	assert.Equal(t, before, emu.CPU().State(), "prior state must survive a failed load")
	assert.Equal(t, beforeCycles, emu.TCycles())
	assert.Equal(t, beforeWRAM, emu.Read(0xC234))
}

func TestLoadStateBadVersion(t *testing.T) {
	emu := runningEmulator(t)
	snapshot := emu.SaveState()
	snapshot[0] = 0xEE

	err := emu.LoadState(snapshot)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version")
}

func TestLoadStateEmpty(t *testing.T) {
	emu := runningEmulator(t)
	assert.Error(t, emu.LoadState(nil))
}
