package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattjamison/gogb/internal/addr"
)

func newEnabledAPU() *APU {
	a := New(DefaultSampleRate)
	a.WriteRegister(addr.NR52, 0x80)
	return a
}

func TestDACOutput(t *testing.T) {
	assert.InDelta(t, 1.0, dacOutput(15, true), 1e-6)
	assert.InDelta(t, -1.0, dacOutput(0, true), 1e-6)
	assert.InDelta(t, 0.0, dacOutput(7, true), 0.07, "midpoint sits near zero")
	assert.Zero(t, dacOutput(15, false), "disabled DAC is silent")

	// any enabled amplitude v maps linearly to v/7.5 - 1
	v := uint8(6)
	assert.InDelta(t, float64(v)/7.5-1.0, float64(dacOutput(v, true)), 1e-6)
}

func TestMasterOffIgnoresRegisterWrites(t *testing.T) {
	a := newEnabledAPU()
	a.WriteRegister(addr.NR52, 0x00)

	a.WriteRegister(addr.NR11, 0xBF)
	a.WriteRegister(addr.NR50, 0x77)

	a.WriteRegister(addr.NR52, 0x80)
	assert.Equal(t, uint8(0x3F), a.ReadRegister(addr.NR11), "write while off was dropped")
	assert.Equal(t, uint8(0x00), a.ReadRegister(addr.NR50))
}

func TestMasterOffPreservesWaveRAM(t *testing.T) {
	a := newEnabledAPU()
	a.WriteRegister(addr.WaveRAMStart, 0xAB)

	a.WriteRegister(addr.NR52, 0x00)
	assert.Equal(t, uint8(0xAB), a.ReadRegister(addr.WaveRAMStart), "wave RAM readable while off")
	a.WriteRegister(addr.WaveRAMStart+1, 0xCD)
	assert.Equal(t, uint8(0xCD), a.ReadRegister(addr.WaveRAMStart+1), "wave RAM writable while off")
}

func TestPowerOffClearsRegisters(t *testing.T) {
	a := newEnabledAPU()
	a.WriteRegister(addr.NR50, 0x77)
	a.WriteRegister(addr.NR51, 0xFF)

	a.WriteRegister(addr.NR52, 0x00)
	a.WriteRegister(addr.NR52, 0x80)

	assert.Equal(t, uint8(0x00), a.ReadRegister(addr.NR50))
	assert.Equal(t, uint8(0x00), a.ReadRegister(addr.NR51))
}

func TestTriggerEnablesChannel(t *testing.T) {
	a := newEnabledAPU()

	a.WriteRegister(addr.NR12, 0xF0) // full volume, DAC on
	a.WriteRegister(addr.NR13, 0x00)
	a.WriteRegister(addr.NR14, 0x87) // trigger

	assert.NotZero(t, a.ReadRegister(addr.NR52)&0x01, "channel 1 active after trigger")
}

func TestDACDisableSilencesChannel(t *testing.T) {
	a := newEnabledAPU()

	a.WriteRegister(addr.NR12, 0xF0)
	a.WriteRegister(addr.NR14, 0x80)
	require.NotZero(t, a.ReadRegister(addr.NR52)&0x01)

	a.WriteRegister(addr.NR12, 0x00) // bits 7-3 clear: DAC off
	assert.Zero(t, a.ReadRegister(addr.NR52)&0x01, "channel dies with its DAC")
}

func TestLengthExpiryDisablesChannel(t *testing.T) {
	a := newEnabledAPU()

	a.WriteRegister(addr.NR12, 0xF0)
	a.WriteRegister(addr.NR11, 0x3F) // length counter = 64 - 63 = 1
	a.WriteRegister(addr.NR14, 0xC7) // trigger with length enabled
	require.NotZero(t, a.ReadRegister(addr.NR52)&0x01)

	// two sequencer steps guarantee one length clock
	a.Tick(cyclesPerSequencerStep * 2)

	assert.Zero(t, a.ReadRegister(addr.NR52)&0x01)
}

func TestEnvelopeRampsDown(t *testing.T) {
	a := newEnabledAPU()

	a.WriteRegister(addr.NR12, 0xF1) // volume 15, down, period 1
	a.WriteRegister(addr.NR14, 0x80)
	require.Equal(t, uint8(15), a.ch1.env.volume)

	// a full sequencer cycle hits the envelope step once
	a.Tick(cyclesPerSequencerStep * 8)

	assert.Equal(t, uint8(14), a.ch1.env.volume)
}

func TestSweepOverflowPrecheckDisables(t *testing.T) {
	a := newEnabledAPU()

	a.WriteRegister(addr.NR10, 0x01) // period 0, up, shift 1
	a.WriteRegister(addr.NR12, 0xF0)
	a.WriteRegister(addr.NR13, 0xFF) // frequency 0x7FF: any upward sweep overflows
	a.WriteRegister(addr.NR14, 0x87)

	assert.Zero(t, a.ReadRegister(addr.NR52)&0x01, "overflow pre-check kills the channel at trigger")
}

func TestNoiseLFSR(t *testing.T) {
	n := &noise{enabled: true, dacEnabled: true, lfsr: 0x7FFF}

	// first clock of an all-ones LFSR: feedback = 1^1 = 0
	n.freqTimer = 1
	n.step(1)
	assert.Equal(t, uint16(0x3FFF), n.lfsr)

	t.Run("7-bit mode pins bit 6", func(t *testing.T) {
		n := &noise{enabled: true, dacEnabled: true, width7: true, lfsr: 0x7FFF}
		n.freqTimer = 1
		n.step(1)
		assert.Zero(t, n.lfsr&(1<<6))
	})
}

func TestWaveAmplitudeShift(t *testing.T) {
	w := &wave{enabled: true, dacEnabled: true, sample: 0xC0, position: 0}

	w.volumeCode = 1
	assert.Equal(t, uint8(0x0C), w.amplitude(), "100%")
	w.volumeCode = 2
	assert.Equal(t, uint8(0x06), w.amplitude(), "50%")
	w.volumeCode = 3
	assert.Equal(t, uint8(0x03), w.amplitude(), "25%")
	w.volumeCode = 0
	assert.Zero(t, w.amplitude(), "muted")
}

func TestMixerPanning(t *testing.T) {
	a := newEnabledAPU()

	// channel 1 at full volume on a high duty phase
	a.WriteRegister(addr.NR12, 0xF0)
	a.WriteRegister(addr.NR14, 0x80)
	a.ch1.duty = 3
	a.ch1.dutyPos = 2 // a high phase of the 75% duty pattern
	require.Equal(t, uint8(15), a.ch1.amplitude())

	a.WriteRegister(addr.NR50, 0x77) // max master volume both sides

	a.WriteRegister(addr.NR51, 0x10) // channel 1 left only
	left, right := a.mix()
	assert.InDelta(t, 0.25, left, 1e-6, "DAC 1.0 / 4 channels at max volume")
	assert.Zero(t, right)

	a.WriteRegister(addr.NR51, 0x01) // channel 1 right only
	left, right = a.mix()
	assert.Zero(t, left)
	assert.InDelta(t, 0.25, right, 1e-6)
}

func TestSampleCallbackBatches(t *testing.T) {
	a := New(DefaultSampleRate)
	a.WriteRegister(addr.NR52, 0x80)

	var delivered int
	a.SampleCallback = func(samples []float32) { delivered += len(samples) }

	// a bit more than one batch worth of cycles
	cycles := int(a.cyclesPerSample*float64(DefaultBatchSize)) + 1000
	for cycles > 0 {
		a.Tick(8)
		cycles -= 8
	}

	assert.Equal(t, DefaultBatchSize*2, delivered, "one full interleaved batch")
}

func TestReadMasks(t *testing.T) {
	a := newEnabledAPU()

	a.WriteRegister(addr.NR13, 0x55)
	assert.Equal(t, uint8(0xFF), a.ReadRegister(addr.NR13), "NR13 is write-only")

	a.WriteRegister(addr.NR10, 0x00)
	assert.Equal(t, uint8(0x80), a.ReadRegister(addr.NR10), "NR10 bit 7 reads as 1")

	assert.Equal(t, uint8(0xFF), a.ReadRegister(0xFF27), "unmapped APU range reads open")
}
