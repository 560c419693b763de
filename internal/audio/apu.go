// Package audio implements the APU: two pulse channels, the wave and
// noise channels, the 512 Hz frame sequencer driving their length,
// envelope and sweep units, and the stereo mixer that downsamples to
// the host rate and delivers batches through a sample callback.
package audio

import (
	"github.com/mattjamison/gogb/internal/addr"
	"github.com/mattjamison/gogb/internal/bit"
	"github.com/mattjamison/gogb/internal/savestate"
)

const (
	// CPUFrequency is the DMG master clock in T-cycles per second.
	CPUFrequency = 4194304
	// sequencer runs at 512 Hz
	cyclesPerSequencerStep = CPUFrequency / 512

	// DefaultSampleRate is the host rate used when none is configured.
	DefaultSampleRate = 44100
	// DefaultBatchSize is the number of stereo frames delivered per
	// sample-callback invocation.
	DefaultBatchSize = 1024
)

// APU mixes the four channels into stereo samples in [-1, 1].
type APU struct {
	enabled bool

	ch1 square
	ch2 square
	ch3 wave
	ch4 noise

	nr50, nr51 uint8

	seqStep  int
	seqClock int

	sampleRate      int
	cyclesPerSample float64
	sampleClock     float64
	batchSize       int
	buffer          []float32

	// SampleCallback receives interleaved stereo samples whenever a
	// full batch has accumulated. The slice is reused; consumers must
	// copy what they keep.
	SampleCallback func(samples []float32)

	// raw register bytes for readback; index is address - 0xFF10
	regs [0x17]uint8
}

// New creates an APU producing samples at the given host rate.
func New(sampleRate int) *APU {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	a := &APU{
		sampleRate:      sampleRate,
		cyclesPerSample: float64(CPUFrequency) / float64(sampleRate),
		batchSize:       DefaultBatchSize,
	}
	a.ch1.length.max = 64
	a.ch2.length.max = 64
	a.ch3.length.max = 256
	a.ch4.length.max = 64
	return a
}

// Tick advances the APU by the elapsed T-cycles.
func (a *APU) Tick(cycles int) {
	if a.enabled {
		a.ch1.step(cycles)
		a.ch2.step(cycles)
		a.ch3.step(cycles)
		a.ch4.step(cycles)

		a.seqClock += cycles
		for a.seqClock >= cyclesPerSequencerStep {
			a.seqClock -= cyclesPerSequencerStep
			a.tickSequencer()
		}
	}

	a.sampleClock += float64(cycles)
	for a.sampleClock >= a.cyclesPerSample {
		a.sampleClock -= a.cyclesPerSample
		left, right := a.mix()
		a.buffer = append(a.buffer, left, right)
		if len(a.buffer) >= a.batchSize*2 {
			a.flush()
		}
	}
}

// tickSequencer advances one step of the 512 Hz frame sequencer:
// length on steps 0/2/4/6, sweep on 2/6, envelope on 7.
func (a *APU) tickSequencer() {
	switch a.seqStep {
	case 0, 4:
		a.tickLengths()
	case 2, 6:
		a.tickLengths()
		a.ch1.tickSweep()
	case 7:
		a.ch1.env.tick()
		a.ch2.env.tick()
		a.ch4.env.tick()
	}
	a.seqStep = (a.seqStep + 1) & 0x07
}

func (a *APU) tickLengths() {
	if a.ch1.length.tick() {
		a.ch1.enabled = false
	}
	if a.ch2.length.tick() {
		a.ch2.enabled = false
	}
	if a.ch3.length.tick() {
		a.ch3.enabled = false
	}
	if a.ch4.length.tick() {
		a.ch4.enabled = false
	}
}

// dacOutput converts a channel's 4-bit amplitude to the analog range
// [-1, 1]; a disabled DAC outputs silence.
func dacOutput(amplitude uint8, dacEnabled bool) float32 {
	if !dacEnabled {
		return 0
	}
	return float32(amplitude)/7.5 - 1.0
}

// mix produces one stereo sample: each side sums the DAC outputs of
// the channels NR51 routes to it, divided by four, scaled by the
// master volume from NR50.
func (a *APU) mix() (left, right float32) {
	if !a.enabled {
		return 0, 0
	}

	outputs := [4]float32{
		dacOutput(a.ch1.amplitude(), a.ch1.dacEnabled),
		dacOutput(a.ch2.amplitude(), a.ch2.dacEnabled),
		dacOutput(a.ch3.amplitude(), a.ch3.dacEnabled),
		dacOutput(a.ch4.amplitude(), a.ch4.dacEnabled),
	}

	for i, out := range outputs {
		if bit.IsSet(uint8(i+4), a.nr51) {
			left += out / 4
		}
		if bit.IsSet(uint8(i), a.nr51) {
			right += out / 4
		}
	}

	volLeft := bit.ExtractBits(a.nr50, 6, 4)
	volRight := bit.ExtractBits(a.nr50, 2, 0)
	left *= float32(volLeft+1) / 8
	right *= float32(volRight+1) / 8
	return left, right
}

func (a *APU) flush() {
	if a.SampleCallback != nil && len(a.buffer) > 0 {
		a.SampleCallback(a.buffer)
	}
	a.buffer = a.buffer[:0]
}

// Samples drains and returns any buffered samples without waiting for
// a full batch (pull-style consumption).
func (a *APU) Samples() []float32 {
	out := make([]float32, len(a.buffer))
	copy(out, a.buffer)
	a.buffer = a.buffer[:0]
	return out
}

// readMasks holds the OR-mask applied when reading each register;
// write-only and unused bits read back as 1.
var readMasks = [0x17]uint8{
	0x80, 0x3F, 0x00, 0xFF, 0xBF, // NR10-NR14
	0xFF, 0x3F, 0x00, 0xFF, 0xBF, // FF15, NR21-NR24
	0x7F, 0xFF, 0x9F, 0xFF, 0xBF, // NR30-NR34
	0xFF, 0xFF, 0x00, 0x00, 0xBF, // FF1F, NR41-NR44
	0x00, 0x00, 0x70, // NR50-NR52
}

// ReadRegister services CPU reads in FF10-FF3F.
func (a *APU) ReadRegister(address uint16) uint8 {
	if address >= addr.WaveRAMStart && address <= addr.WaveRAMEnd {
		return a.readWaveRAM(address)
	}
	if address < addr.NR10 || address > addr.NR52 {
		return 0xFF
	}
	if address == addr.NR52 {
		status := uint8(0x70)
		if a.enabled {
			status |= 0x80
		}
		if a.ch1.enabled {
			status |= 0x01
		}
		if a.ch2.enabled {
			status |= 0x02
		}
		if a.ch3.enabled {
			status |= 0x04
		}
		if a.ch4.enabled {
			status |= 0x08
		}
		return status
	}
	idx := address - addr.NR10
	return a.regs[idx] | readMasks[idx]
}

// WriteRegister services CPU writes in FF10-FF3F. With the APU master
// off, only NR52 and wave RAM are writable.
func (a *APU) WriteRegister(address uint16, value uint8) {
	if address >= addr.WaveRAMStart && address <= addr.WaveRAMEnd {
		a.writeWaveRAM(address, value)
		return
	}
	if address == addr.NR52 {
		a.writeMasterControl(value)
		return
	}
	if !a.enabled {
		return
	}
	if address < addr.NR10 || address > addr.NR51 {
		return
	}
	a.regs[address-addr.NR10] = value

	switch address {
	case addr.NR10:
		a.ch1.swp.setRegister(value)
	case addr.NR11:
		a.ch1.duty = value >> 6
		a.ch1.length.setInitial(uint16(value & 0x3F))
	case addr.NR12:
		a.ch1.env.setRegister(value)
		if !a.ch1.env.dacEnabled() {
			a.ch1.enabled = false
		}
		a.ch1.dacEnabled = a.ch1.env.dacEnabled()
	case addr.NR13:
		a.ch1.frequency = (a.ch1.frequency & 0x700) | uint16(value)
	case addr.NR14:
		a.ch1.frequency = (a.ch1.frequency & 0xFF) | uint16(value&0x07)<<8
		a.ch1.length.enabled = bit.IsSet(6, value)
		if bit.IsSet(7, value) {
			a.ch1.trigger(true)
		}
	case addr.NR21:
		a.ch2.duty = value >> 6
		a.ch2.length.setInitial(uint16(value & 0x3F))
	case addr.NR22:
		a.ch2.env.setRegister(value)
		if !a.ch2.env.dacEnabled() {
			a.ch2.enabled = false
		}
		a.ch2.dacEnabled = a.ch2.env.dacEnabled()
	case addr.NR23:
		a.ch2.frequency = (a.ch2.frequency & 0x700) | uint16(value)
	case addr.NR24:
		a.ch2.frequency = (a.ch2.frequency & 0xFF) | uint16(value&0x07)<<8
		a.ch2.length.enabled = bit.IsSet(6, value)
		if bit.IsSet(7, value) {
			a.ch2.trigger(false)
		}
	case addr.NR30:
		a.ch3.dacEnabled = bit.IsSet(7, value)
		if !a.ch3.dacEnabled {
			a.ch3.enabled = false
		}
	case addr.NR31:
		a.ch3.length.setInitial(uint16(value))
	case addr.NR32:
		a.ch3.volumeCode = bit.ExtractBits(value, 6, 5)
	case addr.NR33:
		a.ch3.frequency = (a.ch3.frequency & 0x700) | uint16(value)
	case addr.NR34:
		a.ch3.frequency = (a.ch3.frequency & 0xFF) | uint16(value&0x07)<<8
		a.ch3.length.enabled = bit.IsSet(6, value)
		if bit.IsSet(7, value) {
			a.ch3.trigger()
		}
	case addr.NR41:
		a.ch4.length.setInitial(uint16(value & 0x3F))
	case addr.NR42:
		a.ch4.env.setRegister(value)
		if !a.ch4.env.dacEnabled() {
			a.ch4.enabled = false
		}
		a.ch4.dacEnabled = a.ch4.env.dacEnabled()
	case addr.NR43:
		a.ch4.shift = value >> 4
		a.ch4.width7 = bit.IsSet(3, value)
		a.ch4.divisorCode = value & 0x07
	case addr.NR44:
		a.ch4.length.enabled = bit.IsSet(6, value)
		if bit.IsSet(7, value) {
			a.ch4.trigger()
		}
	case addr.NR50:
		a.nr50 = value
	case addr.NR51:
		a.nr51 = value
	}
}

// writeMasterControl handles NR52: powering off zeroes every register
// and silences the channels; wave RAM survives.
func (a *APU) writeMasterControl(value uint8) {
	wasEnabled := a.enabled
	a.enabled = bit.IsSet(7, value)

	if wasEnabled && !a.enabled {
		ram := a.ch3.ram
		lengths := [4]uint16{a.ch1.length.counter, a.ch2.length.counter, a.ch3.length.counter, a.ch4.length.counter}
		a.ch1 = square{}
		a.ch2 = square{}
		a.ch3 = wave{}
		a.ch4 = noise{}
		a.ch1.length.max, a.ch2.length.max, a.ch3.length.max, a.ch4.length.max = 64, 64, 256, 64
		a.ch1.length.counter, a.ch2.length.counter, a.ch3.length.counter, a.ch4.length.counter =
			lengths[0], lengths[1], lengths[2], lengths[3]
		a.ch3.ram = ram
		a.nr50, a.nr51 = 0, 0
		a.regs = [0x17]uint8{}
	} else if !wasEnabled && a.enabled {
		a.seqStep = 0
		a.seqClock = 0
	}
}

// waveRAMLocked reports whether the CPU sees the playback buffer
// instead of wave RAM (channel 3 actively playing).
func (a *APU) waveRAMLocked() bool {
	return a.enabled && a.ch3.enabled && a.ch3.dacEnabled
}

func (a *APU) readWaveRAM(address uint16) uint8 {
	if a.waveRAMLocked() {
		return a.ch3.sample
	}
	return a.ch3.ram[address-addr.WaveRAMStart]
}

func (a *APU) writeWaveRAM(address uint16, value uint8) {
	if a.waveRAMLocked() {
		a.ch3.ram[a.ch3.position>>1] = value
		a.ch3.sample = value
		return
	}
	a.ch3.ram[address-addr.WaveRAMStart] = value
}

// Save appends the APU state, channel units included.
func (a *APU) Save(w *savestate.Writer) {
	w.Bool(a.enabled)
	w.U8(a.nr50)
	w.U8(a.nr51)
	w.Int(a.seqStep)
	w.Int(a.seqClock)
	w.Bytes(a.regs[:])

	saveSquare := func(s *square) {
		w.Bool(s.enabled)
		w.Bool(s.dacEnabled)
		w.U8(s.duty)
		w.U8(s.dutyPos)
		w.U16(s.frequency)
		w.Int(s.freqTimer)
		w.U16(s.length.counter)
		w.Bool(s.length.enabled)
		w.U8(s.env.initialVolume)
		w.U8(s.env.volume)
		w.Bool(s.env.up)
		w.U8(s.env.period)
		w.U8(s.env.timer)
		w.U8(s.swp.period)
		w.Bool(s.swp.down)
		w.U8(s.swp.shift)
		w.Bool(s.swp.enabled)
		w.U8(s.swp.timer)
		w.U16(s.swp.shadow)
	}
	saveSquare(&a.ch1)
	saveSquare(&a.ch2)

	w.Bool(a.ch3.enabled)
	w.Bool(a.ch3.dacEnabled)
	w.U8(a.ch3.volumeCode)
	w.U16(a.ch3.frequency)
	w.Int(a.ch3.freqTimer)
	w.U8(a.ch3.position)
	w.U8(a.ch3.sample)
	w.U16(a.ch3.length.counter)
	w.Bool(a.ch3.length.enabled)
	w.Bytes(a.ch3.ram[:])

	w.Bool(a.ch4.enabled)
	w.Bool(a.ch4.dacEnabled)
	w.U8(a.ch4.shift)
	w.Bool(a.ch4.width7)
	w.U8(a.ch4.divisorCode)
	w.U16(a.ch4.lfsr)
	w.Int(a.ch4.freqTimer)
	w.U16(a.ch4.length.counter)
	w.Bool(a.ch4.length.enabled)
	w.U8(a.ch4.env.initialVolume)
	w.U8(a.ch4.env.volume)
	w.Bool(a.ch4.env.up)
	w.U8(a.ch4.env.period)
	w.U8(a.ch4.env.timer)
}

// Load restores state written by Save.
func (a *APU) Load(r *savestate.Reader) error {
	a.enabled = r.Bool()
	a.nr50 = r.U8()
	a.nr51 = r.U8()
	a.seqStep = r.Int()
	a.seqClock = r.Int()
	r.Bytes(a.regs[:])

	loadSquare := func(s *square) {
		s.enabled = r.Bool()
		s.dacEnabled = r.Bool()
		s.duty = r.U8() & 0x03
		s.dutyPos = r.U8() & 0x07
		s.frequency = r.U16()
		s.freqTimer = r.Int()
		s.length.counter = r.U16()
		s.length.enabled = r.Bool()
		s.env.initialVolume = r.U8()
		s.env.volume = r.U8()
		s.env.up = r.Bool()
		s.env.period = r.U8()
		s.env.timer = r.U8()
		s.swp.period = r.U8()
		s.swp.down = r.Bool()
		s.swp.shift = r.U8()
		s.swp.enabled = r.Bool()
		s.swp.timer = r.U8()
		s.swp.shadow = r.U16()
	}
	loadSquare(&a.ch1)
	loadSquare(&a.ch2)

	a.ch3.enabled = r.Bool()
	a.ch3.dacEnabled = r.Bool()
	a.ch3.volumeCode = r.U8()
	a.ch3.frequency = r.U16()
	a.ch3.freqTimer = r.Int()
	a.ch3.position = r.U8() & 0x1F
	a.ch3.sample = r.U8()
	a.ch3.length.counter = r.U16()
	a.ch3.length.enabled = r.Bool()
	r.Bytes(a.ch3.ram[:])

	a.ch4.enabled = r.Bool()
	a.ch4.dacEnabled = r.Bool()
	a.ch4.shift = r.U8()
	a.ch4.width7 = r.Bool()
	a.ch4.divisorCode = r.U8()
	a.ch4.lfsr = r.U16()
	a.ch4.freqTimer = r.Int()
	a.ch4.length.counter = r.U16()
	a.ch4.length.enabled = r.Bool()
	a.ch4.env.initialVolume = r.U8()
	a.ch4.env.volume = r.U8()
	a.ch4.env.up = r.Bool()
	a.ch4.env.period = r.U8()
	a.ch4.env.timer = r.U8()

	return r.Err()
}
