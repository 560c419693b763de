// Package gogb is the root of a cycle-stepped DMG/CGB emulator core.
// Hosts construct an Emulator around ROM bytes, call Step (or RunFrame)
// in a loop, and receive frames and audio samples through callbacks;
// everything else — input, persistence, presentation — stays outside.
package gogb

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/mattjamison/gogb/internal/bus"
	"github.com/mattjamison/gogb/internal/cartridge"
	"github.com/mattjamison/gogb/internal/config"
	"github.com/mattjamison/gogb/internal/cpu"
	"github.com/mattjamison/gogb/internal/joypad"
	"github.com/mattjamison/gogb/internal/savestate"
	"github.com/mattjamison/gogb/internal/video"
)

// Key re-exports the joypad inputs for hosts.
type Key = joypad.Key

const (
	KeyRight  = joypad.Right
	KeyLeft   = joypad.Left
	KeyUp     = joypad.Up
	KeyDown   = joypad.Down
	KeyA      = joypad.A
	KeyB      = joypad.B
	KeySelect = joypad.Select
	KeyStart  = joypad.Start
)

// FrameBuffer re-exports the PPU's framebuffer type for hosts.
type FrameBuffer = video.FrameBuffer

// Emulator is the owned aggregate of every core component. Hosts may
// hold several independent instances; none share state.
type Emulator struct {
	cfg     config.Config
	log     zerolog.Logger
	effects cartridge.Effects

	rom []byte
	cgb bool

	cpu *cpu.CPU
	bus *bus.Bus

	tCycles            uint64
	instructionTCycles int
}

// Option configures an Emulator during construction.
type Option func(*Emulator)

// WithLogger installs a structured logger; the default discards.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Emulator) { e.log = log }
}

// WithCGB forces CGB mode regardless of the cartridge header.
func WithCGB() Option {
	return func(e *Emulator) { e.cfg.ForceCGB = true }
}

// WithDMG forces DMG mode regardless of the cartridge header.
func WithDMG() Option {
	return func(e *Emulator) { e.cfg.ForceDMG = true }
}

// WithSampleRate sets the host audio rate the APU downsamples to.
func WithSampleRate(rate int) Option {
	return func(e *Emulator) { e.cfg.SampleRate = rate }
}

// WithTestMode enables the per-M-cycle bus activity trace.
func WithTestMode() Option {
	return func(e *Emulator) { e.cfg.TestMode = true }
}

// WithBootROM maps a boot ROM over the low address range until the
// boot-completion register is written.
func WithBootROM(rom []byte) Option {
	return func(e *Emulator) { e.cfg.BootROM = rom }
}

// WithCartridgeEffects installs the battery-RAM persistence hook.
func WithCartridgeEffects(effects cartridge.Effects) Option {
	return func(e *Emulator) { e.effects = effects }
}

// New constructs an emulator around the given ROM bytes. saveRAM, when
// non-nil, seeds the cartridge's battery-backed RAM.
func New(rom []byte, saveRAM []byte, opts ...Option) (*Emulator, error) {
	e := &Emulator{
		cfg: config.Default(),
		log: zerolog.Nop(),
		rom: rom,
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.build(saveRAM); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Emulator) build(saveRAM []byte) error {
	mapper, err := cartridge.New(e.rom, saveRAM, e.effects)
	if err != nil {
		return errors.Wrap(err, "loading cartridge")
	}

	e.cgb = mapper.Header().IsCGB()
	if e.cfg.ForceCGB {
		e.cgb = true
	}
	if e.cfg.ForceDMG {
		if mapper.Header().IsCGBOnly() {
			return errors.New("cartridge is CGB-only and cannot run in DMG mode")
		}
		e.cgb = false
	}

	e.bus = bus.New(mapper, bus.Config{
		CGB:        e.cgb,
		SampleRate: e.cfg.SampleRate,
		BootROM:    e.cfg.BootROM,
	}, e.log)
	e.cpu = cpu.New(e.bus)
	e.cpu.TraceEnabled = e.cfg.TestMode
	if len(e.cfg.BootROM) > 0 {
		// the boot ROM sets the register file up itself
		e.cpu.SetState(cpu.State{})
	}
	e.tCycles = 0
	e.instructionTCycles = 0

	e.log.Debug().
		Str("title", mapper.Header().Title).
		Bool("cgb", e.cgb).
		Int("rom_banks", mapper.Header().MaxROMBanks).
		Msg("cartridge loaded")
	return nil
}

// Step executes exactly one CPU instruction (or one interrupt
// dispatch, or one halted cycle), advancing every peripheral in
// lockstep, and returns the T-cycle cost.
func (e *Emulator) Step() int {
	cycles := e.cpu.Step()
	e.tCycles += uint64(cycles)
	e.instructionTCycles = cycles
	return cycles
}

// RunFrame steps until one full frame's worth of T-cycles has elapsed.
func (e *Emulator) RunFrame() {
	target := e.tCycles + video.FrameCycles
	for e.tCycles < target {
		e.Step()
	}
}

// TCycles returns the monotonic T-cycle counter.
func (e *Emulator) TCycles() uint64 { return e.tCycles }

// InstructionTCycles returns the cost of the most recent Step.
func (e *Emulator) InstructionTCycles() int { return e.instructionTCycles }

// CGB reports whether the core is running in CGB mode.
func (e *Emulator) CGB() bool { return e.cgb }

// CPU exposes the CPU for debuggers and tests.
func (e *Emulator) CPU() *cpu.CPU { return e.cpu }

// Bus exposes the address bus for debuggers and tests.
func (e *Emulator) Bus() *bus.Bus { return e.bus }

// Framebuffer returns the PPU's current frame.
func (e *Emulator) Framebuffer() *video.FrameBuffer {
	return e.bus.PPU().Framebuffer()
}

// SetFrameCallback registers fn to fire once per completed frame, at
// VBlank entry. The framebuffer is reused; consume it synchronously.
func (e *Emulator) SetFrameCallback(fn func(*video.FrameBuffer)) {
	e.bus.PPU().FrameCallback = fn
}

// SetSampleCallback registers fn to receive interleaved stereo samples
// in [-1, 1] whenever a batch fills. The slice is reused; consume it
// synchronously.
func (e *Emulator) SetSampleCallback(fn func([]float32)) {
	e.bus.APU().SampleCallback = fn
}

// PressKey notifies the joypad of a key press.
func (e *Emulator) PressKey(key Key) { e.bus.Joypad().Press(key) }

// ReleaseKey notifies the joypad of a key release.
func (e *Emulator) ReleaseKey(key Key) { e.bus.Joypad().Release(key) }

// Read performs a bus read at address, with all memory-mapped side
// effects of a CPU read except the M-cycle cost.
func (e *Emulator) Read(address uint16) uint8 { return e.bus.Read(address) }

// Write performs a bus write at address.
func (e *Emulator) Write(address uint16, value uint8) { e.bus.Write(address, value) }

// RegisterGameShark parses and registers a GameShark code under id.
func (e *Emulator) RegisterGameShark(id, code string) error {
	if err := e.bus.Cheats().RegisterGameShark(id, code); err != nil {
		e.log.Warn().Str("code", code).Err(err).Msg("rejected gameshark code")
		return err
	}
	return nil
}

// RegisterGameGenie parses and registers a Game Genie code under id.
func (e *Emulator) RegisterGameGenie(id, code string) error {
	if err := e.bus.Cheats().RegisterGameGenie(id, code); err != nil {
		e.log.Warn().Str("code", code).Err(err).Msg("rejected game genie code")
		return err
	}
	return nil
}

// UnregisterCheat removes the cheat registered under id.
func (e *Emulator) UnregisterCheat(id string) {
	e.bus.Cheats().Unregister(id)
}

// Reset reinitializes the whole core from the ROM, discarding all
// runtime state (battery RAM included unless re-seeded by the host).
func (e *Emulator) Reset() error {
	return e.build(nil)
}

// SaveState serializes the full emulator state as a versioned byte
// stream.
func (e *Emulator) SaveState() []byte {
	w := savestate.NewWriter()
	w.U8(savestate.Version)
	e.cpu.Save(w)
	w.U64(e.tCycles)
	w.Int(e.instructionTCycles)
	e.bus.Save(w)
	w.Blob(e.bus.Mapper().Serialize())
	e.bus.PPU().Save(w)
	e.bus.APU().Save(w)
	e.bus.Timer().Save(w)
	e.bus.Joypad().Save(w)
	return w.Data()
}

// LoadState restores a stream produced by SaveState. On any error the
// emulator's prior state is left untouched: the stream is loaded into
// a fresh core first and swapped in only on success.
func (e *Emulator) LoadState(data []byte) error {
	fresh := &Emulator{
		cfg:     e.cfg,
		log:     e.log,
		effects: e.effects,
		rom:     e.rom,
	}
	if err := fresh.build(nil); err != nil {
		return err
	}

	r := savestate.NewReader(data)
	if v := r.U8(); v != savestate.Version {
		if err := r.Err(); err != nil {
			return errors.Wrap(err, "loading save state")
		}
		return errors.Errorf("save state: unsupported version %d", v)
	}
	if err := fresh.cpu.Load(r); err != nil {
		return errors.Wrap(err, "loading cpu state")
	}
	fresh.tCycles = r.U64()
	fresh.instructionTCycles = r.Int()
	if err := fresh.bus.Load(r); err != nil {
		return errors.Wrap(err, "loading bus state")
	}
	if err := fresh.bus.Mapper().Deserialize(r.Blob()); err != nil {
		return errors.Wrap(err, "loading mapper state")
	}
	if err := r.Err(); err != nil {
		return errors.Wrap(err, "loading mapper state")
	}
	if err := fresh.bus.PPU().Load(r); err != nil {
		return errors.Wrap(err, "loading ppu state")
	}
	if err := fresh.bus.APU().Load(r); err != nil {
		return errors.Wrap(err, "loading apu state")
	}
	if err := fresh.bus.Timer().Load(r); err != nil {
		return errors.Wrap(err, "loading timer state")
	}
	if err := fresh.bus.Joypad().Load(r); err != nil {
		return errors.Wrap(err, "loading joypad state")
	}

	// success: adopt the restored core, carrying over the callbacks
	fresh.cpu.TraceEnabled = e.cfg.TestMode
	fresh.bus.PPU().FrameCallback = e.bus.PPU().FrameCallback
	fresh.bus.APU().SampleCallback = e.bus.APU().SampleCallback
	e.cpu = fresh.cpu
	e.bus = fresh.bus
	e.tCycles = fresh.tCycles
	e.instructionTCycles = fresh.instructionTCycles
	return nil
}
