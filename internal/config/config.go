// Package config holds the construction options shared by the
// emulator root and the headless runner.
package config

// Config carries everything needed to build an emulator around a ROM.
type Config struct {
	// ForceCGB runs the core in CGB mode even for DMG-flagged carts;
	// ForceDMG does the opposite. Neither set: the cartridge header's
	// CGB flag decides.
	ForceCGB bool
	ForceDMG bool

	// SampleRate is the host audio rate the APU downsamples to.
	SampleRate int

	// TestMode maintains the per-M-cycle bus activity trace on the CPU.
	TestMode bool

	// BootROM, when non-empty, is mapped over the low address range
	// until the boot-completion register is written.
	BootROM []byte
}

// Default returns the configuration used when no options are given.
func Default() Config {
	return Config{SampleRate: 44100}
}
