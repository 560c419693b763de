// Package timer implements the DIV/TIMA/TMA/TAC registers around a
// 16-bit divider with a falling-edge detector, including the TIMA
// overflow reload delay and the DIV-reset spurious increment.
package timer

import (
	"github.com/mattjamison/gogb/internal/addr"
	"github.com/mattjamison/gogb/internal/bit"
	"github.com/mattjamison/gogb/internal/savestate"
)

// Timer encapsulates DIV/TIMA/TMA/TAC and the falling-edge-detector
// behavior of the real hardware, including the TIMA overflow delay and
// the DIV-reset spurious-increment quirk.
type Timer struct {
	systemCounter uint16
	lastTimerBit  bool
	timaOverflow  int
	timaDelayInt  bool

	div  uint8
	tima uint8
	tma  uint8
	tac  uint8

	// InterruptHandler is invoked when TIMA overflows and TMA has been
	// reloaded; it is the caller's job to set IF.Timer.
	InterruptHandler func()
}

// New returns a Timer with all registers cleared.
func New() *Timer {
	return &Timer{}
}

// SetSeed initializes the internal 16-bit divider counter (used by boot
// sequences that start DIV at a non-zero value).
func (t *Timer) SetSeed(seed uint16) {
	t.systemCounter = seed
	t.lastTimerBit = false
	t.timaOverflow = 0
	t.timaDelayInt = false
	t.div = uint8(t.systemCounter >> 8)
}

func (t *Timer) selectedBit() uint16 {
	switch t.tac & 0x03 {
	case 0x00:
		return 9
	case 0x01:
		return 3
	case 0x02:
		return 5
	default:
		return 7
	}
}

func (t *Timer) timerBit() bool {
	if t.tac&0x04 == 0 {
		return false
	}
	return bit.IsSet16(uint8(t.selectedBit()), t.systemCounter)
}

func (t *Timer) incrementTIMA() {
	if t.tima == 0xFF {
		t.tima = 0x00
		t.timaOverflow = 4
	} else {
		t.tima++
	}
}

// Tick advances the timer by the given number of T-cycles.
func (t *Timer) Tick(cycles int) {
	if t.timaDelayInt {
		if t.InterruptHandler != nil {
			t.InterruptHandler()
		}
		t.timaDelayInt = false
	}

	if t.timaOverflow > 0 {
		t.timaOverflow -= cycles
		if t.timaOverflow <= 0 {
			t.tima = t.tma
			t.timaDelayInt = true
			t.timaOverflow = 0
		}
	}

	for i := 0; i < cycles; i++ {
		t.systemCounter++
		t.div = uint8(t.systemCounter >> 8)

		if t.timaOverflow > 0 {
			continue
		}

		current := t.timerBit()
		if t.lastTimerBit && !current {
			t.incrementTIMA()
		}
		t.lastTimerBit = current
	}
}

// Read returns the value of the given timer register.
func (t *Timer) Read(address uint16) uint8 {
	switch address {
	case addr.DIV:
		return t.div
	case addr.TIMA:
		return t.tima
	case addr.TMA:
		return t.tma
	case addr.TAC:
		return t.tac
	default:
		return 0xFF
	}
}

// Write updates the given timer register. Writing DIV resets the
// internal counter to zero; if the TAC-selected bit of the counter was
// set immediately before the reset, this produces a falling edge and
// causes a spurious TIMA increment, matching real hardware.
func (t *Timer) Write(address uint16, value uint8) {
	switch address {
	case addr.DIV:
		if t.timerBit() {
			t.incrementTIMA()
		}
		t.systemCounter = 0
		t.div = 0
		t.lastTimerBit = false
	case addr.TIMA:
		t.tima = value
	case addr.TMA:
		t.tma = value
	case addr.TAC:
		t.tac = value
	}
}

// Save appends the timer state.
func (t *Timer) Save(w *savestate.Writer) {
	w.U16(t.systemCounter)
	w.Bool(t.lastTimerBit)
	w.Int(t.timaOverflow)
	w.Bool(t.timaDelayInt)
	w.U8(t.div)
	w.U8(t.tima)
	w.U8(t.tma)
	w.U8(t.tac)
}

// Load restores state written by Save.
func (t *Timer) Load(r *savestate.Reader) error {
	t.systemCounter = r.U16()
	t.lastTimerBit = r.Bool()
	t.timaOverflow = r.Int()
	t.timaDelayInt = r.Bool()
	t.div = r.U8()
	t.tima = r.U8()
	t.tma = r.U8()
	t.tac = r.U8()
	return r.Err()
}
