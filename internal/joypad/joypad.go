// Package joypad implements the P1/JOYP register: two 4-bit shadow
// latches for the buttons and the d-pad, an active-low column select,
// and the press-edge interrupt.
package joypad

import (
	"github.com/mattjamison/gogb/internal/bit"
	"github.com/mattjamison/gogb/internal/savestate"
)

// Key identifies one of the eight Game Boy inputs.
type Key uint8

const (
	Right Key = iota
	Left
	Up
	Down
	A
	B
	Select
	Start
)

// Joypad holds the button/d-pad latches and the column-select line.
type Joypad struct {
	buttons uint8
	dpad    uint8
	column  uint8

	// InterruptHandler fires when any selected line transitions high to
	// low (a key is pressed while its column is selected).
	InterruptHandler func()
}

// New returns a Joypad with no buttons pressed.
func New() *Joypad {
	return &Joypad{buttons: 0x0F, dpad: 0x0F}
}

// Read returns the P1 register: the column-select bits, the two unused
// high bits forced to 1, and the active nibble for whichever column (or
// columns) is selected. Selection is active-low: a cleared bit 4
// selects the d-pad, a cleared bit 5 the buttons; both set reads 0x0F.
func (j *Joypad) Read() uint8 {
	nibble := uint8(0x0F)
	if j.column&0x10 == 0 {
		nibble &= j.dpad
	}
	if j.column&0x20 == 0 {
		nibble &= j.buttons
	}
	return j.column | 0xC0 | nibble
}

// Write sets the column-select bits (bits 4-5 of P1).
func (j *Joypad) Write(value uint8) {
	j.column = value & 0x30
}

func (j *Joypad) groupSelected(dpad bool) bool {
	if dpad {
		return j.column&0x10 == 0
	}
	return j.column&0x20 == 0
}

// Press clears the bit for key, firing the interrupt handler if that
// line is currently selected (high-to-low edge).
func (j *Joypad) Press(key Key) {
	wasHigh := j.lineHigh(key)
	j.setLine(key, false)
	_, dpad := keyBit(key)
	if wasHigh && j.groupSelected(dpad) && j.InterruptHandler != nil {
		j.InterruptHandler()
	}
}

// Release sets the bit for key.
func (j *Joypad) Release(key Key) {
	j.setLine(key, true)
}

func (j *Joypad) lineHigh(key Key) bool {
	idx, dpad := keyBit(key)
	if dpad {
		return bit.IsSet(idx, j.dpad)
	}
	return bit.IsSet(idx, j.buttons)
}

func (j *Joypad) setLine(key Key, high bool) {
	idx, dpad := keyBit(key)
	if dpad {
		if high {
			j.dpad = bit.Set(idx, j.dpad)
		} else {
			j.dpad = bit.Reset(idx, j.dpad)
		}
		return
	}
	if high {
		j.buttons = bit.Set(idx, j.buttons)
	} else {
		j.buttons = bit.Reset(idx, j.buttons)
	}
}

func keyBit(key Key) (index uint8, dpad bool) {
	switch key {
	case Right:
		return 0, true
	case Left:
		return 1, true
	case Up:
		return 2, true
	case Down:
		return 3, true
	case A:
		return 0, false
	case B:
		return 1, false
	case Select:
		return 2, false
	case Start:
		return 3, false
	default:
		return 0, true
	}
}

// AnyPressed reports whether any button or d-pad line is currently low.
// The CPU does not consult it: it leaves STOP on a pending joypad
// interrupt.
func (j *Joypad) AnyPressed() bool {
	return j.buttons != 0x0F || j.dpad != 0x0F
}

// Save appends the joypad latches and column select.
func (j *Joypad) Save(w *savestate.Writer) {
	w.U8(j.buttons)
	w.U8(j.dpad)
	w.U8(j.column)
}

// Load restores state written by Save.
func (j *Joypad) Load(r *savestate.Reader) error {
	j.buttons = r.U8()
	j.dpad = r.U8()
	j.column = r.U8()
	return r.Err()
}
