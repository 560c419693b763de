package cpu

import "github.com/mattjamison/gogb/internal/savestate"

// State is an externally visible snapshot of the register file, used
// by fixtures, the debugger and save states.
type State struct {
	A, F, B, C, D, E, H, L uint8
	PC, SP                 uint16
	IME                    bool
	Halted                 bool
	Stopped                bool
}

// State returns a snapshot of the current register file.
func (c *CPU) State() State {
	return State{
		A: c.a, F: c.f, B: c.b, C: c.cReg, D: c.d, E: c.e, H: c.h, L: c.l,
		PC: c.pc, SP: c.sp,
		IME:     c.ime,
		Halted:  c.halted,
		Stopped: c.stopped,
	}
}

// SetState overwrites the register file from a snapshot. The F low
// nibble is masked off, preserving the flags invariant.
func (c *CPU) SetState(s State) {
	c.a, c.f = s.A, s.F&0xF0
	c.b, c.cReg = s.B, s.C
	c.d, c.e = s.D, s.E
	c.h, c.l = s.H, s.L
	c.pc, c.sp = s.PC, s.SP
	c.ime = s.IME
	c.halted = s.Halted
	c.stopped = s.Stopped
}

// Halted reports whether the CPU is in the HALT state.
func (c *CPU) Halted() bool { return c.halted }

// Stopped reports whether the CPU is in the STOP state.
func (c *CPU) Stopped() bool { return c.stopped }

// IME reports the interrupt master enable latch.
func (c *CPU) IME() bool { return c.ime }

// Save appends the CPU state.
func (c *CPU) Save(w *savestate.Writer) {
	w.U8(c.a)
	w.U8(c.f)
	w.U8(c.b)
	w.U8(c.cReg)
	w.U8(c.d)
	w.U8(c.e)
	w.U8(c.h)
	w.U8(c.l)
	w.U16(c.pc)
	w.U16(c.sp)
	w.Bool(c.ime)
	w.Int(c.imeScheduled)
	w.Bool(c.halted)
	w.Bool(c.haltBug)
	w.Bool(c.stopped)
}

// Load restores state written by Save.
func (c *CPU) Load(r *savestate.Reader) error {
	c.a = r.U8()
	c.f = r.U8() & 0xF0
	c.b = r.U8()
	c.cReg = r.U8()
	c.d = r.U8()
	c.e = r.U8()
	c.h = r.U8()
	c.l = r.U8()
	c.pc = r.U16()
	c.sp = r.U16()
	c.ime = r.Bool()
	c.imeScheduled = r.Int()
	c.halted = r.Bool()
	c.haltBug = r.Bool()
	c.stopped = r.Bool()
	return r.Err()
}
