// Package cpu implements the SM83 instruction set: registers, flags,
// the fetch-decode-execute loop, interrupt dispatch, HALT/STOP and the
// per-M-cycle bus trace used to verify instruction timing.
package cpu

import (
	"github.com/mattjamison/gogb/internal/addr"
	"github.com/mattjamison/gogb/internal/interrupt"
)

// Bus abstracts the address space the CPU talks to. Read and Write each
// cost one M-cycle; the CPU ticks the bus itself so callers never need
// to account for CPU-driven cycles separately.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	Tick(tCycles int)
	ReadIE() uint8
	ReadIF() uint8
	WriteIF(value uint8)
}

// stopper is implemented by buses that model the STOP instruction's
// side effects: the CGB speed switch and the DMG LCD blank.
type stopper interface {
	EnterStop() (speedSwitched bool)
	ExitStop()
}

// AccessKind identifies what a TraceEntry represents.
type AccessKind int

const (
	Read AccessKind = iota
	Write
	Internal
)

// TraceEntry records one M-cycle of bus activity: a real read, a real
// write, or an internal cycle with no bus transaction (recorded at the
// last address/value the CPU drove, matching real hardware's bus hold).
type TraceEntry struct {
	Kind    AccessKind
	Address uint16
	Value   uint8
}

// CPU holds SM83 register state and the bus it's wired to.
type CPU struct {
	a, b, cReg, d, e, h, l uint8
	f                      uint8
	sp, pc                 uint16

	ime          bool
	imeScheduled int // countdown of instructions until IME takes effect, set by EI; 0 = not scheduled
	halted       bool
	haltBug      bool
	stopped      bool

	bus Bus

	TraceEnabled bool
	Trace        []TraceEntry
	lastAddr     uint16
	lastValue    uint8
}

// New creates a CPU wired to bus, with registers in their post-bootrom
// DMG power-up state.
func New(bus Bus) *CPU {
	c := &CPU{bus: bus}
	c.setAF(0x01B0)
	c.setBC(0x0013)
	c.setDE(0x00D8)
	c.setHL(0x014D)
	c.sp = 0xFFFE
	c.pc = 0x0100
	return c
}

func (c *CPU) PC() uint16 { return c.pc }
func (c *CPU) SP() uint16 { return c.sp }

func (c *CPU) read(address uint16) uint8 {
	v := c.bus.Read(address)
	c.bus.Tick(4)
	c.lastAddr, c.lastValue = address, v
	if c.TraceEnabled {
		c.Trace = append(c.Trace, TraceEntry{Read, address, v})
	}
	return v
}

func (c *CPU) write(address uint16, value uint8) {
	c.bus.Write(address, value)
	c.bus.Tick(4)
	c.lastAddr, c.lastValue = address, value
	if c.TraceEnabled {
		c.Trace = append(c.Trace, TraceEntry{Write, address, value})
	}
}

// tickInternal accounts for an M-cycle with no bus transaction (ALU
// work, register shuffling) while still advancing the bus's other
// components.
func (c *CPU) tickInternal() {
	c.bus.Tick(4)
	if c.TraceEnabled {
		c.Trace = append(c.Trace, TraceEntry{Internal, c.lastAddr, c.lastValue})
	}
}

func (c *CPU) readImmediate() uint8 {
	v := c.read(c.pc)
	c.pc++
	return v
}

func (c *CPU) readImmediateWord() uint16 {
	lo := c.readImmediate()
	hi := c.readImmediate()
	return combine(hi, lo)
}

func (c *CPU) readSignedImmediate() int8 {
	return int8(c.readImmediate())
}

func (c *CPU) pushStack(value uint16) {
	c.sp--
	c.write(c.sp, high(value))
	c.sp--
	c.write(c.sp, low(value))
}

func (c *CPU) popStack() uint16 {
	lo := c.read(c.sp)
	c.sp++
	hi := c.read(c.sp)
	c.sp++
	return combine(hi, lo)
}

// Step runs one instruction (servicing a pending interrupt first if
// able) and returns the number of T-cycles it took.
func (c *CPU) Step() int {
	if c.TraceEnabled {
		c.Trace = c.Trace[:0]
	}

	if c.handleInterrupts() {
		// dispatch alone: 2 internal cycles, the PC push, and the jump
		return 20
	}

	if c.stopped {
		c.tickInternal()
		return 4
	}

	if c.halted {
		c.tickInternal()
		return 4
	}

	return c.stepCycles()
}

func (c *CPU) stepCycles() int {
	start := c.pc
	opcode := uint16(c.readImmediate())
	if opcode == 0xCB {
		opcode = 0xCB00 | uint16(c.readImmediate())
	}

	if c.haltBug {
		c.haltBug = false
		c.pc = start
	}

	if c.imeScheduled > 0 {
		c.imeScheduled--
		if c.imeScheduled == 0 {
			c.ime = true
		}
	}

	var fn func(*CPU) int
	var ok bool
	if opcode&0xCB00 == 0xCB00 {
		fn, ok = cbDispatch[opcode]
	} else {
		fn, ok = dispatch[opcode]
	}
	if !ok {
		if c.TraceEnabled {
			panic("cpu: no handler for decoded opcode")
		}
		return 4
	}
	return fn(c)
}

// handleInterrupts dispatches the highest-priority pending, enabled
// interrupt. Even with IME cleared, a pending interrupt wakes the CPU
// from HALT; only with IME set does it actually push PC and jump.
func (c *CPU) handleInterrupts() bool {
	pending := c.bus.ReadIE() & c.bus.ReadIF() & 0x1F
	if pending == 0 {
		return false
	}
	if c.halted {
		c.halted = false
	}
	if c.stopped && pending&uint8(addr.JoypadInterrupt) != 0 {
		c.stopped = false
		if s, ok := c.bus.(stopper); ok {
			s.ExitStop()
		}
	}
	if !c.ime {
		return false
	}

	c.ime = false
	c.tickInternal()
	c.tickInternal()
	c.pushStack(c.pc)

	for _, vec := range interrupt.Vectors {
		if pending&uint8(vec.Bit) != 0 {
			c.bus.WriteIF(c.bus.ReadIF() &^ uint8(vec.Bit))
			c.pc = vec.Address
			break
		}
	}
	c.tickInternal()
	return true
}
