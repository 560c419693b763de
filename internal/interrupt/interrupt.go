// Package interrupt implements the IE/IF register pair and the fixed
// interrupt priority order used by the CPU's dispatch step.
package interrupt

import "github.com/mattjamison/gogb/internal/addr"

// Vectors maps each interrupt to its service-routine address, in priority
// order: VBlank < LCD STAT < Timer < Serial < Joypad.
var Vectors = []struct {
	Bit     addr.Interrupt
	Address uint16
}{
	{addr.VBlankInterrupt, 0x0040},
	{addr.LCDSTATInterrupt, 0x0048},
	{addr.TimerInterrupt, 0x0050},
	{addr.SerialInterrupt, 0x0058},
	{addr.JoypadInterrupt, 0x0060},
}

// Controller holds the IE (interrupt enable) and IF (interrupt flag)
// registers. Only the low 5 bits of each are meaningful; reads of IF
// return the unused upper bits set to 1, matching real hardware.
type Controller struct {
	ie uint8
	f  uint8
}

// New returns a Controller with both registers cleared.
func New() *Controller {
	return &Controller{}
}

// ReadIE returns the IE register.
func (c *Controller) ReadIE() uint8 { return c.ie }

// WriteIE sets the IE register.
func (c *Controller) WriteIE(v uint8) { c.ie = v }

// ReadIF returns the IF register with unused upper bits set.
func (c *Controller) ReadIF() uint8 { return c.f | 0xE0 }

// WriteIF sets the low 5 bits of the IF register.
func (c *Controller) WriteIF(v uint8) { c.f = v & 0x1F }

// Request sets the IF bit for the given interrupt.
func (c *Controller) Request(i addr.Interrupt) {
	c.f |= uint8(i)
}

// Clear clears the IF bit for the given interrupt.
func (c *Controller) Clear(i addr.Interrupt) {
	c.f &^= uint8(i)
}

// Pending returns true if any enabled interrupt is requested.
func (c *Controller) Pending() bool {
	return (c.ie & c.f & 0x1F) != 0
}

// NextVector returns the address and bit of the highest-priority pending
// and enabled interrupt, and ok=false if none are pending.
func (c *Controller) NextVector() (address uint16, bit addr.Interrupt, ok bool) {
	pending := c.ie & c.f & 0x1F
	if pending == 0 {
		return 0, 0, false
	}
	for _, v := range Vectors {
		if pending&uint8(v.Bit) != 0 {
			return v.Address, v.Bit, true
		}
	}
	return 0, 0, false
}
