// Package timer implements the programmable countdown peripheral: a
// bus-addressable interval timer driven by clock ticks from the CPU. The
// register layout is a deliberately small slice of the 6532 PIA's timer
// (see github.com/jmchacon/6502/pia6532 for the full chip this is grounded
// on) — this system has no I/O ports, edge detection, or interrupts, just
// the four interval-select writes and the one countdown read.
package timer

import (
	"github.com/dannymato/sixtyfive/memory"
)

const (
	// writeInterval1/8/64/1024 are the low 12 bits of the bus addresses that
	// select the timer's countdown interval, in sub-ticks per visible count.
	writeInterval1    = uint16(0x294)
	writeInterval8    = uint16(0x295)
	writeInterval64   = uint16(0x296)
	writeInterval1024 = uint16(0x297)

	// readCurrent is the low 12 bits of the bus address that reads back the
	// current visible count.
	readCurrent = uint16(0x284)

	addrMask = uint16(0x0FFF)

	timerStart = uint32(0xFF)
)

// Chip is the timer peripheral. It implements memory.Bank so the bus can map
// its registers directly, and it is registered as a clock tick consumer so
// the CPU's clock fan-out can drive its countdown.
type Chip struct {
	currentTime     uint32
	currentInterval uint32
	overflowed      bool
	parent          memory.Bank
	databusVal      uint8
}

var _ memory.Bank = (*Chip)(nil)

// ChipDef configures a new timer Chip.
type ChipDef struct {
	// Parent, if non-nil, is a containing memory.Bank.
	Parent memory.Bank
}

// Init returns a new timer in its power-on state.
func Init(d *ChipDef) *Chip {
	var parent memory.Bank
	if d != nil {
		parent = d.Parent
	}
	c := &Chip{parent: parent}
	c.PowerOn()
	return c
}

// PowerOn implements memory.Bank. The interval defaults to 1 and the
// countdown starts at its maximum, per reset's currentTime := 0xFF *
// interval formula.
func (c *Chip) PowerOn() {
	c.overflowed = false
	c.reset(1)
}

// reset reprograms the interval and restarts the countdown at its maximum
// visible value for that interval.
func (c *Chip) reset(interval uint32) {
	c.currentInterval = interval
	c.currentTime = timerStart * interval
}

// Read implements memory.Bank. Only readCurrent is meaningful; all other
// addresses return 0 like an unmapped register.
func (c *Chip) Read(addr uint16) uint8 {
	var val uint8
	if addr&addrMask == readCurrent {
		val = uint8(c.currentTime / c.currentInterval)
	}
	c.databusVal = val
	return val
}

// Write implements memory.Bank. Any of the four interval addresses
// reprograms and restarts the countdown; any other address is ignored.
func (c *Chip) Write(addr uint16, val uint8) {
	c.databusVal = val
	switch addr & addrMask {
	case writeInterval1:
		c.reset(1)
	case writeInterval8:
		c.reset(8)
	case writeInterval64:
		c.reset(64)
	case writeInterval1024:
		c.reset(1024)
	}
}

// Tick advances the countdown by cycles sub-ticks, implementing the
// cpu.TickSink interface so the clock fan-out can drive it directly. If
// cycles exceeds the remaining time the counter wraps around through its
// maximum value rather than going negative, reflecting the hardware
// counter's rollover behavior.
func (c *Chip) Tick(cycles int) {
	n := uint32(cycles)
	if n > c.currentTime {
		remaining := n - c.currentTime
		c.currentTime = timerStart
		c.currentTime -= remaining
		c.overflowed = true
		return
	}
	c.currentTime -= n
}

// Parent implements memory.Bank.
func (c *Chip) Parent() memory.Bank { return c.parent }

// DatabusVal implements memory.Bank.
func (c *Chip) DatabusVal() uint8 { return c.databusVal }
