// Package cartridge implements the read-only 4 KiB ROM image device
// endpoint. It is the cartridge memory.Bank mapped by the bus wherever
// address bit 12 is set.
package cartridge

import (
	"fmt"

	"github.com/dannymato/sixtyfive/memory"
)

// Size is the only ROM image size this system recognizes.
const Size = 4096

// SizeError is returned when a cartridge image is not exactly Size bytes.
type SizeError struct {
	Got int
}

// Error implements the error interface.
func (e SizeError) Error() string {
	return fmt.Sprintf("unsupported cartridge size: got %d bytes, want %d", e.Got, Size)
}

// Cartridge holds an immutable 4 KiB ROM image, addressed with the addr &
// 0x0FFF mask described in the bus's cartridge window.
type Cartridge struct {
	rom        [Size]uint8
	parent     memory.Bank
	databusVal uint8
}

var _ memory.Bank = (*Cartridge)(nil)

// New builds a Cartridge from rom, which must be exactly Size bytes.
func New(rom []uint8, parent memory.Bank) (*Cartridge, error) {
	if len(rom) != Size {
		return nil, SizeError{Got: len(rom)}
	}
	c := &Cartridge{parent: parent}
	copy(c.rom[:], rom)
	return c, nil
}

// Read implements memory.Bank.
func (c *Cartridge) Read(addr uint16) uint8 {
	val := c.rom[addr&0x0FFF]
	c.databusVal = val
	return val
}

// Write implements memory.Bank. Cartridge ROM is immutable; this is a
// diagnostic no-op.
func (c *Cartridge) Write(addr uint16, val uint8) {
	c.databusVal = val
}

// PowerOn implements memory.Bank; ROM contents never change.
func (c *Cartridge) PowerOn() {}

// Parent implements memory.Bank.
func (c *Cartridge) Parent() memory.Bank { return c.parent }

// DatabusVal implements memory.Bank.
func (c *Cartridge) DatabusVal() uint8 { return c.databusVal }
