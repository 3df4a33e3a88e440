package memory

import (
	"math/rand"
	"time"
)

const ramSize = 128

// RAM implements the 128-byte zero-page/stack store. It is addressed through
// the quirky (addr-0x80)&0xFF mapping described for the bus's RAM window,
// which mirrors the 128-255 and 384-511 bands onto the same 128 bytes.
type RAM struct {
	data       [ramSize]uint8
	parent     Bank
	databusVal uint8
}

var _ Bank = (*RAM)(nil)

// NewRAM creates a RAM bank. parent may be nil.
func NewRAM(parent Bank) *RAM {
	r := &RAM{parent: parent}
	r.PowerOn()
	return r
}

func ramIndex(addr uint16) uint16 {
	return (addr - 0x80) & 0xFF
}

// Read implements Bank.
func (r *RAM) Read(addr uint16) uint8 {
	val := r.data[ramIndex(addr)]
	r.databusVal = val
	return val
}

// Write implements Bank.
func (r *RAM) Write(addr uint16, val uint8) {
	r.databusVal = val
	r.data[ramIndex(addr)] = val
}

// PowerOn randomizes the RAM contents, matching real hardware's
// unpredictable power-on state.
func (r *RAM) PowerOn() {
	rand.Seed(time.Now().UnixNano())
	for i := range r.data {
		r.data[i] = uint8(rand.Intn(256))
	}
}

// Parent implements Bank.
func (r *RAM) Parent() Bank { return r.parent }

// DatabusVal implements Bank.
func (r *RAM) DatabusVal() uint8 { return r.databusVal }
