// Package bits implements the small set of bit-pattern predicates the bus
// decoder and CPU addressing logic share: testing individual address bits
// and detecting a page-boundary crossing.
package bits

// IsBitSet reports whether bit n of addr is set.
func IsBitSet(addr uint16, n uint) bool {
	return addr&(1<<n) != 0
}

// IsBitSetByte reports whether bit n of value is set.
func IsBitSetByte(value uint8, n uint) bool {
	return value&(1<<n) != 0
}

// IsBitUnset reports whether bit n of addr is clear.
func IsBitUnset(addr uint16, n uint) bool {
	return !IsBitSet(addr, n)
}

const upperByteMask = uint16(0xFF00)

// PageCrossed reports whether origAddr and newAddr fall in different 256-byte
// pages, the condition that adds extra cycles to indexed reads and taken
// branches.
func PageCrossed(origAddr, newAddr uint16) bool {
	return origAddr&upperByteMask != newAddr&upperByteMask
}
