package memory

// Null is a device endpoint that swallows writes and always reads as zero.
// It stands in for every unmapped region of the address space (including the
// TIA video/audio register file, which is out of scope for this core and is
// only ever stubbed by Null) and for the bus's own decode default.
type Null struct {
	parent     Bank
	databusVal uint8
}

var _ Bank = (*Null)(nil)

// NewNull creates a Null device. parent may be nil.
func NewNull(parent Bank) *Null {
	return &Null{parent: parent}
}

// Read implements Bank; always returns 0.
func (n *Null) Read(addr uint16) uint8 {
	n.databusVal = 0
	return 0
}

// Write implements Bank; discards the value.
func (n *Null) Write(addr uint16, val uint8) {
	n.databusVal = val
}

// PowerOn implements Bank; a no-op, Null has no state.
func (n *Null) PowerOn() {}

// Parent implements Bank.
func (n *Null) Parent() Bank { return n.parent }

// DatabusVal implements Bank.
func (n *Null) DatabusVal() uint8 { return n.databusVal }
