package memory

import "testing"

func TestRAMReadWrite(t *testing.T) {
	r := NewRAM(nil)
	for i := uint16(0x80); i <= 0xFF; i++ {
		r.Write(i, uint8(i))
		if got, want := r.Read(i), uint8(i); got != want {
			t.Errorf("Write/Read %.4X: got %.2X want %.2X", i, got, want)
		}
	}
}

func TestRAMMirroring(t *testing.T) {
	// Writing at 0x0080 must be observable at 0x0180 since both map to the
	// same underlying 128-byte cell.
	r := NewRAM(nil)
	r.Write(0x0080, 0x42)
	if got, want := r.Read(0x0180), uint8(0x42); got != want {
		t.Errorf("mirrored read at 0x0180 = %.2X, want %.2X", got, want)
	}

	r.Write(0x01FF, 0x99)
	if got, want := r.Read(0x00FF), uint8(0x99); got != want {
		t.Errorf("mirrored read at 0x00FF = %.2X, want %.2X", got, want)
	}
}

func TestRAMPowerOnRandomizes(t *testing.T) {
	r := NewRAM(nil)
	// Not a strong guarantee, but PowerOn must touch every cell without
	// panicking and the buffer must stay 128 bytes.
	if got, want := len(r.data), ramSize; got != want {
		t.Fatalf("RAM size = %d, want %d", got, want)
	}
}

func TestRAMParentChain(t *testing.T) {
	outer := NewRAM(nil)
	outer.Write(0x80, 0x55)
	inner := NewRAM(outer)
	inner.Write(0x80, 0xAA)

	if got, want := LatestDatabusVal(inner), uint8(0x55); got != want {
		t.Errorf("LatestDatabusVal = %.2X, want %.2X", got, want)
	}
}
