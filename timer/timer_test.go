package timer

import "testing"

func TestResetSetsStartingValue(t *testing.T) {
	tests := []struct {
		name     string
		addr     uint16
		interval uint32
	}{
		{"1x", writeInterval1, 1},
		{"8x", writeInterval8, 8},
		{"64x", writeInterval64, 64},
		{"1024x", writeInterval1024, 1024},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := Init(nil)
			c.Write(test.addr, 0x00)
			if got, want := c.currentInterval, test.interval; got != want {
				t.Errorf("currentInterval = %d, want %d", got, want)
			}
			if got, want := c.Read(readCurrent), uint8(0xFF); got != want {
				t.Errorf("Read(readCurrent) after reset = %.2X, want %.2X", got, want)
			}
		})
	}
}

func TestCountdown(t *testing.T) {
	c := Init(nil)
	c.Write(writeInterval8, 0x00)
	for i := 0; i < 8; i++ {
		c.Tick(1)
	}
	if got, want := c.Read(readCurrent), uint8(0xFE); got != want {
		t.Errorf("Read(readCurrent) after 8 ticks at 8x = %.2X, want %.2X", got, want)
	}
}

func TestCountdownSingleTick(t *testing.T) {
	// Equivalent to TestCountdown but posting the whole instruction's cycle
	// count in one Tick call, matching how the CPU's clock fan-out behaves.
	c := Init(nil)
	c.Write(writeInterval8, 0x00)
	c.Tick(8)
	if got, want := c.Read(readCurrent), uint8(0xFE); got != want {
		t.Errorf("Read(readCurrent) after Tick(8) at 8x = %.2X, want %.2X", got, want)
	}
}

func TestTickWrapsAround(t *testing.T) {
	c := Init(nil)
	c.Write(writeInterval1, 0x00) // currentTime = 0xFF, interval = 1
	c.Tick(0x101)                 // overruns by 2
	if got, want := c.currentTime, timerStart-2; got != want {
		t.Errorf("currentTime after overrun = %.2X, want %.2X", got, want)
	}
	if !c.overflowed {
		t.Error("expected overflowed to be set after a wraparound tick")
	}
}

func TestUnmappedAddressesReadZero(t *testing.T) {
	c := Init(nil)
	c.Write(writeInterval8, 0x00)
	if got := c.Read(0x0280); got != 0 {
		t.Errorf("Read(0x0280) = %.2X, want 0", got)
	}
}
