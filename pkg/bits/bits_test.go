package bits

import "testing"

func TestBits(t *testing.T) {
	for i := uint8(0); i < 8; i++ {
		if !Test(Set(0, i), i) {
			t.Errorf("expected bit %d to be set", i)
		}
		if Test(Reset(0xFF, i), i) {
			t.Errorf("expected bit %d to be reset", i)
		}
		if Val(Set(0, i), i) != 1 {
			t.Errorf("expected bit %d to be 1", i)
		}
		if SetTo(0, i, true) != FromBool(true, i) {
			t.Errorf("SetTo and FromBool disagree for bit %d", i)
		}
		if SetTo(0xFF, i, false) != 0xFF^(1<<i) {
			t.Errorf("expected SetTo to clear bit %d", i)
		}
	}
}

func TestNibbles(t *testing.T) {
	if got := HighNibble(0xAB); got != 0xA0 {
		t.Errorf("expected 0xA0, got 0x%02X", got)
	}
	if got := LowNibble(0xAB); got != 0x0B {
		t.Errorf("expected 0x0B, got 0x%02X", got)
	}
}
