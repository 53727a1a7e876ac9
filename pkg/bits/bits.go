// Package bits provides the bit and nibble helpers shared by the
// flag register and the ALU.
package bits

// Val returns the value of the bit at the given index.
func Val(b uint8, i uint8) uint8 {
	return (b >> i) & 1
}

// Reset resets the bit at the given index.
func Reset(b, i uint8) uint8 {
	return b &^ (1 << i)
}

// Set sets the bit at the given index.
func Set(b, i uint8) uint8 {
	return b | (1 << i)
}

// SetTo sets or resets the bit at the given index depending on v.
func SetTo(b, i uint8, v bool) uint8 {
	if v {
		return Set(b, i)
	}
	return Reset(b, i)
}

// Test tests the bit at the given index.
func Test(b, i uint8) bool {
	return (b>>i)&1 != 0
}

// FromBool returns the bool as a 0 or 1 placed at the given index.
func FromBool(v bool, i uint8) uint8 {
	if v {
		return 1 << i
	}
	return 0
}

// HighNibble returns b with the lower 4 bits cleared.
func HighNibble(b uint8) uint8 {
	return b & 0xF0
}

// LowNibble returns the lower 4 bits of b.
func LowNibble(b uint8) uint8 {
	return b & 0x0F
}
