package cpu

import "github.com/thelolagemann/gbcore/pkg/bits"

func (c *CPU) executeArithmetic(ins Arithmetic) error {
	source := c.target(ins.Target)
	if source == nil {
		return &UnknownInstructionError{Instruction: ins}
	}

	switch ins.Op {
	case ADD:
		c.A = c.add(c.A, *source, false)
	case ADC:
		c.A = c.add(c.A, *source, true)
	default:
		return &UnknownInstructionError{Instruction: ins}
	}
	return nil
}

func (c *CPU) executeArithmetic16(ins Arithmetic16) error {
	source, ok := c.target16(ins.Source)
	if !ok {
		return &UnknownInstructionError{Instruction: ins}
	}

	switch ins.Op {
	case ADDHL:
		c.SetHL(c.addUint16(c.HL(), source))
	default:
		return &UnknownInstructionError{Instruction: ins}
	}
	return nil
}

// add is a helper function for adding two bytes together and
// setting the flags accordingly. The sum wraps at 8 bits, and
// is returned rather than stored so that callers choose the
// destination.
//
// Used by:
//
//	ADD A, n
//	ADC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(a, b uint8, shouldCarry bool) uint8 {
	carry := uint16(0)
	if shouldCarry && c.isFlagSet(FlagCarry) {
		carry = 1
	}

	sum := uint16(a) + uint16(b) + carry
	sumHalf := uint16(bits.LowNibble(a)) + uint16(bits.LowNibble(b)) + carry

	c.setFlags(uint8(sum) == 0, false, sumHalf > 0xF, sum > 0xFF)
	return uint8(sum)
}

// addUint16 is a helper function for adding two uint16 values together and
// setting the flags accordingly.
//
// Used by:
//
//	ADD HL, nn
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addUint16(a, b uint16) uint16 {
	sum := uint32(a) + uint32(b)
	c.setFlags(c.isFlagSet(FlagZero), false, (a&0xFFF)+(b&0xFFF) > 0xFFF, sum > 0xFFFF)
	return uint16(sum)
}
