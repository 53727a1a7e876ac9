package cpu

import "github.com/thelolagemann/gbcore/pkg/bits"

// Flag is the bit position of a flag in the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// Flags is the decoded form of the F register. Only the upper
// nibble of F carries flags, the lower nibble is always 0.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// FlagsFromByte decodes the upper nibble of b into Flags.
func FlagsFromByte(b uint8) Flags {
	return Flags{
		Zero:      bits.Test(b, FlagZero),
		Subtract:  bits.Test(b, FlagSubtract),
		HalfCarry: bits.Test(b, FlagHalfCarry),
		Carry:     bits.Test(b, FlagCarry),
	}
}

// Byte encodes the flags into their F register form.
func (f Flags) Byte() uint8 {
	return bits.FromBool(f.Zero, FlagZero) |
		bits.FromBool(f.Subtract, FlagSubtract) |
		bits.FromBool(f.HalfCarry, FlagHalfCarry) |
		bits.FromBool(f.Carry, FlagCarry)
}

// Flags returns the decoded F register.
func (r *Registers) Flags() Flags {
	return FlagsFromByte(r.F)
}

// SetFlags replaces the F register with the encoded flags.
func (r *Registers) SetFlags(f Flags) {
	r.F = f.Byte()
}

// setFlags sets all four flags at once.
func (r *Registers) setFlags(zero, subtract, halfCarry, carry bool) {
	r.F = Flags{zero, subtract, halfCarry, carry}.Byte()
}

// clearFlag clears a flag from the F register.
func (r *Registers) clearFlag(flag Flag) {
	r.F = bits.Reset(r.F, flag)
}

// setFlag sets a flag in the F register.
func (r *Registers) setFlag(flag Flag) {
	r.F = bits.Set(r.F, flag)
}

// isFlagSet returns true if the given flag is set.
func (r *Registers) isFlagSet(flag Flag) bool {
	return bits.Test(r.F, flag)
}

// isFlagsSet returns true if all the given flags are set.
func (r *Registers) isFlagsSet(flags ...Flag) bool {
	for _, flag := range flags {
		if !r.isFlagSet(flag) {
			return false
		}
	}
	return true
}

// isFlagsNotSet returns true if none of the given flags are set.
func (r *Registers) isFlagsNotSet(flags ...Flag) bool {
	for _, flag := range flags {
		if r.isFlagSet(flag) {
			return false
		}
	}
	return true
}
