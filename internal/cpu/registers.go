package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/pkg/bits"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

// Register represents a GB Register which is used to hold an 8-bit value.
// The CPU has 8 registers: A, B, C, D, E, H, L, and F. The F register is
// special in that it is used to hold the flags.
type Register = uint8

// Pair selects one of the 16-bit register pairs.
type Pair uint8

const (
	PairAF Pair = iota
	PairBC
	PairDE
	PairHL
)

func (p Pair) String() string {
	switch p {
	case PairAF:
		return "AF"
	case PairBC:
		return "BC"
	case PairDE:
		return "DE"
	case PairHL:
		return "HL"
	}
	return fmt.Sprintf("Pair(%d)", uint8(p))
}

// Registers represents the GB CPU registers. The zero value
// is a zeroed register file.
type Registers struct {
	A Register
	F Register
	B Register
	C Register
	D Register
	E Register
	H Register
	L Register
}

// Pair returns the value of the given RegisterPair as an uint16, with
// the high register in bits 15-8. The low nibble of AF is always 0.
func (r *Registers) Pair(p Pair) uint16 {
	switch p {
	case PairAF:
		return utils.BytesToUint16(r.A, bits.HighNibble(r.F))
	case PairBC:
		return utils.BytesToUint16(r.B, r.C)
	case PairDE:
		return utils.BytesToUint16(r.D, r.E)
	case PairHL:
		return utils.BytesToUint16(r.H, r.L)
	}
	panic(fmt.Sprintf("invalid register pair: %d", p))
}

// SetPair sets the value of the given RegisterPair. When setting AF
// the lower 4 bits are discarded, as F has no use for them.
func (r *Registers) SetPair(p Pair, value uint16) {
	high, low := utils.Uint16ToBytes(value)
	switch p {
	case PairAF:
		r.A, r.F = high, bits.HighNibble(low)
	case PairBC:
		r.B, r.C = high, low
	case PairDE:
		r.D, r.E = high, low
	case PairHL:
		r.H, r.L = high, low
	default:
		panic(fmt.Sprintf("invalid register pair: %d", p))
	}
}

func (r *Registers) AF() uint16 { return r.Pair(PairAF) }
func (r *Registers) BC() uint16 { return r.Pair(PairBC) }
func (r *Registers) DE() uint16 { return r.Pair(PairDE) }
func (r *Registers) HL() uint16 { return r.Pair(PairHL) }

func (r *Registers) SetAF(value uint16) { r.SetPair(PairAF, value) }
func (r *Registers) SetBC(value uint16) { r.SetPair(PairBC, value) }
func (r *Registers) SetDE(value uint16) { r.SetPair(PairDE, value) }
func (r *Registers) SetHL(value uint16) { r.SetPair(PairHL, value) }

// String returns a one line dump of the registers.
func (r *Registers) String() string {
	return fmt.Sprintf("A: %02x F: %02x B: %02x C: %02x D: %02x E: %02x H: %02x L: %02x", r.A, r.F, r.B, r.C, r.D, r.E, r.H, r.L)
}
