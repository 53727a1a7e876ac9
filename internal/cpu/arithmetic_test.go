package cpu

import (
	"testing"
)

func TestInstruction_Arithmetic(t *testing.T) {
	// 0x80 - 0x87 (Except 0x86) - ADD A, r
	for i, regName := range registerNames {
		if regName == "(HL)" {
			continue
		}
		testInstruction(t, "ADD A, "+regName, 0x80+uint8(i), addRegisterTest(regName))
	}
	// 0x88 - 0x8F (Except 0x8E) - ADC A, r
	for i, regName := range registerNames {
		if regName == "(HL)" {
			continue
		}
		testInstruction(t, "ADC A, "+regName, 0x88+uint8(i), addCarryRegisterTest(regName))
	}
}

func TestInstruction_16BitArithmetic(t *testing.T) {
	// 0x09 - ADD HL, BC
	testInstruction(t, "ADD HL, BC", 0x09, addRegisterPairHLTest(func() { cpu.SetBC(0x0FFF) }))
	// 0x19 - ADD HL, DE
	testInstruction(t, "ADD HL, DE", 0x19, addRegisterPairHLTest(func() { cpu.SetDE(0x0FFF) }))
	// 0x29 - ADD HL, HL
	testInstruction(t, "ADD HL, HL", 0x29, func(t *testing.T, instr Instruction) {
		cpu.SetHL(0x8800)
		cpu.setFlag(FlagZero)

		if err := cpu.Execute(instr); err != nil {
			t.Fatal(err)
		}

		if cpu.HL() != 0x1000 {
			t.Errorf("Expected HL to be 0x1000, got 0x%04x", cpu.HL())
		}
		if !cpu.isFlagsSet(FlagZero, FlagHalfCarry, FlagCarry) || cpu.isFlagSet(FlagSubtract) {
			t.Errorf("Expected flags to be 0xB0, got 0x%02x", cpu.F)
		}
	})
	// 0x39 - ADD HL, SP
	testInstruction(t, "ADD HL, SP", 0x39, addRegisterPairHLTest(func() { cpu.SP = 0x0FFF }))
}

// TestALU_Add exercises the add primitive directly against the accumulator.
func TestALU_Add(t *testing.T) {
	tests := []struct {
		name  string
		a     uint8
		value uint8
		want  uint8
		flags Flags
	}{
		{"no flags", 0x09, 0x01, 0x0A, Flags{}},
		{"half carry", 0b1000_1111, 0b1, 0b1001_0000, Flags{HalfCarry: true}},
		{"carry and zero", 0xFF, 0x01, 0x00, Flags{Zero: true, HalfCarry: true, Carry: true}},
		{"carry without half carry", 0xF0, 0x10, 0x00, Flags{Zero: true, Carry: true}},
		{"carry with result", 0x80, 0x81, 0x01, Flags{Carry: true}},
		{"zero plus zero", 0x00, 0x00, 0x00, Flags{Zero: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.A = tt.a
			// subtract must be reset by an addition
			c.F = 0xF0

			result := c.add(c.A, tt.value, false)

			if result != tt.want {
				t.Errorf("expected result 0x%02X, got 0x%02X", tt.want, result)
			}
			if c.A != tt.a {
				t.Errorf("expected add not to write A, got 0x%02X", c.A)
			}
			if got := c.Flags(); got != tt.flags {
				t.Errorf("expected flags %+v, got %+v", tt.flags, got)
			}
		})
	}
}

// TestALU_AddExhaustive checks every pair of operands against the
// definitions of the four flags.
func TestALU_AddExhaustive(t *testing.T) {
	c := New()
	for a := 0; a <= 0xFF; a++ {
		for b := 0; b <= 0xFF; b++ {
			result := c.add(uint8(a), uint8(b), false)

			if result != uint8(a+b) {
				t.Fatalf("0x%02X+0x%02X: expected 0x%02X, got 0x%02X", a, b, uint8(a+b), result)
			}
			want := Flags{
				Zero:      uint8(a+b) == 0,
				HalfCarry: a&0xF+b&0xF > 0xF,
				Carry:     a+b > 0xFF,
			}
			if got := c.Flags(); got != want {
				t.Fatalf("0x%02X+0x%02X: expected flags %+v, got %+v", a, b, want, got)
			}
		}
	}
}

func TestALU_AddCarry(t *testing.T) {
	c := New()

	// carry flag clear behaves like ADD
	c.clearFlag(FlagCarry)
	if got := c.add(0x0E, 0x01, true); got != 0x0F || c.isFlagSet(FlagHalfCarry) {
		t.Errorf("expected 0x0F without half carry, got 0x%02X (F=0x%02X)", got, c.F)
	}

	// carry in crosses the nibble boundary
	c.setFlag(FlagCarry)
	if got := c.add(0x0E, 0x01, true); got != 0x10 || !c.isFlagSet(FlagHalfCarry) {
		t.Errorf("expected 0x10 with half carry, got 0x%02X (F=0x%02X)", got, c.F)
	}

	// carry in overflows
	c.setFlag(FlagCarry)
	if got := c.add(0xFF, 0x00, true); got != 0x00 || !c.isFlagsSet(FlagZero, FlagHalfCarry, FlagCarry) {
		t.Errorf("expected 0x00 with Z, H and C, got 0x%02X (F=0x%02X)", got, c.F)
	}

	// ADD ignores the carry flag
	c.setFlag(FlagCarry)
	if got := c.add(0x01, 0x01, false); got != 0x02 {
		t.Errorf("expected 0x02, got 0x%02X", got)
	}
}

func addRegisterTest(regName string) func(*testing.T, Instruction) {
	return func(t *testing.T, instr Instruction) {
		*cpu.registerMap(regName) = 0x01
		cpu.A = 0x09

		if err := cpu.Execute(instr); err != nil {
			t.Fatal(err)
		}

		if cpu.A != 0x0A && regName != "A" {
			t.Errorf("Expected A to be 0x0A, got 0x%02x", cpu.A)
		} else if regName == "A" && cpu.A != 0x12 {
			t.Errorf("Expected A to be 0x12, got 0x%02x", cpu.A)
		}

		if regName != "A" && cpu.F != 0 {
			t.Errorf("Expected flags to be 0, got 0x%02x", cpu.F)
		} else if regName == "A" && !cpu.isFlagsSet(FlagHalfCarry) {
			t.Errorf("Expected flags to be 0x20, got 0x%02x", cpu.F)
		}

		t.Run("Zero Flag", func(t *testing.T) {
			*cpu.registerMap(regName) = 0x80
			cpu.A = 0x80

			if err := cpu.Execute(instr); err != nil {
				t.Fatal(err)
			}

			if cpu.A != 0x00 || !cpu.isFlagsSet(FlagZero, FlagCarry) || cpu.isFlagSet(FlagHalfCarry) {
				t.Errorf("Expected flags to be 0x90, got 0x%02x", cpu.F)
			}
		})
	}
}

func addCarryRegisterTest(regName string) func(*testing.T, Instruction) {
	return func(t *testing.T, instr Instruction) {
		*cpu.registerMap(regName) = 0x01
		cpu.A = 0x09
		cpu.setFlag(FlagCarry)

		if err := cpu.Execute(instr); err != nil {
			t.Fatal(err)
		}

		if cpu.A != 0x0B && regName != "A" {
			t.Errorf("Expected A to be 0x0B, got 0x%02x", cpu.A)
		} else if regName == "A" && cpu.A != 0x13 {
			t.Errorf("Expected A to be 0x13, got 0x%02x", cpu.A)
		}
		if cpu.isFlagSet(FlagCarry) {
			t.Errorf("Expected carry to be consumed, got 0x%02x", cpu.F)
		}
	}
}

func addRegisterPairHLTest(setSource func()) func(*testing.T, Instruction) {
	return func(t *testing.T, instr Instruction) {
		cpu.SetHL(0x0001)
		setSource()
		cpu.setFlag(FlagSubtract)

		if err := cpu.Execute(instr); err != nil {
			t.Fatal(err)
		}

		if cpu.HL() != 0x1000 {
			t.Errorf("Expected HL to be 0x1000, got 0x%04x", cpu.HL())
		}
		if !cpu.isFlagSet(FlagHalfCarry) || cpu.isFlagsSet(FlagSubtract) || cpu.isFlagSet(FlagCarry) || cpu.isFlagSet(FlagZero) {
			t.Errorf("Expected flags to be 0x20, got 0x%02x", cpu.F)
		}

		t.Run("Carry Flag", func(t *testing.T) {
			cpu.SetHL(0xF001)
			setSource()

			if err := cpu.Execute(instr); err != nil {
				t.Fatal(err)
			}

			if cpu.HL() != 0x0000 || !cpu.isFlagsSet(FlagHalfCarry, FlagCarry) {
				t.Errorf("Expected HL 0x0000 with H and C, got 0x%04x (F=0x%02x)", cpu.HL(), cpu.F)
			}
		})
	}
}
