package cpu

import "fmt"

// Family groups instructions by the kind of work they do. Execute
// dispatches on the family first and the operand target second.
type Family uint8

const (
	FamilyControl Family = iota
	FamilyArithmetic
	FamilyLoad
	FamilyJump
	FamilyBit
)

func (f Family) String() string {
	switch f {
	case FamilyControl:
		return "control"
	case FamilyArithmetic:
		return "arithmetic"
	case FamilyLoad:
		return "load"
	case FamilyJump:
		return "jump"
	case FamilyBit:
		return "bit"
	}
	return fmt.Sprintf("Family(%d)", uint8(f))
}

// Instruction is a decoded instruction, independent of its binary
// encoding. The concrete types below are the only implementations.
type Instruction interface {
	// Family returns the instruction family used for dispatch.
	Family() Family
	// Length returns the encoded length in bytes, including the opcode.
	Length() uint8

	String() string
}

// ControlOp is an operation of the control family.
type ControlOp uint8

const (
	NOP ControlOp = iota
)

// Control is a CPU control instruction that takes no operand.
type Control struct {
	Op ControlOp
}

func (Control) Family() Family { return FamilyControl }
func (Control) Length() uint8  { return 1 }

func (i Control) String() string {
	switch i.Op {
	case NOP:
		return "NOP"
	}
	return fmt.Sprintf("CONTROL(%d)", uint8(i.Op))
}

// ArithmeticOp is an 8-bit operation of the arithmetic family.
type ArithmeticOp uint8

const (
	ADD ArithmeticOp = iota
	ADC
)

func (o ArithmeticOp) String() string {
	switch o {
	case ADD:
		return "ADD"
	case ADC:
		return "ADC"
	}
	return fmt.Sprintf("ArithmeticOp(%d)", uint8(o))
}

// ArithmeticTarget selects the register supplying the second operand
// of an 8-bit arithmetic instruction.
type ArithmeticTarget uint8

const (
	TargetA ArithmeticTarget = iota
	TargetB
	TargetC
	TargetD
	TargetE
	TargetH
	TargetL
)

var targetNames = [...]string{"A", "B", "C", "D", "E", "H", "L"}

func (t ArithmeticTarget) String() string {
	if int(t) < len(targetNames) {
		return targetNames[t]
	}
	return fmt.Sprintf("ArithmeticTarget(%d)", uint8(t))
}

// Arithmetic is an 8-bit arithmetic instruction with the accumulator
// as destination, e.g. ADD A, C.
type Arithmetic struct {
	Op     ArithmeticOp
	Target ArithmeticTarget
}

func (Arithmetic) Family() Family { return FamilyArithmetic }
func (Arithmetic) Length() uint8  { return 1 }

func (i Arithmetic) String() string {
	return fmt.Sprintf("%s A, %s", i.Op, i.Target)
}

// Arithmetic16Op is a 16-bit operation of the arithmetic family.
type Arithmetic16Op uint8

const (
	ADDHL Arithmetic16Op = iota
)

// Target16 selects the 16-bit source of a 16-bit arithmetic instruction.
type Target16 uint8

const (
	TargetBC Target16 = iota
	TargetDE
	TargetHL
	TargetSP
)

func (t Target16) String() string {
	switch t {
	case TargetBC:
		return "BC"
	case TargetDE:
		return "DE"
	case TargetHL:
		return "HL"
	case TargetSP:
		return "SP"
	}
	return fmt.Sprintf("Target16(%d)", uint8(t))
}

// Arithmetic16 is a 16-bit arithmetic instruction, e.g. ADD HL, BC.
type Arithmetic16 struct {
	Op     Arithmetic16Op
	Source Target16
}

func (Arithmetic16) Family() Family { return FamilyArithmetic }
func (Arithmetic16) Length() uint8  { return 1 }

func (i Arithmetic16) String() string {
	switch i.Op {
	case ADDHL:
		return "ADD HL, " + i.Source.String()
	}
	return fmt.Sprintf("ARITHMETIC16(%d), %s", uint8(i.Op), i.Source)
}
