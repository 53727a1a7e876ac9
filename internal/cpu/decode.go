package cpu

// InstructionSet maps each opcode to its decoded Instruction.
// Opcodes without an entry are unknown to the core.
var InstructionSet [256]Instruction

// DefineInstruction defines the instruction in the InstructionSet,
// with the provided opcode.
func DefineInstruction(opcode uint8, instruction Instruction) {
	InstructionSet[opcode] = instruction
}

// registerOrder is the order in which the 3-bit register field of
// an opcode selects its register. Slot 6 is (HL), a memory operand.
var registerOrder = [8]ArithmeticTarget{
	TargetB, TargetC, TargetD, TargetE, TargetH, TargetL, targetMemoryHL, TargetA,
}

// targetMemoryHL marks the (HL) slot, which has no ArithmeticTarget yet.
const targetMemoryHL ArithmeticTarget = 0xFF

func init() {
	DefineInstruction(0x00, Control{Op: NOP})

	// 0x80 - 0x8F ADD A, r / ADC A, r
	for i, target := range registerOrder {
		if target == targetMemoryHL {
			continue
		}
		DefineInstruction(0x80+uint8(i), Arithmetic{Op: ADD, Target: target})
		DefineInstruction(0x88+uint8(i), Arithmetic{Op: ADC, Target: target})
	}

	// 0x09, 0x19, 0x29, 0x39 ADD HL, rr
	for i, source := range []Target16{TargetBC, TargetDE, TargetHL, TargetSP} {
		DefineInstruction(uint8(i)<<4|0x09, Arithmetic16{Op: ADDHL, Source: source})
	}
}

// Decode translates a raw opcode into its Instruction.
func Decode(opcode uint8) (Instruction, error) {
	if ins := InstructionSet[opcode]; ins != nil {
		return ins, nil
	}
	return nil, &UnknownOpcodeError{Opcode: opcode}
}

// Opcode returns the opcode that encodes instruction, and
// whether instruction has an encoding at all.
func Opcode(instruction Instruction) (uint8, bool) {
	for opcode, ins := range InstructionSet {
		if ins != nil && ins == instruction {
			return uint8(opcode), true
		}
	}
	return 0, false
}
