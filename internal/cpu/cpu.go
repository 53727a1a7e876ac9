// Package cpu implements the Sharp SM83 register file, the typed
// instruction set and the execution core of the Game Boy CPU.
package cpu

import "fmt"

// Memory is the byte source the CPU fetches instructions from.
type Memory interface {
	Read(address uint16) uint8
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	executed uint64
}

// New creates a new CPU with zeroed registers, PC and SP.
func New() *CPU {
	return &CPU{}
}

// Idle returns true until the first instruction has executed.
func (c *CPU) Idle() bool {
	return c.executed == 0
}

// Executed returns the number of instructions executed so far.
func (c *CPU) Executed() uint64 {
	return c.executed
}

// Step fetches the instruction at PC from m, advances PC past it
// and executes it. On failure PC is left at the faulting opcode.
func (c *CPU) Step(m Memory) error {
	pc := c.PC
	opcode := c.readInstruction(m)

	instruction, err := Decode(opcode)
	if err != nil {
		c.PC = pc
		if unknown, ok := err.(*UnknownOpcodeError); ok {
			unknown.PC = pc
		}
		return err
	}

	// skip any operand bytes
	c.PC += uint16(instruction.Length() - 1)

	if err := c.Execute(instruction); err != nil {
		c.PC = pc
		return fmt.Errorf("0x%04X: %w", pc, err)
	}
	return nil
}

// readInstruction reads the next instruction from memory.
func (c *CPU) readInstruction(m Memory) uint8 {
	value := m.Read(c.PC)
	c.PC++
	return value
}

// Execute executes a single decoded instruction. Instructions the core
// does not implement return an error matching ErrUnknownInstruction,
// and leave the CPU untouched.
func (c *CPU) Execute(instruction Instruction) error {
	var err error
	switch ins := instruction.(type) {
	case Control:
		err = c.executeControl(ins)
	case Arithmetic:
		err = c.executeArithmetic(ins)
	case Arithmetic16:
		err = c.executeArithmetic16(ins)
	default:
		err = &UnknownInstructionError{Instruction: instruction}
	}
	if err != nil {
		return err
	}

	c.executed++
	return nil
}

func (c *CPU) executeControl(ins Control) error {
	switch ins.Op {
	case NOP:
		return nil
	}
	return &UnknownInstructionError{Instruction: ins}
}

// target returns a pointer to the register selected by t.
func (c *CPU) target(t ArithmeticTarget) *Register {
	switch t {
	case TargetA:
		return &c.A
	case TargetB:
		return &c.B
	case TargetC:
		return &c.C
	case TargetD:
		return &c.D
	case TargetE:
		return &c.E
	case TargetH:
		return &c.H
	case TargetL:
		return &c.L
	}
	return nil
}

// target16 returns the value of the 16-bit source selected by t.
func (c *CPU) target16(t Target16) (uint16, bool) {
	switch t {
	case TargetBC:
		return c.BC(), true
	case TargetDE:
		return c.DE(), true
	case TargetHL:
		return c.HL(), true
	case TargetSP:
		return c.SP, true
	}
	return 0, false
}

func (c *CPU) String() string {
	return fmt.Sprintf("%s SP: %04x PC: %04x", &c.Registers, c.SP, c.PC)
}
