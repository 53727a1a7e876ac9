package cpu

import (
	"errors"
	"fmt"
)

// ErrUnknownInstruction is matched by every error the core returns for
// an opcode or instruction it cannot execute.
var ErrUnknownInstruction = errors.New("unknown instruction")

// UnknownOpcodeError is returned when an opcode has no decoding.
type UnknownOpcodeError struct {
	Opcode uint8
	// PC is the address the opcode was fetched from. Only set by Step.
	PC uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}

func (e *UnknownOpcodeError) Is(err error) bool {
	return err == ErrUnknownInstruction
}

// UnknownInstructionError is returned when a decoded instruction has
// a family, operation or target the core does not implement.
type UnknownInstructionError struct {
	Instruction Instruction
}

func (e *UnknownInstructionError) Error() string {
	if e.Instruction == nil {
		return "unknown instruction <nil>"
	}
	return fmt.Sprintf("unknown %s instruction %s", e.Instruction.Family(), e.Instruction)
}

func (e *UnknownInstructionError) Is(err error) bool {
	return err == ErrUnknownInstruction
}
