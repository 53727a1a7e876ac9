// Package gameboy ties a CPU to a cartridge and drives it.
package gameboy

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/pkg/log"
)

const (
	// EntryPoint is where execution begins once the boot ROM has finished.
	EntryPoint = 0x0100
	// StackTop is the stack pointer left behind by the boot ROM.
	StackTop = 0xFFFE

	// DefaultStepLimit bounds Run when no StepLimit option is given.
	DefaultStepLimit = 1 << 16
)

// ErrNoCartridge is returned by Run when no image has been loaded.
var ErrNoCartridge = errors.New("no cartridge loaded")

// GameBoy represents a Game Boy session. It owns one CPU and the
// cartridge the CPU fetches its instructions from.
type GameBoy struct {
	CPU  *cpu.CPU
	Cart *cartridge.Cartridge

	log.Logger

	debug     bool
	stepLimit int
}

// NewGameBoy returns a new GameBoy running cart.
func NewGameBoy(cart *cartridge.Cartridge, opts ...Opt) *GameBoy {
	g := &GameBoy{
		CPU:       cpu.New(),
		Cart:      cart,
		Logger:    log.NewNullLogger(),
		stepLimit: DefaultStepLimit,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Run steps the CPU until the step limit is reached or an instruction
// fails. It returns the number of instructions executed. An unknown
// instruction is logged and returned, leaving PC at the faulting opcode.
func (g *GameBoy) Run() (int, error) {
	if g.Cart == nil || !g.Cart.Loaded() {
		return 0, ErrNoCartridge
	}

	g.Infof("running %s from 0x%04X", g.Cart.Title(), g.CPU.PC)

	steps := 0
	for ; steps < g.stepLimit; steps++ {
		if g.debug {
			g.trace()
		}

		if err := g.CPU.Step(g.Cart); err != nil {
			if errors.Is(err, cpu.ErrUnknownInstruction) {
				g.Errorf("halted after %d steps: %v", steps, err)
			}
			return steps, err
		}
	}

	g.Infof("step limit of %d reached at 0x%04X", g.stepLimit, g.CPU.PC)
	return steps, nil
}

// trace logs the instruction about to execute along with the CPU state.
func (g *GameBoy) trace() {
	opcode := g.Cart.Read(g.CPU.PC)
	ins, err := cpu.Decode(opcode)

	disassembly := fmt.Sprintf("db 0x%02X", opcode)
	if err == nil {
		disassembly = ins.String()
	}
	g.Debugf("%04X: %-12s %s", g.CPU.PC, disassembly, &g.CPU.Registers)
}
