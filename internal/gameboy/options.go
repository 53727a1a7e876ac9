package gameboy

import (
	"github.com/thelolagemann/gbcore/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// Debug logs every instruction before it executes.
func Debug() Opt {
	return func(gb *GameBoy) {
		gb.debug = true
	}
}

func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// StepLimit bounds the number of instructions Run executes.
// Values below one leave the default in place.
func StepLimit(n int) Opt {
	return func(gb *GameBoy) {
		if n > 0 {
			gb.stepLimit = n
		}
	}
}

// AtEntryPoint skips the boot ROM by setting the CPU
// to the state it leaves behind: PC at 0x100 and SP at 0xFFFE.
func AtEntryPoint() Opt {
	return func(gb *GameBoy) {
		gb.CPU.PC = EntryPoint
		gb.CPU.SP = StackTop
	}
}
