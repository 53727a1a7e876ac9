package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/gameboy"
	"github.com/thelolagemann/gbcore/pkg/log"
	"github.com/thelolagemann/gbcore/pkg/report"
)

var errUsage = errors.New("usage: gbcore [-steps N] [-debug] [-quiet] <rom>")

func main() {
	var logger = log.New()

	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		logger.Fatal(err.Error())
	}
}

// run parses args, prints the header report for the ROM to stdout and,
// if asked to, executes the ROM from its entry point. Only configuration
// errors are returned; a faulty header or an unknown instruction is
// logged and run carries on.
func run(args []string, stdout io.Writer, logger log.Logger) error {
	flags := flag.NewFlagSet("gbcore", flag.ContinueOnError)
	flags.SetOutput(stdout)

	romFile := flags.String("rom", "", "The rom file to load")
	steps := flags.Int("steps", 0, "The number of instructions to execute, 0 only prints the header")
	debug := flags.Bool("debug", false, "Log every instruction as it executes")
	quiet := flags.Bool("quiet", false, "Only print the header report")

	if err := flags.Parse(args); err != nil {
		return err
	}
	if *romFile == "" {
		*romFile = flags.Arg(0)
	}
	if *romFile == "" {
		return errUsage
	}

	cart := cartridge.New()
	if err := cart.ReadFile(*romFile); err != nil {
		return err
	}

	if err := report.Write(stdout, cart); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	sessionLog := logger
	if *quiet {
		sessionLog = log.NewNullLogger()
	}

	if err := cart.Validate(); err != nil {
		var merr *multierror.Error
		if errors.As(err, &merr) {
			for _, e := range merr.Errors {
				sessionLog.Errorf("%v", e)
			}
		} else {
			sessionLog.Errorf("%v", err)
		}
	}

	if *steps <= 0 {
		return nil
	}

	opts := []gameboy.Opt{
		gameboy.WithLogger(sessionLog),
		gameboy.AtEntryPoint(),
		gameboy.StepLimit(*steps),
	}
	if *debug {
		opts = append(opts, gameboy.Debug())
	}
	gb := gameboy.NewGameBoy(cart, opts...)

	executed, err := gb.Run()
	if err != nil && !errors.Is(err, cpu.ErrUnknownInstruction) {
		return err
	}
	sessionLog.Infof("executed %d instructions, %s", executed, gb.CPU)
	return nil
}
