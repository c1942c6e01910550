// Package runner drives the virtual machine at the configured rates.
package runner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/retroenv/chip8go/chip8"
	"github.com/retroenv/chip8go/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// timerRate is the fixed rate of the delay and sound timers.
// It is independent of the CPU instruction rate; coupling the two is
// a classic emulator bug that breaks game timing.
const timerRate = 60

// Runner executes a loaded machine until a fault, cancellation, or an
// exhausted cycle budget.
type Runner struct {
	logger  *log.Logger
	machine *chip8.Machine
	opts    options.Program
	out     io.Writer

	beeping bool
}

// New creates a new runner. The writer receives the display dump when
// the dump option is set.
func New(logger *log.Logger, machine *chip8.Machine, opts options.Program, out io.Writer) *Runner {
	return &Runner{
		logger:  logger,
		machine: machine,
		opts:    opts,
		out:     out,
	}
}

// Run executes instruction cycles at the configured CPU clock and
// ticks the timers at the fixed 60 Hz rate until the context is
// cancelled, the machine faults, or the cycle budget is exhausted.
// Interpreter faults are returned verbatim.
func (r *Runner) Run(ctx context.Context) error {
	cpuTick := time.NewTicker(time.Second / time.Duration(r.opts.ClockHz))
	defer cpuTick.Stop()

	timerTick := time.NewTicker(time.Second / timerRate)
	defer timerTick.Stop()

	cycles := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-timerTick.C:
			effects := r.machine.TickTimers()
			r.observeBeep(effects.Beeping)

		case <-cpuTick.C:
			if err := r.step(); err != nil {
				return err
			}

			cycles++
			if r.opts.Cycles > 0 && cycles >= r.opts.Cycles {
				r.logger.Debug("Cycle budget exhausted", log.Int("cycles", cycles))
				r.dumpScreen()
				return nil
			}
		}
	}
}

// step runs one instruction cycle, tracing it when enabled.
func (r *Runner) step() error {
	if r.opts.Trace {
		if op, err := r.machine.Peek(); err == nil {
			r.logger.Debug("Executing",
				log.Hex("pc", r.machine.PC()),
				log.String("op", op.String()),
			)
		}
	}

	pc := r.machine.PC()
	effects, err := r.machine.RunInstructionCycle()
	if err != nil {
		return fmt.Errorf("executing instruction at $%04X: %w", pc, err)
	}

	r.observeBeep(effects.Beeping)
	return nil
}

// observeBeep logs beep state edges. Binding an audio device is the
// host application's responsibility.
func (r *Runner) observeBeep(beeping bool) {
	if beeping == r.beeping {
		return
	}
	r.beeping = beeping

	if beeping {
		r.logger.Debug("Beep started")
	} else {
		r.logger.Debug("Beep stopped")
	}
}

// dumpScreen writes the display buffer as text if requested.
func (r *Runner) dumpScreen() {
	if !r.opts.DumpScreen {
		return
	}
	_, _ = fmt.Fprint(r.out, Render(r.machine.Display()))
}
