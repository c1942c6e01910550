// Package main implements the reference host for the chip8go virtual
// machine: a headless runner that loads a ROM and drives the
// interpreter at the configured rates.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/chip8go/chip8"
	"github.com/retroenv/chip8go/internal/app"
	"github.com/retroenv/chip8go/internal/cli"
	"github.com/retroenv/chip8go/internal/config"
	"github.com/retroenv/chip8go/internal/loader"
	"github.com/retroenv/chip8go/internal/options"
	"github.com/retroenv/chip8go/internal/runner"
	retroapp "github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := retroapp.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			app.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	// Tracing logs every instruction at debug level.
	logger := config.CreateLogger(opts.Debug || opts.Trace, opts.Quiet)
	app.PrintBanner(logger, opts, version, commit, date)

	if err := run(ctx, logger, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Execution cancelled")
			return
		}
		logger.Error("Running ROM failed", log.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	rom, err := loader.New().Load(opts)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	cfg := chip8.DefaultConfig()
	if opts.Seed != 0 {
		cfg.Entropy = chip8.NewSeededEntropy(opts.Seed)
	}

	machine, err := chip8.NewWithConfig(cfg)
	if err != nil {
		return fmt.Errorf("creating machine: %w", err)
	}
	if err := machine.LoadProgram(rom); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	app.PrintROMInfo(logger, opts, len(rom))

	return runner.New(logger, machine, opts, os.Stdout).Run(ctx)
}
