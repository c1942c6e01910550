// Package app provides the main application helpers for the reference host.
package app

import (
	"github.com/retroenv/chip8go/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// PrintBanner prints the application banner with version information.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("chip8go - CHIP-8 virtual machine",
		log.String("version", buildinfo.Version(version, commit, date)),
	)
}

// PrintROMInfo prints the information about the loaded ROM.
func PrintROMInfo(logger *log.Logger, opts options.Program, romSize int) {
	if opts.Quiet {
		return
	}

	logger.Info("Running CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", romSize),
		log.Int("clock_hz", opts.ClockHz),
	)
}
