// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/chip8go/internal/options"
)

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads a raw CHIP-8 ROM file. The format is the historical
// binary instruction stream with no header and no metadata, so the
// file content is the program bytes.
func (l *Loader) Load(opts options.Program) ([]byte, error) {
	program, err := os.ReadFile(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", opts.Input, err)
	}

	if len(program) == 0 {
		return nil, errors.New("ROM file is empty")
	}
	return program, nil
}
