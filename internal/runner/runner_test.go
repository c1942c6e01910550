package runner

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/retroenv/chip8go/chip8"
	"github.com/retroenv/chip8go/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func testOptions() options.Program {
	opts := options.NewProgram()
	opts.ClockHz = 5000
	return opts
}

func TestRunCycleBudget(t *testing.T) {
	machine := chip8.New()
	// JP $200, an infinite loop.
	assert.NoError(t, machine.LoadProgram([]byte{0x12, 0x00}))

	opts := testOptions()
	opts.Cycles = 20

	r := New(log.NewTestLogger(t), machine, opts, &bytes.Buffer{})
	err := r.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, uint16(chip8.ProgramStart), machine.PC())
}

func TestRunFault(t *testing.T) {
	machine := chip8.New()
	// Empty program space: the first fetch reads $0000, an unknown
	// opcode, which must stop the run.
	r := New(log.NewTestLogger(t), machine, testOptions(), &bytes.Buffer{})

	err := r.Run(context.Background())

	var unknownErr *chip8.UnknownOpcodeError
	assert.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, uint16(0), unknownErr.Word)
}

func TestRunCancellation(t *testing.T) {
	machine := chip8.New()
	assert.NoError(t, machine.LoadProgram([]byte{0x12, 0x00}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New(log.NewTestLogger(t), machine, testOptions(), &bytes.Buffer{})
	err := r.Run(ctx)

	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRunDumpScreen(t *testing.T) {
	machine := chip8.New()
	// DRW V0, V0, $5 draws the font glyph for digit 0 at the origin,
	// since both I and V0 are zero after reset.
	assert.NoError(t, machine.LoadProgram([]byte{0xD0, 0x05}))

	opts := testOptions()
	opts.Cycles = 1
	opts.DumpScreen = true

	var buf bytes.Buffer
	r := New(log.NewTestLogger(t), machine, opts, &buf)

	assert.NoError(t, r.Run(context.Background()))
	assert.Contains(t, buf.String(), "####")
}
