package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// Timers only move on TickTimers, never as a side effect of
// instruction cycles.
func TestTimerIsolation(t *testing.T) {
	m := testMachine(t)
	m.delayTimer = 30
	m.soundTimer = 30

	// JP $200, an infinite loop.
	assert.NoError(t, m.LoadProgram([]byte{0x12, 0x00}))

	for range 1000 {
		_, err := m.RunInstructionCycle()
		assert.NoError(t, err)
	}

	assert.Equal(t, byte(30), m.DelayTimer())
	assert.Equal(t, byte(30), m.SoundTimer())
}

// Timers decrement toward zero and stop there.
func TestTickTimersFloor(t *testing.T) {
	m := testMachine(t)
	m.delayTimer = 30
	m.soundTimer = 30

	for range 60 {
		m.TickTimers()
	}

	assert.Equal(t, byte(0), m.DelayTimer())
	assert.Equal(t, byte(0), m.SoundTimer())
}

func TestTickTimersBeepState(t *testing.T) {
	m := testMachine(t)
	m.soundTimer = 2

	effects := m.TickTimers()
	assert.True(t, effects.Beeping)

	effects = m.TickTimers()
	assert.False(t, effects.Beeping)
	assert.False(t, m.Beeping())
}

func TestFetchOutOfBounds(t *testing.T) {
	m := testMachine(t)
	m.pc = MaxAddress

	_, err := m.RunInstructionCycle()

	var oobErr *OutOfBoundsError
	assert.True(t, errors.As(err, &oobErr))
	assert.Equal(t, uint16(MaxAddress), oobErr.Address)
}

// An unknown opcode faults the cycle and leaves the machine state
// unmodified.
func TestUnknownOpcodeNoMutation(t *testing.T) {
	m := testMachine(t)
	m.v[1] = 0x42
	m.i = 0x300
	m.delayTimer = 5

	_, err := stepErr(m, 0x5AB1)

	var unknownErr *UnknownOpcodeError
	assert.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, uint16(0x5AB1), unknownErr.Word)

	assert.Equal(t, uint16(ProgramStart), m.PC())
	assert.Equal(t, byte(0x42), m.v[1])
	assert.Equal(t, uint16(0x300), m.I())
	assert.Equal(t, byte(5), m.DelayTimer())
}

func TestPeek(t *testing.T) {
	m := testMachine(t)
	assert.NoError(t, m.LoadProgram([]byte{0x6A, 0x42}))

	op, err := m.Peek()
	assert.NoError(t, err)
	assert.Equal(t, OpLoadByte, op.Kind)

	// Peek does not execute.
	assert.Equal(t, uint16(ProgramStart), m.PC())
	assert.Equal(t, byte(0), m.v[0xA])
}

// A short program: load two registers, add them, store the BCD
// digits and draw a font glyph. Exercises the full
// fetch-decode-execute path end to end.
func TestProgramExecution(t *testing.T) {
	m := testMachine(t)
	program := []byte{
		0x61, 0xFF, // LD V1, $FF
		0x62, 0x01, // LD V2, $01
		0x81, 0x24, // ADD V1, V2
		0xA3, 0x00, // LD I, $300
		0xF1, 0x33, // LD B, V1
		0xF2, 0x29, // LD F, V2
		0xD0, 0x05, // DRW V0, V0, $5
	}
	assert.NoError(t, m.LoadProgram(program))

	var effects StepEffects
	for range len(program) / 2 {
		var err error
		effects, err = m.RunInstructionCycle()
		assert.NoError(t, err)
	}

	// 0xFF + 0x01 wrapped to zero with carry.
	assert.Equal(t, byte(0), m.V(1))
	assert.Equal(t, byte(1), m.V(0xF))

	// BCD of the wrapped zero value.
	assert.Equal(t, byte(0), m.memory[0x300])
	assert.Equal(t, byte(0), m.memory[0x301])
	assert.Equal(t, byte(0), m.memory[0x302])

	// The glyph for digit 1 was drawn at the origin.
	assert.True(t, effects.Redraw)
	assert.Equal(t, uint16(fontGlyphSize), m.I())
	assert.True(t, m.Pixel(2, 0)) // 0x20 row: bit 2 of glyph "1"
}
