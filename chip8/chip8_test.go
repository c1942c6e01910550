package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNew(t *testing.T) {
	m := New()

	assert.Equal(t, uint16(ProgramStart), m.PC())
	assert.Equal(t, uint16(0), m.I())
	assert.Equal(t, byte(0), m.sp)
	assert.False(t, m.Beeping())

	// The font table is installed at address 0x000.
	for i, b := range Font {
		assert.Equal(t, b, m.memory[fontAddress+i])
	}
}

func TestNewWithConfigInvalidFont(t *testing.T) {
	_, err := NewWithConfig(Config{Font: []byte{0xF0, 0x90}})
	assert.True(t, err != nil)
}

func TestNewWithConfigCustomFont(t *testing.T) {
	font := make([]byte, len(Font))
	for i := range font {
		font[i] = byte(i)
	}

	m, err := NewWithConfig(Config{Font: font})
	assert.NoError(t, err)

	for i, b := range font {
		assert.Equal(t, b, m.memory[fontAddress+i])
	}
}

func TestLoadProgram(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"small program", 2, false},
		{"exact fit", memorySize - ProgramStart, false},
		{"one byte too large", memorySize - ProgramStart + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			program := make([]byte, tt.size)
			for i := range program {
				program[i] = byte(i)
			}

			err := m.LoadProgram(program)

			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrProgramTooLarge))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, program[0], m.memory[ProgramStart])
			assert.Equal(t, program[tt.size-1], m.memory[ProgramStart+tt.size-1])
		})
	}
}

func TestReset(t *testing.T) {
	m := testMachine(t)
	m.v[3] = 0x42
	m.i = 0x300
	m.delayTimer = 10
	m.soundTimer = 10
	m.display[5][5] = true
	m.SetKey(4, true)
	step(t, m, 0x1400)

	m.Reset()

	assert.Equal(t, uint16(ProgramStart), m.PC())
	assert.Equal(t, byte(0), m.v[3])
	assert.Equal(t, uint16(0), m.I())
	assert.Equal(t, byte(0), m.DelayTimer())
	assert.Equal(t, byte(0), m.SoundTimer())
	assert.False(t, m.Pixel(5, 5))
	assert.False(t, m.Key(4))
	assert.Equal(t, Font[0], m.memory[fontAddress])
}

func TestSetKeyMasking(t *testing.T) {
	m := New()

	// Only the low nibble of the key number is significant.
	m.SetKey(0x1A, true)

	assert.True(t, m.Key(0xA))
	assert.True(t, m.Key(0x1A))
	assert.False(t, m.Key(0x0))

	m.SetKey(0xA, false)
	assert.False(t, m.Key(0xA))
}

func TestPixelBounds(t *testing.T) {
	m := New()
	m.display[0][0] = true

	assert.True(t, m.Pixel(0, 0))
	assert.False(t, m.Pixel(-1, 0))
	assert.False(t, m.Pixel(0, -1))
	assert.False(t, m.Pixel(DisplayWidth, 0))
	assert.False(t, m.Pixel(0, DisplayHeight))
}

func TestDisplayCopy(t *testing.T) {
	m := New()
	m.display[2][3] = true

	display := m.Display()
	assert.True(t, display[2][3])

	// The returned buffer is a copy, mutating it does not write
	// through to the machine.
	display[2][3] = false
	assert.True(t, m.Pixel(3, 2))
}

func TestRegisterAccessors(t *testing.T) {
	m := New()
	m.v[0xC] = 0x42

	assert.Equal(t, byte(0x42), m.V(0xC))
	assert.Equal(t, byte(0x42), m.V(0x1C))
}
