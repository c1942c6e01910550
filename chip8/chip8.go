package chip8

import (
	"fmt"
)

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: Interpreter and font data (512 bytes)
//	0x200-0xFFF: User program space (3584 bytes)
//
// The display buffer, stack, registers and timers are maintained
// separately from the 4KB main memory address space.
const (
	// ProgramStart is the memory address where CHIP-8 programs begin execution.
	ProgramStart = 0x200

	// MaxAddress is the highest valid address in CHIP-8 memory space (4KB total).
	MaxAddress = 0xFFF

	// DisplayWidth is the width of the monochrome display in pixels.
	DisplayWidth = 64

	// DisplayHeight is the height of the monochrome display in pixels.
	DisplayHeight = 32

	memorySize    = MaxAddress + 1
	registerCount = 16
	stackDepth    = 16
	keyCount      = 16

	fontAddress   = 0x000
	fontGlyphSize = 5

	// maxProgramSize is the largest program that fits between
	// ProgramStart and the end of memory.
	maxProgramSize = memorySize - ProgramStart
)

// DisplayBuffer is the 64x32 monochrome display bitmap.
// A set pixel is true. Row index first, column second.
type DisplayBuffer [DisplayHeight][DisplayWidth]bool

// Config contains the machine configuration.
type Config struct {
	// Font is the 80 byte hexadecimal digit sprite table installed at
	// address 0x000 on Reset. Defaults to the canonical CHIP-8 font.
	Font []byte

	// Entropy supplies random bytes for the RND instruction.
	// Defaults to a system seeded source.
	Entropy EntropySource
}

// DefaultConfig returns the default machine configuration.
func DefaultConfig() Config {
	return Config{
		Font:    Font[:],
		Entropy: NewEntropy(),
	}
}

// Machine contains the complete CHIP-8 interpreter state.
// It is the single owner of all mutable state; the only field written
// from outside the interpreter is the key state, via SetKey.
type Machine struct {
	memory [memorySize]byte
	v      [registerCount]byte
	i      uint16
	pc     uint16

	stack [stackDepth]uint16
	sp    byte

	delayTimer byte
	soundTimer byte

	display DisplayBuffer
	keys    [keyCount]bool

	font    [len(Font)]byte
	entropy EntropySource
}

// New returns a new machine with the default configuration,
// reset and ready for LoadProgram.
func New() *Machine {
	m, err := NewWithConfig(DefaultConfig())
	if err != nil {
		// DefaultConfig is always valid.
		panic(err)
	}
	return m
}

// NewWithConfig returns a new machine with the given configuration.
// Zero value config fields fall back to their defaults.
func NewWithConfig(cfg Config) (*Machine, error) {
	if cfg.Font == nil {
		cfg.Font = Font[:]
	}
	if len(cfg.Font) != len(Font) {
		return nil, fmt.Errorf("font table has %d bytes, expected %d", len(cfg.Font), len(Font))
	}
	if cfg.Entropy == nil {
		cfg.Entropy = NewEntropy()
	}

	m := &Machine{
		entropy: cfg.Entropy,
	}
	copy(m.font[:], cfg.Font)
	m.Reset()
	return m, nil
}

// Reset clears all interpreter state: memory, registers, stack,
// timers, display and keys. The font table is installed at address
// 0x000 and the program counter is set to ProgramStart.
func (m *Machine) Reset() {
	m.memory = [memorySize]byte{}
	m.v = [registerCount]byte{}
	m.i = 0
	m.pc = ProgramStart
	m.stack = [stackDepth]uint16{}
	m.sp = 0
	m.delayTimer = 0
	m.soundTimer = 0
	m.display = DisplayBuffer{}
	m.keys = [keyCount]bool{}

	copy(m.memory[fontAddress:], m.font[:])
}

// LoadProgram copies a raw CHIP-8 program into memory at ProgramStart.
// It fails with ErrProgramTooLarge if the program does not fit into
// the user program space.
func (m *Machine) LoadProgram(program []byte) error {
	if len(program) > maxProgramSize {
		return fmt.Errorf("%d byte program exceeds %d bytes of program space: %w",
			len(program), maxProgramSize, ErrProgramTooLarge)
	}

	copy(m.memory[ProgramStart:], program)
	return nil
}

// SetKey updates the pressed state of a keypad key (0-F).
// Only the low nibble of key is significant, mirroring the 16 line
// hardware keypad.
func (m *Machine) SetKey(key byte, down bool) {
	m.keys[key&0x0F] = down
}

// Key returns the pressed state of a keypad key (0-F).
func (m *Machine) Key(key byte) bool {
	return m.keys[key&0x0F]
}

// Display returns a copy of the display buffer for rendering.
func (m *Machine) Display() DisplayBuffer {
	return m.display
}

// Pixel returns the state of the display pixel at (x, y).
// Coordinates outside the display report an unset pixel.
func (m *Machine) Pixel(x, y int) bool {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return false
	}
	return m.display[y][x]
}

// Beeping reports whether the sound timer is running.
func (m *Machine) Beeping() bool {
	return m.soundTimer > 0
}

// DelayTimer returns the current delay timer value.
func (m *Machine) DelayTimer() byte {
	return m.delayTimer
}

// SoundTimer returns the current sound timer value.
func (m *Machine) SoundTimer() byte {
	return m.soundTimer
}

// PC returns the current program counter.
func (m *Machine) PC() uint16 {
	return m.pc
}

// I returns the current index register value.
func (m *Machine) I() uint16 {
	return m.i
}

// V returns the value of general purpose register Vx (0-F).
// Only the low nibble of reg is significant.
func (m *Machine) V(reg byte) byte {
	return m.v[reg&0x0F]
}
