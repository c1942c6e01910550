// Package chip8 implements the CHIP-8 virtual machine core.
//
// # Overview
//
// CHIP-8 is an interpreted bytecode format from the 1970s, widely used
// as a target for simple games. This package provides the interpreter
// only: machine state, instruction decoding, and the per-cycle state
// transition. Rendering, audio output, physical key polling, and ROM
// file handling are host responsibilities.
//
// # Memory Layout
//
// The machine has 4KB of memory (0x000-0xFFF):
//   - 0x000-0x1FF: Interpreter area; the font table is installed at 0x000
//   - 0x200-0xFFF: User program and data area
//
// Programs are loaded at ProgramStart (0x200), the address where
// execution begins after Reset.
//
// # Execution Model
//
// The host drives the machine through two independent operations:
//
//	effects, err := m.RunInstructionCycle() // one fetch-decode-execute step
//	m.TickTimers()                          // fixed 60 Hz timer decrement
//
// Instruction rate (historically ~500-1000 Hz) and timer rate (60 Hz)
// are deliberately decoupled; calling TickTimers from the instruction
// loop produces wrong game timing.
//
// # Usage Example
//
//	m := chip8.New()
//	if err := m.LoadProgram(rom); err != nil {
//		return fmt.Errorf("loading program: %w", err)
//	}
//	for {
//		effects, err := m.RunInstructionCycle()
//		if err != nil {
//			return fmt.Errorf("executing instruction: %w", err)
//		}
//		if effects.Redraw {
//			render(m.Display())
//		}
//	}
//
// # Failure Modes
//
// All faults are terminal for the cycle that raised them and are
// returned verbatim to the host: unknown opcodes, call stack overflow
// and underflow, out of bounds memory access, and entropy source
// failures. The machine never recovers or retries internally.
//
// # Concurrency
//
// A Machine is not safe for concurrent use. The design assumes a
// single goroutine stepping the machine; key state may be updated
// between cycles by the same goroutine that drives execution.
package chip8
