package chip8

import (
	"errors"
	"fmt"
)

// Sentinel errors for faults that carry no payload.
// All interpreter faults are terminal for the cycle that raised them;
// the host decides whether to halt, reset, or display diagnostics.
var (
	// ErrProgramTooLarge is returned by LoadProgram when the program
	// does not fit between ProgramStart and the end of memory.
	ErrProgramTooLarge = errors.New("program too large")

	// ErrStackOverflow is returned when a CALL exceeds the 16 level
	// call stack.
	ErrStackOverflow = errors.New("call stack overflow")

	// ErrStackUnderflow is returned when a RET executes with an empty
	// call stack.
	ErrStackUnderflow = errors.New("call stack underflow")
)

// UnknownOpcodeError is returned when an instruction word matches no
// known opcode pattern. Unknown opcodes are never skipped silently,
// since that would mask ROM compatibility bugs.
type UnknownOpcodeError struct {
	Word uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode $%04X", e.Word)
}

// OutOfBoundsError is returned when an instruction fetch or a memory
// access through the index register falls outside the 4KB address
// space.
type OutOfBoundsError struct {
	Address uint16
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("memory access out of bounds at $%04X", e.Address)
}

// EntropySourceError is returned when the injected entropy source
// fails while executing a RND instruction. The failure is surfaced
// instead of defaulting to zero so host supplied source problems are
// not misdiagnosed as interpreter bugs.
type EntropySourceError struct {
	Err error
}

func (e *EntropySourceError) Error() string {
	return fmt.Sprintf("reading entropy source: %v", e.Err)
}

func (e *EntropySourceError) Unwrap() error {
	return e.Err
}
