package chip8

// RunInstructionCycle performs one fetch-decode-execute cycle and
// returns the externally observable effects. It fails with
// OutOfBoundsError when the program counter does not address a full
// instruction word, and passes decode and execution faults through
// verbatim. The machine state is unmodified on error.
//
// The cycle performs no timer handling and no pacing; the host calls
// it at the desired CPU rate and calls TickTimers independently at
// 60 Hz.
func (m *Machine) RunInstructionCycle() (StepEffects, error) {
	word, err := m.fetch()
	if err != nil {
		return StepEffects{}, err
	}

	op, err := Decode(word)
	if err != nil {
		return StepEffects{}, err
	}

	return m.execute(op)
}

// TickTimers decrements the delay and sound timers by one if they are
// nonzero. It is called by the host on a fixed 60 Hz tick boundary,
// independent of the instruction rate. The returned effects report
// the beep state after the tick so hosts can drive audio from the
// timer loop.
func (m *Machine) TickTimers() StepEffects {
	if m.delayTimer > 0 {
		m.delayTimer--
	}
	if m.soundTimer > 0 {
		m.soundTimer--
	}

	return StepEffects{Beeping: m.soundTimer > 0}
}

// Peek decodes the instruction at the current program counter without
// executing it, for hosts that trace execution.
func (m *Machine) Peek() (Operation, error) {
	word, err := m.fetch()
	if err != nil {
		return Operation{}, err
	}
	return Decode(word)
}

// fetch reads the big-endian instruction word at the program counter.
func (m *Machine) fetch() (uint16, error) {
	if int(m.pc)+1 >= memorySize {
		return 0, &OutOfBoundsError{Address: m.pc}
	}
	return uint16(m.memory[m.pc])<<8 | uint16(m.memory[m.pc+1]), nil
}
