package chip8

// StepEffects reports the externally observable side effects of one
// instruction cycle or timer tick.
type StepEffects struct {
	// Redraw reports that the display buffer changed and the host
	// should render it.
	Redraw bool

	// Beeping reports that the sound timer is running after the step.
	Beeping bool
}

// spriteWidth is the fixed width of CHIP-8 sprites in pixels.
const spriteWidth = 8

// execute applies one decoded operation to the machine state.
// The program counter advances by 2 for all instructions except:
// jump, call and return set it explicitly; skip instructions advance
// by 4 on a true condition; the key wait instruction holds it at the
// current instruction until a key is pressed.
//
// On error the machine state is left unmodified.
func (m *Machine) execute(op Operation) (StepEffects, error) {
	var effects StepEffects
	next := m.pc + 2

	switch op.Kind {
	case OpCls:
		m.display = DisplayBuffer{}
		effects.Redraw = true

	case OpRet:
		if m.sp == 0 {
			return StepEffects{}, ErrStackUnderflow
		}
		m.sp--
		next = m.stack[m.sp]

	case OpJump:
		next = op.NNN

	case OpCall:
		if m.sp == stackDepth {
			return StepEffects{}, ErrStackOverflow
		}
		m.stack[m.sp] = next
		m.sp++
		next = op.NNN

	case OpJumpV0:
		next = op.NNN + uint16(m.v[0])

	case OpSkipEqualByte:
		if m.v[op.X] == op.NN {
			next += 2
		}

	case OpSkipNotEqualByte:
		if m.v[op.X] != op.NN {
			next += 2
		}

	case OpSkipEqualRegister:
		if m.v[op.X] == m.v[op.Y] {
			next += 2
		}

	case OpSkipNotEqualRegister:
		if m.v[op.X] != m.v[op.Y] {
			next += 2
		}

	case OpLoadByte:
		m.v[op.X] = op.NN

	case OpAddByte:
		m.v[op.X] += op.NN

	case OpLoadRegister, OpOr, OpAnd, OpXor, OpAddRegister,
		OpSub, OpShiftRight, OpSubN, OpShiftLeft:
		m.executeRegisterOp(op)

	case OpLoadIndex:
		m.i = op.NNN

	case OpRandom:
		b, err := m.entropy.ReadByte()
		if err != nil {
			return StepEffects{}, &EntropySourceError{Err: err}
		}
		m.v[op.X] = b & op.NN

	case OpDraw:
		if err := m.executeDraw(op); err != nil {
			return StepEffects{}, err
		}
		effects.Redraw = true

	case OpSkipKeyPressed:
		if m.keys[m.v[op.X]&0x0F] {
			next += 2
		}

	case OpSkipKeyNotPressed:
		if !m.keys[m.v[op.X]&0x0F] {
			next += 2
		}

	case OpWaitKey:
		// Busy wait: the program counter is held at this instruction
		// until a cycle observes a pressed key.
		if key, ok := m.firstPressedKey(); ok {
			m.v[op.X] = key
		} else {
			next = m.pc
		}

	case OpLoadFromDelayTimer:
		m.v[op.X] = m.delayTimer

	case OpLoadIntoDelayTimer:
		m.delayTimer = m.v[op.X]

	case OpLoadIntoSoundTimer:
		m.soundTimer = m.v[op.X]

	case OpAddIndex:
		m.i += uint16(m.v[op.X])

	case OpLoadFontAddress:
		m.i = fontAddress + fontGlyphSize*uint16(m.v[op.X]&0x0F)

	case OpStoreBCD:
		if err := m.checkIndexRange(3); err != nil {
			return StepEffects{}, err
		}
		value := m.v[op.X]
		m.memory[m.i] = value / 100 % 10
		m.memory[m.i+1] = value / 10 % 10
		m.memory[m.i+2] = value % 10

	case OpStoreRegisters:
		if err := m.checkIndexRange(uint16(op.X) + 1); err != nil {
			return StepEffects{}, err
		}
		for reg := byte(0); reg <= op.X; reg++ {
			m.memory[m.i+uint16(reg)] = m.v[reg]
		}

	case OpLoadRegisters:
		if err := m.checkIndexRange(uint16(op.X) + 1); err != nil {
			return StepEffects{}, err
		}
		for reg := byte(0); reg <= op.X; reg++ {
			m.v[reg] = m.memory[m.i+uint16(reg)]
		}
	}

	m.pc = next
	effects.Beeping = m.soundTimer > 0
	return effects, nil
}

// executeRegisterOp applies one operation of the 8xyn register
// family. Arithmetic wraps modulo 256; VF is written last so the flag
// result wins when VF is the destination register.
func (m *Machine) executeRegisterOp(op Operation) {
	vx, vy := m.v[op.X], m.v[op.Y]

	switch op.Kind {
	case OpLoadRegister:
		m.v[op.X] = vy

	case OpOr:
		m.v[op.X] = vx | vy

	case OpAnd:
		m.v[op.X] = vx & vy

	case OpXor:
		m.v[op.X] = vx ^ vy

	case OpAddRegister:
		sum := uint16(vx) + uint16(vy)
		m.v[op.X] = byte(sum)
		m.v[0xF] = flag(sum > 0xFF)

	case OpSub:
		m.v[op.X] = vx - vy
		m.v[0xF] = flag(vx > vy)

	case OpSubN:
		m.v[op.X] = vy - vx
		m.v[0xF] = flag(vy > vx)

	case OpShiftRight:
		// The shifted out bit is captured before the shift.
		out := vx & 0x01
		m.v[op.X] = vx >> 1
		m.v[0xF] = out

	case OpShiftLeft:
		out := vx >> 7
		m.v[op.X] = vx << 1
		m.v[0xF] = out
	}
}

// executeDraw XORs an op.N row sprite read from memory at the index
// register onto the display at (Vx, Vy). Coordinates wrap around the
// display edges. VF reports whether any pixel transitioned from set
// to clear.
func (m *Machine) executeDraw(op Operation) error {
	if op.N > 0 {
		if err := m.checkIndexRange(uint16(op.N)); err != nil {
			return err
		}
	}

	x, y := int(m.v[op.X]), int(m.v[op.Y])
	collision := false

	for row := range int(op.N) {
		sprite := m.memory[m.i+uint16(row)]
		py := (y + row) % DisplayHeight

		for col := range spriteWidth {
			if sprite&(0x80>>col) == 0 {
				continue
			}
			px := (x + col) % DisplayWidth
			if m.display[py][px] {
				collision = true
			}
			m.display[py][px] = !m.display[py][px]
		}
	}

	m.v[0xF] = flag(collision)
	return nil
}

// checkIndexRange verifies that count bytes starting at the index
// register lie within memory bounds.
func (m *Machine) checkIndexRange(count uint16) error {
	last := uint32(m.i) + uint32(count) - 1
	if last <= MaxAddress {
		return nil
	}

	addr := uint32(m.i)
	if addr <= MaxAddress {
		addr = MaxAddress + 1
	}
	return &OutOfBoundsError{Address: uint16(addr)}
}

// firstPressedKey returns the lowest numbered pressed key.
func (m *Machine) firstPressedKey() (byte, bool) {
	for key, down := range m.keys {
		if down {
			return byte(key), true
		}
	}
	return 0, false
}

// flag converts a condition to the 0/1 value VF stores.
func flag(condition bool) byte {
	if condition {
		return 1
	}
	return 0
}
