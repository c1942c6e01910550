package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// OpKind identifies a decoded CHIP-8 operation. The executor switch
// over OpKind is exhaustive; an unhandled kind is a programming error
// in this package, not a runtime fallthrough.
type OpKind uint8

// Operation kinds for the standard CHIP-8 instruction set.
// The legacy 0nnn machine code jump is deliberately unsupported and
// decodes as an unknown opcode.
const (
	OpCls OpKind = iota + 1
	OpRet
	OpJump
	OpCall
	OpSkipEqualByte
	OpSkipNotEqualByte
	OpSkipEqualRegister
	OpLoadByte
	OpAddByte
	OpLoadRegister
	OpOr
	OpAnd
	OpXor
	OpAddRegister
	OpSub
	OpShiftRight
	OpSubN
	OpShiftLeft
	OpSkipNotEqualRegister
	OpLoadIndex
	OpJumpV0
	OpRandom
	OpDraw
	OpSkipKeyPressed
	OpSkipKeyNotPressed
	OpLoadFromDelayTimer
	OpWaitKey
	OpLoadIntoDelayTimer
	OpLoadIntoSoundTimer
	OpAddIndex
	OpLoadFontAddress
	OpStoreBCD
	OpStoreRegisters
	OpLoadRegisters
)

// Operation is the decoded form of one 16-bit instruction word.
// It is an immutable value produced per cycle and discarded after
// execution. Operand fields are extracted losslessly; fields not used
// by the operation's kind still reflect the raw word bits.
type Operation struct {
	// Kind identifies the operation.
	Kind OpKind

	// X and Y are the register operand nibbles.
	X, Y byte

	// N is the low nibble operand (sprite height for DRW).
	N byte

	// NN is the low byte operand.
	NN byte

	// NNN is the 12 bit address operand.
	NNN uint16

	ins  *chip8.Instruction
	word uint16
}

// Word returns the instruction word the operation was decoded from.
func (op Operation) Word() uint16 {
	return op.word
}

// Name returns the instruction mnemonic, matching the naming of the
// retroenv disassembler output.
func (op Operation) Name() string {
	if op.ins == nil {
		return ""
	}
	return op.ins.Name
}

// String returns the operation in assembly notation, for example
// "DRW V1, V2, $5".
func (op Operation) String() string {
	name := op.Name()
	if params := op.formatParams(); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

// formatParams formats the operand fields based on the operation kind.
func (op Operation) formatParams() string {
	switch op.Kind {
	case OpCls, OpRet:
		return ""
	case OpJump, OpCall:
		return fmt.Sprintf("$%03X", op.NNN)
	case OpJumpV0:
		return fmt.Sprintf("V0, $%03X", op.NNN)
	case OpSkipEqualByte, OpSkipNotEqualByte, OpLoadByte, OpAddByte, OpRandom:
		return fmt.Sprintf("V%X, $%02X", op.X, op.NN)
	case OpSkipEqualRegister, OpSkipNotEqualRegister, OpLoadRegister,
		OpOr, OpAnd, OpXor, OpAddRegister, OpSub, OpSubN:
		return fmt.Sprintf("V%X, V%X", op.X, op.Y)
	case OpShiftRight, OpShiftLeft, OpSkipKeyPressed, OpSkipKeyNotPressed:
		return fmt.Sprintf("V%X", op.X)
	case OpLoadIndex:
		return fmt.Sprintf("I, $%03X", op.NNN)
	case OpDraw:
		return fmt.Sprintf("V%X, V%X, $%X", op.X, op.Y, op.N)
	case OpLoadFromDelayTimer:
		return fmt.Sprintf("V%X, DT", op.X)
	case OpWaitKey:
		return fmt.Sprintf("V%X, K", op.X)
	case OpLoadIntoDelayTimer:
		return fmt.Sprintf("DT, V%X", op.X)
	case OpLoadIntoSoundTimer:
		return fmt.Sprintf("ST, V%X", op.X)
	case OpAddIndex:
		return fmt.Sprintf("I, V%X", op.X)
	case OpLoadFontAddress:
		return fmt.Sprintf("F, V%X", op.X)
	case OpStoreBCD:
		return fmt.Sprintf("B, V%X", op.X)
	case OpStoreRegisters:
		return fmt.Sprintf("[I], V%X", op.X)
	case OpLoadRegisters:
		return fmt.Sprintf("V%X, [I]", op.X)
	}
	return ""
}

// Decode maps a 16-bit instruction word to an Operation descriptor.
// Classification is on the high nibble first, then same-family
// disambiguation by low byte or nibble. Unrecognized bit patterns
// fail with UnknownOpcodeError.
func Decode(word uint16) (Operation, error) {
	op := Operation{
		X:    byte(word >> 8 & 0x0F),
		Y:    byte(word >> 4 & 0x0F),
		N:    byte(word & 0x0F),
		NN:   byte(word & 0xFF),
		NNN:  word & 0x0FFF,
		word: word,
	}

	switch word & 0xF000 {
	case 0x0000:
		// Only the two system ops are recognized; the legacy 0nnn
		// machine code jump is not supported.
		switch word {
		case 0x00E0:
			op.Kind, op.ins = OpCls, chip8.ClsInst
		case 0x00EE:
			op.Kind, op.ins = OpRet, chip8.RetInst
		default:
			return Operation{}, &UnknownOpcodeError{Word: word}
		}

	case 0x1000:
		op.Kind, op.ins = OpJump, chip8.JpInst

	case 0x2000:
		op.Kind, op.ins = OpCall, chip8.CallInst

	case 0x3000:
		op.Kind, op.ins = OpSkipEqualByte, chip8.SeInst

	case 0x4000:
		op.Kind, op.ins = OpSkipNotEqualByte, chip8.SneInst

	case 0x5000:
		if op.N != 0 {
			return Operation{}, &UnknownOpcodeError{Word: word}
		}
		op.Kind, op.ins = OpSkipEqualRegister, chip8.SeInst

	case 0x6000:
		op.Kind, op.ins = OpLoadByte, chip8.LdInst

	case 0x7000:
		op.Kind, op.ins = OpAddByte, chip8.AddInst

	case 0x8000:
		if err := decodeArithmetic(&op); err != nil {
			return Operation{}, err
		}

	case 0x9000:
		if op.N != 0 {
			return Operation{}, &UnknownOpcodeError{Word: word}
		}
		op.Kind, op.ins = OpSkipNotEqualRegister, chip8.SneInst

	case 0xA000:
		op.Kind, op.ins = OpLoadIndex, chip8.LdInst

	case 0xB000:
		op.Kind, op.ins = OpJumpV0, chip8.JpInst

	case 0xC000:
		op.Kind, op.ins = OpRandom, chip8.RndInst

	case 0xD000:
		op.Kind, op.ins = OpDraw, chip8.DrwInst

	case 0xE000:
		switch op.NN {
		case 0x9E:
			op.Kind, op.ins = OpSkipKeyPressed, chip8.SkpInst
		case 0xA1:
			op.Kind, op.ins = OpSkipKeyNotPressed, chip8.SknpInst
		default:
			return Operation{}, &UnknownOpcodeError{Word: word}
		}

	case 0xF000:
		if err := decodeMisc(&op); err != nil {
			return Operation{}, err
		}
	}

	return op, nil
}

// decodeArithmetic disambiguates the 8xyn register operation family
// by the low nibble.
func decodeArithmetic(op *Operation) error {
	switch op.N {
	case 0x0:
		op.Kind, op.ins = OpLoadRegister, chip8.LdInst
	case 0x1:
		op.Kind, op.ins = OpOr, chip8.OrInst
	case 0x2:
		op.Kind, op.ins = OpAnd, chip8.AndInst
	case 0x3:
		op.Kind, op.ins = OpXor, chip8.XorInst
	case 0x4:
		op.Kind, op.ins = OpAddRegister, chip8.AddInst
	case 0x5:
		op.Kind, op.ins = OpSub, chip8.SubInst
	case 0x6:
		op.Kind, op.ins = OpShiftRight, chip8.ShrInst
	case 0x7:
		op.Kind, op.ins = OpSubN, chip8.SubnInst
	case 0xE:
		op.Kind, op.ins = OpShiftLeft, chip8.ShlInst
	default:
		return &UnknownOpcodeError{Word: op.word}
	}
	return nil
}

// decodeMisc disambiguates the Fxnn timer, input and memory family
// by the low byte.
func decodeMisc(op *Operation) error {
	switch op.NN {
	case 0x07:
		op.Kind, op.ins = OpLoadFromDelayTimer, chip8.LdInst
	case 0x0A:
		op.Kind, op.ins = OpWaitKey, chip8.LdInst
	case 0x15:
		op.Kind, op.ins = OpLoadIntoDelayTimer, chip8.LdInst
	case 0x18:
		op.Kind, op.ins = OpLoadIntoSoundTimer, chip8.LdInst
	case 0x1E:
		op.Kind, op.ins = OpAddIndex, chip8.AddInst
	case 0x29:
		op.Kind, op.ins = OpLoadFontAddress, chip8.LdInst
	case 0x33:
		op.Kind, op.ins = OpStoreBCD, chip8.LdInst
	case 0x55:
		op.Kind, op.ins = OpStoreRegisters, chip8.LdInst
	case 0x65:
		op.Kind, op.ins = OpLoadRegisters, chip8.LdInst
	default:
		return &UnknownOpcodeError{Word: op.word}
	}
	return nil
}
