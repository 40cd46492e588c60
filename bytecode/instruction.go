package bytecode

import "encoding/binary"

// InstrIndex is the ordinal position of an instruction in the emitted
// stream. It doubles as a jump/entry target (spec.md 3.2).
type InstrIndex = uint32

// instructionSize is the fixed, 8-byte, little-endian on-disk and
// in-memory encoding of one Instruction (spec.md 3.2/6.1).
const instructionSize = 8

// Instruction is one fixed-width, 64-bit VM instruction:
//
//	bits  0-7   opcode
//	bits  8-15  flags (per-opcode; most opcodes leave this zero)
//	bits 16-31  arg0 (uint16, e.g. CALL's argument count)
//	bits 32-63  arg1 (uint32; signed for ILOAD32, unsigned elsewhere)
//
// Laid out as distinct fields rather than one raw uint64 so call
// sites read naturally (instr.Arg1), the way GVM's own Instruction in
// vm/compile.go splits code/register/arg instead of hand-masking bits
// at every use.
type Instruction struct {
	Op    Opcode
	Flags uint8
	Arg0  uint16
	Arg1  uint32
}

// NewInstruction builds an instruction with no flags and no arg0,
// which covers every emitter in the ast package except CALL and FUNC.
func NewInstruction(op Opcode, arg1 uint32) Instruction {
	return Instruction{Op: op, Arg1: arg1}
}

// NewInstructionArg0 builds an instruction carrying a 16-bit arg0
// (CALL's argument count, FUNC's parameter count).
func NewInstructionArg0(op Opcode, arg0 uint16, arg1 uint32) Instruction {
	return Instruction{Op: op, Arg0: arg0, Arg1: arg1}
}

// Arg1Signed reinterprets Arg1 as a signed 32-bit value. Only
// meaningful for ILOAD32 (spec.md 3.2, 6.1); calling it on other
// opcodes is harmless but not part of the documented contract.
func (i Instruction) Arg1Signed() int32 { return int32(i.Arg1) }

// encode writes the instruction's 8-byte little-endian wire form into
// dst, which must have length >= instructionSize.
func (i Instruction) encode(dst []byte) {
	dst[0] = byte(i.Op)
	dst[1] = i.Flags
	binary.LittleEndian.PutUint16(dst[2:4], i.Arg0)
	binary.LittleEndian.PutUint32(dst[4:8], i.Arg1)
}

// decodeInstruction reads one 8-byte little-endian record produced by
// encode.
func decodeInstruction(src []byte) Instruction {
	return Instruction{
		Op:    Opcode(src[0]),
		Flags: src[1],
		Arg0:  binary.LittleEndian.Uint16(src[2:4]),
		Arg1:  binary.LittleEndian.Uint32(src[4:8]),
	}
}

// String renders a disassembly-style line: "MNEMONIC arg0 arg1" with
// operands shown only where the opcode (spec.md 6.2) gives them
// meaning.
func (i Instruction) String() string {
	switch i.Op {
	case OpCall:
		return i.Op.String() + " " + itoa(int64(i.Arg0))
	case OpFunc:
		return i.Op.String() + " " + itoa(int64(i.Arg0)) + " " + itoa(int64(i.Arg1))
	case OpNop, OpEnd, OpPop, OpNil, OpTrue, OpFalse,
		OpAdd, OpSub, OpMul, OpDiv, OpMod, OpPower,
		OpLT, OpLE, OpGT, OpGE, OpEq, OpNE,
		OpRet, OpEnter, OpLeave:
		return i.Op.String()
	case OpILoad32:
		return i.Op.String() + " " + itoa(int64(i.Arg1Signed()))
	default:
		return i.Op.String() + " " + itoa(int64(i.Arg1))
	}
}

func itoa(v int64) string {
	// Small, allocation-light formatter kept local to avoid pulling
	// strconv into every String() call on the hot disassembly path.
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	pos := len(buf)
	for v > 0 {
		pos--
		buf[pos] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}
