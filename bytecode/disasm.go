package bytecode

import "fmt"

// refersToDescriptor reports whether arg1 on this opcode indexes the
// descriptor table, so Disassemble can resolve it to the underlying
// string for readability.
func refersToDescriptor(op Opcode) bool {
	switch op {
	case OpSLoad, OpVLoad, OpVar, OpConst, OpStore, OpFunc:
		return true
	default:
		return false
	}
}

// DecodeWideString reads a wide-character blob (spec.md 6.1: 32-bit
// little-endian code points terminated by a 32-bit zero) back into a
// Go string. Used by the disassembler and by round-trip tests.
func DecodeWideString(blob []byte) string {
	runes := make([]rune, 0, len(blob)/4)
	for i := 0; i+4 <= len(blob); i += 4 {
		cp := uint32(blob[i]) | uint32(blob[i+1])<<8 | uint32(blob[i+2])<<16 | uint32(blob[i+3])<<24
		if cp == 0 {
			break
		}
		runes = append(runes, rune(cp))
	}
	return string(runes)
}

// StringAt decodes the interned string stored at descriptor index idx.
func (b *Bytecode) StringAt(idx int) (string, bool) {
	if idx < 0 || idx >= len(b.Descriptors) {
		return "", false
	}
	d := b.Descriptors[idx]
	end := d.Offset + uint64(d.Size)
	if end > uint64(len(b.Data)) {
		return "", false
	}
	return DecodeWideString(b.Data[d.Offset:end]), true
}

// Disassemble renders every instruction as one plain-text line:
// "<index>: <mnemonic> <operands>", resolving descriptor-table
// operands to the underlying string where applicable. Output has no
// color/markup; cmd/goatc layers presentation on top.
func (b *Bytecode) Disassemble() []string {
	lines := make([]string, 0, len(b.Instructions))
	for i, instr := range b.Instructions {
		line := fmt.Sprintf("%5d: %s", i, instr.String())
		if refersToDescriptor(instr.Op) {
			if s, ok := b.StringAt(int(instr.Arg1)); ok {
				line += fmt.Sprintf("  ; %q", s)
			}
		}
		lines = append(lines, line)
	}
	return lines
}
