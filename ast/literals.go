package ast

import (
	"math"
	"strconv"
	"strings"

	"goatc/bytecode"
)

// Null, True and False are process-wide singletons (spec.md 3.1): they
// carry no payload, so every reference to "null"/"true"/"false" in a
// tree can safely point at the same Node. They live outside any Arena
// and are never freed.
var (
	Null  Ref = &Node{kind: KindNull}
	True  Ref = &Node{kind: KindTrue}
	False Ref = &Node{kind: KindFalse}
)

func emitNull(code *bytecode.CodeBuilder) bytecode.InstrIndex {
	return code.Append(bytecode.NewInstruction(bytecode.OpNil, 0))
}

func emitTrue(code *bytecode.CodeBuilder) bytecode.InstrIndex {
	return code.Append(bytecode.NewInstruction(bytecode.OpTrue, 0))
}

func emitFalse(code *bytecode.CodeBuilder) bytecode.InstrIndex {
	return code.Append(bytecode.NewInstruction(bytecode.OpFalse, 0))
}

// NewStaticString allocates a string-literal node from arena.
func NewStaticString(arena *Arena, value string) Ref {
	n := arena.New()
	n.kind = KindStaticString
	n.text = value
	return n
}

func emitStaticString(n *Node, code *bytecode.CodeBuilder, data *bytecode.DataBuilder) bytecode.InstrIndex {
	descIdx := data.InternString(n.text)
	return code.Append(bytecode.NewInstruction(bytecode.OpSLoad, uint32(descIdx)))
}

// sourceStaticString quotes and escapes a string literal's content
// for source regeneration.
func sourceStaticString(n *Node) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range n.text {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// NewInteger allocates a signed 64-bit integer literal node.
func NewInteger(arena *Arena, value int64) Ref {
	n := arena.New()
	n.kind = KindInteger
	n.ival = value
	return n
}

func integerData(n *Node) string {
	return strconv.FormatInt(n.ival, 10)
}

// IntegerValue returns the literal's payload. Panics if n is not an Integer.
func IntegerValue(n *Node) int64 {
	if n.kind != KindInteger {
		panic(errUnhandledKind(n.kind))
	}
	return n.ival
}

// Lowering for Integer (spec.md 4.3): values fitting in a signed
// 32-bit immediate get one ILOAD32; wider values split into an ARG
// (low 32 bits) followed by ILOAD64 (high 32 bits). The VM
// reconstructs the 64-bit value from the most recent ARG as the lower
// half and ILOAD64's arg1 as the upper half, matching this split
// exactly.
func emitInteger(n *Node, code *bytecode.CodeBuilder) bytecode.InstrIndex {
	if n.ival >= math.MinInt32 && n.ival <= math.MaxInt32 {
		return code.Append(bytecode.NewInstruction(bytecode.OpILoad32, uint32(int32(n.ival))))
	}

	u := uint64(n.ival)
	low := uint32(u)
	high := uint32(u >> 32)

	first := code.Append(bytecode.NewInstruction(bytecode.OpArg, low))
	code.Append(bytecode.NewInstruction(bytecode.OpILoad64, high))
	return first
}

// NewReal allocates a binary64 real-literal node.
func NewReal(arena *Arena, value float64) Ref {
	n := arena.New()
	n.kind = KindReal
	n.rval = value
	return n
}

func realData(n *Node) string {
	return strconv.FormatFloat(n.rval, 'g', -1, 64)
}

// RealValue returns the literal's payload. Panics if n is not a Real.
func RealValue(n *Node) float64 {
	if n.kind != KindReal {
		panic(errUnhandledKind(n.kind))
	}
	return n.rval
}

// Lowering for Real mirrors Integer: ARG carries the low half of the
// float's bit pattern, RLOAD the high half. Unlike the source project
// (spec.md 9, Open Questions), RLOAD is always emitted — a bare ARG
// with no RLOAD is treated as a bug, not a valid encoding.
func emitReal(n *Node, code *bytecode.CodeBuilder) bytecode.InstrIndex {
	bits := math.Float64bits(n.rval)
	low := uint32(bits)
	high := uint32(bits >> 32)

	first := code.Append(bytecode.NewInstruction(bytecode.OpArg, low))
	code.Append(bytecode.NewInstruction(bytecode.OpRLoad, high))
	return first
}
