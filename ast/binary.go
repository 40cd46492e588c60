package ast

import "goatc/bytecode"

var binaryOpcodes = map[Kind]bytecode.Opcode{
	KindAddition:       bytecode.OpAdd,
	KindSubtraction:    bytecode.OpSub,
	KindMultiplication: bytecode.OpMul,
	KindDivision:       bytecode.OpDiv,
	KindModulo:         bytecode.OpMod,
	KindPower:          bytecode.OpPower,
	KindLess:           bytecode.OpLT,
	KindLessEq:         bytecode.OpLE,
	KindGreater:        bytecode.OpGT,
	KindGreaterEq:      bytecode.OpGE,
	KindEqual:          bytecode.OpEq,
	KindNotEqual:       bytecode.OpNE,
}

var binaryOperatorText = map[Kind]string{
	KindAddition:       "+",
	KindSubtraction:    "-",
	KindMultiplication: "*",
	KindDivision:       "/",
	KindModulo:         "%",
	KindPower:          "^",
	KindLess:           "<",
	KindLessEq:         "<=",
	KindGreater:        ">",
	KindGreaterEq:      ">=",
	KindEqual:          "==",
	KindNotEqual:       "!=",
}

// newBinary is the shared constructor for the twelve arithmetic and
// comparison variants; they differ only in Kind and emitted opcode.
func newBinary(arena *Arena, kind Kind, left, right Ref) Ref {
	n := arena.New()
	n.kind = kind
	n.left = left
	n.right = right
	return n
}

func NewAddition(arena *Arena, l, r Ref) Ref       { return newBinary(arena, KindAddition, l, r) }
func NewSubtraction(arena *Arena, l, r Ref) Ref     { return newBinary(arena, KindSubtraction, l, r) }
func NewMultiplication(arena *Arena, l, r Ref) Ref  { return newBinary(arena, KindMultiplication, l, r) }
func NewDivision(arena *Arena, l, r Ref) Ref        { return newBinary(arena, KindDivision, l, r) }
func NewModulo(arena *Arena, l, r Ref) Ref          { return newBinary(arena, KindModulo, l, r) }
func NewPower(arena *Arena, l, r Ref) Ref           { return newBinary(arena, KindPower, l, r) }
func NewLess(arena *Arena, l, r Ref) Ref            { return newBinary(arena, KindLess, l, r) }
func NewLessEq(arena *Arena, l, r Ref) Ref          { return newBinary(arena, KindLessEq, l, r) }
func NewGreater(arena *Arena, l, r Ref) Ref         { return newBinary(arena, KindGreater, l, r) }
func NewGreaterEq(arena *Arena, l, r Ref) Ref       { return newBinary(arena, KindGreaterEq, l, r) }
func NewEqual(arena *Arena, l, r Ref) Ref           { return newBinary(arena, KindEqual, l, r) }
func NewNotEqual(arena *Arena, l, r Ref) Ref        { return newBinary(arena, KindNotEqual, l, r) }

// emitBinary lowers l, then r, then the opcode for this Kind -- in
// that order, so evaluation is always left-then-right (spec.md 4.3).
// The returned index is l's first instruction.
func emitBinary(n *Node, code *bytecode.CodeBuilder, data *bytecode.DataBuilder) bytecode.InstrIndex {
	first := n.left.EmitBytecode(code, data)
	n.right.EmitBytecode(code, data)
	code.Append(bytecode.NewInstruction(binaryOpcodes[n.kind], 0))
	return first
}
