package ast

import (
	"strings"

	"goatc/bytecode"
)

// NewVariableDeclarator builds one `name` or `name = initial` binding
// inside a `var` statement. initial may be nil (spec.md 3.1: a
// VariableDeclarator may omit its initializer).
func NewVariableDeclarator(arena *Arena, name string, initial Ref) Ref {
	n := arena.New()
	n.kind = KindVariableDeclarator
	n.text = name
	n.left = initial
	return n
}

// NewConstantDeclarator builds one `name = initial` binding inside a
// `const` statement. initial must not be nil (spec.md 3.1: a
// ConstantDeclarator must have one) — the parser is responsible for
// this invariant, as for every other structural contract in this
// package.
func NewConstantDeclarator(arena *Arena, name string, initial Ref) Ref {
	n := arena.New()
	n.kind = KindConstantDeclarator
	n.text = name
	n.left = initial
	return n
}

// Lowering for VariableDeclarator (spec.md 4.3): push the initializer
// if present, else NIL; then POP; then declare via VAR. This exact
// order -- push, pop, then declare -- is the observable contract and
// must not be "simplified" away.
func emitVariableDeclarator(n *Node, code *bytecode.CodeBuilder, data *bytecode.DataBuilder) bytecode.InstrIndex {
	var first bytecode.InstrIndex
	if n.left != nil {
		first = n.left.EmitBytecode(code, data)
	} else {
		first = emitNull(code)
	}
	code.Append(bytecode.NewInstruction(bytecode.OpPop, 0))
	descIdx := data.InternString(n.text)
	code.Append(bytecode.NewInstruction(bytecode.OpVar, uint32(descIdx)))
	return first
}

// Lowering for ConstantDeclarator: initial, POP, CONST.
func emitConstantDeclarator(n *Node, code *bytecode.CodeBuilder, data *bytecode.DataBuilder) bytecode.InstrIndex {
	first := n.left.EmitBytecode(code, data)
	code.Append(bytecode.NewInstruction(bytecode.OpPop, 0))
	descIdx := data.InternString(n.text)
	code.Append(bytecode.NewInstruction(bytecode.OpConst, uint32(descIdx)))
	return first
}

// NewVariableDeclaration builds a `var` statement from one or more declarators.
func NewVariableDeclaration(arena *Arena, declarators []Ref) Ref {
	n := arena.New()
	n.kind = KindVariableDeclaration
	n.list = declarators
	return n
}

// NewConstantDeclaration builds a `const` statement from one or more declarators.
func NewConstantDeclaration(arena *Arena, declarators []Ref) Ref {
	n := arena.New()
	n.kind = KindConstantDeclaration
	n.list = declarators
	return n
}

// emitDeclarationList emits each declarator in order (spec.md 4.3);
// shared by VariableDeclaration and ConstantDeclaration since their
// lowering differs only in which declarator Kind they hold.
func emitDeclarationList(n *Node, code *bytecode.CodeBuilder, data *bytecode.DataBuilder) bytecode.InstrIndex {
	var first bytecode.InstrIndex
	for i, decl := range n.list {
		idx := decl.EmitBytecode(code, data)
		if i == 0 {
			first = idx
		}
	}
	return first
}

func sourceDeclarator(n *Node) string {
	if n.left != nil {
		return n.text + " = " + n.left.GenerateSource()
	}
	return n.text
}

func sourceDeclaratorList(n *Node) string {
	parts := make([]string, len(n.list))
	for i, d := range n.list {
		parts[i] = sourceDeclarator(d)
	}
	return strings.Join(parts, ", ") + ";"
}
