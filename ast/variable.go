package ast

import "goatc/bytecode"

// NewVariable allocates an identifier-reference node. Variable is the
// only assignable Kind (spec.md 3.1).
func NewVariable(arena *Arena, name string) Ref {
	n := arena.New()
	n.kind = KindVariable
	n.text = name
	return n
}

// Name returns a Variable node's identifier text.
func Name(n *Node) string {
	if n.kind != KindVariable {
		panic(errUnhandledKind(n.kind))
	}
	return n.text
}

func emitVariableLoad(n *Node, code *bytecode.CodeBuilder, data *bytecode.DataBuilder) bytecode.InstrIndex {
	descIdx := data.InternString(n.text)
	return code.Append(bytecode.NewInstruction(bytecode.OpVLoad, uint32(descIdx)))
}

func emitVariableStore(n *Node, code *bytecode.CodeBuilder, data *bytecode.DataBuilder) bytecode.InstrIndex {
	descIdx := data.InternString(n.text)
	return code.Append(bytecode.NewInstruction(bytecode.OpStore, uint32(descIdx)))
}

// NewParenExpr wraps inner in a parenthesized-expression node. Purely
// transparent for code generation; it exists so that
// GenerateSource/GenerateSourceIndented can reproduce explicit
// parentheses.
func NewParenExpr(arena *Arena, inner Ref) Ref {
	n := arena.New()
	n.kind = KindParenExpr
	n.left = inner
	return n
}
