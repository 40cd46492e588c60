package ast

import (
	"strings"

	"goatc/bytecode"
)

// NewStatementExpression wraps an expression evaluated for its side
// effects; its value is discarded.
func NewStatementExpression(arena *Arena, expr Ref) Ref {
	n := arena.New()
	n.kind = KindStatementExpression
	n.left = expr
	return n
}

// emitStatementExpression emits expr then POP, discarding its result
// (spec.md 4.3, spec.md 8 property 7).
func emitStatementExpression(n *Node, code *bytecode.CodeBuilder, data *bytecode.DataBuilder) bytecode.InstrIndex {
	first := n.left.EmitBytecode(code, data)
	code.Append(bytecode.NewInstruction(bytecode.OpPop, 0))
	return first
}

// NewReturn builds a `return` or `return value` statement. value may be nil.
func NewReturn(arena *Arena, value Ref) Ref {
	n := arena.New()
	n.kind = KindReturn
	n.left = value
	return n
}

// emitReturn emits value if present, else NIL, then RET.
func emitReturn(n *Node, code *bytecode.CodeBuilder, data *bytecode.DataBuilder) bytecode.InstrIndex {
	var first bytecode.InstrIndex
	if n.left != nil {
		first = n.left.EmitBytecode(code, data)
	} else {
		first = emitNull(code)
	}
	code.Append(bytecode.NewInstruction(bytecode.OpRet, 0))
	return first
}

// NewStatementList builds a `{ ... }` block: a new lexical context
// bracketing zero or more statements.
func NewStatementList(arena *Arena, statements []Ref) Ref {
	n := arena.New()
	n.kind = KindStatementList
	n.list = statements
	return n
}

// emitStatementList emits ENTER, each statement in order, then LEAVE
// (spec.md 4.3, spec.md 8 property 6: exactly one ENTER/LEAVE pair per
// list, with no other ENTER/LEAVE at that scope level).
func emitStatementList(n *Node, code *bytecode.CodeBuilder, data *bytecode.DataBuilder) bytecode.InstrIndex {
	first := code.Append(bytecode.NewInstruction(bytecode.OpEnter, 0))
	for _, stmt := range n.list {
		stmt.EmitBytecode(code, data)
	}
	code.Append(bytecode.NewInstruction(bytecode.OpLeave, 0))
	return first
}

// NewRoot builds the top-level program node from its ordered
// top-level statements.
func NewRoot(arena *Arena, statements []Ref) Ref {
	n := arena.New()
	n.kind = KindRoot
	n.list = statements
	return n
}

// emitRoot emits every top-level statement, then END.
func emitRoot(n *Node, code *bytecode.CodeBuilder, data *bytecode.DataBuilder) bytecode.InstrIndex {
	var first bytecode.InstrIndex
	haveFirst := false
	for _, stmt := range n.list {
		idx := stmt.EmitBytecode(code, data)
		if !haveFirst {
			first, haveFirst = idx, true
		}
	}
	endIdx := code.Append(bytecode.NewInstruction(bytecode.OpEnd, 0))
	if !haveFirst {
		first = endIdx
	}

	FlushPendingFunctionBodies(code, data)
	return first
}

func sourceStatementListFlat(n *Node) string {
	stmts := make([]string, len(n.list))
	for i, s := range n.list {
		stmts[i] = s.GenerateSource()
	}
	return "{ " + strings.Join(stmts, " ") + " }"
}

func sourceRootFlat(n *Node) string {
	stmts := make([]string, len(n.list))
	for i, s := range n.list {
		stmts[i] = s.GenerateSource()
	}
	return strings.Join(stmts, " ")
}

func indentedStatementList(n *Node, b *SourceBuilder, indent int) {
	b.AddLine(indent, "{")
	for _, s := range n.list {
		s.GenerateSourceIndented(b, indent+1)
	}
	b.AddLine(indent, "}")
}

func indentedRoot(n *Node, b *SourceBuilder, indent int) {
	for _, s := range n.list {
		s.GenerateSourceIndented(b, indent)
	}
}
