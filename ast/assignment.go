package ast

import "goatc/bytecode"

// NewSimpleAssignment builds `target = value`. target must be an
// assignable node (spec.md 3.1); this is a parser invariant, not
// re-checked here.
func NewSimpleAssignment(arena *Arena, target, value Ref) Ref {
	n := arena.New()
	n.kind = KindSimpleAssignment
	n.left = target
	n.right = value
	return n
}

// emitSimpleAssignment emits value, then target's store lowering
// (spec.md 4.3).
func emitSimpleAssignment(n *Node, code *bytecode.CodeBuilder, data *bytecode.DataBuilder) bytecode.InstrIndex {
	first := n.right.EmitBytecode(code, data)
	n.left.EmitBytecodeAssign(code, data)
	return first
}
