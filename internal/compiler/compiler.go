// Package compiler wires the ast and bytecode packages into the
// driver step spec.md 2 describes: invoke EmitBytecode on the root
// node against a fresh pair of builders, then hand them to the
// linker.
package compiler

import (
	"goatc/ast"
	"goatc/bytecode"
)

// Compile emits root's bytecode into fresh builders and links the
// result into one image. root must be an ast.KindRoot node produced
// by the parser (or, until one exists, by internal/sample).
func Compile(root ast.Ref) *bytecode.Bytecode {
	code := bytecode.NewCodeBuilder()
	data := bytecode.NewDataBuilder()

	root.EmitBytecode(code, data)

	return bytecode.Link(code, data)
}
