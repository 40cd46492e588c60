// Package sample hand-builds small ASTs for goatc's build/disasm demo
// path. The lexer and parser that would normally produce an AST from
// source text are out of scope for this module (spec.md 1); this
// package exists only so the CLI has something to compile and link
// without one, the way a test harness wires up fixtures by hand.
package sample

import "goatc/ast"

// Program builds a small program exercising most of the node family in
// one tree:
//
//	var greeting = "hello", count = 0;
//	var add = function(a, b) { return a + b; };
//	count = add(1, 2);
//	print(greeting);
//
// It is not meant to be representative of real source text -- only to
// give the linker a non-trivial image to produce.
func Program(arena *ast.Arena) ast.Ref {
	greeting := ast.NewVariableDeclarator(arena, "greeting", ast.NewStaticString(arena, "hello"))
	count := ast.NewVariableDeclarator(arena, "count", ast.NewInteger(arena, 0))
	decl := ast.NewVariableDeclaration(arena, []ast.Ref{greeting, count})

	body := ast.NewStatementList(arena, []ast.Ref{
		ast.NewReturn(arena, ast.NewAddition(arena, ast.NewVariable(arena, "a"), ast.NewVariable(arena, "b"))),
	})
	addFn := ast.NewFunctionObject(arena, []string{"a", "b"}, body)
	addDecl := ast.NewVariableDeclaration(arena, []ast.Ref{
		ast.NewVariableDeclarator(arena, "add", addFn),
	})

	assign := ast.NewStatementExpression(arena, ast.NewSimpleAssignment(
		arena,
		ast.NewVariable(arena, "count"),
		ast.NewFunctionCall(arena, ast.NewVariable(arena, "add"), []ast.Ref{
			ast.NewInteger(arena, 1),
			ast.NewInteger(arena, 2),
		}),
	))

	printCall := ast.NewStatementExpression(arena, ast.NewFunctionCall(
		arena,
		ast.NewVariable(arena, "print"),
		[]ast.Ref{ast.NewVariable(arena, "greeting")},
	))

	return ast.NewRoot(arena, []ast.Ref{decl, addDecl, assign, printCall})
}
