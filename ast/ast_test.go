package ast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"goatc/bytecode"
)

// compileStatements builds `ast.NewRoot(arena, stmts)` and emits its
// bytecode into a fresh pair of builders, returning the instruction
// view for assertion. Mirrors spec.md 8's end-to-end scenarios E1-E6.
func compileStatements(t *testing.T, arena *Arena, stmts []Ref) []bytecode.Instruction {
	t.Helper()
	code := bytecode.NewCodeBuilder()
	data := bytecode.NewDataBuilder()
	root := NewRoot(arena, stmts)
	root.EmitBytecode(code, data)
	return code.View()
}

func opcodes(instrs []bytecode.Instruction) []bytecode.Opcode {
	ops := make([]bytecode.Opcode, len(instrs))
	for i, instr := range instrs {
		ops[i] = instr.Op
	}
	return ops
}

// TestE1Addition covers spec.md 8 scenario E1: `2 + 3;`.
func TestE1Addition(t *testing.T) {
	arena := NewArena()
	expr := NewStatementExpression(arena, NewAddition(arena, NewInteger(arena, 2), NewInteger(arena, 3)))

	instrs := compileStatements(t, arena, []Ref{expr})

	require.Equal(t, []bytecode.Opcode{
		bytecode.OpILoad32, bytecode.OpILoad32, bytecode.OpAdd, bytecode.OpPop, bytecode.OpEnd,
	}, opcodes(instrs))
	require.EqualValues(t, 2, instrs[0].Arg1Signed())
	require.EqualValues(t, 3, instrs[1].Arg1Signed())
}

// TestE2FunctionCall covers spec.md 8 scenario E2: `print("test");`.
func TestE2FunctionCall(t *testing.T) {
	arena := NewArena()
	call := NewStatementExpression(arena, NewFunctionCall(arena,
		NewVariable(arena, "print"),
		[]Ref{NewStaticString(arena, "test")},
	))

	instrs := compileStatements(t, arena, []Ref{call})

	require.Equal(t, []bytecode.Opcode{
		bytecode.OpSLoad, bytecode.OpVLoad, bytecode.OpCall, bytecode.OpPop, bytecode.OpEnd,
	}, opcodes(instrs))
	require.EqualValues(t, 0, instrs[0].Arg1) // "test" interned first -> descriptor 0
	require.EqualValues(t, 1, instrs[1].Arg1) // "print" interned second -> descriptor 1
	require.EqualValues(t, 1, instrs[2].Arg0) // one argument
}

// TestE3VariableDeclaration covers spec.md 8 scenario E3: `var x = 5, y;`.
func TestE3VariableDeclaration(t *testing.T) {
	arena := NewArena()
	decl := NewVariableDeclaration(arena, []Ref{
		NewVariableDeclarator(arena, "x", NewInteger(arena, 5)),
		NewVariableDeclarator(arena, "y", nil),
	})

	instrs := compileStatements(t, arena, []Ref{decl})

	require.Equal(t, []bytecode.Opcode{
		bytecode.OpILoad32, bytecode.OpPop, bytecode.OpVar,
		bytecode.OpNil, bytecode.OpPop, bytecode.OpVar,
		bytecode.OpEnd,
	}, opcodes(instrs))
	require.EqualValues(t, 0, instrs[2].Arg1) // x -> descriptor 0
	require.EqualValues(t, 1, instrs[5].Arg1) // y -> descriptor 1
}

// TestE4Block covers spec.md 8 scenario E4: `{ 1; 2; }`.
func TestE4Block(t *testing.T) {
	arena := NewArena()
	block := NewStatementList(arena, []Ref{
		NewStatementExpression(arena, NewInteger(arena, 1)),
		NewStatementExpression(arena, NewInteger(arena, 2)),
	})

	instrs := compileStatements(t, arena, []Ref{block})

	require.Equal(t, []bytecode.Opcode{
		bytecode.OpEnter,
		bytecode.OpILoad32, bytecode.OpPop,
		bytecode.OpILoad32, bytecode.OpPop,
		bytecode.OpLeave,
		bytecode.OpEnd,
	}, opcodes(instrs))
}

// TestE5LargeInteger covers spec.md 8 scenario E5: a 64-bit integer
// literal that doesn't fit in ILOAD32's 32-bit immediate.
func TestE5LargeInteger(t *testing.T) {
	const value int64 = 10_000_000_000

	arena := NewArena()
	stmt := NewStatementExpression(arena, NewInteger(arena, value))

	instrs := compileStatements(t, arena, []Ref{stmt})

	require.Equal(t, []bytecode.Opcode{
		bytecode.OpArg, bytecode.OpILoad64, bytecode.OpPop, bytecode.OpEnd,
	}, opcodes(instrs))

	low := instrs[0].Arg1
	high := instrs[1].Arg1
	require.Equal(t, value, int64((uint64(high)<<32)|uint64(low)))
}

// TestE6Assignment covers spec.md 8 scenario E6: `a = b + c;`.
func TestE6Assignment(t *testing.T) {
	arena := NewArena()
	stmt := NewStatementExpression(arena, NewSimpleAssignment(
		arena,
		NewVariable(arena, "a"),
		NewAddition(arena, NewVariable(arena, "b"), NewVariable(arena, "c")),
	))

	instrs := compileStatements(t, arena, []Ref{stmt})

	require.Equal(t, []bytecode.Opcode{
		bytecode.OpVLoad, bytecode.OpVLoad, bytecode.OpAdd, bytecode.OpStore, bytecode.OpPop, bytecode.OpEnd,
	}, opcodes(instrs))
	require.EqualValues(t, 0, instrs[0].Arg1) // b -> descriptor 0 (intern order: b, c, a)
	require.EqualValues(t, 1, instrs[1].Arg1) // c -> descriptor 1
	require.EqualValues(t, 2, instrs[3].Arg1) // a -> descriptor 2 (interned last, by STORE)
}

// TestRealLiteralAlwaysEmitsRLoad resolves spec.md 9's open question:
// unlike the ambiguous source behavior, ARG is always followed by
// RLOAD for a Real literal.
func TestRealLiteralAlwaysEmitsRLoad(t *testing.T) {
	arena := NewArena()
	stmt := NewStatementExpression(arena, NewReal(arena, 3.5))

	instrs := compileStatements(t, arena, []Ref{stmt})

	require.Equal(t, []bytecode.Opcode{
		bytecode.OpArg, bytecode.OpRLoad, bytecode.OpPop, bytecode.OpEnd,
	}, opcodes(instrs))
}

// TestConstantDeclaratorOrdering covers spec.md 8 property 8 for `const`.
func TestConstantDeclaratorOrdering(t *testing.T) {
	arena := NewArena()
	decl := NewConstantDeclaration(arena, []Ref{
		NewConstantDeclarator(arena, "pi", NewReal(arena, 3.14)),
	})

	instrs := compileStatements(t, arena, []Ref{decl})

	require.Equal(t, []bytecode.Opcode{
		bytecode.OpArg, bytecode.OpRLoad, bytecode.OpPop, bytecode.OpConst, bytecode.OpEnd,
	}, opcodes(instrs))
}

// TestReturnWithoutValueEmitsNil covers the "else NIL" half of Return's
// lowering rule (spec.md 4.3).
func TestReturnWithoutValueEmitsNil(t *testing.T) {
	arena := NewArena()
	ret := NewReturn(arena, nil)

	instrs := compileStatements(t, arena, []Ref{ret})

	require.Equal(t, []bytecode.Opcode{bytecode.OpNil, bytecode.OpRet, bytecode.OpEnd}, opcodes(instrs))
}

// TestParenExprIsTransparent covers ParenExpr's "emit e" rule: it must
// contribute no instructions of its own.
func TestParenExprIsTransparent(t *testing.T) {
	arena := NewArena()
	direct := NewStatementExpression(arena, NewInteger(arena, 7))
	wrapped := NewStatementExpression(arena, NewParenExpr(arena, NewInteger(arena, 7)))

	a := compileStatements(t, arena, []Ref{direct})
	b := compileStatements(t, NewArena(), []Ref{wrapped})

	require.Equal(t, opcodes(a), opcodes(b))
}

// TestSingletonsShareIdentity covers spec.md 3.1: exactly one
// Null/True/False instance per process.
func TestSingletonsShareIdentity(t *testing.T) {
	require.Same(t, Null, Null)
	require.Same(t, True, True)
	require.Same(t, False, False)
	require.NotSame(t, Null, True)
}

// TestIsAssignable covers spec.md 3.1: only Variable is assignable.
func TestIsAssignable(t *testing.T) {
	arena := NewArena()
	require.True(t, NewVariable(arena, "x").IsAssignable())
	require.False(t, NewInteger(arena, 1).IsAssignable())
	require.False(t, Null.IsAssignable())
}

// TestAssignNonAssignablePanics covers spec.md 7: calling
// EmitBytecodeAssign on a non-assignable variant is a fatal
// programming error.
func TestAssignNonAssignablePanics(t *testing.T) {
	code := bytecode.NewCodeBuilder()
	data := bytecode.NewDataBuilder()
	arena := NewArena()
	n := NewInteger(arena, 1)

	require.Panics(t, func() { n.EmitBytecodeAssign(code, data) })
}

// TestFunctionCallArgOverflowPanics covers spec.md 4.3/7: a call with
// 2^16 or more arguments is a fatal programming error at emit time.
func TestFunctionCallArgOverflowPanics(t *testing.T) {
	arena := NewArena()
	args := make([]Ref, maxCallArgs+1)
	for i := range args {
		args[i] = NewInteger(arena, int64(i))
	}
	call := NewFunctionCall(arena, NewVariable(arena, "f"), args)

	code := bytecode.NewCodeBuilder()
	data := bytecode.NewDataBuilder()
	require.Panics(t, func() { call.EmitBytecode(code, data) })
}

// TestChildCountAndTags covers spec.md 4.3's structural-access contract
// for a representative sample of node kinds.
func TestChildCountAndTags(t *testing.T) {
	arena := NewArena()

	add := NewAddition(arena, NewInteger(arena, 1), NewInteger(arena, 2))
	require.Equal(t, 2, add.ChildCount())
	leftTag, ok := add.ChildTag(0)
	require.True(t, ok)
	require.Equal(t, "left", leftTag)
	rightTag, ok := add.ChildTag(1)
	require.True(t, ok)
	require.Equal(t, "right", rightTag)

	assign := NewSimpleAssignment(arena, NewVariable(arena, "x"), NewInteger(arena, 1))
	tag, ok := assign.ChildTag(0)
	require.True(t, ok)
	require.Equal(t, "target", tag)
	tag, ok = assign.ChildTag(1)
	require.True(t, ok)
	require.Equal(t, "value", tag)

	call := NewFunctionCall(arena, NewVariable(arena, "f"), []Ref{NewInteger(arena, 1), NewInteger(arena, 2)})
	require.Equal(t, 3, call.ChildCount()) // callee + 2 args
	objTag, ok := call.ChildTag(0)
	require.True(t, ok)
	require.Equal(t, "object", objTag)
	_, ok = call.ChildTag(1) // args are unlabeled
	require.False(t, ok)
}
