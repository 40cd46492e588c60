package ast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"goatc/bytecode"
)

// TestFunctionObjectDeferredBody covers spec.md 4.3/9: FunctionObject
// emits ARG+FUNC inline, and its body is placed as deferred code after
// the program's END, with ARG's operand patched to the body's
// resolved entry index. Ordinary control flow (the main statement
// list) must not fall into the body.
func TestFunctionObjectDeferredBody(t *testing.T) {
	arena := NewArena()
	body := NewStatementList(arena, []Ref{
		NewReturn(arena, NewVariable(arena, "x")),
	})
	fn := NewFunctionObject(arena, []string{"x"}, body)
	decl := NewVariableDeclaration(arena, []Ref{NewVariableDeclarator(arena, "f", fn)})

	code := bytecode.NewCodeBuilder()
	data := bytecode.NewDataBuilder()
	root := NewRoot(arena, []Ref{decl})
	root.EmitBytecode(code, data)

	instrs := code.View()

	// Main flow: ARG(placeholder) FUNC POP VAR END, then the deferred
	// body, with no jump needed because END halts before it.
	require.Equal(t, bytecode.OpArg, instrs[0].Op)
	require.Equal(t, bytecode.OpFunc, instrs[1].Op)
	require.Equal(t, bytecode.OpPop, instrs[2].Op)
	require.Equal(t, bytecode.OpVar, instrs[3].Op)

	endIdx := -1
	for i, instr := range instrs {
		if instr.Op == bytecode.OpEnd {
			endIdx = i
			break
		}
	}
	require.GreaterOrEqual(t, endIdx, 4)

	// The body was placed after END: its first instruction is ENTER.
	require.Less(t, endIdx+1, len(instrs))
	require.Equal(t, bytecode.OpEnter, instrs[endIdx+1].Op)

	// ARG's operand was patched to the body's resolved entry index.
	require.EqualValues(t, endIdx+1, instrs[0].Arg1)
}

// TestNestedFunctionObjectsAllGetFlushed covers the drain loop in
// FlushPendingFunctionBodies: compiling one deferred body can itself
// enqueue another (a nested function literal), and every one must be
// placed before the queue is considered empty.
func TestNestedFunctionObjectsAllGetFlushed(t *testing.T) {
	arena := NewArena()

	inner := NewFunctionObject(arena, nil, NewStatementList(arena, []Ref{NewReturn(arena, nil)}))
	innerDecl := NewVariableDeclaration(arena, []Ref{NewVariableDeclarator(arena, "inner", inner)})
	outerBody := NewStatementList(arena, []Ref{innerDecl, NewReturn(arena, nil)})
	outer := NewFunctionObject(arena, nil, outerBody)
	outerDecl := NewVariableDeclaration(arena, []Ref{NewVariableDeclarator(arena, "outer", outer)})

	code := bytecode.NewCodeBuilder()
	data := bytecode.NewDataBuilder()
	root := NewRoot(arena, []Ref{outerDecl})
	root.EmitBytecode(code, data)

	funcCount := 0
	for _, instr := range code.View() {
		if instr.Op == bytecode.OpFunc {
			funcCount++
		}
	}
	require.Equal(t, 2, funcCount, "both outer and inner FUNC must be emitted")
}

// TestParamNamesRoundTrip covers joinParamNames/ParamNames used to
// pack a FunctionObject's parameter list into one interned string.
func TestParamNamesRoundTrip(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, ParamNames(joinParamNames([]string{"a", "b", "c"})))
	require.Nil(t, ParamNames(joinParamNames(nil)))
}

// TestFunctionObjectSource covers sourceFunctionObject's flat
// rendering: the body's own GenerateSource already supplies braces, so
// they must not be doubled.
func TestFunctionObjectSource(t *testing.T) {
	arena := NewArena()
	body := NewStatementList(arena, []Ref{NewReturn(arena, nil)})
	fn := NewFunctionObject(arena, []string{"a", "b"}, body)
	require.Equal(t, "function(a, b) { return; }", fn.GenerateSource())
}
