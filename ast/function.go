package ast

import (
	"strings"
	"sync"

	"goatc/bytecode"
)

// NewFunctionObject allocates a function literal: its parameter names
// and its body (a StatementList).
func NewFunctionObject(arena *Arena, params []string, body Ref) Ref {
	n := arena.New()
	n.kind = KindFunctionObject
	n.names = params
	n.left = body
	return n
}

// NewFunctionCall allocates `callee(args...)`. len(args) must stay
// under 2^16 (spec.md 3.1/4.3); this is enforced at emission time, not
// at construction, since a tree may be built long before it is
// compiled.
func NewFunctionCall(arena *Arena, callee Ref, args []Ref) Ref {
	n := arena.New()
	n.kind = KindFunctionCall
	n.left = callee
	n.list = args
	return n
}

// maxCallArgs is the largest argument count CALL's 16-bit arg0 can
// encode (spec.md 3.1: "N < 2^16").
const maxCallArgs = 1<<16 - 1

// emitFunctionCall emits arguments in reverse order (so argument 0
// ends up on top of the stack), then the callee, then CALL with
// arg0 = argument count (spec.md 4.3).
func emitFunctionCall(n *Node, code *bytecode.CodeBuilder, data *bytecode.DataBuilder) bytecode.InstrIndex {
	if len(n.list) > maxCallArgs {
		panic(errArgCountOverflow(n.kind))
	}

	var first bytecode.InstrIndex
	haveFirst := false
	for i := len(n.list) - 1; i >= 0; i-- {
		idx := n.list[i].EmitBytecode(code, data)
		if !haveFirst {
			first, haveFirst = idx, true
		}
	}

	calleeIdx := n.left.EmitBytecode(code, data)
	if !haveFirst {
		first, haveFirst = calleeIdx, true
	}

	code.Append(bytecode.NewInstructionArg0(bytecode.OpCall, uint16(len(n.list)), 0))
	return first
}

// pendingFunctionBody is one FunctionObject whose body has not yet
// been placed. argIdx is the index of the ARG instruction emitted
// inline at the call site; once the body's final entry address is
// known, that instruction is patched to carry it.
type pendingFunctionBody struct {
	argIdx bytecode.InstrIndex
	body   Ref
}

// deferredQueues tracks, per in-flight compilation (keyed by the
// CodeBuilder identifying it), the function bodies still waiting to be
// placed after the program's END (spec.md 4.3, 9: deferred code
// emission). Keying off the CodeBuilder pointer rather than threading
// an extra parameter through every node's EmitBytecode keeps the
// uniform (code, data) signature spec.md 4.3 specifies for every
// variant. Distinct compilations never share a CodeBuilder (spec.md
// 5), so the mutex here only guards the registry map itself, never a
// single compilation's data.
var (
	deferredMu      sync.Mutex
	deferredQueues  = map[*bytecode.CodeBuilder]*[]pendingFunctionBody{}
)

func enqueueFunctionBody(code *bytecode.CodeBuilder, argIdx bytecode.InstrIndex, body Ref) {
	deferredMu.Lock()
	defer deferredMu.Unlock()
	q, ok := deferredQueues[code]
	if !ok {
		q = &[]pendingFunctionBody{}
		deferredQueues[code] = q
	}
	*q = append(*q, pendingFunctionBody{argIdx: argIdx, body: body})
}

func dequeueFunctionBody(code *bytecode.CodeBuilder) (pendingFunctionBody, bool) {
	deferredMu.Lock()
	defer deferredMu.Unlock()
	q, ok := deferredQueues[code]
	if !ok || len(*q) == 0 {
		return pendingFunctionBody{}, false
	}
	next := (*q)[0]
	*q = (*q)[1:]
	return next, true
}

func forgetDeferredQueue(code *bytecode.CodeBuilder) {
	deferredMu.Lock()
	defer deferredMu.Unlock()
	delete(deferredQueues, code)
}

// FlushPendingFunctionBodies places every queued FunctionObject body
// as deferred code at the current end of the instruction stream,
// patching each one's ARG operand to its resolved entry address.
// Compiling a body can itself enqueue further bodies (nested function
// literals); the drain loop continues until the queue is empty.
//
// Root's own lowering calls this once, right after emitting END
// (spec.md 4.3: "Root: emit each top-level statement, then emit END").
// Callers compiling a sub-tree directly (tests, tooling) that may
// contain a FunctionObject must call this themselves once they are
// done, the way Root does.
func FlushPendingFunctionBodies(code *bytecode.CodeBuilder, data *bytecode.DataBuilder) {
	defer forgetDeferredQueue(code)
	for {
		pending, ok := dequeueFunctionBody(code)
		if !ok {
			return
		}
		entry := code.Len()
		code.Patch(pending.argIdx, bytecode.NewInstruction(bytecode.OpArg, entry))
		pending.body.EmitBytecode(code, data)
	}
}

// emitFunctionObject emits ARG (placeholder entry address) and FUNC,
// then queues the body to be placed as deferred code once its final
// position is known (spec.md 4.3).
func emitFunctionObject(n *Node, code *bytecode.CodeBuilder, data *bytecode.DataBuilder) bytecode.InstrIndex {
	argIdx := code.Append(bytecode.NewInstruction(bytecode.OpArg, 0))

	namesDescIdx := data.InternString(joinParamNames(n.names))
	code.Append(bytecode.NewInstructionArg0(bytecode.OpFunc, uint16(len(n.names)), uint32(namesDescIdx)))

	enqueueFunctionBody(code, argIdx, n.left)
	return argIdx
}

// joinParamNames encodes a function's parameter names as one interned
// string (NUL-free; parameter names cannot themselves contain NUL) so
// FUNC's arg1 can reference a single descriptor rather than requiring
// a second table kind. Separated by a single space, which is never
// valid inside a source-language identifier.
func joinParamNames(names []string) string {
	out := ""
	for i, name := range names {
		if i > 0 {
			out += " "
		}
		out += name
	}
	return out
}

// ParamNames decodes the space-joined parameter-name blob produced by
// joinParamNames. Exposed for disassembly/tooling.
func ParamNames(encoded string) []string {
	if encoded == "" {
		return nil
	}
	var names []string
	start := 0
	for i := 0; i <= len(encoded); i++ {
		if i == len(encoded) || encoded[i] == ' ' {
			names = append(names, encoded[start:i])
			start = i + 1
		}
	}
	return names
}

// sourceFunctionObject renders the parameter list followed by the
// body. The body is itself a StatementList, whose own GenerateSource
// already yields a brace-delimited block, so it is not wrapped again
// here.
func sourceFunctionObject(n *Node) string {
	return "function(" + strings.Join(n.names, ", ") + ") " + n.left.GenerateSource()
}

func sourceFunctionCall(n *Node) string {
	args := make([]string, len(n.list))
	for i, a := range n.list {
		args[i] = a.GenerateSource()
	}
	return n.left.GenerateSource() + "(" + strings.Join(args, ", ") + ")"
}
