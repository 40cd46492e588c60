// Package ast implements the abstract syntax tree the source-language
// parser produces and the compiler's front end lowers into bytecode.
//
// The node family is closed (Kind enumerates every variant) and is
// represented as one struct with a tag, not as a per-variant type
// behind an interface: the set never grows except by editing this
// package, so a tagged union dispatched through a switch is both
// simpler and avoids an interface-dispatch indirection per node.
package ast

import "goatc/bytecode"

// Ref is a non-owning reference to a Node living in some Arena (or, for
// the Null/True/False singletons, living for the process lifetime).
// Nodes reference each other by Ref; there is no ownership tracking
// because the whole tree is released at once when its Arena goes away.
type Ref = *Node

// Node is the tagged-union representation of every AST variant. Only
// the fields relevant to Kind are meaningful; see the per-variant
// files (literals.go, binary.go, ...) for which fields each Kind uses.
type Node struct {
	kind Kind

	text string  // identifier name / literal text payload
	ival int64   // Integer payload
	rval float64 // Real payload

	left, right Ref // binary operands, target+value, callee, single child
	list        []Ref
	names       []string // FunctionObject parameter names
}

// Kind returns the node's type tag.
func (n *Node) Kind() Kind { return n.kind }

// TypeName returns the human-readable type name (visualization/disassembly).
func (n *Node) TypeName() string { return n.kind.String() }

// IsAssignable reports whether this node may be the LHS of an assignment.
func (n *Node) IsAssignable() bool { return n.kind.IsAssignable() }

// Data returns the node's primary textual datum: an identifier name, a
// literal rendered as text, or "" when the variant carries none.
func (n *Node) Data() string {
	switch n.kind {
	case KindStaticString, KindVariable:
		return n.text
	case KindInteger:
		return integerData(n)
	case KindReal:
		return realData(n)
	case KindNull:
		return "null"
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	default:
		return ""
	}
}

// ChildCount returns how many tagged children this node exposes
// through Child/ChildTag.
func (n *Node) ChildCount() int {
	switch n.kind {
	case KindParenExpr, KindStatementExpression:
		return 1
	case KindSimpleAssignment:
		return 2
	case KindAddition, KindSubtraction, KindMultiplication, KindDivision,
		KindModulo, KindPower, KindLess, KindLessEq, KindGreater,
		KindGreaterEq, KindEqual, KindNotEqual:
		return 2
	case KindVariableDeclarator, KindConstantDeclarator:
		if n.left != nil {
			return 1
		}
		return 0
	case KindReturn:
		if n.left != nil {
			return 1
		}
		return 0
	case KindFunctionCall:
		return 1 + len(n.list)
	case KindFunctionObject:
		return 1
	case KindRoot, KindStatementList, KindVariableDeclaration, KindConstantDeclaration:
		return len(n.list)
	default:
		return 0
	}
}

// Child returns the i-th structural child, if any.
func (n *Node) Child(i int) (Ref, bool) {
	switch n.kind {
	case KindParenExpr, KindStatementExpression:
		if i == 0 {
			return n.left, true
		}
	case KindSimpleAssignment:
		switch i {
		case 0:
			return n.left, true
		case 1:
			return n.right, true
		}
	case KindAddition, KindSubtraction, KindMultiplication, KindDivision,
		KindModulo, KindPower, KindLess, KindLessEq, KindGreater,
		KindGreaterEq, KindEqual, KindNotEqual:
		switch i {
		case 0:
			return n.left, true
		case 1:
			return n.right, true
		}
	case KindVariableDeclarator, KindConstantDeclarator:
		if i == 0 && n.left != nil {
			return n.left, true
		}
	case KindReturn:
		if i == 0 && n.left != nil {
			return n.left, true
		}
	case KindFunctionCall:
		if i == 0 {
			return n.left, true
		}
		if j := i - 1; j >= 0 && j < len(n.list) {
			return n.list[j], true
		}
	case KindFunctionObject:
		if i == 0 {
			return n.left, true
		}
	case KindRoot, KindStatementList, KindVariableDeclaration, KindConstantDeclaration:
		if i >= 0 && i < len(n.list) {
			return n.list[i], true
		}
	}
	return nil, false
}

// ChildTag returns the short visualization label for the i-th child,
// when that child carries one. Statement-list-shaped children (Root,
// StatementList, declaration lists, call arguments) are not
// individually labeled.
func (n *Node) ChildTag(i int) (string, bool) {
	switch n.kind {
	case KindParenExpr, KindStatementExpression:
		if i == 0 {
			return "expression", true
		}
	case KindSimpleAssignment:
		switch i {
		case 0:
			return "target", true
		case 1:
			return "value", true
		}
	case KindAddition, KindSubtraction, KindMultiplication, KindDivision,
		KindModulo, KindPower, KindLess, KindLessEq, KindGreater,
		KindGreaterEq, KindEqual, KindNotEqual:
		switch i {
		case 0:
			return "left", true
		case 1:
			return "right", true
		}
	case KindVariableDeclarator, KindConstantDeclarator:
		if i == 0 && n.left != nil {
			return "initial", true
		}
	case KindReturn:
		if i == 0 && n.left != nil {
			return "value", true
		}
	case KindFunctionCall:
		if i == 0 {
			return "object", true
		}
	case KindFunctionObject:
		if i == 0 {
			return "body", true
		}
	}
	return "", false
}

// EmitBytecode emits this node's rvalue lowering and returns the index
// of the first instruction it produced.
func (n *Node) EmitBytecode(code *bytecode.CodeBuilder, data *bytecode.DataBuilder) bytecode.InstrIndex {
	switch n.kind {
	case KindNull:
		return emitNull(code)
	case KindTrue:
		return emitTrue(code)
	case KindFalse:
		return emitFalse(code)
	case KindStaticString:
		return emitStaticString(n, code, data)
	case KindInteger:
		return emitInteger(n, code)
	case KindReal:
		return emitReal(n, code)
	case KindVariable:
		return emitVariableLoad(n, code, data)
	case KindParenExpr:
		return n.left.EmitBytecode(code, data)
	case KindFunctionObject:
		return emitFunctionObject(n, code, data)
	case KindFunctionCall:
		return emitFunctionCall(n, code, data)
	case KindSimpleAssignment:
		return emitSimpleAssignment(n, code, data)
	case KindAddition, KindSubtraction, KindMultiplication, KindDivision,
		KindModulo, KindPower, KindLess, KindLessEq, KindGreater,
		KindGreaterEq, KindEqual, KindNotEqual:
		return emitBinary(n, code, data)
	case KindStatementExpression:
		return emitStatementExpression(n, code, data)
	case KindVariableDeclaration, KindConstantDeclaration:
		return emitDeclarationList(n, code, data)
	case KindVariableDeclarator:
		return emitVariableDeclarator(n, code, data)
	case KindConstantDeclarator:
		return emitConstantDeclarator(n, code, data)
	case KindReturn:
		return emitReturn(n, code, data)
	case KindStatementList:
		return emitStatementList(n, code, data)
	case KindRoot:
		return emitRoot(n, code, data)
	default:
		panic(errUnhandledKind(n.kind))
	}
}

// EmitBytecodeAssign emits the store lowering for a value already on
// top of the data stack. It is only defined for assignable variants;
// calling it on anything else is a programming error (spec.md 4.3).
func (n *Node) EmitBytecodeAssign(code *bytecode.CodeBuilder, data *bytecode.DataBuilder) bytecode.InstrIndex {
	if !n.IsAssignable() {
		panic(errAssignNonAssignable(n.kind))
	}
	switch n.kind {
	case KindVariable:
		return emitVariableStore(n, code, data)
	default:
		panic(errAssignNonAssignable(n.kind))
	}
}

// GenerateSource renders the single-line canonical source-language
// text for this sub-tree. The result need not be byte-identical to
// any original input (spacing/optional parentheses may differ), only
// parse back to a semantically equivalent tree (spec.md 4.3).
func (n *Node) GenerateSource() string {
	switch n.kind {
	case KindNull, KindTrue, KindFalse:
		return n.Data()
	case KindStaticString:
		return sourceStaticString(n)
	case KindInteger:
		return integerData(n)
	case KindReal:
		return realData(n)
	case KindVariable:
		return n.text
	case KindParenExpr:
		return "(" + n.left.GenerateSource() + ")"
	case KindFunctionObject:
		return sourceFunctionObject(n)
	case KindFunctionCall:
		return sourceFunctionCall(n)
	case KindSimpleAssignment:
		return n.left.GenerateSource() + " = " + n.right.GenerateSource()
	case KindAddition, KindSubtraction, KindMultiplication, KindDivision,
		KindModulo, KindPower, KindLess, KindLessEq, KindGreater,
		KindGreaterEq, KindEqual, KindNotEqual:
		return n.left.GenerateSource() + " " + binaryOperatorText[n.kind] + " " + n.right.GenerateSource()
	case KindStatementExpression:
		return n.left.GenerateSource() + ";"
	case KindVariableDeclaration:
		return "var " + sourceDeclaratorList(n)
	case KindConstantDeclaration:
		return "const " + sourceDeclaratorList(n)
	case KindVariableDeclarator, KindConstantDeclarator:
		return sourceDeclarator(n)
	case KindReturn:
		if n.left != nil {
			return "return " + n.left.GenerateSource() + ";"
		}
		return "return;"
	case KindStatementList:
		return sourceStatementListFlat(n)
	case KindRoot:
		return sourceRootFlat(n)
	default:
		panic(errUnhandledKind(n.kind))
	}
}

// GenerateSourceIndented appends this sub-tree's multi-line, indented
// source text into b at the given indent level. Leaf and
// inline-expression nodes simply append to the current line;
// statement-like nodes start new lines at indent (spec.md 4.3).
func (n *Node) GenerateSourceIndented(b *SourceBuilder, indent int) {
	switch n.kind {
	case KindStatementList:
		indentedStatementList(n, b, indent)
	case KindRoot:
		indentedRoot(n, b, indent)
	case KindStatementExpression, KindVariableDeclaration, KindConstantDeclaration, KindReturn:
		b.AddLine(indent, n.GenerateSource())
	default:
		b.AppendToLastLine(n.GenerateSource())
	}
}
