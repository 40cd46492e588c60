package ast

// Kind tags the closed set of AST node variants. The set is fixed by
// the language: adding a variant means adding a Kind constant, a
// payload shape in Node, and a case in every dispatcher switch in this
// package.
type Kind uint8

const (
	KindRoot Kind = iota
	KindStatementList
	KindNull
	KindTrue
	KindFalse
	KindStaticString
	KindInteger
	KindReal
	KindVariable
	KindParenExpr
	KindFunctionObject
	KindFunctionCall
	KindSimpleAssignment
	KindAddition
	KindSubtraction
	KindMultiplication
	KindDivision
	KindModulo
	KindPower
	KindLess
	KindLessEq
	KindGreater
	KindGreaterEq
	KindEqual
	KindNotEqual
	KindStatementExpression
	KindVariableDeclaration
	KindVariableDeclarator
	KindConstantDeclaration
	KindConstantDeclarator
	KindReturn
)

// typeNames gives the human-readable name used for visualization and
// disassembly output. Indexed by Kind.
var typeNames = [...]string{
	KindRoot:                "Root",
	KindStatementList:       "StatementList",
	KindNull:                "Null",
	KindTrue:                "True",
	KindFalse:               "False",
	KindStaticString:        "StaticString",
	KindInteger:             "Integer",
	KindReal:                "Real",
	KindVariable:            "Variable",
	KindParenExpr:           "ParenExpr",
	KindFunctionObject:      "FunctionObject",
	KindFunctionCall:        "FunctionCall",
	KindSimpleAssignment:    "SimpleAssignment",
	KindAddition:            "Addition",
	KindSubtraction:         "Subtraction",
	KindMultiplication:      "Multiplication",
	KindDivision:            "Division",
	KindModulo:              "Modulo",
	KindPower:               "Power",
	KindLess:                "Less",
	KindLessEq:              "LessEq",
	KindGreater:             "Greater",
	KindGreaterEq:           "GreaterEq",
	KindEqual:               "Equal",
	KindNotEqual:            "NotEqual",
	KindStatementExpression: "StatementExpression",
	KindVariableDeclaration: "VariableDeclaration",
	KindVariableDeclarator:  "VariableDeclarator",
	KindConstantDeclaration: "ConstantDeclaration",
	KindConstantDeclarator:  "ConstantDeclarator",
	KindReturn:              "Return",
}

// String returns the type name used by visualization/disassembly.
// It is part of the observable contract (spec.md 3.1).
func (k Kind) String() string {
	if int(k) < len(typeNames) {
		return typeNames[k]
	}
	return "Unknown"
}

// IsAssignable reports whether a node of this Kind may appear as the
// LHS of an assignment. Only Variable qualifies today.
func (k Kind) IsAssignable() bool {
	return k == KindVariable
}
