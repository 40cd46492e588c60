package ast

import (
	"errors"
	"fmt"
)

// Fatal conditions the compiler core can hit. These are programming
// errors in the parser or driver, not recoverable user-facing
// diagnostics (spec.md 7) — mirrors GVM's package-level sentinel
// errors in vm/vm.go (errSegmentationFault, errUnknownInstruction, ...).
var (
	ErrArgCountOverflow  = errors.New("goat/ast: function call argument count exceeds 65535")
	ErrNonAssignableNode = errors.New("goat/ast: emit_bytecode_assign called on a non-assignable node")
)

// fatalError wraps one of the sentinels above with the offending
// node kind so a recovering caller (cmd/goatc) can log something
// actionable.
type fatalError struct {
	err  error
	kind Kind
}

func (e *fatalError) Error() string {
	return fmt.Sprintf("%s (kind=%s)", e.err, e.kind)
}

func (e *fatalError) Unwrap() error { return e.err }

func errAssignNonAssignable(k Kind) error {
	return &fatalError{err: ErrNonAssignableNode, kind: k}
}

func errArgCountOverflow(k Kind) error {
	return &fatalError{err: ErrArgCountOverflow, kind: k}
}

func errUnhandledKind(k Kind) error {
	return fmt.Errorf("goat/ast: no lowering defined for kind %s", k)
}
