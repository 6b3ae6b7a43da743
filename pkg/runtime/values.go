package runtime

import (
	"fmt"

	"lambda/trampoline-go/pkg/ast"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindClosure Kind = iota
)

func (k Kind) String() string {
	switch k {
	case KindClosure:
		return "closure"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values. The calculus has a
// single value shape today (closures); applications nonetheless case-match
// on it explicitly, so growing the model (literals, primitives) turns into
// a NotApplicableError instead of a crash.
type Value interface {
	Kind() Kind
}

// ClosureValue pairs an abstraction with the environment in effect when it
// was evaluated. The captured environment is fixed at capture time; nothing
// mutates it afterwards.
type ClosureValue struct {
	Env       *Environment
	Parameter string
	Body      ast.Term
}

func (v *ClosureValue) Kind() Kind { return KindClosure }

func (v *ClosureValue) String() string {
	return fmt.Sprintf("<closure λ%s. %s>", v.Parameter, ast.String(v.Body))
}

// ValuesEqual reports structural equality: closures match when their
// parameter, body, and flattened captured bindings all match.
func ValuesEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	left, ok := a.(*ClosureValue)
	if !ok {
		return false
	}
	right, ok := b.(*ClosureValue)
	if !ok {
		return false
	}
	if left.Parameter != right.Parameter || !ast.Equal(left.Body, right.Body) {
		return false
	}
	return left.Env.Equal(right.Env)
}
