package interpreter

import (
	"fmt"

	"lambda/trampoline-go/pkg/ast"
	"lambda/trampoline-go/pkg/runtime"
)

// Interpreter evaluates lambda-calculus terms under call-by-value
// semantics. It carries no state of its own; both evaluation paths are pure
// functions of the term and environment. Evaluate is the recursive
// reference path, EvaluateTrampolined the production one — they agree on
// every terminating input, but only the trampolined path keeps native stack
// use bounded across arbitrarily long application chains.
type Interpreter struct{}

// New returns an interpreter.
func New() *Interpreter {
	return &Interpreter{}
}

// Evaluate reduces a term by direct structural recursion. Each application
// performed during evaluation costs one native frame, so a self-applying
// term will exhaust the stack; this path exists as a correctness oracle and
// must not be used where term recursion depth is unbounded.
func (i *Interpreter) Evaluate(term ast.Term, env *runtime.Environment) (runtime.Value, error) {
	switch t := term.(type) {
	case *ast.Variable:
		return env.Get(t.Name)
	case *ast.Abstraction:
		return &runtime.ClosureValue{Env: env, Parameter: t.Parameter, Body: t.Body}, nil
	case *ast.Application:
		fnValue, err := i.Evaluate(t.Function, env)
		if err != nil {
			return nil, err
		}
		closure, ok := fnValue.(*runtime.ClosureValue)
		if !ok {
			return nil, &runtime.NotApplicableError{Kind: fnValue.Kind()}
		}
		argValue, err := i.Evaluate(t.Argument, env)
		if err != nil {
			return nil, err
		}
		callEnv := closure.Env.Extend(closure.Parameter, argValue)
		return i.Evaluate(closure.Body, callEnv)
	default:
		return nil, fmt.Errorf("unsupported term type: %s", term.NodeType())
	}
}

// EvaluateTrampolined reduces a term to a trampoline that the caller drives
// to completion. Variables and abstractions complete immediately; an
// application defers one step which evaluates the function and argument
// subterms, then hands the body's trampoline back to the driver instead of
// recursing into it. The outermost application chain therefore runs as
// driver iterations with constant native stack, while each level of static
// subterm nesting still costs one frame for its inner Run.
func (i *Interpreter) EvaluateTrampolined(term ast.Term, env *runtime.Environment) *runtime.Trampoline {
	switch t := term.(type) {
	case *ast.Variable:
		value, err := env.Get(t.Name)
		if err != nil {
			return runtime.Fail(err)
		}
		return runtime.Complete(value)
	case *ast.Abstraction:
		return runtime.Complete(&runtime.ClosureValue{Env: env, Parameter: t.Parameter, Body: t.Body})
	case *ast.Application:
		return runtime.Pending(func() *runtime.Trampoline {
			fnValue, err := i.EvaluateTrampolined(t.Function, env).Run()
			if err != nil {
				return runtime.Fail(err)
			}
			closure, ok := fnValue.(*runtime.ClosureValue)
			if !ok {
				return runtime.Fail(&runtime.NotApplicableError{Kind: fnValue.Kind()})
			}
			argValue, err := i.EvaluateTrampolined(t.Argument, env).Run()
			if err != nil {
				return runtime.Fail(err)
			}
			callEnv := closure.Env.Extend(closure.Parameter, argValue)
			return i.EvaluateTrampolined(closure.Body, callEnv)
		})
	default:
		return runtime.Fail(fmt.Errorf("unsupported term type: %s", term.NodeType()))
	}
}
