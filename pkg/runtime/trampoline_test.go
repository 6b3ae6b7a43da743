package runtime

import (
	"errors"
	"testing"

	"lambda/trampoline-go/pkg/ast"
)

func TestCompleteIsTerminal(t *testing.T) {
	closure := closureOf("x", NewEnvironment())
	tramp := Complete(closure)

	if !tramp.Done() {
		t.Fatal("expected completed trampoline to be done")
	}
	if stepped := tramp.Step(); stepped != tramp {
		t.Fatal("expected stepping a completed trampoline to return it unchanged")
	}
	val, err := tramp.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ValuesEqual(val, closure) {
		t.Fatalf("unexpected value %#v", val)
	}
}

func TestRunDrivesPendingChainIteratively(t *testing.T) {
	closure := closureOf("x", NewEnvironment())
	invoked := 0
	var chain func(remaining int) *Trampoline
	chain = func(remaining int) *Trampoline {
		if remaining == 0 {
			return Complete(closure)
		}
		return Pending(func() *Trampoline {
			invoked++
			return chain(remaining - 1)
		})
	}

	val, err := chain(1000).Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ValuesEqual(val, closure) {
		t.Fatalf("unexpected value %#v", val)
	}
	if invoked != 1000 {
		t.Fatalf("expected 1000 steps, ran %d", invoked)
	}
}

func TestFailingStepShortCircuitsRun(t *testing.T) {
	boom := &UnboundVariableError{Name: "ghost"}
	tramp := Pending(func() *Trampoline {
		return Pending(func() *Trampoline {
			return Fail(boom)
		})
	})

	_, err := tramp.Run()
	var unbound *UnboundVariableError
	if !errors.As(err, &unbound) || unbound.Name != "ghost" {
		t.Fatalf("expected the step's error unchanged, got %v", err)
	}
}

func TestRunMaxStepsAbandonsUnfinishedWork(t *testing.T) {
	var forever func() *Trampoline
	forever = func() *Trampoline {
		return Pending(forever)
	}

	val, done, err := Pending(forever).RunMaxSteps(500)
	if done {
		t.Fatal("expected the step budget to run out")
	}
	if val != nil || err != nil {
		t.Fatalf("expected no result from an abandoned run, got %#v, %v", val, err)
	}

	closure := closureOf("x", NewEnvironment())
	val, done, err = Complete(closure).RunMaxSteps(0)
	if !done || err != nil {
		t.Fatalf("expected an already-complete trampoline to finish, got done=%v err=%v", done, err)
	}
	if !ValuesEqual(val, closure) {
		t.Fatalf("unexpected value %#v", val)
	}
}

func TestClosureStringNamesShape(t *testing.T) {
	closure := &ClosureValue{Env: NewEnvironment(), Parameter: "x", Body: ast.App(ast.Var("x"), ast.Var("x"))}
	if got := closure.String(); got != "<closure λx. x x>" {
		t.Fatalf("unexpected rendering %q", got)
	}
}
