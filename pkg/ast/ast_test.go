package ast

import "testing"

func TestEqualDistinguishesShapes(t *testing.T) {
	identity := Abs("x", Var("x"))

	if !Equal(identity, Abs("x", Var("x"))) {
		t.Fatal("expected structurally identical abstractions to be equal")
	}
	if Equal(identity, Abs("y", Var("y"))) {
		t.Fatal("expected abstractions with different parameters to differ")
	}
	if Equal(identity, Var("x")) {
		t.Fatal("expected abstraction and variable to differ")
	}
	if !Equal(App(identity, Var("z")), App(Abs("x", Var("x")), Var("z"))) {
		t.Fatal("expected structurally identical applications to be equal")
	}
	if Equal(App(identity, Var("z")), App(identity, Var("w"))) {
		t.Fatal("expected applications with different arguments to differ")
	}
	if !Equal(nil, nil) {
		t.Fatal("expected nil terms to compare equal")
	}
	if Equal(identity, nil) {
		t.Fatal("expected nil to differ from a term")
	}
}

func TestAppNBuildsCurriedChain(t *testing.T) {
	chain := AppN(Var("f"), Var("a"), Var("b"))
	expected := App(App(Var("f"), Var("a")), Var("b"))
	if !Equal(chain, expected) {
		t.Fatalf("expected %s, got %s", String(expected), String(chain))
	}
}

func TestStringRendersLambdaNotation(t *testing.T) {
	selfApply := Abs("x", App(Var("x"), Var("x")))
	omega := App(selfApply, selfApply)

	cases := []struct {
		term Term
		want string
	}{
		{Var("x"), "x"},
		{Abs("x", Var("x")), "λx. x"},
		{App(Var("f"), Var("a")), "f a"},
		{App(App(Var("f"), Var("a")), Var("b")), "f a b"},
		{App(Var("f"), App(Var("g"), Var("a"))), "f (g a)"},
		{omega, "(λx. x x) (λx. x x)"},
	}
	for _, tc := range cases {
		if got := String(tc.term); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}
