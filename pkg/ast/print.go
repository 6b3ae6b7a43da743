package ast

import "strings"

// String renders a term in conventional lambda notation, e.g.
// (λx. x x) (λx. x x). Parentheses are inserted only where the notation
// would otherwise re-associate: an abstraction in function position (its
// body would swallow the argument), and any non-variable in argument
// position.
func String(term Term) string {
	var builder strings.Builder
	writeTerm(&builder, term)
	return builder.String()
}

func writeTerm(builder *strings.Builder, term Term) {
	switch t := term.(type) {
	case *Variable:
		builder.WriteString(t.Name)
	case *Abstraction:
		builder.WriteString("λ")
		builder.WriteString(t.Parameter)
		builder.WriteString(". ")
		writeTerm(builder, t.Body)
	case *Application:
		if _, ok := t.Function.(*Abstraction); ok {
			builder.WriteString("(")
			writeTerm(builder, t.Function)
			builder.WriteString(")")
		} else {
			writeTerm(builder, t.Function)
		}
		builder.WriteString(" ")
		if _, ok := t.Argument.(*Variable); ok {
			writeTerm(builder, t.Argument)
		} else {
			builder.WriteString("(")
			writeTerm(builder, t.Argument)
			builder.WriteString(")")
		}
	}
}
